package app

import (
    "fmt"

    "github.com/jaminalder/nextoe/internal/domain"
)

// WinnerDraw is reported as the winner of a drawn game.
const WinnerDraw = "draw"

// StatusView is the boundary form of a terminal evaluation.
type StatusView struct {
    IsOver      bool    `json:"is_over"`
    Winner      *string `json:"winner"`
    WinningLine []int   `json:"winning_line"`
}

// MoveRequest is a human move against a caller-held board. Position -1 asks the engine to open.
type MoveRequest struct {
    Board    []string `json:"board"`
    Position int      `json:"position"`
    Player   string   `json:"player"`
}

// MoveResponse carries the post-move board, the engine's move and the terminal fields.
type MoveResponse struct {
    Board       []string `json:"board"`
    AIMove      *int     `json:"ai_move"`
    GameOver    bool     `json:"game_over"`
    Winner      *string  `json:"winner"`
    WinningLine []int    `json:"winning_line"`
}

// NewStatusView maps a domain status to its boundary form.
func NewStatusView(st domain.Status) StatusView {
    v := StatusView{IsOver: st.Over()}
    switch st.State {
    case domain.Won:
        w := st.Winner.String()
        v.Winner = &w
        v.WinningLine = st.Line[:]
    case domain.Draw:
        w := WinnerDraw
        v.Winner = &w
    }
    return v
}

// Status evaluates a boundary board.
func (s *Service) Status(cells []string) (StatusView, error) {
    b, err := domain.ParseBoard(cells)
    if err != nil {
        return StatusView{}, err
    }
    return NewStatusView(domain.Evaluate(b)), nil
}

// SelectMove returns the engine's move for mover, or nil when the board is full.
func (s *Service) SelectMove(cells []string, mover string) (*int, error) {
    b, err := domain.ParseBoard(cells)
    if err != nil {
        return nil, err
    }
    sym, err := domain.ParseSymbol(mover)
    if err != nil {
        return nil, err
    }
    i, ok := s.engine.SelectMove(b, sym)
    if !ok {
        return nil, nil
    }
    return &i, nil
}

// Move validates and applies a human move, then lets the engine answer with the other symbol.
// Requests are rejected before any search runs; nothing is silently corrected.
func (s *Service) Move(req MoveRequest) (MoveResponse, error) {
    b, err := domain.ParseBoard(req.Board)
    if err != nil {
        return MoveResponse{}, err
    }
    player := req.Player
    if player == "" {
        player = domain.X.String()
    }
    human, err := domain.ParseSymbol(player)
    if err != nil {
        return MoveResponse{}, err
    }
    if domain.Evaluate(b).Over() {
        return MoveResponse{}, domain.ErrGameOver
    }
    ai := domain.Opponent(human)

    if req.Position != -1 {
        if req.Position < 0 || req.Position >= len(b) {
            return MoveResponse{}, fmt.Errorf("%w: %d", domain.ErrOutOfRange, req.Position)
        }
        if b.Get(req.Position) != domain.Empty {
            return MoveResponse{}, fmt.Errorf("%w: %d", domain.ErrOccupied, req.Position)
        }
        b.Set(req.Position, human)
        if st := domain.Evaluate(b); st.Over() {
            return newMoveResponse(b, nil, st), nil
        }
    }

    var aiMove *int
    if i, ok := s.engine.SelectMove(b, ai); ok {
        b.Set(i, ai)
        aiMove = &i
    }
    return newMoveResponse(b, aiMove, domain.Evaluate(b)), nil
}

// ResetResponse is the response for a fresh game.
func ResetResponse() MoveResponse {
    return newMoveResponse(domain.Board{}, nil, domain.Status{})
}

func newMoveResponse(b domain.Board, aiMove *int, st domain.Status) MoveResponse {
    v := NewStatusView(st)
    return MoveResponse{
        Board:       b.Strings(),
        AIMove:      aiMove,
        GameOver:    v.IsOver,
        Winner:      v.Winner,
        WinningLine: v.WinningLine,
    }
}
