// Package engine chooses moves for a tic-tac-toe board.
//
// A Selector tries an immediate win, then an immediate block, and only then
// falls through to either the positional heuristic (center, corners, first
// empty) or a full game-tree search. It keeps no per-game state, so one
// Selector can serve any number of concurrent games.
package engine

import (
    "errors"
    "fmt"
    "strings"

    "github.com/jaminalder/nextoe/internal/domain"
)

// SearchMode selects what runs after the win and block checks.
type SearchMode uint8

const (
    SearchHeuristic SearchMode = iota
    SearchMinimax
    SearchAlphaBeta
)

// ErrUnknownSearchMode is returned by ParseSearchMode.
var ErrUnknownSearchMode = errors.New("unknown search mode")

func (m SearchMode) String() string {
    switch m {
    case SearchMinimax:
        return "minimax"
    case SearchAlphaBeta:
        return "alphabeta"
    default:
        return "heuristic"
    }
}

// ParseSearchMode accepts "heuristic", "minimax" or "alphabeta" (case-insensitive).
func ParseSearchMode(s string) (SearchMode, error) {
    switch strings.ToLower(strings.TrimSpace(s)) {
    case "heuristic", "off":
        return SearchHeuristic, nil
    case "minimax":
        return SearchMinimax, nil
    case "alphabeta", "alpha-beta":
        return SearchAlphaBeta, nil
    }
    return SearchHeuristic, fmt.Errorf("%w: %q", ErrUnknownSearchMode, s)
}

// Config is the immutable engine configuration.
type Config struct {
    Search SearchMode
    // MaxDepth cuts alpha-beta search off with a neutral score once reached. Zero means unlimited.
    MaxDepth int
}

// DefaultMaxDepth bounds alpha-beta look-ahead to six plies.
const DefaultMaxDepth = 6

// DefaultConfig returns alpha-beta search limited to DefaultMaxDepth. After the win and
// block checks it searches instead of taking the center/corner/first-empty shortcut, which
// loses some lines as O. Config{Search: SearchHeuristic} keeps the plain shortcut.
func DefaultConfig() Config {
    return Config{Search: SearchAlphaBeta, MaxDepth: DefaultMaxDepth}
}

// Selector picks the next move. The zero value uses the heuristic only.
type Selector struct {
    cfg Config
}

// New returns a Selector with the given configuration.
func New(cfg Config) *Selector {
    if cfg.MaxDepth < 0 {
        cfg.MaxDepth = 0
    }
    return &Selector{cfg: cfg}
}

// Config returns the selector's configuration.
func (s *Selector) Config() Config { return s.cfg }

// rootOrder is the positional preference: center, corners, then edges.
var rootOrder = [9]int{domain.Center, 0, 2, 6, 8, 1, 3, 5, 7}

// SelectMove returns the cell mover should play. The board is passed by value and never changes.
// It reports false only when the board has no empty cell.
func (s *Selector) SelectMove(b domain.Board, mover domain.Cell) (int, bool) {
    if b.IsFull() {
        return -1, false
    }
    if i, ok := completingMove(b, mover); ok {
        return i, true
    }
    if i, ok := completingMove(b, domain.Opponent(mover)); ok {
        return i, true
    }
    if s.cfg.Search == SearchHeuristic {
        return positionalMove(b), true
    }
    out := s.search(b, mover)
    return out.Index, true
}

// completingMove finds the lowest empty cell that would give side a full line.
func completingMove(b domain.Board, side domain.Cell) (int, bool) {
    for _, i := range b.EmptyPositions() {
        b.Set(i, side)
        won := domain.Winner(b) == side
        b.Clear(i)
        if won {
            return i, true
        }
    }
    return -1, false
}

func positionalMove(b domain.Board) int {
    if b.Get(domain.Center) == domain.Empty {
        return domain.Center
    }
    for _, c := range domain.Corners {
        if b.Get(c) == domain.Empty {
            return c
        }
    }
    return b.EmptyPositions()[0]
}
