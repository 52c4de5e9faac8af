package web

import (
    "encoding/json"
    "errors"
    "log"
    "net/http"

    "github.com/go-chi/chi/v5"
    "github.com/jaminalder/nextoe/internal/app"
    "github.com/jaminalder/nextoe/internal/domain"
)

type errorResponse struct {
    Error   string `json:"error"`
    Message string `json:"message"`
}

type boardRequest struct {
    Board []string `json:"board"`
    Mover string   `json:"mover"`
}

type selectResponse struct {
    Move *int `json:"move"`
}

// gameView is the JSON form of a session, shared by the REST and WebSocket endpoints.
type gameView struct {
    ID     string   `json:"id"`
    Board  []string `json:"board"`
    Human  string   `json:"human"`
    Turn   string   `json:"turn"`
    AIMove *int     `json:"ai_move"`
    app.StatusView
}

func newGameView(gs app.GameState) gameView {
    v := gameView{
        ID:         gs.ID,
        Board:      gs.Game.Board.Strings(),
        Human:      gs.Human.String(),
        Turn:       gs.Game.Turn.String(),
        StatusView: app.NewStatusView(gs.Game.Status),
    }
    if gs.LastAI >= 0 {
        i := gs.LastAI
        v.AIMove = &i
    }
    return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    if err := json.NewEncoder(w).Encode(v); err != nil {
        log.Printf("[web] encode response: %v", err)
    }
}

// writeError maps boundary errors to declined requests.
func writeError(w http.ResponseWriter, err error) {
    status, kind := http.StatusBadRequest, ""
    switch {
    case errors.Is(err, domain.ErrMalformedBoard):
        kind = "MalformedBoard"
    case errors.Is(err, domain.ErrOutOfRange):
        kind = "OutOfRangeMove"
    case errors.Is(err, domain.ErrOccupied):
        kind = "CellOccupied"
    case errors.Is(err, domain.ErrInvalidSymbol):
        kind = "InvalidPlayer"
    case errors.Is(err, domain.ErrGameOver):
        kind = "GameOver"
    case errors.Is(err, app.ErrNotFound):
        status, kind = http.StatusNotFound, "NotFound"
    default:
        status, kind = http.StatusInternalServerError, "Internal"
        log.Printf("[web] unexpected error: %v", err)
    }
    writeJSON(w, status, errorResponse{Error: kind, Message: err.Error()})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
    if err := json.NewDecoder(r.Body).Decode(v); err != nil {
        writeJSON(w, http.StatusBadRequest, errorResponse{Error: "InvalidPayload", Message: err.Error()})
        return false
    }
    return true
}

func (h *handlers) ping(w http.ResponseWriter, r *http.Request) {
    writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *handlers) apiMove(w http.ResponseWriter, r *http.Request) {
    // a missing position means the engine opens
    req := app.MoveRequest{Position: -1}
    if !decode(w, r, &req) {
        return
    }
    resp, err := h.svc.Move(req)
    if err != nil {
        writeError(w, err)
        return
    }
    writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) apiReset(w http.ResponseWriter, r *http.Request) {
    writeJSON(w, http.StatusOK, app.ResetResponse())
}

func (h *handlers) apiStatus(w http.ResponseWriter, r *http.Request) {
    var req boardRequest
    if !decode(w, r, &req) {
        return
    }
    v, err := h.svc.Status(req.Board)
    if err != nil {
        writeError(w, err)
        return
    }
    writeJSON(w, http.StatusOK, v)
}

func (h *handlers) apiSelect(w http.ResponseWriter, r *http.Request) {
    var req boardRequest
    if !decode(w, r, &req) {
        return
    }
    i, err := h.svc.SelectMove(req.Board, req.Mover)
    if err != nil {
        writeError(w, err)
        return
    }
    writeJSON(w, http.StatusOK, selectResponse{Move: i})
}

func (h *handlers) apiGame(w http.ResponseWriter, r *http.Request) {
    gs, ok := h.svc.Get(chi.URLParam(r, "id"))
    if !ok {
        writeError(w, app.ErrNotFound)
        return
    }
    writeJSON(w, http.StatusOK, newGameView(*gs))
}
