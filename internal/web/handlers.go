package web

import (
    "errors"
    "fmt"
    "io"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/jaminalder/nextoe/internal/app"
    "github.com/jaminalder/nextoe/internal/domain"
)

type handlers struct {
    svc       *app.Service
    tpl       *templates
    heartbeat time.Duration
}

func (h *handlers) renderBoard(gs app.GameState, errMsg string) []byte {
    return renderTemplate(h.tpl.board, newBoardData(gs, errMsg))
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
    w.Header().Set("Content-Type", "text/html; charset=utf-8")
    w.WriteHeader(status)
    _, _ = w.Write(body)
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
    writeHTML(w, http.StatusOK, renderTemplate(h.tpl.index, nil))
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
    _ = r.ParseForm()
    symbol := r.Form.Get("symbol")
    if symbol == "" {
        symbol = "X"
    }
    human, err := domain.ParseSymbol(symbol)
    if err != nil {
        http.Error(w, "invalid symbol", http.StatusBadRequest)
        return
    }
    gs, err := h.svc.CreateGame(human)
    if err != nil {
        http.Error(w, "failed to create", http.StatusInternalServerError)
        return
    }
    // the creator owns the seat
    pid := ensurePlayerCookie(w, r)
    _, _, _ = h.svc.Join(gs.ID, pid)
    http.Redirect(w, r, "/game/"+gs.ID, http.StatusSeeOther)
}

func (h *handlers) view(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    // ensure cookie and auto-claim seat
    pid := ensurePlayerCookie(w, r)
    _, gs, err := h.svc.Join(id, pid)
    if err != nil {
        http.NotFound(w, r)
        return
    }
    writeHTML(w, http.StatusOK, renderTemplate(h.tpl.game, newBoardData(*gs, "")))
}

func playErrorMessage(err error) string {
    switch {
    case errors.Is(err, app.ErrNotYourTurn):
        return "Not your turn"
    case errors.Is(err, app.ErrNotAPlayer):
        return "You are a spectator"
    case errors.Is(err, domain.ErrOccupied):
        return "Cell is occupied"
    case errors.Is(err, domain.ErrOutOfRange):
        return "Out of range"
    case errors.Is(err, domain.ErrGameOver):
        return "Game is over"
    default:
        return "Invalid move"
    }
}

func (h *handlers) play(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    pid := ensurePlayerCookie(w, r)
    _ = r.ParseForm()
    i, err := strconv.Atoi(r.Form.Get("i"))
    if err != nil {
        i = -1
    }
    gs, err := h.svc.Play(id, pid, i)
    h.writeBoardResult(w, r, id, gs, err)
}

func (h *handlers) reset(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    pid := ensurePlayerCookie(w, r)
    gs, err := h.svc.Reset(id, pid)
    h.writeBoardResult(w, r, id, gs, err)
}

// writeBoardResult renders the board fragment, with an error banner when the action was declined.
func (h *handlers) writeBoardResult(w http.ResponseWriter, r *http.Request, id string, gs *app.GameState, err error) {
    var errMsg string
    if err != nil {
        if errors.Is(err, app.ErrNotFound) {
            http.NotFound(w, r)
            return
        }
        errMsg = playErrorMessage(err)
        if g, ok := h.svc.Get(id); ok {
            gs = g
        }
    }
    if gs == nil {
        http.NotFound(w, r)
        return
    }
    writeHTML(w, http.StatusOK, h.renderBoard(*gs, errMsg))
}

// writeSSE emits one event; every line of a multi-line payload gets its own data field.
func writeSSE(w io.Writer, event string, payload []byte) {
    _, _ = fmt.Fprintf(w, "event: %s\n", event)
    for _, line := range strings.Split(string(payload), "\n") {
        _, _ = fmt.Fprintf(w, "data: %s\n", line)
    }
    _, _ = io.WriteString(w, "\n")
}

func (h *handlers) events(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    if _, ok := h.svc.Get(id); !ok {
        http.NotFound(w, r)
        return
    }
    w.Header().Set("Content-Type", "text/event-stream")
    w.Header().Set("Cache-Control", "no-cache")
    w.Header().Set("X-Accel-Buffering", "no")
    // In tests or non-EventSource requests, just acknowledge headers and return
    if r.Header.Get("Accept") != "text/event-stream" {
        w.WriteHeader(http.StatusOK)
        return
    }
    flusher, ok := w.(http.Flusher)
    if !ok {
        w.WriteHeader(http.StatusOK)
        return
    }
    ctx := r.Context()
    ch, unsub, err := h.svc.Subscribe(ctx, id)
    if err != nil {
        http.NotFound(w, r)
        return
    }
    defer unsub()
    ticker := time.NewTicker(h.heartbeat)
    defer ticker.Stop()
    flusher.Flush()
    for {
        select {
        case <-ctx.Done():
            return
        case <-ticker.C:
            _, _ = io.WriteString(w, ": ping\n\n")
            flusher.Flush()
        case gs, ok := <-ch:
            if !ok {
                return
            }
            writeSSE(w, "board", h.renderBoard(gs, ""))
            flusher.Flush()
        }
    }
}
