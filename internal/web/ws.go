package web

import (
    "context"
    "encoding/json"
    "log"
    "net/http"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/gorilla/websocket"
    "github.com/jaminalder/nextoe/internal/app"
)

const wsWriteTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
    ReadBufferSize:  1024,
    WriteBufferSize: 1024,
}

type wsMessage struct {
    Type string    `json:"type"`
    Game *gameView `json:"game,omitempty"`
}

func boardMessage(gs app.GameState) wsMessage {
    v := newGameView(gs)
    return wsMessage{Type: "board", Game: &v}
}

// ws streams the game as JSON: the current board on connect, then every update.
// Clients only read; any inbound frame other than close is ignored.
func (h *handlers) ws(w http.ResponseWriter, r *http.Request) {
    id := chi.URLParam(r, "id")
    if _, ok := h.svc.Get(id); !ok {
        http.NotFound(w, r)
        return
    }
    conn, err := upgrader.Upgrade(w, r, nil)
    if err != nil {
        log.Printf("[web] websocket upgrade failed: %v", err)
        return
    }
    defer conn.Close()

    ctx, cancel := context.WithCancel(r.Context())
    defer cancel()
    ch, unsub, err := h.svc.Subscribe(ctx, id)
    if err != nil {
        return
    }
    defer unsub()

    go func() {
        defer cancel()
        for {
            if _, _, err := conn.ReadMessage(); err != nil {
                return
            }
        }
    }()

    // snapshot after subscribing so no update falls in between
    gs, ok := h.svc.Get(id)
    if !ok {
        return
    }
    if err := writeWS(conn, boardMessage(*gs)); err != nil {
        return
    }
    if err := h.pumpWS(ctx, conn, ch); err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
        log.Printf("[web] websocket %s: %v", id, err)
    }
}

// pumpWS forwards snapshots and pings the client when the stream has been idle.
func (h *handlers) pumpWS(ctx context.Context, conn *websocket.Conn, ch <-chan app.GameState) error {
    ticker := time.NewTicker(h.heartbeat)
    defer ticker.Stop()
    lastWrite := time.Now()
    for {
        select {
        case <-ctx.Done():
            return nil
        case gs, ok := <-ch:
            if !ok {
                return nil
            }
            if err := writeWS(conn, boardMessage(gs)); err != nil {
                return err
            }
            lastWrite = time.Now()
        case <-ticker.C:
            if time.Since(lastWrite) < h.heartbeat {
                continue
            }
            if err := writeWS(conn, wsMessage{Type: "ping"}); err != nil {
                return err
            }
            lastWrite = time.Now()
        }
    }
}

func writeWS(conn *websocket.Conn, msg wsMessage) error {
    b, err := json.Marshal(msg)
    if err != nil {
        return err
    }
    _ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
    return conn.WriteMessage(websocket.TextMessage, b)
}
