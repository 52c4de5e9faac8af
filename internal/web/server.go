package web

import (
    "net/http"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"
    "github.com/jaminalder/nextoe/internal/app"
)

// DefaultHeartbeat is the SSE and WebSocket keep-alive interval.
const DefaultHeartbeat = 15 * time.Second

// NewServer wires routes and returns an http.Handler. A non-positive heartbeat uses DefaultHeartbeat.
func NewServer(s *app.Service, heartbeat time.Duration) http.Handler {
    if heartbeat <= 0 {
        heartbeat = DefaultHeartbeat
    }
    r := chi.NewRouter()
    r.Use(middleware.RequestID)
    r.Use(middleware.RealIP)
    r.Use(middleware.Logger)
    r.Use(middleware.Recoverer)

    h := &handlers{svc: s, tpl: loadTemplates(), heartbeat: heartbeat}
    r.Get("/", h.index)
    r.Post("/game", h.create)
    r.Route("/game/{id}", func(r chi.Router) {
        r.Get("/", h.view)
        r.Post("/play", h.play)
        r.Post("/reset", h.reset)
        r.Get("/events", h.events)
        r.Get("/ws", h.ws)
    })
    r.Route("/api", func(r chi.Router) {
        r.Get("/ping", h.ping)
        r.Post("/move", h.apiMove)
        r.Post("/reset", h.apiReset)
        r.Post("/status", h.apiStatus)
        r.Post("/select", h.apiSelect)
        r.Get("/games/{id}", h.apiGame)
    })
    return r
}
