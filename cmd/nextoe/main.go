package main

import (
    "context"
    "errors"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/jaminalder/nextoe/internal/app"
    "github.com/jaminalder/nextoe/internal/config"
    "github.com/jaminalder/nextoe/internal/engine"
    "github.com/jaminalder/nextoe/internal/web"
)

func main() {
    log.SetPrefix("[nextoe] ")
    cfg, err := config.Load(os.Args[1:], os.Getenv)
    if err != nil {
        log.Fatal(err)
    }

    svc := app.NewService(engine.New(cfg.Engine))
    server := &http.Server{
        Addr:              cfg.Addr,
        Handler:           web.NewServer(svc, cfg.HeartbeatInterval),
        ReadHeaderTimeout: 5 * time.Second,
    }

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()

    errCh := make(chan error, 1)
    go func() {
        ec := svc.Engine().Config()
        log.Printf("listening on %s (search=%s max-depth=%d)", cfg.Addr, ec.Search, ec.MaxDepth)
        errCh <- server.ListenAndServe()
    }()

    select {
    case err := <-errCh:
        if !errors.Is(err, http.ErrServerClosed) {
            log.Fatal(err)
        }
    case <-ctx.Done():
        log.Printf("shutting down")
        shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
        defer cancel()
        if err := server.Shutdown(shutdownCtx); err != nil {
            log.Printf("shutdown: %v", err)
        }
    }
}
