// Package config loads server and engine settings from flags and the environment.
package config

import (
    "errors"
    "flag"
    "fmt"
    "io"
    "os"
    "strconv"
    "time"

    "github.com/jaminalder/nextoe/internal/engine"
)

// Config holds everything the server binary needs.
type Config struct {
    Addr              string
    Engine            engine.Config
    HeartbeatInterval time.Duration
    ShutdownTimeout   time.Duration
}

// Default returns the built-in settings.
func Default() Config {
    return Config{
        Addr:              ":8080",
        Engine:            engine.DefaultConfig(),
        HeartbeatInterval: 15 * time.Second,
        ShutdownTimeout:   5 * time.Second,
    }
}

// ErrInvalid wraps every configuration error.
var ErrInvalid = errors.New("invalid config")

// Load parses args on top of environment values on top of Default. Flags win over env.
func Load(args []string, getenv func(string) string) (Config, error) {
    if getenv == nil {
        getenv = os.Getenv
    }
    cfg := Default()
    search := cfg.Engine.Search.String()

    if v := getenv("NEXTOE_ADDR"); v != "" {
        cfg.Addr = v
    }
    if v := getenv("NEXTOE_SEARCH"); v != "" {
        search = v
    }
    if v := getenv("NEXTOE_MAX_DEPTH"); v != "" {
        n, err := strconv.Atoi(v)
        if err != nil {
            return cfg, fmt.Errorf("%w: NEXTOE_MAX_DEPTH=%q", ErrInvalid, v)
        }
        cfg.Engine.MaxDepth = n
    }
    if v := getenv("NEXTOE_HEARTBEAT"); v != "" {
        d, err := time.ParseDuration(v)
        if err != nil {
            return cfg, fmt.Errorf("%w: NEXTOE_HEARTBEAT=%q", ErrInvalid, v)
        }
        cfg.HeartbeatInterval = d
    }

    fs := flag.NewFlagSet("nextoe", flag.ContinueOnError)
    fs.SetOutput(io.Discard)
    fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
    fs.StringVar(&search, "search", search, "move search: heuristic, minimax or alphabeta")
    fs.IntVar(&cfg.Engine.MaxDepth, "max-depth", cfg.Engine.MaxDepth, "alpha-beta depth cutoff, 0 for none")
    fs.DurationVar(&cfg.HeartbeatInterval, "heartbeat", cfg.HeartbeatInterval, "SSE and WebSocket ping interval")
    fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown timeout")
    if err := fs.Parse(args); err != nil {
        return cfg, fmt.Errorf("%w: %v", ErrInvalid, err)
    }

    mode, err := engine.ParseSearchMode(search)
    if err != nil {
        return cfg, fmt.Errorf("%w: %v", ErrInvalid, err)
    }
    cfg.Engine.Search = mode
    if cfg.Engine.MaxDepth < 0 {
        return cfg, fmt.Errorf("%w: max depth %d", ErrInvalid, cfg.Engine.MaxDepth)
    }
    if cfg.HeartbeatInterval <= 0 {
        return cfg, fmt.Errorf("%w: heartbeat %s", ErrInvalid, cfg.HeartbeatInterval)
    }
    return cfg, nil
}
