package config

import (
    "errors"
    "testing"
    "time"

    "github.com/jaminalder/nextoe/internal/engine"
)

func env(m map[string]string) func(string) string {
    return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
    cfg, err := Load(nil, env(nil))
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if cfg != Default() {
        t.Fatalf("expected defaults, got %+v", cfg)
    }
    if cfg.Engine.Search != engine.SearchAlphaBeta || cfg.Engine.MaxDepth != engine.DefaultMaxDepth {
        t.Fatalf("expected alpha-beta default engine, got %+v", cfg.Engine)
    }
}

func TestLoadEnv(t *testing.T) {
    cfg, err := Load(nil, env(map[string]string{
        "NEXTOE_ADDR":      ":9090",
        "NEXTOE_SEARCH":    "minimax",
        "NEXTOE_MAX_DEPTH": "0",
        "NEXTOE_HEARTBEAT": "2s",
    }))
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if cfg.Addr != ":9090" || cfg.Engine.Search != engine.SearchMinimax || cfg.Engine.MaxDepth != 0 || cfg.HeartbeatInterval != 2*time.Second {
        t.Fatalf("env not applied: %+v", cfg)
    }
}

func TestFlagsOverrideEnv(t *testing.T) {
    cfg, err := Load([]string{"-search", "heuristic", "-addr", ":7000"}, env(map[string]string{
        "NEXTOE_ADDR":   ":9090",
        "NEXTOE_SEARCH": "minimax",
    }))
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if cfg.Addr != ":7000" || cfg.Engine.Search != engine.SearchHeuristic {
        t.Fatalf("flags should win, got %+v", cfg)
    }
}

func TestLoadInvalid(t *testing.T) {
    cases := []struct {
        args []string
        env  map[string]string
    }{
        {[]string{"-search", "mcts"}, nil},
        {[]string{"-max-depth", "-1"}, nil},
        {[]string{"-heartbeat", "0s"}, nil},
        {[]string{"-nope"}, nil},
        {nil, map[string]string{"NEXTOE_MAX_DEPTH": "deep"}},
        {nil, map[string]string{"NEXTOE_HEARTBEAT": "soon"}},
    }
    for _, tc := range cases {
        if _, err := Load(tc.args, env(tc.env)); !errors.Is(err, ErrInvalid) {
            t.Fatalf("args=%v env=%v: expected ErrInvalid, got %v", tc.args, tc.env, err)
        }
    }
}
