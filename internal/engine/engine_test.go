package engine

import (
    "errors"
    "fmt"
    "testing"

    "github.com/jaminalder/nextoe/internal/domain"
)

var configs = []Config{
    {Search: SearchHeuristic},
    {Search: SearchMinimax},
    {Search: SearchAlphaBeta},
    DefaultConfig(),
}

func name(cfg Config) string { return fmt.Sprintf("%s/depth=%d", cfg.Search, cfg.MaxDepth) }

func mustBoard(t *testing.T, cells ...string) domain.Board {
    t.Helper()
    b, err := domain.ParseBoard(cells)
    if err != nil {
        t.Fatalf("ParseBoard(%v): %v", cells, err)
    }
    return b
}

func TestSelectMoveScenarios(t *testing.T) {
    cases := []struct {
        desc  string
        board []string
        mover domain.Cell
        want  int
    }{
        {"immediate win", []string{"X", "X", "", "", "", "", "", "", ""}, domain.X, 2},
        {"immediate block", []string{"O", "O", "", "", "", "", "", "", ""}, domain.X, 2},
        {"center on empty board", []string{"", "", "", "", "", "", "", "", ""}, domain.X, 4},
        {"win beats block", []string{"O", "O", "", "X", "X", "", "", "", ""}, domain.X, 5},
        {"lowest winning cell", []string{"X", "", "X", "", "", "", "X", "", ""}, domain.X, 1},
    }
    for _, cfg := range configs {
        sel := New(cfg)
        for _, tc := range cases {
            b := mustBoard(t, tc.board...)
            got, ok := sel.SelectMove(b, tc.mover)
            if !ok || got != tc.want {
                t.Fatalf("%s: %s: expected %d, got %d (ok=%v)", name(cfg), tc.desc, tc.want, got, ok)
            }
        }
    }
}

func TestSelectMoveFullBoard(t *testing.T) {
    b := mustBoard(t, "X", "O", "X", "X", "O", "O", "O", "X", "X")
    for _, cfg := range configs {
        if i, ok := New(cfg).SelectMove(b, domain.O); ok || i != -1 {
            t.Fatalf("%s: expected no move on full board, got %d", name(cfg), i)
        }
    }
}

func TestSelectMoveLeavesBoardUnchanged(t *testing.T) {
    b := mustBoard(t, "X", "", "", "", "O", "", "", "", "X")
    before := b
    for _, cfg := range configs {
        if _, ok := New(cfg).SelectMove(b, domain.O); !ok {
            t.Fatalf("%s: expected a move", name(cfg))
        }
        if b != before {
            t.Fatalf("%s: board changed during selection:\n%v", name(cfg), b)
        }
    }
}

func TestHeuristicCornerOrder(t *testing.T) {
    sel := New(Config{Search: SearchHeuristic})
    b := mustBoard(t, "O", "", "", "", "X", "", "", "", "")
    if got, _ := sel.SelectMove(b, domain.X); got != 2 {
        t.Fatalf("expected first free corner 2, got %d", got)
    }
    b = mustBoard(t, "O", "X", "O", "", "X", "", "X", "O", "X")
    if got, _ := sel.SelectMove(b, domain.X); got != 3 {
        t.Fatalf("expected first empty cell 3, got %d", got)
    }
}

// Opposite corners against a center: the corner reply loses to a fork, an edge holds.
func TestSearchAvoidsCornerFork(t *testing.T) {
    b := mustBoard(t, "X", "", "", "", "O", "", "", "", "X")
    if got, _ := New(Config{Search: SearchHeuristic}).SelectMove(b, domain.O); got != 2 {
        t.Fatalf("heuristic should take corner 2, got %d", got)
    }
    for _, cfg := range []Config{{Search: SearchMinimax}, {Search: SearchAlphaBeta}, DefaultConfig()} {
        if got, _ := New(cfg).SelectMove(b, domain.O); got != 1 {
            t.Fatalf("%s: expected edge 1, got %d", name(cfg), got)
        }
    }
}

func selfPlay(t *testing.T, sel *Selector) domain.Game {
    t.Helper()
    g := domain.New()
    for !g.Over() {
        i, ok := sel.SelectMove(g.Board, g.Turn)
        if !ok {
            t.Fatalf("no move on unfinished board\n%v", g.Board)
        }
        if err := g.Play(i); err != nil {
            t.Fatalf("engine chose illegal move %d: %v", i, err)
        }
    }
    return g
}

func TestSelfPlayIsDraw(t *testing.T) {
    for _, cfg := range configs {
        g := selfPlay(t, New(cfg))
        if g.Status.State != domain.Draw {
            t.Fatalf("%s: expected draw, got %+v\n%v", name(cfg), g.Status, g.Board)
        }
    }
}

// countLosses plays the engine as side against every possible opponent line.
func countLosses(sel *Selector, side domain.Cell) int {
    losses := 0
    var walk func(g domain.Game)
    walk = func(g domain.Game) {
        if g.Over() {
            if g.Status.State == domain.Won && g.Status.Winner != side {
                losses++
            }
            return
        }
        if g.Turn == side {
            i, _ := sel.SelectMove(g.Board, side)
            next := g
            if err := next.Play(i); err != nil {
                panic(err)
            }
            walk(next)
            return
        }
        for _, i := range g.Board.EmptyPositions() {
            next := g
            if err := next.Play(i); err != nil {
                panic(err)
            }
            walk(next)
        }
    }
    walk(domain.New())
    return losses
}

func TestSearchNeverLoses(t *testing.T) {
    for _, cfg := range []Config{{Search: SearchMinimax}, {Search: SearchAlphaBeta}, DefaultConfig()} {
        sel := New(cfg)
        for _, side := range []domain.Cell{domain.X, domain.O} {
            if n := countLosses(sel, side); n != 0 {
                t.Fatalf("%s as %v lost %d games", name(cfg), side, n)
            }
        }
    }
}

func TestHeuristicNeverLosesAsFirstPlayer(t *testing.T) {
    if n := countLosses(New(Config{Search: SearchHeuristic}), domain.X); n != 0 {
        t.Fatalf("heuristic as X lost %d games", n)
    }
}

func TestParseSearchMode(t *testing.T) {
    cases := map[string]SearchMode{"heuristic": SearchHeuristic, "MINIMAX": SearchMinimax, " alphabeta ": SearchAlphaBeta, "alpha-beta": SearchAlphaBeta}
    for in, want := range cases {
        got, err := ParseSearchMode(in)
        if err != nil || got != want {
            t.Fatalf("ParseSearchMode(%q) = %v, %v; want %v", in, got, err, want)
        }
    }
    if _, err := ParseSearchMode("mcts"); !errors.Is(err, ErrUnknownSearchMode) {
        t.Fatalf("expected ErrUnknownSearchMode, got %v", err)
    }
}

func TestSearchModeNames(t *testing.T) {
    for mode, want := range map[SearchMode]string{SearchHeuristic: "heuristic", SearchMinimax: "minimax", SearchAlphaBeta: "alphabeta"} {
        if got := mode.String(); got != want {
            t.Fatalf("%d.String() = %q, want %q", mode, got, want)
        }
        if back, err := ParseSearchMode(want); err != nil || back != mode {
            t.Fatalf("ParseSearchMode(%q) = %v, %v", want, back, err)
        }
    }
}

func TestSelectorKeepsConfig(t *testing.T) {
    if got := New(DefaultConfig()).Config(); got != (Config{Search: SearchAlphaBeta, MaxDepth: DefaultMaxDepth}) {
        t.Fatalf("unexpected default config %+v", got)
    }
}
