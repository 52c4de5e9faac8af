package engine

import (
    "math"

    "github.com/jaminalder/nextoe/internal/domain"
)

// WinScore is the score of an immediate win; deeper wins score less.
const WinScore = 10

// Outcome is the result of a root search.
type Outcome struct {
    Index int
    Score int
}

// terminalScore scores a finished board from mover's point of view.
func terminalScore(b domain.Board, depth int, mover domain.Cell) (int, bool) {
    st := domain.Evaluate(b)
    switch {
    case st.State == domain.Won && st.Winner == mover:
        return WinScore - depth, true
    case st.State == domain.Won:
        return depth - WinScore, true
    case st.State == domain.Draw:
        return 0, true
    }
    return 0, false
}

// Minimax scores b for mover by exhaustive search. maximizing is true when mover is to play.
func Minimax(b domain.Board, depth int, maximizing bool, mover domain.Cell) int {
    if score, done := terminalScore(b, depth, mover); done {
        return score
    }
    side := mover
    best := math.MinInt
    if !maximizing {
        side = domain.Opponent(mover)
        best = math.MaxInt
    }
    for _, i := range b.EmptyPositions() {
        next := b
        next.Set(i, side)
        score := Minimax(next, depth+1, !maximizing, mover)
        if maximizing {
            best = max(best, score)
        } else {
            best = min(best, score)
        }
    }
    return best
}

// AlphaBeta is Minimax with alpha-beta pruning. A positive maxDepth returns 0 for
// any non-terminal board at or beyond that depth.
func AlphaBeta(b domain.Board, depth int, maximizing bool, mover domain.Cell, alpha, beta, maxDepth int) int {
    if score, done := terminalScore(b, depth, mover); done {
        return score
    }
    if maxDepth > 0 && depth >= maxDepth {
        return 0
    }
    side := mover
    best := math.MinInt
    if !maximizing {
        side = domain.Opponent(mover)
        best = math.MaxInt
    }
    for _, i := range b.EmptyPositions() {
        next := b
        next.Set(i, side)
        score := AlphaBeta(next, depth+1, !maximizing, mover, alpha, beta, maxDepth)
        if maximizing {
            best = max(best, score)
            alpha = max(alpha, score)
        } else {
            best = min(best, score)
            beta = min(beta, score)
        }
        if beta <= alpha {
            break
        }
    }
    return best
}

// search scores every empty cell in positional order and keeps the first best.
func (s *Selector) search(b domain.Board, mover domain.Cell) Outcome {
    out := Outcome{Index: -1, Score: math.MinInt}
    alpha := math.MinInt
    for _, i := range rootOrder {
        if b.Get(i) != domain.Empty {
            continue
        }
        next := b
        next.Set(i, mover)
        var score int
        if s.cfg.Search == SearchMinimax {
            score = Minimax(next, 1, false, mover)
        } else {
            score = AlphaBeta(next, 1, false, mover, alpha, math.MaxInt, s.cfg.MaxDepth)
            alpha = max(alpha, score)
        }
        if score > out.Score {
            out = Outcome{Index: i, Score: score}
        }
    }
    return out
}

// Search runs the configured root search without the win and block checks.
// The heuristic mode falls back to plain minimax.
func (s *Selector) Search(b domain.Board, mover domain.Cell) (Outcome, bool) {
    if b.IsFull() || domain.Evaluate(b).Over() {
        return Outcome{Index: -1}, false
    }
    if s.cfg.Search == SearchHeuristic {
        return New(Config{Search: SearchMinimax}).search(b, mover), true
    }
    return s.search(b, mover), true
}
