package domain

import "fmt"

// Game holds the current state of a Tic-Tac-Toe match.
type Game struct {
    Board  Board
    Turn   Cell
    Moves  int
    Status Status
}

// New returns a new game with X to move.
func New() Game {
    return Game{Turn: X}
}

// FromBoard resumes a game from an arbitrary board, with the side to move inferred from the mark counts.
func FromBoard(b Board) Game {
    g := Game{Board: b, Moves: 9 - len(b.EmptyPositions())}
    g.Status = Evaluate(b)
    g.Turn = b.ToMove()
    return g
}

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.Status.Over() }

// Play attempts to place the current turn's mark at index i (0..8).
func (g *Game) Play(i int) error {
    if g.Over() {
        return ErrGameOver
    }
    if i < 0 || i >= len(g.Board) {
        return fmt.Errorf("%w: %d", ErrOutOfRange, i)
    }
    if g.Board[i] != Empty {
        return fmt.Errorf("%w: %d", ErrOccupied, i)
    }

    g.Board.Set(i, g.Turn)
    g.Moves++

    g.Status = Evaluate(g.Board)
    if g.Status.Over() {
        return nil
    }
    g.Turn = Opponent(g.Turn)
    return nil
}
