package domain

import (
    "errors"
    "fmt"
    "strings"
)

// Cell represents a board cell state. X and O double as the player symbols.
type Cell uint8

const (
    Empty Cell = iota
    X
    O
)

// Board is a fixed 3x3 board stored row-major.
type Board [9]Cell

// Errors returned by domain operations.
var (
    ErrMalformedBoard = errors.New("malformed board")
    ErrOutOfRange     = errors.New("move out of range")
    ErrOccupied       = errors.New("cell occupied")
    ErrGameOver       = errors.New("game over")
    ErrInvalidSymbol  = errors.New("invalid symbol")
)

// Center and Corners are the preferred cells of the positional heuristic.
const Center = 4

var Corners = [4]int{0, 2, 6, 8}

// Opponent returns the other symbol. Empty has no opponent and maps to itself.
func Opponent(c Cell) Cell {
    switch c {
    case X:
        return O
    case O:
        return X
    }
    return Empty
}

// IsSymbol reports whether c is X or O.
func (c Cell) IsSymbol() bool { return c == X || c == O }

func (c Cell) String() string {
    switch c {
    case X:
        return "X"
    case O:
        return "O"
    default:
        return ""
    }
}

// ParseCell converts the boundary representation ("", "X", "O") to a Cell.
func ParseCell(s string) (Cell, error) {
    switch s {
    case "":
        return Empty, nil
    case "X":
        return X, nil
    case "O":
        return O, nil
    }
    return Empty, fmt.Errorf("%w: cell value %q", ErrMalformedBoard, s)
}

// ParseSymbol is like ParseCell but rejects the empty cell.
func ParseSymbol(s string) (Cell, error) {
    c, err := ParseCell(s)
    if err != nil || c == Empty {
        return Empty, fmt.Errorf("%w: %q", ErrInvalidSymbol, s)
    }
    return c, nil
}

// ParseBoard converts a 9-element slice of "", "X", "O" into a Board.
func ParseBoard(cells []string) (Board, error) {
    var b Board
    if len(cells) != len(b) {
        return b, fmt.Errorf("%w: expected 9 cells, got %d", ErrMalformedBoard, len(cells))
    }
    for i, s := range cells {
        c, err := ParseCell(s)
        if err != nil {
            return Board{}, err
        }
        b[i] = c
    }
    return b, nil
}

// Strings returns the boundary representation of the board.
func (b Board) Strings() []string {
    out := make([]string, len(b))
    for i, c := range b {
        out[i] = c.String()
    }
    return out
}

// Get returns the cell at index i. Indexes outside 0..8 panic.
func (b Board) Get(i int) Cell { return b[i] }

// Set places c at index i.
func (b *Board) Set(i int, c Cell) { b[i] = c }

// Clear empties index i.
func (b *Board) Clear(i int) { b[i] = Empty }

// IsFull reports whether no empty cell remains.
func (b Board) IsFull() bool {
    for _, c := range b {
        if c == Empty {
            return false
        }
    }
    return true
}

// EmptyPositions returns the empty indexes in ascending order.
func (b Board) EmptyPositions() []int {
    out := make([]int, 0, len(b))
    for i, c := range b {
        if c == Empty {
            out = append(out, i)
        }
    }
    return out
}

// Count returns how many cells hold c.
func (b Board) Count(c Cell) int {
    n := 0
    for _, v := range b {
        if v == c {
            n++
        }
    }
    return n
}

// ToMove returns the symbol whose turn it is assuming X moved first.
func (b Board) ToMove() Cell {
    if b.Count(X) > b.Count(O) {
        return O
    }
    return X
}

// String renders the board as three rows, '.' for empty cells.
func (b Board) String() string {
    var sb strings.Builder
    for i, c := range b {
        if c == Empty {
            sb.WriteByte('.')
        } else {
            sb.WriteString(c.String())
        }
        if i%3 == 2 && i != len(b)-1 {
            sb.WriteByte('\n')
        }
    }
    return sb.String()
}
