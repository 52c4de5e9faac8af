package domain

// Line is one of the eight winning index triples.
type Line [3]int

// Lines lists rows, then columns, then diagonals. Evaluate reports the first match in this order.
var Lines = [8]Line{
    // rows
    {0, 1, 2}, {3, 4, 5}, {6, 7, 8},
    // cols
    {0, 3, 6}, {1, 4, 7}, {2, 5, 8},
    // diags
    {0, 4, 8}, {2, 4, 6},
}

// State is the coarse game state derived from a board.
type State uint8

const (
    InProgress State = iota
    Won
    Draw
)

func (s State) String() string {
    switch s {
    case Won:
        return "won"
    case Draw:
        return "draw"
    default:
        return "in_progress"
    }
}

// Status is the terminal evaluation of a board. Winner and Line are only set when State is Won.
type Status struct {
    State  State
    Winner Cell
    Line   Line
}

// Over reports whether the game has ended.
func (s Status) Over() bool { return s.State != InProgress }

// Evaluate determines whether a line is complete or the board is full.
func Evaluate(b Board) Status {
    for _, ln := range Lines {
        c := b[ln[0]]
        if c != Empty && b[ln[1]] == c && b[ln[2]] == c {
            return Status{State: Won, Winner: c, Line: ln}
        }
    }
    if b.IsFull() {
        return Status{State: Draw}
    }
    return Status{State: InProgress}
}

// Winner returns the symbol holding a complete line, or Empty.
func Winner(b Board) Cell {
    return Evaluate(b).Winner
}
