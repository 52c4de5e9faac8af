// Package term draws boards for the terminal client.
package term

import (
    "fmt"
    "io"
    "strconv"
    "strings"

    "github.com/jaminalder/nextoe/internal/domain"
    "github.com/muesli/termenv"
)

// Renderer writes coloured boards. Empty cells show their index so players know what to type.
type Renderer struct {
    out *termenv.Output
}

// NewRenderer detects the colour profile of w.
func NewRenderer(w io.Writer, opts ...termenv.OutputOption) *Renderer {
    return &Renderer{out: termenv.NewOutput(w, opts...)}
}

func (r *Renderer) cell(b domain.Board, st domain.Status, i int) string {
    c := b.Get(i)
    if c == domain.Empty {
        return r.out.String(strconv.Itoa(i)).Faint().String()
    }
    s := r.out.String(c.String()).Bold()
    if c == domain.X {
        s = s.Foreground(r.out.Color("4"))
    } else {
        s = s.Foreground(r.out.Color("1"))
    }
    if st.State == domain.Won && (st.Line[0] == i || st.Line[1] == i || st.Line[2] == i) {
        s = s.Reverse()
    }
    return s.String()
}

// Board renders b as a 3x3 grid.
func (r *Renderer) Board(b domain.Board) string {
    st := domain.Evaluate(b)
    var sb strings.Builder
    for row := 0; row < 3; row++ {
        if row > 0 {
            sb.WriteString("---+---+---\n")
        }
        for col := 0; col < 3; col++ {
            if col > 0 {
                sb.WriteByte('|')
            }
            sb.WriteString(" " + r.cell(b, st, row*3+col) + " ")
        }
        sb.WriteByte('\n')
    }
    return sb.String()
}

// Status describes the result of b from the human's point of view.
func (r *Renderer) Status(b domain.Board, human domain.Cell) string {
    st := domain.Evaluate(b)
    switch {
    case st.State == domain.Draw:
        return r.out.String("Draw.").Bold().String()
    case st.State == domain.Won && st.Winner == human:
        return r.out.String("You win!").Bold().Foreground(r.out.Color("2")).String()
    case st.State == domain.Won:
        return r.out.String(fmt.Sprintf("%s wins along %v.", st.Winner, st.Line)).Bold().String()
    }
    return fmt.Sprintf("You play %s.", human)
}
