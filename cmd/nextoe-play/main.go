// Command nextoe-play is a terminal game against the engine.
package main

import (
    "bufio"
    "errors"
    "flag"
    "fmt"
    "io"
    "log"
    "os"
    "strconv"
    "strings"

    "github.com/jaminalder/nextoe/internal/domain"
    "github.com/jaminalder/nextoe/internal/engine"
    "github.com/jaminalder/nextoe/internal/term"
    "github.com/muesli/termenv"
)

func main() {
    log.SetFlags(0)
    if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
        log.Fatal(err)
    }
}

func run(args []string, in io.Reader, out io.Writer, opts ...termenv.OutputOption) error {
    fs := flag.NewFlagSet("nextoe-play", flag.ContinueOnError)
    fs.SetOutput(out)
    as := fs.String("as", "X", "your symbol, X moves first")
    search := fs.String("search", engine.DefaultConfig().Search.String(), "engine search: heuristic, minimax or alphabeta")
    depth := fs.Int("max-depth", engine.DefaultMaxDepth, "alpha-beta depth cutoff, 0 for none")
    if err := fs.Parse(args); err != nil {
        return err
    }
    human, err := domain.ParseSymbol(strings.ToUpper(*as))
    if err != nil {
        return err
    }
    mode, err := engine.ParseSearchMode(*search)
    if err != nil {
        return err
    }
    sel := engine.New(engine.Config{Search: mode, MaxDepth: *depth})
    r := term.NewRenderer(out, opts...)
    scanner := bufio.NewScanner(in)

    g := domain.New()
    for !g.Over() {
        if g.Turn != human {
            i, _ := sel.SelectMove(g.Board, g.Turn)
            if err := g.Play(i); err != nil {
                return err
            }
            fmt.Fprintf(out, "NexToe plays %d\n", i)
            continue
        }
        fmt.Fprint(out, r.Board(g.Board))
        fmt.Fprint(out, "your move> ")
        if !scanner.Scan() {
            if err := scanner.Err(); err != nil {
                return err
            }
            return io.ErrUnexpectedEOF
        }
        i, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
        if err != nil {
            fmt.Fprintln(out, "enter a cell index 0-8")
            continue
        }
        if err := g.Play(i); err != nil {
            if errors.Is(err, domain.ErrOutOfRange) || errors.Is(err, domain.ErrOccupied) {
                fmt.Fprintln(out, err)
                continue
            }
            return err
        }
    }
    fmt.Fprint(out, r.Board(g.Board))
    fmt.Fprintln(out, r.Status(g.Board, human))
    return nil
}
