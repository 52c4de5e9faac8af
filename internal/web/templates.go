package web

import (
    "bytes"
    "html/template"
    "log"
    "net/http"

    "github.com/google/uuid"
    "github.com/jaminalder/nextoe/internal/app"
    "github.com/jaminalder/nextoe/internal/domain"
)

type templates struct {
    game  *template.Template
    board *template.Template
    index *template.Template
}

func funcs() template.FuncMap {
    return template.FuncMap{
        "cellSymbol": func(c domain.Cell) string { return c.String() },
        "onLine": func(st domain.Status, i int) bool {
            return st.State == domain.Won && (st.Line[0] == i || st.Line[1] == i || st.Line[2] == i)
        },
    }
}

func loadTemplates() *templates {
    base := template.Must(template.New("base").Funcs(funcs()).Parse(`<!doctype html><html><head>
<meta charset="utf-8"/>
<title>NexToe</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://unpkg.com/htmx.org/dist/ext/sse.js"></script>
</head><body>{{template "content" .}}</body></html>`))
    // Define the board template within the same set so game can include it
    template.Must(base.New("board").Funcs(funcs()).Parse(boardTemplate))
    index := template.Must(template.Must(base.Clone()).New("content").Parse(`<h1>NexToe</h1>
<form action="/game" method="post"><input type="hidden" name="symbol" value="X"><button>Play as X</button></form>
<form action="/game" method="post"><input type="hidden" name="symbol" value="O"><button>Play as O</button></form>`))
    game := template.Must(template.Must(base.Clone()).New("content").Parse(`
<div hx-ext="sse" sse-connect="/game/{{.ID}}/events">
  <div id="board" sse-swap="board">{{template "board" .}}</div>
</div>`))
    // Standalone board template used for fragment rendering
    board := template.Must(template.New("board_only").Funcs(funcs()).Parse(boardTemplate))
    return &templates{game: game, board: board, index: index}
}

func renderTemplate(t *template.Template, data any) []byte {
    var buf bytes.Buffer
    if err := t.Execute(&buf, data); err != nil {
        log.Printf("[web] render %s: %v", t.Name(), err)
    }
    return buf.Bytes()
}

const boardTemplate = `
<div id="board">
  {{if .Error}}
  <div class="alert">{{.Error}}</div>
  {{end}}
  <div class="status">{{.Message}}</div>
  <div class="grid">
  {{range $i, $c := .Game.Game.Board}}
    <form hx-post="/game/{{$.ID}}/play" hx-target="#board" hx-swap="outerHTML" method="post">
      <input type="hidden" name="i" value="{{$i}}">
      <button type="submit"{{if onLine $.Game.Game.Status $i}} class="win"{{end}}{{if $.Game.Game.Status.Over}} disabled{{end}}>{{cellSymbol $c}}</button>
    </form>
  {{end}}
  </div>
  <form hx-post="/game/{{.ID}}/reset" hx-target="#board" hx-swap="outerHTML" method="post"><button>New round</button></form>
</div>
`

type boardData struct {
    ID      string
    Game    app.GameState
    Message string
    Error   string
}

func newBoardData(gs app.GameState, errMsg string) boardData {
    return boardData{ID: gs.ID, Game: gs, Message: statusMessage(gs), Error: errMsg}
}

func statusMessage(gs app.GameState) string {
    st := gs.Game.Status
    switch {
    case st.State == domain.Draw:
        return "Draw"
    case st.State == domain.Won && st.Winner == gs.Human:
        return "You win"
    case st.State == domain.Won:
        return "NexToe wins"
    }
    return "You play " + gs.Human.String()
}

// Helper to set cookie
func ensurePlayerCookie(w http.ResponseWriter, r *http.Request) string {
    if c, err := r.Cookie("player_id"); err == nil && c.Value != "" {
        return c.Value
    }
    v := uuid.NewString()
    http.SetCookie(w, &http.Cookie{Name: "player_id", Value: v, Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
    return v
}
