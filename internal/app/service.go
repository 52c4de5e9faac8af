package app

import (
    "context"
    "errors"
    "log"
    "sync"
    "time"

    "github.com/google/uuid"
    "github.com/jaminalder/nextoe/internal/domain"
    "github.com/jaminalder/nextoe/internal/engine"
)

// Errors exposed by the service layer.
var (
    ErrNotFound    = errors.New("game not found")
    ErrNotYourTurn = errors.New("not your turn")
    ErrNotAPlayer  = errors.New("not a player")
)

// GameState is the in-memory state tracked per game.
type GameState struct {
    ID      string
    Game    domain.Game
    Human   domain.Cell
    AI      domain.Cell
    LastAI  int // -1 until the engine has moved
    Player  string
    Created time.Time
    Updated time.Time
}

type subscriber struct {
    ch        chan GameState
    done      chan struct{}
    closeOnce sync.Once
}

// close ends the subscription; done is closed with ch so the context watcher exits too.
func (s *subscriber) close() {
    s.closeOnce.Do(func() {
        close(s.ch)
        close(s.done)
    })
}

// Service manages games against the engine and their subscribers.
type Service struct {
    mu     sync.Mutex
    engine *engine.Selector
    games  map[string]*GameState
    subs   map[string]map[*subscriber]struct{}
}

// NewService creates a service backed by the given selector; nil uses engine.DefaultConfig.
func NewService(sel *engine.Selector) *Service {
    if sel == nil {
        sel = engine.New(engine.DefaultConfig())
    }
    return &Service{
        engine: sel,
        games:  make(map[string]*GameState),
        subs:   make(map[string]map[*subscriber]struct{}),
    }
}

// Engine returns the selector shared by all games.
func (s *Service) Engine() *engine.Selector { return s.engine }

// CreateGame creates and registers a new game. When the human plays O the engine opens.
func (s *Service) CreateGame(human domain.Cell) (*GameState, error) {
    if !human.IsSymbol() {
        return nil, domain.ErrInvalidSymbol
    }
    s.mu.Lock()
    defer s.mu.Unlock()
    now := time.Now()
    gs := &GameState{
        ID:      uuid.NewString(),
        Game:    domain.New(),
        Human:   human,
        AI:      domain.Opponent(human),
        LastAI:  -1,
        Created: now,
        Updated: now,
    }
    s.replyLocked(gs)
    s.games[gs.ID] = gs
    cp := *gs
    return &cp, nil
}

// Get returns a copy of the game state if present.
func (s *Service) Get(id string) (*GameState, bool) {
    s.mu.Lock()
    defer s.mu.Unlock()
    gs, ok := s.games[id]
    if !ok {
        return nil, false
    }
    cp := *gs
    return &cp, true
}

// Join claims the human seat for playerID if it is free. It returns the human
// symbol for the seated player and Empty for spectators.
func (s *Service) Join(id, playerID string) (domain.Cell, *GameState, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    gs, ok := s.games[id]
    if !ok {
        return domain.Empty, nil, ErrNotFound
    }
    side := domain.Empty
    if gs.Player == "" || gs.Player == playerID {
        gs.Player = playerID
        side = gs.Human
        gs.Updated = time.Now()
    }
    cp := *gs
    return side, &cp, nil
}

// Play applies the seated player's move at index i, lets the engine reply, and broadcasts.
func (s *Service) Play(id, playerID string, i int) (*GameState, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    gs, ok := s.games[id]
    if !ok {
        return nil, ErrNotFound
    }
    if gs.Player != playerID {
        return nil, ErrNotAPlayer
    }
    if !gs.Game.Over() && gs.Game.Turn != gs.Human {
        return nil, ErrNotYourTurn
    }
    if err := gs.Game.Play(i); err != nil {
        return nil, err
    }
    s.replyLocked(gs)
    gs.Updated = time.Now()
    cp := *gs
    s.broadcastLocked(id, cp)
    return &cp, nil
}

// Reset starts the game over with the same seats and broadcasts the fresh board.
func (s *Service) Reset(id, playerID string) (*GameState, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    gs, ok := s.games[id]
    if !ok {
        return nil, ErrNotFound
    }
    if gs.Player != playerID {
        return nil, ErrNotAPlayer
    }
    gs.Game = domain.New()
    gs.LastAI = -1
    s.replyLocked(gs)
    gs.Updated = time.Now()
    cp := *gs
    s.broadcastLocked(id, cp)
    return &cp, nil
}

// replyLocked plays the engine's move when it is the engine's turn.
func (s *Service) replyLocked(gs *GameState) {
    if gs.Game.Over() || gs.Game.Turn != gs.AI {
        return
    }
    i, ok := s.engine.SelectMove(gs.Game.Board, gs.AI)
    if !ok {
        return
    }
    if err := gs.Game.Play(i); err != nil {
        // The selector only returns empty cells of an unfinished game.
        panic(err)
    }
    gs.LastAI = i
}

// broadcastLocked fans out a snapshot without blocking; slow subscribers are closed and dropped.
func (s *Service) broadcastLocked(id string, gs GameState) {
    set, ok := s.subs[id]
    if !ok {
        return
    }
    dropped := 0
    for sub := range set {
        select {
        case sub.ch <- gs:
        default:
            sub.close()
            delete(set, sub)
            dropped++
        }
    }
    if dropped > 0 {
        log.Printf("[app] dropped %d slow subscriber(s) of game %s", dropped, id)
    }
}

// Subscribe registers a subscriber for a game. Returns a channel and an unsubscribe func.
// The subscription ends when ctx is done or unsub is called, whichever comes first.
func (s *Service) Subscribe(ctx context.Context, id string) (<-chan GameState, func(), error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if _, ok := s.games[id]; !ok {
        return nil, nil, ErrNotFound
    }
    set := s.subs[id]
    if set == nil {
        set = make(map[*subscriber]struct{})
        s.subs[id] = set
    }
    sub := &subscriber{ch: make(chan GameState, 1), done: make(chan struct{})}
    set[sub] = struct{}{}

    unsubOnce := &sync.Once{}
    unsub := func() {
        unsubOnce.Do(func() {
            s.mu.Lock()
            if set, ok := s.subs[id]; ok {
                delete(set, sub)
                if len(set) == 0 {
                    delete(s.subs, id)
                }
            }
            s.mu.Unlock()
            sub.close()
        })
    }
    go func() {
        select {
        case <-ctx.Done():
            unsub()
        case <-sub.done:
        }
    }()
    return sub.ch, unsub, nil
}
