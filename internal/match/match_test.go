package match

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/google/uuid"

	"gamma/internal/board"
	"gamma/internal/config"
	"gamma/internal/game"
)

type event struct {
	id, action string
	data       any
}

type recorder struct {
	events []event
}

func (r *recorder) Broadcast(id, action string, data any) {
	r.events = append(r.events, event{id, action, data})
}

func (r *recorder) actions() []string {
	var out []string
	for _, e := range r.events {
		out = append(out, e.action)
	}
	return out
}

func newMatch(t *testing.T, w, h, players, areas int) (*Match, *recorder) {
	t.Helper()
	g, err := game.New(w, h, players, areas)
	if err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	return New(g, WithBroadcaster(rec), WithVerify()), rec
}

func TestNew(t *testing.T) {
	m, _ := newMatch(t, 3, 3, 2, 1)
	if _, err := uuid.Parse(m.ID); err != nil {
		t.Errorf("ID %q: %v", m.ID, err)
	}
	if m.Current() != 1 || m.Status() != InProgress {
		t.Errorf("current=%d status=%s", m.Current(), m.Status())
	}
}

func TestPlayAdvancesTurn(t *testing.T) {
	m, rec := newMatch(t, 3, 3, 2, 1)
	if err := m.Play(0, 0); err != nil {
		t.Fatal(err)
	}
	if m.Current() != 2 {
		t.Errorf("Current() = %d, want 2", m.Current())
	}
	want := []game.Move{{Player: 1, X: 0, Y: 0}}
	if got := m.History(); !reflect.DeepEqual(got, want) {
		t.Errorf("History() = %+v, want %+v", got, want)
	}
	if len(rec.events) != 1 {
		t.Fatalf("events = %v", rec.actions())
	}
	e := rec.events[0]
	ev, ok := e.data.(MoveEvent)
	if e.id != m.ID || e.action != ActionMove || !ok || ev.Next != 2 || ev.Board != "...\n...\n1..\n" {
		t.Errorf("event = %+v", e)
	}
}

func TestPlayRejected(t *testing.T) {
	m, rec := newMatch(t, 3, 3, 2, 1)
	if err := m.Play(1, 1); err != nil {
		t.Fatal(err)
	}
	if err := m.Play(1, 1); !errors.Is(err, game.ErrOccupied) {
		t.Fatalf("Play() = %v, want %v", err, game.ErrOccupied)
	}
	if m.Current() != 2 || len(m.History()) != 1 || len(rec.events) != 1 {
		t.Errorf("rejected move changed the match: current=%d history=%d events=%d",
			m.Current(), len(m.History()), len(rec.events))
	}
}

func TestSkipsBlockedPlayer(t *testing.T) {
	m, rec := newMatch(t, 3, 1, 2, 1)
	for _, mv := range [][2]int{{0, 0}, {1, 0}} {
		if err := m.Play(mv[0], mv[1]); err != nil {
			t.Fatal(err)
		}
	}
	// Player 1 is walled in at (0,0).
	if m.Current() != 2 {
		t.Fatalf("Current() = %d, want 2", m.Current())
	}
	if err := m.Play(2, 0); err != nil {
		t.Fatal(err)
	}
	if m.Status() != Finished || m.Current().Valid() {
		t.Fatalf("status=%s current=%d", m.Status(), m.Current())
	}
	if got, want := rec.actions(), []string{ActionMove, ActionMove, ActionGameOver}; !reflect.DeepEqual(got, want) {
		t.Errorf("actions = %v, want %v", got, want)
	}
	over := rec.events[2].data.(GameOverEvent)
	if !reflect.DeepEqual(over.Winners, []board.PlayerID{2}) {
		t.Errorf("winners = %v", over.Winners)
	}
	if err := m.Play(0, 0); !errors.Is(err, ErrFinished) {
		t.Errorf("Play() after game over = %v, want %v", err, ErrFinished)
	}
}

func TestEnd(t *testing.T) {
	m, rec := newMatch(t, 4, 4, 2, 2)
	if err := m.Play(0, 0); err != nil {
		t.Fatal(err)
	}
	m.End()
	m.End()
	if m.Status() != Finished {
		t.Fatalf("Status() = %s", m.Status())
	}
	if got, want := rec.actions(), []string{ActionMove, ActionGameOver}; !reflect.DeepEqual(got, want) {
		t.Errorf("actions = %v, want %v", got, want)
	}
	s := m.Summary()
	if !reflect.DeepEqual(s.Winners, []board.PlayerID{1}) || len(s.Moves) != 1 || s.Standings[0].Player != 1 {
		t.Errorf("Summary() = %+v", s)
	}
}

func TestSummaryInProgress(t *testing.T) {
	m, _ := newMatch(t, 2, 2, 3, 1)
	s := m.Summary()
	if s.Status != InProgress || s.Winners != nil || s.Current != 1 {
		t.Errorf("Summary() = %+v", s)
	}
	if len(s.State.Players) != 3 || len(s.State.Board) != 2 {
		t.Errorf("State = %+v", s.State)
	}
}

type mapStore struct {
	mu sync.Mutex
	m  map[string]*Match
}

func (s *mapStore) Get(id string) (*Match, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.m[id]
	return m, ok
}

func (s *mapStore) Save(m *Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[m.ID] = m
}

func TestManager(t *testing.T) {
	st := &mapStore{m: map[string]*Match{}}
	rec := &recorder{}
	mg := NewManager(st, config.Config{Width: 2, Height: 1, Players: 2, Areas: 1}, nil, rec)
	mg.SetVerify(true)

	m, err := mg.Create()
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := mg.Get(m.ID); !ok || got != m {
		t.Fatal("created match is not stored")
	}
	if err := mg.Play("nope", 0, 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("Play(unknown) = %v, want %v", err, ErrNotFound)
	}
	if err := mg.Play(m.ID, 0, 0); err != nil {
		t.Fatal(err)
	}
	if err := mg.Play(m.ID, 1, 0); err != nil {
		t.Fatal(err)
	}
	if m.Status() != Finished {
		t.Errorf("Status() = %s", m.Status())
	}
	if got, want := rec.actions(), []string{ActionMove, ActionGameOver}; !reflect.DeepEqual(got, want) {
		t.Errorf("actions = %v, want %v", got, want)
	}
}

func TestManagerBadConfig(t *testing.T) {
	mg := NewManager(&mapStore{m: map[string]*Match{}}, config.Config{Width: 2, Height: 2, Players: 40, Areas: 1}, nil, nil)
	if _, err := mg.Create(); !errors.Is(err, config.ErrConfig) {
		t.Errorf("Create() = %v, want %v", err, config.ErrConfig)
	}
}
