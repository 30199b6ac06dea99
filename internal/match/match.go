package match

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gamma/internal/board"
	"gamma/internal/game"
)

type Status string

const (
	InProgress Status = "in_progress"
	Finished   Status = "finished"
)

var ErrFinished = errors.New("match is finished")

// Match drives a game turn by turn. It is not safe for concurrent use.
type Match struct {
	ID        string
	CreatedAt time.Time

	game    *game.Game
	current board.PlayerID
	status  Status
	history []game.Move

	log    *zap.Logger
	hub    Broadcaster
	verify bool
}

type Option func(*Match)

func WithLogger(l *zap.Logger) Option {
	return func(m *Match) { m.log = l }
}

func WithBroadcaster(b Broadcaster) Option {
	return func(m *Match) { m.hub = b }
}

// WithVerify rechecks the game bookkeeping after every move.
func WithVerify() Option {
	return func(m *Match) { m.verify = true }
}

func New(g *game.Game, opts ...Option) *Match {
	m := &Match{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		game:      g,
		status:    InProgress,
		log:       zap.NewNop(),
		hub:       nopBroadcaster{},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With(zap.String("match", m.ID))

	m.current = g.NextPlayer(board.NoPlayer)
	if !m.current.Valid() {
		m.status = Finished
	}
	m.log.Info("match created",
		zap.Int("width", g.Width()),
		zap.Int("height", g.Height()),
		zap.Int("players", g.Players()),
		zap.Uint32("areas", g.AreaCap()),
	)
	return m
}

func (m *Match) Game() *game.Game        { return m.game }
func (m *Match) Current() board.PlayerID { return m.current }
func (m *Match) Status() Status          { return m.status }

func (m *Match) History() []game.Move {
	return append([]game.Move(nil), m.history...)
}

// Play makes the current player's move at (x, y) and passes the turn on.
func (m *Match) Play(x, y int) error {
	if m.status == Finished {
		return ErrFinished
	}
	p := m.current
	if err := m.game.Move(p, x, y); err != nil {
		m.log.Info("move rejected",
			zap.Uint32("player", uint32(p)),
			zap.Int("x", x),
			zap.Int("y", y),
			zap.Error(err),
		)
		return err
	}
	m.history = append(m.history, game.Move{Player: p, X: x, Y: y})
	m.log.Debug("move",
		zap.Uint32("player", uint32(p)),
		zap.Int("x", x),
		zap.Int("y", y),
		zap.Uint64("busy", m.game.BusyFields(p)),
		zap.Uint32("areas", m.game.Areas(p)),
	)

	if m.verify {
		if err := m.game.Verify(); err != nil {
			m.log.Error("bookkeeping broken", zap.Error(err))
			return fmt.Errorf("after move %d: %w", len(m.history), err)
		}
	}

	m.current = m.game.NextPlayer(p)
	if !m.current.Valid() {
		m.finish()
		return nil
	}
	m.hub.Broadcast(m.ID, ActionMove, MoveEvent{
		Player: p,
		X:      x,
		Y:      y,
		Next:   m.current,
		Board:  m.game.Board(),
	})
	return nil
}

// End stops the match early. Ending a finished match does nothing.
func (m *Match) End() {
	if m.status == Finished {
		return
	}
	m.finish()
}

func (m *Match) finish() {
	m.status = Finished
	m.current = board.NoPlayer
	winners := m.game.Winners()
	m.log.Info("game over",
		zap.Int("moves", len(m.history)),
		zap.Any("winners", winners),
	)
	m.hub.Broadcast(m.ID, ActionGameOver, GameOverEvent{
		Winners: winners,
		Board:   m.game.Board(),
	})
}

// Summary is the exportable report of a match.
type Summary struct {
	ID        string           `json:"id"`
	Status    Status           `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	Current   board.PlayerID   `json:"current,omitempty"`
	Moves     []game.Move      `json:"moves"`
	Standings []game.Standing  `json:"standings"`
	Winners   []board.PlayerID `json:"winners,omitempty"`
	State     game.Snapshot    `json:"state"`
}

func (m *Match) Summary() Summary {
	s := Summary{
		ID:        m.ID,
		Status:    m.status,
		CreatedAt: m.CreatedAt,
		Current:   m.current,
		Moves:     m.History(),
		Standings: m.game.Standings(),
		State:     m.game.Snapshot(),
	}
	if m.status == Finished {
		s.Winners = m.game.Winners()
	}
	return s
}
