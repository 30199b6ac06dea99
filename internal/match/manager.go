package match

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gamma/internal/config"
	"gamma/internal/game"
)

var ErrNotFound = errors.New("match not found")

type Store interface {
	Get(id string) (*Match, bool)
	Save(m *Match)
}

type Manager struct {
	store  Store
	cfg    config.Config
	log    *zap.Logger
	hub    Broadcaster
	verify bool
}

func NewManager(s Store, cfg config.Config, log *zap.Logger, hub Broadcaster) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	if hub == nil {
		hub = nopBroadcaster{}
	}
	return &Manager{store: s, cfg: cfg, log: log, hub: hub}
}

// SetVerify turns bookkeeping checks on for matches created afterwards.
func (mg *Manager) SetVerify(on bool) {
	mg.verify = on
}

func (mg *Manager) Create() (*Match, error) {
	if err := mg.cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := game.New(mg.cfg.Width, mg.cfg.Height, mg.cfg.Players, mg.cfg.Areas)
	if err != nil {
		return nil, err
	}
	opts := []Option{WithLogger(mg.log), WithBroadcaster(mg.hub)}
	if mg.verify {
		opts = append(opts, WithVerify())
	}
	m := New(g, opts...)
	mg.store.Save(m)
	return m, nil
}

func (mg *Manager) Get(id string) (*Match, bool) {
	return mg.store.Get(id)
}

func (mg *Manager) Play(id string, x, y int) error {
	m, ok := mg.store.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := m.Play(x, y); err != nil {
		return err
	}
	mg.store.Save(m)
	return nil
}
