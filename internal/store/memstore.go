package store

import (
	"slices"
	"strings"
	"sync"

	"gamma/internal/match"
)

type MemoryStore struct {
	mu      sync.RWMutex
	matches map[string]*match.Match
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		matches: map[string]*match.Match{},
	}
}

func (s *MemoryStore) Get(id string) (*match.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[id]
	return m, ok
}

func (s *MemoryStore) Save(m *match.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[m.ID] = m
}

// List returns the stored matches, oldest first.
func (s *MemoryStore) List() []*match.Match {
	s.mu.RLock()
	out := make([]*match.Match, 0, len(s.matches))
	for _, m := range s.matches {
		out = append(out, m)
	}
	s.mu.RUnlock()
	slices.SortFunc(out, func(a, b *match.Match) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

func (s *MemoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.matches, id)
}
