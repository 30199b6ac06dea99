// Package events fans match events out to subscribed writers as JSON lines.
package events

import (
	"io"
	"sync"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

type message struct {
	Match  string `json:"match"`
	Action string `json:"action"`
	Data   any    `json:"data"`
}

// Hub implements match.Broadcaster.
type Hub struct {
	mu      sync.RWMutex
	matches map[string]map[io.Writer]struct{}
	log     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		matches: make(map[string]map[io.Writer]struct{}),
		log:     log,
	}
}

func (h *Hub) Subscribe(matchID string, w io.Writer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.matches[matchID]; !ok {
		h.matches[matchID] = make(map[io.Writer]struct{})
	}
	h.matches[matchID][w] = struct{}{}
}

func (h *Hub) Unsubscribe(matchID string, w io.Writer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.matches[matchID], w)
	if len(h.matches[matchID]) == 0 {
		delete(h.matches, matchID)
	}
}

// Broadcast writes one line per subscriber. Subscribers failing a write are
// dropped.
func (h *Hub) Broadcast(matchID string, action string, data any) {
	line, err := sonic.Marshal(message{Match: matchID, Action: action, Data: data})
	if err != nil {
		h.log.Error("encode event", zap.String("action", action), zap.Error(err))
		return
	}
	line = append(line, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	for w := range h.matches[matchID] {
		if _, err := w.Write(line); err != nil {
			h.log.Warn("drop subscriber", zap.String("match", matchID), zap.Error(err))
			delete(h.matches[matchID], w)
		}
	}
}
