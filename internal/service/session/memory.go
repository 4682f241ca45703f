package session

import (
	"context"
	"sync"

	"github.com/zhouzirui/health-assistant/backend/internal/model/chat"
)

// MemoryStore keeps sessions in process memory. State is lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*chat.State
}

// NewMemoryStore bootstraps an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*chat.State)}
}

// Load returns a copy of the stored state.
func (s *MemoryStore) Load(_ context.Context, id string) (*chat.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return state.Clone(), nil
}

// Save stores a copy of state under id.
func (s *MemoryStore) Save(_ context.Context, id string, state *chat.State) error {
	copied := state.Clone()

	s.mu.Lock()
	s.sessions[id] = copied
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error { return nil }
