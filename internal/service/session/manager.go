package session

import (
	"context"
	"errors"
	"sync"

	"github.com/zhouzirui/health-assistant/backend/internal/model/chat"
)

// Manager serializes read-modify-write cycles per session id on top of a Store.
type Manager struct {
	store Store

	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func NewManager(store Store) *Manager {
	return &Manager{store: store, locks: make(map[string]*entry)}
}

// Store exposes the underlying store.
func (m *Manager) Store() Store {
	return m.store
}

func (m *Manager) lock(id string) func() {
	m.mu.Lock()
	e, ok := m.locks[id]
	if !ok {
		e = &entry{}
		m.locks[id] = e
	}
	e.refs++
	m.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()

		m.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(m.locks, id)
		}
		m.mu.Unlock()
	}
}

func (m *Manager) load(ctx context.Context, id string) (*chat.State, error) {
	state, err := m.store.Load(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return chat.NewState(), nil
	}
	if err != nil {
		return nil, err
	}
	return state, nil
}

// Update loads the session (fresh defaults if absent), runs fn and saves the result.
// The state is saved even when fn fails so partial progress such as the user turn survives.
func (m *Manager) Update(ctx context.Context, id string, fn func(*chat.State) error) error {
	unlock := m.lock(id)
	defer unlock()

	state, err := m.load(ctx, id)
	if err != nil {
		return err
	}

	fnErr := fn(state)
	if err := m.store.Save(ctx, id, state); err != nil {
		return err
	}
	return fnErr
}

// View loads the session read-only. Nothing is persisted.
func (m *Manager) View(ctx context.Context, id string, fn func(*chat.State) error) error {
	unlock := m.lock(id)
	defer unlock()

	state, err := m.load(ctx, id)
	if err != nil {
		return err
	}
	return fn(state)
}
