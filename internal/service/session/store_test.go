package session_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/health-assistant/backend/internal/model/chat"
	"github.com/zhouzirui/health-assistant/backend/internal/model/health"
	"github.com/zhouzirui/health-assistant/backend/internal/service/session"
)

func sampleState() *chat.State {
	state := chat.NewState()
	state.Profile.Age = "30"
	state.Profile.AddGoal("бег")
	state.Medications = append(state.Medications, health.Medication{Name: "Витамин D", Time: "09:00"})
	state.Reminders = append(state.Reminders, health.Reminder{Text: "Попить воды", Time: "10:00", Repeat: "ежедневно"})
	state.AppendUser("привет", "2026-06-15 08:30:00")
	state.AppendAssistant(chat.Reply{Text: "Здравствуйте", Suggestions: []chat.Suggestion{{Label: "/profile", Command: "/profile"}}}, "2026-06-15 08:30:01")
	return state
}

func exerciseStore(t *testing.T, store session.Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Load(ctx, "missing")
	require.ErrorIs(t, err, session.ErrNotFound)

	original := sampleState()
	require.NoError(t, store.Save(ctx, "abc", original))

	loaded, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, original, loaded)

	loaded.Profile.Age = "99"
	again, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "30", again.Profile.Age, "loaded state must not alias the stored one")

	again.Reminders = nil
	require.NoError(t, store.Save(ctx, "abc", again))
	overwritten, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Empty(t, overwritten.Reminders)

	require.NoError(t, store.Delete(ctx, "abc"))
	_, err = store.Load(ctx, "abc")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, session.NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	store, err := session.NewSQLiteStore(filepath.Join(t.TempDir(), "nested", "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	exerciseStore(t, store)
}

func TestManagerUpdateCreatesDefaults(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	manager := session.NewManager(store)

	err := manager.Update(ctx, "new", func(state *chat.State) error {
		assert.Empty(t, state.ChatHistory)
		assert.Equal(t, health.NewProfile(), state.Profile)
		state.AppendUser("привет", "ts")
		return nil
	})
	require.NoError(t, err)

	saved, err := store.Load(ctx, "new")
	require.NoError(t, err)
	assert.Len(t, saved.ChatHistory, 1)
}

func TestManagerUpdateSavesOnError(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	manager := session.NewManager(store)
	boom := errors.New("model down")

	err := manager.Update(ctx, "s", func(state *chat.State) error {
		state.AppendUser("привет", "ts")
		return boom
	})
	assert.ErrorIs(t, err, boom)

	saved, err := store.Load(ctx, "s")
	require.NoError(t, err)
	assert.Len(t, saved.ChatHistory, 1)
}

func TestManagerViewDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	manager := session.NewManager(store)

	require.NoError(t, manager.View(ctx, "ghost", func(state *chat.State) error {
		state.AppendUser("не сохранится", "ts")
		return nil
	}))

	_, err := store.Load(ctx, "ghost")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestManagerSerializesUpdates(t *testing.T) {
	ctx := context.Background()
	manager := session.NewManager(session.NewMemoryStore())

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = manager.Update(ctx, "shared", func(state *chat.State) error {
				state.AppendUser("x", "ts")
				return nil
			})
		}()
	}
	wg.Wait()

	require.NoError(t, manager.View(ctx, "shared", func(state *chat.State) error {
		assert.Len(t, state.ChatHistory, workers)
		return nil
	}))
}
