package session

import (
	"context"
	"errors"

	"github.com/zhouzirui/health-assistant/backend/internal/model/chat"
)

// ErrNotFound is returned by Load when the session has never been saved.
var ErrNotFound = errors.New("session not found")

// Store persists per-session state keyed by session id.
// Implementations return copies; callers may mutate what they load.
type Store interface {
	Load(ctx context.Context, id string) (*chat.State, error)
	Save(ctx context.Context, id string, state *chat.State) error
	Delete(ctx context.Context, id string) error
	Close() error
}
