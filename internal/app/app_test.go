package app

import (
	"context"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/zhouzirui/health-assistant/backend/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{Addr: "127.0.0.1:0"},
		Store: config.StoreConfig{
			Driver:     config.StoreSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "sessions.db"),
			TTL:        time.Hour,
			CookieName: "health_session",
		},
		App: config.AppConfig{Location: time.UTC},
	}
}

func TestNewWithoutModel(t *testing.T) {
	a, err := New(context.Background(), testConfig(t), nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer a.Close()

	if a.Assistant.ModelEnabled() {
		t.Fatalf("model must be disabled without credentials")
	}
	if a.Router() == nil {
		t.Fatalf("router must not be nil")
	}
}

func TestOpenStoreRejectsUnknownDriver(t *testing.T) {
	if _, err := OpenStore(context.Background(), config.StoreConfig{Driver: "etcd"}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestRunServerStopsOnCancel(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	srv := &http.Server{Handler: http.NotFoundHandler()}
	go func() { done <- runServer(ctx, srv, listener) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runServer returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop")
	}
}
