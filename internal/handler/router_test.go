package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/zhouzirui/health-assistant/backend/internal/model/knowledge"
	"github.com/zhouzirui/health-assistant/backend/internal/service/assistant"
	"github.com/zhouzirui/health-assistant/backend/internal/service/session"
)

func newTestRouter() http.Handler {
	kb := knowledge.NewMemoryStore(knowledge.Seed())
	clock := func() time.Time { return time.Date(2026, 6, 15, 8, 30, 0, 0, time.UTC) }
	return NewRouter(Dependencies{
		Sessions:   session.NewManager(session.NewMemoryStore()),
		Assistant:  assistant.NewService(assistant.Options{Knowledge: kb, Clock: clock}),
		Knowledge:  kb,
		Clock:      clock,
		CookieName: "health_session",
	})
}

func TestRouterSessionRoundTrip(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte(`{"message": "/profile set age 30"}`)))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	cookies := resp.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("expected a session cookie")
	}

	req = httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte(`{"message": "/profile"}`)))
	req.AddCookie(cookies[0])
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if !strings.Contains(resp.Body.String(), "Возраст: 30") {
		t.Fatalf("profile change not visible on next request: %s", resp.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/clear_profile", nil)
	req.AddCookie(cookies[0])
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if !strings.Contains(resp.Body.String(), `"status":"success"`) {
		t.Fatalf("unexpected clear_profile body %s", resp.Body.String())
	}
}

func TestRouterKnowledge(t *testing.T) {
	r := newTestRouter()

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/knowledge", nil))
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), "питание") {
		t.Fatalf("unexpected knowledge listing %d: %s", resp.Code, resp.Body.String())
	}

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/knowledge/"+url.PathEscape("Сон"), nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for category, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/knowledge/"+url.PathEscape("астрология"), nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown category, got %d", resp.Code)
	}
}

func TestRouterHealthz(t *testing.T) {
	resp := httptest.NewRecorder()
	newTestRouter().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}
