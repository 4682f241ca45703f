package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

func echoSession() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(SessionID(r.Context())))
	})
}

func TestSessionIssuesCookie(t *testing.T) {
	h := Session(SessionOptions{CookieName: "sid", MaxAge: time.Hour})(echoSession())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	cookies := resp.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "sid" {
		t.Fatalf("expected one sid cookie, got %+v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
	if cookies[0].Value != resp.Body.String() {
		t.Fatalf("context id %q differs from cookie %q", resp.Body.String(), cookies[0].Value)
	}
	if _, err := uuid.Parse(cookies[0].Value); err != nil {
		t.Fatalf("cookie is not a uuid: %v", err)
	}
}

func TestSessionReusesValidCookie(t *testing.T) {
	h := Session(SessionOptions{CookieName: "sid"})(echoSession())
	id := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: id})
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if resp.Body.String() != id {
		t.Fatalf("expected %q, got %q", id, resp.Body.String())
	}
	if len(resp.Result().Cookies()) != 0 {
		t.Fatalf("no cookie should be set for a known session")
	}
}

func TestSessionReplacesMalformedCookie(t *testing.T) {
	h := Session(SessionOptions{CookieName: "sid"})(echoSession())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "../../etc"})
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if resp.Body.String() == "../../etc" {
		t.Fatalf("malformed cookie must not be trusted")
	}
}

func TestCORSPreflight(t *testing.T) {
	called := false
	h := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	if called {
		t.Fatalf("preflight must not reach the handler")
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("unexpected allow-origin %q", got)
	}
}
