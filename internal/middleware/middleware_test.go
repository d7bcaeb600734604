package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
)

func TestRequireLoginRedirectsAnonymous(t *testing.T) {
	sm := scs.New()

	handler := sm.LoadAndSave(RequireLogin(sm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("protected handler reached without login")
	})))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if loc := w.Header().Get("Location"); loc != LoginPath {
		t.Errorf("Location = %q, want %q", loc, LoginPath)
	}
}

func TestRequireLoginPassesAuthenticated(t *testing.T) {
	sm := scs.New()

	called := false
	handler := sm.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Establish the session, then run the gate within the same
		// session scope.
		sm.Put(r.Context(), SessionKeyAdminID, int64(1))
		RequireLogin(sm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})).ServeHTTP(w, r)
	}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)
	handler.ServeHTTP(w, req)

	if !called {
		t.Error("protected handler not reached with admin session")
	}
}

func TestStripTrailingSlash(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := StripTrailingSlash(next)

	tests := []struct {
		path     string
		wantCode int
		wantLoc  string
	}{
		{"/parques/", http.StatusMovedPermanently, "/parques"},
		{"/trilhas/?dificuldade=facil", http.StatusMovedPermanently, "/trilhas?dificuldade=facil"},
		{"/parques", http.StatusOK, ""},
		{"/", http.StatusOK, ""},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", tt.path, nil)
		handler.ServeHTTP(w, req)

		if w.Code != tt.wantCode {
			t.Errorf("%s: status = %d, want %d", tt.path, w.Code, tt.wantCode)
		}
		if tt.wantLoc != "" && w.Header().Get("Location") != tt.wantLoc {
			t.Errorf("%s: Location = %q, want %q", tt.path, w.Header().Get("Location"), tt.wantLoc)
		}
	}
}

func TestSecurityHeaders(t *testing.T) {
	handler := SecurityHeaders(DefaultSecurityHeadersConfig(false))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := w.Header().Get("X-Frame-Options"); got != "SAMEORIGIN" {
		t.Errorf("X-Frame-Options = %q", got)
	}
	if got := w.Header().Get("Strict-Transport-Security"); got == "" {
		t.Error("missing Strict-Transport-Security in production mode")
	}
	if got := w.Header().Get("Content-Security-Policy"); got == "" {
		t.Error("missing Content-Security-Policy")
	}
}

func TestSecurityHeadersDevSkipsHSTS(t *testing.T) {
	handler := SecurityHeaders(DefaultSecurityHeadersConfig(true))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if got := w.Header().Get("Strict-Transport-Security"); got != "" {
		t.Errorf("unexpected HSTS header in development: %q", got)
	}
}

func TestTimeout(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})
	handler := Timeout(20 * time.Millisecond)(slow)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}

func TestTimeoutFastHandler(t *testing.T) {
	handler := Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", w.Code, http.StatusTeapot)
	}
}
