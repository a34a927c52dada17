package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matt-dz/tripmeal/internal/api/requestid"
	"github.com/matt-dz/tripmeal/internal/api/session"
	"github.com/matt-dz/tripmeal/internal/config"
	"github.com/matt-dz/tripmeal/internal/env"
	"github.com/matt-dz/tripmeal/internal/log"
	"github.com/oklog/ulid/v2"
)

func testEnv() *env.Env {
	return env.New(log.NullLogger(), nil, config.Config{
		Env: config.EnvDev,
		Secret: config.Secret{
			Value:   "test-secret-16-bytes-long",
			Version: "1",
		},
	})
}

func sessionCookie(t *testing.T, e *env.Env, username string) *http.Cookie {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	if err := session.Login(w, r, e.Config, username); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	return w.Result().Cookies()[0]
}

func TestAddRequestID(t *testing.T) {
	var got string
	handler := AddRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = requestid.ExtractRequestID(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if _, err := ulid.ParseStrict(got); err != nil {
		t.Errorf("expected a ULID request id, got %q: %v", got, err)
	}
}

func TestLoadSession(t *testing.T) {
	e := testEnv()

	tests := []struct {
		name         string
		cookie       *http.Cookie
		wantUsername string
		wantCleared  bool
	}{
		{
			name: "no cookie",
		},
		{
			name:         "valid cookie",
			cookie:       sessionCookie(t, e, "chef"),
			wantUsername: "chef",
		},
		{
			name:        "forged cookie",
			cookie:      &http.Cookie{Name: "session", Value: "forged"},
			wantCleared: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *session.Session
			handler := InjectEnv(e)(LoadSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = session.FromCtx(r.Context())
			})))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if got == nil {
				t.Fatal("handler not called")
			}
			if got.Username != tt.wantUsername {
				t.Errorf("expected username %q, got %q", tt.wantUsername, got.Username)
			}

			cleared := false
			for _, c := range w.Result().Cookies() {
				if c.Name == "session" && c.MaxAge < 0 {
					cleared = true
				}
			}
			if cleared != tt.wantCleared {
				t.Errorf("expected cookie cleared=%v, got %v", tt.wantCleared, cleared)
			}
		})
	}
}

func TestRequireLogin(t *testing.T) {
	e := testEnv()

	tests := []struct {
		name         string
		cookie       *http.Cookie
		wantStatus   int
		wantLocation string
	}{
		{
			name:         "anonymous is redirected",
			wantStatus:   http.StatusFound,
			wantLocation: "/login/",
		},
		{
			name:       "logged in passes through",
			cookie:     sessionCookie(t, e, "chef"),
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := InjectEnv(e)(LoadSession(RequireLogin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			}))))

			req := httptest.NewRequest(http.MethodGet, "/favourites/", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if loc := w.Header().Get("Location"); loc != tt.wantLocation {
				t.Errorf("expected location %q, got %q", tt.wantLocation, loc)
			}
		})
	}
}
