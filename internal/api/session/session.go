// Package session tracks who is logged in and the flash messages queued for
// the next rendered page.
package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/matt-dz/tripmeal/internal/config"
	"github.com/matt-dz/tripmeal/internal/jwt"
)

const (
	sessionCookieLifetime = int(jwt.JWTDuration / time.Second)
	flashCookieName       = "flash"
)

type sessionKeyType struct{}

var sessionKey sessionKeyType

type Session struct {
	Username string

	pending []string
}

func (s *Session) LoggedIn() bool {
	return s != nil && s.Username != ""
}

// Flash queues msg for the next page rendered for this browser.
func (s *Session) Flash(msg string) {
	s.pending = append(s.pending, msg)
}

func WithCtx(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// FromCtx returns the request's session. A request that never passed through
// the session middleware gets an anonymous session.
func FromCtx(ctx context.Context) *Session {
	if s, ok := ctx.Value(sessionKey).(*Session); ok && s != nil {
		return s
	}
	return &Session{}
}

func CookieName(conf config.Config) string {
	if conf.IsProd() {
		return "__Host-session"
	}
	return "session"
}

// Login signs a token for username and sets it on w.
func Login(w http.ResponseWriter, r *http.Request, conf config.Config, username string) error {
	token, err := jwt.GenerateJWT(username, []byte(conf.Secret.Value), conf.Secret.Version, time.Now())
	if err != nil {
		return fmt.Errorf("creating session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName(conf),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   sessionCookieLifetime,
		SameSite: http.SameSiteLaxMode,
		Secure:   conf.IsProd(),
	})
	FromCtx(r.Context()).Username = username
	return nil
}

func Logout(w http.ResponseWriter, r *http.Request, conf config.Config) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName(conf),
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
		Secure:   conf.IsProd(),
	})
	FromCtx(r.Context()).Username = ""
}

// Load resolves the session cookie on r. A missing or invalid cookie yields
// an anonymous session.
func Load(r *http.Request, conf config.Config) (*Session, error) {
	cookie, err := r.Cookie(CookieName(conf))
	if err != nil {
		return &Session{}, nil
	}

	username, err := jwt.ValidateJWT(cookie.Value, conf.Secret.Version, []byte(conf.Secret.Value))
	if err != nil {
		return &Session{}, fmt.Errorf("validating session token: %w", err)
	}

	return &Session{Username: username}, nil
}

// Redirect stores the queued flashes in a cookie and redirects to url.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	s := FromCtx(r.Context())
	if len(s.pending) > 0 {
		msgs := append(readFlashCookie(r), s.pending...)
		s.pending = nil
		setFlashCookie(w, msgs)
	}
	http.Redirect(w, r, url, http.StatusFound)
}

// Flashes drains every message waiting for this browser: those carried over
// from a redirect followed by those queued during this request.
func Flashes(w http.ResponseWriter, r *http.Request) []string {
	msgs := readFlashCookie(r)
	if msgs != nil {
		setFlashCookie(w, nil)
	}

	s := FromCtx(r.Context())
	msgs = append(msgs, s.pending...)
	s.pending = nil
	return msgs
}

func readFlashCookie(r *http.Request) []string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var msgs []string
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil
	}
	return msgs
}

func setFlashCookie(w http.ResponseWriter, msgs []string) {
	cookie := &http.Cookie{
		Name:     flashCookieName,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if len(msgs) == 0 {
		cookie.MaxAge = -1
	} else {
		raw, _ := json.Marshal(msgs)
		cookie.Value = base64.RawURLEncoding.EncodeToString(raw)
	}
	http.SetCookie(w, cookie)
}
