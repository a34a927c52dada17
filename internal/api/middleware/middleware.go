// Package middleware contains middleware functions for the web server
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/httplog/v3"
	"github.com/matt-dz/tripmeal/internal/api/requestid"
	"github.com/matt-dz/tripmeal/internal/api/session"
	"github.com/matt-dz/tripmeal/internal/env"
	"github.com/matt-dz/tripmeal/internal/log"
)

const loginPath = "/login/"

// InjectEnv injects an environment struct into the request context.
func InjectEnv(environment *env.Env) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(env.WithCtx(r.Context(), environment)))
		})
	}
}

func LogRequest(logger *slog.Logger) func(http.Handler) http.Handler {
	return httplog.RequestLogger(logger, &httplog.Options{
		RecoverPanics: true,
		LogExtraAttrs: func(r *http.Request, reqBody string, respStatus int) []slog.Attr {
			if id := requestid.ExtractRequestID(r.Context()); id != "" {
				return []slog.Attr{slog.String("log_id", id)}
			}
			return []slog.Attr{slog.String("log_id", "N/A")}
		},
	})
}

// AddRequestID adds a request ID to the request context.
func AddRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := requestid.New()
		r = r.WithContext(log.AppendCtx(r.Context(), slog.String("log_id", requestID)))
		r = r.WithContext(requestid.InjectRequestID(r.Context(), requestID))
		next.ServeHTTP(w, r)
	})
}

// LoadSession resolves the session cookie and places the session in the
// request context. A cookie that fails validation is cleared and the request
// continues anonymously.
func LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		env := env.EnvFromCtx(ctx)

		sess, err := session.Load(r, env.Config)
		r = r.WithContext(session.WithCtx(ctx, sess))
		if err != nil {
			env.Logger.DebugContext(ctx, "discarding invalid session cookie", slog.Any("error", err))
			session.Logout(w, r, env.Config)
		}
		if sess.LoggedIn() {
			r = r.WithContext(log.AppendCtx(r.Context(), slog.String("username", sess.Username)))
		}

		next.ServeHTTP(w, r)
	})
}

// RequireLogin redirects anonymous visitors to the login page.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !session.FromCtx(r.Context()).LoggedIn() {
			env.EnvFromCtx(r.Context()).Logger.DebugContext(r.Context(), "login required", slog.String("path", r.URL.Path))
			session.Redirect(w, r, loginPath)
			return
		}
		next.ServeHTTP(w, r)
	})
}
