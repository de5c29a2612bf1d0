package satpam

import (
	"errors"
	"log/slog"
	"net/http"
)

// Middleware verifies the session token on every request and stores the
// outcome in the request context. A fresh Resolver is constructed per
// request, so sharing the middleware across concurrent requests is safe even
// though a single Resolver is not.
//
// Hook errors are logged and the request proceeds without a session;
// rejections by ValidateHook are expected traffic and logged at debug level.
func Middleware(hook Hook, opts ...Option) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rs := New(r, w, opts...)

			session, err := rs.Verify(r.Context(), hook)
			if err != nil {
				if errors.Is(err, ErrUnknownToken) {
					rs.log.Debug("token rejected", slog.String("error", err.Error()))
				} else {
					rs.log.Error("token verification failed", slog.String("error", err.Error()))
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// RequireSession responds 401 unless the request resolves to a usable token.
func RequireSession(hook Hook, opts ...Option) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rs := New(r, w, opts...)

			session, err := rs.Verify(r.Context(), hook)
			if err != nil || !session.Status {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}
