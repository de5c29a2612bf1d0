package satpam

import "context"

type sessionContextKey struct{}

// WithSession adds a session to the context.
func WithSession(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// FromContext retrieves a session from the context.
func FromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(Session)
	return session, ok
}

// MustFromContext retrieves a session from the context or panics.
func MustFromContext(ctx context.Context) Session {
	session, ok := FromContext(ctx)
	if !ok {
		panic("satpam: session not found in context")
	}
	return session
}

// TokenFromContext retrieves the resolved token from the session in context.
// Returns false when no session is present or the session carries no token.
func TokenFromContext(ctx context.Context) (string, bool) {
	session, ok := FromContext(ctx)
	if !ok || !session.Status {
		return "", false
	}
	return session.Token, true
}
