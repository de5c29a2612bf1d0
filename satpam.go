package satpam

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/satpam-id/satpam/pkg/cookie"
)

// Session is the outcome of resolving a token for one request.
// Status is true iff Token is non-empty.
type Session struct {
	Status bool   `json:"status"`
	Token  string `json:"token"`
}

// Hook may mint a token when the candidate is empty or replace it when it is
// not. Returning "" leaves the candidate as-is. Errors propagate out of
// Verify untouched.
type Hook func(ctx context.Context, candidate string) (string, error)

// Resolver locates, optionally rewrites and persists a session token for a
// single request. Construct a fresh instance per request; the stored session
// is per-request state and must not be shared across concurrent
// verifications.
type Resolver struct {
	req        *http.Request
	sink       Sink
	config     Config
	cookieOpts []cookie.Option
	log        *slog.Logger
	token      string
	session    Session
}

// New creates a Resolver for the given request/response pair. The response
// writer seeds the default header sink; it may be nil if WithSink is used or
// no write-back is wanted.
func New(r *http.Request, w http.ResponseWriter, opts ...Option) *Resolver {
	rs := &Resolver{
		req:    r,
		config: DefaultConfig(),
	}

	for _, opt := range opts {
		opt(rs)
	}

	if rs.sink == nil {
		if w != nil {
			rs.sink = NewHeaderSink(w)
		} else {
			rs.sink = discardSink{}
		}
	}

	if rs.log == nil {
		rs.log = slog.New(slog.DiscardHandler)
	}

	return rs
}

// Verify resolves the session token for the request. Sources are consulted in
// order — cookie, URL query, URL fragment — and the first match wins; the
// candidate is then passed through the hook (which may be nil). The resolved
// session is stored on the resolver and returned.
func (rs *Resolver) Verify(ctx context.Context, hook Hook) (Session, error) {
	candidate := rs.lookupToken()

	session, err := rs.resolve(ctx, hook, candidate)
	if err != nil {
		return Session{}, err
	}

	rs.session = session
	rs.token = session.Token
	return session, nil
}

// SetSession persists the given token as the session cookie through the sink
// and updates the stored session. An empty token is a silent no-op returning
// "". Returns the serialized Set-Cookie string.
func (rs *Resolver) SetSession(token string, opts ...cookie.Option) string {
	if token == "" {
		return ""
	}

	rs.session = Session{Status: true, Token: token}
	rs.token = token
	return rs.write(token, opts)
}

// PersistSession persists the resolver's last resolved token. No-op if no
// token has been resolved.
func (rs *Resolver) PersistSession(opts ...cookie.Option) string {
	return rs.SetSession(rs.token, opts...)
}

// GetSession returns the stored session without side effects.
func (rs *Resolver) GetSession() Session {
	return rs.session
}

// lookupToken walks the token sources in priority order. A cookie entry for
// the configured name wins outright, even over a populated URL parameter.
func (rs *Resolver) lookupToken() string {
	if rs.req == nil {
		return ""
	}

	cookies := cookie.Parse(rs.req.Header.Get("Cookie"))
	if v, ok := cookies[rs.config.CookieName]; ok {
		rs.log.Debug("token found in cookie", slog.String("cookie", rs.config.CookieName))
		return v
	}

	if rs.config.URLCheck == "" || rs.req.URL == nil {
		return ""
	}

	if v, ok := lookupRawPair(rs.req.URL.RawQuery, rs.config.URLCheck); ok {
		rs.log.Debug("token found in query", slog.String("param", rs.config.URLCheck))
		return v
	}
	if v, ok := lookupRawPair(rs.req.URL.EscapedFragment(), rs.config.URLCheck); ok {
		rs.log.Debug("token found in fragment", slog.String("param", rs.config.URLCheck))
		return v
	}

	return ""
}

// resolve applies the hook and decides the final session state. A non-empty
// result is written back when AutoSetCookie is on; an empty one degrades to
// the zero Session rather than an error.
func (rs *Resolver) resolve(ctx context.Context, hook Hook, candidate string) (Session, error) {
	if hook != nil {
		produced, err := hook(ctx, candidate)
		if err != nil {
			return Session{}, err
		}
		if produced != "" {
			candidate = produced
		}
	}

	if candidate == "" {
		return Session{}, nil
	}

	if rs.config.AutoSetCookie {
		rs.write(candidate, nil)
	}

	return Session{Status: true, Token: candidate}, nil
}

// write serializes the token as the configured cookie and pushes it through
// the sink. Per-call options are applied on top of the resolver defaults.
func (rs *Resolver) write(token string, opts []cookie.Option) string {
	merged := rs.cookieOpts
	if len(opts) > 0 {
		merged = append(append([]cookie.Option{}, rs.cookieOpts...), opts...)
	}

	header := cookie.Serialize(rs.config.CookieName, token, merged...)
	rs.sink.Write(header)
	return header
}

// lookupRawPair scans an &-joined key=value string without percent-decoding.
// Duplicate keys resolve to the last occurrence; pairs without "=" are
// ignored. This mirrors how the resolver has always read URL parameters:
// strictly textual, no unescaping.
func lookupRawPair(raw, key string) (string, bool) {
	if raw == "" || key == "" {
		return "", false
	}

	var (
		val   string
		found bool
	)
	for _, pair := range strings.Split(raw, "&") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k != key {
			continue
		}
		val, found = v, true
	}
	return val, found
}
