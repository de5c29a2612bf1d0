package satpam

import (
	"log/slog"

	"github.com/satpam-id/satpam/pkg/cookie"
)

// Option is a functional option for configuring a Resolver.
type Option func(*Resolver)

// WithConfig replaces the whole resolver configuration.
func WithConfig(config Config) Option {
	return func(rs *Resolver) {
		rs.config = config
	}
}

// WithCookieName sets the cookie the resolver reads and writes.
func WithCookieName(name string) Option {
	return func(rs *Resolver) {
		rs.config.CookieName = name
	}
}

// WithURLCheck enables the URL fallback under the given parameter name.
func WithURLCheck(param string) Option {
	return func(rs *Resolver) {
		rs.config.URLCheck = param
	}
}

// WithAutoSetCookie toggles automatic write-back of resolved tokens.
func WithAutoSetCookie(auto bool) Option {
	return func(rs *Resolver) {
		rs.config.AutoSetCookie = auto
	}
}

// WithSink replaces the default response-header sink.
func WithSink(sink Sink) Option {
	return func(rs *Resolver) {
		rs.sink = sink
	}
}

// WithCookieOptions sets default serialization options for every cookie the
// resolver writes.
func WithCookieOptions(opts ...cookie.Option) Option {
	return func(rs *Resolver) {
		rs.cookieOpts = opts
	}
}

// WithLogger sets the logger used for debug-level resolution tracing.
func WithLogger(log *slog.Logger) Option {
	return func(rs *Resolver) {
		if log != nil {
			rs.log = log
		}
	}
}
