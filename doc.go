// Package satpam resolves an authentication/session token for a single HTTP
// request and writes it back as a response cookie.
//
// A Resolver locates the token across an ordered set of sources: the request's
// Cookie header first, then — if configured — a named URL query parameter,
// then the URL fragment. The candidate (or the empty string when nothing was
// found) is passed through an optional Hook that may mint a fresh token or
// replace the found one, and the outcome is captured as a Session.
//
//	rs := satpam.New(r, w, satpam.WithURLCheck("token"))
//	sess, err := rs.Verify(r.Context(), nil)
//	if sess.Status {
//	    // sess.Token carries the resolved token; with AutoSetCookie it has
//	    // already been written to the response.
//	}
//
// # Usage contract
//
// A Resolver serves exactly one request. Its stored session is per-request
// state; sharing one instance across concurrent requests races. Construct a
// fresh Resolver per request — the Middleware helper does exactly that:
//
//	mux.Use(satpam.Middleware(satpam.MintHook(token.Random),
//	    satpam.WithURLCheck("token"),
//	))
//
// # Hooks
//
// A Hook receives the candidate token ("" when none was found) and may return
// a replacement. Returning "" leaves the no-token case unresolved and the
// found-token case unchanged. Hook errors propagate out of Verify untouched.
// Ready-made hooks cover the common flows: MintHook produces guest tokens,
// ValidateHook and EnsureHook check candidates against a pkg/store Store.
//
// # Write-back
//
// Resolved tokens are serialized through pkg/cookie and delivered to a Sink.
// The default sink appends a Set-Cookie header to the response; inject a
// CaptureSink (or your own) to redirect persistence elsewhere.
package satpam
