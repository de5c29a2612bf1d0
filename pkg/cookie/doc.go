// Package cookie provides the two cookie primitives the resolver builds on:
// parsing a raw Cookie request header into a name/value map and serializing a
// name/value pair into a Set-Cookie header string.
//
// Both operations are pure functions over strings. Serialization defaults are
// safe for session cookies (Path "/", HttpOnly, SameSite Lax) and can be
// adjusted through functional options:
//
//	header := cookie.Serialize("sid", token,
//	    cookie.WithMaxAge(3600),
//	    cookie.WithSecure(true),
//	)
//
// Parsing is lenient: malformed pairs are skipped rather than failing the
// whole header, and absent or empty input yields an empty map.
package cookie
