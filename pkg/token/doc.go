// Package token generates opaque session tokens.
//
// Random produces cryptographically secure random tokens, NewUUID produces
// UUID-shaped ones, and Sign/Verify wrap a token with a truncated HMAC-SHA256
// signature for tamper-evident guest tokens that need no server-side state.
package token
