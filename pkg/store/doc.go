// Package store persists known session tokens with a TTL so hooks can
// validate, mint and refresh them.
//
// Two implementations ship out of the box: a mutex-guarded in-memory store
// with background cleanup and a Redis-backed store keyed by a configurable
// prefix. Any backend satisfying the Store interface can be plugged in.
package store
