package store

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements Store using in-memory storage.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]time.Time
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

// NewMemoryStore creates a new in-memory token store. A positive
// cleanupInterval starts a background goroutine that evicts expired tokens;
// zero disables it (expired tokens are still invisible to reads).
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		tokens: make(map[string]time.Time),
		done:   make(chan struct{}),
	}

	if cleanupInterval > 0 {
		s.ticker = time.NewTicker(cleanupInterval)
		go s.cleanupLoop()
	}

	return s
}

// Exists reports whether the token is known and not expired.
func (s *MemoryStore) Exists(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, ErrEmptyToken
	}

	s.mu.RLock()
	expiry, ok := s.tokens[token]
	s.mu.RUnlock()

	return ok && time.Now().Before(expiry), nil
}

// Save registers the token with the given TTL.
func (s *MemoryStore) Save(ctx context.Context, token string, ttl time.Duration) error {
	if token == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	s.tokens[token] = time.Now().Add(ttl)
	s.mu.Unlock()
	return nil
}

// Touch extends a known token's TTL.
func (s *MemoryStore) Touch(ctx context.Context, token string, ttl time.Duration) error {
	if token == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.tokens[token]
	if !ok || time.Now().After(expiry) {
		delete(s.tokens, token)
		return ErrTokenNotFound
	}

	s.tokens[token] = time.Now().Add(ttl)
	return nil
}

// Delete removes the token.
func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
	return nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (s *MemoryStore) Close() error {
	s.once.Do(func() {
		close(s.done)
		if s.ticker != nil {
			s.ticker.Stop()
		}
	})
	return nil
}

func (s *MemoryStore) cleanupLoop() {
	for {
		select {
		case <-s.ticker.C:
			s.deleteExpired()
		case <-s.done:
			return
		}
	}
}

func (s *MemoryStore) deleteExpired() {
	now := time.Now()

	s.mu.Lock()
	for token, expiry := range s.tokens {
		if now.After(expiry) {
			delete(s.tokens, token)
		}
	}
	s.mu.Unlock()
}
