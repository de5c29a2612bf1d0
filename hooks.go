package satpam

import (
	"context"
	"errors"
	"time"

	"github.com/satpam-id/satpam/pkg/store"
)

// TokenSource produces new tokens for minting hooks. pkg/token's Random and
// NewUUID satisfy it directly.
type TokenSource func() (string, error)

// MintHook returns a hook that mints a token from the source when no token
// was found. Found tokens pass through unchanged.
func MintHook(source TokenSource) Hook {
	return func(ctx context.Context, candidate string) (string, error) {
		if candidate != "" {
			return "", nil
		}
		return source()
	}
}

// ValidateHook returns a hook that rejects candidates unknown to the store
// with ErrUnknownToken. Empty candidates pass through so the no-token case
// still degrades to an unresolved session.
func ValidateHook(s store.Store) Hook {
	return func(ctx context.Context, candidate string) (string, error) {
		if candidate == "" {
			return "", nil
		}

		ok, err := s.Exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", ErrUnknownToken
		}
		return "", nil
	}
}

// EnsureHook returns a hook implementing the full guest-session flow: an
// empty candidate is replaced by a freshly minted and saved token, a known
// candidate gets its TTL extended, and an unknown candidate is replaced the
// same way a missing one is.
func EnsureHook(s store.Store, source TokenSource, ttl time.Duration) Hook {
	return func(ctx context.Context, candidate string) (string, error) {
		if candidate != "" {
			err := s.Touch(ctx, candidate, ttl)
			if err == nil {
				return "", nil
			}
			if !errors.Is(err, store.ErrTokenNotFound) {
				return "", err
			}
		}

		minted, err := source()
		if err != nil {
			return "", err
		}
		if err := s.Save(ctx, minted, ttl); err != nil {
			return "", err
		}
		return minted, nil
	}
}

// ChainHooks composes hooks left to right. Each hook sees the candidate as
// rewritten by the previous ones; the first error stops the chain.
func ChainHooks(hooks ...Hook) Hook {
	return func(ctx context.Context, candidate string) (string, error) {
		var replaced string
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			produced, err := hook(ctx, candidate)
			if err != nil {
				return "", err
			}
			if produced != "" {
				candidate = produced
				replaced = produced
			}
		}
		return replaced, nil
	}
}
