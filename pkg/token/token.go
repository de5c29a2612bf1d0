package token

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/google/uuid"
)

const signatureLength = 8

// Random returns a 32-byte cryptographically secure random token encoded as
// unpadded base64url.
func Random() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrGenerationFailed, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// NewUUID returns a random UUIDv4 token.
func NewUUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Join(ErrGenerationFailed, err)
	}
	return id.String(), nil
}

// Sign appends a truncated HMAC-SHA256 signature to the value, producing a
// tamper-evident token of the form "<value>.<sig>".
func Sign(value, secret string) string {
	return value + "." + signature(value, secret)
}

// Verify checks a signed token and returns the original value.
func Verify(signed, secret string) (string, error) {
	value, sig, ok := cutLast(signed, ".")
	if !ok || value == "" {
		return "", ErrInvalidToken
	}

	expected := signature(value, secret)
	if subtle.ConstantTimeCompare([]byte(sig), []byte(expected)) != 1 {
		return "", ErrSignatureInvalid
	}

	return value, nil
}

func signature(value, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(value))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil)[:signatureLength])
}

// cutLast splits around the last occurrence of sep, so signed values may
// themselves contain the separator.
func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}
