package token

import "errors"

var (
	ErrInvalidToken     = errors.New("token.invalid")
	ErrSignatureInvalid = errors.New("token.signature_invalid")
	ErrGenerationFailed = errors.New("token.generation_failed")
)
