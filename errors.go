package satpam

import "errors"

var (
	// ErrUnknownToken indicates a candidate token was rejected by a
	// store-backed hook.
	ErrUnknownToken = errors.New("satpam.unknown_token")
)
