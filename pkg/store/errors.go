package store

import "errors"

var (
	// ErrEmptyToken indicates an empty token was passed to a store operation
	ErrEmptyToken = errors.New("store.empty_token")

	// ErrTokenNotFound indicates the token is unknown or expired
	ErrTokenNotFound = errors.New("store.token_not_found")

	// ErrFailedToParseRedisConnString indicates an invalid redis connection URL
	ErrFailedToParseRedisConnString = errors.New("store.failed_to_parse_redis_connection_string")

	// ErrRedisNotReady indicates redis did not answer pings within the connect timeout
	ErrRedisNotReady = errors.New("store.redis_not_ready")
)
