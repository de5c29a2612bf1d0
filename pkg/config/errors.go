package config

import "errors"

var (
	// ErrNilPointer is returned when a nil pointer is passed to Load
	ErrNilPointer = errors.New("config.nil_pointer")

	// ErrParsingConfig is returned when the environment cannot be parsed into the struct
	ErrParsingConfig = errors.New("config.parsing_failed")
)
