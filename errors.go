package postfix

import "errors"

var (
	// ErrNoInput is returned when the line source has no line at all.
	ErrNoInput = errors.New("no input line")
	// ErrConfigValidation is returned when configuration validation fails
	ErrConfigValidation = errors.New("configuration validation failed")
)
