package config

import (
	"errors"

	"github.com/dshills/inputmask/internal/config/loader"
)

// Errors returned by configuration operations.
var (
	// ErrProfileNotFound indicates the named profile doesn't exist.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidNotation indicates a malformed custom notation.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrInvalidValue indicates a setting with a value out of its domain.
	ErrInvalidValue = errors.New("invalid value")
)

// ParseError represents an error while parsing a configuration file.
type ParseError = loader.ParseError
