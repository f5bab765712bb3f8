package mask

import (
	"errors"
	"fmt"
)

// Errors wrapped by FormatError.
var (
	// ErrUnbalancedBrackets indicates a closing bracket without an opener,
	// a mismatched closer, or a group left open at the end of the format.
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")

	// ErrNestedBrackets indicates a group opened inside another group.
	ErrNestedBrackets = errors.New("nested brackets")

	// ErrUnknownCharacter indicates a character inside [] that is neither a
	// built-in marker nor the trigger of a custom notation.
	ErrUnknownCharacter = errors.New("unknown character in value block")
)

// FormatError is returned when a mask format cannot be sanitized or compiled.
// It is only produced at compile time; applying a compiled mask never fails.
type FormatError struct {
	// Format is the offending format string as given by the caller.
	Format string
	// Position is the rune index of the offending character in Format, or -1
	// when the error was found after sanitizing reordered the format.
	Position int
	// Char is the offending character, or 0.
	Char rune
	// Err is one of the sentinel errors above.
	Err error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	switch {
	case e.Position >= 0:
		return fmt.Sprintf("mask format %q: %v at position %d", e.Format, e.Err, e.Position)
	case e.Char != 0:
		return fmt.Sprintf("mask format %q: %v %q", e.Format, e.Err, e.Char)
	default:
		return fmt.Sprintf("mask format %q: %v", e.Format, e.Err)
	}
}

// Unwrap returns the underlying sentinel.
func (e *FormatError) Unwrap() error {
	return e.Err
}

func positionError(format string, pos int, err error) *FormatError {
	return &FormatError{Format: format, Position: pos, Err: err}
}

func charError(format string, r rune, err error) *FormatError {
	return &FormatError{Format: format, Position: -1, Char: r, Err: err}
}
