// Package affinity scores how well an input fits a mask and picks the best
// mask among a primary format and its alternatives.
package affinity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/inputmask/internal/mask"
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
var ErrUnknownStrategy = errors.New("unknown affinity strategy")

// Strategy selects which part of the input is scored.
type Strategy uint8

const (
	// WholeString scores the runes consumed from the entire input.
	WholeString Strategy = iota

	// Prefix scores the runes consumed from the input before the caret.
	Prefix
)

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case WholeString:
		return "whole_string"
	case Prefix:
		return "prefix"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a strategy name. Case, dashes and underscores are ignored;
// the empty string selects WholeString.
func ParseStrategy(name string) (Strategy, error) {
	normalized := strings.NewReplacer("_", "", "-", "").Replace(strings.ToLower(name))
	switch normalized {
	case "", "wholestring", "whole":
		return WholeString, nil
	case "prefix":
		return Prefix, nil
	default:
		return WholeString, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Score returns the number of input runes m consumes.
func (s Strategy) Score(m *mask.Mask, text mask.CaretString, autocomplete bool) int {
	if s == Prefix {
		text = text.Prefix()
	}
	return m.Apply(text, autocomplete).Consumed
}
