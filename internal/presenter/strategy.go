package presenter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/inputmask/internal/mask"
)

// ErrUnknownMode is returned by ParseMode for unrecognized names.
var ErrUnknownMode = errors.New("unknown presentation mode")

// Strategy turns host edits into mask input and mask output into display text.
// Implementations are stateless; the Reconciler owns the stored text.
type Strategy interface {
	// PrepareText returns the logical text after applying d to stored.
	PrepareText(stored string, d EditDelta) string

	// CaretPosition returns the caret to scan with. previousCaret is the
	// caret left by the previous edit.
	CaretPosition(d EditDelta, previousCaret int) int

	// TextToShow returns what the host should display for formatted text.
	TextToShow(formatted string, m *mask.Mask, autocomplete bool) string
}

// ParseMode returns the strategy for a configuration name:
// "plain" (or empty) or "placeholder".
func ParseMode(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "plain", "none":
		return Plain{}, nil
	case "placeholder", "show_placeholder", "show-placeholder":
		return Placeholder{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// ModeName returns the configuration name of s.
func ModeName(s Strategy) string {
	switch s.(type) {
	case Placeholder, *Placeholder:
		return "placeholder"
	default:
		return "plain"
	}
}

// Plain displays exactly the formatted text. The host text is taken as the
// new logical text.
type Plain struct{}

// PrepareText returns the host text unchanged.
func (Plain) PrepareText(_ string, d EditDelta) string {
	return d.Text
}

// CaretPosition places the caret after the inserted runes, or at the
// cursor for deletions.
func (Plain) CaretPosition(d EditDelta, _ int) int {
	if d.IsDeletion() {
		return d.Cursor
	}
	return d.Cursor + d.Inserted
}

// TextToShow returns formatted unchanged.
func (Plain) TextToShow(formatted string, _ *mask.Mask, _ bool) string {
	return formatted
}

// Placeholder displays the formatted text followed by the unfilled rest of
// the mask. The host text then contains placeholder glyphs, so the edit is
// replayed onto the stored text instead of taking the host text verbatim.
type Placeholder struct{}

// PrepareText replays d onto stored.
//
// A deletion removes Deleted runes at Cursor; a cursor past the last rune
// removes the runes before the end instead. An insertion copies the
// inserted runes out of the host text and writes them over stored at
// Cursor, replacing Deleted runes, or appends them past the end.
// Out-of-range positions are clamped.
func (Placeholder) PrepareText(stored string, d EditDelta) string {
	runes := []rune(stored)

	if d.IsDeletion() {
		lastIndex := len(runes) - 1
		start := d.Cursor
		if start > lastIndex {
			start = lastIndex - d.Deleted
		}
		end := start + d.Deleted

		start = clamp(start, 0, len(runes))
		end = clamp(end, start, len(runes))
		return string(runes[:start]) + string(runes[end:])
	}

	full := []rune(d.Text)
	start := max(d.Cursor, 0)
	from := clamp(start, 0, len(full))
	replacement := full[from:clamp(start+d.Inserted, from, len(full))]

	if start < len(runes) {
		end := clamp(start+d.Deleted, start, len(runes))
		out := make([]rune, 0, len(runes)+len(replacement))
		out = append(out, runes[:start]...)
		out = append(out, replacement...)
		out = append(out, runes[end:]...)
		return string(out)
	}
	return stored + string(replacement)
}

// CaretPosition never moves the caret right of where the previous edit
// left it, since the host cursor may sit inside the placeholder.
func (Placeholder) CaretPosition(d EditDelta, previousCaret int) int {
	caret := min(d.Cursor, previousCaret)
	if d.IsDeletion() {
		return caret
	}
	return caret + d.Inserted
}

// TextToShow appends the placeholder for the slots formatted leaves
// unfilled. A nil mask shows formatted alone.
func (Placeholder) TextToShow(formatted string, m *mask.Mask, autocomplete bool) string {
	if m == nil {
		return formatted
	}
	return formatted + m.PlaceholderAfter(mask.AtEnd(formatted), autocomplete)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
