package mask

import (
	"fmt"
	"unicode/utf8"
)

// CaretString is a text with a caret position counted in runes.
// The caret always satisfies 0 <= Caret <= RuneCount(Text).
type CaretString struct {
	Text  string
	Caret int
}

// NewCaretString creates a CaretString, clamping caret into the text.
func NewCaretString(text string, caret int) CaretString {
	return CaretString{Text: text, Caret: clamp(caret, 0, utf8.RuneCountInString(text))}
}

// AtEnd creates a CaretString with the caret after the last rune.
func AtEnd(text string) CaretString {
	return CaretString{Text: text, Caret: utf8.RuneCountInString(text)}
}

// Len returns the text length in runes.
func (c CaretString) Len() int {
	return utf8.RuneCountInString(c.Text)
}

// Prefix returns the text before the caret, with the caret at its end.
func (c CaretString) Prefix() CaretString {
	runes := []rune(c.Text)
	caret := clamp(c.Caret, 0, len(runes))
	return CaretString{Text: string(runes[:caret]), Caret: caret}
}

// String returns the text with a '|' marking the caret.
func (c CaretString) String() string {
	runes := []rune(c.Text)
	caret := clamp(c.Caret, 0, len(runes))
	return fmt.Sprintf("%s|%s", string(runes[:caret]), string(runes[caret:]))
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
