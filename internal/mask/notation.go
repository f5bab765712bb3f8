package mask

import (
	"strconv"
	"strings"
)

// Notation is a custom rule for a character inside [] groups.
// The trigger Character accepts any rune from CharacterSet; Optional
// notations behave like "9"/"a", mandatory ones like "0"/"A".
type Notation struct {
	Character    rune
	CharacterSet string
	Optional     bool
}

// Accepts reports whether r belongs to the notation's character set.
func (n Notation) Accepts(r rune) bool {
	return strings.ContainsRune(n.CharacterSet, r)
}

// String returns a compact representation used in cache keys and dumps.
func (n Notation) String() string {
	flag := "!"
	if n.Optional {
		flag = "?"
	}
	return string(n.Character) + flag + strconv.Quote(n.CharacterSet)
}

// findNotation returns the first notation triggered by r.
func findNotation(notations []Notation, r rune) (Notation, bool) {
	for _, n := range notations {
		if n.Character == r {
			return n, true
		}
	}
	return Notation{}, false
}

// notationKey keeps the caller's order: with duplicate triggers the first
// notation wins, so reordering can change the compiled mask.
func notationKey(notations []Notation) string {
	if len(notations) == 0 {
		return ""
	}
	parts := make([]string, len(notations))
	for i, n := range notations {
		parts[i] = n.String()
	}
	return strings.Join(parts, ",")
}
