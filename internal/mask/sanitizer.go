package mask

import (
	"sort"
	"strings"
)

// Format syntax characters.
const (
	escapeChar   = '\\'
	valueOpen    = '['
	valueClose   = ']'
	fixedOpen    = '{'
	fixedClose   = '}'
	ellipsisChar = '…'
)

// slotClass groups value markers that may share one [] block.
type slotClass uint8

const (
	noClass slotClass = iota
	numericClass
	literalClass
	alphaNumericClass
	cyrillicClass
)

func classOf(r rune) slotClass {
	switch r {
	case '0', '9':
		return numericClass
	case 'A', 'a':
		return literalClass
	case '_', '-':
		return alphaNumericClass
	case 'Б', 'б':
		return cyrillicClass
	default:
		return noClass
	}
}

// Sanitize normalizes a mask format before compilation.
//
// Brackets are checked for balance and nesting, [] blocks mixing marker
// classes are split into same-class blocks, and every [] block is reordered
// so that mandatory markers precede optional ones with the ellipsis last:
//
//	a ([0909]) b   ->   a ([0099]) b
//	[00Aa]         ->   [00][Aa]
//
// Notations are needed to tell custom optional markers from mandatory ones.
// Sanitize is idempotent.
func Sanitize(format string, notations ...Notation) (string, error) {
	runes := []rune(format)
	if err := checkBrackets(format, runes); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(format))
	for _, block := range splitMixedBlocks(formatBlocks(runes)) {
		if isValueBlock(block) {
			block = sortValueBlock(block, notations)
		}
		b.WriteString(string(block))
	}
	return b.String(), nil
}

// checkBrackets rejects nested groups, stray or mismatched closers and
// groups left open. Nesting is rejected across kinds too, so "{[0]}" fails
// at the "[". A backslash disables the next character.
func checkBrackets(format string, runes []rune) error {
	escaped := false
	var open rune
	openPos := -1

	for i, r := range runes {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case escapeChar:
			escaped = true
		case valueOpen, fixedOpen:
			if open != 0 {
				return positionError(format, i, ErrNestedBrackets)
			}
			open, openPos = r, i
		case valueClose, fixedClose:
			if open == 0 || closerOf(open) != r {
				return positionError(format, i, ErrUnbalancedBrackets)
			}
			open, openPos = 0, -1
		}
	}

	if open != 0 {
		return positionError(format, openPos, ErrUnbalancedBrackets)
	}
	return nil
}

func closerOf(open rune) rune {
	if open == valueOpen {
		return valueClose
	}
	return fixedClose
}

// formatBlocks splits a checked format into runs of free text and
// complete [] and {} groups. Escape characters stay in their block.
func formatBlocks(runes []rune) [][]rune {
	var blocks [][]rune
	var current []rune
	escaped := false

	for _, r := range runes {
		if escaped {
			current = append(current, r)
			escaped = false
			continue
		}
		if r == escapeChar {
			current = append(current, r)
			escaped = true
			continue
		}

		if r == valueOpen || r == fixedOpen {
			if len(current) > 0 {
				blocks = append(blocks, current)
			}
			current = nil
		}

		current = append(current, r)

		if r == valueClose || r == fixedClose {
			blocks = append(blocks, current)
			current = nil
		}
	}

	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

func isValueBlock(block []rune) bool {
	return len(block) >= 2 && block[0] == valueOpen && block[len(block)-1] == valueClose
}

// blockUnits splits the inside of a [] block into units; an escape
// character and the character it escapes form one unit.
func blockUnits(block []rune) [][]rune {
	inner := block[1 : len(block)-1]
	units := make([][]rune, 0, len(inner))
	for i := 0; i < len(inner); i++ {
		if inner[i] == escapeChar && i+1 < len(inner) {
			units = append(units, inner[i:i+2])
			i++
			continue
		}
		units = append(units, inner[i:i+1])
	}
	return units
}

func unitClass(unit []rune) slotClass {
	if len(unit) != 1 {
		return noClass
	}
	return classOf(unit[0])
}

func wrapUnits(units [][]rune) []rune {
	out := []rune{valueOpen}
	for _, u := range units {
		out = append(out, u...)
	}
	return append(out, valueClose)
}

// splitMixedBlocks divides [] blocks that mix marker classes into
// consecutive same-class blocks, keeping first-occurrence order.
func splitMixedBlocks(blocks [][]rune) [][]rune {
	result := make([][]rune, 0, len(blocks))

	for _, block := range blocks {
		if !isValueBlock(block) {
			result = append(result, block)
			continue
		}

		units := blockUnits(block)
		if len(units) == 0 {
			result = append(result, block)
			continue
		}

		var buffer [][]rune
		bufferClass := noClass
		for _, unit := range units {
			class := unitClass(unit)
			if class != noClass && bufferClass != noClass && class != bufferClass {
				result = append(result, wrapUnits(buffer))
				buffer, bufferClass = nil, noClass
			}
			if class != noClass && bufferClass == noClass {
				bufferClass = class
			}
			buffer = append(buffer, unit)
		}
		result = append(result, wrapUnits(buffer))
	}

	return result
}

// sortValueBlock stable-sorts a [] block: mandatory, then optional, then ellipsis.
func sortValueBlock(block []rune, notations []Notation) []rune {
	units := blockUnits(block)
	sort.SliceStable(units, func(i, j int) bool {
		return unitRank(units[i], notations) < unitRank(units[j], notations)
	})
	return wrapUnits(units)
}

func unitRank(unit []rune, notations []Notation) int {
	if len(unit) != 1 {
		return 0
	}
	switch r := unit[0]; r {
	case ellipsisChar:
		return 2
	case '9', 'a', '-', 'б':
		return 1
	case '0', 'A', '_', 'Б':
		return 0
	default:
		if n, ok := findNotation(notations, r); ok && n.Optional {
			return 1
		}
		return 0
	}
}
