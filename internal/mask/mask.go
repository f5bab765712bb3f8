package mask

import "strings"

// Unbounded is reported by the total length queries of masks ending in an ellipsis.
const Unbounded = -1

// Mask is a compiled mask format. It is immutable and safe for concurrent use.
type Mask struct {
	format    string
	sanitized string
	notations []Notation
	head      State
}

// Result is the outcome of applying a mask to a text.
type Result struct {
	// Formatted is the masked text with the caret moved past inserted literals.
	Formatted CaretString

	// Value holds the runes that filled value slots, without decoration.
	Value string

	// Complete reports that every mandatory slot is filled.
	Complete bool

	// Consumed is the number of input runes the scan used.
	Consumed int
}

// New compiles format with the given custom notations.
// Most callers should go through a Cache instead.
func New(format string, notations ...Notation) (*Mask, error) {
	sanitized, err := Sanitize(format, notations...)
	if err != nil {
		return nil, err
	}
	head, err := compileSanitized(format, sanitized, notations)
	if err != nil {
		return nil, err
	}
	return &Mask{
		format:    format,
		sanitized: sanitized,
		notations: append([]Notation(nil), notations...),
		head:      head,
	}, nil
}

// MustNew is like New but panics on a malformed format.
func MustNew(format string, notations ...Notation) *Mask {
	m, err := New(format, notations...)
	if err != nil {
		panic(err)
	}
	return m
}

// Format returns the format the mask was created from.
func (m *Mask) Format() string { return m.format }

// Sanitized returns the normalized format that was compiled.
func (m *Mask) Sanitized() string { return m.sanitized }

// Notations returns a copy of the custom notations.
func (m *Mask) Notations() []Notation {
	return append([]Notation(nil), m.notations...)
}

// States returns the chain in order, EOL included.
func (m *Mask) States() []State {
	var states []State
	for s := m.head; s != nil; s = s.Next() {
		states = append(states, s)
	}
	return states
}

// Apply formats text.
//
// Runes are fed to the chain left to right. Literals are inserted where the
// input does not carry them, optional slots are skipped when the rune does
// not fit, and a rune rejected by a mandatory slot ends the scan: it and
// everything after it are dropped. With autocomplete set and all input
// consumed, trailing literals up to the next slot are appended.
//
// The caret moves with the text: literals inserted at or before it push it
// right, runes dropped before it pull it left.
//
// Applying a mask to its own output is a no-op, except when an optional slot
// is skipped in front of a free literal its class accepts. The inserted
// literal then fills the slot on the next pass: "[9]0 +" formats "XX" as
// "0 +", and "0 +" as "00 +".
func (m *Mask) Apply(text CaretString, autocomplete bool) Result {
	result, _ := m.scan(text, autocomplete)
	return result
}

func (m *Mask) scan(text CaretString, autocomplete bool) (Result, State) {
	input := []rune(text.Text)
	caret := clamp(text.Caret, 0, len(input))

	var formatted, value strings.Builder
	formattedCaret := 0
	consumed := 0
	state := m.head

	i := 0
	for i < len(input) {
		t, ok := state.Accept(input[i])
		if !ok {
			break
		}
		if t.HasInsert {
			formatted.WriteRune(t.Insert)
			if i < caret || (!t.Consumed && i == caret) {
				formattedCaret++
			}
		}
		if t.HasValue {
			value.WriteRune(t.Value)
		}
		if t.Consumed {
			i++
			consumed++
		}
		if !t.Repeat {
			state = t.Next
		}
	}

	if autocomplete && i == len(input) {
		for {
			t, ok := state.Autocomplete()
			if !ok {
				break
			}
			formatted.WriteRune(t.Insert)
			if caret == len(input) {
				formattedCaret++
			}
			state = t.Next
		}
	}

	return Result{
		Formatted: CaretString{Text: formatted.String(), Caret: formattedCaret},
		Value:     value.String(),
		Complete:  noMandatoryLeft(state),
		Consumed:  consumed,
	}, state
}

func noMandatoryLeft(state State) bool {
	for s := state; s != nil; s = s.Next() {
		if s.Kind() == KindValue {
			return false
		}
	}
	return true
}

// Placeholder renders the whole mask with a filler glyph per slot:
// "0" for digits, "a" for letters, "-" for letters or digits, "б" for
// Cyrillic letters and the trigger character for custom notations.
// Literals are rendered as is; an ellipsis ends the placeholder.
func (m *Mask) Placeholder() string {
	return placeholderFrom(m.head)
}

// PlaceholderAfter renders the part of the mask that text leaves unfilled.
// Appending it to the formatted text previews the remaining slots.
func (m *Mask) PlaceholderAfter(text CaretString, autocomplete bool) string {
	_, state := m.scan(text, autocomplete)
	return placeholderFrom(state)
}

func placeholderFrom(state State) string {
	var b strings.Builder
	for s := state; s != nil; s = s.Next() {
		switch s := s.(type) {
		case *FreeState:
			b.WriteRune(s.Literal)
		case *FixedState:
			b.WriteRune(s.Literal)
		case *ValueState:
			if s.Ellipsis() {
				return b.String()
			}
			b.WriteRune(s.Class.Glyph())
		case *OptionalValueState:
			b.WriteRune(s.Class.Glyph())
		}
	}
	return b.String()
}

// AcceptableTextLength is the minimal formatted length with every mandatory slot filled.
func (m *Mask) AcceptableTextLength() int {
	return m.count(KindFree, KindFixed, KindValue)
}

// TotalTextLength is the maximal formatted length, or Unbounded.
func (m *Mask) TotalTextLength() int {
	if m.count(KindEllipsis) > 0 {
		return Unbounded
	}
	return m.count(KindFree, KindFixed, KindValue, KindOptionalValue)
}

// AcceptableValueLength is the minimal extracted value length of a complete text.
func (m *Mask) AcceptableValueLength() int {
	return m.count(KindValue)
}

// TotalValueLength is the maximal extracted value length, or Unbounded.
func (m *Mask) TotalValueLength() int {
	if m.count(KindEllipsis) > 0 {
		return Unbounded
	}
	return m.count(KindValue, KindOptionalValue)
}

func (m *Mask) count(kinds ...Kind) int {
	n := 0
	for s := m.head; s != nil; s = s.Next() {
		for _, k := range kinds {
			if s.Kind() == k {
				n++
				break
			}
		}
	}
	return n
}

// String renders the chain, e.g. "[0] -> [9] -> {.} -> EOL".
func (m *Mask) String() string {
	states := m.States()
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = s.String()
	}
	return strings.Join(parts, " -> ")
}
