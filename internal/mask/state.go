package mask

import "unicode"

// Kind identifies the node type of a compiled state.
type Kind uint8

const (
	// KindFree is a literal outside brackets, inserted verbatim.
	KindFree Kind = iota

	// KindFixed is a literal inside {}, inserted verbatim.
	KindFixed

	// KindValue is a mandatory slot inside [].
	KindValue

	// KindOptionalValue is an optional slot inside [].
	KindOptionalValue

	// KindEllipsis is an open-ended repetition of the preceding slot class.
	KindEllipsis

	// KindEOL terminates every chain.
	KindEOL
)

// String returns a human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFree:
		return "free"
	case KindFixed:
		return "fixed"
	case KindValue:
		return "value"
	case KindOptionalValue:
		return "optional"
	case KindEllipsis:
		return "ellipsis"
	case KindEOL:
		return "eol"
	default:
		return "unknown"
	}
}

// ClassKind is the character class family of a value slot.
type ClassKind uint8

const (
	ClassNumeric ClassKind = iota
	ClassLiteral
	ClassAlphaNumeric
	ClassCyrillic
	ClassCustom
)

// Class is the predicate a value slot applies to input runes.
type Class struct {
	Kind     ClassKind
	Notation Notation // set for ClassCustom only
}

// Accepts reports whether r belongs to the class.
func (c Class) Accepts(r rune) bool {
	switch c.Kind {
	case ClassNumeric:
		return unicode.IsDigit(r)
	case ClassLiteral:
		return unicode.IsLetter(r)
	case ClassAlphaNumeric:
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	case ClassCyrillic:
		return unicode.IsLetter(r) && unicode.Is(unicode.Cyrillic, r)
	case ClassCustom:
		return c.Notation.Accepts(r)
	default:
		return false
	}
}

// Glyph is the filler rune shown for the class in placeholders.
func (c Class) Glyph() rune {
	switch c.Kind {
	case ClassNumeric:
		return '0'
	case ClassLiteral:
		return 'a'
	case ClassAlphaNumeric:
		return '-'
	case ClassCyrillic:
		return 'б'
	default:
		return c.Notation.Character
	}
}

// marker returns the grammar character that produces the class.
func (c Class) marker(optional bool) rune {
	switch c.Kind {
	case ClassNumeric:
		return pick(optional, '9', '0')
	case ClassLiteral:
		return pick(optional, 'a', 'A')
	case ClassAlphaNumeric:
		return pick(optional, '-', '_')
	case ClassCyrillic:
		return pick(optional, 'б', 'Б')
	default:
		return c.Notation.Character
	}
}

func pick(cond bool, a, b rune) rune {
	if cond {
		return a
	}
	return b
}

// Transition is the outcome of feeding one rune to a state.
type Transition struct {
	// Next is the state to continue from; ignored when Repeat is set.
	Next State

	// Insert is appended to the formatted text when HasInsert is set.
	Insert    rune
	HasInsert bool

	// Value is appended to the extracted value when HasValue is set.
	Value    rune
	HasValue bool

	// Consumed reports whether the input rune was used up. When false the
	// same rune is retried against Next.
	Consumed bool

	// Repeat keeps the scanner on the current state (ellipsis).
	Repeat bool
}

// State is a node of a compiled mask.
// States are immutable once their mask is compiled.
type State interface {
	// Kind returns the node type.
	Kind() Kind

	// Accept feeds one input rune. It returns false when no transition
	// exists, which stops the scan.
	Accept(r rune) (Transition, bool)

	// Autocomplete returns the transition taken when input has run out,
	// or false when the state cannot be filled without input.
	Autocomplete() (Transition, bool)

	// Next returns the successor, or nil for EOL.
	Next() State

	// String returns the grammar notation of the node.
	String() string
}

type link struct {
	next State
}

func (l *link) Next() State { return l.next }

// FreeState is a literal written outside of brackets.
type FreeState struct {
	link
	Literal rune
}

func (s *FreeState) Kind() Kind { return KindFree }

func (s *FreeState) Accept(r rune) (Transition, bool) {
	if r == s.Literal {
		return Transition{Next: s.next, Insert: r, HasInsert: true, Consumed: true}, true
	}
	return Transition{Next: s.next, Insert: s.Literal, HasInsert: true}, true
}

func (s *FreeState) Autocomplete() (Transition, bool) {
	return Transition{Next: s.next, Insert: s.Literal, HasInsert: true}, true
}

func (s *FreeState) String() string { return string(s.Literal) }

// FixedState is a literal written inside {}.
type FixedState struct {
	link
	Literal rune
}

func (s *FixedState) Kind() Kind { return KindFixed }

func (s *FixedState) Accept(r rune) (Transition, bool) {
	return Transition{Next: s.next, Insert: s.Literal, HasInsert: true, Consumed: r == s.Literal}, true
}

func (s *FixedState) Autocomplete() (Transition, bool) {
	return Transition{Next: s.next, Insert: s.Literal, HasInsert: true}, true
}

func (s *FixedState) String() string { return "{" + string(s.Literal) + "}" }

// ValueState is a mandatory slot. With repeat set it is an ellipsis:
// it keeps accepting runes of its class until a mismatch.
type ValueState struct {
	link
	Class  Class
	repeat bool
}

func (s *ValueState) Kind() Kind {
	if s.repeat {
		return KindEllipsis
	}
	return KindValue
}

// Ellipsis reports whether the state repeats.
func (s *ValueState) Ellipsis() bool { return s.repeat }

func (s *ValueState) Accept(r rune) (Transition, bool) {
	if !s.Class.Accepts(r) {
		return Transition{}, false
	}
	return Transition{
		Next:      s.next,
		Insert:    r,
		HasInsert: true,
		Value:     r,
		HasValue:  true,
		Consumed:  true,
		Repeat:    s.repeat,
	}, true
}

func (s *ValueState) Autocomplete() (Transition, bool) { return Transition{}, false }

func (s *ValueState) String() string {
	if s.repeat {
		return "[…]"
	}
	return "[" + string(s.Class.marker(false)) + "]"
}

// OptionalValueState is an optional slot: a mismatching rune is passed on
// to the next state instead of stopping the scan.
type OptionalValueState struct {
	link
	Class Class
}

func (s *OptionalValueState) Kind() Kind { return KindOptionalValue }

func (s *OptionalValueState) Accept(r rune) (Transition, bool) {
	if !s.Class.Accepts(r) {
		return Transition{Next: s.next}, true
	}
	return Transition{Next: s.next, Insert: r, HasInsert: true, Value: r, HasValue: true, Consumed: true}, true
}

func (s *OptionalValueState) Autocomplete() (Transition, bool) { return Transition{}, false }

func (s *OptionalValueState) String() string {
	return "[" + string(s.Class.marker(true)) + "]"
}

// EOLState terminates a chain.
type EOLState struct{}

func (s *EOLState) Kind() Kind                       { return KindEOL }
func (s *EOLState) Accept(rune) (Transition, bool)   { return Transition{}, false }
func (s *EOLState) Autocomplete() (Transition, bool) { return Transition{}, false }
func (s *EOLState) Next() State                      { return nil }
func (s *EOLState) String() string                   { return "EOL" }
