package mask

// Compile sanitizes format and compiles it into a chain of states,
// returning the head of the chain.
//
// Free characters become FreeState-s, characters in [] become ValueState-s
// and OptionalValueState-s, characters in {} become FixedState-s, and the
// end of the format becomes an EOLState. An ellipsis is always linked to
// the EOLState; whatever follows it in the format is ignored. For instance
//
//	[09]{.}[09]{.}19[00]
//
// compiles to
//
//	[0] -> [9] -> {.} -> [0] -> [9] -> {.} -> 1 -> 9 -> [0] -> [0] -> EOL
func Compile(format string, notations ...Notation) (State, error) {
	sanitized, err := Sanitize(format, notations...)
	if err != nil {
		return nil, err
	}
	return compileSanitized(format, sanitized, notations)
}

// linker is implemented by every state with a successor.
type linker interface {
	setNext(State)
}

func (l *link) setNext(next State) { l.next = next }

type compiler struct {
	format    string
	notations []Notation
}

func compileSanitized(format, sanitized string, notations []Notation) (State, error) {
	c := compiler{format: format, notations: notations}
	runes := []rune(sanitized)
	nodes := make([]State, 0, len(runes)+1)

	valuable, fixed, escaped := false, false, false
	var prev rune

	for _, r := range runes {
		if !escaped {
			switch r {
			case escapeChar:
				escaped = true
				continue
			case valueOpen:
				valuable, fixed, prev = true, false, r
				continue
			case fixedOpen:
				valuable, fixed, prev = false, true, r
				continue
			case valueClose, fixedClose:
				valuable, fixed, prev = false, false, r
				continue
			}
		}
		escaped = false

		var node State
		switch {
		case valuable:
			var err error
			if node, err = c.valueState(r, prev); err != nil {
				return nil, err
			}
		case fixed:
			node = &FixedState{Literal: r}
		default:
			node = &FreeState{Literal: r}
		}
		nodes = append(nodes, node)
		if node.Kind() == KindEllipsis {
			break
		}
		prev = r
	}

	var next State = &EOLState{}
	for i := len(nodes) - 1; i >= 0; i-- {
		nodes[i].(linker).setNext(next)
		next = nodes[i]
	}
	return next, nil
}

func (c *compiler) valueState(r, prev rune) (State, error) {
	switch r {
	case '0':
		return &ValueState{Class: Class{Kind: ClassNumeric}}, nil
	case '9':
		return &OptionalValueState{Class: Class{Kind: ClassNumeric}}, nil
	case 'A':
		return &ValueState{Class: Class{Kind: ClassLiteral}}, nil
	case 'a':
		return &OptionalValueState{Class: Class{Kind: ClassLiteral}}, nil
	case '_':
		return &ValueState{Class: Class{Kind: ClassAlphaNumeric}}, nil
	case '-':
		return &OptionalValueState{Class: Class{Kind: ClassAlphaNumeric}}, nil
	case 'Б':
		return &ValueState{Class: Class{Kind: ClassCyrillic}}, nil
	case 'б':
		return &OptionalValueState{Class: Class{Kind: ClassCyrillic}}, nil
	case ellipsisChar:
		class, err := c.inheritedClass(prev)
		if err != nil {
			return nil, err
		}
		return &ValueState{Class: class, repeat: true}, nil
	}

	n, ok := findNotation(c.notations, r)
	if !ok {
		return nil, charError(c.format, r, ErrUnknownCharacter)
	}
	class := Class{Kind: ClassCustom, Notation: n}
	if n.Optional {
		return &OptionalValueState{Class: class}, nil
	}
	return &ValueState{Class: class}, nil
}

// inheritedClass resolves the class of an ellipsis from the character
// preceding it in its block.
func (c *compiler) inheritedClass(prev rune) (Class, error) {
	switch prev {
	case '0', '9':
		return Class{Kind: ClassNumeric}, nil
	case 'A', 'a':
		return Class{Kind: ClassLiteral}, nil
	case '_', '-', ellipsisChar, valueOpen:
		return Class{Kind: ClassAlphaNumeric}, nil
	case 'Б', 'б':
		return Class{Kind: ClassCyrillic}, nil
	}
	if n, ok := findNotation(c.notations, prev); ok {
		return Class{Kind: ClassCustom, Notation: n}, nil
	}
	return Class{}, charError(c.format, prev, ErrUnknownCharacter)
}
