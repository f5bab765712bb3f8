// Package mask compiles mask formats into scanning automata and applies them
// to user input.
//
// A mask format mixes literals with value slots:
//
//	+7 ([000]) [000]-[00]-[00]
//
// # Format Syntax
//
//   - [0] mandatory digit, [9] optional digit
//   - [A] mandatory letter, [a] optional letter
//   - [_] mandatory letter or digit, [-] optional letter or digit
//   - [Б] mandatory Cyrillic letter, [б] optional Cyrillic letter
//   - […] any number of characters of the preceding slot's class
//   - {...} fixed literals, inserted verbatim
//   - anything else outside brackets is a free literal
//   - \ escapes the following bracket
//
// Custom markers are declared with [Notation] values and may be used inside
// [] like the built-in ones.
//
// # Compilation
//
// [Sanitize] checks brackets, splits [] groups mixing marker classes and
// puts mandatory markers before optional ones. [Compile] turns the result
// into a chain of [State] nodes terminated by an [EOLState]:
//
//	m, err := mask.New("[00]{.}[00]{.}[9900]")
//	if err != nil {
//	    // err is a *mask.FormatError
//	}
//
// Compilation is the only step that can fail. Masks are immutable, so a
// [Cache] keyed by format and notations lets editors reuse them across
// keystrokes:
//
//	cache := mask.NewCache()
//	m, err := cache.GetOrCreate("[000]-[00]")
//
// # Applying
//
// [Mask.Apply] never fails. It returns the formatted text, the extracted
// value and whether every mandatory slot was filled:
//
//	r := m.Apply(mask.AtEnd("1234"), false)
//	// r.Formatted.Text == "123-4", r.Value == "1234", r.Complete == false
//
// The caret in the input [CaretString] is carried over to the formatted
// text, shifted past literals the mask inserted.
//
// # Placeholders
//
// [Mask.Placeholder] previews the whole mask and [Mask.PlaceholderAfter]
// previews what remains unfilled after a given text. The length queries
// report minimal and maximal text and value lengths.
package mask
