package mask

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const phoneFormat = "+7 ([000]) [000]-[00]-[00]"

func TestApply(t *testing.T) {
	hex := Notation{Character: 'X', CharacterSet: "0123456789ABCDEF"}

	tests := []struct {
		name         string
		format       string
		notations    []Notation
		input        CaretString
		autocomplete bool
		want         Result
	}{
		{
			name:   "second group incomplete",
			format: "[000]-[00]",
			input:  AtEnd("1234"),
			want:   Result{Formatted: CaretString{"123-4", 5}, Value: "1234", Complete: false, Consumed: 4},
		},
		{
			name:         "phone number",
			format:       phoneFormat,
			input:        AtEnd("9161234567"),
			autocomplete: true,
			want:         Result{Formatted: CaretString{"+7 (916) 123-45-67", 18}, Value: "9161234567", Complete: true, Consumed: 10},
		},
		{
			name:   "fixed literal inserted",
			format: "{A}[00]",
			input:  AtEnd("5"),
			want:   Result{Formatted: CaretString{"A5", 2}, Value: "5", Complete: false, Consumed: 1},
		},
		{
			name:   "fixed literal consumed when typed",
			format: "{(}[000]{)}",
			input:  AtEnd("(123)"),
			want:   Result{Formatted: CaretString{"(123)", 5}, Value: "123", Complete: true, Consumed: 5},
		},
		{
			name:   "mandatory mismatch stops scan",
			format: "[000]-[00]",
			input:  AtEnd("12a34"),
			want:   Result{Formatted: CaretString{"12", 2}, Value: "12", Complete: false, Consumed: 2},
		},
		{
			name:   "optional slots skipped",
			format: "[0099]",
			input:  AtEnd("12a"),
			want:   Result{Formatted: CaretString{"12", 2}, Value: "12", Complete: true, Consumed: 2},
		},
		{
			name:   "optional slot passes rune to literal",
			format: "[09]-[0]",
			input:  AtEnd("1-2"),
			want:   Result{Formatted: CaretString{"1-2", 3}, Value: "12", Complete: true, Consumed: 3},
		},
		{
			name:   "input beyond eol dropped",
			format: "[00]",
			input:  AtEnd("123"),
			want:   Result{Formatted: CaretString{"12", 2}, Value: "12", Complete: true, Consumed: 2},
		},
		{
			name:         "autocomplete appends literals",
			format:       "[00]{.}[00]",
			input:        AtEnd("12"),
			autocomplete: true,
			want:         Result{Formatted: CaretString{"12.", 3}, Value: "12", Complete: false, Consumed: 2},
		},
		{
			name:   "no autocomplete",
			format: "[00]{.}[00]",
			input:  AtEnd("12"),
			want:   Result{Formatted: CaretString{"12", 2}, Value: "12", Complete: false, Consumed: 2},
		},
		{
			name:         "autocomplete on empty input",
			format:       "+7 ([000])",
			input:        AtEnd(""),
			autocomplete: true,
			want:         Result{Formatted: CaretString{"+7 (", 4}, Value: "", Complete: false, Consumed: 0},
		},
		{
			name:   "caret before inserted literal",
			format: "[000]-[00]",
			input:  CaretString{"1234", 3},
			want:   Result{Formatted: CaretString{"123-4", 4}, Value: "1234", Complete: false, Consumed: 4},
		},
		{
			name:   "caret at start",
			format: "{A}[00]",
			input:  CaretString{"5", 0},
			want:   Result{Formatted: CaretString{"A5", 1}, Value: "5", Complete: false, Consumed: 1},
		},
		{
			name:   "dropped runes pull caret",
			format: "[000]",
			input:  CaretString{"1x23", 4},
			want:   Result{Formatted: CaretString{"1", 1}, Value: "1", Complete: false, Consumed: 1},
		},
		{
			name:   "ellipsis repeats",
			format: "[0…]",
			input:  AtEnd("12345a6"),
			want:   Result{Formatted: CaretString{"12345", 5}, Value: "12345", Complete: true, Consumed: 5},
		},
		{
			name:      "custom notation",
			format:    "[XX]-[XX]",
			notations: []Notation{hex},
			input:     AtEnd("A9F0"),
			want:      Result{Formatted: CaretString{"A9-F0", 5}, Value: "A9F0", Complete: true, Consumed: 4},
		},
		{
			name:      "custom notation rejects",
			format:    "[XX]",
			notations: []Notation{hex},
			input:     AtEnd("fA"),
			want:      Result{Formatted: CaretString{"", 0}, Value: "", Complete: false, Consumed: 0},
		},
		{
			name:   "cyrillic",
			format: "[ББ]",
			input:  AtEnd("жz"),
			want:   Result{Formatted: CaretString{"ж", 1}, Value: "ж", Complete: false, Consumed: 1},
		},
		{
			name:   "cyrillic literal prefix",
			format: "ЛСИ[0000]",
			input:  AtEnd("ЛСИ12"),
			want:   Result{Formatted: CaretString{"ЛСИ12", 5}, Value: "12", Complete: false, Consumed: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.format, tt.notations...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := m.Apply(tt.input, tt.autocomplete)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Apply(%v) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestApplySkippedOptionalBeforeFreeLiteral(t *testing.T) {
	m := MustNew("[9]0 +")

	first := m.Apply(AtEnd("XX"), false)
	if first.Formatted.Text != "0 +" || first.Value != "" {
		t.Fatalf("expected %q with empty value, got %q value %q", "0 +", first.Formatted.Text, first.Value)
	}

	second := m.Apply(AtEnd(first.Formatted.Text), false)
	if second.Formatted.Text != "00 +" || second.Value != "0" {
		t.Errorf("expected %q value %q, got %q value %q", "00 +", "0", second.Formatted.Text, second.Value)
	}
}

func TestApplyIdempotent(t *testing.T) {
	tests := []struct {
		format string
		input  string
	}{
		{phoneFormat, "9161234567"},
		{phoneFormat, "916"},
		{"[000]-[00]", "1234"},
		{"[00]{.}[00]{.}[0000]", "01012020"},
		{"[A]{-}[0…]", "B12345"},
		{"[09]{:}[09]", "1:2"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			m := MustNew(tt.format)
			first := m.Apply(AtEnd(tt.input), true)
			second := m.Apply(AtEnd(first.Formatted.Text), true)
			if first.Formatted.Text != second.Formatted.Text {
				t.Errorf("expected %q, got %q", first.Formatted.Text, second.Formatted.Text)
			}
			if first.Value != second.Value {
				t.Errorf("expected value %q, got %q", first.Value, second.Value)
			}
		})
	}
}

func TestApplyValueIsSubsequence(t *testing.T) {
	m := MustNew(phoneFormat)
	inputs := []string{"9161234567", "+7 (916) 12", "9x16", "abc", "", "7 916 123 45 67 89"}

	for _, input := range inputs {
		r := m.Apply(AtEnd(input), true)
		if !isSubsequence(r.Value, input) {
			t.Errorf("%q: value %q is not a subsequence of the input", input, r.Value)
		}
	}
}

func isSubsequence(sub, s string) bool {
	rs := []rune(s)
	i := 0
	for _, r := range sub {
		for i < len(rs) && rs[i] != r {
			i++
		}
		if i == len(rs) {
			return false
		}
		i++
	}
	return true
}

func TestApplyCompletenessMonotonic(t *testing.T) {
	m := MustNew("[000]-[00][99]")
	digits := "1234567"

	complete := false
	for n := 1; n <= len(digits); n++ {
		r := m.Apply(AtEnd(digits[:n]), false)
		if complete && !r.Complete {
			t.Fatalf("input %q: completeness lost", digits[:n])
		}
		complete = r.Complete
	}
	if !complete {
		t.Errorf("expected complete after %q", digits)
	}
}

func TestPlaceholder(t *testing.T) {
	hex := Notation{Character: 'X', CharacterSet: "0123456789ABCDEF"}

	tests := []struct {
		format string
		want   string
	}{
		{phoneFormat, "+7 (000) 000-00-00"},
		{"[Aa_-Бб]", "aa--бб"},
		{"[0…]", "0"},
		{"{#}[XX]", "#XX"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			m := MustNew(tt.format, hex)
			if got := m.Placeholder(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPlaceholderAfter(t *testing.T) {
	m := MustNew("[000]-[00]")

	tests := []struct {
		text         string
		autocomplete bool
		want         string
	}{
		{"", false, "000-00"},
		{"12", false, "0-00"},
		{"123", false, "-00"},
		{"123", true, "00"},
		{"123-45", false, ""},
	}

	for _, tt := range tests {
		got := m.PlaceholderAfter(AtEnd(tt.text), tt.autocomplete)
		if got != tt.want {
			t.Errorf("PlaceholderAfter(%q, %v): expected %q, got %q", tt.text, tt.autocomplete, tt.want, got)
		}
	}
}

func TestLengths(t *testing.T) {
	tests := []struct {
		format          string
		acceptableText  int
		totalText       int
		acceptableValue int
		totalValue      int
	}{
		{phoneFormat, 18, 18, 10, 10},
		{"[0099]{.}[0]", 4, 6, 3, 5},
		{"[0…]", 1, Unbounded, 1, Unbounded},
		{"", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			m := MustNew(tt.format)
			if got := m.AcceptableTextLength(); got != tt.acceptableText {
				t.Errorf("AcceptableTextLength: expected %d, got %d", tt.acceptableText, got)
			}
			if got := m.TotalTextLength(); got != tt.totalText {
				t.Errorf("TotalTextLength: expected %d, got %d", tt.totalText, got)
			}
			if got := m.AcceptableValueLength(); got != tt.acceptableValue {
				t.Errorf("AcceptableValueLength: expected %d, got %d", tt.acceptableValue, got)
			}
			if got := m.TotalValueLength(); got != tt.totalValue {
				t.Errorf("TotalValueLength: expected %d, got %d", tt.totalValue, got)
			}
		})
	}
}

func TestMaskAccessors(t *testing.T) {
	n := Notation{Character: 'X', CharacterSet: "ab"}
	m := MustNew("[9X0]", n)

	if m.Format() != "[9X0]" {
		t.Errorf("expected format %q, got %q", "[9X0]", m.Format())
	}
	if m.Sanitized() != "[X09]" {
		t.Errorf("expected sanitized %q, got %q", "[X09]", m.Sanitized())
	}
	notations := m.Notations()
	notations[0].Character = 'Y'
	if m.Notations()[0].Character != 'X' {
		t.Error("Notations should return a copy")
	}
	if !strings.HasSuffix(m.String(), "EOL") {
		t.Errorf("expected chain dump to end with EOL, got %q", m.String())
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for malformed format")
		}
	}()
	MustNew("[00")
}

func TestCaretString(t *testing.T) {
	c := NewCaretString("абв", 10)
	if c.Caret != 3 {
		t.Errorf("expected caret clamped to 3, got %d", c.Caret)
	}
	if c.Len() != 3 {
		t.Errorf("expected length 3, got %d", c.Len())
	}
	if got := NewCaretString("абв", 1).String(); got != "а|бв" {
		t.Errorf("expected %q, got %q", "а|бв", got)
	}
	if got := NewCaretString("абв", 2).Prefix(); got != (CaretString{"аб", 2}) {
		t.Errorf("expected prefix %v, got %v", CaretString{"аб", 2}, got)
	}
	if got := NewCaretString("x", -4); got.Caret != 0 {
		t.Errorf("expected caret clamped to 0, got %d", got.Caret)
	}
}
