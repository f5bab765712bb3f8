package presenter

import (
	"errors"
	"testing"

	"github.com/dshills/inputmask/internal/mask"
)

func TestEditDeltaType(t *testing.T) {
	tests := []struct {
		delta    EditDelta
		want     ChangeType
		deletion bool
	}{
		{EditDelta{Cursor: 0, Inserted: 1}, ChangeInsert, false},
		{EditDelta{Cursor: 2, Deleted: 1}, ChangeDelete, true},
		{EditDelta{Cursor: 2, Deleted: 2, Inserted: 1}, ChangeReplace, false},
		{EditDelta{}, ChangeInsert, false},
	}

	for _, tt := range tests {
		if got := tt.delta.Type(); got != tt.want {
			t.Errorf("%v: expected type %v, got %v", tt.delta, tt.want, got)
		}
		if got := tt.delta.IsDeletion(); got != tt.deletion {
			t.Errorf("%v: expected IsDeletion %v, got %v", tt.delta, tt.deletion, got)
		}
	}
}

func TestChangeTypeString(t *testing.T) {
	tests := []struct {
		ct   ChangeType
		want string
	}{
		{ChangeInsert, "insert"},
		{ChangeDelete, "delete"},
		{ChangeReplace, "replace"},
		{ChangeType(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.ct.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", "plain"},
		{"plain", "plain"},
		{"Placeholder", "placeholder"},
		{"show_placeholder", "placeholder"},
	}
	for _, tt := range tests {
		s, err := ParseMode(tt.name)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.name, err)
			continue
		}
		if got := ModeName(s); got != tt.want {
			t.Errorf("%q: expected %s, got %s", tt.name, tt.want, got)
		}
	}

	if _, err := ParseMode("colored"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}

func TestPlaceholderPrepareText(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		delta  EditDelta
		want   string
	}{
		{
			name:   "insert after stored text",
			stored: "ЛСИ",
			delta:  EditDelta{Text: "ЛСИ10000000000;00.00", Cursor: 3, Inserted: 1},
			want:   "ЛСИ1",
		},
		{
			name:   "delete last char",
			stored: "ЛСИ3456789012;45.78",
			delta:  EditDelta{Text: "ЛСИ3456789012;45.7", Cursor: 18, Deleted: 1},
			want:   "ЛСИ3456789012;45.7",
		},
		{
			name:   "delete before last char",
			stored: "ЛСИ3456789012;45.7",
			delta:  EditDelta{Text: "ЛСИ3456789012;45.0", Cursor: 17, Deleted: 1},
			want:   "ЛСИ3456789012;45.",
		},
		{
			name:   "delete two chars",
			stored: "ЛСИ3456789012;45.78",
			delta:  EditDelta{Text: "ЛСИ34567890;45.78", Cursor: 11, Deleted: 2},
			want:   "ЛСИ34567890;45.78",
		},
		{
			name:   "delete fourth char",
			stored: "ЛСИ3456789012;45.78",
			delta:  EditDelta{Text: "ЛСИ456789012;45.78", Cursor: 3, Deleted: 1},
			want:   "ЛСИ456789012;45.78",
		},
		{
			name:   "insert in the middle",
			stored: "1234",
			delta:  EditDelta{Text: "12x3400", Cursor: 2, Inserted: 1},
			want:   "12x34",
		},
		{
			name:   "replace",
			stored: "1234",
			delta:  EditDelta{Text: "1x3400", Cursor: 1, Deleted: 1, Inserted: 1},
			want:   "1x34",
		},
		{
			name:   "delete with cursor past the end",
			stored: "12",
			delta:  EditDelta{Text: "12-0", Cursor: 4, Deleted: 1},
			want:   "2",
		},
		{
			name:   "delete from empty",
			stored: "",
			delta:  EditDelta{Text: "", Cursor: 0, Deleted: 1},
			want:   "",
		},
		{
			name:   "insertion out of range",
			stored: "12",
			delta:  EditDelta{Text: "12", Cursor: 5, Inserted: 3},
			want:   "12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Placeholder{}.PrepareText(tt.stored, tt.delta)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPlaceholderCaretPosition(t *testing.T) {
	tests := []struct {
		delta    EditDelta
		previous int
		want     int
	}{
		{EditDelta{Cursor: 3, Inserted: 1}, 3, 4},
		{EditDelta{Cursor: 7, Inserted: 1}, 3, 4},
		{EditDelta{Cursor: 2, Inserted: 2}, 5, 4},
		{EditDelta{Cursor: 4, Deleted: 1}, 6, 4},
		{EditDelta{Cursor: 9, Deleted: 1}, 6, 6},
	}
	for _, tt := range tests {
		if got := (Placeholder{}).CaretPosition(tt.delta, tt.previous); got != tt.want {
			t.Errorf("%v prev=%d: expected %d, got %d", tt.delta, tt.previous, tt.want, got)
		}
	}
}

func TestPlain(t *testing.T) {
	p := Plain{}
	d := EditDelta{Text: "123", Cursor: 2, Inserted: 1}

	if got := p.PrepareText("12", d); got != "123" {
		t.Errorf("expected host text, got %q", got)
	}
	if got := p.CaretPosition(d, 0); got != 3 {
		t.Errorf("expected caret 3, got %d", got)
	}
	if got := p.CaretPosition(EditDelta{Text: "1", Cursor: 1, Deleted: 1}, 5); got != 1 {
		t.Errorf("expected caret 1 after deletion, got %d", got)
	}

	m := mask.MustNew("[00]{-}[00]")
	if got := p.TextToShow("12-", m, true); got != "12-" {
		t.Errorf("expected formatted text only, got %q", got)
	}
}

func TestPlaceholderTextToShow(t *testing.T) {
	m := mask.MustNew("+7 ([000]) [000]-[00]-[00]")

	tests := []struct {
		formatted string
		want      string
	}{
		{"", "+7 (000) 000-00-00"},
		{"+7 (12", "+7 (120) 000-00-00"},
		{"+7 (123) 456-78-90", "+7 (123) 456-78-90"},
	}
	for _, tt := range tests {
		if got := (Placeholder{}).TextToShow(tt.formatted, m, false); got != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.formatted, tt.want, got)
		}
	}

	if got := (Placeholder{}).TextToShow("abc", nil, false); got != "abc" {
		t.Errorf("expected text unchanged without mask, got %q", got)
	}
}

func TestReconcilerPlain(t *testing.T) {
	m := mask.MustNew("[00]{-}[00]")
	r := NewReconciler(nil)

	type step struct {
		delta        EditDelta
		autocomplete bool
		text         string
		caret        int
	}
	steps := []step{
		{EditDelta{Text: "1", Cursor: 0, Inserted: 1}, true, "1", 1},
		{EditDelta{Text: "12", Cursor: 1, Inserted: 1}, true, "12-", 3},
		{EditDelta{Text: "12", Cursor: 2, Deleted: 1}, false, "12", 2},
		{EditDelta{Text: "123", Cursor: 2, Inserted: 1}, true, "12-3", 4},
	}

	for i, s := range steps {
		input := r.Reconcile(s.delta)
		result := m.Apply(input, s.autocomplete)
		r.Commit(s.delta, result)

		if r.Text() != s.text {
			t.Errorf("step %d: expected text %q, got %q", i, s.text, r.Text())
		}
		if r.Caret() != s.caret {
			t.Errorf("step %d: expected caret %d, got %d", i, s.caret, r.Caret())
		}
		if got := r.Display(m, s.autocomplete); got != s.text {
			t.Errorf("step %d: expected display %q, got %q", i, s.text, got)
		}
	}
}

func TestReconcilerPlaceholder(t *testing.T) {
	m := mask.MustNew("[00]{-}[00]")
	r := NewReconciler(Placeholder{})

	if got := r.Display(m, true); got != "00-00" {
		t.Fatalf("expected initial display 00-00, got %q", got)
	}

	type step struct {
		delta   EditDelta
		text    string
		caret   int
		display string
	}
	steps := []step{
		{EditDelta{Text: "100-00", Cursor: 0, Inserted: 1}, "1", 1, "10-00"},
		{EditDelta{Text: "120-00", Cursor: 1, Inserted: 1}, "12-", 3, "12-00"},
		{EditDelta{Text: "12-300", Cursor: 3, Inserted: 1}, "12-3", 4, "12-30"},
	}

	for i, s := range steps {
		input := r.Reconcile(s.delta)
		result := m.Apply(input, true)
		r.Commit(s.delta, result)

		if r.Text() != s.text {
			t.Errorf("step %d: expected text %q, got %q", i, s.text, r.Text())
		}
		if r.Caret() != s.caret {
			t.Errorf("step %d: expected caret %d, got %d", i, s.caret, r.Caret())
		}
		if got := r.Display(m, true); got != s.display {
			t.Errorf("step %d: expected display %q, got %q", i, s.display, got)
		}
	}
}

func TestReconcilerSetText(t *testing.T) {
	r := NewReconciler(Placeholder{})
	r.SetText("ЛСИ")

	if r.Text() != "ЛСИ" {
		t.Errorf("expected ЛСИ, got %q", r.Text())
	}
	if r.Caret() != 3 {
		t.Errorf("expected caret 3 in runes, got %d", r.Caret())
	}
	if ModeName(r.Strategy()) != "placeholder" {
		t.Errorf("expected placeholder strategy, got %s", ModeName(r.Strategy()))
	}
}

func TestReconcilerCommitClampsCaret(t *testing.T) {
	r := NewReconciler(nil)
	d := EditDelta{Text: "", Cursor: 5, Deleted: 1}
	r.Commit(d, mask.Result{Formatted: mask.CaretString{Text: "12"}})

	if r.Caret() != 2 {
		t.Errorf("expected caret clamped to 2, got %d", r.Caret())
	}
}
