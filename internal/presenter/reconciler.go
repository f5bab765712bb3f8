package presenter

import (
	"unicode/utf8"

	"github.com/dshills/inputmask/internal/mask"
)

// Reconciler keeps the logical text of one field between edits.
// It is not safe for concurrent use.
type Reconciler struct {
	strategy Strategy
	text     string
	caret    int
}

// NewReconciler creates a reconciler using s, or Plain when s is nil.
func NewReconciler(s Strategy) *Reconciler {
	if s == nil {
		s = Plain{}
	}
	return &Reconciler{strategy: s}
}

// Strategy returns the presentation strategy.
func (r *Reconciler) Strategy() Strategy {
	return r.strategy
}

// Text returns the stored logical text.
func (r *Reconciler) Text() string {
	return r.text
}

// Caret returns the caret left by the last commit.
func (r *Reconciler) Caret() int {
	return r.caret
}

// SetText replaces the stored text and moves the caret to its end.
func (r *Reconciler) SetText(text string) {
	r.text = text
	r.caret = utf8.RuneCountInString(text)
}

// Reconcile folds d into the stored text and returns the text and caret
// to apply the mask to.
func (r *Reconciler) Reconcile(d EditDelta) mask.CaretString {
	r.text = r.strategy.PrepareText(r.text, d)
	return mask.NewCaretString(r.text, r.strategy.CaretPosition(d, r.caret))
}

// Commit stores the outcome of applying the mask for d. After a deletion
// the caret stays where the host put it.
func (r *Reconciler) Commit(d EditDelta, result mask.Result) {
	r.text = result.Formatted.Text
	caret := result.Formatted.Caret
	if d.IsDeletion() {
		caret = d.Cursor
	}
	r.caret = clamp(caret, 0, utf8.RuneCountInString(r.text))
}

// Display returns what the host should show for the stored text.
func (r *Reconciler) Display(m *mask.Mask, autocomplete bool) string {
	return r.strategy.TextToShow(r.text, m, autocomplete)
}
