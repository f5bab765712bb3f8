// Package field binds masks to a single text input.
//
// A Field receives the edits of a host widget, picks the best fitting mask,
// applies it and reports what the widget should show. It holds no
// reference to the widget: the host applies Update.Display and
// Update.Caret itself.
package field

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dshills/inputmask/internal/affinity"
	"github.com/dshills/inputmask/internal/logutil"
	"github.com/dshills/inputmask/internal/mask"
	"github.com/dshills/inputmask/internal/presenter"
)

// Update is the outcome of an edit.
type Update struct {
	// Result is the outcome of applying the picked mask.
	Result mask.Result

	// Display is the text the host should show, placeholder included.
	Display string

	// Caret is where the host should put its cursor, in runes.
	Caret int
}

// ValueListener receives the state of a field after each change: whether
// every mandatory slot is filled, the extracted value and the formatted text.
type ValueListener func(complete bool, value, formatted string)

// Field is a masked text input. It is not safe for concurrent use.
type Field struct {
	primaryFormat string
	affineFormats []string
	notations     []mask.Notation
	affinity      affinity.Strategy
	autocomplete  bool
	presentation  presenter.Strategy
	cache         *mask.Cache
	logger        *slog.Logger
	listener      ValueListener

	primary    *mask.Mask
	affine     []*mask.Mask
	current    *mask.Mask
	reconciler *presenter.Reconciler
	last       mask.Result
}

// New creates a field for the primary format. All formats are compiled
// up front, so a malformed one is reported here and never during editing.
func New(primary string, opts ...Option) (*Field, error) {
	f := &Field{
		primaryFormat: primary,
		affinity:      affinity.WholeString,
		autocomplete:  true,
		presentation:  presenter.Plain{},
		cache:         mask.Shared(),
		logger:        logutil.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}

	var err error
	if f.primary, err = f.cache.GetOrCreate(primary, f.notations...); err != nil {
		return nil, fmt.Errorf("primary format: %w", err)
	}
	f.affine = make([]*mask.Mask, 0, len(f.affineFormats))
	for i, format := range f.affineFormats {
		m, err := f.cache.GetOrCreate(format, f.notations...)
		if err != nil {
			return nil, fmt.Errorf("affine format %d: %w", i, err)
		}
		f.affine = append(f.affine, m)
	}

	f.current = f.primary
	f.reconciler = presenter.NewReconciler(f.presentation)
	return f, nil
}

// SetText replaces the content with text, formatting it with the caret at
// the end.
func (f *Field) SetText(text string) Update {
	return f.applyAtEnd(text)
}

// Edit applies a host edit. Autocomplete is suppressed for deletions so
// that removing a literal does not re-insert it.
func (f *Field) Edit(d presenter.EditDelta) Update {
	input := f.reconciler.Reconcile(d)
	autocomplete := f.autocomplete && !d.IsDeletion()
	f.logger.Log(context.Background(), logutil.LevelTrace, "edit reconciled",
		"delta", d.String(),
		"input", input.Text,
		"caret", input.Caret,
		"autocomplete", autocomplete)

	f.current = affinity.Pick(f.primary, f.affine, input, autocomplete, f.affinity)
	result := f.current.Apply(input, autocomplete)
	f.reconciler.Commit(d, result)
	f.last = result

	f.logger.Debug("edit applied",
		"change", d.Type(),
		"format", f.current.Format(),
		"text", result.Formatted.Text,
		"value", result.Value,
		"complete", result.Complete)

	return f.update(autocomplete)
}

// Focus reformats the stored text with autocomplete when the field gains
// focus. It reports false, and changes nothing, when autocomplete is off.
func (f *Field) Focus() (Update, bool) {
	if !f.autocomplete {
		return Update{}, false
	}
	return f.applyAtEnd(f.reconciler.Text()), true
}

func (f *Field) applyAtEnd(text string) Update {
	input := mask.AtEnd(text)
	f.current = affinity.Pick(f.primary, f.affine, input, f.autocomplete, f.affinity)
	result := f.current.Apply(input, f.autocomplete)

	f.reconciler.SetText(result.Formatted.Text)
	f.last = result

	f.logger.Debug("text set",
		"format", f.current.Format(),
		"text", result.Formatted.Text,
		"complete", result.Complete)

	return f.update(f.autocomplete)
}

// update reports the stored state. The placeholder is rendered with the
// autocomplete setting of the edit, so a literal just deleted shows up as
// placeholder instead of vanishing.
func (f *Field) update(autocomplete bool) Update {
	if f.listener != nil {
		f.listener(f.last.Complete, f.last.Value, f.last.Formatted.Text)
	}
	return Update{
		Result:  f.last,
		Display: f.reconciler.Display(f.current, autocomplete),
		Caret:   f.reconciler.Caret(),
	}
}

// Text returns the stored formatted text, without placeholder.
func (f *Field) Text() string { return f.reconciler.Text() }

// Value returns the value extracted by the last edit.
func (f *Field) Value() string { return f.last.Value }

// Complete reports whether the last edit filled every mandatory slot.
func (f *Field) Complete() bool { return f.last.Complete }

// Mask returns the mask picked for the last edit.
func (f *Field) Mask() *mask.Mask { return f.current }

// Primary returns the primary mask.
func (f *Field) Primary() *mask.Mask { return f.primary }

// Affine returns the alternative masks in configuration order.
func (f *Field) Affine() []*mask.Mask { return slices.Clone(f.affine) }

// Placeholder renders the primary mask.
func (f *Field) Placeholder() string { return f.primary.Placeholder() }

// AcceptableTextLength is the primary mask's minimal complete text length.
func (f *Field) AcceptableTextLength() int { return f.primary.AcceptableTextLength() }

// TotalTextLength is the primary mask's maximal text length, or mask.Unbounded.
func (f *Field) TotalTextLength() int { return f.primary.TotalTextLength() }

// AcceptableValueLength is the primary mask's minimal complete value length.
func (f *Field) AcceptableValueLength() int { return f.primary.AcceptableValueLength() }

// TotalValueLength is the primary mask's maximal value length, or mask.Unbounded.
func (f *Field) TotalValueLength() int { return f.primary.TotalValueLength() }
