package field

import (
	"log/slog"

	"github.com/dshills/inputmask/internal/affinity"
	"github.com/dshills/inputmask/internal/mask"
	"github.com/dshills/inputmask/internal/presenter"
)

// Option configures a Field during creation.
type Option func(*Field)

// WithAffineFormats sets alternative formats competing with the primary one.
func WithAffineFormats(formats ...string) Option {
	return func(f *Field) {
		f.affineFormats = append([]string(nil), formats...)
	}
}

// WithNotations sets the custom notations shared by all formats.
func WithNotations(notations ...mask.Notation) Option {
	return func(f *Field) {
		f.notations = append([]mask.Notation(nil), notations...)
	}
}

// WithAffinity sets how the formats are scored against the input.
func WithAffinity(s affinity.Strategy) Option {
	return func(f *Field) {
		f.affinity = s
	}
}

// WithAutocomplete enables appending trailing literals after input.
func WithAutocomplete(enabled bool) Option {
	return func(f *Field) {
		f.autocomplete = enabled
	}
}

// WithPresentation sets how formatted text is displayed.
func WithPresentation(s presenter.Strategy) Option {
	return func(f *Field) {
		if s != nil {
			f.presentation = s
		}
	}
}

// WithCache sets the cache masks are compiled through.
func WithCache(c *mask.Cache) Option {
	return func(f *Field) {
		if c != nil {
			f.cache = c
		}
	}
}

// WithLogger sets the logger for edit tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Field) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithValueListener registers fn to be called after every content change.
func WithValueListener(fn ValueListener) Option {
	return func(f *Field) {
		f.listener = fn
	}
}
