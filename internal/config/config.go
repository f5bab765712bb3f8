package config

import (
	"fmt"
	"log/slog"
	"slices"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"

	"github.com/dshills/inputmask/internal/affinity"
	"github.com/dshills/inputmask/internal/config/loader"
	"github.com/dshills/inputmask/internal/field"
	"github.com/dshills/inputmask/internal/logutil"
	"github.com/dshills/inputmask/internal/mask"
	"github.com/dshills/inputmask/internal/presenter"
)

// MaxIncludeDepth limits nested includes.
const MaxIncludeDepth = 8

// Config is the decoded configuration.
type Config struct {
	LogLevel  string             `mapstructure:"log_level"`
	Defaults  Defaults           `mapstructure:"defaults"`
	Notations []NotationConfig   `mapstructure:"notations"`
	Profiles  map[string]Profile `mapstructure:"profiles"`
}

// Defaults applies to every profile that does not override it.
type Defaults struct {
	Autocomplete *bool  `mapstructure:"autocomplete"`
	Affinity     string `mapstructure:"affinity"`
	Presentation string `mapstructure:"presentation"`
}

// NotationConfig declares a custom value marker.
type NotationConfig struct {
	Character string `mapstructure:"character"`
	Set       string `mapstructure:"set"`
	Optional  bool   `mapstructure:"optional"`
}

// Profile describes one masked field.
type Profile struct {
	Primary      string   `mapstructure:"primary"`
	Affine       []string `mapstructure:"affine"`
	Affinity     string   `mapstructure:"affinity"`
	Autocomplete *bool    `mapstructure:"autocomplete"`
	Presentation string   `mapstructure:"presentation"`
}

// Default returns the built-in configuration.
func Default() *Config {
	autocomplete := true
	return &Config{
		LogLevel: "info",
		Defaults: Defaults{
			Autocomplete: &autocomplete,
			Affinity:     affinity.WholeString.String(),
			Presentation: "plain",
		},
		Profiles: make(map[string]Profile),
	}
}

type loadOptions struct {
	fs  loader.FileSystem
	env loader.Loader
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithFileSystem reads files from fsys instead of the OS.
func WithFileSystem(fsys loader.FileSystem) LoadOption {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// WithEnv overrides the environment layer. A nil loader disables it.
func WithEnv(l loader.Loader) LoadOption {
	return func(o *loadOptions) {
		o.env = l
	}
}

// Load reads the configuration at path on top of the built-in defaults.
// An empty path, or a path that doesn't exist, leaves only defaults and
// the environment.
func Load(path string, opts ...LoadOption) (*Config, error) {
	o := loadOptions{
		fs:  loader.DefaultFS(),
		env: loader.NewEnvLoader(loader.DefaultEnvPrefix),
	}
	for _, opt := range opts {
		opt(&o)
	}

	data := make(map[string]any)
	if path != "" {
		fileData, err := loader.LoadWithIncludes(o.fs, path, MaxIncludeDepth)
		if err != nil {
			return nil, err
		}
		data = loader.DeepMerge(data, fileData)
	}
	if o.env != nil {
		envData, err := o.env.Load()
		if err != nil {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		data = loader.DeepMerge(data, envData)
	}

	cfg := Default()
	if err := decode(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(data map[string]any, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return nil
}

// ProfileNames returns the profile names in sorted order.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Profile returns the named profile.
func (c *Config) Profile(name string) (Profile, error) {
	p, ok := c.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return p, nil
}

// MaskNotations converts the configured notations.
func (c *Config) MaskNotations() ([]mask.Notation, error) {
	notations := make([]mask.Notation, 0, len(c.Notations))
	for i, n := range c.Notations {
		if utf8.RuneCountInString(n.Character) != 1 {
			return nil, fmt.Errorf("%w: notation %d: character %q must be a single character", ErrInvalidNotation, i, n.Character)
		}
		if n.Set == "" {
			return nil, fmt.Errorf("%w: notation %d: empty character set", ErrInvalidNotation, i)
		}
		r, _ := utf8.DecodeRuneInString(n.Character)
		notations = append(notations, mask.Notation{Character: r, CharacterSet: n.Set, Optional: n.Optional})
	}
	return notations, nil
}

// Validate checks every setting and compiles every profile's formats
// through cache.
func (c *Config) Validate(cache *mask.Cache) error {
	if _, err := logutil.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w: %w", ErrInvalidValue, err)
	}
	if _, err := c.MaskNotations(); err != nil {
		return err
	}
	if _, err := c.FieldOptions(Profile{}); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	for _, name := range c.ProfileNames() {
		if _, err := c.Field(name, cache, nil); err != nil {
			return err
		}
	}
	return nil
}

// FieldOptions resolves the field options of p against the defaults.
func (c *Config) FieldOptions(p Profile) ([]field.Option, error) {
	notations, err := c.MaskNotations()
	if err != nil {
		return nil, err
	}

	strategy, err := affinity.ParseStrategy(firstNonEmpty(p.Affinity, c.Defaults.Affinity))
	if err != nil {
		return nil, fmt.Errorf("affinity: %w: %w", ErrInvalidValue, err)
	}
	presentation, err := presenter.ParseMode(firstNonEmpty(p.Presentation, c.Defaults.Presentation))
	if err != nil {
		return nil, fmt.Errorf("presentation: %w: %w", ErrInvalidValue, err)
	}

	autocomplete := true
	if c.Defaults.Autocomplete != nil {
		autocomplete = *c.Defaults.Autocomplete
	}
	if p.Autocomplete != nil {
		autocomplete = *p.Autocomplete
	}

	return []field.Option{
		field.WithNotations(notations...),
		field.WithAffineFormats(p.Affine...),
		field.WithAffinity(strategy),
		field.WithAutocomplete(autocomplete),
		field.WithPresentation(presentation),
	}, nil
}

// NewField creates a field for p.
func (c *Config) NewField(p Profile, cache *mask.Cache, logger *slog.Logger) (*field.Field, error) {
	if p.Primary == "" {
		return nil, fmt.Errorf("%w: empty primary format", ErrInvalidValue)
	}
	opts, err := c.FieldOptions(p)
	if err != nil {
		return nil, err
	}
	opts = append(opts, field.WithCache(cache), field.WithLogger(logger))
	return field.New(p.Primary, opts...)
}

// Field creates a field for the named profile.
func (c *Config) Field(name string, cache *mask.Cache, logger *slog.Logger) (*field.Field, error) {
	p, err := c.Profile(name)
	if err != nil {
		return nil, err
	}
	f, err := c.NewField(p, cache, logger)
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", name, err)
	}
	return f, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
