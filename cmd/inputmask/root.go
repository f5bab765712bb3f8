package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dshills/inputmask/internal/config"
	"github.com/dshills/inputmask/internal/field"
	"github.com/dshills/inputmask/internal/logutil"
	"github.com/dshills/inputmask/internal/mask"
)

var errNoMask = errors.New("either --format or --profile is required")

// session holds what the subcommands share once flags are parsed.
type session struct {
	configPath string
	profile    string
	format     string
	affine     []string
	logLevel   string

	cfg    *config.Config
	cache  *mask.Cache
	logger *slog.Logger
}

func (s *session) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return err
	}

	levelName := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		levelName = s.logLevel
	}
	level, err := logutil.ParseLevel(levelName)
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.logger = logutil.NewLogger(cmd.ErrOrStderr(), level)
	s.cache = mask.NewCache(mask.WithLogger(s.logger))

	if s.configPath != "" {
		if err := cfg.Validate(s.cache); err != nil {
			return fmt.Errorf("%s: %w", s.configPath, err)
		}
		s.logger.Debug("config loaded", "path", s.configPath, "profiles", len(cfg.Profiles))
	}
	return nil
}

// profileFor resolves the flags into a profile: an ad-hoc --format wins
// over a named --profile.
func (s *session) profileFor() (config.Profile, string, error) {
	if s.format != "" {
		return config.Profile{Primary: s.format, Affine: s.affine}, s.format, nil
	}
	if s.profile != "" {
		p, err := s.cfg.Profile(s.profile)
		return p, s.profile, err
	}
	return config.Profile{}, "", errNoMask
}

func (s *session) field() (*field.Field, error) {
	p, name, err := s.profileFor()
	if err != nil {
		return nil, err
	}
	f, err := s.cfg.NewField(p, s.cache, s.logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

// NewCLI builds the root command.
func NewCLI() *cobra.Command {
	s := &session{}

	rootCmd := &cobra.Command{
		Use:   "inputmask",
		Short: "Format text with input masks",
		Long: `Format text with input masks such as "+7 ([000]) [000]-[00]-[00]".

Masks come from --format or from a named --profile in a TOML or YAML
configuration file.`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return s.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&s.configPath, "config", "c", "", "Path to a TOML or YAML configuration file")
	flags.StringVarP(&s.profile, "profile", "p", "", "Profile to use from the configuration")
	flags.StringVarP(&s.format, "format", "f", "", "Primary mask format")
	flags.StringArrayVar(&s.affine, "affine", nil, "Alternative mask format (repeatable)")
	flags.StringVar(&s.logLevel, "log-level", "info", "Log level: trace, debug, info, warn, error")

	cobra.EnableCommandSorting = false

	rootCmd.AddCommand(
		NewFormatCmd(s),
		NewReplayCmd(s),
		NewInspectCmd(s),
		NewProfilesCmd(s),
		NewVersionCmd(),
	)

	return rootCmd
}

// NewVersionCmd prints build information.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "inputmask %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
