package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/inputmask/internal/affinity"
	"github.com/dshills/inputmask/internal/mask"
)

// NewInspectCmd shows how a mask compiles.
func NewInspectCmd(s *session) *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the compiled form of a mask",
		Long: `Show the sanitized format, the state chain, the placeholder and the
length bounds of the primary mask and its alternatives. With --text, also
rank the masks against it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := s.field()
			if err != nil {
				return err
			}
			p, _, err := s.profileFor()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			masks := append([]*mask.Mask{f.Primary()}, f.Affine()...)

			for i, m := range masks {
				if i > 0 {
					fmt.Fprintln(out)
				}
				table := newTable(out, []string{"FORMAT", m.Format()})
				table.AppendBulk([][]string{
					{"sanitized", m.Sanitized()},
					{"chain", m.String()},
					{"placeholder", m.Placeholder()},
					{"text length", lengthString(m.AcceptableTextLength()) + ".." + lengthString(m.TotalTextLength())},
					{"value length", lengthString(m.AcceptableValueLength()) + ".." + lengthString(m.TotalValueLength())},
				})
				table.Render()
			}

			if text == "" {
				return nil
			}

			strategy, err := affinity.ParseStrategy(firstNonEmpty(p.Affinity, s.cfg.Defaults.Affinity))
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			table := newTable(out, []string{"RANK", "SCORE", "FORMAT", ""})
			for i, r := range affinity.Rank(masks[0], masks[1:], mask.AtEnd(text), false, strategy) {
				marker := ""
				if r.Primary {
					marker = "primary"
				}
				table.Append([]string{fmt.Sprint(i + 1), fmt.Sprint(r.Score), r.Mask.Format(), marker})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Rank the masks against this text")
	return cmd
}

// NewProfilesCmd lists the configured profiles.
func NewProfilesCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "profiles",
		Aliases: []string{"ls"},
		Short:   "List configured profiles",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, name := range s.cfg.ProfileNames() {
				p, _ := s.cfg.Profile(name)
				rows = append(rows, []string{
					name,
					p.Primary,
					strings.Join(p.Affine, ", "),
					firstNonEmpty(p.Affinity, s.cfg.Defaults.Affinity),
				})
			}

			table := newTable(cmd.OutOrStdout(), []string{"NAME", "PRIMARY", "AFFINE", "AFFINITY"})
			table.AppendBulk(rows)
			table.Render()
			return nil
		},
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
