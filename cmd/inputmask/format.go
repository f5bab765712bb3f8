package main

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"
)

// NewFormatCmd applies a mask to each argument, or to each stdin line.
func NewFormatCmd(s *session) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "format [TEXT...]",
		Short: "Apply a mask to text",
		Long: `Apply a mask to each argument, or to each line of standard input when
no arguments are given. Input is normalized to NFC first.`,
		Example: `  inputmask format -f "+7 ([000]) [000]-[00]-[00]" 9991234567
  cat dates.txt | inputmask format -c masks.toml -p date --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := s.field()
			if err != nil {
				return err
			}

			inputs := args
			if len(inputs) == 0 {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					inputs = append(inputs, scanner.Text())
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			var rows [][]string
			for _, input := range inputs {
				input = norm.NFC.String(input)
				u := f.SetText(input)

				if asJSON {
					line, err := jsonLine(
						jsonField{"input", input},
						jsonField{"text", u.Result.Formatted.Text},
						jsonField{"value", u.Result.Value},
						jsonField{"complete", u.Result.Complete},
						jsonField{"mask", f.Mask().Format()},
					)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, line)
					continue
				}

				rows = append(rows, []string{input, u.Result.Formatted.Text, u.Result.Value, strconv.FormatBool(u.Result.Complete)})
			}

			if asJSON {
				return nil
			}
			return writeRows(out, []string{"INPUT", "TEXT", "VALUE", "COMPLETE"}, rows)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Write one JSON object per input")
	return cmd
}
