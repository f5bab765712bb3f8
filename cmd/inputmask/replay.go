package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/dshills/inputmask/internal/field"
	"github.com/dshills/inputmask/internal/presenter"
)

var errInvalidEvent = errors.New("invalid replay event")

// NewReplayCmd feeds a recorded edit session through a field.
func NewReplayCmd(s *session) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "replay [FILE]",
		Short: "Replay recorded edits through a masked field",
		Long: `Replay a JSON-lines recording of edits through a masked field, printing
what the field displays after each one. Each line is one of:

  {"set": "text"}                                          replace the content
  {"focus": true}                                          focus the field
  {"text": "...", "cursor": 3, "deleted": 0, "inserted": 1}  an edit

Reads standard input when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := s.field()
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				in = file
			}

			return replay(in, cmd.OutOrStdout(), f, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Write one JSON object per event")
	return cmd
}

func replay(in io.Reader, out io.Writer, f *field.Field, asJSON bool) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		u, ok, err := replayEvent(f, line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if !ok {
			continue
		}

		if asJSON {
			encoded, err := jsonLine(
				jsonField{"display", u.Display},
				jsonField{"caret", u.Caret},
				jsonField{"value", u.Result.Value},
				jsonField{"complete", u.Result.Complete},
			)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, encoded)
			continue
		}

		fmt.Fprintln(out, u.Display)
		fmt.Fprintln(out, caretMarker(u.Display, u.Caret))
	}
	return scanner.Err()
}

// replayEvent applies one recorded event. It reports false for a focus
// event the field ignored.
func replayEvent(f *field.Field, line string) (field.Update, bool, error) {
	if !gjson.Valid(line) {
		return field.Update{}, false, fmt.Errorf("%w: malformed JSON", errInvalidEvent)
	}
	event := gjson.Parse(line)
	if !event.IsObject() {
		return field.Update{}, false, fmt.Errorf("%w: expected an object", errInvalidEvent)
	}

	if set := event.Get("set"); set.Exists() {
		return f.SetText(set.String()), true, nil
	}
	if event.Get("focus").Bool() {
		u, ok := f.Focus()
		return u, ok, nil
	}

	text := event.Get("text")
	if !text.Exists() {
		return field.Update{}, false, fmt.Errorf("%w: missing text", errInvalidEvent)
	}
	delta := presenter.EditDelta{
		Text:     text.String(),
		Cursor:   int(event.Get("cursor").Int()),
		Deleted:  int(event.Get("deleted").Int()),
		Inserted: int(event.Get("inserted").Int()),
	}
	return f.Edit(delta), true, nil
}
