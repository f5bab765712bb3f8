package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/rivo/uniseg"
	"github.com/tidwall/sjson"
	"golang.org/x/term"

	"github.com/dshills/inputmask/internal/mask"
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	return table
}

// writeRows prints rows as an aligned table on a terminal and as
// tab-separated values otherwise.
func writeRows(w io.Writer, header []string, rows [][]string) error {
	if isTerminal(w) {
		table := newTable(w, header)
		table.AppendBulk(rows)
		table.Render()
		return nil
	}

	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

type jsonField struct {
	path  string
	value any
}

// jsonLine builds one JSON object from fields, in order.
func jsonLine(fields ...jsonField) (string, error) {
	out := "{}"
	for _, f := range fields {
		var err error
		if out, err = sjson.Set(out, f.path, f.value); err != nil {
			return "", fmt.Errorf("encoding %s: %w", f.path, err)
		}
	}
	return out, nil
}

// caretMarker returns a line with '^' under the caret position of text,
// accounting for wide and combining characters.
func caretMarker(text string, caret int) string {
	runes := []rune(text)
	caret = max(0, min(caret, len(runes)))
	return strings.Repeat(" ", uniseg.StringWidth(string(runes[:caret]))) + "^"
}

func lengthString(n int) string {
	if n == mask.Unbounded {
		return "unbounded"
	}
	return strconv.Itoa(n)
}
