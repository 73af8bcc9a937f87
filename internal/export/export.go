// Package export writes rendered tables in formats meant for other programs
// or documents rather than terminals.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/boxgrid/pkg/grid"
)

// JSON writes lines as an indented JSON array of {role, segments} objects.
func JSON(lines []grid.Line, w io.Writer) error {
	if lines == nil {
		lines = []grid.Line{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(lines); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// YAML writes lines as a YAML sequence with the same shape as JSON.
func YAML(lines []grid.Line, w io.Writer) error {
	if lines == nil {
		lines = []grid.Line{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(lines); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return nil
}

// Markdown writes records as a GitHub-flavored Markdown table. Columns,
// labels and cell text follow the same rules as the box grid; renderers and
// frame characters do not apply. Nothing is written when there are no
// columns.
func Markdown(records []grid.Record, cfg grid.Config, w io.Writer) error {
	columns := grid.CollectColumns(records)
	if len(columns) == 0 {
		return nil
	}

	headers := make([]string, len(columns))
	for i, key := range columns {
		headers[i] = escapeCell(grid.Text(cfg.Label(key)).String())
	}

	ew := &errWriter{w: w}
	table := tablewriter.NewWriter(ew)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, r := range records {
		row := make([]string, len(columns))
		for i, key := range columns {
			if v, ok := r.Get(key); ok {
				row[i] = escapeCell(v.String())
			}
		}
		table.Append(row)
	}
	table.Render()
	if ew.err != nil {
		return fmt.Errorf("write markdown: %w", ew.err)
	}
	return nil
}

// escapeCell keeps a literal pipe from splitting the cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// errWriter remembers the first write error; tablewriter drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
