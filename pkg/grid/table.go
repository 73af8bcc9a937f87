package grid

import (
	"fmt"
	"strings"
)

// Table is the layout derived for one render pass.
type Table struct {
	Columns []string
	Widths  Widths
	Lines   []Line
}

// Width returns the printed width shared by every line of the table.
func (t Table) Width(padding int) int {
	return t.Widths.Total(t.Columns, padding)
}

// Layout validates cfg, derives the columns and widths of records and builds
// every line: top, header, separator, then the data rows separated from each
// other, then bottom. No lines are returned on error.
func Layout(records []Record, cfg Config) (Table, error) {
	if err := cfg.Validate(); err != nil {
		return Table{}, fmt.Errorf("invalid table config: %w", err)
	}

	columns := CollectColumns(records)
	widths := ComputeWidths(records, columns, cfg.Headers)

	header := Record{}
	for _, key := range columns {
		header.Set(key, Text(cfg.Label(key)))
	}

	lines := make([]Line, 0, 2*len(records)+4)
	emit := func(role Role, row Record) error {
		l, err := BuildLine(role, row, columns, widths, cfg)
		if err != nil {
			return err
		}
		lines = append(lines, l)
		return nil
	}

	if err := emit(RoleTop, Record{}); err != nil {
		return Table{}, err
	}
	if err := emit(RoleHeader, header); err != nil {
		return Table{}, err
	}
	if err := emit(RoleSeparator, Record{}); err != nil {
		return Table{}, err
	}
	for i, r := range records {
		if i > 0 {
			if err := emit(RoleSeparator, Record{}); err != nil {
				return Table{}, err
			}
		}
		if err := emit(RoleData, r); err != nil {
			return Table{}, err
		}
	}
	if err := emit(RoleBottom, Record{}); err != nil {
		return Table{}, err
	}

	return Table{Columns: columns, Widths: widths, Lines: lines}, nil
}

// Render returns the lines of the grid for records.
func Render(records []Record, cfg Config) ([]Line, error) {
	t, err := Layout(records, cfg)
	if err != nil {
		return nil, err
	}
	return t.Lines, nil
}

// RenderString renders records and joins the lines, each terminated by a
// newline.
func RenderString(records []Record, cfg Config) (string, error) {
	lines, err := Render(records, cfg)
	if err != nil {
		return "", err
	}
	return JoinLines(lines), nil
}

// JoinLines concatenates lines, terminating each with a newline.
func JoinLines(lines []Line) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
	return b.String()
}
