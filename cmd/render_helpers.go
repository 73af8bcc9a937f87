package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/oakwood-commons/boxgrid/internal/export"
	"github.com/oakwood-commons/boxgrid/pkg/grid"
	"github.com/oakwood-commons/boxgrid/pkg/logger"
	"github.com/oakwood-commons/boxgrid/pkg/settings"
)

// writeOutput renders records in format and writes the result to w. Nothing
// is written when rendering fails.
func writeOutput(ctx context.Context, w io.Writer, records []grid.Record, cfg grid.Config, format string) error {
	lgr := logger.FromContext(ctx)

	if format == settings.OutputMarkdown {
		return export.Markdown(records, cfg, w)
	}

	table, err := grid.Layout(records, cfg)
	if err != nil {
		return err
	}
	lgr.V(1).Info("table rendered", logger.ColumnsKey, len(table.Columns), "width", table.Width(cfg.Padding))

	switch format {
	case settings.OutputJSON:
		return export.JSON(table.Lines, w)
	case settings.OutputYAML:
		return export.YAML(table.Lines, w)
	case settings.OutputTable:
		if _, err := io.WriteString(w, grid.JoinLines(table.Lines)); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
