package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/oakwood-commons/boxgrid/internal/config"
	"github.com/oakwood-commons/boxgrid/internal/style"
	"github.com/oakwood-commons/boxgrid/pkg/grid"
	"github.com/oakwood-commons/boxgrid/pkg/settings"
)

// tableOptions are the table settings given on the command line. Zero values
// defer to the config file.
type tableOptions struct {
	padding    *int
	charset    string
	theme      string
	headers    map[string]string
	characters map[string]string
	noColor    bool
}

// buildGridConfig layers command line options over the merged config file.
func buildGridConfig(file config.File, opts tableOptions) (grid.Config, error) {
	cfg := grid.DefaultConfig()

	cfg.Padding = file.PaddingOr(grid.DefaultPadding)
	if opts.padding != nil {
		cfg.Padding = *opts.padding
	}

	cfg.Headers = make(map[string]string, len(file.Table.Headers)+len(opts.headers))
	for k, v := range file.Table.Headers {
		cfg.Headers[k] = v
	}
	for k, v := range opts.headers {
		cfg.Headers[k] = v
	}

	chars, err := file.Characters(opts.charset)
	if err != nil {
		return grid.Config{}, err
	}
	if len(opts.characters) > 0 {
		chars, err = chars.With(opts.characters)
		if err != nil {
			return grid.Config{}, fmt.Errorf("--char: %w", err)
		}
	}
	cfg.Characters = chars

	theme, err := file.Theme(opts.theme)
	if err != nil {
		return grid.Config{}, err
	}
	style.FromTheme(theme, opts.noColor).Apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return grid.Config{}, err
	}
	return cfg, nil
}

// resolveConfigPath returns the explicit path if set, otherwise the XDG path
// ($XDG_CONFIG_HOME/boxgrid/config.yaml) or ~/.config/boxgrid/config.yaml if
// present.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	xdg := os.Getenv("XDG_CONFIG_HOME")
	candidate := ""
	if xdg != "" {
		candidate = filepath.Join(xdg, settings.CliBinaryName, "config.yaml")
	} else if home, err := os.UserHomeDir(); err == nil {
		candidate = filepath.Join(home, ".config", settings.CliBinaryName, "config.yaml")
	}
	if candidate != "" {
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
	}
	return ""
}
