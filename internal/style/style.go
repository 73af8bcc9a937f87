// Package style turns configured themes into grid renderers backed by
// lipgloss.
package style

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/boxgrid/internal/config"
	"github.com/oakwood-commons/boxgrid/pkg/grid"
)

// Renderers holds one renderer per kind of table text.
type Renderers struct {
	Header   grid.Renderer
	Cell     grid.Renderer
	Skeleton grid.Renderer
}

// Apply sets the renderers on cfg.
func (r Renderers) Apply(cfg *grid.Config) {
	cfg.Header = r.Header
	cfg.Cell = r.Cell
	cfg.Skeleton = r.Skeleton
}

// Plain returns renderers that leave text unchanged.
func Plain() Renderers {
	return Renderers{Header: grid.Plain, Cell: grid.Plain, Skeleton: grid.Plain}
}

// FromTheme builds renderers for theme. With noColor set every renderer is
// plain.
func FromTheme(theme config.Theme, noColor bool) Renderers {
	if noColor {
		return Plain()
	}
	return Renderers{
		Header:   Renderer(theme.Header),
		Cell:     Renderer(theme.Cell),
		Skeleton: Renderer(theme.Skeleton),
	}
}

// Renderer returns a renderer applying s. Styles only change color and
// attributes, never layout, so the printed width is kept.
func Renderer(s config.Style) grid.Renderer {
	if s.IsZero() {
		return grid.Plain
	}
	ls := lipglossStyle(s)
	return func(text string, _ int) string {
		if text == "" {
			return text
		}
		return ls.Render(text)
	}
}

func lipglossStyle(s config.Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c := parseColor(s.FG); c != nil {
		st = st.Foreground(c)
	}
	if c := parseColor(s.BG); c != nil {
		st = st.Background(c)
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	return st
}

func parseColor(v string) color.Color {
	if v == "" {
		return nil
	}
	return lipgloss.Color(v)
}
