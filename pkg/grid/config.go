package grid

import (
	"fmt"

	"go.uber.org/multierr"
)

// DefaultPadding is the number of fill glyphs on each side of a cell.
const DefaultPadding = 1

// Renderer decorates a segment of fixed printed width. It must return text
// whose printed width (ignoring ANSI escapes) equals width.
type Renderer func(text string, width int) string

// Plain is the pass-through renderer.
func Plain(text string, _ int) string { return text }

// Config controls a render pass. Treat it as read-only while rendering.
type Config struct {
	// Headers overrides the header label per column key. Missing or empty
	// entries fall back to the key itself.
	Headers map[string]string

	// Padding is the count of fill glyphs flanking every cell's inner text.
	Padding int

	// Characters is the frame character set. A wholly empty set means
	// DefaultCharacters.
	Characters Characters

	// Header, Cell and Skeleton render header content, data content and
	// border glyphs respectively. Nil means Plain.
	Header   Renderer
	Cell     Renderer
	Skeleton Renderer
}

// DefaultConfig returns padding 1, the single-line character set and
// pass-through renderers.
func DefaultConfig() Config {
	return Config{
		Padding:    DefaultPadding,
		Characters: DefaultCharacters(),
	}
}

// Validate reports configuration errors. Render calls it before producing any
// line.
func (c Config) Validate() error {
	var errs error
	if c.Padding < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: got %d", ErrNegativePadding, c.Padding))
	}
	if err := c.characters().Validate(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("characters: %w", err))
	}
	return errs
}

// Label returns the header label shown for key.
func (c Config) Label(key string) string {
	if l, ok := c.Headers[key]; ok && l != "" {
		return l
	}
	return key
}

func (c Config) renderer(r Renderer) Renderer {
	if r == nil {
		return Plain
	}
	return r
}

func (c Config) characters() Characters {
	if c.Characters.IsZero() {
		return DefaultCharacters()
	}
	return c.Characters
}
