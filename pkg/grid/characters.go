package grid

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/multierr"
)

// Glyph names one of the twelve roles of the frame character set.
type Glyph int

const (
	GlyphSpace Glyph = iota
	GlyphLine
	GlyphVertical
	GlyphCross
	GlyphTopLeft
	GlyphTopRight
	GlyphBottomLeft
	GlyphBottomRight
	GlyphTopJunction
	GlyphBottomJunction
	GlyphLeftJunction
	GlyphRightJunction

	glyphCount
)

var glyphNames = [glyphCount]string{
	GlyphSpace:          "space",
	GlyphLine:           "line",
	GlyphVertical:       "vertical",
	GlyphCross:          "cross",
	GlyphTopLeft:        "top-left",
	GlyphTopRight:       "top-right",
	GlyphBottomLeft:     "bottom-left",
	GlyphBottomRight:    "bottom-right",
	GlyphTopJunction:    "top",
	GlyphBottomJunction: "bottom",
	GlyphLeftJunction:   "left",
	GlyphRightJunction:  "right",
}

// String returns the configuration name of the glyph role.
func (g Glyph) String() string {
	if g < 0 || g >= glyphCount {
		return fmt.Sprintf("glyph(%d)", int(g))
	}
	return glyphNames[g]
}

// Glyphs returns all twelve roles in canonical order.
func Glyphs() []Glyph {
	out := make([]Glyph, glyphCount)
	for i := range out {
		out[i] = Glyph(i)
	}
	return out
}

// Characters binds every glyph role to the string drawn for it.
type Characters [glyphCount]string

// DefaultCharacters returns the single-line Unicode box-drawing set.
func DefaultCharacters() Characters {
	return Characters{
		GlyphSpace:          " ",
		GlyphLine:           "─",
		GlyphVertical:       "│",
		GlyphCross:          "┼",
		GlyphTopLeft:        "┌",
		GlyphTopRight:       "┐",
		GlyphBottomLeft:     "└",
		GlyphBottomRight:    "┘",
		GlyphTopJunction:    "┬",
		GlyphBottomJunction: "┴",
		GlyphLeftJunction:   "├",
		GlyphRightJunction:  "┤",
	}
}

// IsZero reports whether no role is bound.
func (c Characters) IsZero() bool { return c == Characters{} }

// Get returns the string bound to g.
func (c Characters) Get(g Glyph) string {
	if g < 0 || g >= glyphCount {
		return ""
	}
	return c[g]
}

// ParseGlyph resolves a role by configuration name ("top-left") or by the
// default glyph drawn for it ("┌").
func ParseGlyph(name string) (Glyph, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range glyphNames {
		if n == key {
			return Glyph(i), nil
		}
	}
	// The space role is only addressable by name; " " would be trimmed away.
	defaults := DefaultCharacters()
	for i := GlyphLine; i < glyphCount; i++ {
		if defaults[i] == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCharacterRole, name)
}

// With returns a copy of c with the given roles replaced. Keys are resolved
// with ParseGlyph. The result is not validated.
func (c Characters) With(overrides map[string]string) (Characters, error) {
	out := c
	var errs error
	for _, name := range sortedKeys(overrides) {
		g, err := ParseGlyph(name)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out[g] = overrides[name]
	}
	return out, errs
}

// CharactersFromMap builds a complete set from a role map. Every role must be
// present.
func CharactersFromMap(m map[string]string) (Characters, error) {
	var out Characters
	seen := make(map[Glyph]bool, len(m))
	var errs error
	for _, name := range sortedKeys(m) {
		g, err := ParseGlyph(name)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out[g] = m[name]
		seen[g] = true
	}
	for _, g := range Glyphs() {
		if !seen[g] {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s", ErrMissingCharacter, g))
		}
	}
	if errs != nil {
		return Characters{}, errs
	}
	return out, out.Validate()
}

// Validate checks that every role is bound to exactly one display column.
func (c Characters) Validate() error {
	var errs error
	for _, g := range Glyphs() {
		s := c[g]
		if s == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s", ErrMissingCharacter, g))
			continue
		}
		if w := displayWidth(s); w != 1 {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s is %q (width %d)", ErrInvalidCharacter, g, s, w))
		}
	}
	return errs
}

// Map returns the set keyed by role name.
func (c Characters) Map() map[string]string {
	m := make(map[string]string, glyphCount)
	for _, g := range Glyphs() {
		m[g.String()] = c[g]
	}
	return m
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
