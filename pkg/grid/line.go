package grid

import (
	"fmt"
	"strings"
)

// Role selects the glyphs and renderer used for one line.
type Role int

const (
	RoleTop Role = iota
	RoleHeader
	RoleSeparator
	RoleData
	RoleBottom
)

func (r Role) String() string {
	switch r {
	case RoleTop:
		return "top"
	case RoleHeader:
		return "header"
	case RoleSeparator:
		return "separator"
	case RoleData:
		return "data"
	case RoleBottom:
		return "bottom"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// MarshalText encodes the role by name.
func (r Role) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

type roleFrame struct {
	left, fill, divider, right Glyph
	content                    func(Config) Renderer
}

var frames = map[Role]roleFrame{
	RoleTop:       {GlyphTopLeft, GlyphLine, GlyphTopJunction, GlyphTopRight, skeletonOf},
	RoleHeader:    {GlyphVertical, GlyphSpace, GlyphVertical, GlyphVertical, func(c Config) Renderer { return c.renderer(c.Header) }},
	RoleSeparator: {GlyphLeftJunction, GlyphLine, GlyphCross, GlyphRightJunction, skeletonOf},
	RoleData:      {GlyphVertical, GlyphSpace, GlyphVertical, GlyphVertical, func(c Config) Renderer { return c.renderer(c.Cell) }},
	RoleBottom:    {GlyphBottomLeft, GlyphLine, GlyphBottomJunction, GlyphBottomRight, skeletonOf},
}

func skeletonOf(c Config) Renderer { return c.renderer(c.Skeleton) }

// SegmentKind tells border glyphs apart from column content.
type SegmentKind int

const (
	SegmentBorder SegmentKind = iota
	SegmentContent
)

func (k SegmentKind) String() string {
	if k == SegmentContent {
		return "content"
	}
	return "border"
}

// MarshalText encodes the kind by name.
func (k SegmentKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Segment is one rendered piece of a line.
type Segment struct {
	Kind SegmentKind `json:"kind" yaml:"kind"`
	// Column is the key of a content segment; empty for borders.
	Column string `json:"column,omitempty" yaml:"column,omitempty"`
	// Text is the renderer output, possibly carrying ANSI escapes.
	Text string `json:"text" yaml:"text"`
	// Width is the printed width of Text.
	Width int `json:"width" yaml:"width"`
}

// Line is one row of the grid.
type Line struct {
	Role     Role      `json:"role" yaml:"role"`
	Segments []Segment `json:"segments" yaml:"segments"`
}

// String concatenates the rendered segments.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l.Segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Width returns the printed width of the line.
func (l Line) Width() int {
	total := 0
	for _, s := range l.Segments {
		total += s.Width
	}
	return total
}

// BuildLine renders one line of the given role. Values are taken from row;
// columns row lacks are drawn as a run of the role's fill glyph. It fails
// only when a renderer breaks the width contract.
func BuildLine(role Role, row Record, columns []string, widths Widths, cfg Config) (Line, error) {
	frame, ok := frames[role]
	if !ok {
		return Line{}, fmt.Errorf("unknown row role %d", int(role))
	}
	if cfg.Padding < 0 {
		return Line{}, fmt.Errorf("%w: got %d", ErrNegativePadding, cfg.Padding)
	}
	chars := cfg.characters()
	skeleton := skeletonOf(cfg)
	content := frame.content(cfg)
	fill := chars.Get(frame.fill)
	pad := strings.Repeat(fill, cfg.Padding)

	line := Line{Role: role, Segments: make([]Segment, 0, 2*len(columns)+1)}

	border := func(g Glyph) error {
		seg, err := render(skeleton, role, "", chars.Get(g), 1)
		if err != nil {
			return err
		}
		line.Segments = append(line.Segments, seg)
		return nil
	}

	if err := border(frame.left); err != nil {
		return Line{}, err
	}
	for i, key := range columns {
		w := widths[key]
		var inner string
		if v, ok := row.Get(key); ok {
			inner = padRight(v.String(), w)
		} else {
			inner = strings.Repeat(fill, w)
		}
		seg, err := render(content, role, key, pad+inner+pad, w+2*cfg.Padding)
		if err != nil {
			return Line{}, err
		}
		seg.Kind = SegmentContent
		line.Segments = append(line.Segments, seg)
		if i < len(columns)-1 {
			if err := border(frame.divider); err != nil {
				return Line{}, err
			}
		}
	}
	if err := border(frame.right); err != nil {
		return Line{}, err
	}
	return line, nil
}

func render(r Renderer, role Role, column, text string, width int) (Segment, error) {
	out := r(text, width)
	if got := DisplayWidth(out); got != width {
		where := role.String()
		if column != "" {
			where += " column " + column
		}
		return Segment{}, fmt.Errorf("%w: %s: want %d, got %d", ErrRendererWidth, where, width, got)
	}
	return Segment{Kind: SegmentBorder, Column: column, Text: out, Width: width}, nil
}
