// Package config holds the boxgrid configuration file schema, the embedded
// defaults and the merge of a user file over them.
package config

// File is the on-disk configuration.
type File struct {
	Table    Table                        `yaml:"table"`
	Charsets map[string]map[string]string `yaml:"charsets,omitempty"`
	Themes   map[string]Theme             `yaml:"themes,omitempty"`
}

// Table holds the settings applied to every render.
type Table struct {
	// Padding is nil when the file does not set it.
	Padding    *int              `yaml:"padding,omitempty"`
	Charset    string            `yaml:"charset,omitempty"`
	Theme      string            `yaml:"theme,omitempty"`
	Headers    map[string]string `yaml:"headers,omitempty"`
	Characters map[string]string `yaml:"characters,omitempty"`
}

// Theme styles the three kinds of text in a table.
type Theme struct {
	Header   Style `yaml:"header"`
	Cell     Style `yaml:"cell"`
	Skeleton Style `yaml:"skeleton"`
}

// Style is a terminal text style. Colors are ANSI indexes ("12") or hex
// values ("#5f87ff"); empty means the terminal default.
type Style struct {
	FG        string `yaml:"fg,omitempty"`
	BG        string `yaml:"bg,omitempty"`
	Bold      bool   `yaml:"bold,omitempty"`
	Italic    bool   `yaml:"italic,omitempty"`
	Underline bool   `yaml:"underline,omitempty"`
}

// IsZero reports whether s changes nothing.
func (s Style) IsZero() bool {
	return s == Style{}
}
