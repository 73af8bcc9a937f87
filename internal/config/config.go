package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/boxgrid/pkg/grid"
)

var (
	// ErrUnknownCharset is returned when a table names a charset that is not
	// defined.
	ErrUnknownCharset = errors.New("unknown charset")

	// ErrUnknownTheme is returned when a table names a theme that is not
	// defined.
	ErrUnknownTheme = errors.New("unknown theme")
)

// Load returns the embedded defaults with the file at path merged over them.
// An empty path returns the defaults.
func Load(path string) (File, error) {
	cfg, err := Default()
	if err != nil {
		return File{}, err
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config: %w", err)
	}
	user, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg = Merge(cfg, user)
	if err := cfg.Validate(); err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a configuration file. Unknown fields are rejected so typos
// surface instead of being ignored.
func Parse(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("decode config: %w", err)
	}
	return f, nil
}

// Merge returns base with over applied. Scalars set in over replace base;
// maps are merged key by key. Neither argument is modified.
func Merge(base, over File) File {
	out := File{
		Table: Table{
			Padding:    base.Table.Padding,
			Charset:    base.Table.Charset,
			Theme:      base.Table.Theme,
			Headers:    mergeStrings(base.Table.Headers, over.Table.Headers),
			Characters: mergeStrings(base.Table.Characters, over.Table.Characters),
		},
		Charsets: make(map[string]map[string]string, len(base.Charsets)+len(over.Charsets)),
		Themes:   make(map[string]Theme, len(base.Themes)+len(over.Themes)),
	}
	if over.Table.Padding != nil {
		p := *over.Table.Padding
		out.Table.Padding = &p
	} else if base.Table.Padding != nil {
		p := *base.Table.Padding
		out.Table.Padding = &p
	}
	if over.Table.Charset != "" {
		out.Table.Charset = over.Table.Charset
	}
	if over.Table.Theme != "" {
		out.Table.Theme = over.Table.Theme
	}

	// A charset is replaced whole: partial charsets are rejected by Validate.
	for _, src := range []map[string]map[string]string{base.Charsets, over.Charsets} {
		for name, set := range src {
			out.Charsets[name] = mergeStrings(nil, set)
		}
	}
	for _, src := range []map[string]Theme{base.Themes, over.Themes} {
		for name, theme := range src {
			out.Themes[name] = theme
		}
	}
	return out
}

func mergeStrings(base, over map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// Validate checks every defined charset and the table's selections. All
// problems are reported together.
func (f File) Validate() error {
	var errs error
	for _, name := range sortedNames(f.Charsets) {
		if _, err := grid.CharactersFromMap(f.Charsets[name]); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("charset %q: %w", name, err))
		}
	}
	if f.Table.Padding != nil && *f.Table.Padding < 0 {
		errs = multierr.Append(errs, fmt.Errorf("table: %w", grid.ErrNegativePadding))
	}
	if f.Table.Charset != "" {
		if _, ok := f.Charsets[f.Table.Charset]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("table: %w %q", ErrUnknownCharset, f.Table.Charset))
		}
	}
	if f.Table.Theme != "" {
		if _, ok := f.Themes[f.Table.Theme]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("table: %w %q", ErrUnknownTheme, f.Table.Theme))
		}
	}
	return errs
}

// Characters resolves the named charset and applies the table's partial
// character overrides on top. An empty name selects the table's charset.
func (f File) Characters(name string) (grid.Characters, error) {
	if name == "" {
		name = f.Table.Charset
	}
	set, ok := f.Charsets[name]
	if !ok {
		return grid.Characters{}, fmt.Errorf("%w %q (available: %v)", ErrUnknownCharset, name, sortedNames(f.Charsets))
	}
	chars, err := grid.CharactersFromMap(set)
	if err != nil {
		return grid.Characters{}, fmt.Errorf("charset %q: %w", name, err)
	}
	if len(f.Table.Characters) == 0 {
		return chars, nil
	}
	chars, err = chars.With(f.Table.Characters)
	if err == nil {
		err = chars.Validate()
	}
	if err != nil {
		return grid.Characters{}, fmt.Errorf("table characters: %w", err)
	}
	return chars, nil
}

// Theme returns the named theme. An empty name selects the table's theme.
func (f File) Theme(name string) (Theme, error) {
	if name == "" {
		name = f.Table.Theme
	}
	theme, ok := f.Themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w %q (available: %v)", ErrUnknownTheme, name, sortedNames(f.Themes))
	}
	return theme, nil
}

// PaddingOr returns the configured padding, or def when unset.
func (f File) PaddingOr(def int) int {
	if f.Table.Padding == nil {
		return def
	}
	return *f.Table.Padding
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
