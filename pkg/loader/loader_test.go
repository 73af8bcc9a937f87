package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/boxgrid/pkg/grid"
)

// cell returns the text form of key in r, or "<absent>".
func cell(r grid.Record, key string) string {
	v, ok := r.Get(key)
	if !ok {
		return "<absent>"
	}
	return v.String()
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Format
	}{
		{"json object", `{"a": 1}`, FormatJSON},
		{"json array", `[{"a": 1}]`, FormatJSON},
		{"pretty json array", "[\n  {\"a\": 1},\n  {\"a\": 2}\n]", FormatJSON},
		{"ndjson", "{\"a\": 1}\n{\"a\": 2}", FormatNDJSON},
		{"yaml", "a: 1\nb: 2", FormatYAML},
		{"yaml list", "- a: 1\n- a: 2", FormatYAML},
		{"toml", "[[rows]]\na = 1", FormatTOML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.input))
		})
	}
}

func TestLoadJSON(t *testing.T) {
	t.Run("array keeps key order per record", func(t *testing.T) {
		records, err := LoadRecords([]byte(`[{"name": "Foo", "age": 12}, {"zeta": true, "name": "Bar"}]`))
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, []string{"name", "age"}, records[0].Keys())
		assert.Equal(t, []string{"zeta", "name"}, records[1].Keys())
		assert.Equal(t, "12", cell(records[0], "age"))
		assert.Equal(t, "true", cell(records[1], "zeta"))
	})

	t.Run("single object is one record", func(t *testing.T) {
		records, err := LoadRecords([]byte(`{"b": 1.5, "a": "x"}`))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, []string{"b", "a"}, records[0].Keys())
		assert.Equal(t, "1.5", cell(records[0], "b"))
	})

	t.Run("null keeps the key but reads as absent", func(t *testing.T) {
		records, err := LoadRecords([]byte(`[{"a": null, "b": 2}]`))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, records[0].Keys())
		assert.Equal(t, "<absent>", cell(records[0], "a"))
	})

	t.Run("nested values become ordered compact JSON", func(t *testing.T) {
		records, err := LoadRecords([]byte(`[{"tags": ["x", 1, null], "meta": {"z": 1, "a": "q\""}}]`))
		require.NoError(t, err)
		assert.Equal(t, `["x",1,null]`, cell(records[0], "tags"))
		assert.Equal(t, `{"z":1,"a":"q\""}`, cell(records[0], "meta"))
	})

	t.Run("empty array", func(t *testing.T) {
		records, err := LoadRecords([]byte(`[]`))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("scalar items are rejected", func(t *testing.T) {
		_, err := LoadRecords([]byte(`[{"a": 1}, 2]`))
		require.ErrorIs(t, err, ErrNotRecord)
		assert.Contains(t, err.Error(), "item 1")
	})

	t.Run("top level scalar is rejected", func(t *testing.T) {
		_, err := LoadRecords([]byte(`"just text"`))
		require.ErrorIs(t, err, ErrNotRecord)
	})
}

func TestLoadYAML(t *testing.T) {
	t.Run("sequence of mappings", func(t *testing.T) {
		input := `
- name: Foo
  age: 12
- name: Bar
  city: Oslo
`
		records, err := LoadRecords([]byte(input))
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, []string{"name", "city"}, records[1].Keys())
		assert.Equal(t, "Oslo", cell(records[1], "city"))
	})

	t.Run("multi document", func(t *testing.T) {
		input := "name: Foo\n---\nname: Bar\nage: 15\n"
		records, err := LoadRecords([]byte(input))
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Bar", cell(records[1], "name"))
		assert.Equal(t, "15", cell(records[1], "age"))
	})

	t.Run("anchors and aliases", func(t *testing.T) {
		input := "- &base {name: Foo}\n- *base\n"
		records, err := LoadRecords([]byte(input))
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Foo", cell(records[1], "name"))
	})

	t.Run("quoted numbers stay text", func(t *testing.T) {
		records, err := LoadRecords([]byte(`- {zip: "0042", n: 42}`))
		require.NoError(t, err)
		assert.Equal(t, "0042", cell(records[0], "zip"))
		assert.Equal(t, "42", cell(records[0], "n"))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := LoadRecords([]byte("a: [1, 2"))
		require.Error(t, err)
	})
}

func TestLoadNDJSON(t *testing.T) {
	input := "{\"name\": \"Foo\"}\n\n{\"name\": \"Bar\", \"age\": 15}\r\n"
	records, err := LoadRecords([]byte(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"name", "age"}, records[1].Keys())

	_, err = LoadRecords([]byte("{\"a\": 1}\n[1, 2]"))
	require.ErrorIs(t, err, ErrNotRecord)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadTOML(t *testing.T) {
	t.Run("array of tables", func(t *testing.T) {
		input := `
[[rows]]
name = "Foo"
age = 12

[[rows]]
zeta = 1.5
name = "Bar"
`
		records, err := LoadRecords([]byte(input))
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, []string{"name", "age"}, records[0].Keys())
		assert.Equal(t, []string{"zeta", "name"}, records[1].Keys())
		assert.Equal(t, "12", cell(records[0], "age"))
		assert.Equal(t, "1.5", cell(records[1], "zeta"))
	})

	t.Run("plain document is one record", func(t *testing.T) {
		input := "title = \"x\"\nenabled = true\ncount = 3\n"
		records, err := LoadRecords([]byte(input))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, []string{"title", "enabled", "count"}, records[0].Keys())
		assert.Equal(t, "true", cell(records[0], "enabled"))
	})

	t.Run("invalid toml", func(t *testing.T) {
		_, err := LoadRecords([]byte("[[rows]]\nname = \n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid TOML")
	})
}

func TestLoadRecordsEmpty(t *testing.T) {
	_, err := LoadRecords([]byte("  \n\t"))
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestLoadReader(t *testing.T) {
	records, err := LoadReader(strings.NewReader(`[{"a": 1}]`))
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- name: Foo\n"), 0o600))

	records, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("- 1\n"), 0o600))
	_, err = LoadFile(bad)
	require.ErrorIs(t, err, ErrNotRecord)
	assert.Contains(t, err.Error(), "bad.yaml")

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestIsLikelyTOML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name: "TOML with section header",
			input: `[server]
host = "localhost"`,
			want: true,
		},
		{
			name: "TOML with array of tables",
			input: `[[items]]
name = "item1"`,
			want: true,
		},
		{
			name: "key-value assignments",
			input: `name = "test"
value = 42
enabled = true`,
			want: true,
		},
		{
			name: "YAML syntax",
			input: `name: test
value: 42`,
			want: false,
		},
		{
			name:  "JSON object",
			input: `{"name": "test"}`,
			want:  false,
		},
		{
			name: "YAML list",
			input: `- item1
- item2`,
			want: false,
		},
		{
			name: "quoted key assignment",
			input: `"table name" = "value"
"another-key" = 42`,
			want: true,
		},
		{
			name: "dotted key assignment",
			input: `database.host = "localhost"
database.port = 5432`,
			want: true,
		},
		{
			name: "quoted section header",
			input: `["table name"]
key = "value"`,
			want: true,
		},
		{
			name: "dotted section header",
			input: `[database.credentials]
username = "admin"`,
			want: true,
		},
		{
			name: "mixed dotted and quoted section",
			input: `[server."host.name"]
value = "test"`,
			want: true,
		},
		{
			name:  "JSON array should not match",
			input: `[1, 2, 3]`,
			want:  false,
		},
		{
			name: "section header alone without key-value lines",
			input: `[server]
some text that is not a kv pair`,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isLikelyTOML(tt.input)
			assert.Equal(t, tt.want, got, "isLikelyTOML(%q)", tt.input)
		})
	}
}

