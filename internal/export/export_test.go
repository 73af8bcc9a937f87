package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/boxgrid/pkg/grid"
)

func sampleRecords() []grid.Record {
	return []grid.Record{
		grid.NewRecord(
			grid.Field{Key: "name", Value: grid.Text("Foo")},
			grid.Field{Key: "age", Value: grid.Int(12)},
		),
		grid.NewRecord(
			grid.Field{Key: "name", Value: grid.Text("a|b")},
		),
	}
}

type dumpedLine struct {
	Role     string `json:"role" yaml:"role"`
	Segments []struct {
		Kind   string `json:"kind" yaml:"kind"`
		Column string `json:"column" yaml:"column"`
		Text   string `json:"text" yaml:"text"`
		Width  int    `json:"width" yaml:"width"`
	} `json:"segments" yaml:"segments"`
}

func TestJSON(t *testing.T) {
	lines, err := grid.Render(sampleRecords(), grid.DefaultConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, JSON(lines, &buf))

	var got []dumpedLine
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, len(lines))
	assert.Equal(t, "top", got[0].Role)
	assert.Equal(t, "header", got[1].Role)
	assert.Equal(t, "bottom", got[len(got)-1].Role)

	header := got[1].Segments
	require.Len(t, header, 5)
	assert.Equal(t, "border", header[0].Kind)
	assert.Equal(t, "content", header[1].Kind)
	assert.Equal(t, "name", header[1].Column)
	assert.Equal(t, " name ", header[1].Text)
	assert.Equal(t, 6, header[1].Width)
}

func TestJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(nil, &buf))
	assert.Equal(t, "[]\n", buf.String())
}

func TestYAML(t *testing.T) {
	lines, err := grid.Render(sampleRecords(), grid.DefaultConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, YAML(lines, &buf))

	var got []dumpedLine
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, len(lines))
	assert.Equal(t, "separator", got[2].Role)
	assert.Equal(t, "data", got[3].Role)
	assert.Equal(t, " Foo  ", got[3].Segments[1].Text)
}

func TestMarkdown(t *testing.T) {
	cfg := grid.DefaultConfig()
	cfg.Headers = map[string]string{"name": "Name"}

	var buf bytes.Buffer
	require.NoError(t, Markdown(sampleRecords(), cfg, &buf))

	got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for i := range got {
		got[i] = strings.TrimRight(got[i], " ")
	}
	want := []string{
		"| Name | age |",
		"|------|-----|",
		"| Foo  | 12  |",
		`| a\|b |     |`,
	}
	assert.Equal(t, want, got)
}

func TestMarkdownNoColumns(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Markdown(nil, grid.DefaultConfig(), &buf))
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteErrors(t *testing.T) {
	lines, err := grid.Render(sampleRecords(), grid.DefaultConfig())
	require.NoError(t, err)

	assert.Error(t, JSON(lines, failingWriter{}))
	assert.Error(t, YAML(lines, failingWriter{}))
	assert.Error(t, Markdown(sampleRecords(), grid.DefaultConfig(), failingWriter{}))
}
