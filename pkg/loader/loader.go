// Package loader decodes structured text into ordered grid records.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/boxgrid/pkg/grid"
)

// Format identifies the syntax of an input.
type Format string

const (
	FormatJSON   Format = "json"
	FormatNDJSON Format = "ndjson"
	FormatYAML   Format = "yaml"
	FormatTOML   Format = "toml"
)

// ErrEmptyInput is returned for input that is empty or only whitespace.
var ErrEmptyInput = errors.New("empty input")

// ErrNotRecord is returned when an item that should be a record is not a
// mapping.
var ErrNotRecord = errors.New("not a record")

// DetectFormat guesses the syntax of input. NDJSON needs several lines most
// of which start with '{' or '['; TOML is recognized by section headers or
// "key = value" lines. Everything else is read as YAML, which also covers
// single JSON documents.
func DetectFormat(input string) Format {
	input = strings.TrimSpace(input)
	lines := strings.Split(input, "\n")
	if len(lines) > 1 && isLikelyNDJSON(lines) {
		return FormatNDJSON
	}
	if isLikelyTOML(input) {
		return FormatTOML
	}
	if strings.HasPrefix(input, "{") || strings.HasPrefix(input, "[") {
		return FormatJSON
	}
	return FormatYAML
}

// LoadRecords decodes input into records, preserving every record's key
// order.
//
// A top-level sequence yields one record per item, a top-level mapping is a
// single record, and each document of a multi-document YAML stream is read
// the same way. For TOML the first top-level array of tables is the record
// list; without one the whole document is a single record.
func LoadRecords(input []byte) ([]grid.Record, error) {
	text := strings.TrimSpace(string(input))
	if text == "" {
		return nil, ErrEmptyInput
	}

	switch DetectFormat(text) {
	case FormatNDJSON:
		return loadNDJSON(text)
	case FormatTOML:
		return loadTOML(text)
	case FormatJSON:
		records, err := loadYAMLStream(text)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return records, nil
	default:
		records, err := loadYAMLStream(text)
		if err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		return records, nil
	}
}

// LoadReader reads r to the end and decodes it with LoadRecords.
func LoadReader(r io.Reader) ([]grid.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return LoadRecords(data)
}

// LoadFile reads path and decodes it with LoadRecords.
func LoadFile(path string) ([]grid.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	records, err := LoadRecords(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// loadYAMLStream decodes every document of a YAML (or JSON) stream.
func loadYAMLStream(input string) ([]grid.Record, error) {
	dec := yaml.NewDecoder(strings.NewReader(input))
	var records []grid.Record
	for doc := 0; ; doc++ {
		var node yaml.Node
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		recs, err := recordsFromNode(&node)
		if err != nil {
			if doc > 0 {
				return nil, fmt.Errorf("document %d: %w", doc+1, err)
			}
			return nil, err
		}
		records = append(records, recs...)
	}
	if records == nil {
		records = []grid.Record{}
	}
	return records, nil
}

// loadNDJSON decodes one record per non-empty line.
func loadNDJSON(input string) ([]grid.Record, error) {
	lines := strings.Split(input, "\n")
	records := make([]grid.Record, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var node yaml.Node
		if err := yaml.Unmarshal([]byte(line), &node); err != nil {
			return nil, fmt.Errorf("invalid NDJSON at line %d: %w", i+1, err)
		}
		recs, err := recordsFromNode(&node)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		records = append(records, recs...)
	}
	return records, nil
}

// recordsFromNode turns one decoded document into records.
func recordsFromNode(n *yaml.Node) ([]grid.Record, error) {
	n = resolve(n)
	if n == nil {
		return nil, nil
	}
	switch n.Kind {
	case yaml.MappingNode:
		return []grid.Record{recordFromMapping(n)}, nil
	case yaml.SequenceNode:
		records := make([]grid.Record, 0, len(n.Content))
		for i, item := range n.Content {
			item = resolve(item)
			if item == nil || item.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("%w: item %d is %s", ErrNotRecord, i, describe(item))
			}
			records = append(records, recordFromMapping(item))
		}
		return records, nil
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("%w: top level is %s", ErrNotRecord, describe(n))
}

// resolve unwraps document and alias nodes.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

func recordFromMapping(n *yaml.Node) grid.Record {
	var r grid.Record
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := resolve(n.Content[i])
		if key == nil {
			continue
		}
		r.Set(key.Value, valueFromNode(n.Content[i+1]))
	}
	return r
}

func valueFromNode(n *yaml.Node) grid.Value {
	n = resolve(n)
	if n == nil {
		return grid.Null()
	}
	if n.Kind != yaml.ScalarNode {
		var b strings.Builder
		writeJSON(&b, n)
		return grid.Text(b.String())
	}
	switch n.Tag {
	case "!!null":
		return grid.Null()
	case "!!bool":
		var v bool
		if err := n.Decode(&v); err == nil {
			return grid.Bool(v)
		}
	case "!!int":
		var v int64
		if err := n.Decode(&v); err == nil {
			return grid.Int(v)
		}
	case "!!float":
		var v float64
		if err := n.Decode(&v); err == nil {
			return grid.Float(v)
		}
	}
	return grid.Text(n.Value)
}

// writeJSON writes n as compact JSON, keeping mapping key order so nested
// values read the way they were written.
func writeJSON(b *strings.Builder, n *yaml.Node) {
	n = resolve(n)
	if n == nil {
		b.WriteString("null")
		return
	}
	switch n.Kind {
	case yaml.MappingNode:
		b.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				b.WriteByte(',')
			}
			key := resolve(n.Content[i])
			if key == nil {
				b.WriteString(`""`)
			} else {
				b.WriteString(quoteJSON(key.Value))
			}
			b.WriteByte(':')
			writeJSON(b, n.Content[i+1])
		}
		b.WriteByte('}')
	case yaml.SequenceNode:
		b.WriteByte('[')
		for i, item := range n.Content {
			if i > 0 {
				b.WriteByte(',')
			}
			writeJSON(b, item)
		}
		b.WriteByte(']')
	default:
		switch v := valueFromNode(n); {
		case v.IsNull():
			b.WriteString("null")
		case n.Tag == "!!bool" || n.Tag == "!!int" || (n.Tag == "!!float" && isFinite(v.String())):
			b.WriteString(v.String())
		default:
			b.WriteString(quoteJSON(n.Value))
		}
	}
}

var numberPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

func isFinite(s string) bool { return numberPattern.MatchString(s) }

func quoteJSON(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

func describe(n *yaml.Node) string {
	if n == nil {
		return "null"
	}
	switch n.Kind {
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.MappingNode:
		return "a mapping"
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return "null"
		}
		return fmt.Sprintf("scalar %q", n.Value)
	default:
		return "unsupported"
	}
}

// isLikelyNDJSON reports whether most non-empty lines start with '{' or '['.
// Requiring a majority keeps YAML lists of bare items from matching.
func isLikelyNDJSON(lines []string) bool {
	jsonCount := 0
	nonEmptyCount := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		nonEmptyCount++
		if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
			jsonCount++
		}
	}
	if nonEmptyCount <= 1 || jsonCount <= nonEmptyCount/2 {
		return false
	}
	// A pretty-printed JSON document spans lines but only its first line
	// opens a bracket; each NDJSON line must close what it opens.
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !strings.HasSuffix(trimmed, "}") && !strings.HasSuffix(trimmed, "]") {
			return false
		}
	}
	return true
}

var (
	tomlSectionPattern  = regexp.MustCompile(`^\s*\[{1,2}(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\]{1,2}\s*$`)
	tomlKeyValuePattern = regexp.MustCompile(`^\s*(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\s*=\s*.+$`)
)

// isLikelyTOML reports whether input has TOML section headers or mostly
// "key = value" lines. Section headers exclude JSON arrays such as [1, 2].
func isLikelyTOML(input string) bool {
	sectionCount := 0
	keyValueCount := 0
	nonEmptyCount := 0
	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		nonEmptyCount++
		if tomlSectionPattern.MatchString(line) {
			sectionCount++
		}
		if tomlKeyValuePattern.MatchString(line) {
			keyValueCount++
		}
	}
	if sectionCount > 0 {
		return true
	}
	return nonEmptyCount > 0 && keyValueCount > nonEmptyCount/2
}
