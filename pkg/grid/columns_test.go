package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectColumns(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		want    []string
	}{
		{name: "empty input", records: nil, want: []string{}},
		{name: "single record keeps its order", records: []Record{rec("z", 1, "a", 2, "m", 3)}, want: []string{"z", "a", "m"}},
		{
			name:    "first appearance across records",
			records: []Record{rec("name", "Foo"), rec("age", 15, "name", "Bar"), rec("city", "Oslo", "age", 1)},
			want:    []string{"name", "age", "city"},
		},
		{name: "null keys count", records: []Record{rec("a", nil), rec("b", 1)}, want: []string{"a", "b"}},
		{name: "empty records", records: []Record{{}, {}}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollectColumns(tt.records))
		})
	}
}

func TestComputeWidths(t *testing.T) {
	t.Run("label wins over short values", func(t *testing.T) {
		records := []Record{rec("name", "Foo"), rec("name", "Bar", "age", 15)}
		got := ComputeWidths(records, CollectColumns(records), nil)
		assert.Equal(t, Widths{"name": 4, "age": 3}, got)
	})

	t.Run("values win over short labels", func(t *testing.T) {
		records := []Record{rec("id", 123456), rec("id", "x")}
		got := ComputeWidths(records, []string{"id"}, nil)
		assert.Equal(t, 6, got["id"])
	})

	t.Run("labels override key width", func(t *testing.T) {
		records := []Record{rec("n", "ab")}
		got := ComputeWidths(records, []string{"n"}, map[string]string{"n": "Number of things"})
		assert.Equal(t, 16, got["n"])
	})

	t.Run("wide runes count as two columns", func(t *testing.T) {
		records := []Record{rec("k", "日本語")}
		got := ComputeWidths(records, []string{"k"}, nil)
		assert.Equal(t, 6, got["k"])
	})

	t.Run("escaped newlines widen the cell", func(t *testing.T) {
		records := []Record{rec("k", "a\nb")}
		got := ComputeWidths(records, []string{"k"}, nil)
		assert.Equal(t, 4, got["k"])
	})
}

func TestWidthsTotal(t *testing.T) {
	w := Widths{"name": 4, "age": 3}
	assert.Equal(t, 2, w.Total(nil, 1))
	assert.Equal(t, 8, w.Total([]string{"name"}, 1))
	assert.Equal(t, 14, w.Total([]string{"name", "age"}, 1))
	assert.Equal(t, 22, w.Total([]string{"name", "age"}, 3))
	assert.Equal(t, 10, w.Total([]string{"name", "age"}, 0))
}
