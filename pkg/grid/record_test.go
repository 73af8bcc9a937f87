package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"text", Text("Foo"), "Foo"},
		{"empty text", Text(""), ""},
		{"int", Int(12), "12"},
		{"negative int", Int(-7), "-7"},
		{"float", Float(1.5), "1.5"},
		{"whole float", Float(3), "3"},
		{"large float", Float(1e21), "1000000000000000000000"},
		{"bool", Bool(true), "true"},
		{"null", Null(), ""},
		{"newline", Text("a\r\nb\rc\nd"), `a\nb\nc\nd`},
		{"tab", Text("a\tb"), `a\tb`},
		{"ansi sequence", Text("\x1b[31mred\x1b[0m"), `\x1b[31mred\x1b[0m`},
		{"escape", Text("a\x1bb"), `a\x1bb`},
		{"backspace and bell", Text("a\bb\x07"), `a\x08b\x07`},
		{"delete", Text("a\x7f"), `a\x7f`},
		{"c1 control", Text("a\u0085b"), `a\u0085b`},
		{"printable unicode", Text("héllo 日本"), "héllo 日本"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestRecord(t *testing.T) {
	r := NewRecord(
		Field{Key: "b", Value: Int(1)},
		Field{Key: "a", Value: Text("x")},
		Field{Key: "c", Value: Null()},
		Field{Key: "b", Value: Int(2)},
	)

	assert.Equal(t, []string{"b", "a", "c"}, r.Keys())
	assert.Equal(t, 3, r.Len())

	v, ok := r.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "2", v.String())

	_, ok = r.Get("c")
	assert.False(t, ok, "null values read as absent")

	_, ok = r.Get("missing")
	assert.False(t, ok)

	var zero Record
	_, ok = zero.Get("a")
	assert.False(t, ok)
	assert.Empty(t, zero.Keys())

	fields := r.Fields()
	fields[0].Key = "changed"
	assert.Equal(t, "b", r.Keys()[0], "Fields returns a copy")
}
