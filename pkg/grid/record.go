package grid

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type valueKind uint8

const (
	kindNull valueKind = iota
	kindText
	kindInt
	kindFloat
	kindBool
)

// Value is a single cell value. The zero Value is null and renders like an
// absent key.
type Value struct {
	kind valueKind
	text string
	i    int64
	f    float64
	b    bool
}

// Text returns a text value.
func Text(s string) Value { return Value{kind: kindText, text: s} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: kindInt, i: i} }

// Float returns a floating point value.
func Float(f float64) Value { return Value{kind: kindFloat, f: f} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: kindBool, b: b} }

// Null returns the null value.
func Null() Value { return Value{} }

// IsNull reports whether v carries no value.
func (v Value) IsNull() bool { return v.kind == kindNull }

// String returns the single-line text form of v. It never fails: numbers use
// their base-10 form, text is returned with control characters escaped so a
// cell always occupies one terminal row.
func (v Value) String() string {
	switch v.kind {
	case kindText:
		return flatten(v.text)
	case kindInt:
		return strconv.FormatInt(v.i, 10)
	case kindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case kindBool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// flatten escapes control characters so the cell occupies one terminal row
// and its printed width equals its rune width. Line breaks become \n, tabs
// become \t and any other control rune takes its \xHH or \uHHHH form.
func flatten(s string) string {
	if strings.IndexFunc(s, unicode.IsControl) < 0 {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		case !unicode.IsControl(r):
			b.WriteRune(r)
		case r < 0x80:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			fmt.Fprintf(&b, `\u%04x`, r)
		}
	}
	return b.String()
}

// Field is one key/value pair of a Record.
type Field struct {
	Key   string
	Value Value
}

// Record is an ordered mapping from column key to value. Keys keep the order
// in which they were first set.
type Record struct {
	fields []Field
	index  map[string]int
}

// NewRecord builds a record from fields in order. A repeated key keeps its
// first position and takes the last value.
func NewRecord(fields ...Field) Record {
	var r Record
	for _, f := range fields {
		r.Set(f.Key, f.Value)
	}
	return r
}

// Set stores value under key, appending key if it is new.
func (r *Record) Set(key string, value Value) {
	if i, ok := r.index[key]; ok {
		r.fields[i].Value = value
		return
	}
	if r.index == nil {
		r.index = make(map[string]int)
	}
	r.index[key] = len(r.fields)
	r.fields = append(r.fields, Field{Key: key, Value: value})
}

// Get returns the value stored under key. ok is false when the key is absent
// or its value is null.
func (r Record) Get(key string) (Value, bool) {
	i, ok := r.index[key]
	if !ok || r.fields[i].Value.IsNull() {
		return Value{}, false
	}
	return r.fields[i].Value, true
}

// Keys returns the record's keys in insertion order, including keys whose
// value is null.
func (r Record) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}
	return keys
}

// Fields returns a copy of the record's fields in order.
func (r Record) Fields() []Field {
	return append([]Field(nil), r.fields...)
}

// Len returns the number of keys in the record.
func (r Record) Len() int { return len(r.fields) }
