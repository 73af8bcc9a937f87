package loader

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/oakwood-commons/boxgrid/pkg/grid"
)

// loadTOML decodes a TOML document. The order of keys comes from the
// decoder's metadata, which lists every key in the order it was written.
func loadTOML(input string) ([]grid.Record, error) {
	var doc map[string]any
	md, err := toml.Decode(input, &doc)
	if err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	keys := md.Keys()

	for _, k := range keys {
		if len(k) != 1 {
			continue
		}
		if tables, ok := tableList(doc[k[0]]); ok {
			return tomlRecords(k[0], tables, keys), nil
		}
	}

	var order []string
	for _, k := range keys {
		if len(k) == 1 {
			order = append(order, k[0])
		}
	}
	return []grid.Record{tomlRecord(doc, order)}, nil
}

// tableList reports whether v is an array whose items are all tables.
func tableList(v any) ([]map[string]any, bool) {
	switch t := v.(type) {
	case []map[string]any:
		return t, true
	case []any:
		if len(t) == 0 {
			return nil, false
		}
		out := make([]map[string]any, len(t))
		for i, item := range t {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, false
			}
			out[i] = m
		}
		return out, true
	}
	return nil, false
}

// tomlRecords builds one record per table of the array named name. Each
// repetition of the [[name]] header in keys starts the next table; keys one
// level below it give that table's order.
func tomlRecords(name string, tables []map[string]any, keys []toml.Key) []grid.Record {
	orders := make([][]string, len(tables))
	idx := -1
	for _, k := range keys {
		if len(k) == 0 || k[0] != name {
			continue
		}
		switch len(k) {
		case 1:
			idx++
		case 2:
			if idx >= 0 && idx < len(orders) {
				orders[idx] = append(orders[idx], k[1])
			}
		}
	}

	records := make([]grid.Record, len(tables))
	for i, t := range tables {
		records[i] = tomlRecord(t, orders[i])
	}
	return records
}

// tomlRecord builds a record from table, taking keys in order first and any
// remaining keys alphabetically.
func tomlRecord(table map[string]any, order []string) grid.Record {
	var r grid.Record
	for _, key := range order {
		if v, ok := table[key]; ok {
			r.Set(key, tomlValue(v))
		}
	}
	rest := make([]string, 0, len(table))
	for key := range table {
		if !contains(r.Keys(), key) {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		r.Set(key, tomlValue(table[key]))
	}
	return r
}

func tomlValue(v any) grid.Value {
	switch t := v.(type) {
	case nil:
		return grid.Null()
	case string:
		return grid.Text(t)
	case int64:
		return grid.Int(t)
	case float64:
		return grid.Float(t)
	case bool:
		return grid.Bool(t)
	case time.Time:
		return grid.Text(t.Format(time.RFC3339Nano))
	case fmt.Stringer:
		return grid.Text(t.String())
	default:
		if b, err := json.Marshal(t); err == nil {
			return grid.Text(string(b))
		}
		return grid.Text(fmt.Sprint(t))
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
