package grid

// Widths maps a column key to its content width in display columns, padding
// excluded.
type Widths map[string]int

// CollectColumns returns the distinct keys of records in order of first
// appearance, scanning records in sequence and each record in its own key
// order.
func CollectColumns(records []Record) []string {
	columns := make([]string, 0)
	seen := make(map[string]struct{})
	for _, r := range records {
		for _, f := range r.fields {
			if _, ok := seen[f.Key]; ok {
				continue
			}
			seen[f.Key] = struct{}{}
			columns = append(columns, f.Key)
		}
	}
	return columns
}

// ComputeWidths returns, for every column, the larger of its label width and
// the widest present value. Records lacking a column do not contribute.
func ComputeWidths(records []Record, columns []string, labels map[string]string) Widths {
	cfg := Config{Headers: labels}
	widths := make(Widths, len(columns))
	for _, key := range columns {
		widths[key] = displayWidth(Text(cfg.Label(key)).String())
	}
	for _, r := range records {
		for _, key := range columns {
			v, ok := r.Get(key)
			if !ok {
				continue
			}
			if w := displayWidth(v.String()); w > widths[key] {
				widths[key] = w
			}
		}
	}
	return widths
}

// Total returns the display width of every line drawn with these widths:
// both outer borders, each padded column, and one divider between adjacent
// columns.
func (w Widths) Total(columns []string, padding int) int {
	total := 2
	for i, key := range columns {
		total += w[key] + 2*padding
		if i < len(columns)-1 {
			total++
		}
	}
	return total
}
