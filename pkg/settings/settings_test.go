package settings

import (
	"testing"
)

func TestNewCliParams(t *testing.T) {
	want := Run{
		Output: OutputTable,
	}
	got := NewCliParams()
	if *got != want {
		t.Errorf("NewCliParams() = %+v, want %+v", got, want)
	}
}

func TestFromStdin(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{"", true},
		{"-", true},
		{"data.json", false},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			r := &Run{Source: tt.source}
			if got := r.FromStdin(); got != tt.want {
				t.Errorf("FromStdin() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestIsOutputFormat(t *testing.T) {
	for _, f := range OutputFormats {
		if !IsOutputFormat(f) {
			t.Errorf("IsOutputFormat(%q) = false; want true", f)
		}
	}
	if IsOutputFormat("csv") {
		t.Error("IsOutputFormat(\"csv\") = true; want false")
	}
}
