// Package settings provides build metadata, per-run options, and context
// helpers shared by the boxgrid CLI and its packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "boxgrid"

// Output formats understood by the CLI.
const (
	OutputTable    = "table"
	OutputJSON     = "json"
	OutputYAML     = "yaml"
	OutputMarkdown = "markdown"
)

// OutputFormats lists every supported output format, default first.
var OutputFormats = []string{OutputTable, OutputJSON, OutputYAML, OutputMarkdown}

// VersionInformation is populated at build time via ldflags.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds the options of a single invocation.
type Run struct {
	// Source is the input path; empty or "-" means stdin.
	Source      string
	Output      string
	NoColor     bool
	Interactive bool
}

// NewCliParams returns the defaults used by the CLI before flags apply.
func NewCliParams() *Run {
	return &Run{
		Output: OutputTable,
	}
}

// FromStdin reports whether the run reads its records from stdin.
func (r *Run) FromStdin() bool {
	return r.Source == "" || r.Source == "-"
}

// IsOutputFormat reports whether name is a supported output format.
func IsOutputFormat(name string) bool {
	for _, f := range OutputFormats {
		if f == name {
			return true
		}
	}
	return false
}
