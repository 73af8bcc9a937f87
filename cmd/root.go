package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oakwood-commons/boxgrid/internal/config"
	"github.com/oakwood-commons/boxgrid/internal/viewer"
	"github.com/oakwood-commons/boxgrid/pkg/grid"
	"github.com/oakwood-commons/boxgrid/pkg/loader"
	"github.com/oakwood-commons/boxgrid/pkg/logger"
	"github.com/oakwood-commons/boxgrid/pkg/settings"
)

// errShowHelp is returned by readRecords when there is nothing to read.
var errShowHelp = errors.New("no input provided")

// rootOptions holds the root command's flag values.
type rootOptions struct {
	padding     int
	headers     map[string]string
	charset     string
	characters  map[string]string
	theme       string
	noColor     bool
	output      string
	interactive bool
	configFile  string
	debug       bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   settings.CliBinaryName + " [file]",
		Short: "Render records as a box-drawn table",
		Long: `boxgrid reads a list of records (JSON, NDJSON, YAML or TOML) from a file or
stdin and draws them as a table. Columns appear in the order their keys are
first seen; a record without a key leaves that cell blank.`,
		Example:       "\n  boxgrid people.json\n  cat people.yaml | boxgrid -H name=Name -H age=Age\n  boxgrid people.json -c rounded -p 2\n  boxgrid people.toml -o markdown\n",
		Args:          cobra.MaximumNArgs(1),
		Version:       settings.VersionInformation.BuildVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// debug => zap.DebugLevel (-1), else zap.InfoLevel (0)
			var level int8
			if opts.debug {
				level = logger.DebugLevel
			}
			lgr := logger.Get(level)
			lgr = logger.WithValues(lgr, logger.CommandKey, cmd.Name())
			cmd.SetContext(logger.WithLogger(cmd.Context(), lgr))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			run := settings.NewCliParams()
			if len(args) == 1 {
				run.Source = args[0]
			}
			run.Output = opts.output
			run.Interactive = opts.interactive
			run.NoColor = opts.noColor || os.Getenv("NO_COLOR") != ""
			if !run.Interactive && !isTerminalWriter(cmd.OutOrStdout()) {
				run.NoColor = true
			}
			ctx := settings.IntoContext(cmd.Context(), run)

			err := runRoot(ctx, cmd, opts)
			if errors.Is(err, errShowHelp) {
				return cmd.Help()
			}
			return err
		},
	}

	addRootFlags(cmd.Flags(), opts)

	cmd.SetVersionTemplate("{{ .Name }} {{ .Version }}\n")
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func addRootFlags(flags *pflag.FlagSet, opts *rootOptions) {
	flags.IntVarP(&opts.padding, "padding", "p", grid.DefaultPadding, "spaces on each side of every cell (default from config)")
	flags.StringToStringVarP(&opts.headers, "header", "H", nil, "header label for a column key, as key=label (repeatable)")
	flags.StringVarP(&opts.charset, "charset", "c", "", "frame charset: single|double|rounded|heavy|ascii or one defined in config")
	flags.StringToStringVar(&opts.characters, "char", nil, "override one frame character, as role=glyph (repeatable)")
	flags.StringVarP(&opts.theme, "theme", "t", "", "color theme: default|mono|ocean or one defined in config")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable color output")
	flags.StringVarP(&opts.output, "output", "o", settings.OutputTable, "output format: table|json|yaml|markdown")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "page the table in the terminal")
	flags.StringVar(&opts.configFile, "config", "", "path to a YAML config file (charsets, themes, table defaults)")
	flags.BoolVar(&opts.debug, "debug", false, "write debug logs to stderr")
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print boxgrid version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), cliVersionString())
			return nil
		},
	}
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func runRoot(ctx context.Context, cmd *cobra.Command, opts *rootOptions) error {
	run := settings.FromContextOrDefault(ctx)
	lgr := logger.FromContext(ctx)

	if !settings.IsOutputFormat(run.Output) {
		return fmt.Errorf("invalid --output %q (expected one of %v)", run.Output, settings.OutputFormats)
	}
	if run.Interactive && run.Output != settings.OutputTable {
		return fmt.Errorf("--interactive only supports table output, got %q", run.Output)
	}

	cfgPath := resolveConfigPath(opts.configFile)
	file, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	lgr.V(1).Info("config loaded", "path", cfgPath)

	tableOpts := tableOptions{
		charset:    opts.charset,
		theme:      opts.theme,
		headers:    opts.headers,
		characters: opts.characters,
		noColor:    run.NoColor,
	}
	if cmd.Flags().Changed("padding") {
		p := opts.padding
		tableOpts.padding = &p
	}
	cfg, err := buildGridConfig(file, tableOpts)
	if err != nil {
		return err
	}

	records, err := readRecords(cmd.InOrStdin(), run.Source)
	if err != nil {
		return err
	}
	lgr.V(1).Info("records loaded", logger.SourceKey, sourceName(run), logger.RecordsKey, len(records))

	if !run.Interactive {
		return writeOutput(ctx, cmd.OutOrStdout(), records, cfg, run.Output)
	}

	table, err := grid.Layout(records, cfg)
	if err != nil {
		return err
	}
	lgr.V(1).Info("table rendered", logger.ColumnsKey, len(table.Columns))
	lines := make([]string, len(table.Lines))
	for i, l := range table.Lines {
		lines[i] = l.String()
	}
	progOpts, cleanup := getProgramOptions()
	defer cleanup()
	return viewer.Run(sourceName(run), lines, run.NoColor, progOpts...)
}

// readRecords loads records from source, or from in when source is empty or
// "-". An interactive terminal on in means nothing was piped.
func readRecords(in io.Reader, source string) ([]grid.Record, error) {
	if source != "" && source != "-" {
		return loader.LoadFile(source)
	}
	if f, ok := in.(*os.File); ok && isTerminalFile(f) {
		return nil, errShowHelp
	}
	records, err := loader.LoadReader(in)
	if err != nil {
		if errors.Is(err, loader.ErrEmptyInput) {
			return []grid.Record{}, nil
		}
		return nil, fmt.Errorf("stdin: %w", err)
	}
	return records, nil
}

func sourceName(run *settings.Run) string {
	if run.FromStdin() {
		return "stdin"
	}
	return run.Source
}

// cliVersionString builds the line printed by the version command.
func cliVersionString() string {
	v := settings.VersionInformation
	return fmt.Sprintf("%s %s (commit %s, built %s, %s)", settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime, runtime.Version())
}
