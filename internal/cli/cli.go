package cli

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/podgraph/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "podgraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// rootFlags holds the values bound to the root command's flags.
type rootFlags struct {
	output    string
	format    string
	color     bool
	threshold int
	config    string
	noVerify  bool
	watch     bool
	verbose   bool
}

// RootCommand creates the podgraph command.
func (c *CLI) RootCommand() *cobra.Command {
	defaults := pipeline.DefaultOptions()
	flags := rootFlags{
		format:    defaults.Format,
		color:     defaults.Color,
		threshold: defaults.Threshold,
	}

	root := &cobra.Command{
		Use:   appName + " [flags] <Podfile.lock>",
		Short: "podgraph draws the dependency graph of a CocoaPods lock file",
		Long: `podgraph reads the PODS section of a Podfile.lock, resolves each dependency
to the version of the pod that satisfies it, and writes the graph in Graphviz
DOT format. Pods with many direct dependencies are color coded.`,
		Example: `  podgraph Podfile.lock > pods.dot
  podgraph -o pods.svg Podfile.lock
  podgraph --color=false --threshold 4 Podfile.lock
  podgraph --watch -o pods.svg Podfile.lock`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return c.run(cmd, args[0], &flags)
		},
	}

	root.SetVersionTemplate(versionTemplate())

	f := root.Flags()
	f.StringVarP(&flags.output, "output", "o", "", "output file (stdout if empty)")
	f.StringVarP(&flags.format, "format", "f", flags.format, "output format: dot, json, svg, png, jpg")
	f.BoolVar(&flags.color, "color", flags.color, "color code pods with many dependencies")
	f.IntVar(&flags.threshold, "threshold", flags.threshold, "color pods with more than this many dependencies")
	f.StringVar(&flags.config, "config", "", "configuration file (TOML, or YAML with a .yaml/.yml extension)")
	f.BoolVar(&flags.noVerify, "no-verify", false, "skip the lock file integrity check")
	f.BoolVarP(&flags.watch, "watch", "w", false, "rebuild the output whenever the lock file changes")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose logging")

	return root
}

// =============================================================================
// Options Helpers
// =============================================================================

// buildOptions merges defaults, the output extension, the config file and
// explicitly set flags, in that order of increasing precedence.
func buildOptions(cmd *cobra.Command, flags *rootFlags, logger *log.Logger) (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()
	opts.Logger = logger

	if format := formatFromPath(flags.output); format != "" {
		opts.Format = format
	}

	if flags.config != "" {
		cfg, err := pipeline.LoadConfig(flags.config)
		if err != nil {
			return opts, err
		}
		cfg.Apply(&opts)
		logger.Debug("loaded config", "path", flags.config)
	}

	set := cmd.Flags().Changed
	if set("format") {
		opts.Format = flags.format
	}
	if set("color") {
		opts.Color = flags.color
	}
	if set("threshold") {
		opts.Threshold = flags.threshold
	}
	if set("no-verify") {
		opts.SkipVerify = flags.noVerify
	}

	return opts, opts.ValidateAndSetDefaults()
}

// formatFromPath infers the output format from a file extension.
// Returns "" when the extension is unknown.
func formatFromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "gv":
		return pipeline.FormatDOT
	case "jpeg":
		return pipeline.FormatJPG
	}
	if pipeline.ValidFormats[ext] {
		return ext
	}
	return ""
}
