// Package pipeline runs the Podfile.lock → graph pipeline for podgraph.
//
// # Architecture
//
// A run has four stages, each failing fast:
//
//  1. Parse: read the PODS section ([lockfile.ParseFile])
//  2. Verify: check that every line produced a record ([lockfile.Lock.Verify])
//  3. Resolve: replace constraints with concrete versions ([lockfile.Lock.Resolve])
//  4. Emit: write DOT or JSON, optionally rendering DOT to an image
//
// The complete output is built in memory and returned only when every stage
// succeeds, so callers never see a truncated graph.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{Format: pipeline.FormatDOT, Color: true}
//	result, err := runner.Run(ctx, "Podfile.lock", opts)
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(result.Output)
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/podgraph/pkg/errors"
	"github.com/matzehuels/podgraph/pkg/render/nodelink"
)

// Format constants for output formats.
const (
	FormatDOT  = "dot"
	FormatJSON = "json"
	FormatSVG  = nodelink.FormatSVG
	FormatPNG  = nodelink.FormatPNG
	FormatJPG  = nodelink.FormatJPG
)

// DefaultFormat is the output format when none is given.
const DefaultFormat = FormatDOT

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT:  true,
	FormatJSON: true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJPG:  true,
}

// Options contains all configuration for a pipeline run.
type Options struct {
	Format     string
	Color      bool
	Threshold  int
	Palette    nodelink.Palette
	SkipVerify bool

	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// DefaultOptions returns DOT output with color coding, the default palette
// and threshold, and the integrity check enabled.
func DefaultOptions() Options {
	return Options{
		Format:    DefaultFormat,
		Color:     true,
		Threshold: nodelink.DefaultThreshold,
		Palette:   nodelink.DefaultPalette(),
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Output is the complete rendered graph in Options.Format.
	Output []byte
	// Format is the format of Output.
	Format string
	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Pods         int
	Dependencies int
	Lines        int
	ParseTime    time.Duration
	RenderTime   time.Duration
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, formatList())
	}
	return nil
}

func formatList() string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Threshold < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "threshold must not be negative (got %d)", o.Threshold)
	}
	if len(o.Palette) == 0 {
		o.Palette = nodelink.DefaultPalette()
	}
	if err := o.Palette.Validate(); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "invalid palette")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// IsImage reports whether the format needs Graphviz layout.
func (o *Options) IsImage() bool {
	return nodelink.SupportsFormat(o.Format)
}

// dotOptions returns the emitter options.
func (o *Options) dotOptions() nodelink.Options {
	return nodelink.Options{Color: o.Color, Palette: o.Palette, Threshold: o.Threshold}
}
