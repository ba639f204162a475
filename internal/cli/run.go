package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/podgraph/pkg/errors"
	"github.com/matzehuels/podgraph/pkg/pipeline"
)

// run executes the pipeline for one lock file and writes the result, or
// keeps doing so on every change with --watch.
func (c *CLI) run(cmd *cobra.Command, path string, flags *rootFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	opts, err := buildOptions(cmd, flags, logger)
	if err != nil {
		return err
	}

	b := &builder{
		runner: pipeline.NewRunner(logger),
		opts:   opts,
		path:   path,
		output: flags.output,
		stdout: cmd.OutOrStdout(),
		stderr: cmd.ErrOrStderr(),
	}

	if flags.watch {
		if flags.output == "" {
			return errs.New(errs.ErrCodeInvalidInput, "--watch requires --output")
		}
		return watch(ctx, path, logger, func() error { return b.build(ctx) })
	}
	return b.build(ctx)
}

// builder produces and writes one graph.
type builder struct {
	runner *pipeline.Runner
	opts   pipeline.Options
	path   string
	output string
	stdout io.Writer
	stderr io.Writer
}

// build runs the pipeline and writes its output.
// Output is written only after the whole graph has been produced.
func (b *builder) build(ctx context.Context) error {
	prog := newProgress(b.runner.Logger)

	var spin *Spinner
	if b.opts.IsImage() && isTerminal(b.stderr) {
		spin = newSpinnerWithContext(ctx, b.stderr, fmt.Sprintf("Rendering %s...", b.opts.Format))
		spin.Start()
	}

	result, err := b.runner.Run(ctx, b.path, b.opts)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	if err := writeOutput(b.output, b.stdout, result.Output); err != nil {
		return err
	}
	prog.done("Generated dependency graph")

	if b.output != "" {
		printSuccess(b.stderr, "Wrote %s graph", result.Format)
		printFile(b.stderr, b.output)
		printStats(b.stderr, result.Stats.Pods, result.Stats.Dependencies)
	}
	return nil
}
