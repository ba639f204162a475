package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/podgraph/pkg/dag"
	errs "github.com/matzehuels/podgraph/pkg/errors"
	pkgio "github.com/matzehuels/podgraph/pkg/io"
	"github.com/matzehuels/podgraph/pkg/lockfile"
	"github.com/matzehuels/podgraph/pkg/observability"
	"github.com/matzehuels/podgraph/pkg/render/nodelink"
)

// Runner executes the pipeline and logs each stage.
// The Runner holds no per-run state; one Runner may serve several runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner that logs to logger.
// If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Run parses the lock file at path and renders its dependency graph.
// On any error the result is nil; no partial output is produced.
func (r *Runner) Run(ctx context.Context, path string, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()

	parseStart := time.Now()
	hooks.OnParseStart(ctx, path)
	lock, err := r.Load(path, opts)
	if err != nil {
		hooks.OnParseComplete(ctx, path, 0, 0, time.Since(parseStart), err)
		return nil, err
	}
	hooks.OnParseComplete(ctx, path, lock.Len(), lock.DependencyCount(), time.Since(parseStart), nil)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{Format: opts.Format}
	result.Stats.Pods = lock.Len()
	result.Stats.Dependencies = lock.DependencyCount()
	result.Stats.Lines = lock.Lines()
	result.Stats.ParseTime = time.Since(parseStart)

	r.Logger.Info("parsed lock file",
		"pods", lock.Len(),
		"dependencies", lock.DependencyCount(),
		"duration", result.Stats.ParseTime)

	renderStart := time.Now()
	hooks.OnEmitStart(ctx, opts.Format, lock.Len())
	out, err := r.Emit(ctx, lock, opts)
	hooks.OnEmitComplete(ctx, opts.Format, len(out), time.Since(renderStart), err)
	if err != nil {
		return nil, err
	}
	result.Output = out
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Debug("rendered graph", "format", opts.Format, "bytes", len(out), "duration", result.Stats.RenderTime)
	return result, nil
}

// Load parses, verifies (unless opts.SkipVerify) and resolves the lock file.
func (r *Runner) Load(path string, opts Options) (*lockfile.Lock, error) {
	r.Logger.Debug("parsing lock file", "path", path)
	lock, err := lockfile.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if opts.SkipVerify {
		r.Logger.Debug("integrity check skipped")
	} else if err := lock.Verify(); err != nil {
		return nil, fmt.Errorf("verify %s: %w", path, err)
	}
	if dups := lock.Duplicates(); len(dups) > 0 {
		r.Logger.Warn("pods declared more than once, last declaration kept", "pods", strings.Join(dups, ", "))
	}

	if err := lock.Resolve(); err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	if r.Logger.GetLevel() <= log.DebugLevel {
		var buf bytes.Buffer
		_ = lock.Dump(&buf)
		for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
			if line != "" {
				r.Logger.Debug(line)
			}
		}
	}
	return lock, nil
}

// Emit serializes a resolved lock in opts.Format.
func (r *Runner) Emit(ctx context.Context, lock *lockfile.Lock, opts Options) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	g, err := lock.Graph()
	if err != nil {
		return nil, err
	}
	for _, e := range dag.BackEdges(g) {
		r.Logger.Warn("circular dependency", "from", e[0], "to", e[1])
	}
	if r.Logger.GetLevel() <= log.DebugLevel {
		r.logShape(g)
	}

	switch {
	case opts.Format == FormatJSON:
		var buf bytes.Buffer
		if err := pkgio.WriteJSON(g, &buf); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInternal, err, "write JSON")
		}
		return buf.Bytes(), nil
	case opts.IsImage():
		dot := nodelink.ToDOT(g, opts.dotOptions())
		img, err := nodelink.Render(ctx, dot, opts.Format)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInternal, err, "render %s", opts.Format)
		}
		return img, nil
	default:
		return []byte(nodelink.ToDOT(g, opts.dotOptions())), nil
	}
}

// logShape logs the graph's roots and leaves and the pod with the most
// dependents.
func (r *Runner) logShape(g *dag.DAG) {
	r.Logger.Debug("graph shape",
		"roots", strings.Join(dag.NodeIDs(g.Sources()), ", "),
		"leaves", strings.Join(dag.NodeIDs(g.Sinks()), ", "))

	var top string
	var most int
	for _, n := range g.Nodes() {
		if d := g.InDegree(n.ID); d > most {
			top, most = n.ID, d
		}
	}
	if most > 0 {
		r.Logger.Debug("most depended on", "pod", top, "dependents", most)
	}
}
