package nodelink

import (
	"bytes"
	"fmt"
	"io"

	"github.com/matzehuels/podgraph/pkg/dag"
)

// Fixed graph attributes.
const (
	GraphName  = "PodDeps"
	CanvasSize = "8,6"
	FontSize   = 10
)

// Options configures DOT emission.
type Options struct {
	// Color enables per-pod color coding. When false the output carries no
	// color statements at all.
	Color bool
	// Palette supplies the colors for pods above Threshold. An empty palette
	// falls back to DefaultPalette.
	Palette Palette
	// Threshold is the out-degree a pod must exceed to take a palette color.
	Threshold int
}

// DefaultOptions returns color-coded emission with the default palette and
// threshold.
func DefaultOptions() Options {
	return Options{Color: true, Palette: DefaultPalette(), Threshold: DefaultThreshold}
}

// ToDOT converts a pod graph to Graphviz DOT. See [WriteDOT].
func ToDOT(g *dag.DAG, opts Options) string {
	var buf bytes.Buffer
	writeDOT(&buf, g, opts)
	return buf.String()
}

// WriteDOT writes g as a Graphviz digraph to w in a single write.
//
// Nodes are visited in insertion order. For each node, its outgoing edges are
// written as
//
//	"name version" -> "dep version";
//
// using the version stored on each edge. With Options.Color set, an
// "edge [color=...]" statement precedes a node's edges and a node color
// statement follows them. Edge attributes in DOT apply to edges declared
// after them, so this order is what gives each pod's edges its own color.
func WriteDOT(w io.Writer, g *dag.DAG, opts Options) error {
	var buf bytes.Buffer
	writeDOT(&buf, g, opts)
	_, err := w.Write(buf.Bytes())
	return err
}

func writeDOT(buf *bytes.Buffer, g *dag.DAG, opts Options) {
	palette := opts.Palette
	if len(palette) == 0 {
		palette = DefaultPalette()
	}
	c := &colorer{palette: palette, threshold: opts.Threshold}

	fmt.Fprintf(buf, "digraph %s {\n", GraphName)
	fmt.Fprintf(buf, "\tsize=%q;\n", CanvasSize)
	fmt.Fprintf(buf, "\tnode[fontsize=%d];\n", FontSize)

	for _, n := range g.Nodes() {
		from := label(n.ID, n.Version())
		edges := g.OutEdges(n.ID)

		var color string
		if opts.Color {
			color = c.colorFor(len(edges))
			if len(edges) > 0 {
				fmt.Fprintf(buf, "\tedge [color=%q];\n", color)
			}
		}
		for _, e := range edges {
			fmt.Fprintf(buf, "\t%q -> %q;\n", from, label(e.To, e.Version()))
		}
		if opts.Color {
			fmt.Fprintf(buf, "\t%q [color=%q];\n", from, color)
		}
	}

	buf.WriteString("}\n")
}

// label renders a node as "name version", or just the name when no version
// is known.
func label(name, version string) string {
	if version == "" {
		return name
	}
	return name + " " + version
}
