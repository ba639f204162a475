// Package nodelink writes pod dependency graphs as Graphviz node-link
// diagrams.
//
// # Overview
//
// [ToDOT] and [WriteDOT] turn a [dag.DAG] built from a Podfile.lock into a
// DOT digraph with one statement per dependency:
//
//	digraph PodDeps {
//		size="8,6";
//		node[fontsize=10];
//		edge [color="red"];
//		"AFNetworking 2.5.4" -> "AFNetworking/NSURLConnection 2.5.4";
//		...
//		"AFNetworking 2.5.4" [color="red"];
//	}
//
// The output can be fed to the dot tool unchanged, or rendered in-process
// with [Render].
//
// # Color coding
//
// With [Options.Color] set, pods whose out-degree exceeds [Options.Threshold]
// take the next color of [Options.Palette], wrapping after the last one; all
// other pods are black. The palette is an ordinary value: [DefaultPalette]
// returns the 20 built-in colors and callers may pass their own.
//
// # Determinism
//
// Nodes and edges are emitted in the graph's insertion order, which for pod
// graphs is the lock file's declaration order. The same input always yields
// byte-identical output.
//
// # Dependencies
//
// [Render] uses [github.com/goccy/go-graphviz], which embeds Graphviz as
// WebAssembly, to produce SVG, PNG or JPG.
package nodelink
