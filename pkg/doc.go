// Package pkg provides the libraries behind podgraph, a tool that turns the
// PODS section of a CocoaPods Podfile.lock into a Graphviz dependency graph.
//
// # Overview
//
// The pkg directory is organized by stage:
//
//  1. [lockfile] - Parse, verify and resolve a Podfile.lock
//  2. [dag] - Insertion-ordered graph of pods and dependencies
//  3. [render/nodelink] - DOT emission with palette coloring, image rendering
//  4. [io] - JSON export of the graph
//  5. [pipeline] - Orchestration (parse → verify → resolve → emit)
//
// Supporting packages: [errors] for coded errors and [observability] for
// optional pipeline hooks.
//
// # Architecture
//
// The typical data flow through podgraph:
//
//	Podfile.lock
//	     ↓
//	[lockfile] package (parse PODS, check integrity, resolve versions)
//	     ↓
//	[dag] package (pods as nodes, dependencies as edges)
//	     ↓
//	[render/nodelink] or [io] package
//	     ↓
//	DOT/JSON/SVG/PNG/JPG output
//
// # Quick Start
//
//	lock, err := lockfile.ParseFile("Podfile.lock")
//	if err != nil {
//	    return err
//	}
//	if err := lock.Verify(); err != nil {
//	    return err
//	}
//	if err := lock.Resolve(); err != nil {
//	    return err
//	}
//	g, err := lock.Graph()
//	if err != nil {
//	    return err
//	}
//	fmt.Print(nodelink.ToDOT(g, nodelink.DefaultOptions()))
//
// [lockfile]: https://pkg.go.dev/github.com/matzehuels/podgraph/pkg/lockfile
// [dag]: https://pkg.go.dev/github.com/matzehuels/podgraph/pkg/dag
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/podgraph/pkg/render/nodelink
// [io]: https://pkg.go.dev/github.com/matzehuels/podgraph/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/podgraph/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/podgraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/podgraph/pkg/observability
package pkg
