// Package dag provides the ordered dependency graph that podgraph renders.
//
// # Overview
//
// A parsed and resolved Podfile.lock becomes a [DAG] whose nodes are pods
// and whose edges are declared dependencies. Unlike a plain adjacency map,
// the graph remembers insertion order for nodes and for each node's
// outgoing edges, so every consumer (DOT emission, JSON export) walks it in
// the same order the lock file declared it.
//
// # Basic Usage
//
// Create a new graph with [New], add nodes with [DAG.AddNode], and edges with
// [DAG.AddEdge]. Nodes must have unique IDs, and edges can only connect
// existing nodes:
//
//	g := dag.New(nil)
//	g.AddNode(dag.Node{ID: "AFNetworking", Meta: dag.Metadata{"version": "2.5.4"}})
//	g.AddNode(dag.Node{ID: "SDWebImage", Meta: dag.Metadata{"version": "3.7.1"}})
//	g.AddEdge(dag.Edge{From: "AFNetworking", To: "SDWebImage"})
//
// Query the graph structure with [DAG.Children], [DAG.OutEdges],
// [DAG.OutDegree] and [DAG.InDegree].
//
// # Metadata
//
// Nodes, edges and the graph itself carry [Metadata] maps. Pod graphs store
// the concrete version under "version" on nodes and the resolved dependency
// version on edges. Metadata maps are never nil after insertion.
//
// # Cycles
//
// CocoaPods refuses to install cyclic pod graphs, so the package does not
// reject cycles; the name is kept for familiarity.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use.
package dag
