package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/podgraph/pkg/dag"
)

type graph struct {
	Nodes []node       `json:"nodes"`
	Edges []edge       `json:"edges"`
	Meta  dag.Metadata `json:"meta,omitempty"`
}

type node struct {
	ID      string       `json:"id"`
	Version string       `json:"version,omitempty"`
	Meta    dag.Metadata `json:"meta,omitempty"`
}

type edge struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Version string `json:"version,omitempty"`
}

// WriteJSON encodes a pod graph as JSON and writes it to w.
// Nodes and edges keep the graph's insertion order. The "version" metadata
// key is lifted into its own field; any other node metadata is kept under
// "meta". Graph-level metadata, when present, is written as a top-level "meta".
func WriteJSON(g *dag.DAG, w io.Writer) error {
	out := graph{
		Nodes: make([]node, 0, g.NodeCount()),
		Edges: make([]edge, 0, g.EdgeCount()),
		Meta:  g.Meta(),
	}

	for _, n := range g.Nodes() {
		out.Nodes = append(out.Nodes, node{ID: n.ID, Version: n.Version(), Meta: extraMeta(n.Meta)})
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, edge{From: e.From, To: e.To, Version: e.Version()})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func extraMeta(m dag.Metadata) dag.Metadata {
	var extra dag.Metadata
	for k, v := range m {
		if k == "version" {
			continue
		}
		if extra == nil {
			extra = dag.Metadata{}
		}
		extra[k] = v
	}
	return extra
}
