package dag

import (
	"errors"
	"slices"
	"testing"
)

func TestAddNode(t *testing.T) {
	g := New(nil)

	if err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatalf("AddNode(a) = %v", err)
	}
	if err := g.AddNode(Node{ID: ""}); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("AddNode(empty) = %v, want ErrInvalidNodeID", err)
	}
	if err := g.AddNode(Node{ID: "a"}); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("AddNode(dup) = %v, want ErrDuplicateNodeID", err)
	}

	n, ok := g.Node("a")
	if !ok {
		t.Fatal("Node(a) not found")
	}
	if n.Meta == nil {
		t.Error("Meta should be initialized")
	}
}

func TestAddEdge(t *testing.T) {
	g := New(nil)
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b"})

	tests := []struct {
		name string
		edge Edge
		want error
	}{
		{"valid", Edge{From: "a", To: "b"}, nil},
		{"unknown source", Edge{From: "x", To: "b"}, ErrUnknownSourceNode},
		{"unknown target", Edge{From: "a", To: "x"}, ErrUnknownTargetNode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := g.AddEdge(tt.edge); !errors.Is(err, tt.want) {
				t.Errorf("AddEdge() = %v, want %v", err, tt.want)
			}
		})
	}

	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount = %d, want 1", got)
	}
}

func TestInsertionOrder(t *testing.T) {
	g := New(nil)
	ids := []string{"zeta", "alpha", "mu", "beta"}
	for _, id := range ids {
		_ = g.AddNode(Node{ID: id})
	}
	_ = g.AddEdge(Edge{From: "zeta", To: "mu"})
	_ = g.AddEdge(Edge{From: "zeta", To: "alpha"})
	_ = g.AddEdge(Edge{From: "alpha", To: "beta"})
	_ = g.AddEdge(Edge{From: "zeta", To: "beta"})

	if got := NodeIDs(g.Nodes()); !slices.Equal(got, ids) {
		t.Errorf("Nodes() order = %v, want %v", got, ids)
	}
	if got := g.Children("zeta"); !slices.Equal(got, []string{"mu", "alpha", "beta"}) {
		t.Errorf("Children(zeta) = %v", got)
	}
	if got := g.OutDegree("zeta"); got != 3 {
		t.Errorf("OutDegree(zeta) = %d, want 3", got)
	}
	if got := g.InDegree("beta"); got != 2 {
		t.Errorf("InDegree(beta) = %d, want 2", got)
	}
	if got := NodeIDs(g.Sources()); !slices.Equal(got, []string{"zeta"}) {
		t.Errorf("Sources() = %v", got)
	}
	if got := NodeIDs(g.Sinks()); !slices.Equal(got, []string{"mu", "beta"}) {
		t.Errorf("Sinks() = %v", got)
	}
}

func TestOutEdgesKeepMeta(t *testing.T) {
	g := New(nil)
	_ = g.AddNode(Node{ID: "a", Meta: Metadata{"version": "1.0"}})
	_ = g.AddNode(Node{ID: "b", Meta: Metadata{"version": "2.0"}})
	_ = g.AddEdge(Edge{From: "a", To: "b", Meta: Metadata{"version": "2.0"}})
	_ = g.AddEdge(Edge{From: "a", To: "b"})

	edges := g.OutEdges("a")
	if len(edges) != 2 {
		t.Fatalf("OutEdges(a) = %d edges, want 2", len(edges))
	}
	if got := edges[0].Version(); got != "2.0" {
		t.Errorf("edge version = %q, want 2.0", got)
	}
	if got := edges[1].Version(); got != "" {
		t.Errorf("edge without meta version = %q, want empty", got)
	}
	if g.OutEdges("b") != nil {
		t.Error("OutEdges(b) should be nil")
	}

	n, _ := g.Node("a")
	if got := n.Version(); got != "1.0" {
		t.Errorf("node version = %q, want 1.0", got)
	}
}
