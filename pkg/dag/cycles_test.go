package dag

import (
	"reflect"
	"testing"
)

func TestBackEdges(t *testing.T) {
	tests := []struct {
		name  string
		nodes []string
		edges [][2]string
		want  [][2]string
	}{
		{
			name:  "acyclic",
			nodes: []string{"A", "B", "C"},
			edges: [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}},
			want:  nil,
		},
		{
			name:  "self loop",
			nodes: []string{"A"},
			edges: [][2]string{{"A", "A"}},
			want:  [][2]string{{"A", "A"}},
		},
		{
			name:  "cycle below a source",
			nodes: []string{"App", "A", "B"},
			edges: [][2]string{{"App", "A"}, {"A", "B"}, {"B", "A"}},
			want:  [][2]string{{"B", "A"}},
		},
		{
			name:  "cycle without sources",
			nodes: []string{"A", "B"},
			edges: [][2]string{{"A", "B"}, {"B", "A"}},
			want:  [][2]string{{"B", "A"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(nil)
			for _, id := range tt.nodes {
				_ = g.AddNode(Node{ID: id})
			}
			for _, e := range tt.edges {
				_ = g.AddEdge(Edge{From: e[0], To: e[1]})
			}

			got := BackEdges(g)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BackEdges() = %v, want %v", got, tt.want)
			}
			if g.EdgeCount() != len(tt.edges) {
				t.Error("BackEdges() modified the graph")
			}
		})
	}
}
