package lockfile

import (
	"fmt"

	"github.com/matzehuels/podgraph/pkg/dag"
)

// Graph converts the lock into a [dag.DAG]. Nodes are the top-level pods in
// declaration order with their version in Meta["version"]; each dependency
// becomes an edge carrying the dependency's own version in Meta["version"].
//
// Call [Lock.Resolve] first: a dependency with no matching pod cannot become
// an edge and Graph returns an *UnresolvedDependencyError for it.
func (l *Lock) Graph() (*dag.DAG, error) {
	g := dag.New(dag.Metadata{"pods": l.Len(), "dependencies": l.DependencyCount()})
	for _, p := range l.pods {
		if err := g.AddNode(dag.Node{ID: p.Name, Meta: dag.Metadata{"version": p.Version}}); err != nil {
			return nil, fmt.Errorf("pod %s: %w", p.Name, err)
		}
	}
	for _, p := range l.pods {
		for _, d := range p.Deps {
			if _, ok := l.index[d.Name]; !ok {
				return nil, &UnresolvedDependencyError{Pod: p.Name, Dependency: d.Name}
			}
			e := dag.Edge{From: p.Name, To: d.Name, Meta: dag.Metadata{"version": d.Version}}
			if err := g.AddEdge(e); err != nil {
				return nil, fmt.Errorf("dependency %s -> %s: %w", p.Name, d.Name, err)
			}
		}
	}
	return g, nil
}
