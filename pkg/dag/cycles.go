package dag

// BackEdges returns the edges that close a cycle, as found by a depth-first
// search from the sources and then from every remaining node in insertion
// order. The graph is not modified. An acyclic graph returns nil.
//
// CocoaPods rejects circular dependencies, so a non-empty result usually
// means the lock file was edited by hand.
func BackEdges(g *DAG) [][2]string {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int)
	var backEdges [][2]string

	var dfs func(node string)
	dfs = func(node string) {
		color[node] = gray
		for _, child := range g.Children(node) {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				backEdges = append(backEdges, [2]string{node, child})
			}
		}
		color[node] = black
	}

	for _, n := range g.Sources() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}

	for _, n := range g.Nodes() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}

	return backEdges
}
