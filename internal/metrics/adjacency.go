// Package metrics computes social-network-analysis measures over a
// built graph: degree, closeness, betweenness, PageRank, and
// graph-level statistics. All traversal measures treat edges as
// unweighted hops; edge weight only matters for reporting.
package metrics

import (
	"github.com/mverbeek/transgraph/internal/graph"
)

// adjacency is an index-based view of the graph used by the traversal
// metrics. Undirected graphs get both directions materialized.
type adjacency struct {
	ids   []string
	index map[string]int
	out   [][]int
}

func newAdjacency(g *graph.Graph) *adjacency {
	a := &adjacency{
		ids:   make([]string, len(g.Nodes)),
		index: make(map[string]int, len(g.Nodes)),
		out:   make([][]int, len(g.Nodes)),
	}
	for i, n := range g.Nodes {
		a.ids[i] = n.ID
		a.index[n.ID] = i
	}
	for _, e := range g.Edges {
		s, t := a.index[e.Source], a.index[e.Target]
		a.out[s] = append(a.out[s], t)
		if !g.Directed {
			a.out[t] = append(a.out[t], s)
		}
	}
	return a
}

func (a *adjacency) size() int {
	return len(a.ids)
}
