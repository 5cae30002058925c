package metrics

import (
	"github.com/mverbeek/transgraph/internal/graph"
)

// Degrees annotates every node with its degree counts. On undirected
// graphs an edge counts for both endpoints and InDegree, OutDegree and
// Degree all equal the incident edge count. On directed graphs Degree
// is InDegree + OutDegree.
func Degrees(g *graph.Graph) {
	byID := make(map[string]*graph.Node, len(g.Nodes))
	for _, n := range g.Nodes {
		n.Degree, n.InDegree, n.OutDegree = 0, 0, 0
		byID[n.ID] = n
	}

	for _, e := range g.Edges {
		s, t := byID[e.Source], byID[e.Target]
		if s == nil || t == nil {
			continue
		}
		if g.Directed {
			s.OutDegree++
			t.InDegree++
		} else {
			s.OutDegree++
			s.InDegree++
			t.OutDegree++
			t.InDegree++
		}
	}

	for _, n := range g.Nodes {
		if g.Directed {
			n.Degree = n.InDegree + n.OutDegree
		} else {
			n.Degree = n.OutDegree
		}
	}
}
