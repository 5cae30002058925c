package metrics

import (
	"github.com/mverbeek/transgraph/internal/graph"
)

// Stats summarizes a graph at the whole-graph level.
type Stats struct {
	NodeCount int     `json:"nodeCount"`
	EdgeCount int     `json:"edgeCount"`
	Density   float64 `json:"density"`
	AvgDegree float64 `json:"avgDegree"`
}

// GraphStats computes node/edge counts, density, and average degree.
// Density and average degree are 0 on graphs too small to define them.
func GraphStats(g *graph.Graph) Stats {
	s := Stats{
		NodeCount: len(g.Nodes),
		EdgeCount: len(g.Edges),
	}

	n := float64(s.NodeCount)
	e := float64(s.EdgeCount)

	if s.NodeCount >= 2 {
		if g.Directed {
			s.Density = e / (n * (n - 1))
		} else {
			s.Density = 2 * e / (n * (n - 1))
		}
	}
	if s.NodeCount > 0 {
		// Each edge touches two endpoints regardless of direction.
		s.AvgDegree = 2 * e / n
	}
	return s
}
