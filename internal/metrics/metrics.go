package metrics

import (
	"github.com/mverbeek/transgraph/internal/graph"
)

// Compute runs every node metric over the graph in place and returns it.
func Compute(g *graph.Graph) *graph.Graph {
	Degrees(g)
	Closeness(g)
	Betweenness(g)
	PageRank(g)
	return g
}
