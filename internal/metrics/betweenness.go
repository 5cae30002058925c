package metrics

import (
	"github.com/mverbeek/transgraph/internal/graph"
)

// Betweenness annotates every node with Brandes betweenness centrality:
// the sum over all source nodes of the node's pair dependencies. Values
// are raw accumulations, not rescaled to [0,1].
func Betweenness(g *graph.Graph) {
	adj := newAdjacency(g)
	n := adj.size()
	scores := make([]float64, n)

	for source := 0; source < n; source++ {
		accumulateFrom(adj, source, n, scores)
	}

	for i, node := range g.Nodes {
		node.Betweenness = scores[i]
	}
}

// accumulateFrom runs one Brandes pass: a BFS from source collecting
// shortest-path counts and predecessors, then a reverse sweep adding
// each node's dependency to scores.
func accumulateFrom(adj *adjacency, source, n int, scores []float64) {
	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}
	sigma := make([]float64, n)
	pred := make([][]int, n)

	dist[source] = 0
	sigma[source] = 1

	var order []int
	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		for _, v := range adj.out[u] {
			if dist[v] == -1 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
			if dist[v] == dist[u]+1 {
				sigma[v] += sigma[u]
				pred[v] = append(pred[v], u)
			}
		}
	}

	delta := make([]float64, n)
	for i := len(order) - 1; i >= 0; i-- {
		w := order[i]
		for _, v := range pred[w] {
			if sigma[w] > 0 {
				delta[v] += (sigma[v] / sigma[w]) * (1 + delta[w])
			}
		}
		if w != source {
			scores[w] += delta[w]
		}
	}
}
