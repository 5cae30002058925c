package metrics

import (
	"github.com/mverbeek/transgraph/internal/graph"
)

// Closeness annotates every node with reachable-set closeness:
// (number of reachable nodes) / (sum of hop distances to them).
// Nodes that reach nothing score 0. Normalizing by the reachable set
// rather than n-1 keeps scores comparable inside a component without
// punishing nodes for unreachable islands.
func Closeness(g *graph.Graph) {
	adj := newAdjacency(g)
	n := adj.size()

	for i, node := range g.Nodes {
		reachable, distSum := bfsDistances(adj, i, n)
		if reachable == 0 || distSum == 0 {
			node.Closeness = 0
			continue
		}
		node.Closeness = float64(reachable) / float64(distSum)
	}
}

// bfsDistances runs an unweighted BFS from source and returns the count
// of reached nodes (excluding source) and the sum of their distances.
func bfsDistances(adj *adjacency, source, n int) (reachable, distSum int) {
	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}
	dist[source] = 0

	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj.out[u] {
			if dist[v] != -1 {
				continue
			}
			dist[v] = dist[u] + 1
			reachable++
			distSum += dist[v]
			queue = append(queue, v)
		}
	}
	return reachable, distSum
}
