// Package ranking projects an annotated graph into a sorted table of
// nodes by a chosen metric.
package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mverbeek/transgraph/internal/graph"
)

// Metrics lists the valid metric keys in display order.
var Metrics = []string{
	"degree", "inDegree", "outDegree", "closeness", "betweenness", "pageRank",
}

// Entry is one row of a ranking table.
type Entry struct {
	Rank  int     `json:"rank"`
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Group string  `json:"group"`
	Score float64 `json:"score"`

	Node *graph.Node `json:"-"`
}

func score(n *graph.Node, metric string) (float64, error) {
	switch metric {
	case "degree":
		return float64(n.Degree), nil
	case "inDegree":
		return float64(n.InDegree), nil
	case "outDegree":
		return float64(n.OutDegree), nil
	case "closeness":
		return n.Closeness, nil
	case "betweenness":
		return n.Betweenness, nil
	case "pageRank":
		return n.PageRank, nil
	}
	return 0, fmt.Errorf("unknown metric %q (valid: %s)", metric, strings.Join(Metrics, ", "))
}

// By sorts the graph's nodes by the given metric, highest first, ties
// broken by node ID. A positive limit truncates the result. The graph
// itself is not modified.
func By(g *graph.Graph, metric string, limit int) ([]Entry, error) {
	entries := make([]Entry, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		s, err := score(n, metric)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{
			ID:    n.ID,
			Name:  n.Name,
			Group: n.Group,
			Score: s,
			Node:  n,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].ID < entries[j].ID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}
