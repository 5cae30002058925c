package graph

import (
	"strings"

	"github.com/mverbeek/transgraph/internal/dimension"
	"github.com/mverbeek/transgraph/internal/record"
)

// mention is one resolved attribute value inside a single record.
type mention struct {
	id  string
	dim dimension.Dimension
}

type edgeKey struct {
	source, target string
}

// NodeID builds the stable node identifier for a dimension value.
func NodeID(d dimension.Dimension, value string) string {
	return d.Key() + ":" + strings.TrimSpace(value)
}

// Build constructs the graph for a set of records. Nodes are created
// lazily on first sight; every pair of distinct values present in the
// same record contributes weight 1 to its edge. Absent values
// (empty, "Unknown", "N/A") never become nodes, and a value co-occurring
// with itself never becomes a self-loop.
func Build(records []record.Record, cfg Config) *Graph {
	g := &Graph{
		Nodes:    []*Node{},
		Edges:    []*Edge{},
		Directed: cfg.Directed,
	}

	enabled := make(map[EdgeType]bool, len(cfg.EnabledTypes))
	for _, t := range cfg.EnabledTypes {
		enabled[t] = true
	}

	nodeIndex := make(map[string]*Node)
	edgeIndex := make(map[edgeKey]*Edge)

	for i := range records {
		r := &records[i]

		var mentions []mention
		for _, d := range cfg.Dimensions {
			value := d.Resolve(r)
			if dimension.IsAbsent(value) {
				continue
			}
			value = strings.TrimSpace(value)
			id := NodeID(d, value)
			if _, ok := nodeIndex[id]; !ok {
				n := &Node{ID: id, Name: value, Group: d.Key()}
				nodeIndex[id] = n
				g.Nodes = append(g.Nodes, n)
			}
			mentions = append(mentions, mention{id: id, dim: d})
		}

		for a := 0; a < len(mentions); a++ {
			for b := a + 1; b < len(mentions); b++ {
				if mentions[a].id == mentions[b].id {
					continue
				}
				edgeType := Classify(mentions[a].dim, mentions[b].dim)
				if !enabled[edgeType] {
					continue
				}

				src, dst := mentions[a].id, mentions[b].id
				if !cfg.Directed && src > dst {
					src, dst = dst, src
				}
				key := edgeKey{source: src, target: dst}
				if e, ok := edgeIndex[key]; ok {
					e.Weight++
					continue
				}
				e := &Edge{Source: src, Target: dst, Type: edgeType, Weight: 1}
				edgeIndex[key] = e
				g.Edges = append(g.Edges, e)
			}
		}
	}

	return g
}
