// Package viz renders a built graph for external viewers: Cytoscape.js
// JSON elements and a self-contained HTML page.
package viz

import (
	"encoding/json"
	"fmt"

	"github.com/mverbeek/transgraph/internal/graph"
)

// CytoscapeElements represents the Cytoscape.js data format.
type CytoscapeElements struct {
	Nodes []CytoscapeNode `json:"nodes"`
	Edges []CytoscapeEdge `json:"edges"`
}

// CytoscapeNode represents a node in Cytoscape.js format.
type CytoscapeNode struct {
	Data CytoscapeNodeData `json:"data"`
}

// CytoscapeNodeData carries the annotated node fields into the viewer.
type CytoscapeNodeData struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Group string `json:"group"`

	Degree      int     `json:"degree"`
	Closeness   float64 `json:"closeness"`
	Betweenness float64 `json:"betweenness"`
	PageRank    float64 `json:"pageRank"`
}

// CytoscapeEdge represents an edge in Cytoscape.js format.
type CytoscapeEdge struct {
	Data CytoscapeEdgeData `json:"data"`
}

// CytoscapeEdgeData contains the edge data fields.
type CytoscapeEdgeData struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"`
	Weight int    `json:"weight"`
}

// ToCytoscapeJSON converts a graph to Cytoscape.js JSON format.
func ToCytoscapeJSON(g *graph.Graph) (string, error) {
	elements := CytoscapeElements{
		Nodes: make([]CytoscapeNode, 0, len(g.Nodes)),
		Edges: make([]CytoscapeEdge, 0, len(g.Edges)),
	}

	for _, n := range g.Nodes {
		elements.Nodes = append(elements.Nodes, CytoscapeNode{
			Data: CytoscapeNodeData{
				ID:          n.ID,
				Label:       n.Name,
				Group:       n.Group,
				Degree:      n.Degree,
				Closeness:   n.Closeness,
				Betweenness: n.Betweenness,
				PageRank:    n.PageRank,
			},
		})
	}

	for i, e := range g.Edges {
		elements.Edges = append(elements.Edges, CytoscapeEdge{
			Data: CytoscapeEdgeData{
				ID:     edgeID(e.Source, e.Target, string(e.Type), i),
				Source: e.Source,
				Target: e.Target,
				Type:   string(e.Type),
				Weight: e.Weight,
			},
		})
	}

	jsonBytes, err := json.Marshal(elements)
	if err != nil {
		return "", fmt.Errorf("marshaling Cytoscape elements to JSON: %w", err)
	}
	return string(jsonBytes), nil
}

// edgeID generates a unique edge ID for the current visualization session.
// IDs are based on slice position and are not stable across different graph builds.
func edgeID(source, target, edgeType string, index int) string {
	return fmt.Sprintf("%s-%s-%s-%d", source, target, edgeType, index)
}
