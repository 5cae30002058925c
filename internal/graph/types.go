// Package graph builds an attributed multi-relational graph from
// bibliographic records: one node per distinct (dimension, value) pair,
// one weighted edge per co-occurring pair of values.
package graph

import (
	"github.com/mverbeek/transgraph/internal/dimension"
)

// EdgeType classifies the relation an edge represents.
type EdgeType string

const (
	EdgeTranslation   EdgeType = "TRANSLATION"
	EdgePublication   EdgeType = "PUBLICATION"
	EdgeCollaboration EdgeType = "COLLABORATION"
	EdgeGeographic    EdgeType = "GEOGRAPHIC"
	EdgeLinguistic    EdgeType = "LINGUISTIC"
	EdgeCustom        EdgeType = "CUSTOM"
)

// AllEdgeTypes lists every edge type in classification precedence order.
var AllEdgeTypes = []EdgeType{
	EdgeTranslation,
	EdgePublication,
	EdgeCollaboration,
	EdgeGeographic,
	EdgeLinguistic,
	EdgeCustom,
}

// Node is one distinct attribute value. Metric fields are zero until a
// metrics pass annotates them.
type Node struct {
	ID    string `json:"id"`    // "<dimension>:<value>"
	Name  string `json:"name"`  // Trimmed attribute value
	Group string `json:"group"` // Dimension key the value came from

	Degree    int `json:"degree"`
	InDegree  int `json:"inDegree"`
	OutDegree int `json:"outDegree"`

	Closeness   float64 `json:"closeness"`
	Betweenness float64 `json:"betweenness"`
	PageRank    float64 `json:"pageRank"`

	Community int `json:"community"` // Reserved, always 0
}

// Edge is a weighted co-occurrence between two nodes. Weight counts the
// records in which both values appeared together.
type Edge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Type   EdgeType `json:"type"`
	Weight int      `json:"weight"`
}

// Graph holds nodes in first-sight order and edges in
// first-contribution order, so identical inputs build identical graphs.
type Graph struct {
	Nodes    []*Node `json:"nodes"`
	Edges    []*Edge `json:"edges"`
	Directed bool    `json:"directed"`
}

// Config controls a build pass. An empty EnabledTypes mask means no
// edges at all; use DefaultConfig for the everything-on defaults.
type Config struct {
	Dimensions   []dimension.Dimension
	Directed     bool
	EnabledTypes []EdgeType
}

// DefaultConfig enables all built-in dimensions and every edge type.
func DefaultConfig() Config {
	return Config{
		Dimensions:   dimension.Builtins(),
		EnabledTypes: AllEdgeTypes,
	}
}

// IsEmpty reports whether the graph has no nodes.
func (g *Graph) IsEmpty() bool {
	return len(g.Nodes) == 0
}

// NodeByID returns the node with the given ID, or nil.
func (g *Graph) NodeByID(id string) *Node {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}
