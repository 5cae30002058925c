package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mverbeek/transgraph/internal/dimension"
	"github.com/mverbeek/transgraph/internal/graph"
)

// GraphConfig is the graph-build configuration stored in
// .transgraph/graph.yaml. Keys use the same dimension and edge-type
// names as the CLI flags.
type GraphConfig struct {
	Dimensions []string `yaml:"dimensions"` // Dimension keys, e.g. authorName, custom:genre
	Directed   bool     `yaml:"directed"`
	EdgeTypes  []string `yaml:"edgeTypes"` // Enabled edge types, e.g. TRANSLATION
}

// DefaultGraphConfig enables all built-in dimensions and every edge
// type on an undirected graph.
func DefaultGraphConfig() *GraphConfig {
	gc := &GraphConfig{}
	for _, d := range dimension.Builtins() {
		gc.Dimensions = append(gc.Dimensions, d.Key())
	}
	for _, t := range graph.AllEdgeTypes {
		gc.EdgeTypes = append(gc.EdgeTypes, string(t))
	}
	return gc
}

// LoadGraphConfig reads graph.yaml from the repository at the given root.
func LoadGraphConfig(root string) (*GraphConfig, error) {
	data, err := os.ReadFile(GraphConfigPath(root))
	if err != nil {
		return nil, fmt.Errorf("reading graph config: %w", err)
	}

	var gc GraphConfig
	if err := yaml.Unmarshal(data, &gc); err != nil {
		return nil, fmt.Errorf("parsing graph config: %w", err)
	}

	return &gc, nil
}

// Save writes graph.yaml to the repository at the given root.
func (gc *GraphConfig) Save(root string) error {
	data, err := yaml.Marshal(gc)
	if err != nil {
		return fmt.Errorf("encoding graph config: %w", err)
	}

	if err := os.WriteFile(GraphConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing graph config: %w", err)
	}

	return nil
}

// BuildConfig converts the file representation into a graph.Config,
// validating dimension keys and edge type names.
func (gc *GraphConfig) BuildConfig() (graph.Config, error) {
	dims, err := dimension.ParseAll(gc.Dimensions)
	if err != nil {
		return graph.Config{}, fmt.Errorf("graph config: %w", err)
	}

	types, ok := graph.ParseEdgeTypes(gc.EdgeTypes)
	if !ok {
		return graph.Config{}, fmt.Errorf("graph config: unknown edge type in %v", gc.EdgeTypes)
	}

	return graph.Config{
		Dimensions:   dims,
		Directed:     gc.Directed,
		EnabledTypes: types,
	}, nil
}
