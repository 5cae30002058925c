// Package config handles repository configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents repository configuration stored in .transgraph/config.json.
type Config struct {
	DefaultMetric string `json:"default_metric"`          // Metric used by rank when --by is omitted
	ExportLayout  string `json:"export_layout,omitempty"` // Layout hint for HTML export: force, circle, grid
}

const (
	TransgraphDir = ".transgraph"
	ConfigFile    = "config.json"
	RecordsFile   = "records.jsonl"
	GraphFile     = "graph.yaml"
	CacheDir      = "cache"
	DBFile        = "records.db"
)

// ValidMetrics lists the metric keys accepted for default_metric.
var ValidMetrics = []string{
	"degree", "inDegree", "outDegree", "closeness", "betweenness", "pageRank",
}

// ValidLayouts lists the supported export layout values.
var ValidLayouts = []string{"force", "circle", "grid"}

// TransgraphPath returns the path to the .transgraph directory from a root path.
func TransgraphPath(root string) string {
	return filepath.Join(root, TransgraphDir)
}

// ConfigPath returns the path to config.json from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, TransgraphDir, ConfigFile)
}

// RecordsPath returns the path to records.jsonl from a root path.
func RecordsPath(root string) string {
	return filepath.Join(root, TransgraphDir, RecordsFile)
}

// GraphConfigPath returns the path to graph.yaml from a root path.
func GraphConfigPath(root string) string {
	return filepath.Join(root, TransgraphDir, GraphFile)
}

// CachePath returns the path to the cache directory from a root path.
func CachePath(root string) string {
	return filepath.Join(root, TransgraphDir, CacheDir)
}

// DBPath returns the path to records.db from a root path.
func DBPath(root string) string {
	return filepath.Join(root, TransgraphDir, CacheDir, DBFile)
}

// IsRepository checks if the given path contains a transgraph repository.
func IsRepository(root string) bool {
	info, err := os.Stat(TransgraphPath(root))
	return err == nil && info.IsDir()
}

// FindRepository walks up from the given path to find a transgraph repository.
// Returns the repository root path or an error if not found.
func FindRepository(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsRepository(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a transgraph repository (no .transgraph directory found)")
		}
		abs = parent
	}
}

// Load reads configuration from the repository at the given root.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save writes configuration to the repository at the given root.
func (c *Config) Save(root string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ValidateDefaultMetric checks that the metric value is valid.
func ValidateDefaultMetric(metric string) error {
	if metric == "" {
		return nil // Empty defaults to "degree"
	}

	for _, valid := range ValidMetrics {
		if metric == valid {
			return nil
		}
	}

	return fmt.Errorf("invalid default_metric: %s (valid: %v)", metric, ValidMetrics)
}

// ValidateExportLayout checks that the layout value is valid.
func ValidateExportLayout(layout string) error {
	if layout == "" {
		return nil // Empty defaults to "force"
	}

	for _, valid := range ValidLayouts {
		if layout == valid {
			return nil
		}
	}

	return fmt.Errorf("invalid export_layout: %s (valid: %v)", layout, ValidLayouts)
}
