package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mverbeek/transgraph/internal/graph"
)

func initRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(TransgraphPath(root), 0755); err != nil {
		t.Fatalf("creating repo dir: %v", err)
	}
	return root
}

func TestConfigRoundTrip(t *testing.T) {
	root := initRepo(t)

	cfg := &Config{DefaultMetric: "pageRank", ExportLayout: "circle"}
	if err := cfg.Save(root); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(root)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("Load() = %+v, want %+v", loaded, cfg)
	}
}

func TestFindRepository(t *testing.T) {
	root := initRepo(t)
	nested := filepath.Join(root, "data", "deep")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("creating nested dir: %v", err)
	}

	found, err := FindRepository(nested)
	if err != nil {
		t.Fatalf("FindRepository() error = %v", err)
	}
	// Compare via os.Stat identity rather than string equality: the
	// temp dir may contain symlinks on some platforms.
	wantInfo, _ := os.Stat(root)
	gotInfo, _ := os.Stat(found)
	if !os.SameFile(wantInfo, gotInfo) {
		t.Errorf("FindRepository() = %q, want %q", found, root)
	}

	if _, err := FindRepository(t.TempDir()); err == nil {
		t.Error("FindRepository outside a repo should error")
	}
}

func TestValidateDefaultMetric(t *testing.T) {
	for _, metric := range append([]string{""}, ValidMetrics...) {
		if err := ValidateDefaultMetric(metric); err != nil {
			t.Errorf("ValidateDefaultMetric(%q) = %v, want nil", metric, err)
		}
	}
	if err := ValidateDefaultMetric("eigenvector"); err == nil {
		t.Error("invalid metric should be rejected")
	}
}

func TestValidateExportLayout(t *testing.T) {
	if err := ValidateExportLayout("force"); err != nil {
		t.Errorf("ValidateExportLayout(force) = %v", err)
	}
	if err := ValidateExportLayout("spiral"); err == nil {
		t.Error("invalid layout should be rejected")
	}
}

func TestGraphConfigRoundTrip(t *testing.T) {
	root := initRepo(t)

	gc := DefaultGraphConfig()
	if err := gc.Save(root); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadGraphConfig(root)
	if err != nil {
		t.Fatalf("LoadGraphConfig() error = %v", err)
	}
	if len(loaded.Dimensions) != 6 || len(loaded.EdgeTypes) != 6 || loaded.Directed {
		t.Errorf("LoadGraphConfig() = %+v, want defaults", loaded)
	}
}

func TestGraphConfigBuildConfig(t *testing.T) {
	gc := &GraphConfig{
		Dimensions: []string{"authorName", "custom:genre"},
		Directed:   true,
		EdgeTypes:  []string{"TRANSLATION", "CUSTOM"},
	}
	cfg, err := gc.BuildConfig()
	if err != nil {
		t.Fatalf("BuildConfig() error = %v", err)
	}
	if len(cfg.Dimensions) != 2 || !cfg.Directed {
		t.Errorf("BuildConfig() = %+v", cfg)
	}
	if cfg.EnabledTypes[0] != graph.EdgeTranslation {
		t.Errorf("EnabledTypes = %v", cfg.EnabledTypes)
	}

	bad := &GraphConfig{Dimensions: []string{"author"}}
	if _, err := bad.BuildConfig(); err == nil {
		t.Error("unknown dimension key should error")
	}

	bad = &GraphConfig{EdgeTypes: []string{"translation"}}
	if _, err := bad.BuildConfig(); err == nil {
		t.Error("unknown edge type should error")
	}
}
