package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mverbeek/transgraph/internal/config"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new transgraph repository",
	Long: `Initialize a new transgraph repository in the current directory.

Creates:
  .transgraph/
  ├── records.jsonl   # Empty file
  ├── config.json     # Default config
  ├── graph.yaml      # Default graph-build settings
  └── cache/          # Empty directory (gitignored)`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root, exitCode := getRepoRoot()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	if config.IsRepository(root) {
		exitWithError(ExitError, "directory already contains a transgraph repository")
	}

	if err := os.MkdirAll(config.TransgraphPath(root), 0755); err != nil {
		exitWithError(ExitError, "creating .transgraph directory: %v", err)
	}
	if err := os.MkdirAll(config.CachePath(root), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}

	// Empty records.jsonl
	recordsFile, err := os.Create(config.RecordsPath(root))
	if err != nil {
		exitWithError(ExitError, "creating records.jsonl: %v", err)
	}
	recordsFile.Close()

	cfg := &config.Config{DefaultMetric: "degree", ExportLayout: "force"}
	if err := cfg.Save(root); err != nil {
		exitWithError(ExitError, "creating config.json: %v", err)
	}

	if err := config.DefaultGraphConfig().Save(root); err != nil {
		exitWithError(ExitError, "creating graph.yaml: %v", err)
	}

	if humanOutput {
		fmt.Printf("Initialized transgraph repository in %s\n", root)
	} else {
		outputJSON(StatusResponse{
			Status: "initialized",
			Path:   root,
		})
	}

	return nil
}
