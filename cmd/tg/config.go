package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mverbeek/transgraph/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values.

Usage:
  tg config                          # Show all config
  tg config default-metric           # Get specific value
  tg config default-metric pageRank  # Set value

Keys:
  default-metric  Metric used by rank when --by is omitted
  export-layout   Layout for HTML export (force, circle, grid)`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

// ConfigResponse is the response for config get commands.
type ConfigResponse struct {
	DefaultMetric string `json:"default_metric,omitempty"`
	ExportLayout  string `json:"export_layout,omitempty"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	root, exitCode := getRepoRoot()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	repoRoot, err := config.FindRepository(root)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	cfg, err := config.Load(repoRoot)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	// No args: show all config
	if len(args) == 0 {
		if humanOutput {
			fmt.Printf("default-metric: %s\n", cfg.DefaultMetric)
			fmt.Printf("export-layout:  %s\n", cfg.ExportLayout)
		} else {
			outputJSON(ConfigResponse{
				DefaultMetric: cfg.DefaultMetric,
				ExportLayout:  cfg.ExportLayout,
			})
		}
		return nil
	}

	key := normalizeConfigKey(args[0])

	// One arg: get specific value
	if len(args) == 1 {
		switch key {
		case "default-metric":
			if humanOutput {
				fmt.Println(cfg.DefaultMetric)
			} else {
				outputJSON(map[string]string{"default_metric": cfg.DefaultMetric})
			}
		case "export-layout":
			if humanOutput {
				fmt.Println(cfg.ExportLayout)
			} else {
				outputJSON(map[string]string{"export_layout": cfg.ExportLayout})
			}
		default:
			exitWithError(ExitError, "unknown configuration key: %s", args[0])
		}
		return nil
	}

	// Two args: set value
	value := args[1]

	switch key {
	case "default-metric":
		if err := config.ValidateDefaultMetric(value); err != nil {
			exitWithError(ExitError, "%v", err)
		}
		cfg.DefaultMetric = value
	case "export-layout":
		if err := config.ValidateExportLayout(value); err != nil {
			exitWithError(ExitError, "%v", err)
		}
		cfg.ExportLayout = value
	default:
		exitWithError(ExitError, "unknown configuration key: %s", args[0])
	}

	if err := cfg.Save(repoRoot); err != nil {
		exitWithError(ExitError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Updated %s to %s\n", key, value)
	} else {
		outputJSON(UpdateResponse{
			Status: "updated",
			Key:    key,
			Value:  value,
		})
	}

	return nil
}

// normalizeConfigKey converts key formats (default_metric, default-metric) to consistent format
func normalizeConfigKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "-")
	return key
}
