package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mverbeek/transgraph/internal/config"
	"github.com/mverbeek/transgraph/internal/viz"
)

var exportFlags struct {
	format string
	layout string
	out    string
}

func init() {
	exportCmd.Flags().StringVar(&exportFlags.format, "format", "cytoscape", "Export format: cytoscape or html")
	exportCmd.Flags().StringVar(&exportFlags.layout, "layout", "", "HTML layout: force, circle, grid (default from config)")
	exportCmd.Flags().StringVar(&exportFlags.out, "out", "", "Write to file instead of stdout")
	registerGraphFlags(exportCmd)
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the graph for external viewers",
	Long: `Build the graph with metrics and export it as Cytoscape.js JSON or
a self-contained HTML page.

Examples:
  tg export > graph.json
  tg export --format html --out graph.html
  tg export --format html --layout circle --out graph.html`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	g := buildAnnotatedGraph(cmd)

	var out string
	switch exportFlags.format {
	case "cytoscape":
		jsonOut, err := viz.ToCytoscapeJSON(g)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		out = jsonOut
	case "html":
		layout := exportFlags.layout
		if layout == "" {
			layout = exportLayoutFromConfig()
		}
		html, err := viz.GenerateHTML(g, viz.HTMLOptions{Layout: layout})
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		out = html
	default:
		exitWithError(ExitError, "unknown format %q (valid: cytoscape, html)", exportFlags.format)
	}

	if exportFlags.out == "" {
		fmt.Println(out)
		return nil
	}

	if err := os.WriteFile(exportFlags.out, []byte(out), 0644); err != nil {
		exitWithError(ExitError, "writing %s: %v", exportFlags.out, err)
	}
	if humanOutput {
		fmt.Printf("Wrote %s\n", exportFlags.out)
	} else {
		outputJSON(StatusResponse{Status: "exported", Path: exportFlags.out})
	}

	return nil
}

// exportLayoutFromConfig reads the repository's export-layout setting,
// falling back to the force layout.
func exportLayoutFromConfig() string {
	root, exitCode := getRepoRoot()
	if exitCode != 0 {
		return "force"
	}
	repoRoot, err := config.FindRepository(root)
	if err != nil {
		return "force"
	}
	cfg, err := config.Load(repoRoot)
	if err != nil || cfg.ExportLayout == "" {
		return "force"
	}
	return cfg.ExportLayout
}
