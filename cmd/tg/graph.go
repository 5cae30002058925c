package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mverbeek/transgraph/internal/config"
	"github.com/mverbeek/transgraph/internal/dimension"
	"github.com/mverbeek/transgraph/internal/graph"
	"github.com/mverbeek/transgraph/internal/metrics"
	"github.com/mverbeek/transgraph/internal/storage"
)

var graphFlags struct {
	dimensions []string
	directed   bool
	edgeTypes  []string
}

// registerGraphFlags attaches the shared graph-build flags to a command.
// graph, stats, rank and export all build the same way.
func registerGraphFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&graphFlags.dimensions, "dimensions", nil,
		"Dimensions to build over (overrides graph.yaml)")
	cmd.Flags().BoolVar(&graphFlags.directed, "directed", false,
		"Build a directed graph (overrides graph.yaml)")
	cmd.Flags().StringSliceVar(&graphFlags.edgeTypes, "edge-types", nil,
		"Enabled edge types (overrides graph.yaml)")
}

func init() {
	registerGraphFlags(graphCmd)
	rootCmd.AddCommand(graphCmd)
}

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Build the co-occurrence graph with metrics",
	Long: `Build the co-occurrence graph from all records and annotate every
node with degree, closeness, betweenness and PageRank.

Dimensions, direction and enabled edge types come from
.transgraph/graph.yaml; flags override them per run.

Examples:
  tg graph
  tg graph --dimensions authorName,translatorName --edge-types TRANSLATION
  tg graph --directed`,
	RunE: runGraph,
}

func runGraph(cmd *cobra.Command, args []string) error {
	g := buildAnnotatedGraph(cmd)

	if humanOutput {
		fmt.Printf("%d nodes, %d edges\n\n", len(g.Nodes), len(g.Edges))
		for _, n := range g.Nodes {
			fmt.Printf("%-40s deg=%-3d pr=%.4f\n", truncateString(n.ID, 40), n.Degree, n.PageRank)
		}
	} else {
		outputJSON(g)
	}

	return nil
}

// buildAnnotatedGraph loads the repository's records, builds the graph
// per graph.yaml (with any flag overrides), and runs all metrics.
// Exits on any error.
func buildAnnotatedGraph(cmd *cobra.Command) *graph.Graph {
	root, exitCode := getRepoRoot()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	repoRoot, err := config.FindRepository(root)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	gc, err := config.LoadGraphConfig(repoRoot)
	if err != nil {
		// Older repositories may predate graph.yaml.
		if !errors.Is(err, os.ErrNotExist) {
			exitWithError(ExitConfigError, "%v", err)
		}
		gc = config.DefaultGraphConfig()
	}

	cfg, err := gc.BuildConfig()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	if cmd.Flags().Changed("dimensions") {
		dims, err := dimension.ParseAll(graphFlags.dimensions)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		cfg.Dimensions = dims
	}
	if cmd.Flags().Changed("directed") {
		cfg.Directed = graphFlags.directed
	}
	if cmd.Flags().Changed("edge-types") {
		types, ok := graph.ParseEdgeTypes(graphFlags.edgeTypes)
		if !ok {
			exitWithError(ExitError, "unknown edge type in %v (valid: %v)",
				graphFlags.edgeTypes, graph.AllEdgeTypes)
		}
		cfg.EnabledTypes = types
	}

	records, err := storage.ReadAll(config.RecordsPath(repoRoot))
	if err != nil {
		exitWithError(ExitDataError, "reading records: %v", err)
	}

	return metrics.Compute(graph.Build(records, cfg))
}
