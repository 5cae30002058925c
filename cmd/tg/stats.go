package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mverbeek/transgraph/internal/metrics"
)

func init() {
	registerGraphFlags(statsCmd)
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show graph-level statistics",
	Long: `Build the graph and report node count, edge count, density and
average degree.

Example:
  tg stats --edge-types TRANSLATION,PUBLICATION`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	g := buildAnnotatedGraph(cmd)
	s := metrics.GraphStats(g)

	if humanOutput {
		fmt.Printf("Nodes:          %d\n", s.NodeCount)
		fmt.Printf("Edges:          %d\n", s.EdgeCount)
		fmt.Printf("Density:        %.4f\n", s.Density)
		fmt.Printf("Average degree: %.2f\n", s.AvgDegree)
	} else {
		outputJSON(s)
	}

	return nil
}
