package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mverbeek/transgraph/internal/config"
	"github.com/mverbeek/transgraph/internal/importer"
	"github.com/mverbeek/transgraph/internal/ranking"
)

var rankFlags struct {
	by    string
	limit int
	xlsx  string
}

func init() {
	rankCmd.Flags().StringVar(&rankFlags.by, "by", "",
		"Metric to rank by (degree, inDegree, outDegree, closeness, betweenness, pageRank)")
	rankCmd.Flags().IntVar(&rankFlags.limit, "limit", DefaultRankLimit, "Number of nodes to show (0 = all)")
	rankCmd.Flags().StringVar(&rankFlags.xlsx, "xlsx", "", "Also write the ranking to a spreadsheet at this path")
	registerGraphFlags(rankCmd)
	rootCmd.AddCommand(rankCmd)
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank nodes by a centrality metric",
	Long: `Build the graph, compute all metrics and rank nodes by one of them.
When --by is omitted, the repository's default-metric config is used.

Examples:
  tg rank --by pageRank
  tg rank --by betweenness --limit 10
  tg rank --by degree --xlsx ranking.xlsx`,
	RunE: runRank,
}

// RankResponse is the response for the rank command.
type RankResponse struct {
	Metric  string          `json:"metric"`
	Entries []ranking.Entry `json:"entries"`
}

func runRank(cmd *cobra.Command, args []string) error {
	metric := rankFlags.by
	if metric == "" {
		root, exitCode := getRepoRoot()
		if exitCode != 0 {
			os.Exit(exitCode)
		}
		repoRoot, err := config.FindRepository(root)
		if err != nil {
			exitWithError(ExitConfigError, "%v", err)
		}
		if cfg, err := config.Load(repoRoot); err == nil && cfg.DefaultMetric != "" {
			metric = cfg.DefaultMetric
		} else {
			metric = "degree"
		}
	}

	g := buildAnnotatedGraph(cmd)
	entries, err := ranking.By(g, metric, rankFlags.limit)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if rankFlags.xlsx != "" {
		if err := importer.WriteRankingXLSX(rankFlags.xlsx, metric, entries); err != nil {
			exitWithError(ExitError, "writing spreadsheet: %v", err)
		}
	}

	if humanOutput {
		fmt.Printf("Top nodes by %s\n\n", metric)
		for _, e := range entries {
			fmt.Printf("%3d. %-40s %-16s %10.4f\n",
				e.Rank, truncateString(e.Name, RankNameMaxLen), e.Group, e.Score)
		}
		if rankFlags.xlsx != "" {
			fmt.Printf("\nWrote %s\n", rankFlags.xlsx)
		}
	} else {
		if entries == nil {
			entries = []ranking.Entry{}
		}
		outputJSON(RankResponse{Metric: metric, Entries: entries})
	}

	return nil
}
