package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mverbeek/transgraph/internal/config"
	"github.com/mverbeek/transgraph/internal/record"
	"github.com/mverbeek/transgraph/internal/storage"
)

var searchLimit int

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", DefaultListLimit, "Maximum number of results")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over titles, authors and translators",
	Long: `Search records by title, author or translator name.

Example:
  tg search Zweig`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	root, exitCode := getRepoRoot()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	repoRoot, err := config.FindRepository(root)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	db, err := storage.OpenDB(config.DBPath(repoRoot))
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	defer db.Close()

	query := strings.Join(args, " ")
	records, err := db.Search(query, searchLimit)
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}

	if humanOutput {
		for _, rec := range records {
			fmt.Printf("%-20s %4d  %s\n", rec.ID, rec.Year, truncateString(rec.Title, ListTitleMaxLen))
		}
		fmt.Printf("\n%d matches\n", len(records))
	} else {
		if records == nil {
			records = []record.Record{}
		}
		outputJSON(ListResponse{Count: len(records), Records: records})
	}

	return nil
}
