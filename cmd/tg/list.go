package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mverbeek/transgraph/internal/config"
	"github.com/mverbeek/transgraph/internal/record"
	"github.com/mverbeek/transgraph/internal/storage"
)

var listFlags struct {
	yearFrom   int
	yearTo     int
	publisher  string
	sourceLang string
	targetLang string
	limit      int
}

func init() {
	listCmd.Flags().IntVar(&listFlags.yearFrom, "year-from", 0, "Minimum publication year")
	listCmd.Flags().IntVar(&listFlags.yearTo, "year-to", 0, "Maximum publication year")
	listCmd.Flags().StringVar(&listFlags.publisher, "publisher", "", "Filter by publisher (substring match)")
	listCmd.Flags().StringVar(&listFlags.sourceLang, "source-language", "", "Filter by source language")
	listCmd.Flags().StringVar(&listFlags.targetLang, "target-language", "", "Filter by target language")
	listCmd.Flags().IntVar(&listFlags.limit, "limit", DefaultListLimit, "Maximum number of records (0 = all)")

	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List records",
	Long: `List records from the query cache, with optional filters.

Examples:
  tg list
  tg list --year-from 1920 --year-to 1939
  tg list --publisher Reclam --target-language German`,
	RunE: runList,
}

// ListResponse is the response for the list command.
type ListResponse struct {
	Count   int             `json:"count"`
	Records []record.Record `json:"records"`
}

func runList(cmd *cobra.Command, args []string) error {
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

	records, err := db.ListFiltered(storage.ListFilters{
		YearFrom:   listFlags.yearFrom,
		YearTo:     listFlags.yearTo,
		Publisher:  listFlags.publisher,
		SourceLang: listFlags.sourceLang,
		TargetLang: listFlags.targetLang,
	}, listFlags.limit)
	if err != nil {
		exitWithError(ExitError, "listing records: %v", err)
	}

	if humanOutput {
		for _, rec := range records {
			fmt.Printf("%-20s %4d  %s\n", rec.ID, rec.Year, truncateString(rec.Title, ListTitleMaxLen))
		}
		fmt.Printf("\n%d records\n", len(records))
	} else {
		if records == nil {
			records = []record.Record{}
		}
		outputJSON(ListResponse{Count: len(records), Records: records})
	}

	return nil
}
