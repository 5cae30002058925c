package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mverbeek/transgraph/internal/config"
	"github.com/mverbeek/transgraph/internal/importer"
	"github.com/mverbeek/transgraph/internal/storage"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx>",
	Short: "Import records from a spreadsheet",
	Long: `Import bibliographic records from a spreadsheet.

The first row of each sheet is its header. Recognized columns: Title,
Year, Author, Translator, Publisher, City, Original City, Source
Language, Target Language. Any other column becomes a custom field.

Rows whose content matches an existing record (same title, year, author
and translator) are skipped as duplicates.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

// ImportResponse is the response for the import command.
type ImportResponse struct {
	Status     string   `json:"status"`
	Imported   int      `json:"imported"`
	Duplicates int      `json:"duplicates"`
	Errors     []string `json:"errors,omitempty"`
	IDs        []string `json:"ids,omitempty"`
}

func runImport(cmd *cobra.Command, args []string) error {
	root, exitCode := getRepoRoot()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	repoRoot, err := config.FindRepository(root)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	parsed, parseErrs := importer.ParseXLSX(args[0])
	if parsed == nil && len(parseErrs) > 0 {
		exitWithError(ExitDataError, "%v", parseErrs[0])
	}

	recordsPath := config.RecordsPath(repoRoot)
	existing, err := storage.ReadAll(recordsPath)
	if err != nil {
		exitWithError(ExitDataError, "reading records: %v", err)
	}

	fresh, dupes := importer.Dedup(existing, parsed)

	var ids []string
	all := existing
	for _, rec := range fresh {
		rec.ID = storage.GenerateUniqueID(all, rec.BaseID())
		if err := storage.Append(recordsPath, rec); err != nil {
			exitWithError(ExitError, "writing record %s: %v", rec.ID, err)
		}
		all = append(all, rec)
		ids = append(ids, rec.ID)
	}

	// Rebuild the cache so imports are immediately queryable.
	if err := os.MkdirAll(config.CachePath(repoRoot), 0755); err == nil {
		if db, err := storage.OpenDB(config.DBPath(repoRoot)); err == nil {
			db.RebuildFromJSONL(recordsPath)
			db.Close()
		}
	}

	var errMsgs []string
	for _, e := range parseErrs {
		errMsgs = append(errMsgs, e.Error())
	}

	if humanOutput {
		fmt.Printf("Imported %d records (%d duplicates skipped)\n", len(fresh), len(dupes))
		for _, msg := range errMsgs {
			fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
		}
	} else {
		outputJSON(ImportResponse{
			Status:     "imported",
			Imported:   len(fresh),
			Duplicates: len(dupes),
			Errors:     errMsgs,
			IDs:        ids,
		})
	}

	return nil
}
