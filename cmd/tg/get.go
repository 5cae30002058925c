package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mverbeek/transgraph/internal/config"
	"github.com/mverbeek/transgraph/internal/record"
	"github.com/mverbeek/transgraph/internal/storage"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a single record by ID",
	Long: `Get a single record by its ID.

Example:
  tg get Zweig1927`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
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

	id := args[0]
	rec, err := db.GetByID(id)
	if err != nil {
		exitWithError(ExitError, "getting record: %v", err)
	}
	if rec == nil {
		exitWithError(ExitError, "record not found: %s (run 'tg rebuild' if the cache is stale)", id)
	}

	if humanOutput {
		printRecordDetail(*rec)
	} else {
		outputJSON(rec)
	}

	return nil
}

func printRecordDetail(rec record.Record) {
	fmt.Println(rec.ID)
	fmt.Println(strings.Repeat("═", 70))
	fmt.Println()

	fmt.Printf("Title:       %s\n", wrapText(rec.Title, 58, "             "))
	if rec.Year > 0 {
		fmt.Printf("Year:        %d\n", rec.Year)
	}
	if rec.Author.Name != "" {
		fmt.Printf("Author:      %s\n", rec.Author.Name)
	}
	if rec.Translator.Name != "" {
		fmt.Printf("Translator:  %s\n", rec.Translator.Name)
	}
	if rec.Publisher != "" {
		fmt.Printf("Publisher:   %s\n", rec.Publisher)
	}
	if rec.City != "" {
		fmt.Printf("City:        %s\n", rec.City)
	}
	if rec.OriginalCity != "" {
		fmt.Printf("Orig. city:  %s\n", rec.OriginalCity)
	}
	if rec.SourceLanguage != "" || rec.TargetLanguage != "" {
		fmt.Printf("Languages:   %s → %s\n", rec.SourceLanguage, rec.TargetLanguage)
	}

	if len(rec.Custom) > 0 {
		fmt.Println()
		fmt.Println("Custom fields:")
		keys := make([]string, 0, len(rec.Custom))
		for k := range rec.Custom {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %s: %s\n", k, rec.Custom[k])
		}
	}

	fmt.Println()
	fmt.Printf("Source:      %s (%s)\n", rec.Source.Type, rec.Source.ID)
}
