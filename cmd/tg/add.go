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

var addFlags struct {
	title      string
	year       int
	author     string
	translator string
	publisher  string
	city       string
	origCity   string
	sourceLang string
	targetLang string
	custom     []string
}

func init() {
	addCmd.Flags().StringVar(&addFlags.title, "title", "", "Title of the translated work (required)")
	addCmd.Flags().IntVar(&addFlags.year, "year", 0, "Publication year")
	addCmd.Flags().StringVar(&addFlags.author, "author", "", "Author name")
	addCmd.Flags().StringVar(&addFlags.translator, "translator", "", "Translator name")
	addCmd.Flags().StringVar(&addFlags.publisher, "publisher", "", "Publisher name")
	addCmd.Flags().StringVar(&addFlags.city, "city", "", "Publication place")
	addCmd.Flags().StringVar(&addFlags.origCity, "original-city", "", "Source place of the original work")
	addCmd.Flags().StringVar(&addFlags.sourceLang, "source-language", "", "Language of the original")
	addCmd.Flags().StringVar(&addFlags.targetLang, "target-language", "", "Language of the translation")
	addCmd.Flags().StringArrayVar(&addFlags.custom, "field", nil, "Custom field as key=value (repeatable)")
	addCmd.MarkFlagRequired("title")

	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a record manually",
	Long: `Add a bibliographic record to the repository.

Example:
  tg add --title "Amok" --year 1927 --author "Stefan Zweig" \
    --translator "Alzir Hella" --publisher "Stock" --city "Paris" \
    --source-language German --target-language French \
    --field genre=novella`,
	RunE: runAdd,
}

// AddResponse is the response for the add command.
type AddResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

func runAdd(cmd *cobra.Command, args []string) error {
	root, exitCode := getRepoRoot()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	repoRoot, err := config.FindRepository(root)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	rec := record.Record{
		Title:          addFlags.title,
		Year:           addFlags.year,
		Author:         record.Person{Name: addFlags.author},
		Translator:     record.Person{Name: addFlags.translator},
		Publisher:      addFlags.publisher,
		City:           addFlags.city,
		OriginalCity:   addFlags.origCity,
		SourceLanguage: addFlags.sourceLang,
		TargetLanguage: addFlags.targetLang,
	}

	for _, kv := range addFlags.custom {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(key) == "" {
			exitWithError(ExitError, "invalid --field %q (want key=value)", kv)
		}
		if rec.Custom == nil {
			rec.Custom = make(map[string]string)
		}
		rec.Custom[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}

	if err := rec.ValidateForCreate(); err != nil {
		exitWithError(ExitDataError, "%v", err)
	}
	rec.SetManualSource()

	recordsPath := config.RecordsPath(repoRoot)
	existing, err := storage.ReadAll(recordsPath)
	if err != nil {
		exitWithError(ExitDataError, "reading records: %v", err)
	}

	if _, found := storage.FindByFingerprint(existing, rec.Fingerprint()); found {
		exitWithError(ExitDataError, "record already exists: %s (%d)", rec.Title, rec.Year)
	}

	rec.ID = storage.GenerateUniqueID(existing, rec.BaseID())
	if err := storage.Append(recordsPath, rec); err != nil {
		exitWithError(ExitError, "writing record: %v", err)
	}

	// Refresh the cache if it has been built before.
	if _, statErr := os.Stat(config.DBPath(repoRoot)); statErr == nil {
		db, err := storage.OpenDB(config.DBPath(repoRoot))
		if err == nil {
			db.RebuildFromJSONL(recordsPath)
			db.Close()
		}
	}

	if humanOutput {
		fmt.Printf("Added %s\n", rec.ID)
	} else {
		outputJSON(AddResponse{Status: "added", ID: rec.ID})
	}

	return nil
}
