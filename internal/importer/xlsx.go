// Package importer provides functions to import records from external formats.
package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mverbeek/transgraph/internal/record"
)

// builtinColumns maps recognized header names (lowercased) to record
// fields. Any other header becomes a custom field keyed by its
// lowercased name.
var builtinColumns = map[string]bool{
	"title":           true,
	"year":            true,
	"author":          true,
	"translator":      true,
	"publisher":       true,
	"city":            true,
	"original city":   true,
	"source language": true,
	"target language": true,
}

// ParseXLSX reads a spreadsheet into records. Every sheet is scanned;
// the first row of each sheet is its header. Rows that fail validation
// are reported individually and do not abort the import.
func ParseXLSX(path string) ([]record.Record, []error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, []error{fmt.Errorf("opening XLSX: %w", err)}
	}
	defer f.Close()

	var records []record.Record
	var errs []error

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			errs = append(errs, fmt.Errorf("reading sheet %s: %w", sheet, err))
			continue
		}
		if len(rows) < 2 {
			continue // Header only, or empty
		}

		header := normalizeHeader(rows[0])
		for i, row := range rows[1:] {
			rowNum := i + 2 // 1-based, after the header
			rec, err := rowToRecord(header, row)
			if err != nil {
				errs = append(errs, fmt.Errorf("sheet %s row %d: %w", sheet, rowNum, err))
				continue
			}
			if rec == nil {
				continue // Blank row
			}
			rec.Source = record.ImportSource{
				Type: "xlsx",
				ID:   fmt.Sprintf("%s:%d", sheet, rowNum),
			}
			records = append(records, *rec)
		}
	}

	return records, errs
}

func normalizeHeader(cells []string) []string {
	header := make([]string, len(cells))
	for i, c := range cells {
		header[i] = strings.ToLower(strings.TrimSpace(c))
	}
	return header
}

// rowToRecord maps one spreadsheet row onto a record. Returns nil for
// rows with no content at all.
func rowToRecord(header, row []string) (*record.Record, error) {
	var rec record.Record
	empty := true

	for i, name := range header {
		if i >= len(row) || name == "" {
			continue
		}
		value := strings.TrimSpace(row[i])
		if value == "" {
			continue
		}
		empty = false

		switch name {
		case "title":
			rec.Title = value
		case "year":
			year, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("parsing year %q: %w", value, err)
			}
			rec.Year = year
		case "author":
			rec.Author.Name = value
		case "translator":
			rec.Translator.Name = value
		case "publisher":
			rec.Publisher = value
		case "city":
			rec.City = value
		case "original city":
			rec.OriginalCity = value
		case "source language":
			rec.SourceLanguage = value
		case "target language":
			rec.TargetLanguage = value
		default:
			// Surplus columns land in the open custom namespace.
			if rec.Custom == nil {
				rec.Custom = make(map[string]string)
			}
			rec.Custom[name] = value
		}
	}

	if empty {
		return nil, nil
	}
	if err := rec.ValidateForCreate(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Dedup splits parsed records into new ones and duplicates of records
// already present, comparing content fingerprints. Duplicates within
// the import batch itself are also dropped.
func Dedup(existing, parsed []record.Record) (fresh, dupes []record.Record) {
	seen := make(map[string]bool, len(existing))
	for i := range existing {
		seen[existing[i].Fingerprint()] = true
	}

	for _, rec := range parsed {
		fp := rec.Fingerprint()
		if seen[fp] {
			dupes = append(dupes, rec)
			continue
		}
		seen[fp] = true
		fresh = append(fresh, rec)
	}
	return fresh, dupes
}
