package importer

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/mverbeek/transgraph/internal/ranking"
	"github.com/mverbeek/transgraph/internal/record"
)

// writeFixture builds a small spreadsheet with one surplus column.
func writeFixture(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Title", "Year", "Author", "Translator", "Publisher", "Genre"},
		{"Amok", 1922, "Stefan Zweig", "Alzir Hella", "Stock", "novella"},
		{"Amok", 1922, "Stefan Zweig", "Alzir Hella", "Stock", "novella"}, // duplicate row
		{"", "", "", "", "", ""},                                         // blank row
		{"No Year Given", "not-a-year", "X", "", "", ""},                 // bad year
	}
	for i, row := range rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "works.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("saving fixture: %v", err)
	}
	return path
}

func TestParseXLSX(t *testing.T) {
	records, errs := ParseXLSX(writeFixture(t))

	if len(errs) != 1 {
		t.Fatalf("errs = %v, want 1 (bad year row)", errs)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2 (blank row skipped)", len(records))
	}

	rec := records[0]
	if rec.Title != "Amok" || rec.Year != 1922 {
		t.Errorf("title/year = %q/%d", rec.Title, rec.Year)
	}
	if rec.Author.Name != "Stefan Zweig" || rec.Translator.Name != "Alzir Hella" {
		t.Errorf("people = %+v / %+v", rec.Author, rec.Translator)
	}
	if rec.Custom["genre"] != "novella" {
		t.Errorf("surplus column should become a custom field: %+v", rec.Custom)
	}
	if rec.Source.Type != "xlsx" || rec.Source.ID == "" {
		t.Errorf("source = %+v, want xlsx with sheet:row ID", rec.Source)
	}
}

func TestParseXLSXMissingFile(t *testing.T) {
	records, errs := ParseXLSX(filepath.Join(t.TempDir(), "nope.xlsx"))
	if records != nil || len(errs) == 0 {
		t.Errorf("missing file: records = %v, errs = %v", records, errs)
	}
}

func TestDedup(t *testing.T) {
	records, _ := ParseXLSX(writeFixture(t))

	fresh, dupes := Dedup(nil, records)
	if len(fresh) != 1 || len(dupes) != 1 {
		t.Errorf("in-batch dedup: fresh = %d, dupes = %d, want 1/1", len(fresh), len(dupes))
	}

	existing := []record.Record{records[0]}
	fresh, dupes = Dedup(existing, records)
	if len(fresh) != 0 || len(dupes) != 2 {
		t.Errorf("against existing: fresh = %d, dupes = %d, want 0/2", len(fresh), len(dupes))
	}
}

func TestWriteRankingXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rank.xlsx")
	entries := []ranking.Entry{
		{Rank: 1, ID: "authorName:A", Name: "A", Group: "authorName", Score: 3},
		{Rank: 2, ID: "publisher:P1", Name: "P1", Group: "publisher", Score: 2},
	}
	if err := WriteRankingXLSX(path, "degree", entries); err != nil {
		t.Fatalf("WriteRankingXLSX() error = %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening export: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][4] != "degree" {
		t.Errorf("metric header = %q, want degree", rows[0][4])
	}
	if rows[1][1] != "authorName:A" {
		t.Errorf("first data row = %v", rows[1])
	}
}
