package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mverbeek/transgraph/internal/ranking"
)

// WriteRankingXLSX writes a ranking table to a spreadsheet, one row per
// node plus a header row.
func WriteRankingXLSX(path, metric string, entries []ranking.Entry) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []interface{}{"Rank", "ID", "Name", "Group", metric}
	for col, v := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("addressing header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		values := []interface{}{e.Rank, e.ID, e.Name, e.Group, e.Score}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("addressing cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", i+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving spreadsheet: %w", err)
	}
	return nil
}
