package export

import (
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// ErrNoData is returned when an export is attempted over zero rows; an empty
// spreadsheet is never produced.
var ErrNoData = errors.New("export: no data")

// Filename builds the artifact name, e.g. "payments_2026-08-29.xlsx".
func Filename(reportName string, at time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", reportName, at.Format("2006-01-02"))
}

// BuildWorkbook renders records into a single-worksheet workbook. Cell values
// are the already-formatted strings from FormatCell so the file matches the
// bit-exact rules downstream consumers expect.
func BuildWorkbook(sheetName string, columns []Column, records []Record) (*excelize.File, error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}

	f := excelize.NewFile()
	const defaultSheet = "Sheet1"
	if sheetName != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, col.Header); err != nil {
			_ = f.Close()
			return nil, err
		}
		if col.Width > 0 {
			name, _ := excelize.ColumnNumberToName(i + 1)
			if err := f.SetColWidth(sheetName, name, name, col.Width); err != nil {
				_ = f.Close()
				return nil, err
			}
		}
	}

	for rowIdx, rec := range records {
		for colIdx, col := range columns {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				_ = f.Close()
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, FormatCell(rec[col.Key], col.Format)); err != nil {
				_ = f.Close()
				return nil, err
			}
		}
	}

	return f, nil
}
