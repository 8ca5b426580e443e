package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"timeboard/internal/datex"
)

const sheetName = "Timesheet"

var xlsxHeader = []any{"Date", "Ticket", "Subject", "Project", "Charge", "Type", "Billing code"}

// WriteXLSX renders records as a single-sheet spreadsheet: a bold header row
// followed by one row per record. Returns the serialized workbook bytes.
func WriteXLSX(records []Record, opts Options) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// NewFile starts with a default sheet; rename it rather than juggling two.
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("xlsx error: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &xlsxHeader); err != nil {
		return nil, fmt.Errorf("xlsx error: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(sheetName, "A1", "G1", headerStyle)
	}

	for i, r := range records {
		row := []any{
			datex.FormatDay(r.Day),
			sanitizeCell(r.Ticket),
			sanitizeCell(r.Subject),
			sanitizeCell(r.Project),
			opts.charge(r.Hours),
			sanitizeCell(string(r.Type)),
			sanitizeCell(r.BillingCode),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("xlsx error: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("xlsx error: %w", err)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 12)
	_ = f.SetColWidth(sheetName, "B", "D", 24)
	_ = f.SetColWidth(sheetName, "F", "G", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx error: %w", err)
	}
	return buf.Bytes(), nil
}
