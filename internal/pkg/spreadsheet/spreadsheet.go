// Package spreadsheet renders tabular snapshots as .xlsx workbooks.
package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the workbooks written by Write
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet is a single worksheet: a header row followed by data rows
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]interface{}
}

// Write renders the sheet as a workbook and writes it to w
func Write(w io.Writer, sheet Sheet) error {
	f, err := Build(sheet)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Build creates a workbook with a single worksheet holding the sheet's data.
// The caller owns the returned file and must close it.
func Build(sheet Sheet) (*excelize.File, error) {
	f := excelize.NewFile()

	name := sheet.Name
	if name == "" {
		name = "Sheet1"
	}
	defaultSheet := f.GetSheetName(0)
	if name != defaultSheet {
		if err := f.SetSheetName(defaultSheet, name); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to name sheet %q: %w", name, err)
		}
	}

	if err := setRow(f, name, 1, toCells(sheet.Headers)); err != nil {
		f.Close()
		return nil, err
	}
	for i, row := range sheet.Rows {
		if err := setRow(f, name, i+2, row); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("invalid row %d: %w", rowNum, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to set row %d: %w", rowNum, err)
	}
	return nil
}

func toCells(headers []string) []interface{} {
	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return cells
}
