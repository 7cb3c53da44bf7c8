package report

import (
	"fmt"

	"github.com/dtnitsch/geosat-report/models"
	"github.com/xuri/excelize/v2"
)

const (
	SheetAll     = "Sheet1"
	SheetRevised = "Sheet1_Revised"
)

// excelize border styles
const (
	borderThin  = 1
	borderThick = 5
)

func borders(style int) []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	out := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		out = append(out, excelize.Border{Type: side, Color: "000000", Style: style})
	}
	return out
}

// WriteWorkbook writes every record to Sheet1 and the Revised subset to a
// formatted Sheet1_Revised, then saves the workbook at path.
func WriteWorkbook(path string, records []models.SatelliteRecord) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	boldID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := writeSheet(f, SheetAll, records); err != nil {
		return err
	}
	if err := styleRange(f, SheetAll, 1, 1, boldID); err != nil {
		return err
	}

	revised := Revised(records)
	if _, err := f.NewSheet(SheetRevised); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SheetRevised, err)
	}
	if err := writeSheet(f, SheetRevised, revised); err != nil {
		return err
	}

	headerID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Border:    borders(borderThick),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create revised header style: %w", err)
	}
	cellID, err := f.NewStyle(&excelize.Style{Border: borders(borderThin)})
	if err != nil {
		return fmt.Errorf("failed to create revised cell style: %w", err)
	}
	if err := styleRange(f, SheetRevised, 1, 1, headerID); err != nil {
		return err
	}
	if len(revised) > 0 {
		if err := styleRange(f, SheetRevised, 2, len(revised)+1, cellID); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, records []models.SatelliteRecord) error {
	if err := setRow(f, sheet, 1, Columns); err != nil {
		return err
	}
	for i, rec := range records {
		if err := setRow(f, sheet, i+2, Row(rec)); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

// styleRange applies styleID to every column of rows first..last.
func styleRange(f *excelize.File, sheet string, first, last, styleID int) error {
	from, err := excelize.CoordinatesToCellName(1, first)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(len(Columns), last)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, from, to, styleID); err != nil {
		return fmt.Errorf("failed to style %s %s:%s: %w", sheet, from, to, err)
	}
	return nil
}
