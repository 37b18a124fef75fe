package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelGenerator turns a rendered list screen into a spreadsheet: one
// header row, one row per entity, already-formatted cell values.
type ExcelGenerator struct{}

func NewExcelGenerator() *ExcelGenerator {
	return &ExcelGenerator{}
}

func (g *ExcelGenerator) Generate(title string, header []string, rows [][]string) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Export"
	file.SetSheetName(file.GetSheetName(0), sheet)

	titleStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 13}})
	if err != nil {
		return nil, fmt.Errorf("title style: %w", err)
	}
	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	if err := file.SetCellValue(sheet, "A1", title); err != nil {
		return nil, err
	}
	if err := file.SetCellStyle(sheet, "A1", "A1", titleStyle); err != nil {
		return nil, err
	}

	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 3)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, cell, name); err != nil {
			return nil, err
		}
		if err := file.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+4)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	for col := range header {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetColWidth(sheet, name, name, 24); err != nil {
			return nil, err
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
