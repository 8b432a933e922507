package exchange

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"agratem/internal/pricing"
)

// ExportExcel renders the current price table as an Excel workbook, one
// row per price-tier entry in the same ten-column order as the CSV export.
func (e *Exchanger) ExportExcel(ctx context.Context) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Prices"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	for col, header := range csvHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellStyle(sheet, "A1", "J1", style)

	for rowIdx, row := range e.source.Rows(ctx) {
		data := []interface{}{row.Size, row.Level, row.CustomerType}
		for _, key := range pricing.DurationKeys {
			data = append(data, row.Prices[key])
		}
		if row.ID != nil {
			data = append(data, *row.ID)
		} else {
			data = append(data, "")
		}

		for col, value := range data {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
