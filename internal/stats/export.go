package stats

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/beheryahmed1991/subscription-tracker/internal/billing"
)

const (
	breakdownSheet  = "Breakdown"
	categoriesSheet = "Categories"
)

// WriteWorkbook renders both reports as an xlsx workbook.
func WriteWorkbook(w io.Writer, summary billing.Summary, byCategory billing.CategorySummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", breakdownSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(categoriesSheet); err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	amountHeader := fmt.Sprintf("Amount (%s per %s)", summary.Currency, summary.Period)
	if err := f.SetSheetRow(breakdownSheet, "A1", &[]any{"Name", "Category", "Color", amountHeader}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := 2
	for _, line := range summary.Breakdown {
		var categoryID any
		if line.CategoryID != nil {
			categoryID = *line.CategoryID
		}
		if err := writeRow(f, breakdownSheet, row, line.Name, categoryID, line.Color, line.Value); err != nil {
			return err
		}
		row++
	}
	if err := writeRow(f, breakdownSheet, row, "Total", nil, nil, summary.Total); err != nil {
		return err
	}

	if err := f.SetSheetRow(categoriesSheet, "A1", &[]any{"Category", "Color", amountHeader}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, item := range byCategory.Items {
		if err := writeRow(f, categoriesSheet, i+2, item.Name, item.Color, item.Value); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}
