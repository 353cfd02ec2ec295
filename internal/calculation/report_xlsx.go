package calculation

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

var xlsxHeaders = []string{
	"ID", "First Name", "Last Name", "Department", "Hourly Rate",
	"Working Days", "Regular Working Hours", "Overtime Hours", "Earnings",
}

// BuildXLSX renders the report rows as a single-sheet workbook.
func BuildXLSX(rows []CalculationRow) (*excelize.File, error) {
	f := excelize.NewFile()

	const sheet = "Earnings"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, header := range xlsxHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []any{
			row.ID, row.FirstName, row.LastName, row.Department, row.HourlyRate,
			row.WorkingDays, row.RegularWorkingHours, row.OvertimeHours, row.Earnings,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f, nil
}
