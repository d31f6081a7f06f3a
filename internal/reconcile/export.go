package reconcile

import (
	"fmt"
	"io"
	"time"

	"till-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportSheet     = "Records"
)

var exportHeader = []any{
	"Date", "Opening M-Pesa", "Opening Cash", "Total Sales", "Closing M-Pesa", "Closing Cash",
	"Expenses", "Profit", "Expected", "Total Now", "Unaccounted",
}

func ExportFilename(now time.Time) string {
	return fmt.Sprintf("daily-records-%s.xlsx", now.Format("2006-01-02"))
}

// WriteWorkbook writes records as a single sheet workbook, one row per
// record in the given order.
func WriteWorkbook(w io.Writer, records []models.DailyRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return err
	}
	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			r.Date.Format("2006-01-02 15:04"),
			r.OpeningMpesa, r.OpeningCash, r.TotalSales, r.ClosingMpesa, r.ClosingCash,
			r.Expenses, r.Profit, r.Expected, r.TotalNow, r.ExpectedDiff,
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}
