package reconcile

import (
	"time"

	"till-backend/internal/models"
)

// NewRecord computes the derived figures for a submitted form and returns
// the record to persist. The arithmetic order is fixed.
func NewRecord(f SubmitForm, now time.Time) models.DailyRecord {
	profit := f.TotalSales - f.Expenses
	expected := f.OpeningMpesa + f.OpeningCash + f.TotalSales - f.Expenses
	totalNow := f.ClosingMpesa + f.ClosingCash

	return models.DailyRecord{
		OpeningMpesa: f.OpeningMpesa,
		OpeningCash:  f.OpeningCash,
		TotalSales:   f.TotalSales,
		ClosingMpesa: f.ClosingMpesa,
		ClosingCash:  f.ClosingCash,
		Expenses:     f.Expenses,
		Profit:       profit,
		Expected:     expected,
		TotalNow:     totalNow,
		ExpectedDiff: expected - totalNow,
		Date:         now,
	}
}
