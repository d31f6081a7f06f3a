package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRecord_ShiftExample(t *testing.T) {
	now := time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC)
	rec := NewRecord(SubmitForm{
		OpeningMpesa: 100,
		OpeningCash:  50,
		TotalSales:   1000,
		ClosingMpesa: 700,
		ClosingCash:  400,
		Expenses:     80,
	}, now)

	assert.Equal(t, 920.0, rec.Profit)
	assert.Equal(t, 1070.0, rec.Expected)
	assert.Equal(t, 1100.0, rec.TotalNow)
	assert.Equal(t, -30.0, rec.ExpectedDiff)
	assert.Equal(t, now, rec.Date)
	assert.Zero(t, rec.ID)
}

func TestNewRecord_DerivedFields(t *testing.T) {
	tests := []struct {
		name string
		in   SubmitForm
	}{
		{"zeros", SubmitForm{}},
		{"balanced", SubmitForm{OpeningCash: 200, TotalSales: 300, ClosingCash: 450, Expenses: 50}},
		{"surplus", SubmitForm{OpeningMpesa: 10.5, OpeningCash: 0.25, TotalSales: 99.75, ClosingMpesa: 60, ClosingCash: 70, Expenses: 1.5}},
		{"negative inputs", SubmitForm{OpeningMpesa: -5, OpeningCash: 5, TotalSales: -20, ClosingMpesa: -1, ClosingCash: 3, Expenses: -7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.in
			rec := NewRecord(f, time.Now())

			expected := f.OpeningMpesa + f.OpeningCash + f.TotalSales - f.Expenses
			totalNow := f.ClosingMpesa + f.ClosingCash
			assert.Equal(t, f.TotalSales-f.Expenses, rec.Profit)
			assert.Equal(t, expected, rec.Expected)
			assert.Equal(t, totalNow, rec.TotalNow)
			assert.Equal(t, expected-totalNow, rec.ExpectedDiff)

			assert.Equal(t, f.OpeningMpesa, rec.OpeningMpesa)
			assert.Equal(t, f.OpeningCash, rec.OpeningCash)
			assert.Equal(t, f.TotalSales, rec.TotalSales)
			assert.Equal(t, f.ClosingMpesa, rec.ClosingMpesa)
			assert.Equal(t, f.ClosingCash, rec.ClosingCash)
			assert.Equal(t, f.Expenses, rec.Expenses)
		})
	}
}
