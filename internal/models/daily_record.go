package models

import "time"

// DailyRecord is one shift's till reconciliation. The derived fields are
// computed once at creation; only ExpectedDiff may change afterwards.
type DailyRecord struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OpeningMpesa float64 `gorm:"not null" json:"openingMpesa"`
	OpeningCash  float64 `gorm:"not null" json:"openingCash"`
	TotalSales   float64 `gorm:"not null" json:"totalSales"`
	ClosingMpesa float64 `gorm:"not null" json:"closingMpesa"`
	ClosingCash  float64 `gorm:"not null" json:"closingCash"`
	Expenses     float64 `gorm:"not null" json:"expenses"`

	Profit       float64 `gorm:"not null" json:"profit"`
	Expected     float64 `gorm:"not null" json:"expected"`
	TotalNow     float64 `gorm:"not null" json:"totalNow"`
	ExpectedDiff float64 `gorm:"not null" json:"expectedDiff"` // unaccounted amount, correctable

	Date time.Time `gorm:"index;not null" json:"date"`
}
