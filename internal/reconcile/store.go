package reconcile

import (
	"context"
	"fmt"

	"till-backend/internal/models"

	"gorm.io/gorm"
)

// FieldExpectedDiff is the only record column UpdateField accepts.
const FieldExpectedDiff = "expected_diff"

// Store persists reconciliation records.
type Store interface {
	Insert(ctx context.Context, rec *models.DailyRecord) (uint, error)
	FindAllByDateDesc(ctx context.Context) ([]models.DailyRecord, error)
	UpdateField(ctx context.Context, id uint, field string, value float64) (int64, error)
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Insert(ctx context.Context, rec *models.DailyRecord) (uint, error) {
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return 0, err
	}
	return rec.ID, nil
}

// FindAllByDateDesc returns every record, newest first. Records sharing a
// timestamp come back in reverse insertion order.
func (s *GormStore) FindAllByDateDesc(ctx context.Context) ([]models.DailyRecord, error) {
	records := []models.DailyRecord{}
	if err := s.db.WithContext(ctx).Order("date DESC").Order("id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *GormStore) UpdateField(ctx context.Context, id uint, field string, value float64) (int64, error) {
	if field != FieldExpectedDiff {
		return 0, fmt.Errorf("field %q is not updatable", field)
	}
	res := s.db.WithContext(ctx).Model(&models.DailyRecord{}).Where("id = ?", id).Update(field, value)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
