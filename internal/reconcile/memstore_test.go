package reconcile

import (
	"context"
	"errors"
	"sort"
	"sync"

	"till-backend/internal/models"
)

var errStoreDown = errors.New("connection refused")

// memStore is an in-memory Store for engine tests.
type memStore struct {
	mu      sync.Mutex
	records []models.DailyRecord
	nextID  uint
	fail    error
	writes  int
}

func (s *memStore) Insert(_ context.Context, rec *models.DailyRecord) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return 0, s.fail
	}
	s.nextID++
	rec.ID = s.nextID
	s.records = append(s.records, *rec)
	s.writes++
	return rec.ID, nil
}

func (s *memStore) FindAllByDateDesc(context.Context) ([]models.DailyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return nil, s.fail
	}
	out := make([]models.DailyRecord, len(s.records))
	copy(out, s.records)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *memStore) UpdateField(_ context.Context, id uint, field string, value float64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return 0, s.fail
	}
	if field != FieldExpectedDiff {
		return 0, errors.New("field not updatable")
	}
	for i := range s.records {
		if s.records[i].ID == id {
			s.records[i].ExpectedDiff = value
			s.writes++
			return 1, nil
		}
	}
	return 0, nil
}

func (s *memStore) snapshot() []models.DailyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.DailyRecord, len(s.records))
	copy(out, s.records)
	return out
}
