package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"reservation-prediction-backend/internal/model"
)

// ErrUnavailable marks a failure to reach the underlying database, as opposed
// to a query that succeeded but matched nothing.
var ErrUnavailable = errors.New("storage unavailable")

// RecordFilter narrows a bulk fetch. The zero value fetches everything.
type RecordFilter struct {
	Room string
}

// Store defines the interface for all database operations.
type Store interface {
	// FetchRecords returns reservation history ordered by start time ascending.
	FetchRecords(ctx context.Context, filter RecordFilter) ([]model.ReservationHistory, error)
	// SaveReservations inserts new reservation records, skipping ones whose
	// reservation_id is already stored. It returns the number actually inserted.
	SaveReservations(ctx context.Context, recs []model.ReservationHistory) (int, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) FetchRecords(ctx context.Context, filter RecordFilter) ([]model.ReservationHistory, error) {
	q := s.db.WithContext(ctx).Model(&model.ReservationHistory{})
	if filter.Room != "" {
		q = q.Where("room_name = ?", filter.Room)
	}

	var records []model.ReservationHistory
	if err := q.Order("start_time ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: fetch reservation history: %v", ErrUnavailable, err)
	}
	return records, nil
}

func (s *gormStore) SaveReservations(ctx context.Context, recs []model.ReservationHistory) (int, error) {
	if len(recs) == 0 {
		return 0, nil
	}

	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "reservation_id"}},
		DoNothing: true,
	}).Create(&recs)
	if res.Error != nil {
		return 0, fmt.Errorf("%w: save reservations: %v", ErrUnavailable, res.Error)
	}
	return int(res.RowsAffected), nil
}
