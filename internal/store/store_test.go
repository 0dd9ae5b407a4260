package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"reservation-prediction-backend/internal/model"
)

// newMockDB creates a GORM connection backed by sqlmock.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestFetchRecords_RoomFilter(t *testing.T) {
	gormDB, mock := newMockDB(t)
	s := NewGormStore(gormDB)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "reservation_history" WHERE room_name = $1 ORDER BY start_time ASC`)).
		WithArgs("sala1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "reservation_id", "room_name", "start_time", "end_time", "fetched_at"}).
			AddRow(1, 11, "sala1", now.Add(-48*time.Hour), now.Add(-47*time.Hour), now).
			AddRow(2, 12, "sala1", now.Add(-24*time.Hour), now.Add(-23*time.Hour), now))

	records, err := s.FetchRecords(context.Background(), RecordFilter{Room: "sala1"})
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, int64(11), records[0].ReservationID)
	assert.Equal(t, "sala1", records[1].RoomName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchRecords_Unfiltered(t *testing.T) {
	gormDB, mock := newMockDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "reservation_history" ORDER BY start_time ASC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "reservation_id", "room_name"}))

	records, err := s.FetchRecords(context.Background(), RecordFilter{})
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchRecords_ConnectivityError(t *testing.T) {
	gormDB, mock := newMockDB(t)
	s := NewGormStore(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "reservation_history" ORDER BY start_time ASC`)).
		WillReturnError(assert.AnError)

	_, err := s.FetchRecords(context.Background(), RecordFilter{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

// newSQLiteStore backs the store with an in-memory database, so the upsert
// conflict behavior is exercised for real.
func newSQLiteStore(t *testing.T) Store {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ReservationHistory{}))
	return NewGormStore(db)
}

func TestSaveReservations_SkipsDuplicates(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	rec := func(id int64) model.ReservationHistory {
		return model.ReservationHistory{
			ReservationID: id,
			RoomName:      "sala1",
			StartTime:     now.Add(time.Duration(id) * time.Hour),
			EndTime:       now.Add(time.Duration(id+1) * time.Hour),
			FetchedAt:     now,
		}
	}

	imported, err := s.SaveReservations(ctx, []model.ReservationHistory{rec(1), rec(2), rec(3)})
	require.NoError(t, err)
	assert.Equal(t, 3, imported)

	// Overlapping batch: only the unseen reservation lands.
	imported, err = s.SaveReservations(ctx, []model.ReservationHistory{rec(2), rec(3), rec(4)})
	require.NoError(t, err)
	assert.Equal(t, 1, imported)

	records, err := s.FetchRecords(ctx, RecordFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 4)
}

func TestSaveReservations_EmptyBatch(t *testing.T) {
	s := newSQLiteStore(t)

	imported, err := s.SaveReservations(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, imported)
}
