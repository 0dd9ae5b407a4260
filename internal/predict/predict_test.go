package predict

import (
	"context"
	"testing"
	"time"

	"reservation-prediction-backend/internal/model"
	"reservation-prediction-backend/internal/store"
)

// stubSource serves records from memory, honoring the room filter the same
// way the real store does.
type stubSource struct {
	records []model.ReservationHistory
	err     error
}

func (s *stubSource) FetchRecords(_ context.Context, filter store.RecordFilter) ([]model.ReservationHistory, error) {
	if s.err != nil {
		return nil, s.err
	}
	if filter.Room == "" {
		return s.records, nil
	}
	var out []model.ReservationHistory
	for _, r := range s.records {
		if r.RoomName == filter.Room {
			out = append(out, r)
		}
	}
	return out, nil
}

// res builds one reservation starting on the given day.
func res(t *testing.T, room, day, articles string) model.ReservationHistory {
	t.Helper()
	start, err := time.Parse("2006-01-02", day)
	if err != nil {
		t.Fatalf("bad test date %q: %v", day, err)
	}
	start = start.Add(9 * time.Hour)
	return model.ReservationHistory{
		RoomName:  room,
		Articles:  articles,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		FetchedAt: start,
	}
}

// seedDailyCounts produces, per consecutive day starting at firstDay, as many
// reservations as the corresponding count.
func seedDailyCounts(t *testing.T, room, firstDay string, counts []int) []model.ReservationHistory {
	t.Helper()
	first, err := time.Parse("2006-01-02", firstDay)
	if err != nil {
		t.Fatalf("bad test date %q: %v", firstDay, err)
	}
	var records []model.ReservationHistory
	for i, n := range counts {
		day := first.AddDate(0, 0, i).Format("2006-01-02")
		for j := 0; j < n; j++ {
			records = append(records, res(t, room, day, ""))
		}
	}
	return records
}
