package predict

import (
	"context"
	"sort"
	"strings"

	"reservation-prediction-backend/internal/store"
)

// Pattern holds the busiest and quietest weekday detected for a room.
type Pattern struct {
	PeakDay string `json:"peak_day"`
	LowDay  string `json:"low_day"`
}

// SeasonalPatterns detects, per room, the weekday with the most and fewest
// reservations across the whole history.
func (s *Service) SeasonalPatterns(ctx context.Context) (map[string]Pattern, error) {
	records, err := s.source.FetchRecords(ctx, store.RecordFilter{})
	if err != nil {
		return nil, err
	}

	// count per (room, weekday name)
	counts := make(map[string]map[string]int)
	for _, r := range records {
		if r.RoomName == "" || r.StartTime.IsZero() {
			continue
		}
		day := strings.ToLower(r.StartTime.Weekday().String())
		if counts[r.RoomName] == nil {
			counts[r.RoomName] = make(map[string]int)
		}
		counts[r.RoomName][day]++
	}
	if len(counts) == 0 {
		return nil, ErrNoData
	}

	results := make(map[string]Pattern, len(counts))
	for room, byDay := range counts {
		// Ties resolve to the alphabetically first weekday.
		days := make([]string, 0, len(byDay))
		for day := range byDay {
			days = append(days, day)
		}
		sort.Strings(days)

		peak, low := days[0], days[0]
		for _, day := range days[1:] {
			if byDay[day] > byDay[peak] {
				peak = day
			}
			if byDay[day] < byDay[low] {
				low = day
			}
		}
		results[room] = Pattern{PeakDay: peak, LowDay: low}
	}
	return results, nil
}
