package predict

import (
	"context"
	"math"
	"sort"

	"reservation-prediction-backend/internal/model"
	"reservation-prediction-backend/internal/store"
)

// rankingHorizonDays is the prediction window; two full weeks so every weekday
// is represented at least twice.
const rankingHorizonDays = 14

var rankingWeekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}

// RoomOccupancy is one entry of a weekday ranking.
type RoomOccupancy struct {
	Room              string  `json:"room"`
	ExpectedOccupancy float64 `json:"expected_occupancy"`
}

// Ranking maps each working weekday to rooms ordered by expected occupancy.
type Ranking struct {
	Ranking map[string][]RoomOccupancy `json:"ranking"`
}

// PredictWeeklyRanking predicts the expected occupancy of every room for each
// weekday Monday through Friday and ranks rooms per weekday.
func (s *Service) PredictWeeklyRanking(ctx context.Context) (*Ranking, error) {
	records, err := s.source.FetchRecords(ctx, store.RecordFilter{})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}

	byRoom := groupByRoom(records)
	rooms := make([]string, 0, len(byRoom))
	for room := range byRoom {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)

	// expected occupancy per room, indexed 0=Monday .. 4=Friday
	perRoom := make(map[string][5]float64, len(rooms))
	for _, room := range rooms {
		perRoom[room] = expectedByWeekday(byRoom[room])
	}

	ranking := make(map[string][]RoomOccupancy, len(rankingWeekdays))
	for wk, day := range rankingWeekdays {
		entries := make([]RoomOccupancy, 0, len(rooms))
		for _, room := range rooms {
			entries = append(entries, RoomOccupancy{Room: room, ExpectedOccupancy: perRoom[room][wk]})
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].ExpectedOccupancy > entries[j].ExpectedOccupancy
		})
		ranking[day] = entries
	}

	return &Ranking{Ranking: ranking}, nil
}

func groupByRoom(records []model.ReservationHistory) map[string][]model.ReservationHistory {
	byRoom := make(map[string][]model.ReservationHistory)
	for _, r := range records {
		byRoom[r.RoomName] = append(byRoom[r.RoomName], r)
	}
	return byRoom
}

// expectedByWeekday predicts daily counts for the next two weeks and averages
// them per weekday, normalized to [0,1] by the room's own denominator.
func expectedByWeekday(records []model.ReservationHistory) [5]float64 {
	counts := dailyCounts(records)
	y := make([]float64, len(counts))
	for i, c := range counts {
		y[i] = c.count
	}
	denom := denominator(y)
	lastDate := counts[len(counts)-1].date

	preds := make([]float64, rankingHorizonDays)
	if len(counts) < 3 {
		// Sparse history: predict each future day from the historical mean of
		// its weekday, or the overall mean for weekdays never observed.
		wkMeans := weekdayMeans(counts)
		overall := mean(y)
		for i := range preds {
			d := lastDate.AddDate(0, 0, i+1)
			if m, ok := wkMeans[weekdayIndex(d)]; ok {
				preds[i] = m
			} else {
				preds[i] = overall
			}
		}
	} else {
		slope, intercept := leastSquares(y)
		for i := range preds {
			preds[i] = intercept + slope*float64(len(counts)+i)
		}
	}
	clipNonNegative(preds)

	buckets := make(map[int][]float64, 7)
	for i, p := range preds {
		wk := weekdayIndex(lastDate.AddDate(0, 0, i+1))
		buckets[wk] = append(buckets[wk], p)
	}

	var expected [5]float64
	for wk := 0; wk < 5; wk++ {
		vals := buckets[wk]
		if len(vals) == 0 {
			expected[wk] = 0.0
			continue
		}
		expected[wk] = math.Min(round2(mean(vals)/denom), 1.0)
	}
	return expected
}

// weekdayMeans averages historical daily counts per weekday (0=Monday).
func weekdayMeans(counts []dailyCount) map[int]float64 {
	sums := make(map[int]float64)
	ns := make(map[int]int)
	for _, c := range counts {
		wk := weekdayIndex(c.date)
		sums[wk] += c.count
		ns[wk]++
	}
	means := make(map[int]float64, len(sums))
	for wk, sum := range sums {
		means[wk] = sum / float64(ns[wk])
	}
	return means
}
