package predict

import (
	"context"
	"fmt"
	"math"
	"time"

	"reservation-prediction-backend/internal/store"
)

// Forecast is the occupancy prediction for one room over a future date range.
type Forecast struct {
	Room                  string  `json:"room"`
	OccupationProbability float64 `json:"occupation_probability"`
	Trend                 string  `json:"trend"`
	Recommendation        string  `json:"recommendation"`
}

var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDateTime(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// PredictOccupancy estimates the probability of the room being occupied
// between the two dates, based on its reservation history.
func (s *Service) PredictOccupancy(ctx context.Context, room, startStr, endStr string) (*Forecast, error) {
	start, err := parseDateTime(startStr)
	if err != nil {
		return nil, err
	}
	end, err := parseDateTime(endStr)
	if err != nil {
		return nil, err
	}

	horizon := int(dateOf(end).Sub(dateOf(start)).Hours()/24) + 1
	if horizon < 1 {
		return nil, fmt.Errorf("%w: end date precedes start date", ErrInvalidDate)
	}

	records, err := s.source.FetchRecords(ctx, store.RecordFilter{Room: room})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}

	counts := dailyCounts(records)
	y := make([]float64, len(counts))
	for i, c := range counts {
		y[i] = c.count
	}

	var meanPred float64
	if len(counts) < 2 {
		// Too little history to fit a model; fall back to the historical mean.
		meanPred = mean(y)
	} else {
		slope, intercept := leastSquares(y)
		preds := make([]float64, horizon)
		for i := range preds {
			preds[i] = intercept + slope*float64(len(counts)+i)
		}
		clipNonNegative(preds)
		meanPred = mean(preds)
	}

	probability := round2(math.Min(meanPred/denominator(y), 1.0))

	var trend, recommendation string
	switch {
	case probability > 0.7:
		trend = "high"
		recommendation = "Careful! Rooms almost full. Try another time slot."
	case probability > 0.4:
		trend = "medium"
		recommendation = "Low availability. Book soon or consider another date."
	default:
		trend = "low"
		recommendation = "Good availability! Book your room now."
	}

	return &Forecast{
		Room:                  room,
		OccupationProbability: probability,
		Trend:                 trend,
		Recommendation:        recommendation,
	}, nil
}
