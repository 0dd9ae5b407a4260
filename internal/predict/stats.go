package predict

import (
	"math"
	"sort"
	"time"

	"reservation-prediction-backend/internal/model"
)

// dailyCount is the number of reservations observed on one calendar date.
type dailyCount struct {
	date  time.Time
	count float64
}

// dailyCounts reduces a start-time-ordered record slice to one count per
// distinct calendar date, preserving chronological order.
func dailyCounts(records []model.ReservationHistory) []dailyCount {
	var counts []dailyCount
	index := make(map[time.Time]int)
	for _, r := range records {
		d := dateOf(r.StartTime)
		if i, ok := index[d]; ok {
			counts[i].count++
			continue
		}
		index[d] = len(counts)
		counts = append(counts, dailyCount{date: d, count: 1})
	}
	return counts
}

// dateOf truncates a timestamp to its calendar date, anchored at midnight UTC
// so that date arithmetic is DST-free.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// weekdayIndex maps a date to 0=Monday .. 6=Sunday.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// leastSquares fits y = intercept + slope*t over t = 0..n-1.
func leastSquares(y []float64) (slope, intercept float64) {
	n := float64(len(y))
	if n < 2 {
		return 0, mean(y)
	}

	sumT := 0.0
	sumY := 0.0
	for i, v := range y {
		sumT += float64(i)
		sumY += v
	}
	meanT := sumT / n
	meanY := sumY / n

	num := 0.0
	den := 0.0
	for i, v := range y {
		dt := float64(i) - meanT
		num += dt * (v - meanY)
		den += dt * dt
	}
	if den == 0 {
		return 0, meanY
	}

	slope = num / den
	intercept = meanY - slope*meanT
	return slope, intercept
}

// percentile returns the p-th percentile (0..100) of values using linear
// interpolation between closest ranks.
func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// denominator computes the normalization divisor for occupancy probabilities:
// the largest of the 90th percentile, the historical maximum, the default room
// capacity and 1.
func denominator(y []float64) float64 {
	denom := math.Max(percentile(y, 90), DefaultRoomCapacity)
	for _, v := range y {
		if v > denom {
			denom = v
		}
	}
	return math.Max(denom, 1.0)
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0 // avoid negative zero
	}
	return r
}

// clipNonNegative floors negative regression output at zero.
func clipNonNegative(values []float64) {
	for i, v := range values {
		if v < 0 {
			values[i] = 0
		}
	}
}
