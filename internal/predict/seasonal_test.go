package predict

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reservation-prediction-backend/internal/model"
)

func TestSeasonalPatterns_PeakAndLowDays(t *testing.T) {
	// sala1: three Mondays, one Friday.
	records := []model.ReservationHistory{
		res(t, "sala1", "2025-01-06", ""),
		res(t, "sala1", "2025-01-13", ""),
		res(t, "sala1", "2025-01-20", ""),
		res(t, "sala1", "2025-01-10", ""),
	}
	svc := NewService(&stubSource{records: records})

	patterns, err := svc.SeasonalPatterns(context.Background())
	require.NoError(t, err)

	require.Contains(t, patterns, "sala1")
	assert.Equal(t, "monday", patterns["sala1"].PeakDay)
	assert.Equal(t, "friday", patterns["sala1"].LowDay)
}

func TestSeasonalPatterns_TiesResolveAlphabetically(t *testing.T) {
	// Two Tuesdays and two Thursdays: every count equal, so both peak and low
	// fall on the alphabetically first weekday.
	records := []model.ReservationHistory{
		res(t, "sala2", "2025-01-07", ""),
		res(t, "sala2", "2025-01-14", ""),
		res(t, "sala2", "2025-01-09", ""),
		res(t, "sala2", "2025-01-16", ""),
	}
	svc := NewService(&stubSource{records: records})

	patterns, err := svc.SeasonalPatterns(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "thursday", patterns["sala2"].PeakDay)
	assert.Equal(t, "thursday", patterns["sala2"].LowDay)
}

func TestSeasonalPatterns_SkipsRecordsWithoutRoom(t *testing.T) {
	records := []model.ReservationHistory{
		res(t, "", "2025-01-06", ""),
		res(t, "sala1", "2025-01-07", ""),
	}
	svc := NewService(&stubSource{records: records})

	patterns, err := svc.SeasonalPatterns(context.Background())
	require.NoError(t, err)

	assert.Len(t, patterns, 1)
	assert.Contains(t, patterns, "sala1")
}

func TestSeasonalPatterns_NoEligibleRecords(t *testing.T) {
	records := []model.ReservationHistory{res(t, "", "2025-01-06", "")}
	svc := NewService(&stubSource{records: records})

	_, err := svc.SeasonalPatterns(context.Background())
	assert.ErrorIs(t, err, ErrNoData)
}
