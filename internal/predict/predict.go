// Package predict implements the analytical engine of the service: occupancy
// forecasting, weekly occupancy ranking, seasonal pattern detection and
// resource trend analysis over historical reservation records.
//
// Every component is a stateless, read-only function of the record set: one
// bulk fetch, in-memory aggregation, deterministic output. Nothing here is
// cached between requests.
package predict

import (
	"context"
	"errors"

	"reservation-prediction-backend/internal/model"
	"reservation-prediction-backend/internal/store"
)

// DefaultRoomCapacity normalizes occupancy probabilities when the real room
// capacity is unknown.
const DefaultRoomCapacity = 10

var (
	// ErrNoData signals that no historical records exist for the requested
	// scope. It is an expected outcome, not a fault.
	ErrNoData = errors.New("no historical data")

	// ErrInvalidDate signals an unparseable date string in the request.
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS")
)

// RecordSource is the slice of the store the engine depends on.
type RecordSource interface {
	FetchRecords(ctx context.Context, filter store.RecordFilter) ([]model.ReservationHistory, error)
}

// Service bundles the four analytical components behind one record source.
type Service struct {
	source RecordSource
}

// NewService creates a prediction service reading from the given source.
func NewService(source RecordSource) *Service {
	return &Service{source: source}
}
