// Package sync copies reservation records from the upstream reservations
// service into local storage, where the prediction engine reads them.
package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"reservation-prediction-backend/config"
	"reservation-prediction-backend/internal/model"
	"reservation-prediction-backend/internal/store"
)

// Service periodically fetches reservations and persists them through the store.
type Service struct {
	cfg    *config.Config
	store  store.Store
	client *http.Client
}

// NewService creates and initializes a new sync service.
func NewService(cfg *config.Config, st store.Store) *Service {
	return &Service{
		cfg:   cfg,
		store: st,
		client: &http.Client{
			Timeout: time.Duration(cfg.Sync.TimeoutSeconds) * time.Second,
		},
	}
}

// Run starts the collection process in a loop until the context is cancelled.
func (s *Service) Run(ctx context.Context) {
	if !s.cfg.Sync.Enabled {
		log.Println("Reservation sync is disabled. Not starting.")
		return
	}
	log.Println("Starting reservation sync service...")

	if _, err := s.CollectOnce(ctx); err != nil {
		log.Printf("Initial sync cycle failed: %v", err)
	}

	timer := time.NewTimer(s.cfg.Sync.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Sync service shutting down.")
			return
		case <-timer.C:
			if _, err := s.CollectOnce(ctx); err != nil {
				log.Printf("Sync cycle failed: %v", err)
			}
			timer.Reset(s.cfg.Sync.Interval)
		}
	}
}

// CollectOnce performs a single collection cycle and returns the number of
// newly imported records. Items that fail to parse are skipped individually.
func (s *Service) CollectOnce(ctx context.Context) (int, error) {
	items, err := s.fetchReservations(ctx)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		log.Println("Sync cycle finished: upstream returned no reservations.")
		return 0, nil
	}

	loc, err := time.LoadLocation(s.cfg.Sync.Timezone)
	if err != nil {
		return 0, fmt.Errorf("failed to load timezone %q: %w", s.cfg.Sync.Timezone, err)
	}

	now := time.Now().UTC()
	records := make([]model.ReservationHistory, 0, len(items))
	for _, item := range items {
		start, errStart := parseTimestamp(item.DateHourStart, loc)
		end, errEnd := parseTimestamp(item.DateHourEnd, loc)
		if errStart != nil || errEnd != nil {
			log.Printf("Warning: skipping reservation %d with unparseable time range (%q .. %q)",
				item.ID, item.DateHourStart, item.DateHourEnd)
			continue
		}

		records = append(records, model.ReservationHistory{
			ReservationID: item.ID,
			RoomName:      item.RoomName,
			PeopleEmail:   item.PeopleEmail,
			Articles:      strings.Join(item.Articles, ", "),
			StartTime:     start,
			EndTime:       end,
			FetchedAt:     now,
		})
	}
	if len(records) == 0 {
		return 0, nil
	}

	imported, err := s.store.SaveReservations(ctx, records)
	if err != nil {
		return 0, err
	}
	log.Printf("Sync cycle finished: %d fetched, %d newly imported.", len(items), imported)
	return imported, nil
}

func (s *Service) fetchReservations(ctx context.Context) ([]APIReservation, error) {
	url := strings.TrimSuffix(s.cfg.Sync.BaseURL, "/") + "/reservation"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range s.cfg.Sync.Headers {
		req.Header.Set(key, value)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var items []APIReservation
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reservations response: %w", err)
	}
	return items, nil
}

// parseTimestamp accepts both timestamp layouts the reservations service has
// been observed to emit.
func parseTimestamp(s string, loc *time.Location) (time.Time, error) {
	layouts := []string{"2006-01-02T15:04:05", "2006-01-02 15:04:05"}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
