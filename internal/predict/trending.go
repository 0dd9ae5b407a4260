package predict

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"reservation-prediction-backend/internal/store"
)

// ArticleTrend reports the usage trend of one reserved article.
type ArticleTrend struct {
	Article string  `json:"article"`
	Trend   string  `json:"trend"`
	Trust   float64 `json:"trust"`
}

// TrendingResources analyzes whether usage of each reserved article is rising
// or falling, with a trust score that grows with the amount of history.
// Articles seen on fewer than two distinct days are excluded.
func (s *Service) TrendingResources(ctx context.Context) ([]ArticleTrend, error) {
	records, err := s.source.FetchRecords(ctx, store.RecordFilter{})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}

	// daily usage count per article
	usage := make(map[string]map[time.Time]float64)
	for _, r := range records {
		for _, art := range parseArticles(r.Articles) {
			if usage[art] == nil {
				usage[art] = make(map[time.Time]float64)
			}
			usage[art][dateOf(r.StartTime)]++
		}
	}
	if len(usage) == 0 {
		return nil, ErrNoData
	}

	articles := make([]string, 0, len(usage))
	for art := range usage {
		articles = append(articles, art)
	}
	sort.Strings(articles)

	var results []ArticleTrend
	for _, art := range articles {
		byDate := usage[art]
		if len(byDate) < 2 {
			continue
		}

		dates := make([]time.Time, 0, len(byDate))
		for d := range byDate {
			dates = append(dates, d)
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

		y := make([]float64, len(dates))
		for i, d := range dates {
			y[i] = byDate[d]
		}

		var changePct, trust float64
		if len(y) < 3 {
			changePct = (y[len(y)-1] - y[0]) / math.Max(y[0], 1) * 100
			trust = 0.4
		} else {
			slope, _ := leastSquares(y)
			changePct = slope / math.Max(mean(y), 1) * 100
			trust = math.Min(0.3+float64(len(y))*0.1, 0.95)
		}

		results = append(results, ArticleTrend{
			Article: art,
			Trend:   formatPct(changePct),
			Trust:   round2(trust),
		})
	}
	if len(results) == 0 {
		return nil, ErrNoData
	}

	// The formatted value, not the raw one, is the sort key.
	sort.SliceStable(results, func(i, j int) bool {
		return parsePct(results[i].Trend) > parsePct(results[j].Trend)
	})
	return results, nil
}

// parseArticles tolerates both storage encodings of the articles column: a
// string-encoded list literal and a plain comma-separated list.
func parseArticles(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	if strings.HasPrefix(s, "[") {
		var list []string
		if err := json.Unmarshal([]byte(s), &list); err == nil {
			var out []string
			for _, a := range list {
				if a = strings.TrimSpace(a); a != "" {
					out = append(out, a)
				}
			}
			return out
		}
		// Single-quoted list literal; strip the brackets and comma-split.
		s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.Trim(strings.TrimSpace(part), `'"`))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// formatPct renders a signed percentage with at most two decimals and at
// least one, e.g. +12.5%, -5.33%, +0.0%.
func formatPct(v float64) string {
	v = round2(v)
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	if v >= 0 {
		s = "+" + s
	}
	return s + "%"
}

func parsePct(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	return v
}
