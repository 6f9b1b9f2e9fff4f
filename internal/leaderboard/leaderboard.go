// Package leaderboard defines the core domain types for podium.
package leaderboard

import (
	"context"
	"encoding/json"
	"strings"
)

// Trend is the backend-computed movement of an entrant since the last update.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// ParseTrend maps a wire value to a Trend.
// "neutral", empty and unknown values are treated as flat.
func ParseTrend(s string) Trend {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return TrendUp
	case "down":
		return TrendDown
	default:
		return TrendFlat
	}
}

// UnmarshalJSON decodes any string trend, normalizing unknown values to flat.
func (t *Trend) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseTrend(s)
	return nil
}

// Entrant is one ranked leaderboard row.
type Entrant struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Rank  int     `json:"rank"`
	Trend Trend   `json:"trend"`
}

// IsTop reports whether the entrant is on the podium (rank 1-3).
func (e Entrant) IsTop() bool {
	return e.Rank >= 1 && e.Rank <= 3
}

// ResultSet is one page of entrants plus pagination totals for a Query.
type ResultSet struct {
	Items      []Entrant
	TotalCount int
	TotalPages int
}

// Empty reports whether the page holds no entrants.
func (r ResultSet) Empty() bool {
	return len(r.Items) == 0
}

// TotalPagesFor returns ceil(totalCount/pageSize), or 0 when pageSize is not positive.
func TotalPagesFor(totalCount, pageSize int) int {
	if pageSize <= 0 || totalCount <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}

// Fetcher retrieves one page of the leaderboard for a query.
type Fetcher interface {
	// FetchLeaderboard returns the page described by q.
	// On failure no partial result is returned.
	FetchLeaderboard(ctx context.Context, q Query) (ResultSet, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, q Query) (ResultSet, error)

// FetchLeaderboard calls f.
func (f FetcherFunc) FetchLeaderboard(ctx context.Context, q Query) (ResultSet, error) {
	return f(ctx, q)
}
