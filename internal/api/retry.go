package api

import (
	"context"
	"fmt"
	"time"

	"github.com/javiermolinar/podium/internal/debuglog"
	"github.com/javiermolinar/podium/internal/leaderboard"
)

// RetryPolicy bounds FetchWithRetry.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// FetchWithRetry retries failed fetches with linear backoff (baseDelay * attempt).
// Every failure kind is retried alike. Only the last failure is returned.
func (c *Client) FetchWithRetry(ctx context.Context, q leaderboard.Query, maxAttempts int, baseDelay time.Duration) (leaderboard.ResultSet, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		rs, err := c.FetchLeaderboard(ctx, q)
		if err == nil {
			return rs, nil
		}
		lastErr = err
		debuglog.Log("FETCH_ATTEMPT_FAILED", map[string]any{
			"attempt":      attempt,
			"max_attempts": maxAttempts,
			"error":        err.Error(),
		})

		if attempt == maxAttempts {
			break
		}
		if err := c.sleep(ctx, baseDelay*time.Duration(attempt)); err != nil {
			return leaderboard.ResultSet{}, fmt.Errorf("waiting to retry: %w", err)
		}
	}

	if maxAttempts > 1 {
		return leaderboard.ResultSet{}, fmt.Errorf("after %d attempts: %w", maxAttempts, lastErr)
	}
	return leaderboard.ResultSet{}, lastErr
}

// Fetcher returns a leaderboard.Fetcher applying the retry policy.
// A policy of one attempt or fewer fetches once.
func (c *Client) Fetcher(p RetryPolicy) leaderboard.Fetcher {
	if p.MaxAttempts <= 1 {
		return c
	}
	return leaderboard.FetcherFunc(func(ctx context.Context, q leaderboard.Query) (leaderboard.ResultSet, error) {
		return c.FetchWithRetry(ctx, q, p.MaxAttempts, p.BaseDelay)
	})
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
