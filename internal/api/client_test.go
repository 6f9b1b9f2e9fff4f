package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/javiermolinar/podium/internal/leaderboard"
)

type fakeUser struct {
	ID       int64
	Name     string
	Score    int
	Progress int
	Trend    string
}

// fakeLeaderboard serves the leaderboard contract over a fixed set of users.
func fakeLeaderboard(t *testing.T, users []fakeUser) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page, _ := strconv.Atoi(q.Get("page"))
		pageSize, _ := strconv.Atoi(q.Get("pageSize"))
		if page < 1 || pageSize < 1 || pageSize > 100 {
			http.Error(w, "bad paging", http.StatusUnprocessableEntity)
			return
		}

		var matched []fakeUser
		for _, u := range users {
			if strings.Contains(u.Name, q.Get("search")) {
				matched = append(matched, u)
			}
		}
		sort.SliceStable(matched, func(i, j int) bool {
			if q.Get("sortBy") == "progress" {
				return matched[i].Progress > matched[j].Progress
			}
			return matched[i].Score > matched[j].Score
		})

		start := (page - 1) * pageSize
		end := min(start+pageSize, len(matched))
		data := []map[string]any{}
		for i := start; i < end; i++ {
			u := matched[i]
			data = append(data, map[string]any{
				"id":    u.ID,
				"name":  u.Name,
				"score": u.Score,
				"trend": u.Trend,
				"rank":  i + 1,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data":       data,
			"totalCount": len(matched),
			"totalPages": (len(matched) + pageSize - 1) / pageSize,
		})
	}
}

func sampleUsers(n int) []fakeUser {
	users := make([]fakeUser, n)
	for i := range users {
		users[i] = fakeUser{
			ID:       int64(i + 1),
			Name:     fmt.Sprintf("user_%02d", i+1),
			Score:    1000 + (i*37)%500,
			Progress: (i * 13) % 100,
			Trend:    []string{"up", "down", "neutral"}[i%3],
		}
	}
	return users
}

func newTestClient(t *testing.T, h http.Handler, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "ftp://example.com", "localhost:8000"} {
		if _, err := New(raw); err == nil {
			t.Errorf("New(%q) expected error", raw)
		}
	}
}

func TestLeaderboardURL_EncodesAllFields(t *testing.T) {
	c, err := New("http://example.com/")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	q := leaderboard.Query{Page: 3, PageSize: 20, SortField: leaderboard.SortProgress, SearchTerm: "小 明"}

	got := c.LeaderboardURL(q)

	if !strings.HasPrefix(got, "http://example.com/api/leaderboard?") {
		t.Fatalf("URL = %q, unexpected prefix", got)
	}
	for _, want := range []string{"page=3", "pageSize=20", "sortBy=progress", "search=%E5%B0%8F+%E6%98%8E"} {
		if !strings.Contains(got, want) {
			t.Errorf("URL %q missing %q", got, want)
		}
	}
}

func TestFetchLeaderboard_TotalPagesContract(t *testing.T) {
	c := newTestClient(t, fakeLeaderboard(t, sampleUsers(47)))

	tests := []struct {
		name string
		q    leaderboard.Query
	}{
		{"defaults", leaderboard.DefaultQuery()},
		{"page size 7", leaderboard.Query{Page: 1, PageSize: 7, SortField: leaderboard.SortScore}},
		{"last page", leaderboard.Query{Page: 5, PageSize: 10, SortField: leaderboard.SortProgress}},
		{"search", leaderboard.Query{Page: 1, PageSize: 5, SortField: leaderboard.SortScore, SearchTerm: "user_1"}},
		{"no match", leaderboard.Query{Page: 1, PageSize: 10, SortField: leaderboard.SortScore, SearchTerm: "nobody"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := c.FetchLeaderboard(context.Background(), tt.q)
			if err != nil {
				t.Fatalf("FetchLeaderboard: %v", err)
			}
			want := leaderboard.TotalPagesFor(rs.TotalCount, tt.q.PageSize)
			if rs.TotalPages != want {
				t.Errorf("TotalPages = %d, want ceil(%d/%d) = %d", rs.TotalPages, rs.TotalCount, tt.q.PageSize, want)
			}
			if len(rs.Items) > tt.q.PageSize {
				t.Errorf("got %d items, page size %d", len(rs.Items), tt.q.PageSize)
			}
		})
	}
}

func TestFetchLeaderboard_DecodesEntrants(t *testing.T) {
	c := newTestClient(t, fakeLeaderboard(t, sampleUsers(3)))

	rs, err := c.FetchLeaderboard(context.Background(), leaderboard.DefaultQuery())
	if err != nil {
		t.Fatalf("FetchLeaderboard: %v", err)
	}
	if len(rs.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(rs.Items))
	}
	for i, e := range rs.Items {
		if e.Rank != i+1 {
			t.Errorf("item %d rank = %d, want %d", i, e.Rank, i+1)
		}
		if e.Trend != leaderboard.TrendUp && e.Trend != leaderboard.TrendDown && e.Trend != leaderboard.TrendFlat {
			t.Errorf("item %d trend = %q", i, e.Trend)
		}
	}
}

func TestFetchLeaderboard_DerivesMissingTotalPages(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": [], "totalCount": 25, "page": 3, "pageSize": 10}`))
	}))

	rs, err := c.FetchLeaderboard(context.Background(), leaderboard.DefaultQuery())
	if err != nil {
		t.Fatalf("FetchLeaderboard: %v", err)
	}
	if rs.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", rs.TotalPages)
	}
}

func TestFetchLeaderboard_NullDataIsEmptyPage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		var rows []leaderboard.Entrant
		_ = json.NewEncoder(w).Encode(map[string]any{"data": rows, "totalCount": 0, "totalPages": 0})
	}))

	rs, err := c.FetchLeaderboard(context.Background(), leaderboard.DefaultQuery())
	if err != nil {
		t.Fatalf("FetchLeaderboard: %v", err)
	}
	if rs.Items == nil || len(rs.Items) != 0 {
		t.Errorf("Items = %#v, want empty non-nil slice", rs.Items)
	}
	if !rs.Empty() {
		t.Errorf("expected empty result, got %+v", rs)
	}
}

func TestFetchLeaderboard_SendsRequestID(t *testing.T) {
	var got string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-Id")
		_, _ = w.Write([]byte(`{"data": [], "totalCount": 0, "totalPages": 0}`))
	}))

	ctx := WithRequestID(context.Background(), "abc-123")
	if _, err := c.FetchLeaderboard(ctx, leaderboard.DefaultQuery()); err != nil {
		t.Fatalf("FetchLeaderboard: %v", err)
	}
	if got != "abc-123" {
		t.Errorf("X-Request-Id = %q, want abc-123", got)
	}
}

func TestFetchLeaderboard_ErrorKinds(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		kind    error
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "database is locked", http.StatusInternalServerError)
			},
			kind: ErrProtocol,
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.NotFound(w, nil)
			},
			kind: ErrProtocol,
		},
		{
			name: "html body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`<html>maintenance</html>`))
			},
			kind: ErrFormat,
		},
		{
			name: "missing data",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"totalCount": 3}`))
			},
			kind: ErrFormat,
		},
		{
			name: "data not a list",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"data": "nope", "totalCount": 0}`))
			},
			kind: ErrFormat,
		},
		{
			name: "negative total",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"data": [], "totalCount": -1}`))
			},
			kind: ErrFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler)
			rs, err := c.FetchLeaderboard(context.Background(), leaderboard.DefaultQuery())
			if !errors.Is(err, tt.kind) {
				t.Fatalf("error = %v, want kind %v", err, tt.kind)
			}
			if len(rs.Items) != 0 || rs.TotalCount != 0 {
				t.Errorf("expected no partial result, got %+v", rs)
			}
		})
	}
}

func TestFetchLeaderboard_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := New(base)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.FetchLeaderboard(context.Background(), leaderboard.DefaultQuery())
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("error = %v, want ErrNetwork", err)
	}
	if msg := UserMessage(err); msg != "Cannot connect to the leaderboard server" {
		t.Errorf("UserMessage = %q", msg)
	}
}

func TestProtocolError_UserMessage(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &ProtocolError{Op: "fetch leaderboard", StatusCode: 503})
	if got := UserMessage(err); got != "Server returned HTTP 503" {
		t.Errorf("UserMessage = %q", got)
	}
}

func TestCheckHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/health" {
				t.Errorf("path = %q, want /api/health", r.URL.Path)
			}
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		}))
		if !c.CheckHealth(context.Background()) {
			t.Error("expected healthy")
		}
	})

	t.Run("non success status", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		if c.CheckHealth(context.Background()) {
			t.Error("expected unhealthy")
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		base := srv.URL
		srv.Close()
		c, err := New(base)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if c.CheckHealth(context.Background()) {
			t.Error("expected unhealthy")
		}
	})
}

func TestProbe_Timeout(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}), WithHealthTimeout(50*time.Millisecond))
	defer close(release)

	err := c.Probe(context.Background())
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("Probe error = %v, want ErrTimeout", err)
	}
	if c.CheckHealth(context.Background()) {
		t.Error("CheckHealth should report false on timeout")
	}
}

func TestFetchWithRetry_SucceedsAfterFailures(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"data": [{"id": 1, "name": "a", "score": 10, "rank": 1, "trend": "up"}], "totalCount": 1, "totalPages": 1}`))
	}))
	var delays []time.Duration
	c.sleep = func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}

	rs, err := c.FetchWithRetry(context.Background(), leaderboard.DefaultQuery(), 3, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("FetchWithRetry: %v", err)
	}
	if len(rs.Items) != 1 {
		t.Errorf("got %d items, want 1", len(rs.Items))
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}
	if len(delays) != len(want) {
		t.Fatalf("delays = %v, want %v", delays, want)
	}
	for i := range want {
		if delays[i] != want[i] {
			t.Errorf("delay %d = %v, want %v", i, delays[i], want[i])
		}
	}
}

func TestFetchWithRetry_SurfacesLastError(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`not json`))
	}))
	c.sleep = func(context.Context, time.Duration) error { return nil }

	_, err := c.FetchWithRetry(context.Background(), leaderboard.DefaultQuery(), 3, time.Second)
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("error = %v, want last error kind ErrFormat", err)
	}
	if errors.Is(err, ErrProtocol) {
		t.Error("earlier protocol errors should not be surfaced")
	}
}

func TestFetchWithRetry_FirstSuccessShortCircuits(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, fakeLeaderboard(t, sampleUsers(2)))
	c.httpClient.Transport = countingTransport{next: http.DefaultTransport, calls: &calls}

	if _, err := c.FetchWithRetry(context.Background(), leaderboard.DefaultQuery(), 5, time.Hour); err != nil {
		t.Fatalf("FetchWithRetry: %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}

func TestFetchWithRetry_CancelledDuringBackoff(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchWithRetry(ctx, leaderboard.DefaultQuery(), 3, time.Hour)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestFetcher_SingleAttemptUsesClient(t *testing.T) {
	c, err := New("http://example.com")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if f := c.Fetcher(RetryPolicy{MaxAttempts: 1}); f != leaderboard.Fetcher(c) {
		t.Errorf("Fetcher(1 attempt) = %T, want the client itself", f)
	}
}

type countingTransport struct {
	next  http.RoundTripper
	calls *atomic.Int32
}

func (t countingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	t.calls.Add(1)
	return t.next.RoundTrip(r)
}
