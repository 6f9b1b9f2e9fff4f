// Package api provides the HTTP client for the leaderboard service.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/javiermolinar/podium/internal/debuglog"
	"github.com/javiermolinar/podium/internal/leaderboard"
)

const (
	leaderboardPath = "/api/leaderboard"
	healthPath      = "/api/health"

	// DefaultHealthTimeout bounds the health probe.
	DefaultHealthTimeout = 5 * time.Second

	// maxErrorBody caps how much of an error body is kept in a ProtocolError.
	maxErrorBody = 256
)

// Client talks to the leaderboard HTTP API.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	healthTimeout  time.Duration
	requestTimeout time.Duration
	sleep          func(ctx context.Context, d time.Duration) error
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithHealthTimeout sets the health probe bound.
func WithHealthTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.healthTimeout = d
		}
	}
}

// WithRequestTimeout bounds leaderboard fetches. Zero disables the bound.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.requestTimeout = d
	}
}

// WithSleep replaces the backoff sleep used by FetchWithRetry.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Client) {
		if sleep != nil {
			c.sleep = sleep
		}
	}
}

// New creates a client for the service at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("api base url is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api base url must be http or https, got %q", baseURL)
	}

	c := &Client{
		baseURL:       baseURL,
		httpClient:    &http.Client{},
		healthTimeout: DefaultHealthTimeout,
		sleep:         sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized service address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type requestIDKey struct{}

// WithRequestID attaches an id sent as X-Request-Id on leaderboard fetches.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// leaderboardResponse is the wire shape of GET /api/leaderboard.
type leaderboardResponse struct {
	Data       json.RawMessage `json:"data"`
	TotalCount *int            `json:"totalCount"`
	TotalPages *int            `json:"totalPages"`
}

// LeaderboardURL builds the request URL for q.
func (c *Client) LeaderboardURL(q leaderboard.Query) string {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("pageSize", strconv.Itoa(q.PageSize))
	params.Set("sortBy", string(q.SortField))
	params.Set("search", q.SearchTerm)
	return c.baseURL + leaderboardPath + "?" + params.Encode()
}

// FetchLeaderboard fetches one page of the leaderboard.
func (c *Client) FetchLeaderboard(ctx context.Context, q leaderboard.Query) (leaderboard.ResultSet, error) {
	const op = "fetch leaderboard"

	if c.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.requestTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.LeaderboardURL(q), nil)
	if err != nil {
		return leaderboard.ResultSet{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if id := requestID(ctx); id != "" {
		req.Header.Set("X-Request-Id", id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return leaderboard.ResultSet{}, &NetworkError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return leaderboard.ResultSet{}, &ProtocolError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var body leaderboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return leaderboard.ResultSet{}, &FormatError{Op: op, Err: err}
	}

	rs, err := body.resultSet(q.PageSize)
	if err != nil {
		return leaderboard.ResultSet{}, &FormatError{Op: op, Err: err}
	}
	return rs, nil
}

func (r leaderboardResponse) resultSet(pageSize int) (leaderboard.ResultSet, error) {
	if r.Data == nil {
		return leaderboard.ResultSet{}, errors.New("missing data field")
	}
	// Go backends encode an empty page as null.
	items := []leaderboard.Entrant{}
	if string(r.Data) != "null" {
		if err := json.Unmarshal(r.Data, &items); err != nil {
			return leaderboard.ResultSet{}, fmt.Errorf("decode data: %w", err)
		}
		if items == nil {
			items = []leaderboard.Entrant{}
		}
	}
	if r.TotalCount == nil {
		return leaderboard.ResultSet{}, errors.New("missing totalCount field")
	}
	if *r.TotalCount < 0 {
		return leaderboard.ResultSet{}, fmt.Errorf("negative totalCount %d", *r.TotalCount)
	}

	totalPages := leaderboard.TotalPagesFor(*r.TotalCount, pageSize)
	if r.TotalPages != nil {
		if *r.TotalPages < 0 {
			return leaderboard.ResultSet{}, fmt.Errorf("negative totalPages %d", *r.TotalPages)
		}
		totalPages = *r.TotalPages
	}

	return leaderboard.ResultSet{
		Items:      items,
		TotalCount: *r.TotalCount,
		TotalPages: totalPages,
	}, nil
}

// Probe issues the health request bounded by the health timeout.
func (c *Client) Probe(ctx context.Context) error {
	const op = "health check"

	ctx, cancel := context.WithTimeout(ctx, c.healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return &TimeoutError{Op: op, Timeout: c.healthTimeout}
		}
		return &NetworkError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ProtocolError{Op: op, StatusCode: resp.StatusCode}
	}
	return nil
}

// CheckHealth reports whether the service answers its health probe.
// Failures are a soft signal: they are logged, never returned.
func (c *Client) CheckHealth(ctx context.Context) bool {
	err := c.Probe(ctx)
	if err != nil {
		debuglog.Error("health check", err)
		return false
	}
	return true
}
