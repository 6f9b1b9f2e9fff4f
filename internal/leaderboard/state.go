package leaderboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrStale is returned when a response arrives for a query that has been superseded.
var ErrStale = errors.New("response superseded by a newer query")

// Origin records which kind of user action issued a fetch.
type Origin int

const (
	// OriginRefresh covers startup, search, reset, page size, sort and manual refresh.
	OriginRefresh Origin = iota
	// OriginPage is a fetch issued by the pagination controls.
	OriginPage
)

// Ticket identifies one issued fetch and the query snapshot it was issued for.
type Ticket struct {
	Seq    uint64
	ID     string
	Query  Query
	Origin Origin
}

// State holds the current Query and the last successfully fetched ResultSet.
//
// State is not safe for concurrent use. It is owned by a single control
// goroutine; fetches run elsewhere and hand their result back via Complete.
type State struct {
	defaults Query
	query    Query
	result   ResultSet
	seq      uint64
}

// NewState creates a state with the default query and an empty result.
func NewState() *State {
	return NewStateWithDefaults(DefaultQuery())
}

// NewStateWithDefaults creates a state starting from, and resetting to, defaults.
// An invalid defaults query falls back to DefaultQuery.
func NewStateWithDefaults(defaults Query) *State {
	if defaults.Validate() != nil {
		defaults = DefaultQuery()
	}
	return &State{defaults: defaults, query: defaults}
}

// Query returns a copy of the current query.
func (s *State) Query() Query {
	return s.query
}

// Result returns the last successfully fetched result set.
func (s *State) Result() ResultSet {
	return s.result
}

// SetPage sets the page directly. No other field changes.
func (s *State) SetPage(page int) error {
	if page < 1 {
		return ErrInvalidPage
	}
	s.query.Page = page
	return nil
}

// SetPageSize sets the page size and resets the page to 1.
func (s *State) SetPageSize(size int) error {
	if err := validatePageSize(size); err != nil {
		return err
	}
	s.query.PageSize = size
	s.query.Page = DefaultPage
	return nil
}

// SetSortField sets the sort field and resets the page to 1.
func (s *State) SetSortField(field SortField) error {
	parsed, err := ParseSortField(string(field))
	if err != nil {
		return err
	}
	s.query.SortField = parsed
	s.query.Page = DefaultPage
	return nil
}

// SetSearchTerm sets the search term and resets the page to 1.
func (s *State) SetSearchTerm(term string) {
	s.query.SearchTerm = term
	s.query.Page = DefaultPage
}

// Set updates one field from its textual value.
// Every field except the page resets the page to 1.
func (s *State) Set(field Field, value string) error {
	switch field {
	case FieldPage:
		page, err := ParsePage(value)
		if err != nil {
			return err
		}
		return s.SetPage(page)
	case FieldPageSize:
		size, err := ParsePageSize(value)
		if err != nil {
			return err
		}
		return s.SetPageSize(size)
	case FieldSortField:
		return s.SetSortField(SortField(value))
	case FieldSearchTerm:
		s.SetSearchTerm(value)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
}

// Reset restores the default query. The last result is kept until the next fetch replaces it.
func (s *State) Reset() {
	s.query = s.defaults
}

// Begin snapshots the current query for a new fetch.
// Any ticket issued earlier becomes stale.
func (s *State) Begin(origin Origin) Ticket {
	s.seq++
	return Ticket{
		Seq:    s.seq,
		ID:     uuid.NewString(),
		Query:  s.query,
		Origin: origin,
	}
}

// Retire makes every outstanding ticket stale without issuing a new one.
func (s *State) Retire() {
	s.seq++
}

// IsCurrent reports whether a response for t may still be applied.
func (s *State) IsCurrent(t Ticket) bool {
	return t.Seq == s.seq && t.Query == s.query
}

// Complete replaces the result set wholesale if t is current.
// It returns false and leaves the state untouched for stale tickets.
func (s *State) Complete(t Ticket, rs ResultSet) bool {
	if !s.IsCurrent(t) {
		return false
	}
	s.result = rs
	return true
}

// Refetch fetches the current query and replaces the result set on success.
// On failure the previous result set is kept and the error is returned.
func (s *State) Refetch(ctx context.Context, f Fetcher) error {
	t := s.Begin(OriginRefresh)
	rs, err := f.FetchLeaderboard(ctx, t.Query)
	if err != nil {
		return err
	}
	if !s.Complete(t, rs) {
		return ErrStale
	}
	return nil
}
