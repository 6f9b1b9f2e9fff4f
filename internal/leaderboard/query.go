package leaderboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Query defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Validation errors.
var (
	ErrInvalidPage      = errors.New("page must be a positive integer")
	ErrInvalidPageSize  = fmt.Errorf("page size must be between 1 and %d", MaxPageSize)
	ErrInvalidSortField = errors.New("sort field must be 'score' or 'progress'")
	ErrUnknownField     = errors.New("unknown query field")
)

// SortField is the column the backend orders entrants by.
type SortField string

const (
	SortScore    SortField = "score"
	SortProgress SortField = "progress"
)

// DefaultSortField is the sort applied at startup and after reset.
const DefaultSortField = SortScore

// SortFields lists the supported sort fields in cycling order.
func SortFields() []SortField {
	return []SortField{SortScore, SortProgress}
}

// ParseSortField parses a sort field name.
func ParseSortField(s string) (SortField, error) {
	switch SortField(strings.ToLower(strings.TrimSpace(s))) {
	case SortScore:
		return SortScore, nil
	case SortProgress:
		return SortProgress, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortField, s)
	}
}

// Next returns the sort field after f in cycling order.
func (f SortField) Next() SortField {
	fields := SortFields()
	for i, field := range fields {
		if field == f {
			return fields[(i+1)%len(fields)]
		}
	}
	return DefaultSortField
}

// Field names a single Query parameter.
type Field int

const (
	FieldPage Field = iota
	FieldPageSize
	FieldSortField
	FieldSearchTerm
)

// String returns the wire name of the field.
func (f Field) String() string {
	switch f {
	case FieldPage:
		return "page"
	case FieldPageSize:
		return "pageSize"
	case FieldSortField:
		return "sortBy"
	case FieldSearchTerm:
		return "search"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Query is the tuple of parameters driving a leaderboard fetch.
type Query struct {
	Page       int
	PageSize   int
	SortField  SortField
	SearchTerm string
}

// DefaultQuery returns the query used at startup.
func DefaultQuery() Query {
	return Query{
		Page:       DefaultPage,
		PageSize:   DefaultPageSize,
		SortField:  DefaultSortField,
		SearchTerm: "",
	}
}

// Validate checks the query invariants.
func (q Query) Validate() error {
	if q.Page < 1 {
		return ErrInvalidPage
	}
	if err := validatePageSize(q.PageSize); err != nil {
		return err
	}
	if _, err := ParseSortField(string(q.SortField)); err != nil {
		return err
	}
	return nil
}

// ParsePageSize parses a page size typed by the user.
func ParsePageSize(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPageSize, s)
	}
	if err := validatePageSize(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ParsePage parses a page number.
func ParsePage(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPage, s)
	}
	return n, nil
}

func validatePageSize(n int) error {
	if n < 1 || n > MaxPageSize {
		return ErrInvalidPageSize
	}
	return nil
}
