package leaderboard

import (
	"context"
	"errors"
	"testing"
)

func TestNewState_Defaults(t *testing.T) {
	s := NewState()
	q := s.Query()

	if q.Page != 1 {
		t.Errorf("Page = %d, want 1", q.Page)
	}
	if q.PageSize != 10 {
		t.Errorf("PageSize = %d, want 10", q.PageSize)
	}
	if q.SortField != SortScore {
		t.Errorf("SortField = %q, want %q", q.SortField, SortScore)
	}
	if q.SearchTerm != "" {
		t.Errorf("SearchTerm = %q, want empty", q.SearchTerm)
	}
	if !s.Result().Empty() {
		t.Error("expected empty initial result")
	}
}

func TestSet_NonPageFieldsResetPage(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value string
		check func(Query) bool
	}{
		{"search term", FieldSearchTerm, "alice", func(q Query) bool { return q.SearchTerm == "alice" }},
		{"sort field", FieldSortField, "progress", func(q Query) bool { return q.SortField == SortProgress }},
		{"page size", FieldPageSize, "25", func(q Query) bool { return q.PageSize == 25 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			if err := s.SetPage(7); err != nil {
				t.Fatalf("SetPage: %v", err)
			}

			if err := s.Set(tt.field, tt.value); err != nil {
				t.Fatalf("Set(%s, %q): %v", tt.field, tt.value, err)
			}

			q := s.Query()
			if q.Page != 1 {
				t.Errorf("Page = %d, want 1 after setting %s", q.Page, tt.field)
			}
			if !tt.check(q) {
				t.Errorf("field %s not applied: %+v", tt.field, q)
			}
		})
	}
}

func TestSetPage_KeepsOtherFields(t *testing.T) {
	s := NewState()
	s.SetSearchTerm("bob")
	if err := s.SetPageSize(20); err != nil {
		t.Fatalf("SetPageSize: %v", err)
	}
	if err := s.SetSortField(SortProgress); err != nil {
		t.Fatalf("SetSortField: %v", err)
	}

	if err := s.Set(FieldPage, "4"); err != nil {
		t.Fatalf("Set page: %v", err)
	}

	want := Query{Page: 4, PageSize: 20, SortField: SortProgress, SearchTerm: "bob"}
	if got := s.Query(); got != want {
		t.Errorf("Query = %+v, want %+v", got, want)
	}
}

func TestSet_InvalidValuesLeaveQueryUnchanged(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value string
	}{
		{"page zero", FieldPage, "0"},
		{"page not a number", FieldPage, "two"},
		{"page size too big", FieldPageSize, "101"},
		{"page size zero", FieldPageSize, "0"},
		{"page size garbage", FieldPageSize, "ten"},
		{"unknown sort", FieldSortField, "name"},
		{"unknown field", Field(42), "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			_ = s.SetPage(3)
			before := s.Query()

			if err := s.Set(tt.field, tt.value); err == nil {
				t.Fatal("expected error")
			}
			if got := s.Query(); got != before {
				t.Errorf("Query changed to %+v, want %+v", got, before)
			}
		})
	}
}

func TestReset_RestoresDefaults(t *testing.T) {
	s := NewState()
	s.SetSearchTerm("carol")
	_ = s.SetPageSize(50)
	_ = s.SetSortField(SortProgress)
	_ = s.SetPage(3)

	s.Reset()

	if got := s.Query(); got != DefaultQuery() {
		t.Errorf("Query = %+v, want defaults", got)
	}
}

func TestComplete_DropsStaleTickets(t *testing.T) {
	s := NewState()
	first := s.Begin(OriginPage)
	s.SetSearchTerm("dave")
	second := s.Begin(OriginRefresh)

	stale := ResultSet{Items: []Entrant{{ID: 1, Name: "old", Rank: 1}}, TotalCount: 1, TotalPages: 1}
	fresh := ResultSet{Items: []Entrant{{ID: 2, Name: "dave", Rank: 1}}, TotalCount: 1, TotalPages: 1}

	if !s.Complete(second, fresh) {
		t.Fatal("current ticket was rejected")
	}
	if s.Complete(first, stale) {
		t.Fatal("stale ticket was applied")
	}
	if got := s.Result().Items[0].Name; got != "dave" {
		t.Errorf("result name = %q, want dave", got)
	}
}

func TestComplete_QueryChangedAfterBegin(t *testing.T) {
	s := NewState()
	ticket := s.Begin(OriginRefresh)
	_ = s.SetPage(2)

	if s.IsCurrent(ticket) {
		t.Fatal("ticket should be stale once the query changed")
	}
	if s.Complete(ticket, ResultSet{TotalCount: 5}) {
		t.Fatal("stale ticket applied")
	}
}

func TestRetire_MakesOutstandingTicketsStale(t *testing.T) {
	s := NewState()
	ticket := s.Begin(OriginRefresh)

	s.Retire()

	if s.IsCurrent(ticket) {
		t.Fatal("ticket still current after Retire")
	}
	if s.Complete(ticket, ResultSet{TotalCount: 1}) {
		t.Error("retired ticket applied")
	}
	if next := s.Begin(OriginRefresh); !s.IsCurrent(next) {
		t.Error("ticket issued after Retire should be current")
	}
}

func TestBegin_AssignsRequestIDs(t *testing.T) {
	s := NewState()
	a := s.Begin(OriginRefresh)
	b := s.Begin(OriginRefresh)

	if a.ID == "" || b.ID == "" {
		t.Fatal("expected non-empty ticket ids")
	}
	if a.ID == b.ID {
		t.Error("expected distinct ticket ids")
	}
	if b.Seq != a.Seq+1 {
		t.Errorf("Seq = %d, want %d", b.Seq, a.Seq+1)
	}
}

func TestRefetch_SuccessReplacesResult(t *testing.T) {
	s := NewState()
	var got Query
	fetcher := FetcherFunc(func(_ context.Context, q Query) (ResultSet, error) {
		got = q
		return ResultSet{Items: []Entrant{{ID: 9, Rank: 1}}, TotalCount: 1, TotalPages: 1}, nil
	})

	if err := s.Refetch(context.Background(), fetcher); err != nil {
		t.Fatalf("Refetch: %v", err)
	}
	if got != s.Query() {
		t.Errorf("fetched query %+v, want %+v", got, s.Query())
	}
	if s.Result().TotalCount != 1 {
		t.Errorf("TotalCount = %d, want 1", s.Result().TotalCount)
	}
}

func TestRefetch_FailureKeepsPreviousResult(t *testing.T) {
	s := NewState()
	ok := FetcherFunc(func(context.Context, Query) (ResultSet, error) {
		return ResultSet{Items: []Entrant{{ID: 1, Name: "kept", Rank: 1}}, TotalCount: 1, TotalPages: 1}, nil
	})
	if err := s.Refetch(context.Background(), ok); err != nil {
		t.Fatalf("Refetch: %v", err)
	}

	boom := errors.New("boom")
	failing := FetcherFunc(func(context.Context, Query) (ResultSet, error) {
		return ResultSet{}, boom
	})
	if err := s.Refetch(context.Background(), failing); !errors.Is(err, boom) {
		t.Fatalf("Refetch error = %v, want %v", err, boom)
	}

	if got := s.Result(); len(got.Items) != 1 || got.Items[0].Name != "kept" {
		t.Errorf("result after failure = %+v, want previous data", got)
	}
}

func TestNewStateWithDefaults(t *testing.T) {
	defaults := Query{Page: 1, PageSize: 20, SortField: SortProgress}
	s := NewStateWithDefaults(defaults)
	s.SetSearchTerm("x")
	s.Reset()
	if got := s.Query(); got != defaults {
		t.Errorf("Query = %+v, want %+v", got, defaults)
	}

	invalid := NewStateWithDefaults(Query{Page: 0, PageSize: 500})
	if got := invalid.Query(); got != DefaultQuery() {
		t.Errorf("Query = %+v, want fallback defaults", got)
	}
}
