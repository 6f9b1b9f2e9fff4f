package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/podium/internal/dashboard"
	"github.com/javiermolinar/podium/internal/leaderboard"
)

func TestEmptyMessage(t *testing.T) {
	q := leaderboard.DefaultQuery()
	if got := EmptyMessage(q); got != "No entrants found." {
		t.Errorf("EmptyMessage = %q", got)
	}
	q.SearchTerm = "zed"
	if got := EmptyMessage(q); !strings.Contains(got, `"zed"`) {
		t.Errorf("EmptyMessage = %q, want search term", got)
	}
}

func TestRenderLoading(t *testing.T) {
	useASCII(t)
	if got := RenderLoading("⠋", lipgloss.NewStyle()); got != "⠋ "+LoadingText {
		t.Errorf("RenderLoading = %q", got)
	}
}

func TestPlainPage(t *testing.T) {
	screen := dashboard.Screen{
		Query: leaderboard.DefaultQuery(),
		Items: []leaderboard.Entrant{
			{ID: 1, Name: "Alice", Score: 1500, Rank: 1, Trend: leaderboard.TrendUp},
			{ID: 2, Name: "Bob", Score: 10, Rank: 4, Trend: leaderboard.TrendDown},
		},
		Pagination: dashboard.NewPagination(1, 1, 2, 10),
	}

	out := PlainPage(screen)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "Alice") || !strings.HasSuffix(lines[1], "▲ TOP") {
		t.Errorf("first row = %q", lines[1])
	}
	if !strings.Contains(lines[1], "1,500") {
		t.Errorf("first row = %q, want formatted score", lines[1])
	}
	if strings.Contains(lines[2], "TOP") {
		t.Errorf("rank 4 row = %q, want no badge", lines[2])
	}
	if lines[3] != "1-2 of 2" {
		t.Errorf("last line = %q, want range label", lines[3])
	}
}
