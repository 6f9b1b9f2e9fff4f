package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestPromptLinesIncludesSuggestions(t *testing.T) {
	state := PromptState{Label: "page size", Value: "1", Cursor: "_", Suggestions: []string{"10", "100"}}
	lines := PromptLines(state, 40)

	if len(lines) != 2 {
		t.Fatalf("lines = %v, want input and suggestion line", lines)
	}
	if lines[0] != "page size> 1_" {
		t.Errorf("input line = %q", lines[0])
	}
	if lines[1] != "  try: 10  100" {
		t.Errorf("suggestion line = %q", lines[1])
	}
}

func TestPromptLinesWithoutSuggestions(t *testing.T) {
	state := PromptState{Label: "page size", Value: "20"}
	if lines := PromptLines(state, 40); len(lines) != 1 {
		t.Fatalf("lines = %v, want only the input line", lines)
	}
}

func TestPromptLinesWrapsLongSearch(t *testing.T) {
	state := PromptState{Label: "search", Value: "alpha beta gamma delta"}
	lines := PromptLines(state, 20)
	if len(lines) < 2 {
		t.Fatalf("lines = %v, want wrapped input", lines)
	}
	if lines[0][:8] != "search> " {
		t.Errorf("first line = %q, want search prefix", lines[0])
	}
}

func TestClampPromptLinesAddsEllipsis(t *testing.T) {
	lines := []string{"one", "two", "three"}
	clamped := ClampPromptLines(lines, 2, 5)
	if len(clamped) != 2 {
		t.Fatalf("clamped length = %d, want 2", len(clamped))
	}
	if clamped[1] != "two…" {
		t.Fatalf("last line = %q, want ellipsis", clamped[1])
	}
}

func TestWrapWords(t *testing.T) {
	tests := []struct {
		name        string
		s           string
		first, rest int
		want        []string
	}{
		{"fits", "ab cd", 10, 10, []string{"ab cd"}},
		{"breaks on space", "ab cd ef", 5, 5, []string{"ab cd", "ef"}},
		{"narrower first row", "ab cd ef", 2, 5, []string{"ab", "cd ef"}},
		{"keeps double spaces", "10  100", 10, 10, []string{"10  100"}},
		{"splits long word", "abcdefgh", 3, 3, []string{"abc", "def", "gh"}},
		{"empty", "", 4, 4, []string{""}},
		{"no room", "abc", 0, 4, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapWords(tt.s, tt.first, tt.rest)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("wrapWords(%q) = %q, want %q", tt.s, got, tt.want)
			}
		})
	}
}

func TestRenderFooter_CompactSkipsPromptBox(t *testing.T) {
	useASCII(t)

	f := Footer{Width: 30, Height: 3, Pagination: "PAGES", Status: "STATUS", Help: "HELP"}
	lines := strings.Split(RenderFooter(f), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	for i, want := range []string{"PAGES", "STATUS", "HELP"} {
		if !strings.HasPrefix(lines[i], want) {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
}

func TestRenderFooter_FullShowsPrompt(t *testing.T) {
	useASCII(t)

	border := lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	f := Footer{
		Width:  30,
		Height: 6,
		Full:   true,
		Help:   "HELP",
		Prompt: []string{"search> al_"},
		Styles: FooterStyles{Prompt: border, PromptFocused: border},
	}
	out := RenderFooter(f)
	if !strings.Contains(out, "search> al_") {
		t.Errorf("footer missing prompt:\n%s", out)
	}
	if got := len(strings.Split(out, "\n")); got != 6 {
		t.Errorf("lines = %d, want 6", got)
	}
}
