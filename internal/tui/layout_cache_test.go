package tui

import "testing"

func TestBuildLayoutCache(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		wantFull   bool
		wantFooter int
	}{
		{"tall window gets the prompt box", 100, 30, true, footerBaseLines + promptBorderLines + promptMinContentLines},
		{"short window is compact", 100, 12, false, footerCompact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, true)
			lc := h.model.buildLayoutCache(tt.width, tt.height)

			if lc.FullFooter != tt.wantFull {
				t.Errorf("FullFooter = %v, want %v", lc.FullFooter, tt.wantFull)
			}
			if lc.FooterH != tt.wantFooter {
				t.Errorf("FooterH = %d, want %d", lc.FooterH, tt.wantFooter)
			}
			if lc.InnerW != tt.width-2 {
				t.Errorf("InnerW = %d, want %d", lc.InnerW, tt.width-2)
			}
			if got := lc.HeaderH + lc.BodyH + lc.FooterH; got != lc.InnerH {
				t.Errorf("sections sum to %d, want %d", got, lc.InnerH)
			}
		})
	}
}

func TestBuildLayoutCache_BodyNeverCollapses(t *testing.T) {
	h := newHarness(t, true)
	lc := h.model.buildLayoutCache(40, 4)
	if lc.BodyH < minBodyLines {
		t.Errorf("BodyH = %d, want at least %d", lc.BodyH, minBodyLines)
	}
}

func TestBuildLayoutCache_PromptGrowsFooter(t *testing.T) {
	h := newHarness(t, true)
	h.key(t, "z")

	lc := h.model.layoutCache
	// Input line plus the page size suggestions.
	want := footerBaseLines + promptBorderLines + 2
	if lc.FooterH != want {
		t.Errorf("FooterH = %d, want %d", lc.FooterH, want)
	}
}
