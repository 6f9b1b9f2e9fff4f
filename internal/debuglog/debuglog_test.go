package debuglog

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLogger_WritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	SetDefault(New(&buf))
	t.Cleanup(func() { SetDefault(nil) })

	Log("FETCH_ISSUED", map[string]any{"page": 2})
	Error("fetch", errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line 0 is not JSON: %v", err)
	}
	if first["event"] != "FETCH_ISSUED" {
		t.Errorf("event = %v, want FETCH_ISSUED", first["event"])
	}
	if first["seq"] != float64(1) {
		t.Errorf("seq = %v, want 1", first["seq"])
	}
	if first["page"] != float64(2) {
		t.Errorf("page = %v, want 2", first["page"])
	}

	var second map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("line 1 is not JSON: %v", err)
	}
	if second["error"] != "boom" || second["context"] != "fetch" {
		t.Errorf("unexpected error entry: %v", second)
	}
}

func TestLogger_DisabledIsNoop(t *testing.T) {
	SetDefault(nil)
	if Enabled() {
		t.Fatal("expected disabled logger")
	}
	// Must not panic.
	Log("IGNORED", nil)
	Error("ignored", errors.New("x"))
	Close()
}
