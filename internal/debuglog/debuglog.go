// Package debuglog writes structured JSON-lines debug events to a file.
package debuglog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// DefaultPath is the fixed path for debug logs.
const DefaultPath = "podium-debug.log"

// Logger logs events as one JSON object per line.
type Logger struct {
	mu      sync.Mutex
	w       io.Writer
	closer  io.Closer
	enabled bool
	seq     int
}

// Global logger instance; disabled until Init is called with enabled=true.
var std = &Logger{}

// Init enables the global logger writing to DefaultPath.
func Init(enabled bool) error {
	if !enabled {
		std = &Logger{}
		return nil
	}

	f, err := os.Create(DefaultPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	std = New(f)
	std.closer = f
	Log("DEBUG_START", map[string]any{
		"log_file": DefaultPath,
		"time":     time.Now().Format(time.RFC3339),
	})
	return nil
}

// New returns an enabled logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{w: w, enabled: true}
}

// SetDefault replaces the global logger. Tests use it to capture output.
func SetDefault(l *Logger) {
	if l == nil {
		l = &Logger{}
	}
	std = l
}

// Close flushes the end marker and closes the log file.
func Close() {
	if std == nil || !std.enabled {
		return
	}
	Log("DEBUG_END", map[string]any{
		"time": time.Now().Format(time.RFC3339),
	})
	if std.closer != nil {
		_ = std.closer.Close()
	}
}

// Enabled reports whether the global logger writes anything.
func Enabled() bool {
	return std != nil && std.enabled
}

// Log writes an event to the global logger.
func Log(event string, data map[string]any) {
	std.Log(event, data)
}

// Error logs an error with the context it happened in.
func Error(context string, err error) {
	if err == nil || !Enabled() {
		return
	}
	Log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}

// Log writes a structured log entry.
func (l *Logger) Log(event string, data map[string]any) {
	if l == nil || !l.enabled || l.w == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	entry := map[string]any{
		"seq":   l.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(l.w, "%s\n", b)
}
