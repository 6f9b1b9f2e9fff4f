// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/podium/internal/api"
	"github.com/javiermolinar/podium/internal/dashboard"
	"github.com/javiermolinar/podium/internal/leaderboard"
	"github.com/javiermolinar/podium/internal/netwatch"
)

// FetchResultMsg is sent when a leaderboard fetch finishes.
type FetchResultMsg struct {
	Ticket leaderboard.Ticket
	Result leaderboard.ResultSet
	Err    error
}

// ProbeResultMsg is sent when a health check finishes.
type ProbeResultMsg struct {
	Reason dashboard.ProbeReason
	Online bool
}

// NetEventMsg is sent on a network connectivity transition.
type NetEventMsg struct {
	Event netwatch.Event
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// HealthChecker reports whether the backend is reachable.
type HealthChecker interface {
	CheckHealth(ctx context.Context) bool
}

// Fetch runs the ticket's query after delay and reports the outcome.
// The ticket id travels with the request as its request id.
func Fetch(f leaderboard.Fetcher, t leaderboard.Ticket, delay time.Duration) tea.Cmd {
	run := func() tea.Msg {
		ctx := api.WithRequestID(context.Background(), t.ID)
		rs, err := f.FetchLeaderboard(ctx, t.Query)
		return FetchResultMsg{Ticket: t, Result: rs, Err: err}
	}
	if delay <= 0 {
		return run
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return run()
	})
}

// Probe runs a health check. The checker bounds it with its own timeout.
func Probe(hc HealthChecker, reason dashboard.ProbeReason) tea.Cmd {
	return func() tea.Msg {
		return ProbeResultMsg{Reason: reason, Online: hc.CheckHealth(context.Background())}
	}
}

// WaitNetEvent waits for the next connectivity transition.
// It returns nil once the channel is closed.
func WaitNetEvent(events <-chan netwatch.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return NetEventMsg{Event: ev}
	}
}

// CopyText writes text with write, typically clipboard.WriteAll.
func CopyText(text, what string, write func(string) error) tea.Cmd {
	return func() tea.Msg {
		if err := write(text); err != nil {
			return ErrMsg{Err: err}
		}
		return StatusMsgCmd{Msg: "Copied " + what}
	}
}

// ClearStatusAfter clears the status message after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
