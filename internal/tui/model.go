package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/podium/internal/api"
	"github.com/javiermolinar/podium/internal/config"
	"github.com/javiermolinar/podium/internal/dashboard"
	"github.com/javiermolinar/podium/internal/debuglog"
	"github.com/javiermolinar/podium/internal/leaderboard"
	"github.com/javiermolinar/podium/internal/netwatch"
	"github.com/javiermolinar/podium/internal/tui/commands"
	"github.com/javiermolinar/podium/internal/tui/theme"
)

// InputMode identifies which prompt, if any, owns the keyboard.
type InputMode int

const (
	InputNone InputMode = iota
	InputSearch
	InputPageSize
)

func (m InputMode) String() string {
	switch m {
	case InputSearch:
		return "search"
	case InputPageSize:
		return "page size"
	default:
		return "none"
	}
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	ctrl      *dashboard.Controller
	fetcher   leaderboard.Fetcher
	health    commands.HealthChecker
	netEvents <-chan netwatch.Event
	copyText  func(string) error
	config    *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Components
	input     textinput.Model
	inputMode InputMode
	spinner   spinner.Model
	viewport  viewport.Model

	// Terminal dimensions and layout
	width       int
	height      int
	layoutCache LayoutCache

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithNetEvents subscribes the model to connectivity transitions.
func WithNetEvents(events <-chan netwatch.Event) ModelOption {
	return func(m *Model) {
		m.netEvents = events
	}
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(write func(string) error) ModelOption {
	return func(m *Model) {
		m.copyText = write
	}
}

// New creates a new TUI model.
func New(ctrl *dashboard.Controller, fetcher leaderboard.Fetcher, health commands.HealthChecker, cfg *config.Config, opts ...ModelOption) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 128

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	m := &Model{
		ctrl:     ctrl,
		fetcher:  fetcher,
		health:   health,
		copyText: clipboard.WriteAll,
		config:   cfg,
		theme:    t,
		styles:   styles,
		input:    ti,
		spinner:  sp,
		viewport: viewport.New(0, 0),
	}
	m.layoutCache = m.buildLayoutCache(0, 0)

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Init starts the health badge probe, the spinner and the connectivity watch.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	cmds = append(cmds, m.effectCmds(m.ctrl.Start())...)
	if m.netEvents != nil {
		cmds = append(cmds, commands.WaitNetEvent(m.netEvents))
	}
	return tea.Batch(cmds...)
}

// Run starts the TUI. Debug logging goes wherever debuglog was initialized.
func Run(cfg *config.Config) error {
	client, err := api.New(cfg.API.BaseURL,
		api.WithHealthTimeout(cfg.HealthTimeout()),
		api.WithRequestTimeout(cfg.RequestTimeout()),
	)
	if err != nil {
		return err
	}
	fetcher := client.Fetcher(api.RetryPolicy{
		MaxAttempts: cfg.Retry.MaxAttempts,
		BaseDelay:   cfg.RetryBaseDelay(),
	})

	state := leaderboard.NewStateWithDefaults(cfg.InitialQuery())
	ctrl := dashboard.New(state, dashboard.Options{
		StartupDelay: cfg.StartupDelay(),
		PageSizes:    cfg.Board.PageSizes,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var opts []ModelOption
	if cfg.Network.Watch {
		events := make(chan netwatch.Event)
		go netwatch.New(cfg.PollInterval(), nil).Run(ctx, events)
		opts = append(opts, WithNetEvents(events))
	}

	debuglog.Log("START", map[string]any{
		"base_url": client.BaseURL(),
		"query":    state.Query(),
		"watch":    cfg.Network.Watch,
	})

	model := New(ctrl, fetcher, client, cfg, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())
	_, err = p.Run()
	return err
}
