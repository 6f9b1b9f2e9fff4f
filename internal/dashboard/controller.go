package dashboard

import (
	"time"

	"github.com/javiermolinar/podium/internal/api"
	"github.com/javiermolinar/podium/internal/debuglog"
	"github.com/javiermolinar/podium/internal/leaderboard"
)

// Messages shown when the backend cannot be reached.
const (
	OfflineMessage     = "Cannot connect to the leaderboard server. Make sure it is running."
	StillOfflineNotice = "Server is still offline. Check that the backend service is started."
	checkingNotice     = "Checking server..."
)

// DefaultStartupDelay lets the status badge paint before the first fetch.
const DefaultStartupDelay = 500 * time.Millisecond

// DefaultPageSizes are the presets offered for quick page size changes.
var DefaultPageSizes = []int{10, 20, 50, 100}

// EffectKind identifies work the UI adapter must perform after a controller call.
type EffectKind int

const (
	// EffectFetch runs Ticket's query (after Delay) and reports back via FetchDone.
	EffectFetch EffectKind = iota + 1
	// EffectProbe runs the health check and reports back via ProbeDone.
	EffectProbe
	// EffectScrollTop scrolls the ranking list to its first row.
	EffectScrollTop
	// EffectClearSearch empties the search input.
	EffectClearSearch
)

// ProbeReason records why a health check was issued.
type ProbeReason int

const (
	ProbeStartup ProbeReason = iota
	ProbeRecheck
	ProbeOnline
)

func (r ProbeReason) String() string {
	switch r {
	case ProbeStartup:
		return "startup"
	case ProbeRecheck:
		return "recheck"
	case ProbeOnline:
		return "online"
	default:
		return "unknown"
	}
}

// Effect is one unit of work requested by the controller.
type Effect struct {
	Kind   EffectKind
	Ticket leaderboard.Ticket
	Delay  time.Duration
	Reason ProbeReason
}

// Options configures a Controller.
type Options struct {
	StartupDelay time.Duration
	PageSizes    []int
	Now          func() time.Time
}

// Controller turns user and lifecycle events into state changes and effects.
// It never performs I/O itself and must be driven from a single goroutine.
type Controller struct {
	state *leaderboard.State
	shown leaderboard.Query // query of the result currently held in state

	mode        Mode
	message     string
	notice      string
	server      ServerStatus
	lastRefresh time.Time

	startupDelay time.Duration
	pageSizes    []int
	now          func() time.Time
}

// New creates a controller over state.
func New(state *leaderboard.State, opts Options) *Controller {
	if state == nil {
		state = leaderboard.NewState()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if len(opts.PageSizes) == 0 {
		opts.PageSizes = DefaultPageSizes
	}
	return &Controller{
		state:        state,
		shown:        state.Query(),
		mode:         ModeLoading,
		startupDelay: opts.StartupDelay,
		pageSizes:    opts.PageSizes,
		now:          opts.Now,
	}
}

// State exposes the leaderboard state for reading.
func (c *Controller) State() *leaderboard.State {
	return c.state
}

// PageSizes returns the page size presets.
func (c *Controller) PageSizes() []int {
	return c.pageSizes
}

// Mode returns the current presentation mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Screen returns a snapshot for rendering.
func (c *Controller) Screen() Screen {
	rs := c.state.Result()
	s := Screen{
		Mode:        c.mode,
		Message:     c.message,
		Items:       rs.Items,
		Query:       c.state.Query(),
		Pagination:  NewPagination(c.shown.Page, rs.TotalPages, rs.TotalCount, c.shown.PageSize),
		Server:      c.server,
		LastRefresh: c.lastRefresh,
		Notice:      c.notice,
	}
	if c.mode == ModeError {
		s.Recoveries = []Recovery{RecoverRetry, RecoverCheckServer}
	}
	return s
}

// Start shows the loading state and probes the server.
func (c *Controller) Start() []Effect {
	c.setMode(ModeLoading, "startup")
	c.server = ServerUnknown
	return []Effect{{Kind: EffectProbe, Reason: ProbeStartup}}
}

// ProbeDone applies a health check result.
func (c *Controller) ProbeDone(reason ProbeReason, online bool) []Effect {
	debuglog.Log("PROBE_DONE", map[string]any{"reason": reason.String(), "online": online})
	if online {
		c.server = ServerOnline
	} else {
		c.server = ServerOffline
	}

	switch reason {
	case ProbeStartup:
		if !online {
			c.fail(OfflineMessage)
			return nil
		}
		return c.fetch(leaderboard.OriginRefresh, c.startupDelay)
	case ProbeRecheck:
		if !online {
			c.notice = StillOfflineNotice
			return nil
		}
		c.notice = ""
		return c.Refresh()
	case ProbeOnline:
		if !online {
			c.fail(OfflineMessage)
			return nil
		}
		return c.Refresh()
	default:
		return nil
	}
}

// Refresh refetches the current query.
func (c *Controller) Refresh() []Effect {
	return c.fetch(leaderboard.OriginRefresh, 0)
}

// Retry is the error panel's retry action.
func (c *Controller) Retry() []Effect {
	return c.Refresh()
}

// CheckServer is the error panel's re-check action.
func (c *Controller) CheckServer() []Effect {
	c.notice = checkingNotice
	return []Effect{{Kind: EffectProbe, Reason: ProbeRecheck}}
}

// Search sets the search term, which resets the page, and refetches.
func (c *Controller) Search(term string) []Effect {
	c.state.SetSearchTerm(term)
	return c.Refresh()
}

// Reset clears the search and restores the default query, then refetches.
func (c *Controller) Reset() []Effect {
	c.state.Reset()
	effects := []Effect{{Kind: EffectClearSearch}}
	return append(effects, c.Refresh()...)
}

// ChangePageSize parses and applies a page size typed by the user.
// Invalid input leaves the query untouched.
func (c *Controller) ChangePageSize(raw string) ([]Effect, error) {
	size, err := leaderboard.ParsePageSize(raw)
	if err != nil {
		return nil, err
	}
	if err := c.state.SetPageSize(size); err != nil {
		return nil, err
	}
	return c.Refresh(), nil
}

// CyclePageSize moves to the next (dir > 0) or previous preset page size.
func (c *Controller) CyclePageSize(dir int) []Effect {
	current := c.state.Query().PageSize
	next := current
	if dir > 0 {
		for _, size := range c.pageSizes {
			if size > current {
				next = size
				break
			}
		}
	} else {
		for i := len(c.pageSizes) - 1; i >= 0; i-- {
			if c.pageSizes[i] < current {
				next = c.pageSizes[i]
				break
			}
		}
	}
	if next == current {
		return nil
	}
	if err := c.state.SetPageSize(next); err != nil {
		return nil
	}
	return c.Refresh()
}

// ChangeSort sets the sort field, which resets the page, and refetches.
func (c *Controller) ChangeSort(field leaderboard.SortField) ([]Effect, error) {
	if err := c.state.SetSortField(field); err != nil {
		return nil, err
	}
	return c.Refresh(), nil
}

// CycleSort switches to the next sort field.
func (c *Controller) CycleSort() []Effect {
	effects, _ := c.ChangeSort(c.state.Query().SortField.Next())
	return effects
}

// ChangePage jumps to page without touching other query fields.
// Pages outside 1..TotalPages of the shown result are ignored, as is the
// page already on screen.
func (c *Controller) ChangePage(page int) []Effect {
	total := c.state.Result().TotalPages
	if page < 1 || (total > 0 && page > total) {
		return nil
	}
	if c.mode == ModePopulated && page == c.shown.Page && c.state.Query() == c.shown {
		return nil
	}
	if err := c.state.SetPage(page); err != nil {
		return nil
	}
	return c.fetch(leaderboard.OriginPage, 0)
}

// NextPage moves one page forward.
func (c *Controller) NextPage() []Effect {
	return c.ChangePage(c.state.Query().Page + 1)
}

// PrevPage moves one page back.
func (c *Controller) PrevPage() []Effect {
	return c.ChangePage(c.state.Query().Page - 1)
}

// FirstPage jumps to page 1.
func (c *Controller) FirstPage() []Effect {
	return c.ChangePage(1)
}

// LastPage jumps to the last known page.
func (c *Controller) LastPage() []Effect {
	return c.ChangePage(c.state.Result().TotalPages)
}

// ChangePageButton activates the n-th (1-based) visible page button.
func (c *Controller) ChangePageButton(n int) []Effect {
	p := c.Screen().Pagination
	if !p.Visible || n < 1 || n > len(p.Pages) {
		return nil
	}
	return c.ChangePage(p.Pages[n-1])
}

// FetchDone applies a fetch outcome. Responses for superseded tickets are dropped.
func (c *Controller) FetchDone(t leaderboard.Ticket, rs leaderboard.ResultSet, err error) []Effect {
	if !c.state.IsCurrent(t) {
		debuglog.Log("FETCH_STALE", map[string]any{"seq": t.Seq, "request_id": t.ID})
		return nil
	}
	if err != nil {
		debuglog.Error("fetch leaderboard", err)
		c.fail(api.UserMessage(err))
		return nil
	}

	c.state.Complete(t, rs)
	c.shown = t.Query
	c.notice = ""
	if rs.Empty() {
		c.setMode(ModeEmpty, "fetch done")
	} else {
		c.setMode(ModePopulated, "fetch done")
	}
	debuglog.Log("FETCH_DONE", map[string]any{
		"seq":         t.Seq,
		"request_id":  t.ID,
		"items":       len(rs.Items),
		"total_count": rs.TotalCount,
		"total_pages": rs.TotalPages,
	})

	if t.Origin == leaderboard.OriginPage {
		return []Effect{{Kind: EffectScrollTop}}
	}
	c.lastRefresh = c.now()
	return nil
}

// Visible handles the dashboard returning to the foreground.
func (c *Controller) Visible() []Effect {
	return c.Refresh()
}

// Online handles the network coming back: re-check the server, then refetch.
func (c *Controller) Online() []Effect {
	return []Effect{{Kind: EffectProbe, Reason: ProbeOnline}}
}

// Offline handles losing the network. No probe is issued and in-flight
// fetches are retired.
func (c *Controller) Offline() []Effect {
	c.state.Retire()
	c.server = ServerOffline
	c.fail(OfflineMessage)
	return nil
}

func (c *Controller) fetch(origin leaderboard.Origin, delay time.Duration) []Effect {
	c.message = ""
	c.setMode(ModeLoading, "fetch")
	t := c.state.Begin(origin)
	debuglog.Log("FETCH_ISSUED", map[string]any{
		"seq":        t.Seq,
		"request_id": t.ID,
		"page":       t.Query.Page,
		"page_size":  t.Query.PageSize,
		"sort_by":    string(t.Query.SortField),
		"search":     t.Query.SearchTerm,
	})
	return []Effect{{Kind: EffectFetch, Ticket: t, Delay: delay}}
}

func (c *Controller) fail(message string) {
	c.message = message
	c.setMode(ModeError, message)
}

func (c *Controller) setMode(to Mode, reason string) {
	if c.mode != to {
		debuglog.Log("MODE_CHANGE", map[string]any{
			"from":   c.mode.String(),
			"to":     to.String(),
			"reason": reason,
		})
	}
	c.mode = to
}
