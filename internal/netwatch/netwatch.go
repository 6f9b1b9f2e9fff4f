// Package netwatch reports transitions of local network connectivity.
package netwatch

import (
	"context"
	"net"
	"time"
)

// DefaultInterval is how often connectivity is sampled.
const DefaultInterval = 2 * time.Second

// Event is a connectivity transition.
type Event struct {
	Online bool
	At     time.Time
}

// Checker reports whether the host currently has network connectivity.
type Checker func() bool

// Watcher samples a Checker and emits an Event whenever the answer changes.
type Watcher struct {
	interval time.Duration
	check    Checker
	last     *bool
}

// New creates a watcher. A nil checker uses InterfacesUp.
func New(interval time.Duration, check Checker) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if check == nil {
		check = InterfacesUp
	}
	return &Watcher{interval: interval, check: check}
}

// Sample checks connectivity once and reports a transition if there was one.
// The first sample only records the baseline.
func (w *Watcher) Sample(now time.Time) (Event, bool) {
	online := w.check()
	if w.last == nil {
		w.last = &online
		return Event{}, false
	}
	if *w.last == online {
		return Event{}, false
	}
	*w.last = online
	return Event{Online: online, At: now}, true
}

// Run samples on every tick and sends transitions to out until ctx is done.
func (w *Watcher) Run(ctx context.Context, out chan<- Event) {
	w.Sample(time.Now())

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			ev, changed := w.Sample(now)
			if !changed {
				continue
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}

// InterfacesUp reports whether any non-loopback interface is up with an address.
func InterfacesUp() bool {
	ifaces, err := net.Interfaces()
	if err != nil {
		return false
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		if len(addrs) > 0 {
			return true
		}
	}
	return false
}
