// Package dashboard holds the UI-independent leaderboard controller and its presentation state.
package dashboard

import (
	"fmt"
	"time"

	"github.com/javiermolinar/podium/internal/leaderboard"
)

// Mode is the presentation mode of the ranking area. Exactly one is active.
type Mode int

const (
	ModeLoading Mode = iota
	ModeError
	ModeEmpty
	ModePopulated
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "Loading"
	case ModeError:
		return "Error"
	case ModeEmpty:
		return "Empty"
	case ModePopulated:
		return "Populated"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ServerStatus is the last known health of the backend.
type ServerStatus int

const (
	ServerUnknown ServerStatus = iota
	ServerOnline
	ServerOffline
)

func (s ServerStatus) String() string {
	switch s {
	case ServerOnline:
		return "online"
	case ServerOffline:
		return "offline"
	default:
		return "checking"
	}
}

// Recovery is an action offered on the error panel.
type Recovery int

const (
	RecoverRetry Recovery = iota
	RecoverCheckServer
)

// Label returns the button text for the action.
func (r Recovery) Label() string {
	switch r {
	case RecoverRetry:
		return "Retry"
	case RecoverCheckServer:
		return "Check server"
	default:
		return ""
	}
}

// Screen is a read-only snapshot of everything the view needs to paint.
type Screen struct {
	Mode        Mode
	Message     string
	Recoveries  []Recovery
	Items       []leaderboard.Entrant
	Query       leaderboard.Query
	Pagination  Pagination
	Server      ServerStatus
	LastRefresh time.Time
	Notice      string
}

// HasStaleData reports whether a previous result is still available under an error panel.
func (s Screen) HasStaleData() bool {
	return s.Mode == ModeError && len(s.Items) > 0
}
