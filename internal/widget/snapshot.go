package widget

import (
	"time"

	"vane/internal/weather"
)

// State is the request lifecycle state; transitions are owned by the
// Controller.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateError
	StateSuccess
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable copy of the widget state published after every
// mutation. Message is meaningful only in StateError; Report, View and
// LocalTime only in StateSuccess.
type Snapshot struct {
	State     State
	Query     string
	Units     weather.Units
	Message   string
	Report    weather.Report
	View      weather.ViewModel
	LocalTime time.Time
}
