// Package logic contains the pure sleep-decision logic for the daemon.
// This package has NO external dependencies (no cgo, exec, OS, or time.Sleep).
// Time is always injectable via time.Time parameters.
package logic

import "time"

// DefaultGrace is how long the screen must stay dark before sleep is forced.
const DefaultGrace = 5 * time.Second

// EventType identifies a timer transition worth reporting.
type EventType string

const (
	EventTimerStarted  EventType = "TIMER_STARTED"
	EventTimerCanceled EventType = "TIMER_CANCELED"
	EventSleep         EventType = "SLEEP"
)

// Event is emitted by Timer.Process on a state transition.
type Event struct {
	Timestamp time.Time
	Type      EventType
	// Since is when the current countdown began. Zero for TIMER_STARTED.
	Since time.Time
}

// Elapsed returns how long the countdown had been running when the event fired.
func (e Event) Elapsed() time.Duration {
	if e.Since.IsZero() {
		return 0
	}
	return e.Timestamp.Sub(e.Since)
}

// Input is one tick's worth of probe readings.
type Input struct {
	DisplaySleeping bool
	DeviceLocked    bool
	IdlePrevented   bool
	Time            time.Time
}

// Counts tracks the number of each event type since startup.
type Counts struct {
	Started  int
	Canceled int
	Slept    int
}

// HeartbeatData contains information for a heartbeat log line.
type HeartbeatData struct {
	Timestamp time.Time
	Uptime    time.Duration
	Counting  bool
	Counts    Counts
}
