package logic

import "time"

// Trigger reports whether a tick's readings should keep the sleep countdown
// running. A locked session overrides an idle-prevent assertion.
func Trigger(in Input) bool {
	return in.DisplaySleeping && (!in.IdlePrevented || in.DeviceLocked)
}

// Timer is a two-state debounce: Idle, or Counting since a timestamp.
type Timer struct {
	grace         time.Duration
	counting      bool
	since         time.Time
	startTime     time.Time
	counts        Counts
	lastHeartbeat time.Time
}

// NewTimer creates an idle timer that fires after grace of continuous trigger.
// The startTime is used for calculating uptime in heartbeats.
func NewTimer(grace time.Duration, startTime time.Time) *Timer {
	return &Timer{
		grace:         grace,
		startTime:     startTime,
		lastHeartbeat: startTime,
	}
}

// Process feeds one tick into the state machine and returns the resulting
// event, if any. At most one event is produced per tick.
func (t *Timer) Process(in Input) (Event, bool) {
	if !Trigger(in) {
		if !t.counting {
			return Event{}, false
		}
		ev := Event{Timestamp: in.Time, Type: EventTimerCanceled, Since: t.since}
		t.reset()
		t.counts.Canceled++
		return ev, true
	}

	if !t.counting {
		t.counting = true
		t.since = in.Time
		t.counts.Started++
		return Event{Timestamp: in.Time, Type: EventTimerStarted}, true
	}

	if in.Time.Sub(t.since) < t.grace {
		return Event{}, false
	}

	ev := Event{Timestamp: in.Time, Type: EventSleep, Since: t.since}
	t.reset()
	t.counts.Slept++
	return ev, true
}

func (t *Timer) reset() {
	t.counting = false
	t.since = time.Time{}
}

// Counting reports whether a countdown is in progress, and since when.
func (t *Timer) Counting() (bool, time.Time) {
	return t.counting, t.since
}

// CountsSnapshot returns a copy of the event counters.
func (t *Timer) CountsSnapshot() Counts {
	return t.counts
}

// CheckHeartbeat returns heartbeat data if the interval has elapsed since the
// last heartbeat (or startup). Returns nil if the interval has not elapsed,
// or if interval is <= 0 (disabled).
func (t *Timer) CheckHeartbeat(now time.Time, interval time.Duration) *HeartbeatData {
	if interval <= 0 {
		return nil
	}

	if now.Sub(t.lastHeartbeat) < interval {
		return nil
	}

	t.lastHeartbeat = now
	return &HeartbeatData{
		Timestamp: now,
		Uptime:    now.Sub(t.startTime),
		Counting:  t.counting,
		Counts:    t.counts,
	}
}
