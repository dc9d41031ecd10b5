// Package probe reads display, session-lock and power-assertion state.
// The real implementation calls CoreGraphics and IOKit through cgo.
// The fake implementation allows testing without a Mac.
package probe

import "errors"

// DisplayProbe reports whether the main display is asleep.
// Any inability to query the display reads as awake.
type DisplayProbe interface {
	DisplaySleeping() bool
}

// LockProbe reports whether the interactive session is screen-locked.
// Missing or malformed session data reads as unlocked.
type LockProbe interface {
	SessionLocked() bool
}

// AssertionProbe reports whether any process holds a
// PreventUserIdleSystemSleep power assertion.
type AssertionProbe interface {
	IdleSleepPrevented() (bool, error)
}

// Reader bundles the three probes and releases any OS resources on Close.
type Reader interface {
	DisplayProbe
	LockProbe
	AssertionProbe

	Close() error
}

// Keys looked up in the OS tables.
const (
	KeyScreenIsLocked             = "CGSSessionScreenIsLocked"
	KeyPreventUserIdleSystemSleep = "PreventUserIdleSystemSleep"
)

var (
	// ErrAssertionsUnavailable is returned when the assertions status table
	// cannot be copied.
	ErrAssertionsUnavailable = errors.New("assertions status unavailable")

	// ErrAssertionKeyMissing is returned when the table has no
	// PreventUserIdleSystemSleep entry.
	ErrAssertionKeyMissing = errors.New("assertion key not found")

	// ErrAssertionNotNumber is returned when the entry is not a number.
	ErrAssertionNotNumber = errors.New("assertion value is not a number")

	// ErrUnsupported is returned by NewRealReader on platforms without the
	// macOS frameworks.
	ErrUnsupported = errors.New("probe: not supported on this platform (requires darwin with cgo)")
)
