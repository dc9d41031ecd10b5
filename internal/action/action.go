// Package action puts the machine to sleep, with abstraction for testing.
package action

// DefaultCommand suspends a Mac immediately.
const DefaultCommand = "pmset sleepnow"

// Sleeper forces the machine to sleep.
type Sleeper interface {
	// Sleep runs the sleep action and waits for it to complete.
	// A non-nil error means the machine was not put to sleep.
	Sleep() error
}
