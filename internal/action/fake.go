package action

// FakeSleeper records sleep invocations for test assertions.
type FakeSleeper struct {
	// Calls counts Sleep invocations, including failed ones.
	Calls int

	// SleepError, if set, will be returned by Sleep.
	SleepError error
}

// NewFakeSleeper creates a FakeSleeper for testing.
func NewFakeSleeper() *FakeSleeper {
	return &FakeSleeper{}
}

// Sleep records the call.
func (f *FakeSleeper) Sleep() error {
	f.Calls++
	return f.SleepError
}

// Reset clears recorded calls.
func (f *FakeSleeper) Reset() {
	f.Calls = 0
	f.SleepError = nil
}
