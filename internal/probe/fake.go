package probe

import "errors"

// FakeReader is a test double that returns scripted readings.
type FakeReader struct {
	// Samples contains scripted readings to return.
	// Each DisplaySleeping() call advances to the next sample; SessionLocked
	// and IdleSleepPrevented report the current one. This matches the order
	// the driver loop queries them in.
	Samples []Sample

	// index tracks current position in Samples; -1 before the first read.
	index int

	// Closed tracks if Close was called
	Closed bool

	// Reads counts DisplaySleeping calls.
	Reads int
}

// Sample represents a single tick's readings.
type Sample struct {
	Display   bool  // main display asleep
	Locked    bool  // session screen-locked
	Prevented bool  // idle sleep assertion held
	Err       error // returned by IdleSleepPrevented when set
}

// NewFakeReader creates a FakeReader with the given samples.
func NewFakeReader(samples []Sample) *FakeReader {
	return &FakeReader{Samples: samples, index: -1}
}

// DisplaySleeping advances to the next scripted sample.
// If samples are exhausted, the last sample repeats.
func (f *FakeReader) DisplaySleeping() bool {
	f.Reads++
	if f.index < len(f.Samples)-1 {
		f.index++
	}
	return f.current().Display
}

// SessionLocked reports the current sample's lock state.
func (f *FakeReader) SessionLocked() bool {
	return f.current().Locked
}

// IdleSleepPrevented reports the current sample's assertion state.
func (f *FakeReader) IdleSleepPrevented() (bool, error) {
	if len(f.Samples) == 0 {
		return false, errors.New("no samples configured")
	}
	s := f.current()
	if s.Err != nil {
		return false, s.Err
	}
	return s.Prevented, nil
}

func (f *FakeReader) current() Sample {
	if len(f.Samples) == 0 || f.index < 0 {
		return Sample{}
	}
	return f.Samples[f.index]
}

// Close marks the reader as closed.
func (f *FakeReader) Close() error {
	f.Closed = true
	return nil
}

// Reset resets the reader to the beginning of samples.
func (f *FakeReader) Reset() {
	f.index = -1
	f.Reads = 0
	f.Closed = false
}
