//go:build !darwin || !cgo

package probe

// RealReader is not available without the macOS frameworks.
type RealReader struct{}

// NewRealReader returns ErrUnsupported on non-darwin or cgo-disabled builds.
func NewRealReader() (*RealReader, error) {
	return nil, ErrUnsupported
}

// DisplaySleeping is not implemented on this platform.
func (r *RealReader) DisplaySleeping() bool { return false }

// SessionLocked is not implemented on this platform.
func (r *RealReader) SessionLocked() bool { return false }

// IdleSleepPrevented is not implemented on this platform.
func (r *RealReader) IdleSleepPrevented() (bool, error) {
	return false, ErrUnsupported
}

// Close is not implemented on this platform.
func (r *RealReader) Close() error {
	return nil
}
