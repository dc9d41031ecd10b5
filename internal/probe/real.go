//go:build darwin && cgo

package probe

/*
#cgo LDFLAGS: -framework CoreGraphics -framework IOKit -framework CoreFoundation
#include <CoreFoundation/CoreFoundation.h>
#include <CoreGraphics/CoreGraphics.h>
#include <IOKit/pwr_mgt/IOPMLib.h>

static int sa_display_asleep(void) {
	CGDirectDisplayID id = CGMainDisplayID();
	if (id == kCGNullDirectDisplay) {
		return 0;
	}
	return CGDisplayIsAsleep(id) ? 1 : 0;
}

static int sa_session_locked(void) {
	CFDictionaryRef session = CGSessionCopyCurrentDictionary();
	if (session == NULL) {
		return 0;
	}

	int locked = 0;
	CFTypeRef value = CFDictionaryGetValue(session, CFSTR("CGSSessionScreenIsLocked"));
	if (value != NULL && CFGetTypeID(value) == CFBooleanGetTypeID()) {
		locked = CFBooleanGetValue((CFBooleanRef)value) ? 1 : 0;
	}
	CFRelease(session);
	return locked;
}

// Return codes mirror assertionOK..assertionNotNumber on the Go side.
static int sa_idle_sleep_prevented(IOReturn *status, long long *out) {
	CFDictionaryRef assertions = NULL;
	*status = IOPMCopyAssertionsStatus(&assertions);
	if (*status != kIOReturnSuccess || assertions == NULL) {
		if (assertions != NULL) {
			CFRelease(assertions);
		}
		return 1;
	}

	int rc = 0;
	CFTypeRef value = CFDictionaryGetValue(assertions, CFSTR("PreventUserIdleSystemSleep"));
	if (value == NULL) {
		rc = 2;
	} else if (CFGetTypeID(value) != CFNumberGetTypeID() ||
	           !CFNumberGetValue((CFNumberRef)value, kCFNumberLongLongType, out)) {
		rc = 3;
	}
	CFRelease(assertions);
	return rc;
}
*/
import "C"

import "fmt"

const (
	assertionOK = iota
	assertionUnavailable
	assertionKeyMissing
	assertionNotNumber
)

// RealReader queries CoreGraphics and IOKit directly.
// Every call copies fresh data from the OS and releases it before returning.
type RealReader struct{}

// NewRealReader creates a reader for the running macOS session.
func NewRealReader() (*RealReader, error) {
	return &RealReader{}, nil
}

// DisplaySleeping reports whether the main display is asleep.
// Returns false when there is no main display.
func (r *RealReader) DisplaySleeping() bool {
	return C.sa_display_asleep() != 0
}

// SessionLocked reports the CGSSessionScreenIsLocked session attribute.
func (r *RealReader) SessionLocked() bool {
	return C.sa_session_locked() != 0
}

// IdleSleepPrevented reports whether PreventUserIdleSystemSleep is non-zero
// in the IOPM assertions status table.
func (r *RealReader) IdleSleepPrevented() (bool, error) {
	var status C.IOReturn
	var value C.longlong

	switch int(C.sa_idle_sleep_prevented(&status, &value)) {
	case assertionOK:
		return value != 0, nil
	case assertionUnavailable:
		return false, fmt.Errorf("%w: IOPMCopyAssertionsStatus returned 0x%08x", ErrAssertionsUnavailable, uint32(status))
	case assertionKeyMissing:
		return false, fmt.Errorf("%w: %s", ErrAssertionKeyMissing, KeyPreventUserIdleSystemSleep)
	default:
		return false, fmt.Errorf("%w: %s", ErrAssertionNotNumber, KeyPreventUserIdleSystemSleep)
	}
}

// Close releases nothing; the reader holds no OS handles between calls.
func (r *RealReader) Close() error {
	return nil
}
