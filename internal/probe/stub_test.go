//go:build !darwin || !cgo

package probe

import (
	"errors"
	"testing"
)

func TestNewRealReaderUnsupported(t *testing.T) {
	r, err := NewRealReader()
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
	if r != nil {
		t.Error("expected nil reader")
	}
}
