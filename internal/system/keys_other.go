//go:build !linux

package system

import (
	"context"

	"github.com/rook-computer/teeui/internal/logging"
)

// WatchKeys needs evdev and always fails on this platform.
func WatchKeys(ctx context.Context, l logging.Logger, onKey func(code uint16)) error {
	return ErrNoInputDevices
}
