//go:build !linux

package system

import (
	"errors"

	"github.com/rook-computer/teeui/internal/logging"
)

var errNoConsole = errors.New("console mode switching requires linux")

func SetGraphicsMode(l logging.Logger) error {
	logging.OrNoop(l).Errorf("tty", "KD_GRAPHICS failed: %v", errNoConsole)
	return errNoConsole
}

func RestoreTextMode(l logging.Logger) error { return errNoConsole }
