//go:build linux

package system

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/rook-computer/teeui/internal/logging"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

var consolePaths = []string{"/dev/tty", "/dev/tty0"}

// SetGraphicsMode switches the active console to graphics mode so the text
// console does not draw over the dialog.
func SetGraphicsMode(l logging.Logger) error {
	err := setConsoleMode(kdGraphics)
	logMode(l, "KD_GRAPHICS", err)
	return err
}

// RestoreTextMode returns the active console to text mode.
func RestoreTextMode(l logging.Logger) error {
	err := setConsoleMode(kdText)
	logMode(l, "KD_TEXT", err)
	return err
}

func setConsoleMode(mode int) error {
	var lastErr error
	for _, p := range consolePaths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		_ = unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("KDSETMODE %d on %s: %w", mode, p, err)
			continue
		}
		return nil
	}
	return lastErr
}

func logMode(l logging.Logger, mode string, err error) {
	log := logging.OrNoop(l)
	if err != nil {
		log.Errorf("tty", "%s failed: %v", mode, err)
		return
	}
	log.Infof("tty", "%s set", mode)
}
