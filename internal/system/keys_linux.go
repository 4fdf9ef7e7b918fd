//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/rook-computer/teeui/internal/logging"
)

// WatchKeys reads every /dev/input/event* device until ctx is done and calls
// onKey with the code of each key press. onKey may be called from several
// goroutines.
func WatchKeys(ctx context.Context, l logging.Logger, onKey func(code uint16)) error {
	log := logging.OrNoop(l)

	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := binary.Size(unix.Timeval{})

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		return ErrNoInputDevices
	}

	opened := 0
	for _, p := range paths {
		fd, err := unix.Open(p, unix.O_RDONLY|unix.O_NONBLOCK, 0)
		if err != nil {
			log.Errorf("input", "open %s: %v", p, err)
			continue
		}
		opened++
		go readKeys(ctx, log, os.NewFile(uintptr(fd), p), fd, tvSize, onKey)
	}
	if opened == 0 {
		return ErrNoInputDevices
	}
	log.Infof("input", "watching %d input devices", opened)
	return nil
}

func readKeys(ctx context.Context, log logging.Logger, f *os.File, fd, tvSize int, onKey func(uint16)) {
	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			log.Errorf("input", "poll %s: %v", f.Name(), err)
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			log.Errorf("input", "read %s: %v", f.Name(), err)
			return
		}
		for _, code := range DecodeKeyPresses(buf[:n], tvSize) {
			onKey(code)
		}
	}
}
