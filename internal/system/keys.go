package system

import (
	"encoding/binary"
	"errors"
)

const evKey = 0x01

// Key codes from linux/input-event-codes.h.
const (
	KeyEsc      uint16 = 1
	KeyF4       uint16 = 62
	KeyVolumeUp uint16 = 115
	KeyPower    uint16 = 116
)

// ErrNoInputDevices is returned by WatchKeys when there is nothing to watch.
var ErrNoInputDevices = errors.New("no evdev input devices")

// DecodeKeyPresses parses a buffer of input_event records and returns the
// codes of the keys pressed down, in order. Each record is a timeval of
// tvSize bytes followed by u16 type, u16 code and s32 value. Trailing
// partial records are ignored.
func DecodeKeyPresses(buf []byte, tvSize int) []uint16 {
	eventSize := tvSize + 2 + 2 + 4
	var codes []uint16
	for off := 0; off+eventSize <= len(buf); off += eventSize {
		rec := buf[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ == evKey && value == 1 {
			codes = append(codes, code)
		}
	}
	return codes
}
