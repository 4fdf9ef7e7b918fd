package render

import (
	"errors"
	"fmt"

	"github.com/rook-computer/teeui/internal/bitmap"
	"github.com/rook-computer/teeui/internal/params"
	"github.com/rook-computer/teeui/internal/text"
)

// Error is the result code of drawing operations. It is a plain value: OK is
// the zero value and results are combined with Or rather than returned early.
type Error uint32

const (
	OK Error = iota
	OutOfBoundsDrawing
	BitmapReadFailed
	BitmapOutOfRange
	FaceNotLoaded
	GlyphNotLoaded
	Localization
	InvalidLayout
	InvalidDeviceInfo
)

var errorNames = [...]string{
	OK:                 "OK",
	OutOfBoundsDrawing: "OutOfBoundsDrawing",
	BitmapReadFailed:   "BitmapReadFailed",
	BitmapOutOfRange:   "BitmapOutOfRange",
	FaceNotLoaded:      "FaceNotLoaded",
	GlyphNotLoaded:     "GlyphNotLoaded",
	Localization:       "Localization",
	InvalidLayout:      "InvalidLayout",
	InvalidDeviceInfo:  "InvalidDeviceInfo",
}

func (e Error) String() string {
	if int(e) < len(errorNames) {
		return errorNames[e]
	}
	return fmt.Sprintf("Error(%d)", uint32(e))
}

// Code is the numeric result reported to callers; 0 is success.
func (e Error) Code() uint32 { return uint32(e) }

// Or combines two results, keeping the first one that is not OK.
func (e Error) Or(other Error) Error {
	if e != OK {
		return e
	}
	return other
}

// Err converts e into a Go error; OK becomes nil.
func (e Error) Err() error {
	if e == OK {
		return nil
	}
	return codeError{e}
}

type codeError struct{ code Error }

func (c codeError) Error() string { return "teeui: " + c.code.String() }

// ErrorFrom maps errors produced by collaborators onto result codes.
func ErrorFrom(err error) Error {
	var ce codeError
	switch {
	case err == nil:
		return OK
	case errors.As(err, &ce):
		return ce.code
	case errors.Is(err, bitmap.ErrOutOfRange):
		return BitmapOutOfRange
	case errors.Is(err, bitmap.ErrReadFailed):
		return BitmapReadFailed
	case errors.Is(err, text.ErrUnknownFont), errors.Is(err, text.ErrFaceNotLoaded):
		return FaceNotLoaded
	case errors.Is(err, text.ErrNoTranslation):
		return Localization
	case errors.Is(err, params.ErrInvalidDevice):
		return InvalidDeviceInfo
	default:
		// Parameter errors, unit mismatches and anything else a descriptor
		// can fail with.
		return InvalidLayout
	}
}
