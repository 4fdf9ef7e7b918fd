package params

import (
	"errors"
	"fmt"
	"math"
)

// DeviceInfo describes the display a dialog is rendered for. It is passed by
// value into every render call and never stored between calls.
type DeviceInfo struct {
	// Screen size in pixels.
	WidthPx  uint32
	HeightPx uint32

	// Conversion factors: pixels = dp * Dp2Px, pixels = mm * Mm2Px.
	Dp2Px float64
	Mm2Px float64

	// Vertical extent of the two hardware button zones along the right screen
	// edge, in millimeters from the top of the screen.
	PowerButtonTopMm    float64
	PowerButtonBottomMm float64
	VolUpButtonTopMm    float64
	VolUpButtonBottomMm float64

	// Magnified selects the alternate (larger) font size parameters.
	Magnified bool
}

// ErrInvalidDevice is returned by Validate.
var ErrInvalidDevice = errors.New("invalid device info")

// Validate rejects device descriptions that cannot produce finite geometry.
func (d DeviceInfo) Validate() error {
	if d.WidthPx == 0 || d.HeightPx == 0 {
		return fmt.Errorf("%w: empty screen %dx%d", ErrInvalidDevice, d.WidthPx, d.HeightPx)
	}
	if !positiveFinite(d.Dp2Px) {
		return fmt.Errorf("%w: dp2px %v", ErrInvalidDevice, d.Dp2Px)
	}
	if !positiveFinite(d.Mm2Px) {
		return fmt.Errorf("%w: mm2px %v", ErrInvalidDevice, d.Mm2Px)
	}
	for _, v := range []float64{d.PowerButtonTopMm, d.PowerButtonBottomMm, d.VolUpButtonTopMm, d.VolUpButtonBottomMm} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: button position %v", ErrInvalidDevice, v)
		}
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
