package dialog

import (
	"fmt"

	"github.com/rook-computer/teeui/internal/params"
)

// Profile is a named device description for previews and tests.
type Profile struct {
	Name   string
	Device params.DeviceInfo
}

// Profiles lists the known devices. Button positions are millimeters from
// the top edge of the screen.
var Profiles = []Profile{
	{
		Name: "phone-small",
		Device: params.DeviceInfo{
			WidthPx:             720,
			HeightPx:            1280,
			Dp2Px:               2.0,
			Mm2Px:               11.8,
			PowerButtonTopMm:    12,
			PowerButtonBottomMm: 20,
			VolUpButtonTopMm:    26,
			VolUpButtonBottomMm: 36,
		},
	},
	{
		Name: "phone-medium",
		Device: params.DeviceInfo{
			WidthPx:             1080,
			HeightPx:            1920,
			Dp2Px:               2.625,
			Mm2Px:               16.5,
			PowerButtonTopMm:    12,
			PowerButtonBottomMm: 20,
			VolUpButtonTopMm:    26,
			VolUpButtonBottomMm: 36,
		},
	},
	{
		Name: "phone-large",
		Device: params.DeviceInfo{
			WidthPx:             1440,
			HeightPx:            3040,
			Dp2Px:               3.5,
			Mm2Px:               21.6,
			PowerButtonTopMm:    14,
			PowerButtonBottomMm: 22,
			VolUpButtonTopMm:    30,
			VolUpButtonBottomMm: 40,
		},
	},
}

// DefaultProfile is used when no device is selected.
const DefaultProfile = "phone-medium"

// LookupProfile returns the device of the named profile, with the
// magnification flag applied.
func LookupProfile(name string, magnified bool) (params.DeviceInfo, error) {
	for _, p := range Profiles {
		if p.Name == name {
			dev := p.Device
			dev.Magnified = magnified
			return dev, nil
		}
	}
	return params.DeviceInfo{}, fmt.Errorf("unknown device profile %q", name)
}

// ProfileNames returns the profile names in table order.
func ProfileNames() []string {
	names := make([]string, len(Profiles))
	for i, p := range Profiles {
		names[i] = p.Name
	}
	return names
}
