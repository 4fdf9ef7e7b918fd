package dialog

import (
	"github.com/rook-computer/teeui/internal/params"
	"github.com/rook-computer/teeui/internal/units"
)

// Parameter names of the confirmation dialog.
const (
	RightEdgeOfScreen = "RightEdgeOfScreen"
	BottomOfScreen    = "BottomOfScreen"
	PowerButtonTop    = "PowerButtonTop"
	PowerButtonBottom = "PowerButtonBottom"
	VolUpButtonTop    = "VolUpButtonTop"
	VolUpButtonBottom = "VolUpButtonBottom"
	DefaultFontSize   = "DefaultFontSize"
	BodyFontSize      = "BodyFontSize"

	BorderWidth       = "BorderWidth"
	PowerButtonCenter = "PowerButtonCenter"
	VolUpButtonCenter = "VolUpButtonCenter"
	GrayZone          = "GrayZone"
	RightLabelEdge    = "RightLabelEdge"
	LabelWidth        = "LabelWidth"
)

// Parameters resolves the dialog geometry from a device description. Font
// sizes switch to larger values in magnified mode.
var Parameters = params.NewSet("ConUIParameters").
	Device(RightEdgeOfScreen, func(d params.DeviceInfo) units.Length { return units.Pxs(float64(d.WidthPx)) }).
	Device(BottomOfScreen, func(d params.DeviceInfo) units.Length { return units.Pxs(float64(d.HeightPx)) }).
	Device(PowerButtonTop, func(d params.DeviceInfo) units.Length { return units.Mm(d.PowerButtonTopMm) }).
	Device(PowerButtonBottom, func(d params.DeviceInfo) units.Length { return units.Mm(d.PowerButtonBottomMm) }).
	Device(VolUpButtonTop, func(d params.DeviceInfo) units.Length { return units.Mm(d.VolUpButtonTopMm) }).
	Device(VolUpButtonBottom, func(d params.DeviceInfo) units.Length { return units.Mm(d.VolUpButtonBottomMm) }).
	Modal(DefaultFontSize, units.Dp(14), units.Dp(18)).
	Modal(BodyFontSize, units.Dp(16), units.Dp(20)).
	Const(BorderWidth, params.Dp(24)).
	Const(PowerButtonCenter, params.Mid(params.Ref(PowerButtonTop), params.Ref(PowerButtonBottom))).
	Const(VolUpButtonCenter, params.Mid(params.Ref(VolUpButtonTop), params.Ref(VolUpButtonBottom))).
	Const(GrayZone, params.Dp(12)).
	Const(RightLabelEdge, params.Diff(params.Diff(params.Ref(RightEdgeOfScreen), params.Ref(BorderWidth)), params.Ref(GrayZone))).
	Const(LabelWidth, params.Diff(params.Ref(RightLabelEdge), params.Ref(BorderWidth))).
	MustBuild()
