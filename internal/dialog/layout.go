package dialog

import (
	"github.com/rook-computer/teeui/internal/assets"
	"github.com/rook-computer/teeui/internal/params"
	"github.com/rook-computer/teeui/internal/render"
	"github.com/rook-computer/teeui/internal/render/layout"
	"github.com/rook-computer/teeui/internal/units"
)

// Element names, usable with the params edge helpers.
const (
	LabelOK     = "LabelOK"
	IconPower   = "IconPower"
	LabelCancel = "LabelCancel"
	IconVolUp   = "IconVolUp"
	IconShield  = "IconShield"
	LabelTitle  = "LabelTitle"
	LabelHint   = "LabelHint"
	LabelBody   = "LabelBody"
	QRCode      = "QRCode"
)

// QRAsset names the per-request QR bitmap.
const QRAsset = "qr"

// QRSizeDp is the edge length of the QR code.
const QRSizeDp = 36

const (
	sqrt2 = 1.4142135623
	sqrt8 = 2.828427125
)

// ArrowShape points right, toward the hardware button.
var ArrowShape = render.ConvexObjectSet{
	{units.V(0, 0), units.V(6, 6), units.V(6-sqrt8, 6), units.V(-sqrt2, sqrt2)},
	{units.V(6-sqrt8, 6), units.V(6, 6), units.V(0, 12), units.V(-sqrt2, 12-sqrt2)},
}

var (
	ref = params.Ref
	dp  = params.Dp
)

// Layout is the confirmation dialog, back to front.
var Layout = []render.Descriptor{
	render.LabelSpec{
		Name:               LabelOK,
		TextID:             TextConfirm,
		Font:               assets.FontRegular,
		FontSize:           ref(DefaultFontSize),
		LineHeight:         dp(20),
		Lines:              2,
		Dimension:          params.At(ref(LabelWidth), nil),
		Position:           params.At(ref(BorderWidth), params.Diff(ref(PowerButtonCenter), params.Div(ref(params.SelfH), 2))),
		Justification:      layout.JustifyRight,
		VerticallyCentered: true,
		TextColor:          render.DefaultTextColor,
	},
	render.ButtonSpec{
		Name:            IconPower,
		Dimension:       params.At(ref(BorderWidth), params.Diff(ref(PowerButtonBottom), ref(PowerButtonTop))),
		Position:        params.At(params.Diff(ref(RightEdgeOfScreen), ref(BorderWidth)), ref(PowerButtonTop)),
		CornerRadius:    dp(3),
		RoundTopLeft:    true,
		RoundBottomLeft: true,
		ButtonColor:     render.DefaultTextColor,
		IconColor:       render.White,
		ConvexObjects:   ArrowShape,
	},
	render.LabelSpec{
		Name:               LabelCancel,
		TextID:             TextCancel,
		Font:               assets.FontRegular,
		FontSize:           ref(DefaultFontSize),
		LineHeight:         dp(20),
		Lines:              2,
		Dimension:          params.At(ref(LabelWidth), nil),
		Position:           params.At(ref(BorderWidth), params.Diff(ref(VolUpButtonCenter), params.Div(ref(params.SelfH), 2))),
		Justification:      layout.JustifyRight,
		VerticallyCentered: true,
		TextColor:          render.DefaultTextColor,
	},
	render.ButtonSpec{
		Name:          IconVolUp,
		Dimension:     params.At(ref(BorderWidth), params.Diff(ref(VolUpButtonBottom), ref(VolUpButtonTop))),
		Position:      params.At(params.Diff(ref(RightEdgeOfScreen), ref(BorderWidth)), ref(VolUpButtonTop)),
		CornerRadius:  dp(5),
		ButtonColor:   render.White,
		IconColor:     render.DefaultTextColor,
		ConvexObjects: ArrowShape,
	},
	render.BitmapSpec{
		Name:     IconShield,
		Asset:    assets.Shield,
		Height:   dp(36),
		Position: params.At(ref(BorderWidth), params.Sum(params.BottomEdgeOf(LabelCancel), dp(60))),
	},
	render.LabelSpec{
		Name:               LabelTitle,
		TextID:             TextTitle,
		Font:               assets.FontMedium,
		FontSize:           dp(22),
		LineHeight:         dp(28),
		Lines:              1,
		Dimension:          params.At(params.Diff(ref(RightEdgeOfScreen), ref(BorderWidth)), nil),
		Position:           params.At(ref(BorderWidth), params.Sum(params.BottomEdgeOf(IconShield), dp(16))),
		VerticallyCentered: true,
		TextColor:          render.DefaultTextColor,
	},
	render.LabelSpec{
		Name:               LabelHint,
		TextID:             TextHint,
		Font:               assets.FontRegular,
		FontSize:           ref(DefaultFontSize),
		LineHeight:         params.Scale(ref(DefaultFontSize), 1.5),
		Lines:              4,
		Dimension:          params.At(ref(LabelWidth), nil),
		Position:           params.At(ref(BorderWidth), params.Diff(params.Diff(ref(BottomOfScreen), ref(BorderWidth)), ref(params.SelfH))),
		VerticallyCentered: true,
		TextColor:          render.DefaultTextColor,
	},
	render.LabelSpec{
		Name:       LabelBody,
		TextID:     TextPrompt,
		Font:       assets.FontRegular,
		FontSize:   ref(BodyFontSize),
		LineHeight: params.Scale(ref(BodyFontSize), 1.4),
		Lines:      20,
		Position:   params.At(ref(BorderWidth), params.Sum(params.BottomEdgeOf(LabelTitle), dp(24))),
		Dimension:  params.At(ref(LabelWidth), params.Diff(params.Diff(params.TopOf(LabelHint), ref(params.SelfY)), dp(24))),
		TextColor:  render.DefaultTextColor,
	},
}

// QRCodeSpec shows the QR bitmap at the right end of the shield row. It is
// appended to Layout only when a payload is given.
var QRCodeSpec = render.BitmapSpec{
	Name:     QRCode,
	Asset:    QRAsset,
	Position: params.At(params.Diff(ref(RightLabelEdge), ref(params.SelfW)), params.TopOf(IconShield)),
}
