package dialog

import (
	"math"
	"reflect"
	"testing"

	"github.com/rook-computer/teeui/internal/params"
	"github.com/rook-computer/teeui/internal/render"
	"github.com/rook-computer/teeui/internal/text"
	"github.com/rook-computer/teeui/internal/units"
)

func newDialog(t *testing.T) *Dialog {
	t.Helper()
	d, err := New(text.EngineOpenType, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func profile(t *testing.T, name string, magnified bool) params.DeviceInfo {
	t.Helper()
	dev, err := LookupProfile(name, magnified)
	if err != nil {
		t.Fatalf("LookupProfile: %v", err)
	}
	return dev
}

func instantiate(t *testing.T, d *Dialog, dev params.DeviceInfo, lang, prompt string) map[string]render.Element {
	t.Helper()
	env := render.Env{
		Fonts:      d.Fonts,
		Assets:     d.Assets,
		Translator: text.Overlay{Base: d.Catalog, Values: map[text.TextID]string{TextPrompt: prompt}},
		Language:   lang,
	}
	l, err := render.Instantiate(params.NewContext(Parameters, dev), Layout, env)
	if err != render.OK {
		t.Fatalf("Instantiate = %s", err)
	}
	out := map[string]render.Element{}
	for _, e := range l {
		out[e.(render.Named).Name()] = e
	}
	return out
}

func TestParameters(t *testing.T) {
	if err := Parameters.Err(); err != nil {
		t.Fatalf("Parameters: %v", err)
	}
	for _, p := range Profiles {
		t.Run(p.Name, func(t *testing.T) {
			ctx := params.NewContext(Parameters, p.Device)
			top, _ := ctx.Param(PowerButtonTop)
			bottom, _ := ctx.Param(PowerButtonBottom)
			center, err := ctx.Param(PowerButtonCenter)
			if err != nil {
				t.Fatalf("Param: %v", err)
			}
			if center != (top+bottom)/2 {
				t.Fatalf("PowerButtonCenter = %v, want %v", center, (top+bottom)/2)
			}
			edge, _ := ctx.Param(RightLabelEdge)
			if want := units.Px(float64(p.Device.WidthPx) - 36*p.Device.Dp2Px); math.Abs(float64(edge-want)) > 1e-9 {
				t.Fatalf("RightLabelEdge = %v, want %v", edge, want)
			}
		})
	}
}

func TestMagnifiedFontSizes(t *testing.T) {
	type tc struct {
		magnified         bool
		wantDefault, body units.Px
	}
	tests := map[string]tc{
		"regular":   {magnified: false, wantDefault: 28, body: 32},
		"magnified": {magnified: true, wantDefault: 36, body: 40},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := params.NewContext(Parameters, profile(t, "phone-small", tt.magnified))
			if got, _ := ctx.Param(DefaultFontSize); got != tt.wantDefault {
				t.Fatalf("DefaultFontSize = %v, want %v", got, tt.wantDefault)
			}
			if got, _ := ctx.Param(BodyFontSize); got != tt.body {
				t.Fatalf("BodyFontSize = %v, want %v", got, tt.body)
			}
			// Border width is not affected by magnification.
			if got, _ := ctx.Param(BorderWidth); got != 48 {
				t.Fatalf("BorderWidth = %v", got)
			}
		})
	}
}

func TestLayoutGeometry(t *testing.T) {
	d := newDialog(t)
	dev := profile(t, "phone-small", false)
	els := instantiate(t, d, dev, "en", "Pay 10 EUR to Example Shop?")

	for _, name := range []string{LabelOK, IconPower, LabelCancel, IconVolUp, IconShield, LabelTitle, LabelHint, LabelBody} {
		if _, ok := els[name]; !ok {
			t.Fatalf("%s missing", name)
		}
	}

	power := els[IconPower].Bounds()
	if want := (units.Box{X: 672, Y: 141.6, W: 48, H: 94.4}); math.Abs(float64(power.Y-want.Y)) > 1e-9 ||
		power.X != want.X || power.W != want.W || math.Abs(float64(power.H-want.H)) > 1e-9 {
		t.Fatalf("IconPower = %+v, want %+v", power, want)
	}
	ok := els[LabelOK].Bounds()
	if got := ok.Center().Y; math.Abs(float64(got-power.Center().Y)) > 1e-9 {
		t.Fatalf("LabelOK centered at %v, power button at %v", got, power.Center().Y)
	}
	if ok.H != 80 {
		t.Fatalf("LabelOK height = %v, want two 40px lines", ok.H)
	}

	shield := els[IconShield].Bounds()
	if shield.Y != els[LabelCancel].Bounds().Bottom()+120 {
		t.Fatalf("shield top = %v", shield.Y)
	}
	if shield.H < 71 || shield.H > 72 {
		t.Fatalf("shield height = %v, want 36dp", shield.H)
	}

	hint := els[LabelHint].Bounds()
	if hint.Bottom() != 1280-48 {
		t.Fatalf("hint bottom = %v", hint.Bottom())
	}
	body := els[LabelBody].Bounds()
	if body.Y != els[LabelTitle].Bounds().Bottom()+48 || math.Abs(float64(body.Bottom()-(hint.Y-48))) > 1e-9 || body.H <= 0 {
		t.Fatalf("body = %+v between title and hint %+v", body, hint)
	}
	if got := els[LabelBody].(*render.Label).Text(); got != "Pay 10 EUR to Example Shop?" {
		t.Fatalf("body text = %q", got)
	}
}

func TestLayoutLanguages(t *testing.T) {
	d := newDialog(t)
	dev := profile(t, "phone-medium", false)

	type tc struct {
		lang string
		want string
	}
	tests := map[string]tc{
		"english":  {lang: "en", want: "Protected Confirmation"},
		"german":   {lang: "de", want: "Geschützte Bestätigung"},
		"regional": {lang: "fr-CA", want: "Confirmation protégée"},
		"unknown":  {lang: "xx", want: "Protected Confirmation"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			els := instantiate(t, d, dev, tt.lang, "x")
			if got := els[LabelTitle].(*render.Label).Text(); got != tt.want {
				t.Fatalf("title = %q, want %q", got, tt.want)
			}
		})
	}

	if got, want := Languages(), []string{"de", "en", "fr"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Languages = %v, want %v", got, want)
	}
}

func TestRender(t *testing.T) {
	d := newDialog(t)
	dev := profile(t, "phone-small", false)
	buf := make([]uint32, dev.WidthPx*dev.HeightPx)

	if err := d.Render(0, 0, dev.WidthPx, dev.HeightPx, dev.WidthPx, buf, dev, Options{Prompt: "Transfer 10 EUR?"}); err != render.OK {
		t.Fatalf("Render = %s", err)
	}
	at := func(x, y int) render.Color { return render.Color(buf[y*int(dev.WidthPx)+x]) }

	if got := at(5, 5); got != render.White {
		t.Fatalf("background = %#08x", uint32(got))
	}
	// Square right edge of the power button body.
	if got := at(715, 150); got != render.DefaultTextColor {
		t.Fatalf("power button body = %#08x", uint32(got))
	}
	// The volume button body is white on white; its arrow is dark.
	dark := 0
	for y := 306; y < 425; y++ {
		for x := 672; x < 720; x++ {
			if at(x, y) == render.DefaultTextColor {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Fatalf("volume up arrow not drawn")
	}
}

func TestRenderWithoutPrompt(t *testing.T) {
	d := newDialog(t)
	dev := profile(t, "phone-small", false)
	buf := make([]uint32, dev.WidthPx*dev.HeightPx)
	if err := d.Render(0, 0, dev.WidthPx, dev.HeightPx, dev.WidthPx, buf, dev, Options{}); err != render.Localization {
		t.Fatalf("Render = %s, want Localization", err)
	}
	if buf[0] != uint32(render.White) {
		t.Fatalf("other elements not drawn")
	}
}

func TestRenderQRCode(t *testing.T) {
	d := newDialog(t)
	dev := profile(t, "phone-small", true)
	buf := make([]uint32, dev.WidthPx*dev.HeightPx)
	opts := Options{Prompt: "Sign in?", QRPayload: "nonce:8f3a", Language: "de"}
	if err := d.Render(0, 0, dev.WidthPx, dev.HeightPx, dev.WidthPx, buf, dev, opts); err != render.OK {
		t.Fatalf("Render = %s", err)
	}

	// RightLabelEdge is 720 - 72 = 648; the code is 72px wide.
	black := 0
	for y := 0; y < int(dev.HeightPx); y++ {
		for x := 576; x < 648; x++ {
			if buf[y*int(dev.WidthPx)+x] == uint32(render.Black) {
				black++
			}
		}
	}
	if black == 0 {
		t.Fatalf("no QR modules drawn")
	}
}

func TestRenderRejectsSmallBuffer(t *testing.T) {
	dev := profile(t, "phone-small", false)
	buf := make([]uint32, 100)
	if err := Render(0, 0, dev.WidthPx, dev.HeightPx, dev.WidthPx, buf, dev, Options{Prompt: "x"}); err != render.OutOfBoundsDrawing {
		t.Fatalf("Render = %s, want OutOfBoundsDrawing", err)
	}
	for _, p := range buf {
		if p != 0 {
			t.Fatalf("buffer written")
		}
	}
}

func TestProfiles(t *testing.T) {
	dev := profile(t, DefaultProfile, true)
	if !dev.Magnified || dev.WidthPx != 1080 {
		t.Fatalf("profile = %+v", dev)
	}
	if _, err := LookupProfile("tablet", false); err == nil {
		t.Fatalf("unknown profile accepted")
	}
	if got := ProfileNames(); len(got) != len(Profiles) || got[0] != "phone-small" {
		t.Fatalf("ProfileNames = %v", got)
	}
	for _, p := range Profiles {
		if err := p.Device.Validate(); err != nil {
			t.Fatalf("%s: %v", p.Name, err)
		}
	}
}

func TestRenderEveryProfile(t *testing.T) {
	d := newDialog(t)
	for _, p := range Profiles {
		for _, magnified := range []bool{false, true} {
			name := p.Name
			if magnified {
				name += "/magnified"
			}
			t.Run(name, func(t *testing.T) {
				dev := profile(t, p.Name, magnified)
				buf := make([]uint32, dev.WidthPx*dev.HeightPx)
				opts := Options{Prompt: "Transfer 10 EUR to Example Shop?", QRPayload: "nonce:1"}
				if err := d.Render(0, 0, dev.WidthPx, dev.HeightPx, dev.WidthPx, buf, dev, opts); err != render.OK {
					t.Fatalf("Render = %s", err)
				}
			})
		}
	}
}

func TestRenderExtremeDensity(t *testing.T) {
	d := newDialog(t)
	dev := params.DeviceInfo{
		WidthPx:             64,
		HeightPx:            64,
		Dp2Px:               1e9,
		Mm2Px:               10,
		PowerButtonTopMm:    1,
		PowerButtonBottomMm: 2,
		VolUpButtonTopMm:    3,
		VolUpButtonBottomMm: 4,
	}
	if err := dev.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	buf := make([]uint32, 64*64)
	if err := d.Render(0, 0, 64, 64, 64, buf, dev, Options{Prompt: "x", QRPayload: "nonce:1"}); err == render.OK {
		t.Fatalf("Render = OK for a %v dp density", dev.Dp2Px)
	}
}
