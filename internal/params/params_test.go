package params

import (
	"errors"
	"testing"

	"github.com/rook-computer/teeui/internal/units"
)

func buttonSet() *Set {
	return NewSet("test").
		Device("PowerButtonTop", func(d DeviceInfo) units.Length { return units.Mm(d.PowerButtonTopMm) }).
		Device("PowerButtonBottom", func(d DeviceInfo) units.Length { return units.Mm(d.PowerButtonBottomMm) }).
		Const("PowerButtonCenter", Mid(Ref("PowerButtonTop"), Ref("PowerButtonBottom"))).
		Modal("DefaultFontSize", units.Dp(14), units.Dp(18)).
		Leaf("RightEdgeOfScreen").
		Const("BorderWidth", Dp(24)).
		Const("RightLabelEdge", Diff(Ref("RightEdgeOfScreen"), Ref("BorderWidth"))).
		MustBuild()
}

func TestButtonCenterIsExactMidpoint(t *testing.T) {
	type tc struct {
		dev DeviceInfo
	}

	tests := map[string]tc{
		"integral":   {dev: DeviceInfo{WidthPx: 1080, HeightPx: 2160, Dp2Px: 2.625, Mm2Px: 17.42, PowerButtonTopMm: 20, PowerButtonBottomMm: 30}},
		"fractional": {dev: DeviceInfo{WidthPx: 720, HeightPx: 1440, Dp2Px: 2, Mm2Px: 11.37, PowerButtonTopMm: 33.3, PowerButtonBottomMm: 41.7}},
		"reversed":   {dev: DeviceInfo{WidthPx: 1440, HeightPx: 3040, Dp2Px: 3.5, Mm2Px: 21.9, PowerButtonTopMm: 50, PowerButtonBottomMm: 40}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := NewContext(buttonSet(), tt.dev)
			top, err := ctx.Param("PowerButtonTop")
			if err != nil {
				t.Fatalf("PowerButtonTop: %v", err)
			}
			bottom, err := ctx.Param("PowerButtonBottom")
			if err != nil {
				t.Fatalf("PowerButtonBottom: %v", err)
			}
			center, err := ctx.Param("PowerButtonCenter")
			if err != nil {
				t.Fatalf("PowerButtonCenter: %v", err)
			}
			if want := (top + bottom) / 2; center != want {
				t.Fatalf("center = %v, want %v", center, want)
			}
			if want := units.Px(tt.dev.PowerButtonTopMm * tt.dev.Mm2Px); top != want {
				t.Fatalf("top = %v, want %v", top, want)
			}
		})
	}
}

func TestModalSelectsMagnifiedValue(t *testing.T) {
	dev := DeviceInfo{WidthPx: 100, HeightPx: 100, Dp2Px: 2, Mm2Px: 10}

	regular, err := NewContext(buttonSet(), dev).Param("DefaultFontSize")
	if err != nil {
		t.Fatal(err)
	}
	dev.Magnified = true
	magnified, err := NewContext(buttonSet(), dev).Param("DefaultFontSize")
	if err != nil {
		t.Fatal(err)
	}
	if regular != 28 || magnified != 36 {
		t.Fatalf("font size regular=%v magnified=%v, want 28 and 36", regular, magnified)
	}
}

func TestLeafParameters(t *testing.T) {
	ctx := NewContext(buttonSet(), DeviceInfo{WidthPx: 100, HeightPx: 100, Dp2Px: 2, Mm2Px: 10})
	if _, err := ctx.Param("RightLabelEdge"); !errors.Is(err, ErrParamNotSet) {
		t.Fatalf("unset leaf error = %v, want ErrParamNotSet", err)
	}

	ctx = NewContext(buttonSet(), DeviceInfo{WidthPx: 100, HeightPx: 100, Dp2Px: 2, Mm2Px: 10})
	if err := ctx.SetParam("RightEdgeOfScreen", units.Pxs(100)); err != nil {
		t.Fatal(err)
	}
	got, err := ctx.Param("RightLabelEdge")
	if err != nil {
		t.Fatal(err)
	}
	if got != 52 {
		t.Fatalf("RightLabelEdge = %v, want 52", got)
	}
	if err := ctx.SetParam("RightEdgeOfScreen", units.Pxs(1)); err == nil {
		t.Fatal("setting a resolved leaf must fail")
	}
	if err := ctx.SetParam("BorderWidth", units.Dp(1)); err == nil {
		t.Fatal("setting a derived parameter must fail")
	}
}

func TestContextIsDeterministic(t *testing.T) {
	dev := DeviceInfo{WidthPx: 1080, HeightPx: 2160, Dp2Px: 2.625, Mm2Px: 17.42, PowerButtonTopMm: 21.5, PowerButtonBottomMm: 32.25}
	set := buttonSet()
	a := NewContext(set, dev)
	b := NewContext(set, dev)
	for _, name := range []string{"PowerButtonCenter", "DefaultFontSize", "BorderWidth"} {
		va, errA := a.Param(name)
		vb, errB := b.Param(name)
		if errA != nil || errB != nil || va != vb {
			t.Fatalf("%s: %v/%v (%v, %v)", name, va, vb, errA, errB)
		}
	}
}

func TestSetDefinitionErrors(t *testing.T) {
	type tc struct {
		build func() *Set
		want  error
	}

	tests := map[string]tc{
		"forward reference": {
			build: func() *Set { return NewSet("fwd").Const("A", Ref("B")).Leaf("B") },
			want:  ErrForwardRef,
		},
		"self reference": {
			build: func() *Set { return NewSet("self").Const("A", Sum(Ref("A"), Dp(1))) },
			want:  ErrForwardRef,
		},
		"duplicate": {
			build: func() *Set { return NewSet("dup").Leaf("A").Leaf("A") },
			want:  ErrDuplicateParam,
		},
		"mixed units": {
			build: func() *Set { return NewSet("mixed").Const("A", Sum(Dp(1), Mm(1))) },
			want:  units.ErrUnitMismatch,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.build().Err()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Err() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMustBuildPanicsOnDefinitionError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustBuild did not panic")
		}
	}()
	NewSet("bad").Const("A", Ref("missing")).MustBuild()
}

func TestPixelLiteralsCombineWithAnyUnit(t *testing.T) {
	set := NewSet("px").Const("A", Sum(Px(3), Mm(1))).Const("B", Diff(Dp(10), Px(4))).MustBuild()
	ctx := NewContext(set, DeviceInfo{WidthPx: 1, HeightPx: 1, Dp2Px: 2, Mm2Px: 10})
	if v, _ := ctx.Param("A"); v != 13 {
		t.Fatalf("A = %v, want 13", v)
	}
	if v, _ := ctx.Param("B"); v != 16 {
		t.Fatalf("B = %v, want 16", v)
	}
}

func TestBindAndLocalScope(t *testing.T) {
	set := NewSet("bind").Const("Border", Dp(10)).MustBuild()
	ctx := NewContext(set, DeviceInfo{WidthPx: 100, HeightPx: 100, Dp2Px: 1, Mm2Px: 1})

	if err := ctx.BindBox("Title", units.Box{X: 10, Y: 20, W: 50, H: 30}); err != nil {
		t.Fatal(err)
	}
	if v, err := ctx.Eval(BottomEdgeOf("Title")); err != nil || v != 50 {
		t.Fatalf("Title bottom = %v (%v), want 50", v, err)
	}
	if err := ctx.Bind("Border", 1); !errors.Is(err, ErrDuplicateParam) {
		t.Fatalf("rebinding a set parameter: %v", err)
	}

	local := NewLocalScope(ctx, map[string]Expr{
		SelfH: Dp(20),
		SelfY: Diff(BottomEdgeOf("Title"), Div(Ref(SelfH), 2)),
	})
	if v, err := local.Lookup(SelfY); err != nil || v != 40 {
		t.Fatalf("self.y = %v (%v), want 40", v, err)
	}

	cyclic := NewLocalScope(ctx, map[string]Expr{
		SelfW: Ref(SelfH),
		SelfH: Ref(SelfW),
	})
	if _, err := cyclic.Lookup(SelfW); !errors.Is(err, ErrCycle) {
		t.Fatalf("cyclic local error = %v, want ErrCycle", err)
	}
}

func TestDeviceInfoValidate(t *testing.T) {
	good := DeviceInfo{WidthPx: 10, HeightPx: 10, Dp2Px: 1, Mm2Px: 1}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid device rejected: %v", err)
	}
	bad := good
	bad.Dp2Px = 0
	if err := bad.Validate(); !errors.Is(err, ErrInvalidDevice) {
		t.Fatalf("zero dp2px: %v", err)
	}
	bad = good
	bad.HeightPx = 0
	if err := bad.Validate(); !errors.Is(err, ErrInvalidDevice) {
		t.Fatalf("zero height: %v", err)
	}
}
