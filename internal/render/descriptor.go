package render

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/font"

	"github.com/rook-computer/teeui/internal/logging"
	"github.com/rook-computer/teeui/internal/params"
	"github.com/rook-computer/teeui/internal/render/layout"
	"github.com/rook-computer/teeui/internal/text"
	"github.com/rook-computer/teeui/internal/units"
)

// FaceSource produces sized font faces by reference name.
type FaceSource interface {
	Face(ref string, size units.Px) (font.Face, error)
}

// AssetSource supplies embedded bitmap bytes by name.
type AssetSource interface {
	Bitmap(name string) ([]byte, bool)
}

// Env holds the collaborators elements are instantiated against.
type Env struct {
	Fonts      FaceSource
	Assets     AssetSource
	Translator text.Translator
	Language   string
	Logger     logging.Logger
}

func (e *Env) log() logging.Logger { return logging.OrNoop(e.Logger) }

// Descriptor is the static description of one element: a LabelSpec,
// ButtonSpec or BitmapSpec.
type Descriptor interface {
	DescriptorName() string
	instantiate(ctx *params.Context, env *Env, clip image.Rectangle) (Element, error)
}

var errNoDimension = errors.New("missing dimension")

// Instantiate resolves descriptors in order against ctx. Each element's edges
// are published in ctx under its name so later descriptors can refer to them.
// An element that cannot be resolved is left out; the others are still
// instantiated and the first failure is returned.
func Instantiate(ctx *params.Context, descriptors []Descriptor, env Env) (Layout, Error) {
	log := env.log()
	dev := ctx.Device()
	clip := image.Rect(0, 0, clampCoord(float64(dev.WidthPx)), clampCoord(float64(dev.HeightPx)))

	out := make(Layout, 0, len(descriptors))
	result := OK
	for _, d := range descriptors {
		el, err := d.instantiate(ctx, &env, clip)
		if err != nil {
			log.Errorf("layout", "instantiate %s: %v", d.DescriptorName(), err)
			result = result.Or(ErrorFrom(err))
			continue
		}
		if name := d.DescriptorName(); name != "" {
			if err := ctx.BindBox(name, el.Bounds()); err != nil {
				log.Errorf("layout", "publish %s: %v", name, err)
				result = result.Or(InvalidLayout)
			}
		}
		out = append(out, el)
	}
	return out, result
}

// resolveBox evaluates an element's position and dimension. Both may refer
// to the element's own edges through the self names; nil components are
// looked up from fallback. Negative extents resolve to zero.
func resolveBox(s params.Scope, pos, dim params.PointExpr, fallback map[string]params.Expr) (units.Box, error) {
	locals := map[string]params.Expr{
		params.SelfX: pos.X,
		params.SelfY: pos.Y,
		params.SelfW: dim.X,
		params.SelfH: dim.Y,
	}
	for name, e := range locals {
		if e == nil {
			locals[name] = fallback[name]
		}
	}
	for _, name := range []string{params.SelfX, params.SelfY, params.SelfW, params.SelfH} {
		if locals[name] == nil {
			return units.Box{}, fmt.Errorf("%s: %w", name, errNoDimension)
		}
	}

	scope := params.NewLocalScope(s, locals)
	var box units.Box
	for _, f := range []struct {
		name string
		dst  *units.Px
	}{
		{params.SelfX, &box.X},
		{params.SelfY, &box.Y},
		{params.SelfW, &box.W},
		{params.SelfH, &box.H},
	} {
		v, err := scope.Lookup(f.name)
		if err != nil {
			return units.Box{}, err
		}
		*f.dst = v
	}
	return layout.Normalize(box), nil
}
