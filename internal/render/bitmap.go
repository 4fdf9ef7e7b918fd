package render

import (
	"errors"
	"image"
	"math"

	"github.com/rook-computer/teeui/internal/bitmap"
	"github.com/rook-computer/teeui/internal/params"
)

// BitmapSpec places an embedded BMP asset, optionally scaled.
type BitmapSpec struct {
	Name  string
	Asset string
	// ScaleFactor resamples the image; 0 and 1 draw the asset as is.
	ScaleFactor float64
	// Height, when set, overrides ScaleFactor with the factor that makes
	// the image this tall.
	Height   params.Expr
	Position params.PointExpr
	// Dimension defaults to the size of the (scaled) image.
	Dimension params.PointExpr
}

func (s BitmapSpec) DescriptorName() string { return s.Name }

func (s BitmapSpec) instantiate(ctx *params.Context, env *Env, clip image.Rectangle) (Element, error) {
	log := env.log()
	b := &Bitmap{}

	img, err := s.load(ctx, env)
	if err != nil {
		log.Errorf("bitmap", "%s: %v", s.Name, err)
		b.err = BitmapReadFailed
	}
	fallback := map[string]params.Expr{
		params.SelfX: params.Px(0),
		params.SelfY: params.Px(0),
		params.SelfW: params.Px(0),
		params.SelfH: params.Px(0),
	}
	if img != nil {
		b.img = img
		fallback[params.SelfW] = params.Px(float64(img.Width()))
		fallback[params.SelfH] = params.Px(float64(img.Height()))
	}

	box, err := resolveBox(ctx, s.Position, s.Dimension, fallback)
	if err != nil {
		return nil, err
	}
	b.base = base{name: s.Name, bounds: box, clip: clip}
	return b, nil
}

var errNoAsset = errors.New("asset not found")

func (s BitmapSpec) load(ctx *params.Context, env *Env) (*bitmap.Image, error) {
	if env.Assets == nil {
		return nil, errNoAsset
	}
	data, ok := env.Assets.Bitmap(s.Asset)
	if !ok {
		return nil, errNoAsset
	}
	img, err := bitmap.Decode(data)
	if err != nil {
		return nil, err
	}
	factor := s.ScaleFactor
	if s.Height != nil {
		h, err := ctx.Eval(s.Height)
		if err != nil {
			return nil, err
		}
		factor = float64(h) / float64(img.Height())
	}
	if factor == 0 {
		return img, nil
	}
	return img.Scale(factor)
}

// Bitmap is an instantiated BitmapSpec. It holds the only reference to its
// scaled image.
type Bitmap struct {
	base
	img *bitmap.Image
	err Error
}

// Image returns the decoded (and possibly scaled) image, nil if loading
// failed.
func (b *Bitmap) Image() *bitmap.Image { return b.img }

// Draw copies the image to the truncated origin of its bounds, one opaque
// pixel per image pixel, clipped to the bounds. Bounds larger than the image
// are reported as BitmapOutOfRange; the uncovered part is left untouched.
func (b *Bitmap) Draw(d PixelDrawer) Error {
	if b.err != OK || b.img == nil {
		return b.err
	}
	err := OK
	if float64(b.bounds.W) > float64(b.img.Width()) || float64(b.bounds.H) > float64(b.img.Height()) {
		err = BitmapOutOfRange
	}
	ox := clampCoord(math.Floor(float64(b.bounds.X)))
	oy := clampCoord(math.Floor(float64(b.bounds.Y)))
	r := b.pixels().Intersect(image.Rect(ox, oy, ox+b.img.Width(), oy+b.img.Height()))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			red, green, blue, cerr := b.img.ColorAt(x-ox, y-oy)
			if cerr != nil {
				err = err.Or(BitmapOutOfRange)
				continue
			}
			err = err.Or(b.put(d, x, y, ARGB(0xff, red, green, blue)))
		}
	}
	return err
}
