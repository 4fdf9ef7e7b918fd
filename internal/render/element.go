package render

import (
	"image"
	"math"

	"github.com/rook-computer/teeui/internal/units"
)

// Element is one instantiated, fully resolved piece of a dialog.
type Element interface {
	// Bounds returns the resolved box the element draws into.
	Bounds() units.Box
	// Draw forwards every pixel the element contributes to d. Pixels
	// outside Bounds are never forwarded.
	Draw(d PixelDrawer) Error
}

// Named is implemented by elements instantiated from a named descriptor.
type Named interface {
	Name() string
}

// Layout is an ordered collection of elements, back to front.
type Layout []Element

// Draw draws every element in order. A failing element does not stop the
// ones after it; the first failure is returned.
func (l Layout) Draw(d PixelDrawer) Error {
	err := OK
	for _, e := range l {
		err = err.Or(e.Draw(d))
	}
	return err
}

// base carries what every element has: a name, resolved bounds and the
// pixel rectangle drawing is limited to.
type base struct {
	name   string
	bounds units.Box
	clip   image.Rectangle
}

func (b *base) Name() string      { return b.name }
func (b *base) Bounds() units.Box { return b.bounds }

// pixels returns the integer pixel rectangle covered by the bounds, limited
// to the clip rectangle.
func (b *base) pixels() image.Rectangle {
	return pixelRect(b.bounds).Intersect(b.clip)
}

// put forwards one pixel to d unless it falls outside the element.
func (b *base) put(d PixelDrawer, x, y int, c Color) Error {
	if c.A() == 0 || !(image.Point{X: x, Y: y}).In(b.pixels()) {
		return OK
	}
	return d(uint32(x), uint32(y), c)
}

// maxCoord bounds resolved coordinates before they are turned into ints.
const maxCoord = 1 << 24

func clampCoord(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v < -maxCoord:
		return -maxCoord
	case v > maxCoord:
		return maxCoord
	}
	return int(v)
}

func pixelRect(b units.Box) image.Rectangle {
	return image.Rect(
		clampCoord(math.Floor(float64(b.X))),
		clampCoord(math.Floor(float64(b.Y))),
		clampCoord(math.Ceil(float64(b.Right()))),
		clampCoord(math.Ceil(float64(b.Bottom()))),
	).Intersect(image.Rect(0, 0, maxCoord, maxCoord))
}

// center returns the sample point of pixel (x, y).
func center(x, y int) units.Point {
	return units.Point{X: units.Px(x) + 0.5, Y: units.Px(y) + 0.5}
}
