package render

import (
	"image"

	"github.com/rook-computer/teeui/internal/params"
	"github.com/rook-computer/teeui/internal/units"
)

// ButtonSpec describes a hardware button icon: a rounded rectangle filled
// with ButtonColor and a convex icon filled with IconColor on top.
type ButtonSpec struct {
	Name      string
	Position  params.PointExpr
	Dimension params.PointExpr

	// CornerRadius applies to the corners flagged round; the others stay
	// square.
	CornerRadius     params.Expr
	RoundTopLeft     bool
	RoundTopRight    bool
	RoundBottomLeft  bool
	RoundBottomRight bool

	ButtonColor   Color
	IconColor     Color
	ConvexObjects ConvexObjectSet
	// IconOffset moves the icon origin relative to the button's top-left
	// corner. When unset the icon is centered in the button.
	IconOffset params.PointExpr
}

func (s ButtonSpec) DescriptorName() string { return s.Name }

func (s ButtonSpec) instantiate(ctx *params.Context, env *Env, clip image.Rectangle) (Element, error) {
	box, err := resolveBox(ctx, s.Position, s.Dimension, map[string]params.Expr{
		params.SelfX: params.Px(0),
		params.SelfY: params.Px(0),
	})
	if err != nil {
		return nil, err
	}

	var radius units.Px
	if s.CornerRadius != nil {
		if radius, err = ctx.Eval(s.CornerRadius); err != nil {
			return nil, err
		}
	}
	radius = max(0, min(radius, box.W/2, box.H/2))

	shape, err := s.ConvexObjects.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	var offset units.Point
	if s.IconOffset.X != nil && s.IconOffset.Y != nil {
		if offset, err = ctx.Point(s.IconOffset); err != nil {
			return nil, err
		}
	} else {
		bb := shape.Bounds()
		offset = units.Point{X: (box.W-bb.W)/2 - bb.X, Y: (box.H-bb.H)/2 - bb.Y}
	}

	return &IconButton{
		base:   base{name: s.Name, bounds: box, clip: clip},
		radius: radius,
		round:  [4]bool{s.RoundTopLeft, s.RoundTopRight, s.RoundBottomLeft, s.RoundBottomRight},
		body:   s.ButtonColor,
		icon:   s.IconColor,
		shape:  shape.Translate(box.TopLeft().Add(offset)),
	}, nil
}

// IconButton is an instantiated ButtonSpec.
type IconButton struct {
	base
	radius units.Px
	round  [4]bool // top-left, top-right, bottom-left, bottom-right
	body   Color
	icon   Color
	shape  Shape
}

// Shape returns the icon polygons in pixel coordinates.
func (b *IconButton) Shape() Shape { return b.shape }

// inBody reports whether p is inside the rounded rectangle.
func (b *IconButton) inBody(p units.Point) bool {
	box := b.bounds
	if !box.Contains(p) {
		return false
	}
	r := b.radius
	if r <= 0 {
		return true
	}
	left, right := p.X < box.X+r, p.X > box.Right()-r
	top, bottom := p.Y < box.Y+r, p.Y > box.Bottom()-r

	var c units.Point
	switch {
	case top && left && b.round[0]:
		c = units.Point{X: box.X + r, Y: box.Y + r}
	case top && right && b.round[1]:
		c = units.Point{X: box.Right() - r, Y: box.Y + r}
	case bottom && left && b.round[2]:
		c = units.Point{X: box.X + r, Y: box.Bottom() - r}
	case bottom && right && b.round[3]:
		c = units.Point{X: box.Right() - r, Y: box.Bottom() - r}
	default:
		return true
	}
	d := p.Sub(c)
	return d.X*d.X+d.Y*d.Y <= r*r
}

// ColorAt returns the color of the button at p. Icon pixels win over the
// body; points in a cut-off corner are transparent unless the icon covers
// them.
func (b *IconButton) ColorAt(p units.Point) Color {
	if !b.bounds.Contains(p) {
		return Transparent
	}
	if b.shape.Contains(p) {
		return b.icon
	}
	if b.inBody(p) {
		return b.body
	}
	return Transparent
}

func (b *IconButton) Draw(d PixelDrawer) Error {
	err := OK
	r := b.pixels()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			err = err.Or(b.put(d, x, y, b.ColorAt(center(x, y))))
		}
	}
	return err
}
