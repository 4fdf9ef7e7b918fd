// Package units defines unit-tagged lengths and the resolved pixel geometry
// (points and boxes) used by the layout and drawing code.
//
// Lengths written by layout authors carry a unit: device-independent pixels
// (dp) or millimeters (mm). They only become drawable once a parameter
// context converts them into resolved pixels (Px) for one specific device.
package units

import (
	"errors"
	"fmt"
	"math"
)

// Unit is the unit tag of a Length.
type Unit int

const (
	UnitPx Unit = iota // resolved device pixels
	UnitDp             // device-independent pixels
	UnitMm             // millimeters
)

func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitDp:
		return "dp"
	case UnitMm:
		return "mm"
	default:
		return fmt.Sprintf("unit(%d)", int(u))
	}
}

// ErrUnitMismatch is returned by Length arithmetic between incompatible units.
var ErrUnitMismatch = errors.New("unit mismatch")

// Length preserves a numeric value together with its unit.
type Length struct {
	Value float64
	Unit  Unit
}

func Dp(v float64) Length  { return Length{Value: v, Unit: UnitDp} }
func Mm(v float64) Length  { return Length{Value: v, Unit: UnitMm} }
func Pxs(v float64) Length { return Length{Value: v, Unit: UnitPx} }

func (l Length) String() string { return fmt.Sprintf("%g%s", l.Value, l.Unit) }

// Add returns l+o. Both operands must carry the same unit.
func (l Length) Add(o Length) (Length, error) {
	if l.Unit != o.Unit {
		return Length{}, fmt.Errorf("%s + %s: %w", l, o, ErrUnitMismatch)
	}
	return Length{Value: l.Value + o.Value, Unit: l.Unit}, nil
}

// Sub returns l-o. Both operands must carry the same unit.
func (l Length) Sub(o Length) (Length, error) {
	if l.Unit != o.Unit {
		return Length{}, fmt.Errorf("%s - %s: %w", l, o, ErrUnitMismatch)
	}
	return Length{Value: l.Value - o.Value, Unit: l.Unit}, nil
}

// Scale multiplies by a unit-less factor.
func (l Length) Scale(f float64) Length { return Length{Value: l.Value * f, Unit: l.Unit} }

// Div divides by a unit-less divisor.
func (l Length) Div(d float64) Length { return Length{Value: l.Value / d, Unit: l.Unit} }

// Compatible reports whether a and b may be combined without conversion.
// Resolved pixels combine with anything because the other side is converted
// first; dp and mm never combine with each other.
func Compatible(a, b Unit) bool {
	return a == b || a == UnitPx || b == UnitPx
}

// Px is a length in resolved device pixels.
type Px float64

// Floor returns the largest integer pixel index not greater than p.
func (p Px) Floor() int { return int(math.Floor(float64(p))) }

// Ceil returns the smallest integer pixel index not less than p.
func (p Px) Ceil() int { return int(math.Ceil(float64(p))) }

// Int truncates toward zero, the way pixel positions are derived from bounds.
func (p Px) Int() int { return int(p) }

// Point is a position in resolved pixels.
type Point struct {
	X, Y Px
}

func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }
func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }

// Box is an axis aligned rectangle in resolved pixels. Edges and center are
// always derived from X, Y, W and H.
type Box struct {
	X, Y, W, H Px
}

func (b Box) TopLeft() Point { return Point{X: b.X, Y: b.Y} }
func (b Box) Right() Px      { return b.X + b.W }
func (b Box) Bottom() Px     { return b.Y + b.H }
func (b Box) Center() Point  { return Point{X: b.X + b.W/2, Y: b.Y + b.H/2} }
func (b Box) Empty() bool    { return b.W <= 0 || b.H <= 0 }

// Contains reports whether p lies inside b. The right and bottom edges are
// exclusive.
func (b Box) Contains(p Point) bool {
	return p.X >= b.X && p.X < b.Right() && p.Y >= b.Y && p.Y < b.Bottom()
}

// Translate moves b by d.
func (b Box) Translate(d Point) Box {
	return Box{X: b.X + d.X, Y: b.Y + d.Y, W: b.W, H: b.H}
}

// Vec2d is a vector authored in device-independent units, e.g. a polygon
// vertex relative to an element's bounds.
type Vec2d struct {
	X, Y Length
}

// V returns a vertex in dp.
func V(x, y float64) Vec2d { return Vec2d{X: Dp(x), Y: Dp(y)} }
