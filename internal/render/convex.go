package render

import (
	"fmt"
	"math"

	"github.com/rook-computer/teeui/internal/params"
	"github.com/rook-computer/teeui/internal/units"
)

// ConvexObject is a convex polygon given by its vertices in order. Vertices
// are unit-bearing and relative to the icon origin.
type ConvexObject []units.Vec2d

// ConvexObjectSet is the union of several convex polygons.
type ConvexObjectSet []ConvexObject

// Polygon is a convex polygon resolved to pixels.
type Polygon []units.Point

// Contains reports whether p lies inside the polygon or on its boundary.
// Every edge is treated as a half-plane; either winding order works.
func (poly Polygon) Contains(p units.Point) bool {
	if len(poly) < 3 {
		return false
	}
	var pos, neg bool
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		switch {
		case cross > 0:
			pos = true
		case cross < 0:
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

// Bounds returns the smallest box enclosing the polygon.
func (poly Polygon) Bounds() units.Box {
	if len(poly) == 0 {
		return units.Box{}
	}
	minX, minY := units.Px(math.Inf(1)), units.Px(math.Inf(1))
	maxX, maxY := units.Px(math.Inf(-1)), units.Px(math.Inf(-1))
	for _, v := range poly {
		minX, maxX = min(minX, v.X), max(maxX, v.X)
		minY, maxY = min(minY, v.Y), max(maxY, v.Y)
	}
	return units.Box{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Shape is a resolved ConvexObjectSet.
type Shape []Polygon

// Contains reports whether p lies in any polygon of the shape.
func (s Shape) Contains(p units.Point) bool {
	for _, poly := range s {
		if poly.Contains(p) {
			return true
		}
	}
	return false
}

// Bounds returns the box enclosing every polygon.
func (s Shape) Bounds() units.Box {
	if len(s) == 0 {
		return units.Box{}
	}
	out := s[0].Bounds()
	for _, poly := range s[1:] {
		b := poly.Bounds()
		right, bottom := max(out.Right(), b.Right()), max(out.Bottom(), b.Bottom())
		out.X, out.Y = min(out.X, b.X), min(out.Y, b.Y)
		out.W, out.H = right-out.X, bottom-out.Y
	}
	return out
}

// Translate returns the shape moved by d.
func (s Shape) Translate(d units.Point) Shape {
	out := make(Shape, len(s))
	for i, poly := range s {
		moved := make(Polygon, len(poly))
		for j, v := range poly {
			moved[j] = v.Add(d)
		}
		out[i] = moved
	}
	return out
}

// Resolve converts every vertex to pixels.
func (set ConvexObjectSet) Resolve(s params.Scope) (Shape, error) {
	out := make(Shape, 0, len(set))
	for i, obj := range set {
		if len(obj) < 3 {
			return nil, fmt.Errorf("convex object %d: %d vertices", i, len(obj))
		}
		poly := make(Polygon, len(obj))
		for j, v := range obj {
			x, err := s.Convert(v.X)
			if err != nil {
				return nil, fmt.Errorf("convex object %d vertex %d: %w", i, j, err)
			}
			y, err := s.Convert(v.Y)
			if err != nil {
				return nil, fmt.Errorf("convex object %d vertex %d: %w", i, j, err)
			}
			poly[j] = units.Point{X: x, Y: y}
		}
		out = append(out, poly)
	}
	return out, nil
}
