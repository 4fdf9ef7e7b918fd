package params

import (
	"fmt"

	"github.com/rook-computer/teeui/internal/units"
)

// Element-local names available to an element's own position and dimension
// expressions.
const (
	SelfX = "self.x"
	SelfY = "self.y"
	SelfW = "self.w"
	SelfH = "self.h"
)

// Edge name suffixes published for every instantiated element.
const (
	edgeLeft   = ".left"
	edgeTop    = ".top"
	edgeRight  = ".right"
	edgeBottom = ".bottom"
	edgeWidth  = ".width"
	edgeHeight = ".height"
)

func LeftOf(element string) Expr       { return Ref(element + edgeLeft) }
func TopOf(element string) Expr        { return Ref(element + edgeTop) }
func RightEdgeOf(element string) Expr  { return Ref(element + edgeRight) }
func BottomEdgeOf(element string) Expr { return Ref(element + edgeBottom) }
func WidthOf(element string) Expr      { return Ref(element + edgeWidth) }
func HeightOf(element string) Expr     { return Ref(element + edgeHeight) }

// BindBox publishes the edges of an element's bounds under its name.
func (c *Context) BindBox(element string, b units.Box) error {
	for _, e := range []struct {
		suffix string
		v      units.Px
	}{
		{edgeLeft, b.X},
		{edgeTop, b.Y},
		{edgeRight, b.Right()},
		{edgeBottom, b.Bottom()},
		{edgeWidth, b.W},
		{edgeHeight, b.H},
	} {
		if err := c.Bind(element+e.suffix, e.v); err != nil {
			return err
		}
	}
	return nil
}

// LocalScope evaluates a small set of local expressions on demand, falling
// back to its parent for every other name. A local that refers to itself,
// directly or through other locals, yields ErrCycle.
type LocalScope struct {
	parent Scope
	locals map[string]Expr
	values map[string]units.Px
	active map[string]bool
}

var _ Scope = (*LocalScope)(nil)

func NewLocalScope(parent Scope, locals map[string]Expr) *LocalScope {
	return &LocalScope{
		parent: parent,
		locals: locals,
		values: map[string]units.Px{},
		active: map[string]bool{},
	}
}

func (s *LocalScope) Convert(l units.Length) (units.Px, error) { return s.parent.Convert(l) }

func (s *LocalScope) Lookup(name string) (units.Px, error) {
	e, ok := s.locals[name]
	if !ok || e == nil {
		return s.parent.Lookup(name)
	}
	if v, ok := s.values[name]; ok {
		return v, nil
	}
	if s.active[name] {
		return 0, fmt.Errorf("%s: %w", name, ErrCycle)
	}
	s.active[name] = true
	v, err := e.Eval(s)
	delete(s.active, name)
	if err != nil {
		return 0, err
	}
	s.values[name] = v
	return v, nil
}
