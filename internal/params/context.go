package params

import (
	"fmt"

	"github.com/rook-computer/teeui/internal/units"
)

// Context resolves the parameters of one Set for one device. It is created
// for a single render call and discarded afterwards; resolved values are
// memoized so every parameter is computed at most once.
type Context struct {
	set    *Set
	dev    DeviceInfo
	leaves map[string]units.Length
	values map[string]units.Px
	bound  map[string]bool
}

var _ Scope = (*Context)(nil)

// NewContext returns a context for set on dev.
func NewContext(set *Set, dev DeviceInfo) *Context {
	return &Context{
		set:    set,
		dev:    dev,
		leaves: map[string]units.Length{},
		values: map[string]units.Px{},
		bound:  map[string]bool{},
	}
}

// Device returns the device description the context was built for.
func (c *Context) Device() DeviceInfo { return c.dev }

// SetParam supplies the value of a Leaf parameter. It must be called before
// the parameter (or anything derived from it) is first resolved.
func (c *Context) SetParam(name string, v units.Length) error {
	i, ok := c.set.index[name]
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrUnknownParam)
	}
	if c.set.defs[i].kind != kindLeaf {
		return fmt.Errorf("%s is not a leaf parameter", name)
	}
	if _, done := c.values[name]; done {
		return fmt.Errorf("%s already resolved", name)
	}
	c.leaves[name] = v
	return nil
}

// Convert turns a unit-bearing length into device pixels.
func (c *Context) Convert(l units.Length) (units.Px, error) {
	switch l.Unit {
	case units.UnitPx:
		return units.Px(l.Value), nil
	case units.UnitDp:
		return units.Px(l.Value * c.dev.Dp2Px), nil
	case units.UnitMm:
		return units.Px(l.Value * c.dev.Mm2Px), nil
	default:
		return 0, fmt.Errorf("convert %v: %w", l, units.ErrUnitMismatch)
	}
}

// Lookup implements Scope.
func (c *Context) Lookup(name string) (units.Px, error) { return c.Param(name) }

// Param resolves a named parameter.
func (c *Context) Param(name string) (units.Px, error) {
	if v, ok := c.values[name]; ok {
		return v, nil
	}
	i, ok := c.set.index[name]
	if !ok {
		return 0, fmt.Errorf("%s: %w", name, ErrUnknownParam)
	}
	d := c.set.defs[i]

	var (
		v   units.Px
		err error
	)
	switch d.kind {
	case kindLeaf:
		l, set := c.leaves[name]
		if !set {
			return 0, fmt.Errorf("%s: %w", name, ErrParamNotSet)
		}
		v, err = c.Convert(l)
	case kindDevice:
		v, err = c.Convert(d.device(c.dev))
	case kindModal:
		if c.dev.Magnified {
			v, err = c.Convert(d.magnified)
		} else {
			v, err = c.Convert(d.regular)
		}
	case kindConst:
		v, err = d.expr.Eval(c)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	c.values[name] = v
	return v, nil
}

// Eval resolves an expression in the context.
func (c *Context) Eval(e Expr) (units.Px, error) { return e.Eval(c) }

// Point resolves a point expression in the context.
func (c *Context) Point(p PointExpr) (units.Point, error) { return EvalPoint(c, p) }

// Bind publishes a value computed during layout instantiation, such as the
// edges of an element, so later expressions can refer to it. Names defined by
// the Set or bound earlier cannot be rebound.
func (c *Context) Bind(name string, v units.Px) error {
	if c.set.Has(name) || c.bound[name] {
		return fmt.Errorf("bind %s: %w", name, ErrDuplicateParam)
	}
	c.bound[name] = true
	c.values[name] = v
	return nil
}

// Bound reports whether name was published with Bind.
func (c *Context) Bound(name string) bool { return c.bound[name] }
