package params

import (
	"fmt"

	"github.com/rook-computer/teeui/internal/units"
)

// Scope resolves parameter names and converts unit-bearing literals into
// pixels. Context is the root scope; LocalScope layers element-local names on
// top of it.
type Scope interface {
	Lookup(name string) (units.Px, error)
	Convert(l units.Length) (units.Px, error)
}

// Expr is a symbolic length expression evaluated against a Scope.
type Expr interface {
	Eval(s Scope) (units.Px, error)

	// unit returns the static unit of the expression or an error when it
	// combines literals of incompatible units.
	unit() (units.Unit, error)
	refs(visit func(name string))
}

// PointExpr is a symbolic position.
type PointExpr struct {
	X, Y Expr
}

// At builds a PointExpr.
func At(x, y Expr) PointExpr { return PointExpr{X: x, Y: y} }

// EvalPoint resolves p in s.
func EvalPoint(s Scope, p PointExpr) (units.Point, error) {
	if p.X == nil || p.Y == nil {
		return units.Point{}, fmt.Errorf("incomplete point expression")
	}
	x, err := p.X.Eval(s)
	if err != nil {
		return units.Point{}, err
	}
	y, err := p.Y.Eval(s)
	if err != nil {
		return units.Point{}, err
	}
	return units.Point{X: x, Y: y}, nil
}

type lit struct{ v units.Length }

// Lit is a literal length.
func Lit(v units.Length) Expr { return lit{v: v} }

// Dp and Mm are literal shorthands.
func Dp(v float64) Expr { return lit{v: units.Dp(v)} }
func Mm(v float64) Expr { return lit{v: units.Mm(v)} }
func Px(v float64) Expr { return lit{v: units.Pxs(v)} }

func (e lit) Eval(s Scope) (units.Px, error)  { return s.Convert(e.v) }
func (e lit) unit() (units.Unit, error)       { return e.v.Unit, nil }
func (e lit) refs(func(string))               {}
func (e lit) String() string                  { return e.v.String() }

type ref struct{ name string }

// Ref refers to a named parameter. Parameters are always resolved pixels.
func Ref(name string) Expr { return ref{name: name} }

func (e ref) Eval(s Scope) (units.Px, error) { return s.Lookup(e.name) }
func (e ref) unit() (units.Unit, error)      { return units.UnitPx, nil }
func (e ref) refs(visit func(string))        { visit(e.name) }
func (e ref) String() string                 { return e.name }

type binOp int

const (
	opSum binOp = iota
	opDiff
	opMid
)

type binary struct {
	op   binOp
	a, b Expr
}

// Sum is a+b.
func Sum(a, b Expr) Expr { return binary{op: opSum, a: a, b: b} }

// Diff is a-b.
func Diff(a, b Expr) Expr { return binary{op: opDiff, a: a, b: b} }

// Mid is (a+b)/2, e.g. the center of a button zone.
func Mid(a, b Expr) Expr { return binary{op: opMid, a: a, b: b} }

func (e binary) Eval(s Scope) (units.Px, error) {
	a, err := e.a.Eval(s)
	if err != nil {
		return 0, err
	}
	b, err := e.b.Eval(s)
	if err != nil {
		return 0, err
	}
	switch e.op {
	case opSum:
		return a + b, nil
	case opDiff:
		return a - b, nil
	default:
		return (a + b) / 2, nil
	}
}

func (e binary) unit() (units.Unit, error) {
	ua, err := e.a.unit()
	if err != nil {
		return 0, err
	}
	ub, err := e.b.unit()
	if err != nil {
		return 0, err
	}
	if !units.Compatible(ua, ub) {
		return 0, fmt.Errorf("%v and %v operands: %w", ua, ub, units.ErrUnitMismatch)
	}
	if ua == ub {
		return ua, nil
	}
	return units.UnitPx, nil
}

func (e binary) refs(visit func(string)) {
	e.a.refs(visit)
	e.b.refs(visit)
}

type scaled struct {
	e      Expr
	factor float64
}

// Scale multiplies e by a unit-less factor.
func Scale(e Expr, factor float64) Expr { return scaled{e: e, factor: factor} }

// Div divides e by a unit-less divisor.
func Div(e Expr, divisor float64) Expr { return scaled{e: e, factor: 1 / divisor} }

// Neg is -e.
func Neg(e Expr) Expr { return scaled{e: e, factor: -1} }

func (e scaled) Eval(s Scope) (units.Px, error) {
	v, err := e.e.Eval(s)
	if err != nil {
		return 0, err
	}
	return v * units.Px(e.factor), nil
}

func (e scaled) unit() (units.Unit, error) { return e.e.unit() }
func (e scaled) refs(visit func(string))   { e.e.refs(visit) }

// CheckUnits reports whether e combines literals of incompatible units.
func CheckUnits(e Expr) error {
	_, err := e.unit()
	return err
}
