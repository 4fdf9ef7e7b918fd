package params

import (
	"errors"
	"fmt"

	"github.com/rook-computer/teeui/internal/units"
)

var (
	ErrUnknownParam   = errors.New("unknown parameter")
	ErrParamNotSet    = errors.New("parameter not set")
	ErrDuplicateParam = errors.New("duplicate parameter")
	ErrForwardRef     = errors.New("reference to undefined parameter")
	ErrCycle          = errors.New("cyclic parameter reference")
)

type defKind int

const (
	kindLeaf defKind = iota
	kindDevice
	kindModal
	kindConst
)

type definition struct {
	name      string
	kind      defKind
	device    func(DeviceInfo) units.Length
	regular   units.Length
	magnified units.Length
	expr      Expr
}

// Set is a named, ordered collection of parameter definitions. A derived
// parameter may only reference parameters defined before it, so a Set can
// never contain a cycle. Definition mistakes are collected and reported by Err.
type Set struct {
	name  string
	defs  []definition
	index map[string]int
	errs  []error
}

// NewSet starts an empty parameter set.
func NewSet(name string) *Set {
	return &Set{name: name, index: map[string]int{}}
}

// Leaf declares a parameter whose value is supplied per context via SetParam.
func (s *Set) Leaf(name string) *Set {
	return s.add(definition{name: name, kind: kindLeaf})
}

// Device declares a parameter derived from the device description.
func (s *Set) Device(name string, fn func(DeviceInfo) units.Length) *Set {
	if fn == nil {
		s.errs = append(s.errs, fmt.Errorf("%s: nil device accessor", name))
		return s
	}
	return s.add(definition{name: name, kind: kindDevice, device: fn})
}

// Modal declares a parameter with a regular and a magnified value. The
// magnified value is selected when DeviceInfo.Magnified is set.
func (s *Set) Modal(name string, regular, magnified units.Length) *Set {
	return s.add(definition{name: name, kind: kindModal, regular: regular, magnified: magnified})
}

// Const declares a parameter computed from an expression over previously
// defined parameters and literals.
func (s *Set) Const(name string, e Expr) *Set {
	if e == nil {
		s.errs = append(s.errs, fmt.Errorf("%s: nil expression", name))
		return s
	}
	if err := CheckUnits(e); err != nil {
		s.errs = append(s.errs, fmt.Errorf("%s: %w", name, err))
		return s
	}
	var missing []string
	e.refs(func(ref string) {
		if _, ok := s.index[ref]; !ok {
			missing = append(missing, ref)
		}
	})
	if len(missing) > 0 {
		s.errs = append(s.errs, fmt.Errorf("%s references %v: %w", name, missing, ErrForwardRef))
		return s
	}
	return s.add(definition{name: name, kind: kindConst, expr: e})
}

func (s *Set) add(d definition) *Set {
	if _, ok := s.index[d.name]; ok {
		s.errs = append(s.errs, fmt.Errorf("%s: %w", d.name, ErrDuplicateParam))
		return s
	}
	s.index[d.name] = len(s.defs)
	s.defs = append(s.defs, d)
	return s
}

// Err returns all definition errors collected so far.
func (s *Set) Err() error {
	if len(s.errs) == 0 {
		return nil
	}
	return fmt.Errorf("parameter set %s: %w", s.name, errors.Join(s.errs...))
}

// MustBuild panics when the set has definition errors. It is meant for
// package level layout declarations.
func (s *Set) MustBuild() *Set {
	if err := s.Err(); err != nil {
		panic(err)
	}
	return s
}

// Has reports whether name is defined.
func (s *Set) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Names lists the parameters in definition order.
func (s *Set) Names() []string {
	out := make([]string, len(s.defs))
	for i, d := range s.defs {
		out[i] = d.name
	}
	return out
}
