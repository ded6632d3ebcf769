// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bc implements Dirichlet boundary conditions applied to assembled linear systems
package bc

import (
	"fmt"

	"github.com/cpmech/dirichlet/la"
	"github.com/cpmech/gosl/fun/dbf"
)

// Dirichlet holds a Dirichlet boundary condition u(t,x) = g(t,x) on the dofs selected
// by a predicate. The selected dofs are computed once; the values are evaluated
// at every call, so SetValue and SetTime are always observed
type Dirichlet struct {
	Name   string    // name used in listings
	space  Space     // function space
	pred   Predicate // constrained region
	method Method    // how dofs are searched for
	vals   []dbf.T   // prescribed values: one for all components or one per component
	time   float64   // time at which values are evaluated
	dofs   []int     // memoised dofs; nil if not computed yet
}

// NewDirichlet returns a new boundary condition
//  vals -- one function for all components or one function per component of V
func NewDirichlet(V Space, vals []dbf.T, p Predicate, method Method) (o *Dirichlet, err error) {
	if V == nil || V.Mesh() == nil {
		return nil, fmt.Errorf("%w: space or mesh is nil", ErrInvalidSpace)
	}
	if err = checkValues(V, vals); err != nil {
		return
	}
	if err = checkPredicate(V.Mesh(), p, method); err != nil {
		return
	}
	o = &Dirichlet{space: V, pred: p, method: method, vals: append([]dbf.T{}, vals...)}
	return
}

// NewDirichletCte returns a new boundary condition with constant values
func NewDirichletCte(V Space, vals []float64, p Predicate, method Method) (*Dirichlet, error) {
	return NewDirichlet(V, constants(vals), p, method)
}

// Copy returns a distinct boundary condition with the same space, predicate, method and values
func (o *Dirichlet) Copy() *Dirichlet {
	c := *o
	c.vals = append([]dbf.T{}, o.vals...)
	if o.dofs != nil {
		c.dofs = append([]int{}, o.dofs...)
	}
	return &c
}

// SetValue replaces the prescribed values; the selected dofs are kept
func (o *Dirichlet) SetValue(vals ...dbf.T) (err error) {
	if err = checkValues(o.space, vals); err != nil {
		return
	}
	o.vals = append([]dbf.T{}, vals...)
	return
}

// SetConstant replaces the prescribed values by constants
func (o *Dirichlet) SetConstant(vals ...float64) error {
	return o.SetValue(constants(vals)...)
}

// Homogenize sets all prescribed values to zero
func (o *Dirichlet) Homogenize() {
	o.vals = constants(make([]float64, len(o.vals)))
}

// SetTime sets the time at which values are evaluated
func (o *Dirichlet) SetTime(t float64) { o.time = t }

// Time returns the time at which values are evaluated
func (o *Dirichlet) Time() float64 { return o.time }

// Method returns the method used to search for dofs
func (o *Dirichlet) Method() Method { return o.method }

// FunctionSpace returns the function space
func (o *Dirichlet) FunctionSpace() Space { return o.space }

// UserSubDomain returns the predicate
func (o *Dirichlet) UserSubDomain() Predicate { return o.pred }

// MarkersID returns the marker value or subdomain id; -1 for geometric predicates
func (o *Dirichlet) MarkersID() int {
	if o.pred.Kind == KindGeometric {
		return -1
	}
	return o.pred.Id
}

// Dofs returns the constrained dofs, computing them on the first call
func (o *Dirichlet) Dofs() (dofs []int, err error) {
	if o.dofs == nil {
		o.dofs, err = SelectDofs(o.space, o.pred, o.method)
		if err != nil {
			o.dofs = nil
			return
		}
	}
	return o.dofs, nil
}

// Constraints returns the constrained dofs with values evaluated at the current time
func (o *Dirichlet) Constraints() (ConstraintSet, error) {
	return o.constraintsAt(o.time)
}

// BoundaryValues returns the dof => value mapping at the current time
func (o *Dirichlet) BoundaryValues() (map[int]float64, error) {
	cs, err := o.Constraints()
	if err != nil {
		return nil, err
	}
	return cs.Map(), nil
}

// Apply enforces the condition on A and b; either may be nil
func (o *Dirichlet) Apply(A *la.CSR, b []float64) error {
	cs, err := o.Constraints()
	if err != nil {
		return err
	}
	return cs.Apply(A, b)
}

// ApplyMatrix sets the constrained rows of A to identity rows
func (o *Dirichlet) ApplyMatrix(A *la.CSR) error {
	return o.Apply(A, nil)
}

// ApplyVector sets b[d] = g[d]
func (o *Dirichlet) ApplyVector(b []float64) error {
	return o.Apply(nil, b)
}

// ApplyFunction sets the prescribed values into the dof vector u; e.g. an initial guess
func (o *Dirichlet) ApplyFunction(u []float64) error {
	return o.Apply(nil, u)
}

// ApplyResidual sets b[d] = g[d] - x[d]
func (o *Dirichlet) ApplyResidual(b, x []float64) error {
	cs, err := o.Constraints()
	if err != nil {
		return err
	}
	return cs.ApplyResidual(b, x)
}

// Zero zeroes the constrained rows of A
func (o *Dirichlet) Zero(A *la.CSR) error {
	cs, err := o.Constraints()
	if err != nil {
		return err
	}
	return cs.Zero(A)
}

// ZeroVector sets b[d] = 0
func (o *Dirichlet) ZeroVector(b []float64) error {
	cs, err := o.Constraints()
	if err != nil {
		return err
	}
	return cs.ZeroVector(b)
}

// ZeroColumns zeroes the constrained columns (and rows, if A is square) of A, moving
// the contribution of the prescribed values to b. See ConstraintSet.ZeroColumns
func (o *Dirichlet) ZeroColumns(A *la.CSR, b []float64, diag float64) error {
	cs, err := o.Constraints()
	if err != nil {
		return err
	}
	return cs.ZeroColumns(A, b, diag)
}

// String returns a short description
func (o *Dirichlet) String() string {
	return fmt.Sprintf("%s: %v (%v)", o.Name, o.pred, o.method)
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// constraintsAt evaluates the prescribed values at time t
func (o *Dirichlet) constraintsAt(t float64) (cs ConstraintSet, err error) {
	dofs, err := o.Dofs()
	if err != nil {
		return
	}
	cs.N = o.space.Ndofs()
	cs.Dofs = dofs
	cs.Vals = make([]float64, len(dofs))
	for k, d := range dofs {
		cs.Vals[k] = o.valueFcn(d).F(t, o.space.DofCoords(d))
	}
	return
}

// valueFcn returns the function prescribing dof d
func (o *Dirichlet) valueFcn(d int) dbf.T {
	if len(o.vals) == 1 {
		return o.vals[0]
	}
	return o.vals[o.space.DofComponent(d)]
}

// checkValues checks the number of functions against the number of components of V
func checkValues(V Space, vals []dbf.T) error {
	if len(vals) != 1 && len(vals) != V.Ncomp() {
		return fmt.Errorf("%w: %d values for a space with %d components", ErrDimensionMismatch, len(vals), V.Ncomp())
	}
	for i, v := range vals {
		if v == nil {
			return fmt.Errorf("%w: value %d is nil", ErrUnsupportedConstraintType, i)
		}
	}
	return nil
}

// constants converts values into constant functions
func constants(vals []float64) []dbf.T {
	fcns := make([]dbf.T, len(vals))
	for i, v := range vals {
		fcns[i] = &dbf.Cte{C: v}
	}
	return fcns
}
