// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bc

import (
	"fmt"
	"sort"

	"github.com/cpmech/dirichlet/la"
	"github.com/cpmech/gosl/io"
)

// Registry holds boundary conditions applied in order. When two conditions
// constrain the same dof, the one added last wins
type Registry struct {
	Bcs []*Dirichlet // conditions in order of application
}

// NewRegistry returns a new registry with the given conditions
func NewRegistry(bcs ...*Dirichlet) *Registry {
	o := new(Registry)
	o.Add(bcs...)
	return o
}

// Add appends conditions
func (o *Registry) Add(bcs ...*Dirichlet) {
	o.Bcs = append(o.Bcs, bcs...)
}

// Len returns the number of conditions
func (o *Registry) Len() int {
	return len(o.Bcs)
}

// Apply applies all conditions to A and b; either may be nil
func (o *Registry) Apply(A *la.CSR, b []float64) (err error) {
	return o.each(func(bc *Dirichlet) error { return bc.Apply(A, b) })
}

// ApplyVector applies all conditions to b
func (o *Registry) ApplyVector(b []float64) (err error) {
	return o.each(func(bc *Dirichlet) error { return bc.ApplyVector(b) })
}

// ApplyResidual sets b[d] = g[d] - x[d] for all conditions
func (o *Registry) ApplyResidual(b, x []float64) (err error) {
	return o.each(func(bc *Dirichlet) error { return bc.ApplyResidual(b, x) })
}

// Zero zeroes the constrained rows of A
func (o *Registry) Zero(A *la.CSR) (err error) {
	return o.each(func(bc *Dirichlet) error { return bc.Zero(A) })
}

// ZeroColumns zeroes the columns of all constrained dofs at once, using the merged
// constraints where the condition added last wins on shared dofs
func (o *Registry) ZeroColumns(A *la.CSR, b []float64, diag float64) (err error) {
	if len(o.Bcs) == 0 {
		return
	}
	cs, err := o.Constraints()
	if err != nil {
		return
	}
	return cs.ZeroColumns(A, b, diag)
}

// Constraints returns the merged constraints of all conditions; later ones win on shared dofs.
// All conditions must be defined over the same global dof space
func (o *Registry) Constraints() (cs ConstraintSet, err error) {
	n := 0
	for i, bc := range o.Bcs {
		m := bc.FunctionSpace().Ndofs()
		if i > 0 && m != n {
			return cs, fmt.Errorf("%w: boundary condition %d (%q) has %d dofs but previous ones have %d", ErrDimensionMismatch, i, bc.Name, m, n)
		}
		n = m
	}
	vals, err := o.BoundaryValues()
	if err != nil {
		return
	}
	return FromMap(n, vals), nil
}

// Homogenize sets the values of all conditions to zero
func (o *Registry) Homogenize() {
	for _, bc := range o.Bcs {
		bc.Homogenize()
	}
}

// SetTime sets the time of all conditions
func (o *Registry) SetTime(t float64) {
	for _, bc := range o.Bcs {
		bc.SetTime(t)
	}
}

// BoundaryValues returns the merged dof => value mapping
func (o *Registry) BoundaryValues() (m map[int]float64, err error) {
	m = make(map[int]float64)
	err = o.each(func(bc *Dirichlet) error {
		cs, e := bc.Constraints()
		if e != nil {
			return e
		}
		for k, d := range cs.Dofs {
			m[d] = cs.Vals[k]
		}
		return nil
	})
	return
}

// Dofs returns the sorted union of constrained dofs
func (o *Registry) Dofs() (dofs []int, err error) {
	m, err := o.BoundaryValues()
	if err != nil {
		return
	}
	dofs = make([]int, 0, len(m))
	for d := range m {
		dofs = append(dofs, d)
	}
	sort.Ints(dofs)
	return
}

// List returns a simple list logging bcs at time t
func (o *Registry) List(t float64) (l string) {
	l = "\n==================================================================\n"
	l += io.Sf("%8s%16s%21s%21s\n", "dof", "name", "value @ t=0", io.Sf("value @ t=%g", t))
	l += "------------------------------------------------------------------\n"
	owner := make(map[int]int)
	vals0 := make(map[int]float64)
	valsT := make(map[int]float64)
	for i, bc := range o.Bcs {
		cs0, err := bc.constraintsAt(0)
		if err != nil {
			l += io.Sf("%8s%16s  %v\n", "-", bc.Name, err)
			continue
		}
		csT, _ := bc.constraintsAt(t)
		for k, d := range cs0.Dofs {
			owner[d], vals0[d], valsT[d] = i, cs0.Vals[k], csT.Vals[k]
		}
	}
	dofs := make([]int, 0, len(owner))
	for d := range owner {
		dofs = append(dofs, d)
	}
	sort.Ints(dofs)
	for _, d := range dofs {
		l += io.Sf("%8d%16s%21.10f%21.10f\n", d, o.Bcs[owner[d]].Name, vals0[d], valsT[d])
	}
	l += "==================================================================\n"
	return
}

// each calls fcn for each condition in order and stops at the first error
func (o *Registry) each(fcn func(bc *Dirichlet) error) error {
	for i, bc := range o.Bcs {
		if err := fcn(bc); err != nil {
			return fmt.Errorf("boundary condition %d (%q) failed: %w", i, bc.Name, err)
		}
	}
	return nil
}

// Apply applies bcs to A and b in order; either A or b may be nil
func Apply(A *la.CSR, b []float64, bcs ...*Dirichlet) error {
	return NewRegistry(bcs...).Apply(A, b)
}
