// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bc

import (
	"fmt"
	"sort"
)

// ConstraintSet maps constrained dofs to prescribed values
//  Dofs are sorted and unique; Vals[k] is the value of Dofs[k]
type ConstraintSet struct {
	N    int       // size of the dof space; all dofs are in [0, N)
	Dofs []int     // constrained dofs
	Vals []float64 // prescribed values
}

// NewConstraintSet returns a new set after checking and sorting the input
func NewConstraintSet(n int, dofs []int, vals []float64) (o ConstraintSet, err error) {
	if len(dofs) != len(vals) {
		return o, fmt.Errorf("%w: %d dofs and %d values", ErrDimensionMismatch, len(dofs), len(vals))
	}
	m := make(map[int]float64, len(dofs))
	for k, d := range dofs {
		if d < 0 || d >= n {
			return o, fmt.Errorf("%w: dof %d is outside [0, %d)", ErrDimensionMismatch, d, n)
		}
		m[d] = vals[k]
	}
	return FromMap(n, m), nil
}

// FromMap returns a set holding the entries of m
func FromMap(n int, m map[int]float64) (o ConstraintSet) {
	o.N = n
	o.Dofs = make([]int, 0, len(m))
	for d := range m {
		o.Dofs = append(o.Dofs, d)
	}
	sort.Ints(o.Dofs)
	o.Vals = make([]float64, len(o.Dofs))
	for k, d := range o.Dofs {
		o.Vals[k] = m[d]
	}
	return
}

// Len returns the number of constrained dofs
func (o ConstraintSet) Len() int {
	return len(o.Dofs)
}

// Map returns the dof => value mapping
func (o ConstraintSet) Map() map[int]float64 {
	m := make(map[int]float64, len(o.Dofs))
	for k, d := range o.Dofs {
		m[d] = o.Vals[k]
	}
	return m
}

// Homogenized returns a set with the same dofs and zero values
func (o ConstraintSet) Homogenized() ConstraintSet {
	return ConstraintSet{N: o.N, Dofs: o.Dofs, Vals: make([]float64, len(o.Dofs))}
}

// WithValues returns a set with the same dofs and new values
func (o ConstraintSet) WithValues(vals []float64) (ConstraintSet, error) {
	if len(vals) != len(o.Dofs) {
		return o, fmt.Errorf("%w: %d values for %d dofs", ErrDimensionMismatch, len(vals), len(o.Dofs))
	}
	return ConstraintSet{N: o.N, Dofs: o.Dofs, Vals: append([]float64{}, vals...)}, nil
}

// Mask returns a [N] slice flagging constrained dofs
func (o ConstraintSet) Mask() []bool {
	mask := make([]bool, o.N)
	for _, d := range o.Dofs {
		mask[d] = true
	}
	return mask
}
