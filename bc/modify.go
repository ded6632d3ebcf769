// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bc

import (
	"fmt"

	"github.com/cpmech/dirichlet/la"
)

// Apply enforces the constraints on A and/or b; either may be nil.
//  A: constrained rows become identity rows (off-diagonal = 0, diagonal = 1)
//  b: b[d] = g[d]
func (o ConstraintSet) Apply(A *la.CSR, b []float64) (err error) {
	if err = o.checkSquare(A); err != nil {
		return
	}
	if err = o.checkVector("b", b); err != nil {
		return
	}
	if A != nil {
		A.IdentRows(o.Dofs, 1)
	}
	if b != nil {
		for k, d := range o.Dofs {
			b[d] = o.Vals[k]
		}
	}
	return
}

// ApplyResidual sets b[d] = g[d] - x[d], the residual form used by Newton iterations
func (o ConstraintSet) ApplyResidual(b, x []float64) (err error) {
	if b == nil || x == nil {
		return fmt.Errorf("%w: b and x are required", ErrDimensionMismatch)
	}
	if err = o.checkVector("b", b); err != nil {
		return
	}
	if err = o.checkVector("x", x); err != nil {
		return
	}
	for k, d := range o.Dofs {
		b[d] = o.Vals[k] - x[d]
	}
	return
}

// Zero zeroes the constrained rows of A, diagonal included. Columns of A may belong to any space
func (o ConstraintSet) Zero(A *la.CSR) (err error) {
	if A == nil {
		return
	}
	if A.M != o.N {
		return fmt.Errorf("%w: A has %d rows but the space has %d dofs", ErrDimensionMismatch, A.M, o.N)
	}
	A.ZeroRows(o.Dofs)
	return
}

// ZeroVector sets b[d] = 0
func (o ConstraintSet) ZeroVector(b []float64) (err error) {
	if b == nil {
		return
	}
	if err = o.checkVector("b", b); err != nil {
		return
	}
	for _, d := range o.Dofs {
		b[d] = 0
	}
	return
}

// ZeroColumns zeroes the constrained columns of A and moves their contribution to b.
//  square A (A.M == A.N): rows and columns belong to this space; constrained rows also
//                         become diag・identity rows with b[d] = diag・g[d]
//  rectangular A:         only columns belong to this space; rows are kept
// See ZeroColumnsBlock for square blocks whose rows belong to another space
func (o ConstraintSet) ZeroColumns(A *la.CSR, b []float64, diag float64) (err error) {
	if A == nil {
		return
	}
	if A.M == A.N {
		return ZeroColumnsBlock(A, b, o, o, diag)
	}
	return ZeroColumnsBlock(A, b, ConstraintSet{N: A.M}, o, diag)
}

// ZeroColumnsBlock modifies a block A whose rows are numbered by the space of rows
// and whose columns are numbered by the space of cols:
//
//  b_i -= Σ_{j ∈ cols} A_ij・g_j   for i ∉ rows
//  A_ij = 0                        for j ∈ cols
//  A_dj = 0, A_dd = diag, b_d = diag・g_d   for d ∈ rows (A must be square)
//
// The residual A・x - b is preserved for all x with x_j = g_j, j ∈ cols; it becomes
// diag・(x_d - g_d) at constrained rows. b may be nil
func ZeroColumnsBlock(A *la.CSR, b []float64, rows, cols ConstraintSet, diag float64) (err error) {

	// check
	if A == nil {
		return
	}
	if A.N != cols.N {
		return fmt.Errorf("%w: A has %d columns but the column space has %d dofs", ErrDimensionMismatch, A.N, cols.N)
	}
	if b != nil && len(b) != A.M {
		return fmt.Errorf("%w: len(b)=%d but A has %d rows", ErrDimensionMismatch, len(b), A.M)
	}
	if rows.Len() > 0 {
		if A.M != rows.N {
			return fmt.Errorf("%w: A has %d rows but the row space has %d dofs", ErrDimensionMismatch, A.M, rows.N)
		}
		if A.M != A.N {
			return fmt.Errorf("%w: constrained rows need a square matrix; A is %d x %d", ErrDimensionMismatch, A.M, A.N)
		}
	}

	// move contribution of constrained columns to the right-hand side
	colmask := cols.Mask()
	if b != nil {
		g := make([]float64, cols.N)
		for k, d := range cols.Dofs {
			g[d] = cols.Vals[k]
		}
		rowmask := make([]bool, A.M)
		for _, d := range rows.Dofs {
			rowmask[d] = true
		}
		for i := 0; i < A.M; i++ {
			if rowmask[i] {
				continue
			}
			jj, aa := A.Row(i)
			for k, j := range jj {
				if colmask[j] {
					b[i] -= aa[k] * g[j]
				}
			}
		}
	}

	// zero columns and set constrained rows
	A.ZeroCols(colmask)
	if rows.Len() > 0 {
		A.IdentRows(rows.Dofs, diag)
		if b != nil {
			for k, d := range rows.Dofs {
				b[d] = diag * rows.Vals[k]
			}
		}
	}
	return
}

// checkSquare checks that A is N x N; nil is accepted
func (o ConstraintSet) checkSquare(A *la.CSR) error {
	if A != nil && (A.M != o.N || A.N != o.N) {
		return fmt.Errorf("%w: A is %d x %d but the space has %d dofs", ErrDimensionMismatch, A.M, A.N, o.N)
	}
	return nil
}

// checkVector checks that v has N entries; nil is accepted
func (o ConstraintSet) checkVector(name string, v []float64) error {
	if v != nil && len(v) != o.N {
		return fmt.Errorf("%w: len(%s)=%d but the space has %d dofs", ErrDimensionMismatch, name, len(v), o.N)
	}
	return nil
}
