// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LinSol defines the interface for linear solvers
type LinSol interface {
	Init(A *CSR) (err error)          // initialises (and factorises, if applicable) with coefficient matrix
	Solve(x, b []float64) (err error) // solves A・x = b
}

// lsAllocators holds all available solvers
var lsAllocators = map[string]func() LinSol{
	"lu":   func() LinSol { return new(LinSolLU) },
	"chol": func() LinSol { return &LinSolChol{Tol: 1e-12} },
}

// GetSolver returns a new linear solver by name; e.g. "lu" or "chol"
func GetSolver(name string) (LinSol, error) {
	allocator, ok := lsAllocators[name]
	if !ok {
		return nil, chk.Err("linear solver %q is not available", name)
	}
	return allocator(), nil
}

// LinSolLU implements a dense direct solver based on LU factorisation
type LinSolLU struct {
	n  int    // dimension
	lu mat.LU // factorisation
}

// Init factorises A
func (o *LinSolLU) Init(A *CSR) (err error) {
	if A.M != A.N {
		return chk.Err("LU solver needs a square matrix. %d x %d is invalid", A.M, A.N)
	}
	o.n = A.M
	o.lu.Factorize(A.Dense())
	logdet, _ := o.lu.LogDet()
	if math.IsInf(logdet, -1) || math.IsInf(o.lu.Cond(), 1) {
		return chk.Err("matrix is singular")
	}
	return
}

// Solve solves A・x = b using the factorisation computed by Init
func (o *LinSolLU) Solve(x, b []float64) (err error) {
	if len(x) != o.n || len(b) != o.n {
		return chk.Err("LU solver: len(x)=%d and len(b)=%d must be equal to %d", len(x), len(b), o.n)
	}
	xv := mat.NewVecDense(o.n, x)
	err = o.lu.SolveVecTo(xv, false, mat.NewVecDense(o.n, b))
	if c, ill := err.(mat.Condition); ill && !math.IsInf(float64(c), 1) {
		return nil // ill-conditioned but solved
	}
	return
}

// LinSolChol implements a sparse Cholesky solver for symmetric positive-definite matrices
type LinSolChol struct {
	n    int              // dimension
	Tol  float64          // tolerance on |A_ij - A_ji| relative to max |A_ij|
	chol *sparse.Cholesky // factorisation
}

// Init checks that A is symmetric and factorises it
func (o *LinSolChol) Init(A *CSR) (err error) {
	if A.M != A.N {
		return chk.Err("Cholesky solver needs a square matrix. %d x %d is invalid", A.M, A.N)
	}
	amax := floats.Norm(A.Values(), math.Inf(1))
	for i := 0; i < A.M; i++ {
		cols, vals := A.Row(i)
		for k, j := range cols {
			if math.Abs(vals[k]-A.Get(j, i)) > o.Tol*amax {
				return chk.Err("Cholesky solver needs a symmetric matrix. A[%d,%d]=%g != A[%d,%d]=%g", i, j, vals[k], j, i, A.Get(j, i))
			}
		}
	}
	o.n = A.M
	o.chol = new(sparse.Cholesky)
	o.chol.Factorize(A.Sparse())
	logdet := o.chol.LogDet()
	if math.IsNaN(logdet) || math.IsInf(logdet, 0) {
		return chk.Err("matrix is not positive-definite")
	}
	return
}

// Solve solves A・x = b using the factorisation computed by Init
func (o *LinSolChol) Solve(x, b []float64) (err error) {
	if len(x) != o.n || len(b) != o.n {
		return chk.Err("Cholesky solver: len(x)=%d and len(b)=%d must be equal to %d", len(x), len(b), o.n)
	}
	return o.chol.SolveVecTo(mat.NewVecDense(o.n, x), mat.NewVecDense(o.n, b))
}
