// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"github.com/cpmech/gosl/chk"
	"github.com/james-bowman/sparse"
	"github.com/james-bowman/sparse/blas"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// CSR holds a sparse matrix in compressed-row form
//  Storage and products are handled by sparse.CSR. Entries of a row are not sorted by column
type CSR struct {
	M, N int         // matrix dimension (rows, columns)
	mat  *sparse.CSR // storage
}

// NewCSR returns a matrix sharing the storage of a
func NewCSR(a *sparse.CSR) (o *CSR) {
	o = new(CSR)
	o.set(a)
	return
}

// set replaces the storage
func (o *CSR) set(a *sparse.CSR) {
	o.M, o.N = a.Dims()
	o.mat = a
}

// Sparse returns the underlying matrix, which shares memory with this one
func (o *CSR) Sparse() *sparse.CSR {
	return o.mat
}

// raw returns the compressed arrays
func (o *CSR) raw() *blas.SparseMatrix {
	return o.mat.RawMatrix()
}

// Nnz returns the number of stored entries (structural non-zeros)
func (o *CSR) Nnz() int {
	return o.mat.NNZ()
}

// Values returns the stored values. The slice shares memory with the matrix
func (o *CSR) Values() []float64 {
	return o.raw().Data
}

// Row returns the columns and values of row i. The slices share memory with the matrix
func (o *CSR) Row(i int) (cols []int, vals []float64) {
	r := o.raw()
	return r.Ind[r.Indptr[i]:r.Indptr[i+1]], r.Data[r.Indptr[i]:r.Indptr[i+1]]
}

// Find returns the position of entry (i,j) in Values or -1 if (i,j) is not stored
func (o *CSR) Find(i, j int) int {
	r := o.raw()
	for p := r.Indptr[i]; p < r.Indptr[i+1]; p++ {
		if r.Ind[p] == j {
			return p
		}
	}
	return -1
}

// Get returns entry (i,j); zero if not stored
func (o *CSR) Get(i, j int) float64 {
	if p := o.Find(i, j); p >= 0 {
		return o.raw().Data[p]
	}
	return 0
}

// Set sets entry (i,j), which must be in the sparsity pattern
func (o *CSR) Set(i, j int, v float64) (err error) {
	p := o.Find(i, j)
	if p < 0 {
		return chk.Err("entry (%d,%d) is not in the sparsity pattern", i, j)
	}
	o.raw().Data[p] = v
	return
}

// Add adds v to entry (i,j), which must be in the sparsity pattern
func (o *CSR) Add(i, j int, v float64) (err error) {
	p := o.Find(i, j)
	if p < 0 {
		return chk.Err("entry (%d,%d) is not in the sparsity pattern", i, j)
	}
	o.raw().Data[p] += v
	return
}

// InsertDiag adds structural zeros on the diagonal of the given rows if missing.
// Rows without a diagonal position (i >= N) are skipped. Returns the number of inserted entries
func (o *CSR) InsertDiag(rows []int) (ninserted int) {
	missing := make(map[int]bool)
	for _, r := range rows {
		if r < o.M && r < o.N && o.Find(r, r) < 0 {
			missing[r] = true
		}
	}
	if len(missing) == 0 {
		return
	}
	dok := sparse.NewDOK(o.M, o.N)
	o.mat.DoNonZero(func(i, j int, v float64) {
		dok.Set(i, j, v)
	})
	for r := range missing {
		dok.Set(r, r, 0)
	}
	o.set(dok.ToCSR())
	return len(missing)
}

// ZeroRows sets all stored entries of the given rows to zero
func (o *CSR) ZeroRows(rows []int) {
	for _, r := range rows {
		_, vals := o.Row(r)
		for k := range vals {
			vals[k] = 0
		}
	}
}

// IdentRows zeroes the given rows and sets their diagonal to diag. Missing diagonals are inserted
func (o *CSR) IdentRows(rows []int, diag float64) {
	o.InsertDiag(rows)
	o.ZeroRows(rows)
	data := o.raw().Data
	for _, r := range rows {
		if p := o.Find(r, r); p >= 0 {
			data[p] = diag
		}
	}
}

// ZeroCols sets all stored entries in the columns flagged by mask to zero
//  mask -- [N] columns to be zeroed
func (o *CSR) ZeroCols(mask []bool) {
	if len(mask) != o.N {
		chk.Panic("mask must have size equal to the number of columns. %d != %d", len(mask), o.N)
	}
	r := o.raw()
	for p, c := range r.Ind {
		if mask[c] {
			r.Data[p] = 0
		}
	}
}

// MulVec computes y := A・x
func (o *CSR) MulVec(y, x []float64) {
	o.check_mul(y, x)
	for i := range y {
		y[i] = 0
	}
	o.mat.MulVecTo(y, false, x)
}

// MulVecAdd computes y += α・A・x
func (o *CSR) MulVecAdd(y []float64, α float64, x []float64) {
	o.check_mul(y, x)
	blas.Dusmv(false, α, o.raw(), x, 1, y, 1)
}

// Dense returns a dense copy of this matrix
func (o *CSR) Dense() *mat.Dense {
	return o.mat.ToDense()
}

// Clone returns a deep copy of this matrix
func (o *CSR) Clone() *CSR {
	r := o.raw()
	return NewCSR(sparse.NewCSR(o.M, o.N,
		append([]int{}, r.Indptr...),
		append([]int{}, r.Ind...),
		append([]float64{}, r.Data...)))
}

// NormFrob returns the Frobenius norm of this matrix
func (o *CSR) NormFrob() float64 {
	if o.Nnz() == 0 {
		return 0
	}
	return floats.Norm(o.Values(), 2)
}

// check_mul checks dimensions of vectors in matrix-vector products
func (o *CSR) check_mul(y, x []float64) {
	if len(x) != o.N || len(y) != o.M {
		chk.Panic("cannot multiply %d x %d matrix: len(x)=%d and len(y)=%d are incorrect", o.M, o.N, len(x), len(y))
	}
}
