// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package la implements sparse matrices in triplet and compressed-row formats and linear solvers
package la

import (
	"github.com/cpmech/gosl/chk"
	"github.com/james-bowman/sparse"
)

// Triplet is a simple representation of a sparse matrix used for assembly. Entries
// are kept in a dictionary of keys and repeated ones are summed up on insertion.
type Triplet struct {
	pos int         // number of items inserted so far
	max int         // max allowed number of items (may be > nnz)
	dok *sparse.DOK // (i,j) => value
}

// Init allocates a sparse matrix in triplet form
func (o *Triplet) Init(m, n, max int) {
	o.pos, o.max = 0, max
	o.dok = sparse.NewDOK(m, n)
}

// Start (re)starts index for inserting items using the Put command
func (o *Triplet) Start() {
	m, n := o.dok.Dims()
	o.Init(m, n, o.max)
}

// Put adds x to entry (i,j) of a pre-allocated (with Init) triplet matrix
func (o *Triplet) Put(i, j int, x float64) {
	if o.pos >= o.max {
		chk.Panic("cannot put item because max number of items has been exceeded (pos = %d, max = %d)", o.pos, o.max)
	}
	m, n := o.dok.Dims()
	if i < 0 || i >= m || j < 0 || j >= n {
		chk.Panic("cannot put item (%d,%d) because it is outside the %d x %d matrix", i, j, m, n)
	}
	o.dok.Set(i, j, o.dok.At(i, j)+x)
	o.pos++
}

// Len returns the number of items inserted so far
func (o *Triplet) Len() int {
	return o.pos
}

// Max returns the maximum number of entries
func (o *Triplet) Max() int {
	return o.max
}

// Size returns the row/column size of the matrix
func (o *Triplet) Size() (m, n int) {
	return o.dok.Dims()
}

// ToMatrix converts a sparse matrix in triplet form to compressed-row form.
// Entries that were put, even with zero values, become structural entries.
//  a -- a previous CSR matrix to be reused; may be nil
func (o *Triplet) ToMatrix(a *CSR) *CSR {
	if a == nil {
		a = new(CSR)
	}
	a.set(o.dok.ToCSR())
	return a
}
