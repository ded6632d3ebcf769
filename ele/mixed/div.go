// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mixed implements element kernels coupling different function spaces
package mixed

import (
	"github.com/cpmech/dirichlet/ele"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Div implements the off-diagonal block of Stokes-like problems
//
//   b(u,q) = ∫ q div(u) dx
//
// with q in a scalar (test) space and u in a vector (trial) space. The local matrix is
// rectangular: rows are the scalar dofs and columns are the vector dofs (n・ndim + c)
type Div struct {
	ele.Local // equations and local matrix
}

// register element
func init() {
	ele.SetAllocator("div", func(dat *ele.Data) (ele.Element, error) {
		return NewDiv(dat)
	})
}

// NewDiv computes the local matrix of the divergence operator
func NewDiv(dat *ele.Data) (o *Div, err error) {

	// check
	ndim := len(dat.X)
	if dat.Trial.Shp == nil {
		return nil, chk.Err("div element %d needs a trial space", dat.Cell.Id)
	}
	if dat.Test.Ncomp != 1 {
		return nil, chk.Err("test space of div element must be scalar. ncomp=%d is invalid", dat.Test.Ncomp)
	}
	if dat.Trial.Ncomp != ndim {
		return nil, chk.Err("trial space of div element must have %d components. ncomp=%d is invalid", ndim, dat.Trial.Ncomp)
	}

	// allocate
	o = new(Div)
	o.Init(dat.Cell, dat.Test.Size(), dat.Trial.Size())
	H := utl.Alloc(dat.Trial.Shp.Nverts, ndim)

	// integrate
	err = ele.IpLoop(dat, func(coef float64, geo *ele.IpGeom) {
		geo.Gradients(H, dat.Trial.Shp)
		for m, q := range dat.Test.Shp.S {
			for n := 0; n < dat.Trial.Shp.Nverts; n++ {
				for c := 0; c < ndim; c++ {
					o.K[m][n*ndim+c] += coef * q * H[n][c]
				}
			}
		}
	})
	return
}
