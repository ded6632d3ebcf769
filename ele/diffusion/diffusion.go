// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package diffusion implements element kernels of the diffusion (Poisson) equation
//
//   -div(∇u) = f   =>   ∫ ∇u・∇v dx = ∫ f v dx
//
package diffusion

import (
	"github.com/cpmech/dirichlet/ele"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Diffusion implements the bilinear forms
//
//   laplace:  a(u,v) = ∫ ∇u・∇v dx
//   mass:     m(u,v) = ∫ u v dx
//
// Vector spaces are handled component by component
type Diffusion struct {
	ele.Local      // equations and local matrix
	Mass      bool // mass matrix instead of Laplacian
}

// register element
func init() {
	ele.SetAllocator("laplace", func(dat *ele.Data) (ele.Element, error) {
		return NewDiffusion(dat, false)
	})
	ele.SetAllocator("mass", func(dat *ele.Data) (ele.Element, error) {
		return NewDiffusion(dat, true)
	})
}

// NewDiffusion computes the local matrix of the Laplacian or mass operator
func NewDiffusion(dat *ele.Data, mass bool) (o *Diffusion, err error) {

	// check
	if dat.Trial.Shp == nil {
		dat.Trial = dat.Test
	}
	if dat.Test.Ncomp != dat.Trial.Ncomp {
		return nil, chk.Err("test and trial spaces must have the same number of components. %d != %d", dat.Test.Ncomp, dat.Trial.Ncomp)
	}

	// allocate
	o = &Diffusion{Mass: mass}
	o.Init(dat.Cell, dat.Test.Size(), dat.Trial.Size())
	nc := dat.Test.Ncomp
	ndim := len(dat.X)
	G := utl.Alloc(dat.Test.Shp.Nverts, ndim)
	H := utl.Alloc(dat.Trial.Shp.Nverts, ndim)

	// integrate
	err = ele.IpLoop(dat, func(coef float64, geo *ele.IpGeom) {
		S, R := dat.Test.Shp.S, dat.Trial.Shp.S
		if !mass {
			geo.Gradients(G, dat.Test.Shp)
			geo.Gradients(H, dat.Trial.Shp)
		}
		for m := range S {
			for n := range R {
				var v float64
				if mass {
					v = S[m] * R[n]
				} else {
					for i := 0; i < ndim; i++ {
						v += G[m][i] * H[n][i]
					}
				}
				for c := 0; c < nc; c++ {
					o.K[m*nc+c][n*nc+c] += coef * v
				}
			}
		}
	})
	return
}
