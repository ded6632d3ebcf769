// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffusion

import (
	"github.com/cpmech/dirichlet/ele"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Source implements the linear form
//
//   l(v) = ∫ f(t,x) v dx
//
// f is applied to all components of vector spaces
type Source struct {
	ele.Local           // equations and local vector
	Fcn       dbf.T     // f(t,x)
	dat       *ele.Data // input data; kept to integrate at any time
}

// register element
func init() {
	ele.SetAllocator("source", func(dat *ele.Data) (ele.Element, error) {
		return NewSource(dat)
	})
}

// NewSource allocates a new source element
func NewSource(dat *ele.Data) (o *Source, err error) {
	if dat.Fcn == nil {
		return nil, chk.Err("source element %d needs a function", dat.Cell.Id)
	}
	o = &Source{Fcn: dat.Fcn, dat: dat}
	o.Init(dat.Cell, dat.Test.Size(), 0)
	return
}

// Vector computes the local vector @ time t
func (o *Source) Vector(t float64) []float64 {
	for i := range o.F {
		o.F[i] = 0
	}
	nc := o.dat.Test.Ncomp
	err := ele.IpLoop(o.dat, func(coef float64, geo *ele.IpGeom) {
		fval := o.Fcn.F(t, geo.Xip)
		for m, s := range o.dat.Test.Shp.S {
			for c := 0; c < nc; c++ {
				o.F[m*nc+c] += coef * fval * s
			}
		}
	})
	if err != nil {
		chk.Panic("cannot integrate source term of element %d:\n%v", o.Id(), err)
	}
	return o.F
}

// AddToRhs adds the local vector @ time t to global vector fb
func (o *Source) AddToRhs(fb []float64, t float64) (err error) {
	o.Vector(t)
	return o.Local.AddToRhs(fb, t)
}
