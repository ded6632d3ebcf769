// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/dirichlet/ele"
	"github.com/cpmech/dirichlet/la"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// AssembleMatrix assembles the global matrix of a bilinear form
//  kernel -- element kernel; e.g. "laplace", "mass", "div"
//  V      -- test space (rows)
//  U      -- trial space (columns)
//  nip    -- number of integration points; 0 => default
func AssembleMatrix(kernel string, V, U *FunctionSpace, nip int) (A *la.CSR, err error) {

	// check
	if V.IsSub() || U.IsSub() {
		return nil, chk.Err("matrices must be assembled with whole spaces")
	}
	msh := V.Mesh()
	if U.Mesh() != msh {
		return nil, chk.Err("test and trial spaces must be defined over the same mesh")
	}

	// bases
	test, err := ele.NewBasis(V.Shape(), V.Ncomp())
	if err != nil {
		return
	}
	trial, err := ele.NewBasis(U.Shape(), U.Ncomp())
	if err != nil {
		return
	}

	// assemble
	var Kb la.Triplet
	Kb.Init(V.Ndofs(), U.Ndofs(), len(msh.Cells)*test.Size()*trial.Size())
	for _, cell := range msh.Cells {
		dat := &ele.Data{Cell: cell, X: ele.BuildCoordsMatrix(cell, msh), Test: test, Trial: trial, Nip: nip}
		e, err := ele.New(kernel, dat)
		if err != nil {
			return nil, err
		}
		err = e.SetEqs(V.CellDofs(cell.Id), U.CellDofs(cell.Id))
		if err != nil {
			return nil, err
		}
		err = e.AddToKb(&Kb)
		if err != nil {
			return nil, err
		}
	}
	return Kb.ToMatrix(nil), nil
}

// AssembleVector assembles the global vector of a linear form
//  kernel -- element kernel; e.g. "source"
//  V      -- test space
//  f      -- f(t,x) function
//  t      -- time
//  nip    -- number of integration points; 0 => default
func AssembleVector(kernel string, V *FunctionSpace, f dbf.T, t float64, nip int) (b []float64, err error) {
	if V.IsSub() {
		return nil, chk.Err("vectors must be assembled with whole spaces")
	}
	msh := V.Mesh()
	test, err := ele.NewBasis(V.Shape(), V.Ncomp())
	if err != nil {
		return
	}
	b = make([]float64, V.Ndofs())
	for _, cell := range msh.Cells {
		dat := &ele.Data{Cell: cell, X: ele.BuildCoordsMatrix(cell, msh), Test: test, Nip: nip, Fcn: f}
		e, err := ele.New(kernel, dat)
		if err != nil {
			return nil, err
		}
		err = e.SetEqs(V.CellDofs(cell.Id), nil)
		if err != nil {
			return nil, err
		}
		err = e.AddToRhs(b, t)
		if err != nil {
			return nil, err
		}
	}
	return
}
