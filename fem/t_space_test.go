// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/dirichlet/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_space01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("space01. P1 and P2 over interval")

	msh := inp.UnitIntervalMesh(10)
	V, err := NewFunctionSpace(msh, "CG", 1, 1)
	require.NoError(tst, err)
	chk.String(tst, V.Shape(), "lin2")
	chk.IntAssert(V.Ndofs(), 11)
	chk.IntAssert(V.Dim(), 11)
	chk.Ints(tst, "dofs of vertex 10", V.EntityDofs(0, 10), []int{10})
	chk.Ints(tst, "dofs of cell 3", V.CellDofs(3), []int{3, 4})
	chk.Array(tst, "x @ dof 4", 1e-15, V.DofCoords(4), []float64{0.4})

	msh = inp.UnitIntervalMesh(2)
	W, err := NewFunctionSpace(msh, "P", 2, 1)
	require.NoError(tst, err)
	chk.String(tst, W.Shape(), "lin3")
	chk.IntAssert(W.Ndofs(), 5)
	chk.Ints(tst, "dofs of cell 0", W.CellDofs(0), []int{0, 1, 3})
	chk.Ints(tst, "dofs of cell 1", W.CellDofs(1), []int{1, 2, 4})
	chk.Array(tst, "x @ dof 3", 1e-15, W.DofCoords(3), []float64{0.25})
	chk.Array(tst, "x @ dof 4", 1e-15, W.DofCoords(4), []float64{0.75})
	chk.Ints(tst, "dofs of facet 1", W.EntityDofs(0, 1), []int{1})

	_, err = NewFunctionSpace(msh, "DG", 1, 1)
	require.Error(tst, err)
	_, err = NewFunctionSpace(msh, "CG", 3, 1)
	require.Error(tst, err)
	_, err = NewFunctionSpace(msh, "CG", 1, 0)
	require.Error(tst, err)
}

func Test_space02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("space02. vector P2 over triangles")

	msh := inp.UnitSquareMesh(1, 1)
	V, err := NewFunctionSpace(msh, "Lagrange", 2, 2)
	require.NoError(tst, err)
	chk.String(tst, V.Shape(), "tri6")
	chk.IntAssert(V.Nnodes(), 9) // 4 vertices + 5 edges
	chk.IntAssert(V.Ndofs(), 18)
	chk.IntAssert(V.Ncomp(), 2)

	// nodes @ edges are located at the middle of the corners of the edge
	edges := [][]int{{0, 1}, {1, 2}, {2, 0}}
	for _, cell := range msh.Cells {
		dofs := V.CellDofs(cell.Id)
		chk.IntAssert(len(dofs), 12)
		for k, pair := range edges {
			xa := V.DofCoords(dofs[pair[0]*2])
			xb := V.DofCoords(dofs[pair[1]*2])
			xm := V.DofCoords(dofs[(3+k)*2])
			chk.Array(tst, io.Sf("cell %d: mid %d", cell.Id, k), 1e-15, xm, []float64{(xa[0] + xb[0]) / 2, (xa[1] + xb[1]) / 2})
		}
		for m := 0; m < 6; m++ {
			chk.IntAssert(dofs[m*2+1], dofs[m*2]+1)
			chk.IntAssert(V.DofComponent(dofs[m*2+1]), 1)
		}
	}

	// subspaces share the numbering
	V1, err := V.Sub(1)
	require.NoError(tst, err)
	require.True(tst, V1.IsSub())
	chk.IntAssert(V1.Component(), 1)
	chk.IntAssert(V1.Ncomp(), 1)
	chk.IntAssert(V1.Ndofs(), 18)
	chk.IntAssert(V1.Dim(), 9)
	chk.Ints(tst, "dofs of V1", V1.Dofs(), []int{1, 3, 5, 7, 9, 11, 13, 15, 17})
	chk.IntAssert(V1.DofComponent(5), 0)
	for e := 0; e < msh.NumFacets(); e++ {
		for _, d := range V1.EntityDofs(1, e) {
			chk.IntAssert(d%2, 1)
		}
		chk.IntAssert(len(V1.EntityDofs(1, e)), 3)
		chk.IntAssert(len(V.EntityDofs(1, e)), 6)
	}
	chk.Ints(tst, "dofs of vertex 3", V.EntityDofs(0, 3), []int{6, 7})

	_, err = V1.Sub(0)
	require.Error(tst, err)
	_, err = V.Sub(2)
	require.Error(tst, err)
}

func Test_space03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("space03. interpolation")

	msh := inp.UnitSquareMesh(2, 2)
	V, err := NewFunctionSpace(msh, "CG", 1, 2)
	require.NoError(tst, err)

	u, err := V.Interpolate([]dbf.T{&dbf.Cte{C: 3}, &dbf.Cte{C: -1}}, 0)
	require.NoError(tst, err)
	for d, v := range u {
		if d%2 == 0 {
			chk.Float64(tst, "u0", 1e-17, v, 3)
		} else {
			chk.Float64(tst, "u1", 1e-17, v, -1)
		}
	}

	V0, err := V.Sub(0)
	require.NoError(tst, err)
	u, err = V0.Interpolate([]dbf.T{&dbf.Cte{C: 7}}, 0)
	require.NoError(tst, err)
	chk.IntAssert(len(u), V.Ndofs())
	for d, v := range u {
		if d%2 == 0 {
			chk.Float64(tst, "u0", 1e-17, v, 7)
		} else {
			chk.Float64(tst, "u1", 1e-17, v, 0)
		}
	}

	_, err = V.Interpolate([]dbf.T{&dbf.Cte{}, &dbf.Cte{}, &dbf.Cte{}}, 0)
	require.Error(tst, err)
}
