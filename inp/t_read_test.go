// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func Test_msh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh01. unit interval mesh")

	msh := UnitIntervalMesh(10)
	chk.IntAssert(msh.Ndim, 1)
	chk.IntAssert(msh.Tdim, 1)
	chk.IntAssert(len(msh.Verts), 11)
	chk.IntAssert(len(msh.Cells), 10)
	chk.IntAssert(msh.FacetDim(), 0)
	chk.IntAssert(msh.NumFacets(), 11)
	chk.Float64(tst, "xmin", 1e-17, msh.Xmin, 0)
	chk.Float64(tst, "xmax", 1e-17, msh.Xmax, 1)

	var exterior []int
	for f := 0; f < msh.NumFacets(); f++ {
		if msh.IsExterior(f) {
			exterior = append(exterior, f)
		}
	}
	chk.Ints(tst, "exterior facets", exterior, []int{0, 10})
	chk.IntAssert(msh.FacetTags[0], TagLeft)
	chk.IntAssert(msh.FacetTags[10], TagRight)
	chk.IntAssert(msh.FacetTags[5], 0)
	chk.Ints(tst, "cell 3 facets", msh.Cells[3].Facets, []int{3, 4})
	chk.Ints(tst, "cells @ vertex 4", msh.FacetCells[4], []int{3, 4})
	chk.Array(tst, "midpoint of cell 0", 1e-15, msh.Midpoint(1, 0), []float64{0.05})
}

func Test_msh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh02. unit square mesh")

	msh := UnitSquareMesh(2, 2)
	chk.IntAssert(msh.Tdim, 2)
	chk.IntAssert(len(msh.Verts), 9)
	chk.IntAssert(len(msh.Cells), 8)
	chk.IntAssert(msh.NumEntities(1), 16) // 6 horizontal + 6 vertical + 4 diagonals
	chk.IntAssert(msh.NumEntities(2), 8)

	nexterior := 0
	for f := 0; f < msh.NumFacets(); f++ {
		if msh.IsExterior(f) {
			nexterior++
			chk.IntAssert(len(msh.FacetCells[f]), 1)
			if msh.FacetTags[f] == 0 {
				tst.Errorf("exterior facet %d should be tagged", f)
			}
		} else {
			chk.IntAssert(len(msh.FacetCells[f]), 2)
			chk.IntAssert(msh.FacetTags[f], 0)
		}
	}
	chk.IntAssert(nexterior, 8)

	for v := range msh.Verts {
		if msh.BryVerts[v] == (v == 4) {
			tst.Errorf("boundary flag of vertex %d is wrong", v)
		}
	}

	// tags of boundary facets agree with coordinates
	for f := 0; f < msh.NumFacets(); f++ {
		x := msh.Midpoint(1, f)
		io.Pforan("facet %2d: x=%v tag=%d\n", f, x, msh.FacetTags[f])
		switch msh.FacetTags[f] {
		case TagLeft:
			chk.Float64(tst, "x", 1e-15, x[0], 0)
		case TagRight:
			chk.Float64(tst, "x", 1e-15, x[0], 1)
		case TagBottom:
			chk.Float64(tst, "y", 1e-15, x[1], 0)
		case TagTop:
			chk.Float64(tst, "y", 1e-15, x[1], 1)
		}
	}
	if msh.OnBoundary(2, 0) {
		tst.Errorf("cells are never on boundary")
	}
	if !msh.OnBoundary(0, 0) || msh.OnBoundary(0, 4) {
		tst.Errorf("OnBoundary of vertices is wrong")
	}
}

func Test_msh03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh03. read mesh")

	msh, err := ReadMsh("data", "square2.msh")
	require.NoError(tst, err)
	chk.IntAssert(msh.NumFacets(), 5)
	chk.Ints(tst, "facet tags", msh.FacetTags, []int{10, 20, 0, 30, 40})
	chk.Ints(tst, "cell 1 facets", msh.Cells[1].Facets, []int{2, 3, 4})
	chk.Ints(tst, "cells of diagonal", msh.FacetCells[2], []int{0, 1})
	chk.Float64(tst, "ymax", 1e-17, msh.Ymax, 1)

	_, err = ReadMsh("data", "badcell.msh")
	require.Error(tst, err)
	_, err = ReadMsh("data", "nonexistent.msh")
	require.Error(tst, err)
}

func Test_markers01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("markers01. mesh functions")

	msh := UnitSquareMesh(2, 2)

	ff := FacetFunction(msh, 0)
	chk.IntAssert(ff.Dim, 1)
	chk.IntAssert(len(ff.Values), 16)
	n := ff.Mark(func(x []float64, onBoundary bool) bool { return x[0] < 1e-10 }, 7)
	chk.IntAssert(n, 2)
	for _, f := range ff.Entities(7) {
		chk.IntAssert(msh.FacetTags[f], TagLeft)
	}

	ef := EdgeFunction(msh, 0)
	chk.IntAssert(ef.Dim, ff.Dim)
	n = ef.Mark(func(x []float64, onBoundary bool) bool { return onBoundary }, 1)
	chk.IntAssert(n, 8)

	vf := VertexFunction(msh, -1)
	n = vf.Mark(func(x []float64, onBoundary bool) bool { return !onBoundary }, 3)
	chk.IntAssert(n, 1)
	chk.Ints(tst, "interior vertex", vf.Entities(3), []int{4})

	cf := CellFunction(msh, 0)
	cf.Set(5, 2)
	chk.IntAssert(cf.Value(5), 2)
	chk.IntAssert(len(cf.Entities(0)), 7)
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. read simulation file")

	sim, err := ReadSim("data/poisson01.sim", "")
	require.NoError(tst, err)
	chk.String(tst, sim.Key, "poisson01")
	chk.String(tst, sim.DirOut, "/tmp/dirichlet/poisson01")
	chk.String(tst, sim.EncType, "json")
	chk.String(tst, sim.Space.Family, "Lagrange")
	chk.IntAssert(sim.Space.Ncomp, 1)
	chk.IntAssert(len(sim.Msh.Verts), 25)
	chk.IntAssert(len(sim.Bcs), 2)
	chk.String(tst, sim.Bcs[1].Method, "geometric")
	chk.IntAssert(sim.Bcs[1].Tag, TagRight)
	chk.String(tst, sim.Problem.Strategy, "apply")
	chk.Float64(tst, "diag", 1e-17, sim.Problem.Diag, 1)

	f, err := sim.Functions.Get("one")
	require.NoError(tst, err)
	chk.Float64(tst, "one", 1e-17, f.F(0, []float64{0.3, 0.2}), 1)
	z, err := sim.Functions.Get("zero")
	require.NoError(tst, err)
	chk.Float64(tst, "zero", 1e-17, z.F(0, nil), 0)
	_, err = sim.Functions.Get("unknown")
	require.Error(tst, err)
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. defaults and errors")

	sim, err := ReadSim("data/mshfile.sim", "alias")
	require.NoError(tst, err)
	chk.String(tst, sim.Key, "mshfile-alias")
	chk.String(tst, sim.EncType, "json")
	chk.IntAssert(len(sim.Msh.Cells), 2)
	chk.String(tst, sim.Bcs[0].Name, "bc0")
	chk.String(tst, sim.Bcs[0].Method, "topological")
	chk.Strings(tst, "funcs", sim.Bcs[0].Funcs, []string{"zero"})

	_, err = ReadSim("data/badstrategy.sim", "")
	require.Error(tst, err)
	_, err = ReadSim("data/nonexistent.sim", "")
	require.Error(tst, err)
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. function database errors")

	fcns := FuncsData{
		{Name: "nonexistent", Type: "nonexistent"},
		{Name: "noprms", Type: "cte"},
		{Name: "three", Type: "cte", Prms: dbf.Params{&dbf.P{N: "c", V: 3}}},
	}
	_, err := fcns.Get("nonexistent")
	require.Error(tst, err)
	_, err = fcns.Get("noprms")
	require.Error(tst, err)
	_, err = fcns.GetMany([]string{"three", "noprms"})
	require.Error(tst, err)

	f, err := fcns.Get("three")
	require.NoError(tst, err)
	chk.Float64(tst, "three", 1e-17, f.F(1, []float64{0, 0}), 3)
}
