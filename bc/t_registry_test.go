// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bc_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/cpmech/dirichlet/bc"
	"github.com/cpmech/dirichlet/inp"
	"github.com/cpmech/dirichlet/la"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func Test_registry01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("registry01. order of conditions")

	V := space(tst, inp.UnitSquareMesh(2, 2), 1, 1)
	left, err := bc.NewDirichletCte(V, []float64{1}, bc.Near(0, 0), bc.Topological)
	require.NoError(tst, err)
	left.Name = "left"
	bottom, err := bc.NewDirichletCte(V, []float64{2}, bc.Subdomain(inp.TagBottom), bc.Geometric)
	require.NoError(tst, err)
	bottom.Name = "bottom"

	// later conditions win on shared dofs
	reg := bc.NewRegistry(left)
	reg.Add(bottom)
	chk.IntAssert(reg.Len(), 2)
	vals, err := reg.BoundaryValues()
	require.NoError(tst, err)
	require.Equal(tst, map[int]float64{0: 2, 1: 2, 2: 2, 3: 1, 6: 1}, vals)
	dofs, err := reg.Dofs()
	require.NoError(tst, err)
	chk.Ints(tst, "dofs", dofs, []int{0, 1, 2, 3, 6})

	A, err := assembleLaplace(V)
	require.NoError(tst, err)
	b := make([]float64, V.Ndofs())
	require.NoError(tst, reg.Apply(A, b))
	chk.Array(tst, "b", 1e-17, b, []float64{2, 2, 2, 1, 0, 0, 1, 0, 0})
	for _, d := range dofs {
		chk.Float64(tst, "diag", 1e-17, A.Get(d, d), 1)
	}

	// package-level apply with the reverse order
	c := make([]float64, V.Ndofs())
	require.NoError(tst, bc.Apply(nil, c, bottom, left))
	chk.Float64(tst, "c[0]", 1e-17, c[0], 1)

	// listing
	reg.SetTime(1)
	l := reg.List(1)
	io.Pforan("%v", l)
	require.True(tst, strings.Contains(l, "bottom"))
	require.True(tst, strings.Contains(l, "left"))
	chk.IntAssert(strings.Count(l, "\n"), 10)

	// homogenize
	reg.Homogenize()
	require.NoError(tst, reg.ApplyVector(b))
	chk.Array(tst, "b", 1e-17, b, []float64{0, 0, 0, 0, 0, 0, 0, 0, 0})

	// errors carry the failing condition
	err = reg.ApplyVector(make([]float64, 3))
	require.True(tst, errors.Is(err, bc.ErrDimensionMismatch))
	require.Contains(tst, err.Error(), "left")
}

func Test_registry02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("registry02. zero, zero columns and residual")

	V := space(tst, inp.UnitIntervalMesh(4), 1, 1)
	left, err := bc.NewDirichlet(V, []dbf.T{&dbf.Cte{C: 1}}, bc.Near(0, 0), bc.Topological)
	require.NoError(tst, err)
	right, err := bc.NewDirichletCte(V, []float64{3}, bc.Near(0, 1), bc.Pointwise)
	require.NoError(tst, err)
	reg := bc.NewRegistry(left, right)

	A, err := assembleLaplace(V)
	require.NoError(tst, err)
	require.NoError(tst, reg.Zero(A))
	chk.Float64(tst, "A[0,0]", 1e-17, A.Get(0, 0), 0)
	chk.Float64(tst, "A[4,3]", 1e-17, A.Get(4, 3), 0)
	chk.Float64(tst, "A[1,0]", 1e-17, A.Get(1, 0), -4)

	A, err = assembleLaplace(V)
	require.NoError(tst, err)
	b := make([]float64, V.Ndofs())
	require.NoError(tst, reg.ZeroColumns(A, b, 1))
	x := solve(tst, A, b)
	chk.Array(tst, "x", 1e-13, x, []float64{1, 1.5, 2, 2.5, 3})

	r := make([]float64, V.Ndofs())
	require.NoError(tst, reg.ApplyResidual(r, x))
	chk.Array(tst, "r", 1e-13, r, []float64{0, 0, 0, 0, 0})
}

func Test_registry04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("registry04. zero columns with overlapping conditions")

	V := space(tst, inp.UnitSquareMesh(4, 4), 1, 1)
	first, err := bc.NewDirichletCte(V, []float64{1}, bc.OnBoundary(), bc.Topological)
	require.NoError(tst, err)
	last, err := bc.NewDirichletCte(V, []float64{5}, bc.OnBoundary(), bc.Topological)
	require.NoError(tst, err)
	reg := bc.NewRegistry(first, last)

	A0, err := assembleLaplace(V)
	require.NoError(tst, err)
	n := V.Ndofs()
	xcor := make([]float64, n)
	for i := range xcor {
		xcor[i] = 5
	}

	// zero columns keeps the last value on shared dofs and the operator symmetric
	A := A0.Clone()
	b := make([]float64, n)
	require.NoError(tst, reg.ZeroColumns(A, b, 1))
	chk.Array(tst, "x (zero columns)", 1e-12, solve(tst, A, b), xcor)
	chol, err := la.GetSolver("chol")
	require.NoError(tst, err)
	require.NoError(tst, chol.Init(A))
	x := make([]float64, n)
	require.NoError(tst, chol.Solve(x, b))
	chk.Array(tst, "x (zero columns, chol)", 1e-12, x, xcor)

	// same as apply
	A = A0.Clone()
	b = make([]float64, n)
	require.NoError(tst, reg.Apply(A, b))
	chk.Array(tst, "x (apply)", 1e-12, solve(tst, A, b), xcor)

	// merged constraints
	cs, err := reg.Constraints()
	require.NoError(tst, err)
	chk.IntAssert(cs.N, n)
	dofs, err := last.Dofs()
	require.NoError(tst, err)
	chk.Ints(tst, "dofs", cs.Dofs, dofs)
	for _, v := range cs.Vals {
		chk.Float64(tst, "g", 1e-17, v, 5)
	}

	// conditions over spaces of different sizes cannot be merged
	W := space(tst, inp.UnitSquareMesh(2, 2), 1, 1)
	other, err := bc.NewDirichletCte(W, []float64{0}, bc.OnBoundary(), bc.Topological)
	require.NoError(tst, err)
	reg.Add(other)
	require.True(tst, errors.Is(reg.ZeroColumns(A0.Clone(), make([]float64, n), 1), bc.ErrDimensionMismatch))
}

func Test_registry03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("registry03. apply is idempotent on assembled systems")

	V := space(tst, inp.UnitSquareMesh(3, 3), 2, 1)
	methods := []bc.Method{bc.Topological, bc.Geometric, bc.Pointwise}
	tags := []int{inp.TagLeft, inp.TagRight, inp.TagBottom, inp.TagTop}

	rapid.Check(tst, func(t *rapid.T) {
		nbcs := rapid.IntRange(1, 4).Draw(t, "nbcs")
		reg := bc.NewRegistry()
		for i := 0; i < nbcs; i++ {
			tag := rapid.SampledFrom(tags).Draw(t, "tag")
			method := rapid.SampledFrom(methods).Draw(t, "method")
			val := rapid.Float64Range(-10, 10).Draw(t, "val")
			b, err := bc.NewDirichletCte(V, []float64{val}, bc.Subdomain(tag), method)
			if err != nil {
				t.Fatalf("cannot allocate condition: %v", err)
			}
			reg.Add(b)
		}

		A, err := assembleLaplace(V)
		if err != nil {
			t.Fatalf("cannot assemble: %v", err)
		}
		b := make([]float64, V.Ndofs())
		if err = reg.Apply(A, b); err != nil {
			t.Fatalf("apply failed: %v", err)
		}
		A2, b2 := A.Clone(), append([]float64{}, b...)
		if err = reg.Apply(A2, b2); err != nil {
			t.Fatalf("second apply failed: %v", err)
		}
		for i := range b {
			if b[i] != b2[i] {
				t.Fatalf("b[%d] changed: %g != %g", i, b[i], b2[i])
			}
		}
		if A.Nnz() != A2.Nnz() {
			t.Fatalf("pattern changed: nnz = %d != %d", A2.Nnz(), A.Nnz())
		}
		for i := 0; i < A.M; i++ {
			cols, vals := A.Row(i)
			for k, j := range cols {
				if vals[k] != A2.Get(i, j) {
					t.Fatalf("A[%d,%d] changed: %g != %g", i, j, A2.Get(i, j), vals[k])
				}
			}
		}

		// the solution satisfies the last condition written on each dof
		vals, err := reg.BoundaryValues()
		if err != nil {
			t.Fatalf("cannot get values: %v", err)
		}
		x := solve(tst, A, b)
		for d, v := range vals {
			if diff := x[d] - v; diff > 1e-10 || diff < -1e-10 {
				t.Fatalf("x[%d] = %g != %g", d, x[d], v)
			}
		}
	})
}
