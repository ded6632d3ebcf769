// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// CheckShape checks that shape functions evaluate to 1.0 @ nodes
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	for n := 0; n < shape.Nverts; n++ {

		// compute function @ natural coordinates of vertex
		shape.CalcAtR(shape.NodeNatCoords(n), false)

		// check
		if verbose {
			io.Pf("S = %v\n", shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckPartition checks that shape functions sum up to one @ r
func CheckPartition(tst *testing.T, shape *Shape, r []float64, tol float64) {
	shape.CalcAtR(r, false)
	sum := 0.0
	for _, s := range shape.S {
		sum += s
	}
	chk.Float64(tst, shape.Type+": ΣS", tol, sum, 1.0)
}

// CheckDSdR checks dSdR derivatives of shape structures using central differences
func CheckDSdR(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {

	// analytical
	shape.CalcAtR(r, true)
	ana := utl.Alloc(shape.Nverts, shape.Gndim)
	for m := 0; m < shape.Nverts; m++ {
		copy(ana[m], shape.DSdR[m])
	}

	// numerical
	h := 1e-6
	num := utl.Alloc(shape.Nverts, shape.Gndim)
	rr := make([]float64, len(r))
	sp := make([]float64, shape.Nverts)
	for j := 0; j < shape.Gndim; j++ {
		copy(rr, r)
		rr[j] = r[j] + h
		shape.CalcAtR(rr, false)
		copy(sp, shape.S)
		rr[j] = r[j] - h
		shape.CalcAtR(rr, false)
		for m := 0; m < shape.Nverts; m++ {
			num[m][j] = (sp[m] - shape.S[m]) / (2.0 * h)
		}
	}
	if verbose {
		io.Pforan("dSdR(ana) = %v\n", ana)
		io.Pforan("dSdR(num) = %v\n", num)
	}
	chk.Deep2(tst, shape.Type+": dS/dR", tol, ana, num)
}
