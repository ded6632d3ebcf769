// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// VecNormInf returns the infinite norm of v; i.e. max |v_i|
func VecNormInf(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return floats.Norm(v, math.Inf(1))
}

// VecMaxDiff returns max |a_i - b_i|
func VecMaxDiff(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return floats.Distance(a, b, math.Inf(1))
}

// Residual computes r := A・x - b
func Residual(r []float64, A *CSR, x, b []float64) {
	A.MulVec(r, x)
	floats.Sub(r, b)
}
