// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// lin2 and lin3 (natural coordinate r ∈ [-1, 1])
//
//     0-----------1      0-----2-----1
//
func init() {
	register(&Shape{
		Type:           "lin2",
		Func:           FuncLin2,
		Gndim:          1,
		Nverts:         2,
		Ncorners:       2,
		Degree:         1,
		Geo:            "lin2",
		NatCoords:      [][]float64{{-1, 1}},
		FaceLocalVerts: [][]int{{0}, {1}},
	})
	register(&Shape{
		Type:           "lin3",
		Func:           FuncLin3,
		Gndim:          1,
		Nverts:         3,
		Ncorners:       2,
		Degree:         2,
		Geo:            "lin2",
		NatCoords:      [][]float64{{-1, 1, 0}},
		FaceLocalVerts: [][]int{{0}, {1}},
	})
}

// FuncLin2 calculates the shape functions (S) and derivatives of shape functions (dSdR) of lin2
func FuncLin2(S []float64, dSdR [][]float64, R []float64, derivs bool, idx int) {
	r := R[0]
	S[0] = 0.5 * (1.0 - r)
	S[1] = 0.5 * (1.0 + r)
	if !derivs {
		return
	}
	dSdR[0][0] = -0.5
	dSdR[1][0] = 0.5
}

// FuncLin3 calculates the shape functions (S) and derivatives of shape functions (dSdR) of lin3
func FuncLin3(S []float64, dSdR [][]float64, R []float64, derivs bool, idx int) {
	r := R[0]
	S[0] = 0.5 * (r*r - r)
	S[1] = 0.5 * (r*r + r)
	S[2] = 1.0 - r*r
	if !derivs {
		return
	}
	dSdR[0][0] = r - 0.5
	dSdR[1][0] = r + 0.5
	dSdR[2][0] = -2.0 * r
}
