// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// tri3 and tri6 (natural coordinates r, s ∈ [0, 1]; r + s ≤ 1)
//
//     s
//     |
//     2, (0,1)               2
//     | ',                   | ',
//     |   ',                 5   4
//     |     ',               |     ',
//     0-------1 ---- r       0---3---1
//   (0,0)   (1,0)
//
func init() {
	register(&Shape{
		Type:           "tri3",
		Func:           FuncTri3,
		Gndim:          2,
		Nverts:         3,
		Ncorners:       3,
		Degree:         1,
		Geo:            "tri3",
		NatCoords:      [][]float64{{0, 1, 0}, {0, 0, 1}},
		FaceLocalVerts: [][]int{{0, 1}, {1, 2}, {2, 0}},
		EdgeLocalVerts: [][]int{{0, 1}, {1, 2}, {2, 0}},
	})
	register(&Shape{
		Type:           "tri6",
		Func:           FuncTri6,
		Gndim:          2,
		Nverts:         6,
		Ncorners:       3,
		Degree:         2,
		Geo:            "tri3",
		NatCoords:      [][]float64{{0, 1, 0, 0.5, 0.5, 0}, {0, 0, 1, 0, 0.5, 0.5}},
		FaceLocalVerts: [][]int{{0, 1, 3}, {1, 2, 4}, {2, 0, 5}},
		EdgeLocalVerts: [][]int{{0, 1}, {1, 2}, {2, 0}},
	})
}

// FuncTri3 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tri3
func FuncTri3(S []float64, dSdR [][]float64, R []float64, derivs bool, idx int) {
	r, s := R[0], R[1]
	S[0] = 1.0 - r - s
	S[1] = r
	S[2] = s
	if !derivs {
		return
	}
	dSdR[0][0], dSdR[0][1] = -1.0, -1.0
	dSdR[1][0], dSdR[1][1] = 1.0, 0.0
	dSdR[2][0], dSdR[2][1] = 0.0, 1.0
}

// FuncTri6 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tri6
func FuncTri6(S []float64, dSdR [][]float64, R []float64, derivs bool, idx int) {
	r, s := R[0], R[1]
	t := 1.0 - r - s
	S[0] = t * (2.0*t - 1.0)
	S[1] = r * (2.0*r - 1.0)
	S[2] = s * (2.0*s - 1.0)
	S[3] = 4.0 * r * t
	S[4] = 4.0 * r * s
	S[5] = 4.0 * s * t
	if !derivs {
		return
	}
	dSdR[0][0], dSdR[0][1] = 1.0-4.0*t, 1.0-4.0*t
	dSdR[1][0], dSdR[1][1] = 4.0*r-1.0, 0.0
	dSdR[2][0], dSdR[2][1] = 0.0, 4.0*s-1.0
	dSdR[3][0], dSdR[3][1] = 4.0*(t-r), -4.0*r
	dSdR[4][0], dSdR[4][1] = 4.0*s, 4.0*r
	dSdR[5][0], dSdR[5][1] = -4.0*s, 4.0*(t-s)
}
