// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements element kernels computing local matrices and vectors
package ele

import "github.com/cpmech/dirichlet/la"

// Element defines what all element kernels must implement
//  Local dofs are numbered node-major: idx = m・ncomp + c
type Element interface {
	Id() int                                      // returns the cell Id
	SetEqs(rows, cols []int) (err error)          // sets global equations of test (rows) and trial (cols) local dofs
	AddToKb(Kb *la.Triplet) (err error)           // adds element matrix to global matrix
	AddToRhs(fb []float64, t float64) (err error) // adds element vector @ time t to global vector
}

// Bilinear is implemented by elements with a local matrix
type Bilinear interface {
	Matrix() [][]float64 // returns the local matrix
}

// Linear is implemented by elements with a local vector
type Linear interface {
	Vector(t float64) []float64 // returns the local vector @ time t
}
