// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bc

import "github.com/cpmech/dirichlet/inp"

// Space is the dof layout of a function space as seen by boundary conditions.
// Dof indices are always global; a subspace exposes the dofs of its component
// in the numbering of the parent space
type Space interface {
	Ndofs() int                  // size of the global dof space; i.e. number of rows of A
	Dofs() []int                 // dofs of this (sub)space
	DofCoords(dof int) []float64 // coordinates of dof
	DofComponent(dof int) int    // component of dof within this (sub)space
	EntityDofs(dim, e int) []int // dofs of this (sub)space in the closure of entity e of dimension dim
	Mesh() *inp.Mesh             // mesh
	Ncomp() int                  // number of components of this (sub)space
}
