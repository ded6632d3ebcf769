// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/dirichlet/inp"
	"github.com/cpmech/dirichlet/shp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// dofMap holds the numbering of nodes and dofs of a Lagrange space
//  nodes: vertices first, followed by one node per edge if degree == 2
//  dofs:  dof = node・ncomp + comp
type dofMap struct {
	msh       *inp.Mesh   // mesh
	shape     string      // shape of cells; e.g. "tri6"
	ncomp     int         // number of components
	nodeX     [][]float64 // [nnodes][ndim] coordinates of nodes
	cellNodes [][]int     // [ncells][nverts_of_shape] nodes of cells in local order of shape
}

// FunctionSpace implements a continuous Lagrange space of degree 1 or 2 over intervals
// or triangles. Subspaces (Sub) share the numbering of the parent space
type FunctionSpace struct {
	Family string  // "CG", "P" or "Lagrange"
	Degree int     // polynomial degree
	dm     *dofMap // shared numbering
	comp   int     // component of subspace; -1 => whole space
}

// NewFunctionSpace returns a new Lagrange space over msh with ncomp components
func NewFunctionSpace(msh *inp.Mesh, family string, degree, ncomp int) (o *FunctionSpace, err error) {

	// check
	switch family {
	case "CG", "P", "Lagrange":
	default:
		return nil, chk.Err("family of function space %q is not available", family)
	}
	if ncomp < 1 {
		return nil, chk.Err("number of components must be at least 1. ncomp=%d is invalid", ncomp)
	}
	geo := "lin"
	if msh.Tdim == 2 {
		geo = "tri"
	}
	shape, err := shp.ByGeoAndDegree(geo, degree)
	if err != nil {
		return
	}

	// nodes @ vertices
	dm := &dofMap{msh: msh, shape: shape, ncomp: ncomp}
	nv := len(msh.Verts)
	for _, v := range msh.Verts {
		dm.nodeX = append(dm.nodeX, v.C)
	}

	// nodes @ edges
	if degree == 2 {
		for e := range msh.EdgeVerts {
			dm.nodeX = append(dm.nodeX, msh.Midpoint(1, e))
		}
	}

	// nodes of cells
	dm.cellNodes = make([][]int, len(msh.Cells))
	for i, c := range msh.Cells {
		nodes := append([]int{}, c.Verts...)
		if degree == 2 {
			for _, e := range c.Edges {
				nodes = append(nodes, nv+e)
			}
		}
		dm.cellNodes[i] = nodes
	}
	return &FunctionSpace{Family: family, Degree: degree, dm: dm, comp: -1}, nil
}

// Sub returns the subspace of component comp
func (o *FunctionSpace) Sub(comp int) (*FunctionSpace, error) {
	if o.comp >= 0 {
		return nil, chk.Err("cannot extract subspace of subspace")
	}
	if comp < 0 || comp >= o.dm.ncomp {
		return nil, chk.Err("component %d is outside [0, %d)", comp, o.dm.ncomp)
	}
	return &FunctionSpace{Family: o.Family, Degree: o.Degree, dm: o.dm, comp: comp}, nil
}

// IsSub tells whether this space is a subspace
func (o *FunctionSpace) IsSub() bool { return o.comp >= 0 }

// Component returns the component of a subspace; -1 for the whole space
func (o *FunctionSpace) Component() int { return o.comp }

// Mesh returns the mesh
func (o *FunctionSpace) Mesh() *inp.Mesh { return o.dm.msh }

// Shape returns the name of the shape of cells
func (o *FunctionSpace) Shape() string { return o.dm.shape }

// Nnodes returns the number of nodes
func (o *FunctionSpace) Nnodes() int { return len(o.dm.nodeX) }

// Ncomp returns the number of components of this (sub)space
func (o *FunctionSpace) Ncomp() int {
	if o.comp >= 0 {
		return 1
	}
	return o.dm.ncomp
}

// Ndofs returns the size of the global dof space
func (o *FunctionSpace) Ndofs() int { return len(o.dm.nodeX) * o.dm.ncomp }

// Dim returns the number of dofs of this (sub)space
func (o *FunctionSpace) Dim() int { return len(o.dm.nodeX) * o.Ncomp() }

// Dofs returns the dofs of this (sub)space in increasing order
func (o *FunctionSpace) Dofs() []int {
	if o.comp < 0 {
		return utl.IntRange(o.Ndofs())
	}
	dofs := make([]int, len(o.dm.nodeX))
	for n := range dofs {
		dofs[n] = n*o.dm.ncomp + o.comp
	}
	return dofs
}

// DofCoords returns the coordinates of dof
func (o *FunctionSpace) DofCoords(dof int) []float64 {
	return o.dm.nodeX[dof/o.dm.ncomp]
}

// DofComponent returns the component of dof within this (sub)space
func (o *FunctionSpace) DofComponent(dof int) int {
	if o.comp >= 0 {
		return 0
	}
	return dof % o.dm.ncomp
}

// EntityDofs returns the dofs of this (sub)space in the closure of entity e of dimension dim
func (o *FunctionSpace) EntityDofs(dim, e int) []int {
	return o.nodesToDofs(o.entityNodes(dim, e))
}

// CellDofs returns the dofs of cell cid in local order: m・ncomp + c
func (o *FunctionSpace) CellDofs(cid int) []int {
	return o.nodesToDofs(o.dm.cellNodes[cid])
}

// Interpolate returns the vector of dofs of the whole space with u[dof] = f_c(t, x_dof).
//  fcns -- one function for all components or one function per component
func (o *FunctionSpace) Interpolate(fcns []dbf.T, t float64) (u []float64, err error) {
	if len(fcns) != 1 && len(fcns) != o.Ncomp() {
		return nil, chk.Err("%d functions cannot be interpolated in space with %d components", len(fcns), o.Ncomp())
	}
	u = make([]float64, o.Ndofs())
	for _, d := range o.Dofs() {
		f := fcns[0]
		if len(fcns) > 1 {
			f = fcns[o.DofComponent(d)]
		}
		u[d] = f.F(t, o.DofCoords(d))
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// entityNodes returns the nodes in the closure of entity e of dimension dim
func (o *FunctionSpace) entityNodes(dim, e int) []int {
	msh := o.dm.msh
	switch {
	case dim == msh.Tdim:
		return o.dm.cellNodes[e]
	case dim == 0:
		return []int{e}
	case dim == 1:
		nodes := append([]int{}, msh.EdgeVerts[e]...)
		if o.Degree == 2 {
			nodes = append(nodes, len(msh.Verts)+e)
		}
		return nodes
	}
	chk.Panic("cannot get nodes of entity with dimension %d", dim)
	return nil
}

// nodesToDofs converts nodes into dofs of this (sub)space
func (o *FunctionSpace) nodesToDofs(nodes []int) (dofs []int) {
	nc := o.dm.ncomp
	if o.comp >= 0 {
		dofs = make([]int, len(nodes))
		for i, n := range nodes {
			dofs[i] = n*nc + o.comp
		}
		return
	}
	dofs = make([]int, len(nodes)*nc)
	for i, n := range nodes {
		for c := 0; c < nc; c++ {
			dofs[i*nc+c] = n*nc + c
		}
	}
	return
}
