// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/chk"

// MeshFunction holds one integer marker per mesh entity of a given topological dimension
type MeshFunction struct {
	Msh    *Mesh // mesh whose entities are marked
	Dim    int   // topological dimension of marked entities
	Values []int // [nentities] markers
}

// NewMeshFunction allocates a new MeshFunction with all entities marked with value
func NewMeshFunction(msh *Mesh, dim, value int) (o *MeshFunction) {
	if dim < 0 || dim > msh.Tdim {
		chk.Panic("dimension of entities must be in [0, %d]. dim=%d is invalid", msh.Tdim, dim)
	}
	o = &MeshFunction{Msh: msh, Dim: dim}
	o.Values = make([]int, msh.NumEntities(dim))
	o.SetAll(value)
	return
}

// VertexFunction returns a MeshFunction over vertices
func VertexFunction(msh *Mesh, value int) *MeshFunction { return NewMeshFunction(msh, 0, value) }

// EdgeFunction returns a MeshFunction over edges
func EdgeFunction(msh *Mesh, value int) *MeshFunction { return NewMeshFunction(msh, 1, value) }

// FacetFunction returns a MeshFunction over facets
func FacetFunction(msh *Mesh, value int) *MeshFunction {
	return NewMeshFunction(msh, msh.FacetDim(), value)
}

// CellFunction returns a MeshFunction over cells
func CellFunction(msh *Mesh, value int) *MeshFunction {
	return NewMeshFunction(msh, msh.Tdim, value)
}

// SetAll sets all markers to value
func (o *MeshFunction) SetAll(value int) {
	for i := range o.Values {
		o.Values[i] = value
	}
}

// Set sets the marker of entity e
func (o *MeshFunction) Set(e, value int) {
	o.Values[e] = value
}

// Value returns the marker of entity e
func (o *MeshFunction) Value(e int) int {
	return o.Values[e]
}

// Mark sets value to all entities whose midpoint and vertices satisfy inside.
// onBoundary is passed as Mesh.OnBoundary of the entity.
// It returns the number of marked entities.
func (o *MeshFunction) Mark(inside func(x []float64, onBoundary bool) bool, value int) (nmarked int) {
	for e := range o.Values {
		bry := o.Msh.OnBoundary(o.Dim, e)
		if !inside(o.Msh.Midpoint(o.Dim, e), bry) {
			continue
		}
		ok := true
		for _, v := range o.Msh.EntityVerts(o.Dim, e) {
			if !inside(o.Msh.Verts[v].C, bry) {
				ok = false
				break
			}
		}
		if ok {
			o.Values[e] = value
			nmarked++
		}
	}
	return
}

// Entities returns the entities marked with value
func (o *MeshFunction) Entities(value int) (ents []int) {
	for e, v := range o.Values {
		if v == value {
			ents = append(ents, e)
		}
	}
	return
}
