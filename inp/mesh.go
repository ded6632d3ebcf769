// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/cpmech/dirichlet/shp"
	"github.com/cpmech/gosl/chk"
)

// Vert holds vertex data
type Vert struct {
	Id  int       `json:"i"` // id
	Tag int       `json:"t"` // tag
	C   []float64 `json:"c"` // coordinates (size==2 or 3)
}

// Cell holds cell data
type Cell struct {

	// input data
	Id    int    `json:"i"` // id
	Tag   int    `json:"t"` // tag
	Type  string `json:"y"` // geometry type; e.g. "lin2", "tri3"
	Verts []int  `json:"v"` // vertices
	FTags []int  `json:"f"` // face tags; 0 means untagged

	// derived
	Shp    *shp.Shape // geometry shape
	Edges  []int      // [nedges] global ids of edges of this cell. 1D: the cell itself
	Facets []int      // [nfaces] global ids of facets of this cell, in local face order
}

// Mesh holds a mesh made of straight (geometrically linear) cells
type Mesh struct {

	// from JSON
	Verts []*Vert `json:"verts"` // vertices
	Cells []*Cell `json:"cells"` // cells

	// derived
	Ndim       int     // space dimension
	Tdim       int     // topological dimension of cells
	Xmin, Xmax float64 // limits
	Ymin, Ymax float64 // limits
	EdgeVerts  [][]int // [nedges][2] vertices of edges (sorted)
	FacetVerts [][]int // [nfacets] vertices of facets (sorted)
	FacetCells [][]int // [nfacets] cells sharing each facet
	FacetTags  []int   // [nfacets] tags of facets; 0 means untagged
	BryVerts   []bool  // [nverts] vertex belongs to an exterior facet
	VertCells  [][]int // [nverts] cells sharing each vertex
}

// ReadMsh reads a mesh in JSON (.msh) format
//  Note: returns error if the mesh is inconsistent
func ReadMsh(dir, fn string) (o *Mesh, err error) {

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read mesh file %q:\n%v", fn, err)
	}

	// decode
	o = new(Mesh)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal mesh file %q:\n%v", fn, err)
	}

	// derived data
	err = o.Init()
	return
}

// Init checks consistency and computes topological data of facets and edges
func (o *Mesh) Init() (err error) {

	// check
	if len(o.Verts) < 2 {
		return chk.Err("mesh must have at least 2 vertices")
	}
	if len(o.Cells) < 1 {
		return chk.Err("mesh must have at least 1 cell")
	}

	// vertices and limits
	o.Ndim = len(o.Verts[0].C)
	if o.Ndim < 1 || o.Ndim > 2 {
		return chk.Err("space dimension must be 1 or 2. ndim=%d is invalid", o.Ndim)
	}
	o.Xmin, o.Xmax = math.Inf(1), math.Inf(-1)
	o.Ymin, o.Ymax = math.Inf(1), math.Inf(-1)
	for i, v := range o.Verts {
		if v.Id != i {
			return chk.Err("vertices ids must coincide with order in \"verts\" list. %d != %d", v.Id, i)
		}
		if len(v.C) != o.Ndim {
			return chk.Err("all vertices must have the same number of coordinates. vertex %d has %d", i, len(v.C))
		}
		o.Xmin, o.Xmax = math.Min(o.Xmin, v.C[0]), math.Max(o.Xmax, v.C[0])
		if o.Ndim > 1 {
			o.Ymin, o.Ymax = math.Min(o.Ymin, v.C[1]), math.Max(o.Ymax, v.C[1])
		}
	}
	if o.Ndim == 1 {
		o.Ymin, o.Ymax = 0, 0
	}

	// cells
	o.VertCells = make([][]int, len(o.Verts))
	o.Tdim = -1
	for i, c := range o.Cells {
		if c.Id != i {
			return chk.Err("cells ids must coincide with order in \"cells\" list. %d != %d", c.Id, i)
		}
		c.Shp, err = shp.Get(c.Type)
		if err != nil {
			return chk.Err("cannot get shape of cell %d:\n%v", i, err)
		}
		if c.Shp.Geo != c.Type {
			return chk.Err("cells must be geometrically linear. %q is invalid", c.Type)
		}
		if o.Tdim < 0 {
			o.Tdim = c.Shp.Gndim
		}
		if c.Shp.Gndim != o.Tdim {
			return chk.Err("all cells must have the same topological dimension. cell %d has %d", i, c.Shp.Gndim)
		}
		if len(c.Verts) != c.Shp.Nverts {
			return chk.Err("cell %d of type %q must have %d vertices", i, c.Type, c.Shp.Nverts)
		}
		for _, v := range c.Verts {
			if v < 0 || v >= len(o.Verts) {
				return chk.Err("cell %d has invalid vertex id %d", i, v)
			}
			o.VertCells[v] = append(o.VertCells[v], c.Id)
		}
	}
	if o.Tdim > o.Ndim {
		return chk.Err("topological dimension of cells (%d) cannot be greater than space dimension (%d)", o.Tdim, o.Ndim)
	}

	// edges and facets
	switch o.Tdim {
	case 1:
		o.init_topology_1d()
	case 2:
		o.init_topology_2d()
	}

	// boundary vertices and facet tags
	o.BryVerts = make([]bool, len(o.Verts))
	for f, cells := range o.FacetCells {
		if len(cells) == 1 {
			for _, v := range o.FacetVerts[f] {
				o.BryVerts[v] = true
			}
		}
	}
	o.FacetTags = make([]int, len(o.FacetVerts))
	for _, c := range o.Cells {
		if len(c.FTags) == 0 {
			continue
		}
		if len(c.FTags) != len(c.Facets) {
			return chk.Err("cell %d must have %d face tags; %d were given", c.Id, len(c.Facets), len(c.FTags))
		}
		for k, tag := range c.FTags {
			if tag != 0 {
				o.FacetTags[c.Facets[k]] = tag
			}
		}
	}
	return
}

// NumEntities returns the number of entities of a given topological dimension
func (o *Mesh) NumEntities(dim int) int {
	switch {
	case dim == 0:
		return len(o.Verts)
	case dim == o.Tdim:
		return len(o.Cells)
	case dim == 1:
		return len(o.EdgeVerts)
	}
	return 0
}

// FacetDim returns the topological dimension of facets
func (o *Mesh) FacetDim() int {
	return o.Tdim - 1
}

// NumFacets returns the number of facets
func (o *Mesh) NumFacets() int {
	return len(o.FacetVerts)
}

// IsExterior tells whether facet f belongs to one cell only
func (o *Mesh) IsExterior(f int) bool {
	return len(o.FacetCells[f]) == 1
}

// EntityVerts returns the vertices of entity e of dimension dim
func (o *Mesh) EntityVerts(dim, e int) []int {
	switch {
	case dim == 0:
		return []int{e}
	case dim == o.Tdim:
		return o.Cells[e].Verts
	case dim == 1:
		return o.EdgeVerts[e]
	}
	chk.Panic("cannot get vertices of entity with dimension %d", dim)
	return nil
}

// CellEntities returns the ids of all entities of dimension dim in cell cid
func (o *Mesh) CellEntities(dim, cid int) []int {
	c := o.Cells[cid]
	switch {
	case dim == 0:
		return c.Verts
	case dim == o.Tdim:
		return []int{cid}
	case dim == 1:
		return c.Edges
	}
	chk.Panic("cannot get entities with dimension %d of cell %d", dim, cid)
	return nil
}

// OnBoundary tells whether entity e of dimension dim lies on the exterior boundary
//  facets: the facet is exterior
//  lower dimensions: all vertices belong to exterior facets
//  cells: false
func (o *Mesh) OnBoundary(dim, e int) bool {
	if dim == o.Tdim {
		return false
	}
	if dim == o.FacetDim() {
		return o.IsExterior(e)
	}
	for _, v := range o.EntityVerts(dim, e) {
		if !o.BryVerts[v] {
			return false
		}
	}
	return true
}

// Midpoint returns the midpoint (average of vertices) of entity e of dimension dim
func (o *Mesh) Midpoint(dim, e int) (x []float64) {
	x = make([]float64, o.Ndim)
	verts := o.EntityVerts(dim, e)
	for _, v := range verts {
		for i := 0; i < o.Ndim; i++ {
			x[i] += o.Verts[v].C[i]
		}
	}
	for i := 0; i < o.Ndim; i++ {
		x[i] /= float64(len(verts))
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// init_topology_1d sets edges (== cells) and facets (== vertices)
func (o *Mesh) init_topology_1d() {
	o.EdgeVerts = make([][]int, len(o.Cells))
	for _, c := range o.Cells {
		o.EdgeVerts[c.Id] = sorted_pair(c.Verts[0], c.Verts[1])
		c.Edges = []int{c.Id}
		c.Facets = []int{c.Verts[0], c.Verts[1]}
	}
	o.FacetVerts = make([][]int, len(o.Verts))
	o.FacetCells = make([][]int, len(o.Verts))
	for v := range o.Verts {
		o.FacetVerts[v] = []int{v}
		o.FacetCells[v] = o.VertCells[v]
	}
}

// init_topology_2d sets edges and facets (== edges)
func (o *Mesh) init_topology_2d() {
	key2edge := make(map[[2]int]int)
	o.EdgeVerts = make([][]int, 0)
	o.FacetCells = make([][]int, 0)
	for _, c := range o.Cells {
		nedges := len(c.Shp.EdgeLocalVerts)
		c.Edges = make([]int, nedges)
		for k, lverts := range c.Shp.EdgeLocalVerts {
			pair := sorted_pair(c.Verts[lverts[0]], c.Verts[lverts[1]])
			key := [2]int{pair[0], pair[1]}
			eid, found := key2edge[key]
			if !found {
				eid = len(o.EdgeVerts)
				key2edge[key] = eid
				o.EdgeVerts = append(o.EdgeVerts, pair)
				o.FacetCells = append(o.FacetCells, nil)
			}
			c.Edges[k] = eid
			o.FacetCells[eid] = append(o.FacetCells[eid], c.Id)
		}
		c.Facets = c.Edges
	}
	o.FacetVerts = o.EdgeVerts
	for _, cells := range o.FacetCells {
		sort.Ints(cells)
	}
}

// sorted_pair returns {a, b} sorted
func sorted_pair(a, b int) []int {
	if a > b {
		return []int{b, a}
	}
	return []int{a, b}
}
