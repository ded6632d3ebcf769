// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements Lagrange shape structures and integration points
package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// ShpFunc is a shape function which computes S and dSdR @ natural coordinates r
//  Input:
//   r      -- natural coordinates
//   derivs -- also computes dSdR
//   idx    -- reserved; use -1
//  Output:
//   S    -- [nverts] shape functions
//   dSdR -- [nverts][gndim] derivatives of shape functions w.r.t natural coordinates
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool, idx int)

// Shape holds geometry and basis data of one Lagrange element type
type Shape struct {

	// geometry
	Type           string      // name; e.g. "lin2", "tri6"
	Func           ShpFunc     // shape/derivs function callback function
	Gndim          int         // geometry of shape; e.g. "tri" => gndim=2
	Nverts         int         // number of vertices (nodes) in cell; e.g. "tri6" => nverts=6
	Ncorners       int         // number of corners (geometric vertices); e.g. "tri6" => ncorners=3
	Degree         int         // polynomial degree; e.g. "tri6" => 2
	Geo            string      // geometric (linear) shape sharing the same corners; e.g. "tri6" => "tri3"
	NatCoords      [][]float64 // [gndim][nverts] natural coordinates of nodes
	FaceLocalVerts [][]int     // [nfaces][nverts_of_face] local vertices on faces
	EdgeLocalVerts [][]int     // [nedges][2] corners of each edge; 2D only

	// scratchpad: S, dSdR @ last computed natural coordinates
	S    []float64   // [nverts] shape functions
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
}

// factory holds all allocated shapes
var factory = make(map[string]*Shape)

// Get returns an existent Shape structure
//  Note: the returned structure holds scratchpad data; callers that need
//        independent S/DSdR must allocate a new one with New
func Get(shpType string) (o *Shape, err error) {
	o, ok := factory[shpType]
	if !ok {
		return nil, chk.Err("cannot find shape type = %q", shpType)
	}
	return
}

// New allocates a new Shape of given type (with its own scratchpad)
func New(shpType string) (o *Shape, err error) {
	ref, err := Get(shpType)
	if err != nil {
		return
	}
	o = new(Shape)
	*o = *ref
	o.S = make([]float64, o.Nverts)
	o.DSdR = utl.Alloc(o.Nverts, o.Gndim)
	return
}

// CalcAtR computes S and DSdR @ natural coordinates r
func (o *Shape) CalcAtR(r []float64, derivs bool) {
	o.Func(o.S, o.DSdR, r, derivs, -1)
}

// NodeNatCoords returns the natural coordinates of local node m
func (o *Shape) NodeNatCoords(m int) (r []float64) {
	r = make([]float64, o.Gndim)
	for i := 0; i < o.Gndim; i++ {
		r[i] = o.NatCoords[i][m]
	}
	return
}

// register adds a new shape to the factory
func register(o *Shape) {
	o.S = make([]float64, o.Nverts)
	o.DSdR = utl.Alloc(o.Nverts, o.Gndim)
	factory[o.Type] = o
}

// ByGeoAndDegree returns the shape name for a given geometry and polynomial degree
//  Examples: ("lin", 1) => "lin2"; ("tri", 2) => "tri6"
func ByGeoAndDegree(geo string, degree int) (name string, err error) {
	switch geo {
	case "lin":
		switch degree {
		case 1:
			return "lin2", nil
		case 2:
			return "lin3", nil
		}
	case "tri":
		switch degree {
		case 1:
			return "tri3", nil
		case 2:
			return "tri6", nil
		}
	}
	return "", chk.Err("cannot find shape for geometry %q with degree %d", geo, degree)
}
