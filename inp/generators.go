// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/chk"

// tags of boundary facets set by the generators
const (
	TagLeft   = 1 // x == xmin
	TagRight  = 2 // x == xmax
	TagBottom = 3 // y == ymin
	TagTop    = 4 // y == ymax
)

// UnitIntervalMesh generates a mesh with n lin2 cells over [0, 1]
func UnitIntervalMesh(n int) *Mesh {
	return IntervalMesh(n, 0, 1)
}

// IntervalMesh generates a mesh with n lin2 cells over [a, b]
//  Facet tags: TagLeft @ x==a and TagRight @ x==b
func IntervalMesh(n int, a, b float64) (o *Mesh) {
	if n < 1 {
		chk.Panic("number of cells must be at least 1. n=%d is invalid", n)
	}
	o = new(Mesh)
	o.Verts = make([]*Vert, n+1)
	for i := 0; i <= n; i++ {
		o.Verts[i] = &Vert{Id: i, C: []float64{a + (b-a)*float64(i)/float64(n)}}
	}
	o.Cells = make([]*Cell, n)
	for i := 0; i < n; i++ {
		o.Cells[i] = &Cell{Id: i, Type: "lin2", Verts: []int{i, i + 1}, FTags: []int{0, 0}}
	}
	o.Cells[0].FTags[0] = TagLeft
	o.Cells[n-1].FTags[1] = TagRight
	err := o.Init()
	if err != nil {
		chk.Panic("cannot generate interval mesh:\n%v", err)
	}
	return
}

// UnitSquareMesh generates a mesh with 2·nx·ny tri3 cells over [0,1]×[0,1]
func UnitSquareMesh(nx, ny int) *Mesh {
	return RectangleMesh(0, 0, 1, 1, nx, ny)
}

// RectangleMesh generates a mesh with 2·nx·ny tri3 cells over [xmin,xmax]×[ymin,ymax]
//  Each rectangle is split by its diagonal from the lower-left to the upper-right corner:
//
//      3-------2
//      | c1  ,'|
//      |   ,'  |
//      | ,' c0 |
//      0-------1
//
//  Facet tags: TagLeft, TagRight, TagBottom and TagTop
func RectangleMesh(xmin, ymin, xmax, ymax float64, nx, ny int) (o *Mesh) {
	if nx < 1 || ny < 1 {
		chk.Panic("number of divisions must be at least 1. nx=%d and ny=%d are invalid", nx, ny)
	}
	o = new(Mesh)
	o.Verts = make([]*Vert, (nx+1)*(ny+1))
	for j := 0; j <= ny; j++ {
		y := ymin + (ymax-ymin)*float64(j)/float64(ny)
		for i := 0; i <= nx; i++ {
			x := xmin + (xmax-xmin)*float64(i)/float64(nx)
			id := j*(nx+1) + i
			o.Verts[id] = &Vert{Id: id, C: []float64{x, y}}
		}
	}
	o.Cells = make([]*Cell, 0, 2*nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			v0 := j*(nx+1) + i
			v1 := v0 + 1
			v2 := v1 + nx + 1
			v3 := v0 + nx + 1
			c0 := &Cell{Id: len(o.Cells), Type: "tri3", Verts: []int{v0, v1, v2}, FTags: []int{0, 0, 0}}
			if j == 0 {
				c0.FTags[0] = TagBottom
			}
			if i == nx-1 {
				c0.FTags[1] = TagRight
			}
			o.Cells = append(o.Cells, c0)
			c1 := &Cell{Id: len(o.Cells), Type: "tri3", Verts: []int{v0, v2, v3}, FTags: []int{0, 0, 0}}
			if j == ny-1 {
				c1.FTags[1] = TagTop
			}
			if i == 0 {
				c1.FTags[2] = TagLeft
			}
			o.Cells = append(o.Cells, c1)
		}
	}
	err := o.Init()
	if err != nil {
		chk.Panic("cannot generate rectangle mesh:\n%v", err)
	}
	return
}
