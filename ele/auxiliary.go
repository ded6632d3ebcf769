// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/dirichlet/inp"
	"github.com/cpmech/dirichlet/la"
	"github.com/cpmech/dirichlet/shp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// BuildCoordsMatrix returns the coordinate matrix of a particular Cell
func BuildCoordsMatrix(cell *inp.Cell, msh *inp.Mesh) (x [][]float64) {
	x = utl.Alloc(msh.Ndim, len(cell.Verts))
	for i := 0; i < msh.Ndim; i++ {
		for j, v := range cell.Verts {
			x[i][j] = msh.Verts[v].C[i]
		}
	}
	return
}

// Local holds the local equations, matrix and vector of one element
type Local struct {
	Cell *inp.Cell   // the cell structure
	Rows []int       // global equations of test dofs
	Cols []int       // global equations of trial dofs
	K    [][]float64 // [nrows][ncols] local matrix
	F    []float64   // [nrows] local vector
}

// Init allocates K and F
func (o *Local) Init(cell *inp.Cell, nrows, ncols int) {
	o.Cell = cell
	o.K = utl.Alloc(nrows, ncols)
	o.F = make([]float64, nrows)
}

// Id returns the cell Id
func (o *Local) Id() int { return o.Cell.Id }

// SetEqs sets equations
func (o *Local) SetEqs(rows, cols []int) (err error) {
	if len(rows) != len(o.F) {
		return chk.Err("element %d needs %d row equations. %d is invalid", o.Cell.Id, len(o.F), len(rows))
	}
	if len(o.K) > 0 && len(cols) != len(o.K[0]) {
		return chk.Err("element %d needs %d column equations. %d is invalid", o.Cell.Id, len(o.K[0]), len(cols))
	}
	o.Rows, o.Cols = rows, cols
	return
}

// AddToKb adds K to global matrix Kb. Zero entries are added too, defining the sparsity pattern
func (o *Local) AddToKb(Kb *la.Triplet) (err error) {
	for i, I := range o.Rows {
		for j, J := range o.Cols {
			Kb.Put(I, J, o.K[i][j])
		}
	}
	return
}

// AddToRhs adds F to global vector fb
func (o *Local) AddToRhs(fb []float64, t float64) (err error) {
	for i, I := range o.Rows {
		fb[I] += o.F[i]
	}
	return
}

// Matrix returns the local matrix
func (o *Local) Matrix() [][]float64 { return o.K }

// IpGeom computes the affine map between natural and real coordinates of straight cells
type IpGeom struct {
	X    [][]float64 // [ndim][ncorners] coordinates of corners
	Geo  *shp.Shape  // geometry shape with own scratchpad
	Xip  []float64   // [ndim] real coordinates of integration point
	J    float64     // determinant of dx/dr
	dxdr *mat.Dense  // [ndim][ndim] Jacobian
	drdx *mat.Dense  // [ndim][ndim] inverse of Jacobian
}

// NewIpGeom returns a new structure to compute geometric data of cell
func NewIpGeom(cell *inp.Cell, X [][]float64) (o *IpGeom, err error) {
	o = new(IpGeom)
	o.X = X
	o.Geo, err = shp.New(cell.Shp.Geo)
	if err != nil {
		return
	}
	n := o.Geo.Gndim
	if len(X) != n {
		return nil, chk.Err("cell %d: space dimension (%d) must be equal to the dimension of the shape (%d)", cell.Id, len(X), n)
	}
	o.Xip = make([]float64, n)
	o.dxdr = mat.NewDense(n, n, nil)
	o.drdx = mat.NewDense(n, n, nil)
	return
}

// CalcAtR computes Xip, J and the inverse Jacobian @ natural coordinates r
func (o *IpGeom) CalcAtR(r []float64) (err error) {
	o.Geo.CalcAtR(r, true)
	n := o.Geo.Gndim
	for i := 0; i < n; i++ {
		o.Xip[i] = 0
		for m := 0; m < o.Geo.Nverts; m++ {
			o.Xip[i] += o.Geo.S[m] * o.X[i][m]
		}
		for j := 0; j < n; j++ {
			var v float64
			for m := 0; m < o.Geo.Nverts; m++ {
				v += o.X[i][m] * o.Geo.DSdR[m][j]
			}
			o.dxdr.Set(i, j, v)
		}
	}
	o.J = mat.Det(o.dxdr)
	if o.J <= 0 {
		return chk.Err("determinant of Jacobian must be positive. det(J)=%g is invalid", o.J)
	}
	return o.drdx.Inverse(o.dxdr)
}

// Gradients computes G[m][i] = dS_m/dx_i of shape sh previously computed @ the same r
func (o *IpGeom) Gradients(G [][]float64, sh *shp.Shape) {
	n := o.Geo.Gndim
	for m := 0; m < sh.Nverts; m++ {
		for i := 0; i < n; i++ {
			G[m][i] = 0
			for j := 0; j < n; j++ {
				G[m][i] += sh.DSdR[m][j] * o.drdx.At(j, i)
			}
		}
	}
}

// IpLoop calls fcn for each integration point with coef = det(J)・weight.
// Test and trial shapes are computed @ the integration point before calling fcn.
// The integration rule is the default rule of the shape with the highest degree
func IpLoop(dat *Data, fcn func(coef float64, geo *IpGeom)) (err error) {
	geo, err := NewIpGeom(dat.Cell, dat.X)
	if err != nil {
		return
	}
	ipshape := dat.Test.Shp
	if dat.Trial.Shp != nil && dat.Trial.Shp.Degree > ipshape.Degree {
		ipshape = dat.Trial.Shp
	}
	ips, err := ipshape.GetIps(dat.Nip)
	if err != nil {
		return
	}
	for _, ip := range ips {
		r := ip.Nat(geo.Geo.Gndim)
		err = geo.CalcAtR(r)
		if err != nil {
			return
		}
		dat.Test.Shp.CalcAtR(r, true)
		if dat.Trial.Shp != nil {
			dat.Trial.Shp.CalcAtR(r, true)
		}
		fcn(geo.J*ip.W, geo)
	}
	return
}
