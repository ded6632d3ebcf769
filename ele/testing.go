// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/dirichlet/inp"
	"github.com/cpmech/gosl/chk"
)

// OneCellData returns element data for a mesh with one cell; used in tests
//  coords -- [nverts][ndim] coordinates of the corners of the cell
func OneCellData(cellType string, coords [][]float64, test, trial string, ncTest, ncTrial int) (dat *Data) {
	msh := new(inp.Mesh)
	verts := make([]int, len(coords))
	for i, c := range coords {
		msh.Verts = append(msh.Verts, &inp.Vert{Id: i, C: c})
		verts[i] = i
	}
	msh.Cells = []*inp.Cell{{Id: 0, Type: cellType, Verts: verts}}
	err := msh.Init()
	if err != nil {
		chk.Panic("cannot initialise mesh with one cell:\n%v", err)
	}
	dat = &Data{Cell: msh.Cells[0], X: BuildCoordsMatrix(msh.Cells[0], msh)}
	dat.Test, err = NewBasis(test, ncTest)
	if err != nil {
		chk.Panic("%v", err)
	}
	if trial != "" {
		dat.Trial, err = NewBasis(trial, ncTrial)
		if err != nil {
			chk.Panic("%v", err)
		}
	}
	return
}
