// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of results of simulations
package out

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Results holds the solution of one simulation
type Results struct {
	Key      string      // simulation key
	Family   string      // family of function space
	Degree   int         // degree of function space
	Ncomp    int         // number of components
	Coords   [][]float64 // [nnodes][ndim] coordinates of nodes
	U        []float64   // [ndofs] solution. dof = node・ncomp + comp
	BcDofs   []int       // constrained dofs
	BcVals   []float64   // values @ constrained dofs
	Residual float64     // max(|b - A・x|)
}

// Filename returns the path of the results file
func Filename(dirout, fnkey string) string {
	return filepath.Join(dirout, fnkey+".res")
}

// Save saves results
//  enctype -- "gob" or "json"
func (o *Results) Save(dirout, enctype string) (err error) {
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("cannot create directory for results:\n%v", err)
	}
	var buf bytes.Buffer
	enc := utl.NewEncoder(&buf, enctype)
	err = enc.Encode(o)
	if err != nil {
		return chk.Err("cannot encode results:\n%v", err)
	}
	fn := Filename(dirout, o.Key)
	err = os.WriteFile(fn, buf.Bytes(), 0644)
	if err != nil {
		return chk.Err("cannot save results file %q:\n%v", fn, err)
	}
	if io.Verbose {
		io.Pfblue2("file <%s> written\n", fn)
	}
	return
}

// ReadResults reads results saved by Save
func ReadResults(dirout, fnkey, enctype string) (o *Results, err error) {
	fn := Filename(dirout, fnkey)
	f, err := os.Open(fn)
	if err != nil {
		return nil, chk.Err("cannot open results file %q:\n%v", fn, err)
	}
	defer f.Close()
	o = new(Results)
	dec := utl.NewDecoder(f, enctype)
	err = dec.Decode(o)
	if err != nil {
		return nil, chk.Err("cannot decode results file %q:\n%v", fn, err)
	}
	return
}

// Value returns the value of component comp @ node
func (o *Results) Value(node, comp int) float64 {
	return o.U[node*o.Ncomp+comp]
}

// Table returns a table with the values at nodes
func (o *Results) Table() (l string) {
	l = io.Sf("%6s", "node")
	for i := range o.firstCoords() {
		l += io.Sf("%14s", io.Sf("x%d", i))
	}
	for c := 0; c < o.Ncomp; c++ {
		l += io.Sf("%23s", io.Sf("u%d", c))
	}
	l += "\n"
	for n, x := range o.Coords {
		l += io.Sf("%6d", n)
		for _, v := range x {
			l += io.Sf("%14.6f", v)
		}
		for c := 0; c < o.Ncomp; c++ {
			l += io.Sf("%23.15e", o.Value(n, c))
		}
		l += "\n"
	}
	return
}

func (o *Results) firstCoords() []float64 {
	if len(o.Coords) == 0 {
		return nil
	}
	return o.Coords[0]
}
