// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the finite element driver: spaces, assembly and solution of A・x = b
package fem

import (
	"time"

	"github.com/cpmech/dirichlet/inp"
	"github.com/cpmech/dirichlet/out"
	"github.com/cpmech/gosl/io"
)

// Main holds all data for a simulation using the finite element method
type Main struct {
	Sim     *inp.Simulation // simulation data
	Domain  *Domain         // the domain
	Results *out.Results    // results; set by Run
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   alias       -- word to be appended to simulation key; e.g. when running multiple FE solutions
//   verbose     -- show messages
func NewMain(simfilepath, alias string, verbose bool) (o *Main, err error) {

	// new Main object
	o = &Main{ShowMsg: verbose}

	// read input data
	o.Sim, err = inp.ReadSim(simfilepath, alias)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Simulation (.sim) file read\n")
	}

	// allocate domain
	o.Domain, err = NewDomain(o.Sim, verbose)
	if err != nil {
		return nil, err
	}
	return
}

// Run assembles and solves the problem and saves the results
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// list conditions
	d := o.Domain
	if o.Sim.Data.ListBcs {
		io.Pf("%v", d.Bcs.List(o.Sim.Problem.Time))
	}

	// system
	if o.ShowMsg {
		io.Pf("> Assembling system\n")
	}
	err = d.Assemble()
	if err != nil {
		return
	}
	if o.ShowMsg {
		io.Pf("> Applying boundary conditions with strategy %q\n", o.Sim.Problem.Strategy)
	}
	err = d.ApplyBcs()
	if err != nil {
		return
	}
	err = d.Solve()
	if err != nil {
		return
	}

	// results
	o.Results, err = o.collect()
	if err != nil {
		return
	}
	if o.Sim.Data.NoWrite {
		return
	}
	return o.Results.Save(o.Sim.DirOut, o.Sim.EncType)
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// collect gathers the results
func (o *Main) collect() (res *out.Results, err error) {
	d := o.Domain
	V := d.Space
	res = &out.Results{
		Key:      o.Sim.Key,
		Family:   V.Family,
		Degree:   V.Degree,
		Ncomp:    V.Ncomp(),
		U:        d.X,
		Residual: d.Residual(),
	}
	for n := 0; n < V.Nnodes(); n++ {
		res.Coords = append(res.Coords, V.DofCoords(n*V.Ncomp()))
	}
	cs, err := d.Bcs.BoundaryValues()
	if err != nil {
		return
	}
	res.BcDofs, err = d.Bcs.Dofs()
	if err != nil {
		return
	}
	res.BcVals = make([]float64, len(res.BcDofs))
	for i, dof := range res.BcDofs {
		res.BcVals[i] = cs[dof]
	}
	return
}

// onexit prints final message with cpu time
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
	return prevErr
}
