// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/dirichlet/bc"
	"github.com/cpmech/dirichlet/inp"
	"github.com/cpmech/dirichlet/la"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Domain holds the discrete problem A・x = b over one mesh
type Domain struct {

	// init: auxiliary variables
	Sim     *inp.Simulation // [from Main] input data
	ShowMsg bool            // show messages

	// init: function space and conditions
	Msh   *inp.Mesh      // mesh
	Space *FunctionSpace // function space; trial == test
	Bcs   *bc.Registry   // Dirichlet boundary conditions

	// system
	A      *la.CSR   // global matrix
	B      []float64 // right-hand side
	X      []float64 // solution
	LinSol la.LinSol // linear solver
}

// NewDomain allocates the function space and conditions of a simulation
func NewDomain(sim *inp.Simulation, verbose bool) (o *Domain, err error) {
	o = &Domain{Sim: sim, ShowMsg: verbose, Msh: sim.Msh}
	o.Space, err = NewFunctionSpace(sim.Msh, sim.Space.Family, sim.Space.Degree, sim.Space.Ncomp)
	if err != nil {
		return nil, err
	}
	o.Bcs, err = NewEssentialBcs(sim, o.Space)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Function space: %s%d with %d components and %d dofs\n", sim.Space.Family, sim.Space.Degree, o.Space.Ncomp(), o.Space.Ndofs())
		io.Pf("> Number of boundary conditions = %d\n", o.Bcs.Len())
	}
	return
}

// Assemble assembles A and b
func (o *Domain) Assemble() (err error) {
	o.A, err = AssembleMatrix(o.Sim.Problem.Form, o.Space, o.Space, 0)
	if err != nil {
		return
	}
	o.B = make([]float64, o.Space.Ndofs())
	if o.Sim.Problem.Source != "" {
		f, err := o.Sim.Functions.Get(o.Sim.Problem.Source)
		if err != nil {
			return err
		}
		o.B, err = AssembleVector("source", o.Space, f, o.Sim.Problem.Time, 0)
		if err != nil {
			return err
		}
	}
	if o.ShowMsg {
		io.Pf("> Assembled %q: %d×%d matrix with %d non-zeros\n", o.Sim.Problem.Form, o.A.M, o.A.N, o.A.Nnz())
	}
	return
}

// ApplyBcs enforces the conditions according to the strategy selected in the .sim file
func (o *Domain) ApplyBcs() (err error) {
	if o.A == nil {
		return chk.Err("system must be assembled before applying boundary conditions")
	}
	strategy, err := GetStrategy(o.Sim.Problem.Strategy)
	if err != nil {
		return
	}
	return strategy(o)
}

// Solve solves A・x = b
func (o *Domain) Solve() (err error) {
	o.LinSol, err = la.GetSolver(o.Sim.LinSol.Name)
	if err != nil {
		return
	}
	err = o.LinSol.Init(o.A)
	if err != nil {
		return
	}
	o.X = make([]float64, o.Space.Ndofs())
	err = o.LinSol.Solve(o.X, o.B)
	if err != nil {
		return
	}
	if o.ShowMsg {
		io.Pf("> Linear system solved with %q. max(|x|) = %g\n", o.Sim.LinSol.Name, la.VecNormInf(o.X))
	}
	return
}

// Residual returns max(|b - A・x|)
func (o *Domain) Residual() float64 {
	r := make([]float64, len(o.B))
	la.Residual(r, o.A, o.X, o.B)
	return la.VecNormInf(r)
}
