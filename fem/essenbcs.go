// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/dirichlet/bc"
	"github.com/cpmech/dirichlet/inp"
	"github.com/cpmech/gosl/chk"
)

// NewEssentialBcs builds the Dirichlet conditions defined in the "bcs" section of the .sim file
//  Conditions are added in the order of the input file; later ones win on shared dofs
func NewEssentialBcs(sim *inp.Simulation, V *FunctionSpace) (reg *bc.Registry, err error) {
	reg = bc.NewRegistry()
	for _, dat := range sim.Bcs {
		b, err := newEssentialBc(sim, V, dat)
		if err != nil {
			return nil, chk.Err("cannot set boundary condition %q:\n%v", dat.Name, err)
		}
		reg.Add(b)
	}
	reg.SetTime(sim.Problem.Time)
	return
}

// newEssentialBc builds one condition
func newEssentialBc(sim *inp.Simulation, V *FunctionSpace, dat *inp.BcData) (b *bc.Dirichlet, err error) {

	// predicate
	var p bc.Predicate
	if dat.Where != "" {
		p, err = bc.PredicateFromKeycode(dat.Where)
		if err != nil {
			return
		}
	} else {
		p = bc.Subdomain(dat.Tag)
	}

	// method
	method, err := bc.ParseMethod(dat.Method)
	if err != nil {
		return
	}

	// values
	fcns, err := sim.Functions.GetMany(dat.Funcs)
	if err != nil {
		return
	}

	// space
	W := V
	if dat.Sub > 0 {
		W, err = V.Sub(dat.Sub - 1)
		if err != nil {
			return
		}
	}

	// condition
	b, err = bc.NewDirichlet(W, fcns, p, method)
	if err != nil {
		return
	}
	b.Name = dat.Name
	return
}
