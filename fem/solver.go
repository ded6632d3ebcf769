// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Strategy enforces the Dirichlet conditions of a domain on its assembled system
type Strategy func(d *Domain) (err error)

// strategies holds all available strategies
var strategies = map[string]Strategy{

	// constrained rows become identity rows; the matrix becomes non-symmetric
	"apply": func(d *Domain) error {
		return d.Bcs.Apply(d.A, d.B)
	},

	// constrained rows and columns are zeroed; the matrix keeps its symmetry
	"zerocols": func(d *Domain) error {
		return d.Bcs.ZeroColumns(d.A, d.B, d.Sim.Problem.Diag)
	},
}

// GetStrategy returns a strategy by name
func GetStrategy(name string) (Strategy, error) {
	if s, ok := strategies[name]; ok {
		return s, nil
	}
	return nil, chk.Err("cannot find strategy named %q. options are %v", name, Strategies())
}

// Strategies returns the names of all strategies
func Strategies() (names []string) {
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
