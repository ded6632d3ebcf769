// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name"` // name of function. ex: zero, load, myfunction1, etc.
	Type string     `json:"type"` // type of function. ex: cte, rmp
	Prms dbf.Params `json:"prms"` // parameters
}

// Funcs holds functions
type FuncsData []*FuncData

// Get returns function by name
//  Note: "zero" and "none" are always available and return f(t,x) = 0
func (o FuncsData) Get(name string) (fcn dbf.T, err error) {
	if name == "zero" || name == "none" {
		fcn = &dbf.Cte{C: 0}
		return
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = newFunc(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q\n", name)
	return
}

// GetMany returns functions by names
func (o FuncsData) GetMany(names []string) (fcns []dbf.T, err error) {
	fcns = make([]dbf.T, len(names))
	for i, name := range names {
		fcns[i], err = o.Get(name)
		if err != nil {
			return
		}
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////////

// newFunc allocates a function from the database. dbf panics on unknown types or
// missing parameters; the panic is returned as an error
func newFunc(fcnType string, prms dbf.Params) (fcn dbf.T, err error) {
	defer func() {
		if r := recover(); r != nil {
			fcn, err = nil, chk.Err("%v", r)
		}
	}()
	fcn = dbf.New(fcnType, prms)
	return
}

// String prints one function
func (o FuncData) String() string {
	return io.Sf("    {\"name\":%q, \"type\":%q, \"nprms\":%d}", o.Name, o.Type, len(o.Prms))
}

// String prints functions
func (o FuncsData) String() string {
	if len(o) == 0 {
		return "  \"functions\" : []"
	}
	l := "  \"functions\" : [\n"
	for i, f := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", f)
	}
	l += "\n  ]"
	return l
}
