// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"sort"

	"github.com/cpmech/dirichlet/inp"
	"github.com/cpmech/dirichlet/shp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Basis holds the Lagrange basis of a (vector) function space on one cell
type Basis struct {
	Shp   *shp.Shape // shape with own scratchpad
	Ncomp int        // number of components
}

// Size returns the number of local dofs
func (o Basis) Size() int {
	return o.Shp.Nverts * o.Ncomp
}

// Data holds the input to element allocators
type Data struct {
	Cell  *inp.Cell   // the cell structure
	X     [][]float64 // [ndim][ncorners] coordinates of corners
	Test  Basis       // test space; rows of local matrices
	Trial Basis       // trial space; columns of local matrices. unused by linear forms
	Nip   int         // number of integration points; 0 => default
	Fcn   dbf.T       // f(t,x) function of linear forms
}

// NewBasis returns the basis of shape type with ncomp components
func NewBasis(shpType string, ncomp int) (b Basis, err error) {
	b.Shp, err = shp.New(shpType)
	if err != nil {
		return
	}
	b.Ncomp = ncomp
	return
}

// AllocatorType defines a function that allocates an element
type AllocatorType func(dat *Data) (Element, error)

// New returns a new element from factory
func New(kernel string, dat *Data) (e Element, err error) {
	fcn, ok := allocators[kernel]
	if !ok {
		return nil, chk.Err("cannot get allocator for element {kernel=%q, id=%d}", kernel, dat.Cell.Id)
	}
	e, err = fcn(dat)
	if err != nil {
		return nil, chk.Err("cannot allocate element {kernel=%q, id=%d}:\n%v", kernel, dat.Cell.Id, err)
	}
	return
}

// SetAllocator sets a new callback function to allocate an element
func SetAllocator(kernel string, fcn AllocatorType) {
	if _, ok := allocators[kernel]; ok {
		chk.Panic("cannot set allocator function for %q because element name exists already", kernel)
	}
	allocators[kernel] = fcn
}

// GetAllocator gets callback function to allocate an element
func GetAllocator(kernel string) AllocatorType {
	if fcn, ok := allocators[kernel]; ok {
		return fcn
	}
	chk.Panic("cannot get allocator function for element %q", kernel)
	return nil
}

// Kernels returns the names of all registered kernels
func Kernels() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all element allocators
var allocators = make(map[string]AllocatorType)
