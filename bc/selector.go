// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bc

import (
	"fmt"
	"sort"

	"github.com/cpmech/dirichlet/inp"
)

// SelectDofs returns the sorted dofs of V constrained by predicate p according to method.
// An empty selection is not an error
func SelectDofs(V Space, p Predicate, method Method) (dofs []int, err error) {

	// check
	if V == nil || V.Mesh() == nil {
		return nil, fmt.Errorf("%w: space or mesh is nil", ErrInvalidSpace)
	}
	msh := V.Mesh()
	err = checkPredicate(msh, p, method)
	if err != nil {
		return
	}

	// select
	set := make(map[int]bool)
	switch method {
	case Topological:
		selectTopological(V, msh, p, set)
	case Geometric:
		selectGeometric(V, msh, p, set)
	case Pointwise:
		selectPointwise(V, msh, p, set)
	}

	// results
	dofs = make([]int, 0, len(set))
	for d := range set {
		dofs = append(dofs, d)
	}
	sort.Ints(dofs)
	return
}

// checkPredicate checks whether p can be used with msh and method
func checkPredicate(msh *inp.Mesh, p Predicate, method Method) error {
	if _, ok := methodNames[method]; !ok {
		return fmt.Errorf("%w: %v", ErrUnsupportedConstraintType, method)
	}
	switch p.Kind {
	case KindGeometric:
		if p.Inside == nil {
			return fmt.Errorf("%w: geometric predicate without function", ErrUnsupportedConstraintType)
		}
	case KindMarkerBased:
		mf := p.Markers
		if mf == nil {
			return fmt.Errorf("%w: marker-based predicate without markers", ErrUnsupportedConstraintType)
		}
		if mf.Msh != msh {
			return fmt.Errorf("%w: markers are defined over another mesh", ErrInvalidSpace)
		}
		if method == Pointwise {
			if mf.Dim >= msh.Tdim {
				return fmt.Errorf("%w: pointwise markers must have dimension smaller than %d. dim=%d is invalid", ErrUnsupportedConstraintType, msh.Tdim, mf.Dim)
			}
			return nil
		}
		if mf.Dim != msh.FacetDim() {
			return fmt.Errorf("%w: %v markers must be defined over facets (dim=%d). dim=%d is invalid", ErrUnsupportedConstraintType, method, msh.FacetDim(), mf.Dim)
		}
	case KindSubdomainId:
	default:
		return fmt.Errorf("%w: predicate kind %d is unknown", ErrUnsupportedConstraintType, p.Kind)
	}
	return nil
}

// marked tells whether facet f is marked by a marker-based or subdomain predicate
func marked(msh *inp.Mesh, p Predicate, f int) bool {
	if p.Kind == KindMarkerBased {
		return p.Markers.Values[f] == p.Id
	}
	return msh.FacetTags[f] == p.Id
}

// selectTopological adds the closure dofs of every facet inside the region
func selectTopological(V Space, msh *inp.Mesh, p Predicate, set map[int]bool) {
	fdim := msh.FacetDim()
	for f := 0; f < msh.NumFacets(); f++ {
		if p.Kind == KindGeometric {
			if !facetInside(msh, p.Inside, f) {
				continue
			}
		} else if !marked(msh, p, f) {
			continue
		}
		for _, d := range V.EntityDofs(fdim, f) {
			set[d] = true
		}
	}
}

// facetInside tells whether the midpoint and all vertices of facet f satisfy inside
func facetInside(msh *inp.Mesh, inside InsideFunc, f int) bool {
	bry := msh.IsExterior(f)
	fdim := msh.FacetDim()
	if !inside(msh.Midpoint(fdim, f), bry) {
		return false
	}
	for _, v := range msh.FacetVerts[f] {
		if !inside(msh.Verts[v].C, bry) {
			return false
		}
	}
	return true
}

// selectGeometric tests the coordinates of the closure dofs of each (marked) facet
func selectGeometric(V Space, msh *inp.Mesh, p Predicate, set map[int]bool) {
	fdim := msh.FacetDim()
	for f := 0; f < msh.NumFacets(); f++ {
		if p.Kind != KindGeometric {
			if marked(msh, p, f) {
				for _, d := range V.EntityDofs(fdim, f) {
					set[d] = true
				}
			}
			continue
		}
		bry := msh.IsExterior(f)
		for _, d := range V.EntityDofs(fdim, f) {
			if !set[d] && p.Inside(V.DofCoords(d), bry) {
				set[d] = true
			}
		}
	}
}

// selectPointwise tests the coordinates of every dof of V
func selectPointwise(V Space, msh *inp.Mesh, p Predicate, set map[int]bool) {

	// markers: closure dofs of marked entities of any dimension
	if p.Kind == KindMarkerBased {
		mf := p.Markers
		for _, e := range mf.Entities(p.Id) {
			for _, d := range V.EntityDofs(mf.Dim, e) {
				set[d] = true
			}
		}
		return
	}

	// subdomain: closure dofs of tagged facets
	fdim := msh.FacetDim()
	if p.Kind == KindSubdomainId {
		for f := 0; f < msh.NumFacets(); f++ {
			if marked(msh, p, f) {
				for _, d := range V.EntityDofs(fdim, f) {
					set[d] = true
				}
			}
		}
		return
	}

	// dofs on the exterior boundary
	bry := make(map[int]bool)
	for f := 0; f < msh.NumFacets(); f++ {
		if msh.IsExterior(f) {
			for _, d := range V.EntityDofs(fdim, f) {
				bry[d] = true
			}
		}
	}

	// test all dofs
	for _, d := range V.Dofs() {
		if p.Inside(V.DofCoords(d), bry[d]) {
			set[d] = true
		}
	}
}
