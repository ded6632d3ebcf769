// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cpmech/dirichlet/inp"
	"github.com/cpmech/gosl/io"
)

// NearTol is the tolerance used by Near
const NearTol = 1e-10

// InsideFunc tells whether point x belongs to the constrained region.
// onBoundary tells whether x sits on the exterior boundary of the mesh
type InsideFunc func(x []float64, onBoundary bool) bool

// PredicateKind defines the variants of Predicate
type PredicateKind int

const (
	KindGeometric   PredicateKind = iota // closure over coordinates
	KindMarkerBased                      // marker value in a mesh function
	KindSubdomainId                      // facet tag stored in the mesh
)

// Predicate identifies the constrained region. It is a tagged union:
//  KindGeometric   -- Inside is set
//  KindMarkerBased -- Markers and Id are set
//  KindSubdomainId -- Id is set and matched against the facet tags of the mesh
type Predicate struct {
	Kind    PredicateKind     // variant
	Inside  InsideFunc        // geometric predicate
	Markers *inp.MeshFunction // marked entities
	Id      int               // marker value or subdomain id
	Desc    string            // description used in listings
}

// Inside returns a geometric predicate
func Inside(fcn InsideFunc) Predicate {
	return Predicate{Kind: KindGeometric, Inside: fcn, Desc: "user"}
}

// OnBoundary returns a predicate selecting the exterior boundary
func OnBoundary() Predicate {
	return Predicate{
		Kind:   KindGeometric,
		Inside: func(x []float64, onBoundary bool) bool { return onBoundary },
		Desc:   "on_boundary",
	}
}

// Everywhere returns a predicate that always holds
func Everywhere() Predicate {
	return Predicate{
		Kind:   KindGeometric,
		Inside: func(x []float64, onBoundary bool) bool { return true },
		Desc:   "everywhere",
	}
}

// Near returns a predicate selecting points with |x[dim] - value| < NearTol
func Near(dim int, value float64) Predicate {
	return Predicate{
		Kind: KindGeometric,
		Inside: func(x []float64, onBoundary bool) bool {
			return dim < len(x) && math.Abs(x[dim]-value) < NearTol
		},
		Desc: io.Sf("near(x[%d],%g)", dim, value),
	}
}

// Markers returns a predicate selecting entities marked with id
func Markers(mf *inp.MeshFunction, id int) Predicate {
	return Predicate{Kind: KindMarkerBased, Markers: mf, Id: id, Desc: io.Sf("markers(%d)", id)}
}

// Subdomain returns a predicate selecting boundary facets tagged with id in the mesh
func Subdomain(id int) Predicate {
	return Predicate{Kind: KindSubdomainId, Id: id, Desc: io.Sf("subdomain(%d)", id)}
}

// And returns a geometric predicate holding when both p and q hold
func (p Predicate) And(q Predicate) Predicate {
	return Predicate{
		Kind: KindGeometric,
		Inside: func(x []float64, onBoundary bool) bool {
			return p.Inside(x, onBoundary) && q.Inside(x, onBoundary)
		},
		Desc: p.Desc + " and " + q.Desc,
	}
}

// Or returns a geometric predicate holding when p or q hold
func (p Predicate) Or(q Predicate) Predicate {
	return Predicate{
		Kind: KindGeometric,
		Inside: func(x []float64, onBoundary bool) bool {
			return p.Inside(x, onBoundary) || q.Inside(x, onBoundary)
		},
		Desc: p.Desc + " or " + q.Desc,
	}
}

// String returns the description of the predicate
func (p Predicate) String() string {
	return p.Desc
}

// PredicateFromKeycode parses a predicate given as text. Examples:
//  "on_boundary"          -- exterior boundary
//  "everywhere"           -- all points
//  "!near:0 !at:1"        -- x[0] == 1
//  "!near:1 !at:0 !bry"   -- x[1] == 0 and on boundary
//  "!near:0 !at:0 !or:1"  -- x[0] == 0 or x[0] == 1
func PredicateFromKeycode(where string) (p Predicate, err error) {
	w := strings.TrimSpace(where)
	switch w {
	case "on_boundary":
		return OnBoundary(), nil
	case "everywhere":
		return Everywhere(), nil
	}
	if !strings.HasPrefix(w, "!") {
		return p, fmt.Errorf("%w: cannot parse predicate %q", ErrUnsupportedConstraintType, where)
	}
	sdim, found := io.Keycode(w, "near")
	if !found {
		return p, fmt.Errorf("%w: predicate %q needs \"!near:dim\"", ErrUnsupportedConstraintType, where)
	}
	sval, found := io.Keycode(w, "at")
	if !found {
		return p, fmt.Errorf("%w: predicate %q needs \"!at:value\"", ErrUnsupportedConstraintType, where)
	}
	dim, err := strconv.Atoi(sdim)
	if err != nil || dim < 0 {
		return p, fmt.Errorf("%w: invalid dimension %q in predicate %q", ErrUnsupportedConstraintType, sdim, where)
	}
	val, err := parseKeycodeFloat(sval, where)
	if err != nil {
		return
	}
	p = Near(dim, val)
	if sor, found := io.Keycode(w, "or"); found {
		alt, err := parseKeycodeFloat(sor, where)
		if err != nil {
			return Predicate{}, err
		}
		p = p.Or(Near(dim, alt))
	}
	if _, found := io.Keycode(w, "bry"); found {
		p = p.And(OnBoundary())
	}
	return
}

// parseKeycodeFloat parses a coordinate given in a keycode
func parseKeycodeFloat(s, where string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid coordinate %q in predicate %q", ErrUnsupportedConstraintType, s, where)
	}
	return v, nil
}
