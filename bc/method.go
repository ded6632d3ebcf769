// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bc

import (
	"fmt"
	"strings"
)

// Method defines how constrained dofs are searched for
type Method int

const (
	// Topological selects the closure dofs of facets entirely inside the marked region
	Topological Method = iota

	// Geometric tests the coordinates of the closure dofs of each facet
	Geometric

	// Pointwise tests the coordinates of every dof, including dofs inside cells
	Pointwise
)

// methodNames maps methods to names
var methodNames = map[Method]string{
	Topological: "topological",
	Geometric:   "geometric",
	Pointwise:   "pointwise",
}

// String returns the name of the method
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod returns the method corresponding to name (case insensitive).
// An empty name yields Topological
func ParseMethod(name string) (Method, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return Topological, nil
	}
	for m, n := range methodNames {
		if n == s {
			return m, nil
		}
	}
	return Topological, fmt.Errorf("%w: method %q is unknown", ErrUnsupportedConstraintType, name)
}
