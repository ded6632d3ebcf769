// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bc

import "errors"

// Errors returned by this package are wrapped with context; match them with errors.Is
var (
	// ErrInvalidSpace is returned when the function space is missing or when markers
	// are defined over a mesh other than the mesh of the function space
	ErrInvalidSpace = errors.New("bc: invalid function space")

	// ErrDimensionMismatch is returned when the size of a matrix or vector does not
	// match the number of dofs, or when the number of values does not match the
	// number of components of the space
	ErrDimensionMismatch = errors.New("bc: dimension mismatch")

	// ErrUnsupportedConstraintType is returned when a predicate or marker collection
	// cannot be used with the topological dimension of the mesh or with the method
	ErrUnsupportedConstraintType = errors.New("bc: unsupported constraint type")
)
