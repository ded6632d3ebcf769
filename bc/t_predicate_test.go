// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bc

import (
	"errors"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func Test_method01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("method01. parse methods")

	for name, m := range map[string]Method{
		"":            Topological,
		"topological": Topological,
		"Geometric":   Geometric,
		" POINTWISE ": Pointwise,
	} {
		res, err := ParseMethod(name)
		require.NoError(tst, err)
		require.Equal(tst, m, res)
	}
	chk.String(tst, Geometric.String(), "geometric")
	chk.String(tst, Method(7).String(), "Method(7)")

	_, err := ParseMethod("everywhere")
	require.True(tst, errors.Is(err, ErrUnsupportedConstraintType))
}

func Test_predicate01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("predicate01. geometric predicates")

	x := []float64{0, 0.5}
	require.True(tst, Everywhere().Inside(x, false))
	require.False(tst, OnBoundary().Inside(x, false))
	require.True(tst, OnBoundary().Inside(x, true))
	require.True(tst, Near(0, 0).Inside(x, false))
	require.True(tst, Near(1, 0.5+NearTol/2).Inside(x, false))
	require.False(tst, Near(1, 0.5+2*NearTol).Inside(x, false))
	require.False(tst, Near(2, 0).Inside(x, false))

	p := Near(0, 0).And(OnBoundary())
	require.False(tst, p.Inside(x, false))
	require.True(tst, p.Inside(x, true))
	q := Near(0, 1).Or(Near(1, 0.5))
	require.True(tst, q.Inside(x, false))
	chk.String(tst, q.String(), "near(x[0],1) or near(x[1],0.5)")

	s := Subdomain(3)
	require.Equal(tst, KindSubdomainId, s.Kind)
	chk.IntAssert(s.Id, 3)
	m := Markers(nil, 2)
	require.Equal(tst, KindMarkerBased, m.Kind)
}

func Test_predicate02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("predicate02. predicates from keycodes")

	p, err := PredicateFromKeycode(" on_boundary ")
	require.NoError(tst, err)
	chk.String(tst, p.String(), "on_boundary")

	p, err = PredicateFromKeycode("everywhere")
	require.NoError(tst, err)
	require.True(tst, p.Inside([]float64{7}, false))

	p, err = PredicateFromKeycode("!near:0 !at:1")
	require.NoError(tst, err)
	require.True(tst, p.Inside([]float64{1, 0.3}, false))
	require.False(tst, p.Inside([]float64{0, 0.3}, false))

	p, err = PredicateFromKeycode("!near:0 !at:0 !or:1")
	require.NoError(tst, err)
	require.True(tst, p.Inside([]float64{0, 0.3}, false))
	require.True(tst, p.Inside([]float64{1, 0.3}, false))
	require.False(tst, p.Inside([]float64{0.5, 0.3}, false))

	p, err = PredicateFromKeycode("!near:1 !at:0 !bry")
	require.NoError(tst, err)
	require.False(tst, p.Inside([]float64{0.5, 0}, false))
	require.True(tst, p.Inside([]float64{0.5, 0}, true))

	_, err = PredicateFromKeycode("left")
	require.True(tst, errors.Is(err, ErrUnsupportedConstraintType))
	_, err = PredicateFromKeycode("!near:0")
	require.True(tst, errors.Is(err, ErrUnsupportedConstraintType))
}

func Test_predicate03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("predicate03. malformed keycodes return errors")

	for _, where := range []string{
		"",
		"left",
		"near:0 !at:1",
		"!near",
		"!near:a !at:1",
		"!near:-1 !at:1",
		"!near:0 !at:",
		"!near:0 !at:x",
		"!near:0 !at:1 !or:y",
		"!at:1",
	} {
		_, err := PredicateFromKeycode(where)
		require.Truef(tst, errors.Is(err, ErrUnsupportedConstraintType), "where=%q err=%v", where, err)
	}

	rapid.Check(tst, func(t *rapid.T) {
		token := rapid.SampledFrom([]string{"!", "near", "at", "or", "bry", ":", " ", "0", "1", "-", "e", ".", "x"})
		where := strings.Join(rapid.SliceOfN(token, 0, 12).Draw(t, "tokens"), "")
		p, err := PredicateFromKeycode(where)
		if err != nil {
			require.True(t, errors.Is(err, ErrUnsupportedConstraintType))
			return
		}
		require.NotNil(t, p.Inside)
	})
}
