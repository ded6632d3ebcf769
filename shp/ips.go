// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Ipoint holds data for one integration point
type Ipoint struct {
	R, S, W float64 // natural coordinates and weight
}

// Nat returns the natural coordinates of the integration point as a slice of length gndim
func (o Ipoint) Nat(gndim int) []float64 {
	if gndim == 1 {
		return []float64{o.R}
	}
	return []float64{o.R, o.S}
}

// integration points (Gauss-Legendre on [-1,1] and Strang-Fix/Dunavant on the reference triangle)
var (
	ipsLin2 = []Ipoint{
		{R: -math.Sqrt(3.0) / 3.0, W: 1},
		{R: +math.Sqrt(3.0) / 3.0, W: 1},
	}
	ipsLin3 = []Ipoint{
		{R: -math.Sqrt(3.0 / 5.0), W: 5.0 / 9.0},
		{R: 0, W: 8.0 / 9.0},
		{R: +math.Sqrt(3.0 / 5.0), W: 5.0 / 9.0},
	}
	ipsTri1 = []Ipoint{
		{R: 1.0 / 3.0, S: 1.0 / 3.0, W: 0.5},
	}
	ipsTri3 = []Ipoint{
		{R: 1.0 / 6.0, S: 1.0 / 6.0, W: 1.0 / 6.0},
		{R: 2.0 / 3.0, S: 1.0 / 6.0, W: 1.0 / 6.0},
		{R: 1.0 / 6.0, S: 2.0 / 3.0, W: 1.0 / 6.0},
	}
	ipsTri6 = []Ipoint{
		{R: 0.445948490915965, S: 0.445948490915965, W: 0.5 * 0.223381589678011},
		{R: 0.108103018168070, S: 0.445948490915965, W: 0.5 * 0.223381589678011},
		{R: 0.445948490915965, S: 0.108103018168070, W: 0.5 * 0.223381589678011},
		{R: 0.091576213509771, S: 0.091576213509771, W: 0.5 * 0.109951743655322},
		{R: 0.816847572980459, S: 0.091576213509771, W: 0.5 * 0.109951743655322},
		{R: 0.091576213509771, S: 0.816847572980459, W: 0.5 * 0.109951743655322},
	}
)

// GetIps returns the integration points for a shape
//  nip -- number of integration points; 0 => default (exact for mass matrices of the shape)
func (o *Shape) GetIps(nip int) (ips []Ipoint, err error) {
	switch o.Gndim {
	case 1:
		if nip == 0 {
			nip = o.Degree + 1
		}
		switch nip {
		case 2:
			return ipsLin2, nil
		case 3:
			return ipsLin3, nil
		}
	case 2:
		if nip == 0 {
			nip = 3
			if o.Degree > 1 {
				nip = 6
			}
		}
		switch nip {
		case 1:
			return ipsTri1, nil
		case 3:
			return ipsTri3, nil
		case 6:
			return ipsTri6, nil
		}
	}
	return nil, chk.Err("cannot find integration points for shape %q with nip=%d", o.Type, nip)
}
