// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package interp implements shape-function sets parameterized by polynomial
// degree, reference geometry and interpolation family
package interp

import (
	"github.com/cpmech/gosl/chk"
)

// Family identifies an interpolation family
type Family int

const (
	Lagrange Family = iota
)

// Geometry identifies a reference geometry
type Geometry int

const (
	Lin Geometry = iota
	Tri
	Qua
)

// Degree identifies the polynomial degree of the basis
type Degree int

const (
	Linear    Degree = iota
	Quadratic        // "biquadratic" in 2D
)

// Interp evaluates shape functions and their first partial derivatives with
// respect to natural coordinates. Instances are stateless and safe to share.
type Interp struct {
	family Family
	geo    Geometry
	deg    Degree
	nverts int
}

// New returns a shape-function set for the given family/geometry/degree.
// Undefined combinations are unsupported configurations.
//  Lagrange Lin Linear     → 2 nodes: r=-1, r=+1
//  Lagrange Lin Quadratic  → 3 nodes: ends then middle
//  Lagrange Tri Linear     → 3 nodes: (1,0), (0,1), (0,0)
//  Lagrange Tri Quadratic  → 6 nodes: corners then mid-sides 12, 23, 31
//  Lagrange Qua Linear     → 4 nodes: counter-clockwise from (-1,-1)
//  Lagrange Qua Quadratic  → 9 nodes: corners, mid-sides, centre
func New(family Family, geo Geometry, deg Degree) (o *Interp, err error) {
	if family != Lagrange {
		return nil, chk.Err("unsupported configuration: interpolation family (%d) has no defined basis", family)
	}
	var nverts int
	switch {
	case geo == Lin && deg == Linear:
		nverts = 2
	case geo == Lin && deg == Quadratic:
		nverts = 3
	case geo == Tri && deg == Linear:
		nverts = 3
	case geo == Tri && deg == Quadratic:
		nverts = 6
	case geo == Qua && deg == Linear:
		nverts = 4
	case geo == Qua && deg == Quadratic:
		nverts = 9
	default:
		return nil, chk.Err("unsupported configuration: no basis for geometry (%d) with degree (%d)", geo, deg)
	}
	return &Interp{family, geo, deg, nverts}, nil
}

// Nverts returns the number of local nodes of this basis
func (o *Interp) Nverts() int { return o.nverts }

// F returns the shape-function value of local node m at (r,s)
func (o *Interp) F(r, s float64, m int) float64 {
	v, _, _ := o.eval(r, s, m)
	return v
}

// DF1 returns ∂N_m/∂r at (r,s)
func (o *Interp) DF1(r, s float64, m int) float64 {
	_, d1, _ := o.eval(r, s, m)
	return d1
}

// DF2 returns ∂N_m/∂s at (r,s)
func (o *Interp) DF2(r, s float64, m int) float64 {
	_, _, d2 := o.eval(r, s, m)
	return d2
}

func (o *Interp) eval(r, s float64, m int) (v, d1, d2 float64) {
	if m < 0 || m >= o.nverts {
		chk.Panic("node index %d is out of range of %d-node basis", m, o.nverts)
	}
	switch {
	case o.geo == Lin && o.deg == Linear:
		return lin2(r, m)
	case o.geo == Lin && o.deg == Quadratic:
		return lin3(r, m)
	case o.geo == Tri && o.deg == Linear:
		return tri3(r, s, m)
	case o.geo == Tri && o.deg == Quadratic:
		return tri6(r, s, m)
	case o.geo == Qua && o.deg == Linear:
		return qua4(r, s, m)
	}
	return qua9(r, s, m)
}

func lin2(r float64, m int) (v, d1, d2 float64) {
	switch m {
	case 0:
		return (1.0 - r) / 2.0, -0.5, 0
	}
	return (1.0 + r) / 2.0, 0.5, 0
}

func lin3(r float64, m int) (v, d1, d2 float64) {
	switch m {
	case 0:
		return r * (r - 1.0) / 2.0, r - 0.5, 0
	case 1:
		return r * (r + 1.0) / 2.0, r + 0.5, 0
	}
	return 1.0 - r*r, -2.0 * r, 0
}

func tri3(r, s float64, m int) (v, d1, d2 float64) {
	switch m {
	case 0:
		return r, 1, 0
	case 1:
		return s, 0, 1
	}
	return 1.0 - r - s, -1, -1
}

// tri6 uses the area coordinate z = 1-r-s; corners sit at (1,0), (0,1),
// (0,0) and mid-sides follow the corner pairs 12, 23, 31
func tri6(r, s float64, m int) (v, d1, d2 float64) {
	z := 1.0 - r - s
	switch m {
	case 0:
		return r * (2.0*r - 1.0), 4.0*r - 1.0, 0
	case 1:
		return s * (2.0*s - 1.0), 0, 4.0*s - 1.0
	case 2:
		return z * (2.0*z - 1.0), 1.0 - 4.0*z, 1.0 - 4.0*z
	case 3:
		return 4.0 * r * s, 4.0 * s, 4.0 * r
	case 4:
		return 4.0 * s * z, -4.0 * s, 4.0 * (z - s)
	}
	return 4.0 * z * r, 4.0 * (z - r), -4.0 * r
}

// natural coordinates of qua4/qua9 nodes
var quaR = []float64{-1, 1, 1, -1, 0, 1, 0, -1, 0}
var quaS = []float64{-1, -1, 1, 1, -1, 0, 1, 0, 0}

func qua4(r, s float64, m int) (v, d1, d2 float64) {
	rm, sm := quaR[m], quaS[m]
	v = (1.0 + r*rm) * (1.0 + s*sm) / 4.0
	d1 = rm * (1.0 + s*sm) / 4.0
	d2 = sm * (1.0 + r*rm) / 4.0
	return
}

func qua9(r, s float64, m int) (v, d1, d2 float64) {
	fr, dfr := lag3(r, quaR[m])
	fs, dfs := lag3(s, quaS[m])
	return fr * fs, dfr * fs, fr * dfs
}

// lag3 evaluates the 1D quadratic Lagrange polynomial attached to node
// position p ∈ {-1,0,+1} and its derivative
func lag3(x, p float64) (f, df float64) {
	switch p {
	case -1:
		return x * (x - 1.0) / 2.0, x - 0.5
	case 1:
		return x * (x + 1.0) / 2.0, x + 0.5
	}
	return 1.0 - x*x, -2.0 * x
}
