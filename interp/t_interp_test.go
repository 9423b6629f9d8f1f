// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// natural coordinates of the local nodes, per basis
var nodeR = map[string][]float64{
	"lin2": {-1, 1},
	"lin3": {-1, 1, 0},
	"tri3": {1, 0, 0},
	"tri6": {1, 0, 0, 0.5, 0, 0.5},
	"qua4": {-1, 1, 1, -1},
	"qua9": {-1, 1, 1, -1, 0, 1, 0, -1, 0},
}

var nodeS = map[string][]float64{
	"lin2": {0, 0},
	"lin3": {0, 0, 0},
	"tri3": {0, 1, 0},
	"tri6": {0, 1, 0, 0.5, 0.5, 0},
	"qua4": {-1, -1, 1, 1},
	"qua9": {-1, -1, 1, 1, -1, 0, 1, 0, 0},
}

func allBases(tst *testing.T) map[string]*Interp {
	res := make(map[string]*Interp)
	for name, cfg := range map[string]struct {
		geo Geometry
		deg Degree
	}{
		"lin2": {Lin, Linear},
		"lin3": {Lin, Quadratic},
		"tri3": {Tri, Linear},
		"tri6": {Tri, Quadratic},
		"qua4": {Qua, Linear},
		"qua9": {Qua, Quadratic},
	} {
		o, err := New(Lagrange, cfg.geo, cfg.deg)
		if err != nil {
			tst.Errorf("cannot create %q basis: %v", name, err)
			return nil
		}
		res[name] = o
	}
	return res
}

func Test_interp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interp01. partition of unity")

	// sample points inside each reference domain
	samples := map[string][][]float64{
		"lin": {{-0.7, 0}, {0.1, 0}, {0.9, 0}},
		"tri": {{0.25, 0.3}, {0.1, 0.1}, {1.0 / 3.0, 1.0 / 3.0}},
		"qua": {{-0.7, 0.2}, {0.4, -0.9}, {0, 0}},
	}

	for name, o := range allBases(tst) {
		dom := name[:3]
		for _, pt := range samples[dom] {
			r, s := pt[0], pt[1]
			sf, sd1, sd2 := 0.0, 0.0, 0.0
			for m := 0; m < o.Nverts(); m++ {
				sf += o.F(r, s, m)
				sd1 += o.DF1(r, s, m)
				sd2 += o.DF2(r, s, m)
			}
			chk.Scalar(tst, io.Sf("%s ΣN(%g,%g)", name, r, s), 1e-14, sf, 1)
			chk.Scalar(tst, io.Sf("%s ΣN,1(%g,%g)", name, r, s), 1e-14, sd1, 0)
			chk.Scalar(tst, io.Sf("%s ΣN,2(%g,%g)", name, r, s), 1e-14, sd2, 0)
		}
	}
}

func Test_interp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interp02. Kronecker delta at nodes")

	for name, o := range allBases(tst) {
		for m := 0; m < o.Nverts(); m++ {
			for n := 0; n < o.Nverts(); n++ {
				want := 0.0
				if m == n {
					want = 1.0
				}
				v := o.F(nodeR[name][n], nodeS[name][n], m)
				chk.Scalar(tst, io.Sf("%s N%d(node %d)", name, m, n), 1e-15, v, want)
			}
		}
	}
}

func Test_interp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interp03. derivatives vs central differences")

	h := 1e-5
	r, s := 0.25, 0.3
	for name, o := range allBases(tst) {
		for m := 0; m < o.Nverts(); m++ {
			num1 := (o.F(r+h, s, m) - o.F(r-h, s, m)) / (2.0 * h)
			num2 := (o.F(r, s+h, m) - o.F(r, s-h, m)) / (2.0 * h)
			chk.AnaNum(tst, io.Sf("%s dN%d/dr", name, m), 1e-9, o.DF1(r, s, m), num1, false)
			chk.AnaNum(tst, io.Sf("%s dN%d/ds", name, m), 1e-9, o.DF2(r, s, m), num2, false)
		}
	}
}

func Test_interp04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("interp04. unsupported configurations")

	if _, err := New(Family(99), Tri, Quadratic); err == nil {
		tst.Errorf("unknown family must fail")
		return
	}
	if _, err := New(Lagrange, Geometry(99), Quadratic); err == nil {
		tst.Errorf("unknown geometry must fail")
		return
	}
	if _, err := New(Lagrange, Tri, Degree(99)); err == nil {
		tst.Errorf("unknown degree must fail")
		return
	}
}
