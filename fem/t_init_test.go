// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/strucfem/fea/msolid"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// testNodes returns a flat 6-node triangle in the xy-plane with mid-side
// nodes at the geometric midpoints (unit legs, area 1/2)
func testNodes() []*Node {
	return []*Node{
		NewNode(0, 0, 0, 0),
		NewNode(1, 1, 0, 0),
		NewNode(2, 0, 1, 0),
		NewNode(3, 0.5, 0, 0),
		NewNode(4, 0.5, 0.5, 0),
		NewNode(5, 0, 0.5, 0),
	}
}

// testModel returns an isotropic material: E=1000, nu=0.25, alp=1e-5, rho=2
func testModel(tst *testing.T) msolid.Model {
	m, err := msolid.NewElastic(dbf.Params{
		&dbf.P{N: "E", V: 1000},
		&dbf.P{N: "nu", V: 0.25},
		&dbf.P{N: "alp", V: 1e-5},
		&dbf.P{N: "rho", V: 2},
	})
	if err != nil {
		tst.Errorf("cannot create material: %v", err)
		return nil
	}
	return m
}

// testPlate returns a ready element over testNodes with thickness 0.1 and
// equations numbered node-by-node: eq = 6*node + dof
func testPlate(tst *testing.T) *PlateTri6 {
	mdl := testModel(tst)
	if mdl == nil {
		return nil
	}
	sec := NewSection("shell").SetDimension("thick", 0.1)
	o, err := NewPlateTri6(0, testNodes(), mdl, sec)
	if err != nil {
		tst.Errorf("cannot create element: %v", err)
		return nil
	}
	err = o.SetEqs(testEqs())
	if err != nil {
		tst.Errorf("SetEqs failed: %v", err)
		return nil
	}
	return o
}

func testEqs() (eqs [][]int) {
	for m := 0; m < 6; m++ {
		row := make([]int, 6)
		for i := 0; i < 6; i++ {
			row[i] = 6*m + i
		}
		eqs = append(eqs, row)
	}
	return
}
