// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements constitutive data for solid/structural elements
package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/strucfem/fea/dense"
)

// Model defines what element formulations read from a material. The 6×6
// tensors use component order 11, 22, 33, 12, 13, 23 and are immutable once
// the material is attached to an element.
type Model interface {
	C() *dense.Matrix     // 3D stiffness tensor (6×6, symmetric)
	S() *dense.Matrix     // 3D compliance tensor (6×6, symmetric)
	Alpha() *dense.Vector // thermal-expansion vector (6)
	Rho() float64         // volumetric mass density
}

// Elastic is a linear-elastic orthotropic (or isotropic) material
type Elastic struct {

	// engineering constants
	E1, E2, E3       float64 // Young's moduli
	Nu12, Nu13, Nu23 float64 // Poisson's ratios
	G12, G13, G23    float64 // shear moduli

	// thermal expansion and density
	A1, A2, A3 float64 // thermal-expansion coefficients
	Den        float64 // volumetric mass density

	// derived, computed once by Init
	cmat *dense.Matrix
	smat *dense.Matrix
	alp  *dense.Vector
}

// NewElastic returns an isotropic material from parameters
//  "E"   -- Young's modulus
//  "nu"  -- Poisson's ratio
//  "alp" -- thermal-expansion coefficient (optional)
//  "rho" -- density (optional)
func NewElastic(prms dbf.Params) (o *Elastic, err error) {
	o = new(Elastic)
	var E, ν, α float64
	for _, p := range prms {
		switch p.N {
		case "E":
			E = p.V
		case "nu":
			ν = p.V
		case "alp":
			α = p.V
		case "rho":
			o.Den = p.V
		}
	}
	G := E / (2.0 * (1.0 + ν))
	o.E1, o.E2, o.E3 = E, E, E
	o.Nu12, o.Nu13, o.Nu23 = ν, ν, ν
	o.G12, o.G13, o.G23 = G, G, G
	o.A1, o.A2, o.A3 = α, α, α
	err = o.Init()
	return
}

// NewOrthotropic returns an orthotropic material from the nine engineering
// constants "E1".."E3", "nu12".."nu23", "G12".."G23", plus optional
// "alp1".."alp3" and "rho"
func NewOrthotropic(prms dbf.Params) (o *Elastic, err error) {
	o = new(Elastic)
	for _, p := range prms {
		switch p.N {
		case "E1":
			o.E1 = p.V
		case "E2":
			o.E2 = p.V
		case "E3":
			o.E3 = p.V
		case "nu12":
			o.Nu12 = p.V
		case "nu13":
			o.Nu13 = p.V
		case "nu23":
			o.Nu23 = p.V
		case "G12":
			o.G12 = p.V
		case "G13":
			o.G13 = p.V
		case "G23":
			o.G23 = p.V
		case "alp1":
			o.A1 = p.V
		case "alp2":
			o.A2 = p.V
		case "alp3":
			o.A3 = p.V
		case "rho":
			o.Den = p.V
		}
	}
	err = o.Init()
	return
}

// Init validates the parameters and computes the constitutive tensors
func (o *Elastic) Init() (err error) {
	if o.E1 <= 0 || o.E2 <= 0 || o.E3 <= 0 {
		return chk.Err("Young's moduli must be positive. E1=%g, E2=%g, E3=%g is invalid", o.E1, o.E2, o.E3)
	}
	if o.G12 <= 0 || o.G13 <= 0 || o.G23 <= 0 {
		return chk.Err("shear moduli must be positive. G12=%g, G13=%g, G23=%g is invalid", o.G12, o.G13, o.G23)
	}
	if o.Nu12 < 0 || o.Nu12 >= 0.5 || o.Nu13 < 0 || o.Nu13 >= 0.5 || o.Nu23 < 0 || o.Nu23 >= 0.5 {
		return chk.Err("Poisson's ratios must be within [0, 0.5). nu12=%g, nu13=%g, nu23=%g is invalid", o.Nu12, o.Nu13, o.Nu23)
	}
	if o.Den < 0 {
		return chk.Err("density must be non-negative. rho=%g is invalid", o.Den)
	}

	// compliance
	o.smat = dense.NewMatrix(6, 6)
	o.smat.Set(0, 0, 1.0/o.E1)
	o.smat.Set(1, 1, 1.0/o.E2)
	o.smat.Set(2, 2, 1.0/o.E3)
	o.smat.Set(0, 1, -o.Nu12/o.E1)
	o.smat.Set(0, 2, -o.Nu13/o.E1)
	o.smat.Set(1, 2, -o.Nu23/o.E2)
	o.smat.Set(3, 3, 1.0/o.G12)
	o.smat.Set(4, 4, 1.0/o.G13)
	o.smat.Set(5, 5, 1.0/o.G23)
	o.smat, err = o.smat.Mirror()
	if err != nil {
		return
	}

	// stiffness
	o.cmat, err = o.smat.Invert()
	if err != nil {
		return chk.Err("cannot compute stiffness tensor from compliance: %v", err)
	}

	// thermal expansion: direct components only
	o.alp = dense.NewVector(6)
	o.alp.Set(0, o.A1)
	o.alp.Set(1, o.A2)
	o.alp.Set(2, o.A3)
	return
}

// C returns the 6×6 stiffness tensor
func (o *Elastic) C() *dense.Matrix { return o.cmat }

// S returns the 6×6 compliance tensor
func (o *Elastic) S() *dense.Matrix { return o.smat }

// Alpha returns the thermal-expansion vector
func (o *Elastic) Alpha() *dense.Vector { return o.alp }

// Rho returns the volumetric mass density
func (o *Elastic) Rho() float64 { return o.Den }
