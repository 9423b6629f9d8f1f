// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package quad provides Gauss integration point coordinates and weights for
// the reference domains used by element formulations
package quad

import (
	"github.com/cpmech/gosl/chk"
)

// Geometry identifies a reference integration domain
type Geometry int

const (
	Line Geometry = iota // line:          r ∈ [-1,1]
	Qua                  // quadrilateral: r,s ∈ [-1,1]
	Tri                  // triangle:      r,s ≥ 0, r+s ≤ 1
	Hex                  // hexahedron:    r,s,t ∈ [-1,1]
)

// String returns the name of the geometry
func (g Geometry) String() string {
	switch g {
	case Line:
		return "line"
	case Qua:
		return "qua"
	case Tri:
		return "tri"
	case Hex:
		return "hex"
	}
	return "unknown"
}

// Point holds one integration point: natural coordinates and weight.
// Triangle weights already carry the reference area 1/2; integrands are
// multiplied by W and the Jacobian determinant only.
type Point struct {
	R, S, T float64 // natural coordinates
	W       float64 // weight
}

// Gauss-Legendre abscissae/weights on [-1,1], indexed by point count
var gauss = map[int][]Point{
	1: {{0, 0, 0, 2}},
	2: {
		{-0.5773502691896257, 0, 0, 1},
		{+0.5773502691896257, 0, 0, 1},
	},
	3: {
		{-0.7745966692414834, 0, 0, 0.5555555555555556},
		{0, 0, 0, 0.8888888888888888},
		{+0.7745966692414834, 0, 0, 0.5555555555555556},
	},
	4: {
		{-0.8611363115940526, 0, 0, 0.3478548451374538},
		{-0.3399810435848563, 0, 0, 0.6521451548625461},
		{+0.3399810435848563, 0, 0, 0.6521451548625461},
		{+0.8611363115940526, 0, 0, 0.3478548451374538},
	},
	5: {
		{-0.9061798459386640, 0, 0, 0.2369268850561891},
		{-0.5384693101056831, 0, 0, 0.4786286704993665},
		{0, 0, 0, 0.5688888888888889},
		{+0.5384693101056831, 0, 0, 0.4786286704993665},
		{+0.9061798459386640, 0, 0, 0.2369268850561891},
	},
}

// Symmetric triangle rules. The entries are ordered centroid first, then
// whole orbits; this numbering is a contract: the 4-point rule re-uses the
// first four coordinates of the 7-point rule (weights re-solved for
// degree-2 exactness), so reduced integration of shear terms samples a
// strict subset of the full-integration points.
var triRules = map[int][]Point{
	1: {{1.0 / 3.0, 1.0 / 3.0, 0, 0.5}},
	3: {
		{1.0 / 6.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{2.0 / 3.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{1.0 / 6.0, 2.0 / 3.0, 0, 1.0 / 6.0},
	},
	4: {
		{1.0 / 3.0, 1.0 / 3.0, 0, 0.2420614591379630},
		{0.7974269853530873, 0.1012865073234563, 0, 0.0859795136206790},
		{0.1012865073234563, 0.7974269853530873, 0, 0.0859795136206790},
		{0.1012865073234563, 0.1012865073234563, 0, 0.0859795136206790},
	},
	6: {
		{0.8168475729804590, 0.0915762135097710, 0, 0.0549758718276610},
		{0.0915762135097710, 0.8168475729804590, 0, 0.0549758718276610},
		{0.0915762135097710, 0.0915762135097710, 0, 0.0549758718276610},
		{0.1081030181680700, 0.4459484909159650, 0, 0.1116907948390055},
		{0.4459484909159650, 0.1081030181680700, 0, 0.1116907948390055},
		{0.4459484909159650, 0.4459484909159650, 0, 0.1116907948390055},
	},
	7: {
		{1.0 / 3.0, 1.0 / 3.0, 0, 0.1125},
		{0.7974269853530873, 0.1012865073234563, 0, 0.0629695902724136},
		{0.1012865073234563, 0.7974269853530873, 0, 0.0629695902724136},
		{0.1012865073234563, 0.1012865073234563, 0, 0.0629695902724136},
		{0.0597158717897698, 0.4701420641051151, 0, 0.0661970763942530},
		{0.4701420641051151, 0.0597158717897698, 0, 0.0661970763942530},
		{0.4701420641051151, 0.4701420641051151, 0, 0.0661970763942530},
	},
	12: {
		{0.8738219710169960, 0.0630890144915020, 0, 0.0254224531851035},
		{0.0630890144915020, 0.8738219710169960, 0, 0.0254224531851035},
		{0.0630890144915020, 0.0630890144915020, 0, 0.0254224531851035},
		{0.5014265096581790, 0.2492867451709100, 0, 0.0583931378631895},
		{0.2492867451709100, 0.5014265096581790, 0, 0.0583931378631895},
		{0.2492867451709100, 0.2492867451709100, 0, 0.0583931378631895},
		{0.6365024991213990, 0.3103524510337850, 0, 0.0414255378091870},
		{0.3103524510337850, 0.6365024991213990, 0, 0.0414255378091870},
		{0.6365024991213990, 0.0531450498448160, 0, 0.0414255378091870},
		{0.0531450498448160, 0.6365024991213990, 0, 0.0414255378091870},
		{0.3103524510337850, 0.0531450498448160, 0, 0.0414255378091870},
		{0.0531450498448160, 0.3103524510337850, 0, 0.0414255378091870},
	},
}

// Points returns the ordered integration points for a reference geometry
// and a requested point count. Supported counts:
//  line: 1,2,3,4,5   qua: 1,4,9,16   tri: 1,3,4,6,7,12   hex: 1,8,27
// Any other combination is an unsupported configuration.
func Points(geo Geometry, nip int) (pts []Point, err error) {
	switch geo {
	case Line:
		rule, ok := gauss[nip]
		if !ok {
			return nil, chk.Err("unsupported configuration: %d-point rule is not available for %q", nip, geo.String())
		}
		pts = make([]Point, nip)
		copy(pts, rule)
	case Qua:
		n := tensorOrder(nip, 2)
		if n < 1 {
			return nil, chk.Err("unsupported configuration: %d-point rule is not available for %q", nip, geo.String())
		}
		rule := gauss[n]
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				pts = append(pts, Point{rule[i].R, rule[j].R, 0, rule[i].W * rule[j].W})
			}
		}
	case Tri:
		rule, ok := triRules[nip]
		if !ok {
			return nil, chk.Err("unsupported configuration: %d-point rule is not available for %q", nip, geo.String())
		}
		pts = make([]Point, nip)
		copy(pts, rule)
	case Hex:
		n := tensorOrder(nip, 3)
		if n < 1 || n > 3 {
			return nil, chk.Err("unsupported configuration: %d-point rule is not available for %q", nip, geo.String())
		}
		rule := gauss[n]
		for k := 0; k < n; k++ {
			for j := 0; j < n; j++ {
				for i := 0; i < n; i++ {
					pts = append(pts, Point{rule[i].R, rule[j].R, rule[k].R, rule[i].W * rule[j].W * rule[k].W})
				}
			}
		}
	default:
		return nil, chk.Err("unsupported configuration: unknown reference geometry (%d)", geo)
	}
	return
}

// tensorOrder returns n such that n^dim == nip, or -1
func tensorOrder(nip, dim int) int {
	for n := 1; n <= 4; n++ {
		p := 1
		for i := 0; i < dim; i++ {
			p *= n
		}
		if p == nip {
			return n
		}
	}
	return -1
}
