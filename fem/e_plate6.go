// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/strucfem/fea/dense"
	"github.com/strucfem/fea/interp"
	"github.com/strucfem/fea/msolid"
	"github.com/strucfem/fea/quad"
)

// PlateTri6 is a 6-node triangular Mindlin/Reissner plate element with
// biquadratic Lagrange interpolation. Nodes are given counter-clockwise:
// three corners, then the mid-side nodes between corners 1-2, 2-3 and 3-1.
//
// Dofs per node: ux, uy, uz, rx, ry, rz (global); u3, r1, r2 (local).
// The formulation is mixed: the uncondensed stiffness carries 48 local dofs
// laid out by quantity (8 blocks of 6 nodes), 18 displacement dofs followed
// by 30 stress-resultant parameters. The parameters are condensed away and
// the remaining 18 are re-sorted node-wise before the global transformation.
// Transverse-shear blocks are under-integrated against shear locking.
type PlateTri6 struct {

	// basic data
	Eid   int         // element id
	Nodes []*Node     // the 6 nodes
	X     [][]float64 // matrix of nodal coordinates [3][6]
	Mdl   msolid.Model
	Sec   *Section

	// temperature loading
	TempLoads []*ElemTemp

	// problem variables
	Umap []int // assembly map (location array/element equations) [36]

	// interpolation
	shape *interp.Interp
}

// local dof block layout of the 48×48 uncondensed stiffness: 8 blocks of 6
// (one entry per node). The first three blocks survive condensation and map
// to the per-node local dofs u3, r1, r2; the remaining five hold the
// stress-resultant parameters of the mixed formulation. The displacement
// diagonal is zero: all stiffness comes from eliminating the parameter
// blocks, whose compliance-scaled diagonal keeps the eliminated system
// well-conditioned.
const (
	ofsU3 = 0  // transverse displacement
	ofsR1 = 6  // rotation about local axis 1
	ofsR2 = 12 // rotation about local axis 2
	ofsQ1 = 18 // transverse shear resultant, 1-3 plane
	ofsQ2 = 24 // transverse shear resultant, 2-3 plane
	ofsM1 = 30 // bending resultant, direction 1
	ofsM2 = 36 // bending resultant, direction 2
	ofsMT = 42 // twisting resultant
	nloc  = 18 // condensed local dofs: 6 nodes × (u3,r1,r2)
	nglob = 36 // global dofs:          6 nodes × (ux,uy,uz,rx,ry,rz)
)

// sub-matrix kinds of the integration pipeline
type subKind int

const (
	subNN  subKind = iota // ∫ Ni Nj |J|
	subNG1                // ∫ Ni (Nj,1 y,2 − Nj,2 y,1)
	subNG2                // ∫ Ni (−Nj,1 x,2 + Nj,2 x,1)
)

// integration orders; the reduced rule is a strict coordinate subset of the
// full rule (see quad)
const (
	nipFull    = 7
	nipReduced = 4
)

// register element
func init() {
	eallocators["plate6"] = func(id int, nodes []*Node, mdl msolid.Model, sec *Section) Element {
		o, err := NewPlateTri6(id, nodes, mdl, sec)
		if err != nil {
			return nil
		}
		return o
	}
}

// NewPlateTri6 returns a new 6-node plate element
func NewPlateTri6(id int, nodes []*Node, mdl msolid.Model, sec *Section) (o *PlateTri6, err error) {
	if len(nodes) != 6 {
		return nil, chk.Err("plate6 needs 6 nodes; %d given", len(nodes))
	}
	o = new(PlateTri6)
	o.Eid = id
	o.Nodes = nodes
	o.Mdl = mdl
	o.Sec = sec
	o.shape, err = interp.New(interp.Lagrange, interp.Tri, interp.Quadratic)
	if err != nil {
		return nil, err
	}
	o.X = la.MatAlloc(3, 6)
	for m, nod := range nodes {
		for i := 0; i < 3; i++ {
			o.X[i][m] = nod.X[i]
		}
	}
	return
}

// Id returns the element id
func (o *PlateTri6) Id() int { return o.Eid }

// Nnodes returns the number of nodes
func (o *PlateTri6) Nnodes() int { return 6 }

// Dofs returns the per-node dof keys in the given frame. The orders below
// are contracts matched by every matrix assembly and reordering step.
func (o *PlateTri6) Dofs(csys CoordSys) ([]string, error) {
	switch csys {
	case Global:
		return []string{"ux", "uy", "uz", "rx", "ry", "rz"}, nil
	case Local:
		return []string{"u3", "r1", "r2"}, nil
	}
	return nil, chk.Err("invalid coordinate system flag (%d) for dof array", csys)
}

// SetEqs sets the equation numbers; eqs is [6][6]: node-by-node, global dof
// order ux, uy, uz, rx, ry, rz
func (o *PlateTri6) SetEqs(eqs [][]int) (err error) {
	if len(eqs) != 6 {
		return chk.Err("eqs must have 6 rows (one per node); %d given", len(eqs))
	}
	o.Umap = make([]int, nglob)
	for m := 0; m < 6; m++ {
		if len(eqs[m]) != 6 {
			return chk.Err("eqs[%d] must have 6 equation numbers; %d given", m, len(eqs[m]))
		}
		for i := 0; i < 6; i++ {
			o.Umap[i+m*6] = eqs[m][i]
		}
	}
	return
}

// AddTempLoad appends one temperature-load contribution
func (o *PlateTri6) AddTempLoad(tl *ElemTemp) {
	o.TempLoads = append(o.TempLoads, tl)
}

// StiffnessMatrix computes the element stiffness matrix in global
// coordinates (36×36, symmetric)
func (o *PlateTri6) StiffnessMatrix() (kglob *dense.Matrix, err error) {

	// uncondensed local matrix, then static condensation
	kloc, err := o.uncondensedStiffness()
	if err != nil {
		return
	}
	kloc, err = kloc.Condense(nloc)
	if err != nil {
		return
	}

	// node-wise sorting and global transformation
	kloc = o.sortNodewise(kloc)
	tr, err := o.transformation()
	if err != nil {
		return
	}
	return kloc.Transform(tr, dense.ToGlobal)
}

// MassMatrix computes the consistent element mass matrix in global
// coordinates (36×36, symmetric)
func (o *PlateTri6) MassMatrix() (mglob *dense.Matrix, err error) {

	// inertia factors
	ro := o.Mdl.Rho()
	h, err := o.Sec.Dimension("thick")
	if err != nil {
		return
	}
	i0 := ro * h
	i2 := ro * h * h * h / 12.0

	// translational and rotary blocks from the NN sub-matrix
	k1, err := o.subMatrix(subNN, nipFull)
	if err != nil {
		return
	}
	mloc := dense.NewMatrix(nloc, nloc)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			mloc.Set(ofsU3+i, ofsU3+j, i0*k1.Get(i, j))
			mloc.Set(ofsR1+i, ofsR1+j, i2*k1.Get(i, j))
			mloc.Set(ofsR2+i, ofsR2+j, i2*k1.Get(i, j))
		}
	}

	// node-wise sorting and global transformation
	mloc = o.sortNodewise(mloc)
	tr, err := o.transformation()
	if err != nil {
		return
	}
	return mloc.Transform(tr, dense.ToGlobal)
}

// StabilityMatrix computes the element geometric (initial-stress) stiffness
// in global coordinates (36×36, symmetric). The in-plane stress driving the
// geometric terms is recovered from the element's own stress field at each
// integration point.
func (o *PlateTri6) StabilityMatrix(sol *Solution) (gglob *dense.Matrix, err error) {

	h, err := o.Sec.Dimension("thick")
	if err != nil {
		return
	}
	xl, err := o.localCoords()
	if err != nil {
		return
	}
	pts, err := quad.Points(quad.Tri, nipFull)
	if err != nil {
		return
	}

	gloc := dense.NewMatrix(nloc, nloc)
	for _, ip := range pts {

		// geometry data at integration point
		jac, det, e := o.jacobian(xl, ip.R, ip.S)
		if e != nil {
			return nil, e
		}

		// in-plane stress block
		sig, e := o.Stress(sol, ip.R, ip.S)
		if e != nil {
			return nil, e
		}
		sm := dense.NewMatrix(2, 2)
		sm.Set(0, 0, sig.Get(0, 0))
		sm.Set(0, 1, sig.Get(0, 1))
		sm.Set(1, 0, sig.Get(0, 1))
		sm.Set(1, 1, sig.Get(1, 1))

		// Gᵀ · σ · G, scaled by weight, thickness and Jacobian determinant
		gop := o.gop(jac, det, ip.R, ip.S)
		f, e := sm.Transform(gop, dense.ToGlobal)
		if e != nil {
			return nil, e
		}
		gloc, e = gloc.Add(f.Scale(ip.W * h * det))
		if e != nil {
			return nil, e
		}
	}

	tr, err := o.transformation()
	if err != nil {
		return
	}
	return gloc.Transform(tr, dense.ToGlobal)
}

// ThermalLoadVector returns the element thermal load vector in global
// coordinates. The transverse formulation carries no membrane dofs, so a
// through-thickness temperature rise produces no load: the vector is
// structurally zero and only rotated for interface consistency.
func (o *PlateTri6) ThermalLoadVector() (tglob *dense.Vector, err error) {
	tloc := dense.NewVector(nloc)
	tr, err := o.transformation()
	if err != nil {
		return
	}
	return tloc.Transform(tr, dense.ToGlobal)
}

// AddToKb adds the element stiffness to the global Jacobian matrix Kb
func (o *PlateTri6) AddToKb(Kb *la.Triplet, sol *Solution) (err error) {
	if o.Umap == nil {
		return chk.Err("SetEqs must be called before assembling element %d", o.Eid)
	}
	k, err := o.StiffnessMatrix()
	if err != nil {
		return
	}
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			Kb.Put(I, J, k.Get(i, j))
		}
	}
	return
}

// Displacement returns the local approximated displacement vector
// (u1,u2,u3,r1,r2,r3) at natural coordinates (r,s); only u3, r1 and r2 are
// carried by this formulation
func (o *PlateTri6) Displacement(sol *Solution, r, s float64) (disp *dense.Vector, err error) {
	uloc, err := o.gatherLocal(sol)
	if err != nil {
		return
	}
	disp = dense.NewVector(6)
	for m := 0; m < 6; m++ {
		f := o.shape.F(r, s, m)
		disp.Accumulate(2, uloc.Get(3*m)*f)
		disp.Accumulate(3, uloc.Get(3*m+1)*f)
		disp.Accumulate(4, uloc.Get(3*m+2)*f)
	}
	return
}

// Strain returns the elastic strain tensor (3×3, symmetric, local frame) at
// natural coordinates (r,s)
func (o *PlateTri6) Strain(sol *Solution, r, s float64) (eps *dense.Matrix, err error) {

	uloc, err := o.gatherLocal(sol)
	if err != nil {
		return
	}
	d, err := o.fieldDerivs(uloc, r, s)
	if err != nil {
		return
	}
	h, err := o.Sec.Dimension("thick")
	if err != nil {
		return
	}

	eps = dense.NewMatrix(3, 3)
	eps.Set(0, 0, h/2.0*(d.r21*d.geo22-d.r22*d.geo21)/d.det)
	eps.Set(1, 1, h/2.0*(d.r11*d.geo12-d.r12*d.geo11)/d.det)
	eps.Set(0, 1, h/2.0*(-d.r11*d.geo22+d.r12*d.geo21-d.r21*d.geo12+d.r22*d.geo11)/(2.0*d.det))
	eps.Set(0, 2, ((d.u31*d.geo22-d.u32*d.geo21)/d.det+d.r2)/2.0)
	eps.Set(1, 2, ((-d.u31*d.geo12+d.u32*d.geo11)/d.det-d.r1)/2.0)
	return eps.Mirror()
}

// Stress returns the Cauchy stress tensor (3×3, symmetric, local frame) at
// natural coordinates (r,s). The thermal eigenstrain (stiffness × expansion
// × summed temperature rise) is subtracted before the constitutive multiply.
func (o *PlateTri6) Stress(sol *Solution, r, s float64) (sig *dense.Matrix, err error) {

	// material values; out-of-plane expansion does not enter the plate
	c := o.Mdl.C()
	phi := o.Mdl.Alpha().Clone()
	phi.Set(2, 0)

	// effective temperature rise
	theta := 0.0
	for _, tl := range o.TempLoads {
		theta += tl.Value(sol.T)
	}

	// strain vector: 11, 22, 33, 12, 13, 23 (engineering shear)
	em, err := o.Strain(sol, r, s)
	if err != nil {
		return
	}
	ev := dense.NewVector(6)
	ev.Set(0, em.Get(0, 0))
	ev.Set(1, em.Get(1, 1))
	ev.Set(2, em.Get(2, 2))
	ev.Set(3, 2.0*em.Get(0, 1))
	ev.Set(4, 2.0*em.Get(0, 2))
	ev.Set(5, 2.0*em.Get(1, 2))

	// stress vector
	ev, err = ev.Sub(phi.Scale(theta))
	if err != nil {
		return
	}
	sv, err := c.MulVec(ev)
	if err != nil {
		return
	}

	sig = dense.NewMatrix(3, 3)
	sig.Set(0, 0, sv.Get(0))
	sig.Set(1, 1, sv.Get(1))
	sig.Set(2, 2, sv.Get(2))
	sig.Set(0, 1, sv.Get(3))
	sig.Set(0, 2, sv.Get(4))
	sig.Set(1, 2, sv.Get(5))
	return sig.Mirror()
}

// InternalForce returns the demanded internal force at natural coordinates
// (r,s). Bending moments invert the 2×2 in-plane compliance block.
func (o *PlateTri6) InternalForce(sol *Solution, typ ForceType, r, s float64) (val float64, err error) {

	// compliance entries (component order 11,22,33,12,13,23)
	smat := o.Mdl.S()
	sG12 := smat.Get(3, 3)
	sG13 := smat.Get(4, 4)
	sG23 := smat.Get(5, 5)
	h, err := o.Sec.Dimension("thick")
	if err != nil {
		return
	}

	uloc, err := o.gatherLocal(sol)
	if err != nil {
		return
	}
	d, err := o.fieldDerivs(uloc, r, s)
	if err != nil {
		return
	}

	switch typ {

	case F13:
		val = 5.0 * h * ((d.u31*d.geo22-d.u32*d.geo21)/d.det + d.r2) / (6.0 * sG13)

	case H23:
		val = 5.0 * h * ((-d.u31*d.geo12+d.u32*d.geo11)/d.det - d.r1) / (6.0 * sG23)

	case T12:
		val = h * h * h * (-d.r11*d.geo22 + d.r12*d.geo21 - d.r21*d.geo12 + d.r22*d.geo11) / (12.0 * sG12 * d.det)

	case K22, M11:
		sub, e := smat.SubMatrix(0, 0, 1, 1)
		if e != nil {
			return 0, e
		}
		k, e := sub.Invert()
		if e != nil {
			return 0, e
		}
		x := dense.NewVector(2)
		x.Set(0, (d.r21*d.geo22-d.r22*d.geo21)/d.det)
		x.Set(1, (d.r11*d.geo12-d.r12*d.geo11)/d.det)
		v, e := k.MulVec(x.Scale(h * h * h / 12.0))
		if e != nil {
			return 0, e
		}
		if typ == K22 {
			val = v.Get(0)
		} else {
			val = v.Get(1)
		}

	default:
		return 0, chk.Err("invalid internal-force type (%d) for plate6 element", typ)
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// triad computes the local orthonormal basis: e1 along corner 3 → corner 1,
// e3 normal to the plate, e2 = e3 × e1
func (o *PlateTri6) triad() (e1, e2, e3 []float64, err error) {
	a := make([]float64, 3)
	b := make([]float64, 3)
	for i := 0; i < 3; i++ {
		a[i] = o.X[i][0] - o.X[i][2]
		b[i] = o.X[i][1] - o.X[i][2]
	}
	e1 = make([]float64, 3)
	e2 = make([]float64, 3)
	e3 = make([]float64, 3)
	utl.Cross3d(e3, a, b) // e3 := a cross b
	na, n3 := la.VecNorm(a), la.VecNorm(e3)
	if na < 1e-14 || n3 < 1e-14 {
		return nil, nil, nil, chk.Err("degenerate geometry: corner nodes of element %d are collinear or coincident", o.Eid)
	}
	for i := 0; i < 3; i++ {
		e1[i] = a[i] / na
		e3[i] = e3[i] / n3
	}
	utl.Cross3d(e2, e3, e1) // e2 := e3 cross e1
	return
}

// transformation builds the 18×36 projection from global nodal dofs
// (ux,uy,uz,rx,ry,rz per node) to local plate dofs (u3,r1,r2 per node)
func (o *PlateTri6) transformation() (tr *dense.Matrix, err error) {
	e1, e2, e3, err := o.triad()
	if err != nil {
		return
	}
	tr = dense.NewMatrix(nloc, nglob)
	for m := 0; m < 6; m++ {
		for i := 0; i < 3; i++ {
			tr.Set(3*m, 6*m+i, e3[i])
			tr.Set(3*m+1, 6*m+3+i, e1[i])
			tr.Set(3*m+2, 6*m+3+i, e2[i])
		}
	}
	return
}

// localCoords returns the in-plane nodal coordinates [2][6] measured in the
// element frame with origin at corner 3
func (o *PlateTri6) localCoords() (xl [][]float64, err error) {
	e1, e2, _, err := o.triad()
	if err != nil {
		return
	}
	xl = la.MatAlloc(2, 6)
	for m := 0; m < 6; m++ {
		for i := 0; i < 3; i++ {
			d := o.X[i][m] - o.X[i][2]
			xl[0][m] += e1[i] * d
			xl[1][m] += e2[i] * d
		}
	}
	return
}

// geoAppx returns the derivative of the geometry interpolation: dim selects
// the local coordinate (0=x, 1=y) and der the natural direction (1 or 2)
func (o *PlateTri6) geoAppx(xl [][]float64, r, s float64, dim, der int) (val float64) {
	for m := 0; m < 6; m++ {
		if der == 1 {
			val += xl[dim][m] * o.shape.DF1(r, s, m)
		} else {
			val += xl[dim][m] * o.shape.DF2(r, s, m)
		}
	}
	return
}

// jacobian builds the 2×2 Jacobian of the geometric mapping at (r,s) and
// its determinant; a non-positive determinant is a fatal geometry error
func (o *PlateTri6) jacobian(xl [][]float64, r, s float64) (jac *dense.Matrix, det float64, err error) {
	jac = dense.NewMatrix(2, 2)
	jac.Set(0, 0, o.geoAppx(xl, r, s, 0, 1))
	jac.Set(0, 1, o.geoAppx(xl, r, s, 0, 2))
	jac.Set(1, 0, o.geoAppx(xl, r, s, 1, 1))
	jac.Set(1, 1, o.geoAppx(xl, r, s, 1, 2))
	det, err = jac.Det()
	if err != nil {
		return
	}
	if det <= 0 {
		return nil, 0, chk.Err("degenerate geometry: element %d has non-positive Jacobian determinant = %g at (%g,%g)", o.Eid, det, r, s)
	}
	return
}

// subMatrix integrates one 6×6 stiffness sub-matrix with the given number
// of Gauss points
func (o *PlateTri6) subMatrix(kind subKind, nip int) (ksub *dense.Matrix, err error) {

	pts, err := quad.Points(quad.Tri, nip)
	if err != nil {
		return
	}
	xl, err := o.localCoords()
	if err != nil {
		return
	}

	ksub = dense.NewMatrix(6, 6)
	for _, ip := range pts {

		// geometry values at integration point
		var det float64
		var geo1, geo2 float64
		switch kind {
		case subNN:
			_, det, err = o.jacobian(xl, ip.R, ip.S)
			if err != nil {
				return nil, err
			}
		case subNG1:
			geo1 = o.geoAppx(xl, ip.R, ip.S, 1, 1)
			geo2 = o.geoAppx(xl, ip.R, ip.S, 1, 2)
		case subNG2:
			geo1 = o.geoAppx(xl, ip.R, ip.S, 0, 1)
			geo2 = o.geoAppx(xl, ip.R, ip.S, 0, 2)
		}

		for i := 0; i < 6; i++ {
			ni := o.shape.F(ip.R, ip.S, i)
			for j := 0; j < 6; j++ {
				switch kind {
				case subNN:
					nj := o.shape.F(ip.R, ip.S, j)
					ksub.Accumulate(i, j, ip.W*ni*nj*det)
				case subNG1:
					nj1 := o.shape.DF1(ip.R, ip.S, j)
					nj2 := o.shape.DF2(ip.R, ip.S, j)
					ksub.Accumulate(i, j, ip.W*ni*(nj1*geo2-nj2*geo1))
				case subNG2:
					nj1 := o.shape.DF1(ip.R, ip.S, j)
					nj2 := o.shape.DF2(ip.R, ip.S, j)
					ksub.Accumulate(i, j, ip.W*ni*(-nj1*geo2+nj2*geo1))
				}
			}
		}
	}
	return
}

// uncondensedStiffness assembles the 48×48 mixed local stiffness from the
// six integration sub-matrices and the compliance/thickness factors. The
// displacement-displacement block stays zero; condensing the parameter
// blocks yields the displacement stiffness.
func (o *PlateTri6) uncondensedStiffness() (kloc *dense.Matrix, err error) {

	// compliance entries (component order 11,22,33,12,13,23)
	smat := o.Mdl.S()
	s11 := smat.Get(0, 0)
	s22 := smat.Get(1, 1)
	s12 := smat.Get(0, 1)
	sG12 := smat.Get(3, 3)
	sG13 := smat.Get(4, 4)
	sG23 := smat.Get(5, 5)
	h, err := o.Sec.Dimension("thick")
	if err != nil {
		return
	}
	if h <= 0 {
		return nil, chk.Err("plate6 element %d needs positive thickness; h=%g is invalid", o.Eid, h)
	}

	// factors
	hhh := h * h * h
	lam := -6.0 * sG13 / (5.0 * h)
	bet := -6.0 * sG23 / (5.0 * h)
	phi := -12.0 * s11 / hhh
	eta := -12.0 * s12 / hhh
	mu := -12.0 * s22 / hhh
	kap := -12.0 * sG12 / hhh

	// integration sub-matrices; k4-k6 are under-integrated
	k1, err := o.subMatrix(subNN, nipFull)
	if err != nil {
		return
	}
	k2, err := o.subMatrix(subNG1, nipFull)
	if err != nil {
		return
	}
	k3, err := o.subMatrix(subNG2, nipFull)
	if err != nil {
		return
	}
	k4, err := o.subMatrix(subNN, nipReduced)
	if err != nil {
		return
	}
	k5, err := o.subMatrix(subNG1, nipReduced)
	if err != nil {
		return
	}
	k6, err := o.subMatrix(subNG2, nipReduced)
	if err != nil {
		return
	}

	// insert sub-matrices into the upper triangle: displacement/parameter
	// couplings (transposed against the integration loops, which run the
	// parameter index first) and the compliance-scaled parameter diagonal
	kloc = dense.NewMatrix(48, 48)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			kloc.Set(ofsU3+i, ofsQ1+j, k5.Get(j, i))
			kloc.Set(ofsU3+i, ofsQ2+j, k6.Get(j, i))
			kloc.Set(ofsR1+i, ofsQ2+j, -k4.Get(j, i))
			kloc.Set(ofsR1+i, ofsM2+j, -k3.Get(j, i))
			kloc.Set(ofsR1+i, ofsMT+j, -k2.Get(j, i))
			kloc.Set(ofsR2+i, ofsQ1+j, k4.Get(j, i))
			kloc.Set(ofsR2+i, ofsM1+j, k2.Get(j, i))
			kloc.Set(ofsR2+i, ofsMT+j, k3.Get(j, i))
			kloc.Set(ofsQ1+i, ofsQ1+j, lam*k1.Get(i, j))
			kloc.Set(ofsQ2+i, ofsQ2+j, bet*k1.Get(i, j))
			kloc.Set(ofsM1+i, ofsM1+j, phi*k1.Get(i, j))
			kloc.Set(ofsM1+i, ofsM2+j, eta*k1.Get(i, j))
			kloc.Set(ofsM2+i, ofsM2+j, mu*k1.Get(i, j))
			kloc.Set(ofsMT+i, ofsMT+j, kap*k1.Get(i, j))
		}
	}
	return kloc.Mirror()
}

// sortNodewise re-sorts a condensed 18×18 local matrix from the by-quantity
// block layout (u3 block, r1 block, r2 block) to the by-node interleaved
// layout (u3,r1,r2 per node)
func (o *PlateTri6) sortNodewise(k *dense.Matrix) (res *dense.Matrix) {

	// sort by columns
	aux := dense.NewMatrix(nloc, nloc)
	for i := 0; i < nloc; i++ {
		for j := 0; j < 3; j++ {
			for m := 0; m < 6; m++ {
				aux.Set(i, j+3*m, k.Get(i, 6*j+m))
			}
		}
	}

	// sort by rows
	res = dense.NewMatrix(nloc, nloc)
	for i := 0; i < 3; i++ {
		for j := 0; j < nloc; j++ {
			for m := 0; m < 6; m++ {
				res.Set(i+3*m, j, aux.Get(6*i+m, j))
			}
		}
	}
	return
}

// gop builds the 2×18 gradient operator of the transverse displacement used
// by the geometric stiffness
func (o *PlateTri6) gop(jac *dense.Matrix, det float64, r, s float64) (g *dense.Matrix) {
	g = dense.NewMatrix(2, nloc)
	for m := 0; m < 6; m++ {
		d1 := o.shape.DF1(r, s, m)
		d2 := o.shape.DF2(r, s, m)
		g.Set(0, 3*m, (jac.Get(1, 1)*d1-jac.Get(0, 1)*d2)/det)
		g.Set(1, 3*m, (-jac.Get(1, 0)*d1+jac.Get(0, 0)*d2)/det)
	}
	return
}

// gatherLocal concatenates the nodal unknowns in fixed node order and
// rotates them into the element frame (18 local values)
func (o *PlateTri6) gatherLocal(sol *Solution) (uloc *dense.Vector, err error) {
	if o.Umap == nil {
		return nil, chk.Err("SetEqs must be called before computing fields of element %d", o.Eid)
	}
	uglob := dense.NewVector(nglob)
	for r, I := range o.Umap {
		uglob.Set(r, sol.Y[I])
	}
	tr, err := o.transformation()
	if err != nil {
		return
	}
	return uglob.Transform(tr, dense.ToLocal)
}

// derivs holds field derivative/value combinations at one natural point
type derivs struct {
	u31, u32           float64 // transverse displacement derivatives
	r11, r12, r21, r22 float64 // rotation derivatives
	r1, r2             float64 // rotation values
	geo11, geo12       float64 // x-geometry derivatives
	geo21, geo22       float64 // y-geometry derivatives
	det                float64 // Jacobian determinant
}

// fieldDerivs interpolates displacement/rotation derivatives and geometry
// data at (r,s) from the local unknown vector
func (o *PlateTri6) fieldDerivs(uloc *dense.Vector, r, s float64) (d derivs, err error) {
	for m := 0; m < 6; m++ {
		f := o.shape.F(r, s, m)
		f1 := o.shape.DF1(r, s, m)
		f2 := o.shape.DF2(r, s, m)
		d.u31 += uloc.Get(3*m) * f1
		d.u32 += uloc.Get(3*m) * f2
		d.r11 += uloc.Get(3*m+1) * f1
		d.r12 += uloc.Get(3*m+1) * f2
		d.r21 += uloc.Get(3*m+2) * f1
		d.r22 += uloc.Get(3*m+2) * f2
		d.r1 += uloc.Get(3*m+1) * f
		d.r2 += uloc.Get(3*m+2) * f
	}
	xl, err := o.localCoords()
	if err != nil {
		return
	}
	d.geo11 = o.geoAppx(xl, r, s, 0, 1)
	d.geo12 = o.geoAppx(xl, r, s, 0, 2)
	d.geo21 = o.geoAppx(xl, r, s, 1, 1)
	d.geo22 = o.geoAppx(xl, r, s, 1, 2)
	_, d.det, err = o.jacobian(xl, r, s)
	return
}
