// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements element formulations: element matrices (stiffness,
// mass, stability), thermal load vectors and recovered fields (displacement,
// strain, stress, internal forces), all computed from caller-owned solution
// snapshots
package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/strucfem/fea/dense"
	"github.com/strucfem/fea/msolid"
)

// CoordSys selects the coordinate system of dof arrays and recovered values
type CoordSys int

const (
	Global CoordSys = iota // global frame: ux, uy, uz, rx, ry, rz per node
	Local                  // element frame: element-dependent local dofs
)

// ForceType selects an internal force during recovery
type ForceType int

const (
	F13 ForceType = iota // transverse shear force, local 1-3 plane
	H23                  // transverse shear force, local 2-3 plane
	T12                  // twisting moment
	M11                  // bending moment about local axis 1
	K22                  // bending moment about local axis 2
)

// String returns the name of the internal force
func (t ForceType) String() string {
	switch t {
	case F13:
		return "F13"
	case H23:
		return "H23"
	case T12:
		return "T12"
	case M11:
		return "M11"
	case K22:
		return "K22"
	}
	return "unknown"
}

// Solution holds a snapshot of the global solution variables. It is owned
// and mutated by the calling solver between analysis steps; elements only
// read it through their equation maps during a call.
type Solution struct {
	T float64   // current time
	Y []float64 // global dof values (solution variables)
}

// Element defines what element formulations must compute. All calls are
// pure with respect to the element: working matrices never outlive the
// call, so distinct elements may be processed concurrently over a shared
// read-only Solution.
type Element interface {

	// information and initialisation
	Id() int                              // element id
	Nnodes() int                          // number of nodes
	Dofs(csys CoordSys) ([]string, error) // per-node dof keys in the given frame
	SetEqs(eqs [][]int) error             // set equation numbers [nnode][ndofGlobal]

	// element matrices and load vectors, in global coordinates
	StiffnessMatrix() (*dense.Matrix, error)
	MassMatrix() (*dense.Matrix, error)
	StabilityMatrix(sol *Solution) (*dense.Matrix, error)
	ThermalLoadVector() (*dense.Vector, error)

	// assembly
	AddToKb(Kb *la.Triplet, sol *Solution) error // adds element K to global Jacobian matrix Kb

	// recovered fields at natural coordinates (r,s)
	Displacement(sol *Solution, r, s float64) (*dense.Vector, error)
	Strain(sol *Solution, r, s float64) (*dense.Matrix, error)
	Stress(sol *Solution, r, s float64) (*dense.Matrix, error)
	InternalForce(sol *Solution, typ ForceType, r, s float64) (float64, error)
}

// Allocator creates a new element from its collaborators
type Allocator func(id int, nodes []*Node, mdl msolid.Model, sec *Section) Element

// eallocators holds all available elements; kind => allocator
var eallocators = make(map[string]Allocator)

// New returns a new element from its kind; e.g. "plate6"
func New(kind string, id int, nodes []*Node, mdl msolid.Model, sec *Section) (ele Element, err error) {
	allocator, ok := eallocators[kind]
	if !ok {
		return nil, chk.Err("cannot get allocator for element {kind=%q, id=%d}", kind, id)
	}
	ele = allocator(id, nodes, mdl, sec)
	if ele == nil {
		return nil, chk.Err("element {kind=%q, id=%d} cannot be created with %d nodes", kind, id, len(nodes))
	}
	return
}
