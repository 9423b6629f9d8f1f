// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Vector is a flat ordered sequence of real values
type Vector struct {
	V []float64 // values
}

// NewVector returns a new (zeroed) n-vector
func NewVector(n int) *Vector {
	if n < 1 {
		chk.Panic("vector length must be positive. n=%d is invalid", n)
	}
	return &Vector{make([]float64, n)}
}

// NewVectorSlice returns a new vector wrapping v
func NewVectorSlice(v []float64) *Vector {
	if len(v) < 1 {
		chk.Panic("cannot create vector from empty slice")
	}
	return &Vector{v}
}

// N returns the length of this vector
func (o *Vector) N() int { return len(o.V) }

// Clone returns a deep copy of this vector
func (o *Vector) Clone() *Vector {
	return &Vector{la.VecClone(o.V)}
}

// Get returns the value at i. Out-of-range indices panic.
func (o *Vector) Get(i int) float64 {
	o.check(i)
	return o.V[i]
}

// Set assigns the value at i
func (o *Vector) Set(i int, v float64) {
	o.check(i)
	o.V[i] = v
}

// Accumulate adds delta to the value at i
func (o *Vector) Accumulate(i int, delta float64) {
	o.check(i)
	o.V[i] += delta
}

// Scale returns k times this vector
func (o *Vector) Scale(k float64) (res *Vector) {
	res = NewVector(len(o.V))
	for i, v := range o.V {
		res.V[i] = k * v
	}
	return
}

// Add returns this vector plus b
func (o *Vector) Add(b *Vector) (res *Vector, err error) {
	if len(o.V) != len(b.V) {
		return nil, chk.Err("cannot add %d-vector and %d-vector", len(o.V), len(b.V))
	}
	res = NewVector(len(o.V))
	for i, v := range o.V {
		res.V[i] = v + b.V[i]
	}
	return
}

// Sub returns this vector minus b
func (o *Vector) Sub(b *Vector) (res *Vector, err error) {
	if len(o.V) != len(b.V) {
		return nil, chk.Err("cannot subtract %d-vector from %d-vector", len(b.V), len(o.V))
	}
	res = NewVector(len(o.V))
	for i, v := range o.V {
		res.V[i] = v - b.V[i]
	}
	return
}

// Norm returns the Euclidean norm of this vector
func (o *Vector) Norm() float64 {
	return la.VecNorm(o.V)
}

// Transform maps this vector through the (nlocal × nglobal) projection T:
//  ToLocal:  res = T · u    (u is the global vector)
//  ToGlobal: res = Tᵀ · u   (u is the local vector)
func (o *Vector) Transform(tr *Matrix, dir Direction) (res *Vector, err error) {
	switch dir {
	case ToLocal:
		if len(o.V) != tr.Ncol {
			return nil, chk.Err("toLocal transform needs %d-vector for (%d×%d) transformation; got %d-vector", tr.Ncol, tr.Nrow, tr.Ncol, len(o.V))
		}
		res = NewVector(tr.Nrow)
		la.MatVecMul(res.V, 1, tr.A, o.V)
	case ToGlobal:
		if len(o.V) != tr.Nrow {
			return nil, chk.Err("toGlobal transform needs %d-vector for (%d×%d) transformation; got %d-vector", tr.Nrow, tr.Nrow, tr.Ncol, len(o.V))
		}
		res = NewVector(tr.Ncol)
		la.MatTrVecMulAdd(res.V, 1, tr.A, o.V) // res += trᵀ · u  (res starts zeroed)
	default:
		return nil, chk.Err("invalid transform direction flag (%d)", dir)
	}
	return
}

// check panics if i is outside the valid range
func (o *Vector) check(i int) {
	if i < 0 || i >= len(o.V) {
		chk.Panic("index %d is out of range of %d-vector", i, len(o.V))
	}
}
