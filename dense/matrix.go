// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dense implements the dense matrix/vector kernel used by element
// formulations: block extraction/insertion, symmetric mirroring, congruence
// transformation and static (Guyan) condensation
package dense

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// constants
const DETTOL = 1.0e-14 // minimum pivot/determinant magnitude for inversions

// Direction selects the sense of a congruence transformation. The flag is
// always explicit; it is never inferred from matrix dimensions.
type Direction int

const (
	ToLocal  Direction = iota // global → local:  T · M · Tᵀ  (vectors: T · u)
	ToGlobal                  // local → global:  Tᵀ · M · T  (vectors: Tᵀ · u)
)

// Matrix is a rectangular grid of real values, row/column indexed
type Matrix struct {
	Nrow int         // number of rows
	Ncol int         // number of columns
	A    [][]float64 // [Nrow][Ncol] values
}

// NewMatrix returns a new (zeroed) m × n matrix
func NewMatrix(m, n int) *Matrix {
	if m < 1 || n < 1 {
		chk.Panic("matrix dimensions must be positive. m=%d, n=%d is invalid", m, n)
	}
	return &Matrix{m, n, la.MatAlloc(m, n)}
}

// NewMatrixSlice returns a new matrix wrapping a (rectangular) slice of rows
func NewMatrixSlice(a [][]float64) *Matrix {
	m := len(a)
	if m < 1 {
		chk.Panic("cannot create matrix from empty slice")
	}
	n := len(a[0])
	for i := 1; i < m; i++ {
		if len(a[i]) != n {
			chk.Panic("all rows must have the same length. len(row%d)=%d != %d", i, len(a[i]), n)
		}
	}
	return &Matrix{m, n, a}
}

// Clone returns a deep copy of this matrix
func (o *Matrix) Clone() *Matrix {
	return &Matrix{o.Nrow, o.Ncol, la.MatClone(o.A)}
}

// Get returns the value at (i,j). Out-of-range indices are programming
// errors and cause a panic.
func (o *Matrix) Get(i, j int) float64 {
	o.check(i, j)
	return o.A[i][j]
}

// Set assigns the value at (i,j)
func (o *Matrix) Set(i, j int, v float64) {
	o.check(i, j)
	o.A[i][j] = v
}

// Accumulate adds delta to the value at (i,j); used when summing Gauss-point
// contributions in place
func (o *Matrix) Accumulate(i, j int, delta float64) {
	o.check(i, j)
	o.A[i][j] += delta
}

// Scale returns k times this matrix
func (o *Matrix) Scale(k float64) (res *Matrix) {
	res = NewMatrix(o.Nrow, o.Ncol)
	for i := 0; i < o.Nrow; i++ {
		for j := 0; j < o.Ncol; j++ {
			res.A[i][j] = k * o.A[i][j]
		}
	}
	return
}

// Add returns this matrix plus b
func (o *Matrix) Add(b *Matrix) (res *Matrix, err error) {
	if o.Nrow != b.Nrow || o.Ncol != b.Ncol {
		return nil, chk.Err("cannot add (%d×%d) and (%d×%d) matrices", o.Nrow, o.Ncol, b.Nrow, b.Ncol)
	}
	res = NewMatrix(o.Nrow, o.Ncol)
	for i := 0; i < o.Nrow; i++ {
		for j := 0; j < o.Ncol; j++ {
			res.A[i][j] = o.A[i][j] + b.A[i][j]
		}
	}
	return
}

// Sub returns this matrix minus b
func (o *Matrix) Sub(b *Matrix) (res *Matrix, err error) {
	if o.Nrow != b.Nrow || o.Ncol != b.Ncol {
		return nil, chk.Err("cannot subtract (%d×%d) from (%d×%d) matrix", b.Nrow, b.Ncol, o.Nrow, o.Ncol)
	}
	res = NewMatrix(o.Nrow, o.Ncol)
	for i := 0; i < o.Nrow; i++ {
		for j := 0; j < o.Ncol; j++ {
			res.A[i][j] = o.A[i][j] - b.A[i][j]
		}
	}
	return
}

// Mul returns the product of this matrix with b
func (o *Matrix) Mul(b *Matrix) (res *Matrix, err error) {
	if o.Ncol != b.Nrow {
		return nil, chk.Err("cannot multiply (%d×%d) by (%d×%d) matrix", o.Nrow, o.Ncol, b.Nrow, b.Ncol)
	}
	res = NewMatrix(o.Nrow, b.Ncol)
	la.MatMul(res.A, 1, o.A, b.A)
	return
}

// MulVec returns the product of this matrix with vector u
func (o *Matrix) MulVec(u *Vector) (res *Vector, err error) {
	if o.Ncol != u.N() {
		return nil, chk.Err("cannot multiply (%d×%d) matrix by %d-vector", o.Nrow, o.Ncol, u.N())
	}
	res = NewVector(o.Nrow)
	la.MatVecMul(res.V, 1, o.A, u.V)
	return
}

// Transpose returns a new matrix with swapped indices
func (o *Matrix) Transpose() (res *Matrix) {
	res = NewMatrix(o.Ncol, o.Nrow)
	for i := 0; i < o.Nrow; i++ {
		for j := 0; j < o.Ncol; j++ {
			res.A[j][i] = o.A[i][j]
		}
	}
	return
}

// Mirror returns a fully symmetric matrix built from a square matrix whose
// upper triangle (including diagonal) has been populated. Populating the
// upper triangle is the convention throughout this module; the lower
// triangle is always the one overwritten. Must only be called once
// population is complete.
func (o *Matrix) Mirror() (res *Matrix, err error) {
	if o.Nrow != o.Ncol {
		return nil, chk.Err("cannot mirror non-square (%d×%d) matrix", o.Nrow, o.Ncol)
	}
	res = o.Clone()
	for i := 0; i < o.Nrow; i++ {
		for j := i + 1; j < o.Ncol; j++ {
			res.A[j][i] = res.A[i][j]
		}
	}
	return
}

// SubMatrix extracts the block with rows i0..i1 and columns j0..j1 (both
// ends inclusive)
func (o *Matrix) SubMatrix(i0, j0, i1, j1 int) (res *Matrix, err error) {
	if i0 < 0 || j0 < 0 || i1 < i0 || j1 < j0 || i1 >= o.Nrow || j1 >= o.Ncol {
		return nil, chk.Err("sub-matrix rows %d..%d, cols %d..%d exceed (%d×%d) bounds", i0, i1, j0, j1, o.Nrow, o.Ncol)
	}
	res = NewMatrix(i1-i0+1, j1-j0+1)
	for i := i0; i <= i1; i++ {
		for j := j0; j <= j1; j++ {
			res.A[i-i0][j-j0] = o.A[i][j]
		}
	}
	return
}

// SetSubMatrix inserts block b with its (0,0) entry at (ro,co)
func (o *Matrix) SetSubMatrix(b *Matrix, ro, co int) (err error) {
	if ro < 0 || co < 0 || ro+b.Nrow > o.Nrow || co+b.Ncol > o.Ncol {
		return chk.Err("(%d×%d) block at (%d,%d) exceeds (%d×%d) bounds", b.Nrow, b.Ncol, ro, co, o.Nrow, o.Ncol)
	}
	for i := 0; i < b.Nrow; i++ {
		for j := 0; j < b.Ncol; j++ {
			o.A[ro+i][co+j] = b.A[i][j]
		}
	}
	return
}

// Transform applies the congruence transformation of this matrix through T.
// With T being the (nlocal × nglobal) projection matrix:
//  ToGlobal: res = Tᵀ · M · T   (M is nlocal × nlocal)
//  ToLocal:  res = T · M · Tᵀ   (M is nglobal × nglobal)
func (o *Matrix) Transform(tr *Matrix, dir Direction) (res *Matrix, err error) {
	switch dir {
	case ToGlobal:
		if o.Nrow != tr.Nrow || o.Ncol != tr.Nrow {
			return nil, chk.Err("toGlobal transform needs (%d×%d) matrix for (%d×%d) transformation; got (%d×%d)", tr.Nrow, tr.Nrow, tr.Nrow, tr.Ncol, o.Nrow, o.Ncol)
		}
		res = NewMatrix(tr.Ncol, tr.Ncol)
		la.MatTrMul3(res.A, 1, tr.A, o.A, tr.A) // res := trᵀ · M · tr
	case ToLocal:
		if o.Nrow != tr.Ncol || o.Ncol != tr.Ncol {
			return nil, chk.Err("toLocal transform needs (%d×%d) matrix for (%d×%d) transformation; got (%d×%d)", tr.Ncol, tr.Ncol, tr.Nrow, tr.Ncol, o.Nrow, o.Ncol)
		}
		res = NewMatrix(tr.Nrow, tr.Nrow)
		trT := tr.Transpose()
		la.MatTrMul3(res.A, 1, trT.A, o.A, trT.A) // res := tr · M · trᵀ
	default:
		return nil, chk.Err("invalid transform direction flag (%d)", dir)
	}
	return
}

// Det returns the determinant of a small square matrix (1×1, 2×2, 3×3);
// larger sizes are not needed by the element formulations
func (o *Matrix) Det() (det float64, err error) {
	if o.Nrow != o.Ncol {
		return 0, chk.Err("determinant of non-square (%d×%d) matrix is undefined", o.Nrow, o.Ncol)
	}
	switch o.Nrow {
	case 1:
		det = o.A[0][0]
	case 2:
		det = o.A[0][0]*o.A[1][1] - o.A[0][1]*o.A[1][0]
	case 3:
		det = o.A[0][0]*(o.A[1][1]*o.A[2][2]-o.A[1][2]*o.A[2][1]) -
			o.A[0][1]*(o.A[1][0]*o.A[2][2]-o.A[1][2]*o.A[2][0]) +
			o.A[0][2]*(o.A[1][0]*o.A[2][1]-o.A[1][1]*o.A[2][0])
	default:
		return 0, chk.Err("determinant is not available for (%d×%d) matrices", o.Nrow, o.Ncol)
	}
	return
}

// check panics if (i,j) is outside the valid row/column counts
func (o *Matrix) check(i, j int) {
	if i < 0 || i >= o.Nrow || j < 0 || j >= o.Ncol {
		chk.Panic("index (%d,%d) is out of range of (%d×%d) matrix", i, j, o.Nrow, o.Ncol)
	}
}
