// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/mat"
)

// Invert returns the inverse of a square matrix. Sizes up to 3×3 are
// inverted analytically with a determinant tolerance; larger matrices go
// through an LU factorization. A numerically singular matrix is an error;
// this includes matrices the factorization reports as ill-conditioned.
func (o *Matrix) Invert() (res *Matrix, err error) {
	if o.Nrow != o.Ncol {
		return nil, chk.Err("cannot invert non-square (%d×%d) matrix", o.Nrow, o.Ncol)
	}
	res = NewMatrix(o.Nrow, o.Ncol)
	if o.Nrow == 1 {
		if math.Abs(o.A[0][0]) < DETTOL {
			return nil, chk.Err("singular matrix: cannot invert 1×1 matrix with |a|=%g", math.Abs(o.A[0][0]))
		}
		res.A[0][0] = 1.0 / o.A[0][0]
		return
	}
	if o.Nrow <= 3 {
		_, err = la.MatInv(res.A, o.A, DETTOL)
		if err != nil {
			return nil, chk.Err("singular matrix: %v", err)
		}
		return
	}
	var inv mat.Dense
	err = inv.Inverse(o.dense())
	if err != nil {
		return nil, chk.Err("singular matrix: LU inversion of (%d×%d) matrix failed: %v", o.Nrow, o.Ncol, err)
	}
	res.fromDense(&inv)
	return res, nil
}

// Condense applies static (Guyan) condensation to a square matrix
// partitioned into kept (first keep) and eliminated (remaining) degrees of
// freedom, returning
//  K_kk − K_ke · K_ee⁻¹ · K_ek
// The eliminated block is LU-solved rather than inverted; a singular
// eliminated block is an error.
func (o *Matrix) Condense(keep int) (res *Matrix, err error) {
	if o.Nrow != o.Ncol {
		return nil, chk.Err("cannot condense non-square (%d×%d) matrix", o.Nrow, o.Ncol)
	}
	if keep < 1 || keep >= o.Nrow {
		return nil, chk.Err("condensation must keep between 1 and %d degrees of freedom; keep=%d is invalid", o.Nrow-1, keep)
	}
	n := o.Nrow
	e := n - keep

	kkk, _ := o.SubMatrix(0, 0, keep-1, keep-1)
	kke, _ := o.SubMatrix(0, keep, keep-1, n-1)
	kek, _ := o.SubMatrix(keep, 0, n-1, keep-1)
	kee, _ := o.SubMatrix(keep, keep, n-1, n-1)

	// x = K_ee⁻¹ · K_ek
	var x mat.Dense
	err = x.Solve(kee.dense(), kek.dense())
	if err != nil {
		return nil, chk.Err("singular matrix: cannot solve (%d×%d) eliminated block during condensation: %v", e, e, err)
	}
	xm := NewMatrix(e, keep)
	xm.fromDense(&x)

	kex, err := kke.Mul(xm)
	if err != nil {
		return nil, err
	}
	return kkk.Sub(kex)
}

// dense returns a gonum view (copy) of this matrix
func (o *Matrix) dense() *mat.Dense {
	d := mat.NewDense(o.Nrow, o.Ncol, nil)
	for i := 0; i < o.Nrow; i++ {
		d.SetRow(i, o.A[i])
	}
	return d
}

// fromDense copies values back from a gonum matrix
func (o *Matrix) fromDense(d *mat.Dense) {
	for i := 0; i < o.Nrow; i++ {
		for j := 0; j < o.Ncol; j++ {
			o.A[i][j] = d.At(i, j)
		}
	}
}
