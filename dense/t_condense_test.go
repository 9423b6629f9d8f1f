// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvertAnalytic(t *testing.T) {
	a := NewMatrixSlice([][]float64{
		{4, 7},
		{2, 6},
	})
	inv, err := a.Invert()
	require.NoError(t, err)
	expected := [][]float64{
		{0.6, -0.7},
		{-0.2, 0.4},
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, expected[i][j], inv.Get(i, j), 1e-14)
		}
	}

	one := NewMatrixSlice([][]float64{{4}})
	inv, err = one.Invert()
	require.NoError(t, err)
	assert.InDelta(t, 0.25, inv.Get(0, 0), 1e-15)
}

func TestInvertLU(t *testing.T) {
	// sizes above 3 go through the LU factorization
	a := NewMatrix(4, 4)
	for i, v := range []float64{2, 4, 5, 10} {
		a.Set(i, i, v)
	}
	inv, err := a.Invert()
	require.NoError(t, err)

	prod, err := a.Mul(inv)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, prod.Get(i, j), 1e-13)
		}
	}
}

func TestInvertSingular(t *testing.T) {
	_, err := NewMatrixSlice([][]float64{
		{1, 2},
		{2, 4},
	}).Invert()
	assert.Error(t, err)

	_, err = NewMatrixSlice([][]float64{{0}}).Invert()
	assert.Error(t, err)

	_, err = NewMatrix(2, 3).Invert()
	assert.Error(t, err)

	// singular on the LU path too: row 2 is twice row 0
	_, err = NewMatrixSlice([][]float64{
		{1, 2, 3, 4},
		{0, 1, 0, 1},
		{2, 4, 6, 8},
		{1, 0, 0, 2},
	}).Invert()
	assert.Error(t, err)
}

func TestCondenseSingular(t *testing.T) {
	// the eliminated block [[1,1],[1,1]] is singular: the reduction must
	// fail instead of returning a finite wrong result
	a := NewMatrixSlice([][]float64{
		{4, 1, 1, 0},
		{1, 3, 0, 1},
		{1, 0, 1, 1},
		{0, 1, 1, 1},
	})
	res, err := a.Condense(2)
	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestCondenseSchur(t *testing.T) {
	a := NewMatrixSlice([][]float64{
		{4, 1, 1, 0},
		{1, 3, 0, 1},
		{1, 0, 2, 0},
		{0, 1, 0, 2},
	})
	res, err := a.Condense(2)
	require.NoError(t, err)
	require.Equal(t, 2, res.Nrow)
	require.Equal(t, 2, res.Ncol)

	// K_kk - K_ke inv(K_ee) K_ek computed by hand
	expected := [][]float64{
		{3.5, 1.0},
		{1.0, 2.5},
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, expected[i][j], res.Get(i, j), 1e-14)
		}
	}
}

func TestCondenseErrors(t *testing.T) {
	a := NewMatrix(4, 4)
	for i := 0; i < 4; i++ {
		a.Set(i, i, 1)
	}
	_, err := a.Condense(0)
	assert.Error(t, err)
	_, err = a.Condense(4)
	assert.Error(t, err)
	_, err = NewMatrix(2, 3).Condense(1)
	assert.Error(t, err)
}
