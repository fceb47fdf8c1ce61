// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CheckShape checks that shape functions evaluate to 1.0 @ nodes
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	r := []float64{0, 0, 0}
	for n := 0; n < shape.Nverts; n++ {

		// natural coordinates @ vertex
		for i := 0; i < shape.Gndim; i++ {
			r[i] = shape.NatCoords[i][n]
		}

		// compute function
		shape.Func(shape.S, shape.DSdR, r, false)

		// check
		if verbose {
			io.Pf("S = %v\n", shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckDSdR checks dSdR derivatives of shape structures
func CheckDSdR(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {

	// analytical
	shape.Func(shape.S, shape.DSdR, r, true)

	// numerical
	n := shape.Gndim
	num := mat.NewDense(shape.Nverts, n, nil)
	fd.Jacobian(num, func(f, x []float64) {
		S := make([]float64, shape.Nverts)
		shape.Func(S, nil, x, false)
		copy(f, S)
	}, r[:n], &fd.JacobianSettings{Formula: fd.Central})
	for m := 0; m < shape.Nverts; m++ {
		for i := 0; i < n; i++ {
			if verbose {
				io.Pf("dS%d/dR%d = %v\n", m, i, shape.DSdR[m][i])
			}
			chk.Float64(tst, io.Sf("%s: dS%d/dR%d", shape.Type, m, i), tol, shape.DSdR[m][i], num.At(m, i))
		}
	}
}

// CheckDSdx checks that G=dSdx reproduces linear fields: Σ_m G[m][j] x_i[m] = δij and Σ_m G[m][j] = 0
func CheckDSdx(tst *testing.T, shape *Shape, xmat [][]float64, r []float64, tol float64, verbose bool) {

	// analytical
	err := shape.CalcAtR(xmat, r, true)
	if err != nil {
		tst.Errorf("CalcAtR failed:\n%v", err)
		return
	}

	// check
	n := shape.Gndim
	for j := 0; j < n; j++ {
		var sum float64
		for m := 0; m < shape.Nverts; m++ {
			sum += shape.G[m][j]
		}
		chk.Float64(tst, io.Sf("%s: ΣG[m][%d]", shape.Type, j), tol, sum, 0)
		for i := 0; i < n; i++ {
			var dxdx float64
			for m := 0; m < shape.Nverts; m++ {
				dxdx += shape.G[m][j] * xmat[i][m]
			}
			if verbose {
				io.Pf("dx%d/dx%d = %v\n", i, j, dxdx)
			}
			δ := 0.0
			if i == j {
				δ = 1
			}
			chk.Float64(tst, io.Sf("%s: dx%d/dx%d", shape.Type, i, j), tol, dxdx, δ)
		}
	}
}
