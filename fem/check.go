// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"context"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CheckJacobian compares the assembled Jacobian with central finite differences of the assembled residual
//  Input:
//   step -- finite differences step; 0 means the default step
//   tol  -- tolerance on |Kana - Knum| / (1 + |Knum|)
//  Output:
//   maxErr -- maximum scaled difference
//   err    -- non-nil if assembly failed or maxErr > tol
//  Note: dom.Y is restored on exit
func CheckJacobian(dom *Domain, step, tol float64, verbose bool) (maxErr float64, err error) {

	// analytical
	ctx := context.Background()
	_, Kb, err := dom.Assemble(ctx, true)
	if err != nil {
		return
	}

	// numerical
	y0 := make([]float64, dom.Ny)
	copy(y0, dom.Y)
	defer func() { copy(dom.Y, y0) }()
	Knum := mat.NewDense(dom.Ny, dom.Ny, nil)
	var errFd error
	fd.Jacobian(Knum, func(fb, y []float64) {
		copy(dom.Y, y)
		res, _, e := dom.Assemble(ctx, false)
		if e != nil {
			if errFd == nil {
				errFd = e
			}
			return
		}
		copy(fb, res)
	}, y0, &fd.JacobianSettings{Formula: fd.Central, Step: step})
	if errFd != nil {
		return 0, errFd
	}

	// compare
	for I := 0; I < dom.Ny; I++ {
		for J := 0; J < dom.Ny; J++ {
			ana, num := Kb.At(I, J), Knum.At(I, J)
			diff := math.Abs(ana-num) / (1 + math.Abs(num))
			if diff > maxErr {
				maxErr = diff
			}
			if verbose && diff > tol {
				io.Pfred("K[%d][%d]: ana=%23.15e num=%23.15e diff=%g\n", I, J, ana, num, diff)
			}
		}
	}
	if verbose {
		io.Pforan("max error = %g\n", maxErr)
	}
	if maxErr > tol {
		return maxErr, chk.Err("Jacobian check failed: max error = %g > tol = %g\n", maxErr, tol)
	}
	return
}
