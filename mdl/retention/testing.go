// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Check checks Cc = ∂sl/∂pc against finite differences along [pc0, pcf]
//  pcSkip -- points (e.g. kinks) where the derivative is not checked
func Check(tst *testing.T, mdl Model, pc0, pcf float64, npts int, tolCc float64, verbose bool, pcSkip []float64, tolSkip float64) {
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-6}
	for _, pc := range utl.LinSpace(pc0, pcf, npts) {
		if doskip(pc, pcSkip, tolSkip) {
			continue
		}
		sl := mdl.Sl(pc)
		if sl < mdl.SlMin()-1e-15 || sl > mdl.SlMax()+1e-15 {
			tst.Errorf("sl=%g is outside [%g, %g] @ pc=%g\n", sl, mdl.SlMin(), mdl.SlMax(), pc)
			return
		}
		if verbose {
			io.Pforan("pc=%g, sl=%g\n", pc, sl)
		}
		num := fd.Derivative(mdl.Sl, pc, settings)
		chk.Float64(tst, io.Sf("Cc = ∂sl/∂pc @ pc=%g", pc), tolCc, mdl.Cc(pc), num)
	}
}

// doskip analyse whether a point should be skip or not
func doskip(x float64, xskip []float64, tol float64) bool {
	for _, v := range xskip {
		if math.Abs(x-v) < tol {
			return true
		}
	}
	return false
}
