// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porflow

import (
	"testing"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
	"github.com/cpmech/porflow/fields"
)

func Test_mass01(tst *testing.T) {

	chk.PrintTitle("mass01")

	// one phase: mass increases due to density
	d := newDict(1, 1)
	k := NewMassTimeDerivative(d, 0)
	ctx := &testContext{dt: 2.0, test: []float64{1.0}, grad: [][][]float64{{{0}}}}
	fp := fields.Nodes{scalarNode(1, 1, 0.3, 0.3, 0, 0,
		[]float64{1010}, []float64{1000},
		[]float64{0.5}, []float64{0.5},
		[]float64{0}, []float64{0})}
	chk.Float64(tst, "residual", 1e-12, k.Residual(ctx, fp, 0), 0.3*0.5*10/2.0)

	// no phases: nothing to accumulate
	d = newDict(2, 0)
	k = NewMassTimeDerivative(d, 0)
	rnd.Init(99)
	ctx = newTestContext(2, 2, 1.0)
	n := fields.NewNode(2, 2, 0)
	randomize(n)
	fp = fields.Nodes{n, n}
	chk.Float64(tst, "residual", 1e-17, k.Residual(ctx, fp, 0), 0)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			chk.Float64(tst, "diag", 1e-17, k.Jacobian(ctx, fp, i, j), 0)
			chk.Float64(tst, "offdiag", 1e-17, k.OffDiagJacobian(ctx, fp, i, j, 1), 0)
		}
	}
}

func Test_mass02(tst *testing.T) {

	chk.PrintTitle("mass02. diagonal terms versus finite differences")

	rnd.Init(5)
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-6}
	for _, nph := range []int{1, 2} {
		nvar, ndim, nnode := 2, 2, 2
		d := newDict(nvar, nph)
		ctx := newTestContext(nnode, ndim, 0.5)
		i := 1
		syn := newSynthetic(nvar, ndim, nph, ctx.grad[i][i])
		w := []float64{0.1, -0.05}
		snap := func(w []float64) fields.Nodes {
			n := syn.snapshot(w)
			return fields.Nodes{n, n}
		}
		for pvar := 0; pvar < nvar; pvar++ {
			k := NewMassTimeDerivative(d, d.VariableNumber(pvar))
			ana := k.Jacobian(ctx, snap(w), i, i)
			num := fd.Derivative(func(x float64) float64 {
				wtmp := append([]float64{}, w...)
				wtmp[pvar] = x
				return k.Residual(ctx, snap(wtmp), i)
			}, w[pvar], settings)
			chk.Float64(tst, io.Sf("nph=%d dR/dv%d", nph, pvar), 1e-7, ana, num)
		}

		// uncoupled
		k := NewMassTimeDerivative(d, 0)
		chk.Float64(tst, "uncoupled", 1e-17, k.OffDiagJacobian(ctx, snap(w), 0, 1, nvar), 0)
	}
}
