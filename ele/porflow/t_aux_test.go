// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porflow

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/porflow/dict"
	"github.com/cpmech/porflow/fields"
)

// testContext implements ele.Context with given values
type testContext struct {
	dt   float64
	test []float64     // [nnode] test functions @ evaluation point
	grad [][][]float64 // [nnode(j)][nnode(i)][ndim] ∇φ_j @ node i
}

func (o *testContext) Dt() float64                { return o.dt }
func (o *testContext) Test(i int) float64         { return o.test[i] }
func (o *testContext) GradPhi(j, i int) []float64 { return o.grad[j][i] }

// newTestContext returns a context with random test values and gradients
func newTestContext(nnode, ndim int, dt float64) (o *testContext) {
	o = &testContext{dt: dt, test: make([]float64, nnode), grad: make([][][]float64, nnode)}
	for j := 0; j < nnode; j++ {
		o.test[j] = rnd.Float64(0.1, 1.0)
		o.grad[j] = utl.Alloc(nnode, ndim)
		for i := 0; i < nnode; i++ {
			for k := 0; k < ndim; k++ {
				o.grad[j][i][k] = rnd.Float64(-2, 2)
			}
		}
	}
	return
}

// newDict returns a dictator with variables ["v0", ..., "v{P-1}", "aux"] where "aux" is not coupled
func newDict(nvar, nphases int) *dict.Dictator {
	var names []string
	for p := 0; p < nvar; p++ {
		names = append(names, io.Sf("v%d", p))
	}
	d, err := dict.New(append(names, "aux"), names, nphases)
	if err != nil {
		panic(err)
	}
	return d
}

// affine holds a quantity that varies linearly with the nodal values of the coupled variables
//  f(w) = f0 + Σ_p a_p (w_p - w0_p)
type affine struct {
	f0  float64
	old float64
	a   []float64
}

func newAffine(nvar int, lo, hi float64) (o affine) {
	o.f0 = rnd.Float64(lo, hi)
	o.old = rnd.Float64(lo, hi)
	o.a = make([]float64, nvar)
	for p := 0; p < nvar; p++ {
		o.a[p] = rnd.Float64(-0.5, 0.5)
	}
	return
}

func (o affine) at(w []float64) (f float64) {
	f = o.f0
	for p, a := range o.a {
		f += a * w[p]
	}
	return
}

// synthetic generates snapshots @ node i from nodal values w (with w0 = 0)
//  porosity: φ(w) = φ0 + Σ_p (∂φ/∂u_p + ∂φ/∂(∇u_p)・∇φ_i(x_i)) w_p
type synthetic struct {
	nvar, ndim int
	gradii     []float64   // ∇φ_i @ node i
	φ          affine      // ∂φ/∂u part
	dφg        [][]float64 // [nvar][ndim] ∂φ/∂(∇u)
	erock      affine
	ρ, s, u    []affine // [nph]
}

func newSynthetic(nvar, ndim, nphases int, gradii []float64) (o *synthetic) {
	o = &synthetic{nvar: nvar, ndim: ndim, gradii: gradii}
	o.φ = newAffine(nvar, 0.1, 0.4)
	o.dφg = utl.Alloc(nvar, ndim)
	for p := 0; p < nvar; p++ {
		for k := 0; k < ndim; k++ {
			o.dφg[p][k] = rnd.Float64(-0.1, 0.1)
		}
	}
	o.erock = newAffine(nvar, 1, 3)
	for α := 0; α < nphases; α++ {
		o.ρ = append(o.ρ, newAffine(nvar, 0.5, 1.5))
		o.s = append(o.s, newAffine(nvar, 0.2, 1.0))
		o.u = append(o.u, newAffine(nvar, 0.5, 2.0))
	}
	return
}

// snapshot returns the nodal snapshot corresponding to w
func (o *synthetic) snapshot(w []float64) *fields.Node {
	nph := len(o.ρ)
	n := fields.NewNode(o.nvar, o.ndim, nph)
	n.Porosity = o.φ.at(w)
	n.PorosityOld = o.φ.old
	for p := 0; p < o.nvar; p++ {
		for k := 0; k < o.ndim; k++ {
			n.Porosity += o.dφg[p][k] * o.gradii[k] * w[p]
			n.DporosityDgradvar[p][k] = o.dφg[p][k]
		}
		n.DporosityDvar[p] = o.φ.a[p]
		n.DrockEnergyDvar[p] = o.erock.a[p]
	}
	n.RockEnergy = o.erock.at(w)
	n.RockEnergyOld = o.erock.old
	for α := 0; α < nph; α++ {
		f := n.Fluid
		f.Density[α], f.DensityOld[α] = o.ρ[α].at(w), o.ρ[α].old
		f.Saturation[α], f.SaturationOld[α] = o.s[α].at(w), o.s[α].old
		f.Energy[α], f.EnergyOld[α] = o.u[α].at(w), o.u[α].old
		copy(f.DdensityDvar[α], o.ρ[α].a)
		copy(f.DsaturationDvar[α], o.s[α].a)
		copy(f.DenergyDvar[α], o.u[α].a)
	}
	return n
}

// scalarNode returns a snapshot with the given scalar values and no derivatives
func scalarNode(nvar, ndim int, φ, φold, erock, erockOld float64, ρ, ρold, s, sold, u, uold []float64) *fields.Node {
	n := fields.NewNode(nvar, ndim, len(ρ))
	n.Porosity, n.PorosityOld = φ, φold
	n.RockEnergy, n.RockEnergyOld = erock, erockOld
	if n.Fluid != nil {
		copy(n.Fluid.Density, ρ)
		copy(n.Fluid.DensityOld, ρold)
		copy(n.Fluid.Saturation, s)
		copy(n.Fluid.SaturationOld, sold)
		copy(n.Fluid.Energy, u)
		copy(n.Fluid.EnergyOld, uold)
	}
	return n
}

// randomize fills all values and derivatives of a snapshot with random numbers
func randomize(n *fields.Node) {
	fill := func(a []float64, lo, hi float64) {
		for k := range a {
			a[k] = rnd.Float64(lo, hi)
		}
	}
	n.Porosity, n.PorosityOld = rnd.Float64(0, 1), rnd.Float64(0, 1)
	n.RockEnergy, n.RockEnergyOld = rnd.Float64(-10, 10), rnd.Float64(-10, 10)
	fill(n.DporosityDvar, -1, 1)
	fill(n.DrockEnergyDvar, -1, 1)
	for _, g := range n.DporosityDgradvar {
		fill(g, -1, 1)
	}
	if f := n.Fluid; f != nil {
		for _, a := range [][]float64{f.Density, f.DensityOld, f.Saturation, f.SaturationOld, f.Energy, f.EnergyOld} {
			fill(a, 0, 10)
		}
		for _, d := range [][][]float64{f.DdensityDvar, f.DsaturationDvar, f.DenergyDvar} {
			for _, a := range d {
				fill(a, -1, 1)
			}
		}
	}
}
