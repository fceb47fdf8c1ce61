// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fields implements snapshots of nodal (lumped) porous-flow quantities and their derivatives
package fields

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Provider returns the snapshot of quantities at local node i of the element being evaluated
type Provider interface {
	Nodal(i int) *Node
}

// Node holds nodal quantities at the current and previous time steps
//  Note: derivatives are indexed by the coupled (porous-flow) index of each variable
type Node struct {

	// porosity
	Porosity          float64     // φ
	PorosityOld       float64     // φ @ previous time step
	DporosityDvar     []float64   // [nvar] ∂φ/∂u
	DporosityDgradvar [][]float64 // [nvar][ndim] ∂φ/∂(∇u)

	// matrix (rock) internal energy
	RockEnergy      float64   // e_rock
	RockEnergyOld   float64   // e_rock @ previous time step
	DrockEnergyDvar []float64 // [nvar] ∂e_rock/∂u

	// fluid phases; nil if there are no phases
	Fluid *Fluid
}

// Fluid holds phase quantities at a node
type Fluid struct {
	Density         []float64   // [nph] ρ
	DensityOld      []float64   // [nph] ρ @ previous time step
	DdensityDvar    [][]float64 // [nph][nvar] ∂ρ/∂u
	Saturation      []float64   // [nph] s
	SaturationOld   []float64   // [nph] s @ previous time step
	DsaturationDvar [][]float64 // [nph][nvar] ∂s/∂u
	Energy          []float64   // [nph] phase internal energy
	EnergyOld       []float64   // [nph] phase internal energy @ previous time step
	DenergyDvar     [][]float64 // [nph][nvar] ∂(internal energy)/∂u
}

// NewNode allocates a zeroed snapshot. Fluid is only allocated if nphases > 0
func NewNode(nvar, ndim, nphases int) (o *Node) {
	o = new(Node)
	o.DporosityDvar = make([]float64, nvar)
	o.DporosityDgradvar = utl.Alloc(nvar, ndim)
	o.DrockEnergyDvar = make([]float64, nvar)
	if nphases > 0 {
		o.Fluid = NewFluid(nvar, nphases)
	}
	return
}

// NewFluid allocates zeroed phase quantities
func NewFluid(nvar, nphases int) (o *Fluid) {
	o = new(Fluid)
	o.Density = make([]float64, nphases)
	o.DensityOld = make([]float64, nphases)
	o.DdensityDvar = utl.Alloc(nphases, nvar)
	o.Saturation = make([]float64, nphases)
	o.SaturationOld = make([]float64, nphases)
	o.DsaturationDvar = utl.Alloc(nphases, nvar)
	o.Energy = make([]float64, nphases)
	o.EnergyOld = make([]float64, nphases)
	o.DenergyDvar = utl.Alloc(nphases, nvar)
	return
}

// NumPhases returns the number of phases in this snapshot
func (o *Node) NumPhases() int {
	if o.Fluid == nil {
		return 0
	}
	return len(o.Fluid.Density)
}

// Check panics if the snapshot does not hold exactly nphases phases, nvar derivatives
// and ndim components of each derivative w.r.t gradients
func (o *Node) Check(nphases, nvar, ndim int) {
	if len(o.DporosityDvar) != nvar || len(o.DporosityDgradvar) != nvar || len(o.DrockEnergyDvar) != nvar {
		chk.Panic("nodal snapshot must have %d porosity and rock energy derivatives. %d, %d, %d is incorrect",
			nvar, len(o.DporosityDvar), len(o.DporosityDgradvar), len(o.DrockEnergyDvar))
	}
	for p, g := range o.DporosityDgradvar {
		if len(g) != ndim {
			chk.Panic("derivative of porosity w.r.t gradient of variable %d must have %d components. %d is incorrect", p, ndim, len(g))
		}
	}
	if nphases == 0 {
		if o.Fluid != nil {
			chk.Panic("nodal snapshot must not have fluid data when there are no phases")
		}
		return
	}
	if o.Fluid == nil {
		chk.Panic("nodal snapshot must have fluid data for %d phases", nphases)
	}
	o.Fluid.check(nphases, nvar)
}

// check checks sizes of phase data
func (o *Fluid) check(nphases, nvar int) {
	for _, s := range [][]float64{o.Density, o.DensityOld, o.Saturation, o.SaturationOld, o.Energy, o.EnergyOld} {
		if len(s) != nphases {
			chk.Panic("fluid data must have %d phases. %d is incorrect", nphases, len(s))
		}
	}
	for _, d := range [][][]float64{o.DdensityDvar, o.DsaturationDvar, o.DenergyDvar} {
		if len(d) != nphases {
			chk.Panic("fluid derivatives must have %d phases. %d is incorrect", nphases, len(d))
		}
		for _, row := range d {
			if len(row) != nvar {
				chk.Panic("fluid derivatives must have %d entries. %d is incorrect", nvar, len(row))
			}
		}
	}
}

// Nodes holds the snapshots of all nodes of an element
type Nodes []*Node

// Nodal returns the snapshot at local node i
func (o Nodes) Nodal(i int) *Node { return o[i] }
