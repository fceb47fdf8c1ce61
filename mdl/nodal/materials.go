// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package nodal computes nodal snapshots of porous media quantities from nodal values of unknowns
package nodal

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/porflow/dict"
	"github.com/cpmech/porflow/fields"
	"github.com/cpmech/porflow/mdl/fluid"
	"github.com/cpmech/porflow/mdl/porosity"
	"github.com/cpmech/porflow/mdl/retention"
	"github.com/cpmech/porflow/mdl/thermal"
)

// Roles holds the variable numbers playing a physical role. Absent roles are -1
type Roles struct {
	Temperature   int   // temperature
	Pressures     []int // [nphases] pressure of each phase
	Displacements []int // [ndim] or empty; displacement components
}

// Materials combines material models to compute nodal snapshots
//  Phases: with two phases, the first one is the liquid (wetting) phase and the
//  second one is the gas phase; i.e. pc = p[1] - p[0], sl = s[0] and sg = s[1] = 1 - sl
type Materials struct {
	Dict      *dict.Dictator   // variable registry
	Ndim      int              // space dimension
	Roles     Roles            // roles of variables
	Porosity  porosity.Model   // porosity model
	Rock      thermal.Model    // rock (matrix) energy model
	Fluids    []*fluid.Model   // [nphases] fluid models
	Retention retention.Model // retention model; required with two phases
}

// New returns a new Materials structure after checking its consistency
func New(d *dict.Dictator, ndim int, roles Roles, por porosity.Model, rock thermal.Model, fluids []*fluid.Model, ret retention.Model) (o *Materials, err error) {
	if d == nil {
		return nil, chk.Err("nodal: variable registry is required\n")
	}
	if por == nil || rock == nil {
		return nil, chk.Err("nodal: porosity and rock energy models are required\n")
	}
	nph := d.NumPhases()
	if nph > 2 {
		return nil, chk.Err("nodal: at most two fluid phases are supported. nphases = %d is invalid\n", nph)
	}
	if len(fluids) != nph {
		return nil, chk.Err("nodal: number of fluid models (%d) must be equal to the number of phases (%d)\n", len(fluids), nph)
	}
	if len(roles.Pressures) != nph {
		return nil, chk.Err("nodal: number of pressure variables (%d) must be equal to the number of phases (%d)\n", len(roles.Pressures), nph)
	}
	if nph == 2 && ret == nil {
		return nil, chk.Err("nodal: retention model is required with two phases\n")
	}
	if len(roles.Displacements) != 0 && len(roles.Displacements) != ndim {
		return nil, chk.Err("nodal: number of displacement variables (%d) must be zero or equal to ndim (%d)\n", len(roles.Displacements), ndim)
	}
	nall := d.NumAllVariables()
	check := func(what string, v int) error {
		if v < -1 || v >= nall {
			return chk.Err("nodal: %s variable number %d is out of range\n", what, v)
		}
		return nil
	}
	if err = check("temperature", roles.Temperature); err != nil {
		return
	}
	for _, v := range roles.Pressures {
		if v < 0 {
			return nil, chk.Err("nodal: pressure variable is required for each phase\n")
		}
		if err = check("pressure", v); err != nil {
			return
		}
	}
	for _, v := range roles.Displacements {
		if v < 0 {
			return nil, chk.Err("nodal: displacement variable is required for each direction\n")
		}
		if err = check("displacement", v); err != nil {
			return
		}
	}
	if nph == 2 && roles.Pressures[0] == roles.Pressures[1] {
		return nil, chk.Err("nodal: liquid and gas pressures must be different variables\n")
	}
	for α, f := range fluids {
		if f == nil {
			return nil, chk.Err("nodal: fluid model of phase %d is missing\n", α)
		}
	}
	return &Materials{d, ndim, roles, por, rock, fluids, ret}, nil
}

// NumPhases returns the number of fluid phases
func (o *Materials) NumPhases() int {
	return o.Dict.NumPhases()
}

// Calc computes the nodal snapshot
//  Input:
//   cur, old       -- [nallvars] current and old values of all variables @ node
//   gradu, graduOld -- [ndim][ndim] current and old displacement gradients ∂u_d/∂x_k @ node;
//                     may be nil if there are no displacement variables
//  Note: input slices are not modified
func (o *Materials) Calc(cur, old []float64, gradu, graduOld [][]float64) (n *fields.Node) {

	// input
	nall := o.Dict.NumAllVariables()
	if len(cur) != nall || len(old) != nall {
		chk.Panic("nodal: number of values (%d, %d) must be equal to the number of variables (%d)\n", len(cur), len(old), nall)
	}
	nvar, nph := o.Dict.NumVariables(), o.NumPhases()
	n = fields.NewNode(nvar, o.Ndim, nph)

	// temperature
	var T, Told float64
	pT, hasT := -1, false
	if o.Roles.Temperature >= 0 {
		T, Told = cur[o.Roles.Temperature], old[o.Roles.Temperature]
		pT, hasT = o.Dict.Lookup(o.Roles.Temperature)
	}

	// porosity
	εv, εvOld := o.volStrain(gradu), o.volStrain(graduOld)
	var dφdT, dφdεv float64
	n.Porosity, dφdT, dφdεv = o.Porosity.Calc(T, εv)
	n.PorosityOld, _, _ = o.Porosity.Calc(Told, εvOld)
	if hasT {
		n.DporosityDvar[pT] = dφdT
	}
	for d, v := range o.Roles.Displacements {
		if p, ok := o.Dict.Lookup(v); ok {
			n.DporosityDgradvar[p][d] = dφdεv
		}
	}

	// rock energy
	var dedT float64
	n.RockEnergy, dedT = o.Rock.Energy(T)
	n.RockEnergyOld, _ = o.Rock.Energy(Told)
	if hasT {
		n.DrockEnergyDvar[pT] = dedT
	}

	// fluids
	if nph == 0 {
		return
	}
	f := n.Fluid
	for α, mdl := range o.Fluids {
		v := o.Roles.Pressures[α]
		var dRdp, dudT float64
		f.Density[α], dRdp = mdl.Density(cur[v])
		f.DensityOld[α], _ = mdl.Density(old[v])
		if p, ok := o.Dict.Lookup(v); ok {
			f.DdensityDvar[α][p] = dRdp
		}
		f.Energy[α], dudT = mdl.Energy(T)
		f.EnergyOld[α], _ = mdl.Energy(Told)
		if hasT {
			f.DenergyDvar[α][pT] = dudT
		}
	}

	// saturations
	if nph == 1 {
		f.Saturation[0], f.SaturationOld[0] = 1, 1
		return
	}
	vl, vg := o.Roles.Pressures[0], o.Roles.Pressures[1]
	pc, pcOld := cur[vg]-cur[vl], old[vg]-old[vl]
	sl, slOld := o.Retention.Sl(pc), o.Retention.Sl(pcOld)
	Cc := o.Retention.Cc(pc)
	f.Saturation[0], f.SaturationOld[0] = sl, slOld
	f.Saturation[1], f.SaturationOld[1] = 1-sl, 1-slOld
	if p, ok := o.Dict.Lookup(vl); ok {
		f.DsaturationDvar[0][p] += -Cc
		f.DsaturationDvar[1][p] += Cc
	}
	if p, ok := o.Dict.Lookup(vg); ok {
		f.DsaturationDvar[0][p] += Cc
		f.DsaturationDvar[1][p] += -Cc
	}
	return
}

// volStrain computes the volumetric strain εv = Σ_d ∂u_d/∂x_d
func (o *Materials) volStrain(gradu [][]float64) (εv float64) {
	if gradu == nil || len(o.Roles.Displacements) == 0 {
		return
	}
	for d := 0; d < o.Ndim; d++ {
		εv += gradu[d][d]
	}
	return
}
