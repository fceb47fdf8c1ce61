// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porflow

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cpmech/porflow/dict"
	"github.com/cpmech/porflow/ele"
	"github.com/cpmech/porflow/fields"
)

// EnergyTimeDerivative implements the lumped time derivative of the heat energy density
//
//         ∂  ⎛                        nph                  ⎞
//   R_i = ── ⎜ (1 - φ) e_rock   +     Σ   φ ρ_α s_α u_α    ⎟     evaluated @ node i
//         ∂t ⎝                        α=1                  ⎠
//
//  where φ is porosity, e_rock is the internal energy of the matrix, and ρ_α, s_α and u_α are
//  density, saturation and internal energy of phase α. The time derivative is computed with
//  backward Euler: R_i = test_i (E_i - E_i^old) / Δt
type EnergyTimeDerivative struct {
	lumped
}

// register kernel
func init() {
	ele.SetAllocator("energy-time-derivative", func(d *dict.Dictator, variable int) ele.Kernel {
		return NewEnergyTimeDerivative(d, variable)
	})
}

// NewEnergyTimeDerivative returns a new kernel acting on the equation of variable number 'variable'
func NewEnergyTimeDerivative(d *dict.Dictator, variable int) *EnergyTimeDerivative {
	return &EnergyTimeDerivative{lumped{Dict: d, Var: variable}}
}

// Residual computes the contribution to the residual @ node i
func (o *EnergyTimeDerivative) Residual(ctx ele.Context, fp fields.Provider, i int) float64 {
	dt := timeIncrement(ctx)
	n := o.nodal(ctx, fp, i)
	energy := (1.0 - n.Porosity) * n.RockEnergy
	energyOld := (1.0 - n.PorosityOld) * n.RockEnergyOld
	if f := n.Fluid; f != nil {
		for α := range f.Density {
			energy += f.Density[α] * f.Saturation[α] * f.Energy[α] * n.Porosity
			energyOld += f.DensityOld[α] * f.SaturationOld[α] * f.EnergyOld[α] * n.PorosityOld
		}
	}
	return ctx.Test(i) * (energy - energyOld) / dt
}

// Jacobian computes the derivative of R_i w.r.t the kernel's own variable @ node j.
// The result is zero if the kernel's variable is not a porous-flow variable
func (o *EnergyTimeDerivative) Jacobian(ctx ele.Context, fp fields.Provider, i, j int) float64 {
	pvar, ok := o.Dict.Lookup(o.Var)
	if !ok {
		return 0
	}
	return o.jac(ctx, fp, i, j, pvar)
}

// OffDiagJacobian computes the derivative of R_i w.r.t variable jvar @ node j.
// The result is zero if jvar is not a porous-flow variable
func (o *EnergyTimeDerivative) OffDiagJacobian(ctx ele.Context, fp fields.Provider, i, j, jvar int) float64 {
	pvar, ok := o.Dict.Lookup(jvar)
	if !ok {
		return 0
	}
	return o.jac(ctx, fp, i, j, pvar)
}

// jac computes ∂R_i/∂u_j where u is the variable with coupled index pvar
func (o *EnergyTimeDerivative) jac(ctx ele.Context, fp fields.Provider, i, j, pvar int) float64 {
	dt := timeIncrement(ctx)
	n := o.nodal(ctx, fp, i)
	f := n.Fluid

	// porosity may depend on gradients of variables, which are not lumped to the nodes
	dφg := floats.Dot(n.DporosityDgradvar[pvar], ctx.GradPhi(j, i))
	denergy := -dφg * n.RockEnergy
	if f != nil {
		for α := range f.Density {
			denergy += f.Density[α] * f.Saturation[α] * f.Energy[α] * dφg
		}
	}
	if i != j {
		return ctx.Test(i) * denergy / dt
	}

	// all other quantities are lumped: non-zero only if i == j
	φ := n.Porosity
	dφ := n.DporosityDvar[pvar]
	denergy += -dφ * n.RockEnergy
	denergy += (1.0 - φ) * n.DrockEnergyDvar[pvar]
	if f != nil {
		var ρ, s, u float64
		for α := range f.Density {
			ρ, s, u = f.Density[α], f.Saturation[α], f.Energy[α]
			denergy += f.DdensityDvar[α][pvar] * s * u * φ
			denergy += ρ * f.DsaturationDvar[α][pvar] * u * φ
			denergy += ρ * s * f.DenergyDvar[α][pvar] * φ
			denergy += ρ * s * u * dφ
		}
	}
	return ctx.Test(i) * denergy / dt
}
