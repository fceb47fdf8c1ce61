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

// MassTimeDerivative implements the lumped time derivative of the fluid mass density
//
//         ∂  ⎛ nph            ⎞
//   R_i = ── ⎜  Σ  φ ρ_α s_α  ⎟     evaluated @ node i
//         ∂t ⎝ α=1            ⎠
//
//  Without phases, both residual and Jacobian are zero
type MassTimeDerivative struct {
	lumped
}

// register kernel
func init() {
	ele.SetAllocator("mass-time-derivative", func(d *dict.Dictator, variable int) ele.Kernel {
		return NewMassTimeDerivative(d, variable)
	})
}

// NewMassTimeDerivative returns a new kernel acting on the equation of variable number 'variable'
func NewMassTimeDerivative(d *dict.Dictator, variable int) *MassTimeDerivative {
	return &MassTimeDerivative{lumped{Dict: d, Var: variable}}
}

// Residual computes the contribution to the residual @ node i
func (o *MassTimeDerivative) Residual(ctx ele.Context, fp fields.Provider, i int) float64 {
	dt := timeIncrement(ctx)
	n := o.nodal(ctx, fp, i)
	var mass, massOld float64
	if f := n.Fluid; f != nil {
		for α := range f.Density {
			mass += f.Density[α] * f.Saturation[α] * n.Porosity
			massOld += f.DensityOld[α] * f.SaturationOld[α] * n.PorosityOld
		}
	}
	return ctx.Test(i) * (mass - massOld) / dt
}

// Jacobian computes the derivative of R_i w.r.t the kernel's own variable @ node j
func (o *MassTimeDerivative) Jacobian(ctx ele.Context, fp fields.Provider, i, j int) float64 {
	pvar, ok := o.Dict.Lookup(o.Var)
	if !ok {
		return 0
	}
	return o.jac(ctx, fp, i, j, pvar)
}

// OffDiagJacobian computes the derivative of R_i w.r.t variable jvar @ node j
func (o *MassTimeDerivative) OffDiagJacobian(ctx ele.Context, fp fields.Provider, i, j, jvar int) float64 {
	pvar, ok := o.Dict.Lookup(jvar)
	if !ok {
		return 0
	}
	return o.jac(ctx, fp, i, j, pvar)
}

// jac computes ∂R_i/∂u_j where u is the variable with coupled index pvar
func (o *MassTimeDerivative) jac(ctx ele.Context, fp fields.Provider, i, j, pvar int) float64 {
	dt := timeIncrement(ctx)
	n := o.nodal(ctx, fp, i)
	f := n.Fluid
	if f == nil {
		return 0
	}
	dφg := floats.Dot(n.DporosityDgradvar[pvar], ctx.GradPhi(j, i))
	var dmass float64
	for α := range f.Density {
		dmass += f.Density[α] * f.Saturation[α] * dφg
	}
	if i != j {
		return ctx.Test(i) * dmass / dt
	}
	φ := n.Porosity
	dφ := n.DporosityDvar[pvar]
	for α := range f.Density {
		dmass += f.DdensityDvar[α][pvar] * f.Saturation[α] * φ
		dmass += f.Density[α] * f.DsaturationDvar[α][pvar] * φ
		dmass += f.Density[α] * f.Saturation[α] * dφ
	}
	return ctx.Test(i) * dmass / dt
}
