// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porosity

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ThermoMech implements the porosity of thermo-mechanical problems
//
//   φ = b + (φ0 - b)・exp(-εv + α・T)
//
//   ∂φ/∂T  =  α・(φ - b)
//   ∂φ/∂εv = -(φ - b)
//
//  where b is Biot's coefficient, α is the thermal expansion coefficient of
//  the skeleton and εv = tr(ε) = ∇・u is the volumetric strain
type ThermoMech struct {
	φ0   float64 // porosity at zero strain and zero temperature
	Biot float64 // Biot's coefficient
	Alp  float64 // thermal expansion coefficient
}

// add model to factory
func init() {
	allocators["tm"] = func() Model { return new(ThermoMech) }
}

// Init initialises this structure
func (o *ThermoMech) Init(prms dbf.Params) (err error) {
	o.Biot = 1
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "phi0":
			o.φ0 = p.V
		case "biot":
			o.Biot = p.V
		case "alp":
			o.Alp = p.V
		default:
			return chk.Err("tm: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Biot < 0 || o.Biot > 1 {
		return chk.Err("tm: Biot's coefficient must be within [0, 1]. biot = %g is invalid\n", o.Biot)
	}
	return checkPhi0("tm", o.φ0)
}

// GetPrms gets (an example) of parameters
func (o ThermoMech) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "phi0", V: 0.1},
			&dbf.P{N: "biot", V: 0.7},
			&dbf.P{N: "alp", V: 0.5},
		}
	}
	return dbf.Params{
		&dbf.P{N: "phi0", V: o.φ0},
		&dbf.P{N: "biot", V: o.Biot},
		&dbf.P{N: "alp", V: o.Alp},
	}
}

// Calc computes porosity and derivatives
func (o ThermoMech) Calc(T, εv float64) (φ, dφdT, dφdεv float64) {
	φ = o.Biot + (o.φ0-o.Biot)*math.Exp(-εv+o.Alp*T)
	dφdT = o.Alp * (φ - o.Biot)
	dφdεv = -(φ - o.Biot)
	return
}

// Phi0 returns the reference porosity
func (o ThermoMech) Phi0() float64 {
	return o.φ0
}
