// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements models for fluid density and internal energy
package fluid

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model implements a model to compute the intrinsic density (R) and the specific
// internal energy (u) of a fluid phase. The model is:
//   R(p) = R0 + C・(p - p0)   thus   dR/dp = C
//   u(T) = cv・(T - T0)       thus   du/dT = cv
type Model struct {

	// material data
	R0  float64 // intrinsic density corresponding to p0
	P0  float64 // pressure corresponding to R0
	C   float64 // compressibility coefficient; e.g. R0/Kbulk or M/(R・θ)
	Cv  float64 // specific heat capacity at constant volume
	T0  float64 // reference temperature corresponding to zero internal energy
	Gas bool    // is gas instead of liquid?
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "r0":
			o.R0 = p.V
		case "p0":
			o.P0 = p.V
		case "c":
			o.C = p.V
		case "cv":
			o.Cv = p.V
		case "t0":
			o.T0 = p.V
		case "gas":
			o.Gas = p.V > 0
		default:
			return chk.Err("fluid: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.R0 <= 0 {
		return chk.Err("fluid: R0 must be positive. R0 = %g is invalid\n", o.R0)
	}
	if o.C < 0 {
		return chk.Err("fluid: compressibility coefficient must be non-negative. C = %g is invalid\n", o.C)
	}
	return
}

// GetPrms gets (an example of) parameters
//  Input:
//   example -- returns example of parameters; othewise returs current parameters
//  Note:
//   Gas variable is used to return dry air properties instead of water
//  Units: density [kg/m³], pressure [Pa], energy [J/kg], temperature [K]
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		if o.Gas {
			return dbf.Params{ // dry air
				&dbf.P{N: "R0", V: 1.2},
				&dbf.P{N: "P0", V: 1e5},
				&dbf.P{N: "C", V: 1.2e-5},
				&dbf.P{N: "cv", V: 718},
				&dbf.P{N: "T0", V: 273.15},
				&dbf.P{N: "gas", V: 1},
			}
		}
		return dbf.Params{ // water
			&dbf.P{N: "R0", V: 1000},
			&dbf.P{N: "P0", V: 0},
			&dbf.P{N: "C", V: 4.5e-7},
			&dbf.P{N: "cv", V: 4180},
			&dbf.P{N: "T0", V: 273.15},
			&dbf.P{N: "gas", V: 0},
		}
	}
	var gas float64
	if o.Gas {
		gas = 1
	}
	return dbf.Params{
		&dbf.P{N: "R0", V: o.R0},
		&dbf.P{N: "P0", V: o.P0},
		&dbf.P{N: "C", V: o.C},
		&dbf.P{N: "cv", V: o.Cv},
		&dbf.P{N: "T0", V: o.T0},
		&dbf.P{N: "gas", V: gas},
	}
}

// Density computes the intrinsic density and its derivative w.r.t pressure
func (o Model) Density(p float64) (R, dRdp float64) {
	return o.R0 + o.C*(p-o.P0), o.C
}

// Energy computes the specific internal energy and its derivative w.r.t temperature
func (o Model) Energy(T float64) (u, dudT float64) {
	return o.Cv * (T - o.T0), o.Cv
}
