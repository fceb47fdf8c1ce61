// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thermal

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Matrix implements a rock matrix with constant density and specific heat capacity
//
//   e = rho・cp・T
//
type Matrix struct {
	Rho float64 // density of solids
	Cp  float64 // specific heat capacity of solids
}

// add model to factory
func init() {
	allocators["matrix"] = func() Model { return new(Matrix) }
}

// Init initialises this structure
func (o *Matrix) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "rho":
			o.Rho = p.V
		case "cp":
			o.Cp = p.V
		default:
			return chk.Err("matrix: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Rho < 0 || o.Cp < 0 {
		return chk.Err("matrix: density and heat capacity must be non-negative. rho=%g, cp=%g are invalid\n", o.Rho, o.Cp)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Matrix) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "rho", V: 2650},
			&dbf.P{N: "cp", V: 800},
		}
	}
	return dbf.Params{
		&dbf.P{N: "rho", V: o.Rho},
		&dbf.P{N: "cp", V: o.Cp},
	}
}

// Energy computes the energy per unit volume of solids
func (o Matrix) Energy(T float64) (e, dedT float64) {
	dedT = o.Rho * o.Cp
	return dedT * T, dedT
}
