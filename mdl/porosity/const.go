// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porosity

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Const implements a constant porosity
type Const struct {
	φ0 float64
}

// add model to factory
func init() {
	allocators["const"] = func() Model { return new(Const) }
}

// Init initialises this structure
func (o *Const) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "phi0":
			o.φ0 = p.V
		default:
			return chk.Err("const: parameter named %q is incorrect\n", p.N)
		}
	}
	return checkPhi0("const", o.φ0)
}

// GetPrms gets (an example) of parameters
func (o Const) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{&dbf.P{N: "phi0", V: 0.3}}
	}
	return dbf.Params{&dbf.P{N: "phi0", V: o.φ0}}
}

// Calc computes porosity and derivatives
func (o Const) Calc(T, εv float64) (φ, dφdT, dφdεv float64) {
	return o.φ0, 0, 0
}

// Phi0 returns the reference porosity
func (o Const) Phi0() float64 {
	return o.φ0
}
