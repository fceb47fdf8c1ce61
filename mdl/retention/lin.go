// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Lin implements a linear retetion model: sl(pc) := slmax - λ*(pc - pcae)
type Lin struct {

	// parameters
	λ     float64 // slope coefficient
	pcae  float64 // air-entry pressure
	slmin float64 // residual (minimum) saturation
	slmax float64 // maximum saturation

	// derived
	pcres float64 // residual pc corresponding to slmin
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(Lin) }
}

// Init initialises model
func (o *Lin) Init(prms dbf.Params) (err error) {
	o.slmax = 1.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "lam":
			o.λ = p.V
		case "pcae":
			o.pcae = p.V
		case "slmin":
			o.slmin = p.V
		case "slmax":
			o.slmax = p.V
		default:
			return chk.Err("lin: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.slmin < 0 || o.slmin > o.slmax || o.slmax > 1 {
		return chk.Err("lin: saturation limits must satisfy 0 ≤ slmin ≤ slmax ≤ 1. slmin=%g, slmax=%g are invalid\n", o.slmin, o.slmax)
	}
	if o.λ < 1e-13 {
		o.λ = 0
		o.pcres = math.MaxFloat64
	} else {
		o.pcres = o.pcae + (o.slmax-o.slmin)/o.λ
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Lin) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "lam", V: 0.5},
			&dbf.P{N: "pcae", V: 0.2},
			&dbf.P{N: "slmin", V: 0.1},
			&dbf.P{N: "slmax", V: 1.0},
		}
	}
	return dbf.Params{
		&dbf.P{N: "lam", V: o.λ},
		&dbf.P{N: "pcae", V: o.pcae},
		&dbf.P{N: "slmin", V: o.slmin},
		&dbf.P{N: "slmax", V: o.slmax},
	}
}

// SlMin returns sl_min
func (o Lin) SlMin() float64 {
	return o.slmin
}

// SlMax returns sl_max
func (o Lin) SlMax() float64 {
	return o.slmax
}

// Sl computes sl directly from pc
func (o Lin) Sl(pc float64) float64 {
	if pc <= o.pcae {
		return o.slmax
	}
	if pc >= o.pcres {
		return o.slmin
	}
	return o.slmax - o.λ*(pc-o.pcae)
}

// Cc computes Cc(pc) := dsl/dpc
func (o Lin) Cc(pc float64) float64 {
	if pc <= o.pcae || pc >= o.pcres {
		return 0
	}
	return -o.λ
}
