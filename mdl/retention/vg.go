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

// VanGen implements van Genuchten's model
//   sl(pc) = slmin + (slmax - slmin)・(1 + (α・pc)ⁿ)⁻ᵐ
type VanGen struct {

	// parameters
	α, m, n float64 // parameters
	slmin   float64 // minimum sl
	slmax   float64 // maximum sl
	pcmin   float64 // pc limit to consider zero slope
}

// add model to factory
func init() {
	allocators["vg"] = func() Model { return new(VanGen) }
}

// Init initialises model
func (o *VanGen) Init(prms dbf.Params) (err error) {
	o.pcmin, o.slmax = 1e-3, 1.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "alp":
			o.α = p.V
		case "m":
			o.m = p.V
		case "n":
			o.n = p.V
		case "slmin":
			o.slmin = p.V
		case "slmax":
			o.slmax = p.V
		case "pcmin":
			o.pcmin = p.V
		default:
			return chk.Err("vg: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.α <= 0 || o.m <= 0 || o.n <= 0 {
		return chk.Err("vg: parameters alp, m and n must be positive. alp=%g, m=%g, n=%g are invalid\n", o.α, o.m, o.n)
	}
	if o.slmin < 0 || o.slmin > o.slmax || o.slmax > 1 {
		return chk.Err("vg: saturation limits must satisfy 0 ≤ slmin ≤ slmax ≤ 1. slmin=%g, slmax=%g are invalid\n", o.slmin, o.slmax)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o VanGen) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "alp", V: 0.08},
			&dbf.P{N: "m", V: 4},
			&dbf.P{N: "n", V: 4},
			&dbf.P{N: "slmin", V: 0.01},
			&dbf.P{N: "slmax", V: 1.0},
			&dbf.P{N: "pcmin", V: 1e-3},
		}
	}
	return dbf.Params{
		&dbf.P{N: "alp", V: o.α},
		&dbf.P{N: "m", V: o.m},
		&dbf.P{N: "n", V: o.n},
		&dbf.P{N: "slmin", V: o.slmin},
		&dbf.P{N: "slmax", V: o.slmax},
		&dbf.P{N: "pcmin", V: o.pcmin},
	}
}

// SlMin returns sl_min
func (o VanGen) SlMin() float64 {
	return o.slmin
}

// SlMax returns sl_max
func (o VanGen) SlMax() float64 {
	return o.slmax
}

// Sl computes sl directly from pc
func (o VanGen) Sl(pc float64) float64 {
	if pc <= o.pcmin {
		return o.slmax
	}
	c := math.Pow(o.α*pc, o.n)
	fac := o.slmax - o.slmin
	return o.slmin + fac*math.Pow(1+c, -o.m)
}

// Cc computes Cc(pc) := dsl/dpc
func (o VanGen) Cc(pc float64) float64 {
	if pc <= o.pcmin {
		return 0
	}
	c := math.Pow(o.α*pc, o.n)
	fac := o.slmax - o.slmin
	return -fac * c * math.Pow(c+1.0, -o.m-1.0) * o.m * o.n / pc
}
