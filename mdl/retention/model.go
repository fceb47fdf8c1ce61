// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package retention implements models for liquid retention curves
//  References:
//   [1] Pedroso DM, Sheng D and Zhao, J (2009) The concept of reference curves for constitutive
//       modelling in soil mechanics, Computers and Geotechnics, 36(1-2), 149-165,
//       http://dx.doi.org/10.1016/j.compgeo.2008.01.009
//   [2] van Genuchten MT (1980) A closed-form equation for predicting the hydraulic conductivity
//       of unsaturated soils, Soil Science Society of America Journal, 44(5), 892-898
package retention

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model implements a non-rate liquid retention model (LRM); i.e. sl = sl(pc)
//  Note: the saturation of the non-wetting (gas) phase is sg = 1 - sl
type Model interface {
	Init(prms dbf.Params) error      // initialises retention model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	SlMin() float64                  // returns sl_min
	SlMax() float64                  // returns sl_max
	Sl(pc float64) float64           // computes sl directly from pc
	Cc(pc float64) float64           // computes Cc = ∂sl/∂pc
}

// New returns new liquid retention model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'retention' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
