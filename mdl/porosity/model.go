// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package porosity implements models for the porosity of the porous skeleton
package porosity

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for porosity models
//  Calc computes the porosity φ given temperature T and volumetric strain εv
//  and the derivatives ∂φ/∂T and ∂φ/∂εv
type Model interface {
	Init(prms dbf.Params) error                  // initialises model
	GetPrms(example bool) dbf.Params             // gets (an example) of parameters
	Calc(T, εv float64) (φ, dφdT, dφdεv float64) // computes porosity and derivatives
	Phi0() float64                               // returns the reference porosity
}

// New porosity model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'porosity' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// checkPhi0 checks the reference porosity
func checkPhi0(name string, φ0 float64) error {
	if φ0 < 0 || φ0 > 1 {
		return chk.Err("%s: porosity must be within [0, 1]. phi0 = %g is invalid\n", name, φ0)
	}
	return nil
}
