// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package thermal implements models for the internal energy of the porous skeleton (rock matrix)
package thermal

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for rock energy models
type Model interface {
	Init(prms dbf.Params) error         // initialises model
	GetPrms(example bool) dbf.Params    // gets (an example) of parameters
	Energy(T float64) (e, dedT float64) // computes the energy per unit volume of solids and its derivative
}

// New thermal model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'thermal' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
