// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds material data
type Material struct {
	Type string     `json:"type"` // name of model; e.g. "tm", "matrix", "vg"
	Prms dbf.Params `json:"prms"` // prms holds all model parameters for this material
}

// Phase holds fluid phase data
type Phase struct {
	Name string     `json:"name"` // name of phase; e.g. "water", "gas"
	Prms dbf.Params `json:"prms"` // parameters of fluid model
}

// String returns a summary of material data
func (o *Material) String() string {
	if o == nil {
		return "<none>"
	}
	return io.Sf("%s with %d parameters", o.Type, len(o.Prms))
}
