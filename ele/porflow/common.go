// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package porflow implements lumped (nodal) time-derivative kernels for non-isothermal porous flow
package porflow

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/porflow/dict"
	"github.com/cpmech/porflow/ele"
	"github.com/cpmech/porflow/fields"
)

// lumped holds data shared by all lumped time-derivative kernels
type lumped struct {
	Dict *dict.Dictator // variables' registry
	Var  int            // number of the variable whose equation receives the contributions
}

// Variable returns the number of the kernel's variable
func (o *lumped) Variable() int { return o.Var }

// nodal returns the snapshot at node i after checking its sizes
//  Note: the space dimension is given by the gradient of the trial function i @ node i
func (o *lumped) nodal(ctx ele.Context, fp fields.Provider, i int) *fields.Node {
	n := fp.Nodal(i)
	if n == nil {
		chk.Panic("nodal snapshot at node %d is not available", i)
	}
	n.Check(o.Dict.NumPhases(), o.Dict.NumVariables(), len(ctx.GradPhi(i, i)))
	return n
}

// timeIncrement returns Δt or panics if it is not positive
func timeIncrement(ctx ele.Context) (dt float64) {
	dt = ctx.Dt()
	if !(dt > 0) {
		chk.Panic("time increment must be positive. Δt = %g is invalid", dt)
	}
	return
}
