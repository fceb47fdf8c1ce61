// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the contract of residual/Jacobian kernels evaluated at element nodes
package ele

import (
	"github.com/cpmech/porflow/fields"
)

// Context defines what the element being evaluated must provide to kernels
type Context interface {
	Dt() float64                // current time increment
	Test(i int) float64         // test function i @ current evaluation point
	GradPhi(j, i int) []float64 // [ndim] gradient of trial function j @ node i
}

// Kernel defines what all kernels must implement
//  Note: kernels hold no state related to nodes or time steps; thus they can be shared by goroutines
type Kernel interface {

	// information
	Variable() int // number of the variable whose equation receives this kernel's contribution

	// called for each node (i) and each node-node pair (i,j)
	Residual(ctx Context, fp fields.Provider, i int) float64                 // residual contribution @ node i
	Jacobian(ctx Context, fp fields.Provider, i, j int) float64              // ∂R_i/∂(own variable)_j
	OffDiagJacobian(ctx Context, fp fields.Provider, i, j, jvar int) float64 // ∂R_i/∂(jvar)_j
}
