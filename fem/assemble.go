// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"context"

	"github.com/james-bowman/sparse"
	"golang.org/x/sync/errgroup"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// elemResult holds the local contributions of one element
type elemResult struct {
	fe [][]float64   // [nkernels][nverts] residuals
	Ke [][][]float64 // [nkernels][nverts][nverts*nvar] Jacobians
}

// Assemble computes the global residual vector and, optionally, the global Jacobian matrix
//   fb[I]    = R_I = Σ_e Σ_ip coef・kernel.Residual    with I = Eq(vertex, kernel variable)
//   Kb[I][J] = ∂R_I/∂y_J
//  Elements are evaluated concurrently; their contributions are then added in element order
func (o *Domain) Assemble(ctx context.Context, withK bool) (fb []float64, Kb *sparse.DOK, err error) {

	// evaluate elements
	results := make([]*elemResult, len(o.Elems))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Nthreads)
	for idx, e := range o.Elems {
		idx, e := idx, e
		g.Go(func() (err error) {
			if err = gctx.Err(); err != nil {
				return
			}
			defer func() {
				if r := recover(); r != nil {
					err = chk.Err("cell %d: %v", e.Cell.Id, r)
				}
			}()
			results[idx] = o.evalElement(e, withK)
			return
		})
	}
	if err = g.Wait(); err != nil {
		return nil, nil, err
	}

	// add contributions
	fb = make([]float64, o.Ny)
	if withK {
		Kb = sparse.NewDOK(o.Ny, o.Ny)
	}
	for idx, e := range o.Elems {
		res := results[idx]
		for k, kern := range o.Kernels {
			v := kern.Variable()
			for i, vi := range e.Cell.Verts {
				I := o.Eq(vi, v)
				fb[I] += res.fe[k][i]
				if !withK {
					continue
				}
				for j, vj := range e.Cell.Verts {
					for jvar := 0; jvar < o.Nvar; jvar++ {
						val := res.Ke[k][i][j*o.Nvar+jvar]
						if val == 0 {
							continue
						}
						J := o.Eq(vj, jvar)
						Kb.Set(I, J, Kb.At(I, J)+val)
					}
				}
			}
		}
	}
	return
}

// evalElement computes the local contributions of element
func (o *Domain) evalElement(e *Element, withK bool) (res *elemResult) {

	// nodal snapshots
	fp := o.elemFields(e)

	// allocate results
	nverts := len(e.Cell.Verts)
	res = &elemResult{fe: utl.Alloc(len(o.Kernels), nverts)}
	if withK {
		res.Ke = make([][][]float64, len(o.Kernels))
		for k := range o.Kernels {
			res.Ke[k] = utl.Alloc(nverts, nverts*o.Nvar)
		}
	}

	// for each integration point
	ctx := &elemContext{dt: o.Dt, grad: e.Gnode}
	for ip, coef := range e.Coef {
		ctx.test = e.S[ip]
		for k, kern := range o.Kernels {
			v := kern.Variable()
			for i := 0; i < nverts; i++ {
				res.fe[k][i] += coef * kern.Residual(ctx, fp, i)
				if !withK {
					continue
				}
				for j := 0; j < nverts; j++ {
					for jvar := 0; jvar < o.Nvar; jvar++ {
						if jvar == v {
							res.Ke[k][i][j*o.Nvar+jvar] += coef * kern.Jacobian(ctx, fp, i, j)
						} else {
							res.Ke[k][i][j*o.Nvar+jvar] += coef * kern.OffDiagJacobian(ctx, fp, i, j, jvar)
						}
					}
				}
			}
		}
	}
	return
}
