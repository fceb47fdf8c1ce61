// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/porflow/fields"
	"github.com/cpmech/porflow/shp"
)

// Element holds the geometry of a cell computed once before any assembly
type Element struct {
	Cell  *Cell         // cell
	X     [][]float64   // [ndim][nverts] coordinates
	S     [][]float64   // [nip][nverts] shape functions @ integration points
	Coef  []float64     // [nip] weight × det(Jacobian) @ integration points
	Gnode [][][]float64 // [nverts(i)][nverts(j)][ndim] gradient of shape function j @ vertex i
}

// NewElement computes geometry data of cell
func NewElement(cell *Cell, msh *Mesh) (o *Element, err error) {

	// shape structure
	shape := shp.Get(cell.Type, 1)
	if shape == nil {
		return nil, chk.Err("cannot find shape type == %q\n", cell.Type)
	}
	if shape.Gndim != msh.Ndim {
		return nil, chk.Err("shape %q cannot be used in %dD meshes\n", cell.Type, msh.Ndim)
	}

	// coordinates
	o = &Element{Cell: cell}
	nverts := shape.Nverts
	o.X = utl.Alloc(msh.Ndim, nverts)
	for m, v := range cell.Verts {
		for i := 0; i < msh.Ndim; i++ {
			o.X[i][m] = msh.Verts[v].C[i]
		}
	}

	// integration points
	nip := len(shape.Ips)
	o.S = utl.Alloc(nip, nverts)
	o.Coef = make([]float64, nip)
	for idx, ip := range shape.Ips {
		err = shape.CalcAtIp(o.X, ip, true)
		if err != nil {
			return nil, chk.Err("cell %d: %v", cell.Id, err)
		}
		copy(o.S[idx], shape.S)
		o.Coef[idx] = ip[3] * shape.J
	}

	// gradients @ vertices
	o.Gnode = make([][][]float64, nverts)
	for i := 0; i < nverts; i++ {
		err = shape.CalcAtNode(o.X, i)
		if err != nil {
			return nil, chk.Err("cell %d: %v", cell.Id, err)
		}
		o.Gnode[i] = utl.Alloc(nverts, msh.Ndim)
		for j := 0; j < nverts; j++ {
			copy(o.Gnode[i][j], shape.G[j])
		}
	}
	return
}

// elemContext implements ele.Context for one element @ one integration point
type elemContext struct {
	dt   float64
	test []float64     // shape functions @ integration point
	grad [][][]float64 // Element.Gnode
}

func (o *elemContext) Dt() float64                { return o.dt }
func (o *elemContext) Test(i int) float64         { return o.test[i] }
func (o *elemContext) GradPhi(j, i int) []float64 { return o.grad[i][j] }

// elemFields computes the nodal snapshots of element using the element-local gradient of displacements
func (o *Domain) elemFields(e *Element) (fp fields.Nodes) {
	nverts := len(e.Cell.Verts)
	fp = make(fields.Nodes, nverts)
	disp := o.Mats.Roles.Displacements
	for i, v := range e.Cell.Verts {
		a, b := v*o.Nvar, (v+1)*o.Nvar
		var gradu, graduOld [][]float64
		if len(disp) > 0 {
			gradu = utl.Alloc(o.Msh.Ndim, o.Msh.Ndim)
			graduOld = utl.Alloc(o.Msh.Ndim, o.Msh.Ndim)
			for d, vu := range disp {
				for j, w := range e.Cell.Verts {
					for k := 0; k < o.Msh.Ndim; k++ {
						gradu[d][k] += o.Y[o.Eq(w, vu)] * e.Gnode[i][j][k]
						graduOld[d][k] += o.Yold[o.Eq(w, vu)] * e.Gnode[i][j][k]
					}
				}
			}
		}
		fp[i] = o.Mats.Calc(o.Y[a:b], o.Yold[a:b], gradu, graduOld)
	}
	return
}
