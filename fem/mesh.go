// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Vertex holds vertex data
type Vertex struct {
	Id int       // id
	C  []float64 // coordinates (size==ndim)
}

// Cell holds cell data
type Cell struct {
	Id    int    // id
	Type  string // geometry type; e.g. "lin2"
	Verts []int  // vertices
}

// Mesh holds a structured mesh
type Mesh struct {
	Ndim  int       // space dimension
	Verts []*Vertex // vertices
	Cells []*Cell   // cells
}

// NewMesh generates a structured mesh
//  geo == "lin2": nx cells along [0, lx]
//  geo == "qua4": nx × ny cells over [0, lx] × [0, ly]; vertices numbered row by row
func NewMesh(geo string, nx, ny int, lx, ly float64) (o *Mesh, err error) {
	if nx < 1 || lx <= 0 {
		return nil, chk.Err("mesh: nx ≥ 1 and lx > 0 are required. nx=%d, lx=%g are invalid\n", nx, lx)
	}
	o = new(Mesh)
	X := utl.LinSpace(0, lx, nx+1)
	switch geo {
	case "lin2":
		o.Ndim = 1
		for i, x := range X {
			o.Verts = append(o.Verts, &Vertex{Id: i, C: []float64{x}})
		}
		for e := 0; e < nx; e++ {
			o.Cells = append(o.Cells, &Cell{Id: e, Type: geo, Verts: []int{e, e + 1}})
		}
	case "qua4":
		if ny < 1 || ly <= 0 {
			return nil, chk.Err("mesh: ny ≥ 1 and ly > 0 are required. ny=%d, ly=%g are invalid\n", ny, ly)
		}
		o.Ndim = 2
		Y := utl.LinSpace(0, ly, ny+1)
		for j, y := range Y {
			for i, x := range X {
				o.Verts = append(o.Verts, &Vertex{Id: i + j*(nx+1), C: []float64{x, y}})
			}
		}
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				v0 := i + j*(nx+1)
				o.Cells = append(o.Cells, &Cell{Id: len(o.Cells), Type: geo, Verts: []int{v0, v0 + 1, v0 + nx + 2, v0 + nx + 1}})
			}
		}
	default:
		return nil, chk.Err("mesh: geometry %q is not available\n", geo)
	}
	return
}
