// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines
package shp

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// constants
const MINDET = 1.0e-14 // minimum determinant allowed for dxdR

// ShpFunc is the shape functions callback function
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Ipoint holds the natural coordinates and weight of an integration point: {r, s, t, w}
type Ipoint []float64

// Shape holds geometry data
type Shape struct {

	// geometry
	Type      string      // name; e.g. "lin2"
	Func      ShpFunc     // shape/derivs function callback function
	Gndim     int         // geometry of shape; e.g. "lin2" => gnd == 1
	Nverts    int         // number of vertices in cell; e.g. "qua4" => 4
	NatCoords [][]float64 // natural coordinates [gndim][nverts]
	Ips       []Ipoint    // default integration points

	// scratchpad: volume
	S    []float64   // [nverts] shape functions
	G    [][]float64 // [nverts][gndim] G == dSdx. derivative of shape function
	J    float64     // Jacobian: determinant of dxdr
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR [][]float64 // [gndim][gndim] derivatives of real coordinates w.r.t natural coordinates
	DRdx [][]float64 // [gndim][gndim] dRdx == inverse(dxdR)
}

// GetCopy returns a new copy of this shape structure
func (o Shape) GetCopy() *Shape {
	p := &Shape{
		Type:      o.Type,
		Func:      o.Func,
		Gndim:     o.Gndim,
		Nverts:    o.Nverts,
		NatCoords: o.NatCoords,
		Ips:       o.Ips,
	}
	p.init_scratchpad()
	return p
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns an existent Shape structure
//  Note: 1) returns nil on errors
//        2) use goroutineId > 0 to get a copy
func Get(geoType string, goroutineId int) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	if goroutineId > 0 {
		return s.GetCopy()
	}
	return s
}

// IpRealCoords returns the real coordinates (y) of an integration point
func (o *Shape) IpRealCoords(x [][]float64, ip Ipoint) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.Func(o.S, o.DSdR, ip, false)
	for i := 0; i < ndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return
}

// CalcAtIp calculates volume data such as S and G at natural coordinate r
//  Input:
//   x[ndim][nverts] -- coordinates matrix of element; ndim must be equal to gndim
//   ip              -- integration point
//  Output:
//   S, DSdR, DxdR, DRdx, G, and J
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, ip, derivs)
	if !derivs {
		return
	}
	if len(x) != o.Gndim {
		return chk.Err("shp: %s requires %d coordinates per vertex. %d is invalid\n", o.Type, o.Gndim, len(x))
	}

	// dxdR := sum_n x * dSdR   =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	for i := 0; i < o.Gndim; i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0.0
			for n := 0; n < o.Nverts; n++ {
				o.DxdR[i][j] += x[i][n] * o.DSdR[n][j]
			}
		}
	}

	// dRdx := inv(dxdR)
	dxdR := mat.NewDense(o.Gndim, o.Gndim, nil)
	for i := 0; i < o.Gndim; i++ {
		dxdR.SetRow(i, o.DxdR[i])
	}
	o.J = mat.Det(dxdR)
	if math.Abs(o.J) < MINDET {
		return chk.Err("shp: %s has an invalid determinant of Jacobian; det = %g\n", o.Type, o.J)
	}
	var dRdx mat.Dense
	if err = dRdx.Inverse(dxdR); err != nil {
		return chk.Err("shp: cannot invert Jacobian of %s: %v\n", o.Type, err)
	}
	for i := 0; i < o.Gndim; i++ {
		mat.Row(o.DRdx[i], i, &dRdx)
	}

	// G == dSdx := dSdR * dRdx  =>  dS^m/dx_j := sum_i dS^m/dR_i * dR_i/dx_j
	for m := 0; m < o.Nverts; m++ {
		for j := 0; j < o.Gndim; j++ {
			o.G[m][j] = 0
			for i := 0; i < o.Gndim; i++ {
				o.G[m][j] += o.DSdR[m][i] * o.DRdx[i][j]
			}
		}
	}
	return
}

// CalcAtR calculates volume data such as S and G at natural coordinate r
//  Input:
//   x[ndim][nverts] -- coordinates matrix of element
//   R[gndim]        -- local/natural coordinates
//  Output:
//   S, DSdR, DxdR, DRdx, G, and J
func (o *Shape) CalcAtR(x [][]float64, R []float64, derivs bool) (err error) {
	return o.CalcAtIp(x, R, derivs)
}

// CalcAtNode calculates S and G at vertex m
func (o *Shape) CalcAtNode(x [][]float64, m int) (err error) {
	r := make([]float64, o.Gndim)
	for i := 0; i < o.Gndim; i++ {
		r[i] = o.NatCoords[i][m]
	}
	return o.CalcAtR(x, r, true)
}

// init_scratchpad initialise volume data (scratchpad)
func (o *Shape) init_scratchpad() {
	o.S = make([]float64, o.Nverts)
	o.DSdR = utl.Alloc(o.Nverts, o.Gndim)
	o.DxdR = utl.Alloc(o.Gndim, o.Gndim)
	o.DRdx = utl.Alloc(o.Gndim, o.Gndim)
	o.G = utl.Alloc(o.Nverts, o.Gndim)
}
