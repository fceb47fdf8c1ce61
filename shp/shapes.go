// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "math"

// coordinate of 2-point Gauss-Legendre rule
var gaussR2 = 1.0 / math.Sqrt(3.0)

// lin2 shape functions
//   0-----------1  --> r
func lin2(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	S[0] = 0.5 * (1.0 - r[0])
	S[1] = 0.5 * (1.0 + r[0])
	if !derivs {
		return
	}
	dSdR[0][0] = -0.5
	dSdR[1][0] = 0.5
}

// qua4 shape functions
//    3-----------2
//    |     s     |
//    |     |     |
//    |     +--r  |
//    |           |
//    |           |
//    0-----------1
func qua4(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	S[0] = 0.25 * (1.0 - r[0]) * (1.0 - r[1])
	S[1] = 0.25 * (1.0 + r[0]) * (1.0 - r[1])
	S[2] = 0.25 * (1.0 + r[0]) * (1.0 + r[1])
	S[3] = 0.25 * (1.0 - r[0]) * (1.0 + r[1])
	if !derivs {
		return
	}
	dSdR[0][0] = -0.25 * (1.0 - r[1])
	dSdR[1][0] = 0.25 * (1.0 - r[1])
	dSdR[2][0] = 0.25 * (1.0 + r[1])
	dSdR[3][0] = -0.25 * (1.0 + r[1])
	dSdR[0][1] = -0.25 * (1.0 - r[0])
	dSdR[1][1] = -0.25 * (1.0 + r[0])
	dSdR[2][1] = 0.25 * (1.0 + r[0])
	dSdR[3][1] = 0.25 * (1.0 - r[0])
}

// register shapes
func init() {

	// lin2
	s := &Shape{
		Type:      "lin2",
		Func:      lin2,
		Gndim:     1,
		Nverts:    2,
		NatCoords: [][]float64{{-1, 1}},
		Ips: []Ipoint{
			{-gaussR2, 0, 0, 1},
			{gaussR2, 0, 0, 1},
		},
	}
	s.init_scratchpad()
	factory["lin2"] = s

	// qua4
	s = &Shape{
		Type:   "qua4",
		Func:   qua4,
		Gndim:  2,
		Nverts: 4,
		NatCoords: [][]float64{
			{-1, 1, 1, -1},
			{-1, -1, 1, 1},
		},
		Ips: []Ipoint{
			{-gaussR2, -gaussR2, 0, 1},
			{gaussR2, -gaussR2, 0, 1},
			{gaussR2, gaussR2, 0, 1},
			{-gaussR2, gaussR2, 0, 1},
		},
	}
	s.init_scratchpad()
	factory["qua4"] = s
}
