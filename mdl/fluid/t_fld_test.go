// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"testing"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

func Test_fld01(tst *testing.T) {

	chk.PrintTitle("fld01")

	var water Model
	err := water.Init(water.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	var dryair Model
	dryair.Gas = true
	err = dryair.Init(dryair.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	if !dryair.Gas || water.Gas {
		tst.Errorf("gas flags are incorrect\n")
	}

	// current parameters
	prms := water.GetPrms(false)
	chk.Float64(tst, "R0", 1e-15, prms.Find("R0").V, 1000)
	chk.Float64(tst, "cv", 1e-15, prms.Find("cv").V, 4180)

	// density and energy
	R, dRdp := water.Density(1e6)
	chk.Float64(tst, "R", 1e-12, R, 1000+4.5e-7*1e6)
	chk.Float64(tst, "dRdp", 1e-15, dRdp, 4.5e-7)
	u, dudT := water.Energy(300)
	chk.Float64(tst, "u", 1e-9, u, 4180*(300-273.15))
	chk.Float64(tst, "dudT", 1e-15, dudT, 4180)

	// derivatives
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-3}
	for _, mdl := range []Model{water, dryair} {
		for _, p := range utl.LinSpace(1e5, 1e6, 5) {
			_, ana := mdl.Density(p)
			num := fd.Derivative(func(x float64) float64 { r, _ := mdl.Density(x); return r }, p, settings)
			chk.Float64(tst, "dRdp", 1e-9, ana, num)
		}
		for _, T := range utl.LinSpace(270, 400, 5) {
			_, ana := mdl.Energy(T)
			num := fd.Derivative(func(x float64) float64 { e, _ := mdl.Energy(x); return e }, T, settings)
			chk.Float64(tst, "dudT", 1e-6, ana, num)
		}
	}
}

func Test_fld02(tst *testing.T) {

	chk.PrintTitle("fld02")

	var mdl Model
	if err := mdl.Init(dbf.Params{&dbf.P{N: "R0", V: 1}, &dbf.P{N: "wrong", V: 1}}); err == nil {
		tst.Errorf("wrong parameter name must fail\n")
	}
	mdl = Model{}
	if err := mdl.Init(dbf.Params{&dbf.P{N: "C", V: 1}}); err == nil {
		tst.Errorf("zero R0 must fail\n")
	}
	mdl = Model{}
	if err := mdl.Init(dbf.Params{&dbf.P{N: "R0", V: 1}, &dbf.P{N: "C", V: -1}}); err == nil {
		tst.Errorf("negative C must fail\n")
	}
}
