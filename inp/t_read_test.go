// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_sim01(tst *testing.T) {

	chk.PrintTitle("sim01")

	sim, err := ReadSim("data/thm1d.yaml")
	if err != nil {
		tst.Errorf("ReadSim failed: %v\n", err)
		return
	}
	if chk.Verbose {
		var b bytes.Buffer
		sim.GetInfo(&b)
		io.Pf("%s\n", b.String())
	}

	chk.Ints(tst, "ndim, nx", []int{sim.Ndim, sim.Mesh.Nx}, []int{1, 3})
	chk.Strings(tst, "variables", sim.Variables, []string{"temp", "pp", "ux", "aux"})
	chk.Strings(tst, "porflowvars", sim.PorflowVars, []string{"pp", "temp", "ux"})
	chk.Strings(tst, "pressures", sim.Roles.Pressures, []string{"pp"})
	chk.Float64(tst, "dt", 1e-17, sim.Dt, 0.5)
	chk.Float64(tst, "phi0", 1e-17, sim.Porosity.Prms.Find("phi0").V, 0.1)
	chk.Float64(tst, "C", 1e-17, sim.Phases[0].Prms.Find("C").V, 0.1)
	chk.Float64(tst, "temp(x=2)", 1e-15, sim.Current["temp"].At([]float64{2}), 0.3)
	chk.Float64(tst, "aux(x=2)", 1e-15, sim.Current["aux"].At([]float64{2}), 7)
	if sim.Retention != nil {
		tst.Errorf("retention must be absent\n")
	}
	if sim.Key != "thm1d" {
		tst.Errorf("key is incorrect: %q\n", sim.Key)
	}
	if len(sim.Kernels) != 2 || sim.Kernels[1].Type != "mass-time-derivative" {
		tst.Errorf("kernels are incorrect\n")
	}
}

func Test_sim02(tst *testing.T) {

	chk.PrintTitle("sim02")

	sim, err := ReadSim("data/thm2d.yaml")
	if err != nil {
		tst.Errorf("ReadSim failed: %v\n", err)
		return
	}
	chk.Ints(tst, "ndim, nphases", []int{sim.Ndim, len(sim.Phases)}, []int{2, 2})
	chk.Strings(tst, "displacements", sim.Roles.Displacements, []string{"ux", "uy"})
	chk.Float64(tst, "m", 1e-17, sim.Retention.Prms.Find("m").V, 4)
	for _, p := range sim.Retention.Prms {
		if p.N == "" || p.N == "false" {
			tst.Errorf("parameter name is lost: %+v\n", p)
		}
	}
	n := sim.Retention.Prms.Find("n")
	if n == nil {
		tst.Errorf("cannot find parameter n of retention model\n")
		return
	}
	chk.Float64(tst, "n", 1e-17, n.V, 4)
	chk.Float64(tst, "pl(1,1)", 1e-15, sim.Current["pl"].At([]float64{1, 1}), 1.2+0.1-0.2)

	var b bytes.Buffer
	err = sim.GetInfo(&b)
	if err != nil {
		tst.Errorf("GetInfo failed: %v\n", err)
		return
	}
	if !strings.Contains(b.String(), "kernel      = energy-time-derivative @ temp") {
		tst.Errorf("info is incorrect:\n%s", b.String())
	}
}

func Test_sim03(tst *testing.T) {

	chk.PrintTitle("sim03. invalid input")

	defaults := [][]string{
		{"ndim", "1"},
		{"mesh", "{geo: lin2, nx: 1, lx: 1}"},
		{"dt", "1"},
		{"variables", "[temp, pp]"},
		{"porflowvars", "[temp, pp]"},
		{"porosity", "{type: const}"},
		{"rock", "{type: matrix}"},
	}
	build := func(changes map[string]string) []byte {
		var b bytes.Buffer
		for _, kv := range defaults {
			val := kv[1]
			if v, ok := changes[kv[0]]; ok {
				val = v
			}
			io.Ff(&b, "%s: %s\n", kv[0], val)
		}
		for key, val := range changes {
			found := false
			for _, kv := range defaults {
				if kv[0] == key {
					found = true
				}
			}
			if !found {
				io.Ff(&b, "%s: %s\n", key, val)
			}
		}
		return b.Bytes()
	}
	if _, err := ParseSim(build(nil)); err != nil {
		tst.Errorf("default input must be valid: %v\n", err)
		return
	}
	for msg, changes := range map[string]map[string]string{
		"zero dt":             {"dt": "0"},
		"unknown mesh":        {"mesh": "{geo: tri3, nx: 1, lx: 1}"},
		"wrong ndim":          {"ndim": "2"},
		"unknown porflow var": {"porflowvars": "[temp, ux]"},
		"repeated variable":   {"variables": "[temp, temp]"},
		"missing pressure":    {"phases": "[{name: water}]"},
		"missing retention":   {"phases": "[{name: water}, {name: gas}]", "roles": "{pressures: [temp, pp]}"},
		"too many phases":     {"phases": "[{name: a}, {name: b}, {name: c}]", "roles": "{pressures: [temp, pp, temp]}"},
		"unknown kernel var":  {"kernels": "[{type: energy-time-derivative, variable: ux}]"},
		"unknown field":       {"current": "{ux: {value: 1}}"},
		"large gradient":      {"current": "{temp: {value: 1, grad: [1, 2]}}"},
		"wrong displacements": {"roles": "{displacements: [temp, pp]}"},
		"unknown temperature": {"roles": "{temperature: T}"},
		"negative threads":    {"nthreads": "-1"},
		"missing porosity":    {"porosity": "{type: \"\"}"},
		"unquoted prm name":   {"porosity": "{type: const, prms: [{n: phi0, v: 0.1}]}"},
		"nameless phase prm":  {"phases": "[{name: water, prms: [{v: 1}]}]", "roles": "{pressures: [pp]}"},
	} {
		if _, err := ParseSim(build(changes)); err == nil {
			tst.Errorf("%s: error expected\n", msg)
		}
	}
	sim, err := ParseSim(build(map[string]string{"porosity": `{type: const, prms: [{"n": phi0, v: 0.1}]}`}))
	if err != nil {
		tst.Errorf("quoted parameter name must be valid: %v\n", err)
		return
	}
	chk.Float64(tst, "phi0", 1e-17, sim.Porosity.Prms.Find("phi0").V, 0.1)
	if _, err := ParseSim([]byte("ndim: [")); err == nil {
		tst.Errorf("invalid yaml must fail\n")
	}
	if _, err := ReadSim("data/nonexistent.yaml"); err == nil {
		tst.Errorf("nonexistent file must fail\n")
	}
}
