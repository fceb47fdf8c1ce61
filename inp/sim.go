// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.yaml) simulation file
package inp

import (
	"bytes"
	goio "io"

	"github.com/ghodss/yaml"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// MeshData holds data for the structured mesh generator
type MeshData struct {
	Geo string  `json:"geo"` // geometry of cells: "lin2" or "qua4"
	Nx  int     `json:"nx"`  // number of divisions along x
	Ny  int     `json:"ny"`  // number of divisions along y (qua4 only)
	Lx  float64 `json:"lx"`  // length along x
	Ly  float64 `json:"ly"`  // length along y (qua4 only)
}

// RolesData names the variables playing a physical role
type RolesData struct {
	Temperature   string   `json:"temperature"`   // temperature variable; may be empty
	Pressures     []string `json:"pressures"`     // [nphases] pressure variables
	Displacements []string `json:"displacements"` // [ndim] displacement variables; may be empty
}

// KernelData holds data for accumulation kernels
type KernelData struct {
	Type     string `json:"type"`     // kernel name; e.g. "energy-time-derivative"
	Variable string `json:"variable"` // variable the kernel acts on
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Title       string               `json:"title"`       // title of simulation
	Ndim        int                  `json:"ndim"`        // space dimension
	Mesh        MeshData             `json:"mesh"`        // mesh data
	Dt          float64              `json:"dt"`          // time step size
	Nthreads    int                  `json:"nthreads"`    // number of concurrent element evaluations; 0 means number of CPUs
	Variables   []string             `json:"variables"`   // all variables @ each node
	PorflowVars []string             `json:"porflowvars"` // variables coupled to the porous flow kernels
	Roles       RolesData            `json:"roles"`       // roles of variables
	Porosity    Material             `json:"porosity"`    // porosity model
	Rock        Material             `json:"rock"`        // rock (matrix) energy model
	Phases      []*Phase             `json:"phases"`      // fluid phases
	Retention   *Material            `json:"retention"`   // retention model; required with two phases
	Kernels     []*KernelData        `json:"kernels"`     // kernels
	Old         map[string]FieldData `json:"old"`         // values @ beginning of time step
	Current     map[string]FieldData `json:"current"`     // current values

	// derived
	Key string // simulation key; e.g. name of file without extension
}

// ReadSim reads all simulation data from a .yaml file
func ReadSim(simfilepath string) (o *Simulation, err error) {
	b, err := readFile(simfilepath)
	if err != nil {
		return nil, err
	}
	o, err = ParseSim(b)
	if err != nil {
		return nil, chk.Err("invalid simulation file %q:\n%v", simfilepath, err)
	}
	o.Key = io.FnKey(simfilepath)
	return
}

// readFile reads file returning an error instead of panicking
func readFile(fn string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot read simulation file %q:\n%v", fn, r)
		}
	}()
	return io.ReadFile(fn), nil
}

// ParseSim decodes and validates simulation data
func ParseSim(data []byte) (o *Simulation, err error) {
	o = new(Simulation)
	err = yaml.Unmarshal(data, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation data:\n%v", err)
	}
	err = o.validate()
	if err != nil {
		return nil, err
	}
	return
}

// validate checks simulation data
func (o *Simulation) validate() (err error) {

	// mesh and dimension
	switch o.Mesh.Geo {
	case "lin2":
		if o.Ndim != 1 {
			return chk.Err("lin2 meshes require ndim = 1. ndim = %d is invalid\n", o.Ndim)
		}
	case "qua4":
		if o.Ndim != 2 {
			return chk.Err("qua4 meshes require ndim = 2. ndim = %d is invalid\n", o.Ndim)
		}
		if o.Mesh.Ny < 1 || o.Mesh.Ly <= 0 {
			return chk.Err("qua4 meshes require ny ≥ 1 and ly > 0\n")
		}
	default:
		return chk.Err("mesh geometry %q is not available\n", o.Mesh.Geo)
	}
	if o.Mesh.Nx < 1 || o.Mesh.Lx <= 0 {
		return chk.Err("mesh requires nx ≥ 1 and lx > 0\n")
	}

	// time step and threads
	if o.Dt <= 0 {
		return chk.Err("time step must be positive. dt = %g is invalid\n", o.Dt)
	}
	if o.Nthreads < 0 {
		return chk.Err("number of threads must be non-negative. nthreads = %d is invalid\n", o.Nthreads)
	}

	// variables
	if len(o.Variables) == 0 {
		return chk.Err("at least one variable must be given\n")
	}
	known := make(map[string]bool)
	for _, name := range o.Variables {
		if known[name] {
			return chk.Err("variable %q is repeated\n", name)
		}
		known[name] = true
	}
	check := func(what, name string) error {
		if !known[name] {
			return chk.Err("%s variable %q is not in the list of variables\n", what, name)
		}
		return nil
	}
	for _, name := range o.PorflowVars {
		if err = check("porous flow", name); err != nil {
			return
		}
	}

	// roles
	if o.Roles.Temperature != "" {
		if err = check("temperature", o.Roles.Temperature); err != nil {
			return
		}
	}
	for _, name := range o.Roles.Pressures {
		if err = check("pressure", name); err != nil {
			return
		}
	}
	for _, name := range o.Roles.Displacements {
		if err = check("displacement", name); err != nil {
			return
		}
	}
	if len(o.Roles.Displacements) != 0 && len(o.Roles.Displacements) != o.Ndim {
		return chk.Err("number of displacement variables must be zero or equal to ndim = %d\n", o.Ndim)
	}

	// phases
	nph := len(o.Phases)
	if nph > 2 {
		return chk.Err("at most two phases are supported. nphases = %d is invalid\n", nph)
	}
	if len(o.Roles.Pressures) != nph {
		return chk.Err("one pressure variable per phase is required. %d pressures for %d phases is invalid\n", len(o.Roles.Pressures), nph)
	}
	if nph == 2 && o.Retention == nil {
		return chk.Err("retention model is required with two phases\n")
	}
	for i, ph := range o.Phases {
		if ph == nil {
			return chk.Err("phase %d is empty\n", i)
		}
	}

	// materials
	if o.Porosity.Type == "" || o.Rock.Type == "" {
		return chk.Err("porosity and rock models must be given\n")
	}
	if err = checkPrms("porosity", o.Porosity.Prms); err != nil {
		return
	}
	if err = checkPrms("rock", o.Rock.Prms); err != nil {
		return
	}
	if o.Retention != nil {
		if err = checkPrms("retention", o.Retention.Prms); err != nil {
			return
		}
	}
	for _, ph := range o.Phases {
		if err = checkPrms("phase "+ph.Name, ph.Prms); err != nil {
			return
		}
	}

	// kernels
	for i, k := range o.Kernels {
		if k == nil {
			return chk.Err("kernel %d is empty\n", i)
		}
		if err = check("kernel", k.Variable); err != nil {
			return
		}
	}

	// fields
	for _, fields := range []map[string]FieldData{o.Old, o.Current} {
		for name, f := range fields {
			if err = check("field", name); err != nil {
				return
			}
			if len(f.Grad) > o.Ndim {
				return chk.Err("gradient of field %q has more than ndim = %d components\n", name, o.Ndim)
			}
		}
	}
	return
}

// checkPrms checks that all parameters are named
//  Note: unquoted keys such as n or y are booleans in YAML and result in empty names
func checkPrms(what string, prms dbf.Params) error {
	for i, p := range prms {
		if p == nil || p.N == "" {
			return chk.Err("%s: parameter %d has no name. quote names such as \"n\"\n", what, i)
		}
	}
	return nil
}

// GetInfo prints information about this simulation
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	var b bytes.Buffer
	io.Ff(&b, "title       = %s\n", o.Title)
	io.Ff(&b, "ndim        = %d\n", o.Ndim)
	io.Ff(&b, "mesh        = %s nx=%d ny=%d lx=%g ly=%g\n", o.Mesh.Geo, o.Mesh.Nx, o.Mesh.Ny, o.Mesh.Lx, o.Mesh.Ly)
	io.Ff(&b, "dt          = %g\n", o.Dt)
	io.Ff(&b, "variables   = %v\n", o.Variables)
	io.Ff(&b, "porflowvars = %v\n", o.PorflowVars)
	io.Ff(&b, "porosity    = %s\n", o.Porosity.String())
	io.Ff(&b, "rock        = %s\n", o.Rock.String())
	io.Ff(&b, "retention   = %s\n", o.Retention.String())
	for _, ph := range o.Phases {
		io.Ff(&b, "phase       = %s\n", ph.Name)
	}
	for _, k := range o.Kernels {
		io.Ff(&b, "kernel      = %s @ %s\n", k.Type, k.Variable)
	}
	_, err = w.Write(b.Bytes())
	return
}
