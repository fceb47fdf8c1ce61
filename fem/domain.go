// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the lumped assembly of porous flow kernels
package fem

import (
	"runtime"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/porflow/dict"
	"github.com/cpmech/porflow/ele"
	"github.com/cpmech/porflow/inp"
	"github.com/cpmech/porflow/mdl/fluid"
	"github.com/cpmech/porflow/mdl/nodal"
	"github.com/cpmech/porflow/mdl/porosity"
	"github.com/cpmech/porflow/mdl/retention"
	"github.com/cpmech/porflow/mdl/thermal"
)

// Domain holds the mesh, the kernels and the nodal values of all variables.
// Every vertex carries every variable; the equation number of variable v @ vertex vid is vid・nvar + v
type Domain struct {

	// input
	Sim     *inp.Simulation // simulation data
	Verbose bool            // show messages

	// derived
	Msh      *Mesh            // mesh
	Elems    []*Element       // elements
	Dict     *dict.Dictator   // variable registry
	Mats     *nodal.Materials // material models
	Kernels  []ele.Kernel     // kernels
	Nvar     int              // number of variables @ each vertex
	Ny       int              // total number of equations
	Nthreads int              // maximum number of concurrent element evaluations

	// state
	Dt   float64   // time step size
	Y    []float64 // [ny] current values
	Yold []float64 // [ny] values @ beginning of time step
}

// NewDomain allocates a new domain
func NewDomain(sim *inp.Simulation, verbose bool) (o *Domain, err error) {

	// new domain
	o = &Domain{Sim: sim, Verbose: verbose, Dt: sim.Dt, Nthreads: sim.Nthreads}
	if o.Nthreads < 1 {
		o.Nthreads = runtime.NumCPU()
	}

	// variables
	nph := len(sim.Phases)
	o.Dict, err = dict.New(sim.Variables, sim.PorflowVars, nph)
	if err != nil {
		return nil, err
	}
	o.Nvar = o.Dict.NumAllVariables()

	// materials
	o.Mats, err = o.materials()
	if err != nil {
		return nil, err
	}

	// kernels
	for _, kd := range sim.Kernels {
		v, ok := o.Dict.VarNumber(kd.Variable)
		if !ok {
			return nil, chk.Err("cannot find variable %q of kernel %q\n", kd.Variable, kd.Type)
		}
		k, err := ele.New(kd.Type, o.Dict, v)
		if err != nil {
			return nil, err
		}
		o.Kernels = append(o.Kernels, k)
	}

	// mesh and elements
	o.Msh, err = NewMesh(sim.Mesh.Geo, sim.Mesh.Nx, sim.Mesh.Ny, sim.Mesh.Lx, sim.Mesh.Ly)
	if err != nil {
		return nil, err
	}
	for _, cell := range o.Msh.Cells {
		e, err := NewElement(cell, o.Msh)
		if err != nil {
			return nil, err
		}
		o.Elems = append(o.Elems, e)
	}

	// initial values
	o.Ny = len(o.Msh.Verts) * o.Nvar
	o.Y = make([]float64, o.Ny)
	o.Yold = make([]float64, o.Ny)
	for v, name := range sim.Variables {
		cur, hasCur := sim.Current[name]
		old, hasOld := sim.Old[name]
		for _, vert := range o.Msh.Verts {
			if hasCur {
				o.Y[o.Eq(vert.Id, v)] = cur.At(vert.C)
			}
			if hasOld {
				o.Yold[o.Eq(vert.Id, v)] = old.At(vert.C)
			}
		}
	}

	// message
	if o.Verbose {
		io.Pf("> domain: %d vertices, %d cells, %d equations, %d kernels, %d threads\n", len(o.Msh.Verts), len(o.Elems), o.Ny, len(o.Kernels), o.Nthreads)
	}
	return
}

// Eq returns the equation number of variable v @ vertex vid
func (o *Domain) Eq(vid, v int) int {
	return vid*o.Nvar + v
}

// materials allocates and initialises all material models
func (o *Domain) materials() (mats *nodal.Materials, err error) {

	// roles
	sim := o.Sim
	num := func(name string) int {
		if name == "" {
			return -1
		}
		v, _ := o.Dict.VarNumber(name)
		return v
	}
	roles := nodal.Roles{Temperature: num(sim.Roles.Temperature)}
	for _, name := range sim.Roles.Pressures {
		roles.Pressures = append(roles.Pressures, num(name))
	}
	for _, name := range sim.Roles.Displacements {
		roles.Displacements = append(roles.Displacements, num(name))
	}

	// porosity
	por, err := porosity.New(sim.Porosity.Type)
	if err != nil {
		return
	}
	if err = por.Init(sim.Porosity.Prms); err != nil {
		return
	}

	// rock
	rock, err := thermal.New(sim.Rock.Type)
	if err != nil {
		return
	}
	if err = rock.Init(sim.Rock.Prms); err != nil {
		return
	}

	// fluids
	var fluids []*fluid.Model
	for _, ph := range sim.Phases {
		f := new(fluid.Model)
		if err = f.Init(ph.Prms); err != nil {
			return nil, chk.Err("phase %q: %v", ph.Name, err)
		}
		fluids = append(fluids, f)
	}

	// retention
	var ret retention.Model
	if sim.Retention != nil {
		ret, err = retention.New(sim.Retention.Type)
		if err != nil {
			return
		}
		if err = ret.Init(sim.Retention.Prms); err != nil {
			return
		}
	}
	return nodal.New(o.Dict, sim.Ndim, roles, por, rock, fluids, ret)
}
