// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dict implements the registry that maps simulation variables to porous-flow indices
package dict

import (
	"github.com/cpmech/gosl/chk"
)

// Dictator maps global variable numbers to dense porous-flow (coupled) indices
//
//   variable number: position of the variable in the list of all simulation variables
//   coupled index:   position of the variable in the list of porous-flow variables ∈ [0, P)
//
//  Note: derivatives computed by materials are indexed by the coupled index
type Dictator struct {
	names   []string    // [nallvars] names of all variables
	vars    []int       // [P] variable number of each porous-flow variable
	index   map[int]int // variable number => coupled index
	nphases int         // number of fluid phases
}

// New returns a new Dictator
//  Input:
//   allVars     -- names of all variables in the simulation; e.g. ["temp", "pp", "ux", "aux"]
//   porflowVars -- subset of allVars coupled to porous-flow kernels; e.g. ["pp", "temp"]
//   nphases     -- number of fluid phases (may be zero)
func New(allVars, porflowVars []string, nphases int) (o *Dictator, err error) {
	if nphases < 0 {
		return nil, chk.Err("number of phases must be non-negative. nphases = %d is invalid", nphases)
	}
	o = new(Dictator)
	o.nphases = nphases
	o.names = make([]string, len(allVars))
	number := make(map[string]int)
	for v, name := range allVars {
		if _, ok := number[name]; ok {
			return nil, chk.Err("variable %q is repeated in the list of variables", name)
		}
		number[name] = v
		o.names[v] = name
	}
	o.vars = make([]int, len(porflowVars))
	o.index = make(map[int]int)
	for idx, name := range porflowVars {
		v, ok := number[name]
		if !ok {
			return nil, chk.Err("porous-flow variable %q is not a simulation variable %v", name, allVars)
		}
		if _, ok := o.index[v]; ok {
			return nil, chk.Err("porous-flow variable %q is repeated", name)
		}
		o.vars[idx] = v
		o.index[v] = idx
	}
	return
}

// Lookup returns the coupled index of variable v; ok is false if v is not a porous-flow variable
func (o *Dictator) Lookup(v int) (idx int, ok bool) {
	idx, ok = o.index[v]
	return
}

// IsPorousFlowVariable tells whether v is coupled
func (o *Dictator) IsPorousFlowVariable(v int) bool {
	_, ok := o.index[v]
	return ok
}

// NotPorousFlowVariable tells whether v is not coupled
func (o *Dictator) NotPorousFlowVariable(v int) bool {
	return !o.IsPorousFlowVariable(v)
}

// PorousFlowVariableNum returns the coupled index of v. Panics if v is not coupled
func (o *Dictator) PorousFlowVariableNum(v int) int {
	idx, ok := o.index[v]
	if !ok {
		chk.Panic("variable %d is not a porous-flow variable", v)
	}
	return idx
}

// VariableNumber returns the variable number corresponding to coupled index idx
func (o *Dictator) VariableNumber(idx int) int {
	return o.vars[idx]
}

// VarNumber returns the variable number of a variable given its name
func (o *Dictator) VarNumber(name string) (v int, ok bool) {
	for v, n := range o.names {
		if n == name {
			return v, true
		}
	}
	return -1, false
}

// Name returns the name of variable number v
func (o *Dictator) Name(v int) string {
	if v < 0 || v >= len(o.names) {
		return ""
	}
	return o.names[v]
}

// NumVariables returns the number of porous-flow variables (P)
func (o *Dictator) NumVariables() int { return len(o.vars) }

// NumAllVariables returns the number of simulation variables
func (o *Dictator) NumAllVariables() int { return len(o.names) }

// NumPhases returns the number of fluid phases (N)
func (o *Dictator) NumPhases() int { return o.nphases }
