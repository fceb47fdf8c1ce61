// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/porflow/dict"
)

// AllocatorType defines a function that allocates a kernel acting on the equation of variable number 'variable'
type AllocatorType func(d *dict.Dictator, variable int) Kernel

// New returns a new kernel from factory
func New(name string, d *dict.Dictator, variable int) (k Kernel, err error) {
	fcn, ok := allocators[name]
	if !ok {
		return nil, chk.Err("cannot get allocator for kernel %q. available kernels are %v", name, Names())
	}
	if variable < 0 || variable >= d.NumAllVariables() {
		return nil, chk.Err("cannot allocate kernel %q for variable number %d: there are %d variables", name, variable, d.NumAllVariables())
	}
	k = fcn(d, variable)
	if k == nil {
		err = chk.Err("kernel %q is not available", name)
	}
	return
}

// SetAllocator sets a new callback function to allocate a kernel
func SetAllocator(name string, fcn AllocatorType) {
	if _, ok := allocators[name]; ok {
		chk.Panic("cannot set allocator function for %q because kernel name exists already", name)
	}
	allocators[name] = fcn
}

// GetAllocator gets callback function to allocate a kernel
func GetAllocator(name string) AllocatorType {
	if fcn, ok := allocators[name]; ok {
		return fcn
	}
	chk.Panic("cannot get allocator function for kernel %q", name)
	return nil
}

// Names returns the sorted names of all registered kernels
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all kernel allocators
var allocators = make(map[string]AllocatorType)
