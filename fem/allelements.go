// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/porflow/ele/porflow"
)

// enforce loading of all kernels
func init() {
	_ = porflow.EnergyTimeDerivative{}
	_ = porflow.MassTimeDerivative{}
}
