// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// FieldData defines a linear field f(x) = value + grad・x
type FieldData struct {
	Value float64   `json:"value"` // value @ origin
	Grad  []float64 `json:"grad"`  // [ndim] gradient; may be empty
}

// At returns the value of the field @ x
func (o FieldData) At(x []float64) (f float64) {
	f = o.Value
	for k, g := range o.Grad {
		if k < len(x) {
			f += g * x[k]
		}
	}
	return
}
