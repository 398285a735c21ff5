// Copyright (c) 2026, The Qualmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"github.com/meshviz/qualmap/base/tolassert"
)

func TestSRGB(t *testing.T) {
	tolassert.Equal(t, 0.00015479876, SRGBToLinearComp(0.002))
	tolassert.Equal(t, 0.23302202, SRGBToLinearComp(0.52))

	tolassert.Equal(t, 0.012920001, SRGBFromLinearComp(0.001))
	tolassert.Equal(t, 0.84338915, SRGBFromLinearComp(0.68))

	rl, gl, bl := SRGBToLinear(0.3, 0.2, 0.6)
	tolassert.Equal(t, 0.07323897, rl)
	tolassert.Equal(t, 0.033104762, gl)
	tolassert.Equal(t, 0.31854683, bl)

	rl, gl, bl = SRGB100ToLinear(0.3, 0.2, 0.6)
	tolassert.EqualTol(t, 7.323897, rl, 0.01)
	tolassert.EqualTol(t, 3.3104763, gl, 0.01)
	tolassert.EqualTol(t, 31.854683, bl, 0.01)

	r, g, b := SRGBFromLinear(0.12, 0.34, 0.78)
	tolassert.Equal(t, 0.38109186, r)
	tolassert.Equal(t, 0.61803144, g)
	tolassert.Equal(t, 0.8962438, b)

	r, g, b = SRGBFromLinear100(12, 34, 78)
	tolassert.Equal(t, 0.38109186, r)
	tolassert.Equal(t, 0.61803144, g)
	tolassert.Equal(t, 0.8962438, b)
}

func TestSRGBRoundTrip(t *testing.T) {
	for _, v := range []float32{0, 0.01, 0.2, 0.5, 0.73, 1} {
		tolassert.Equal(t, v, SRGBFromLinearComp(SRGBToLinearComp(v)))
	}
}
