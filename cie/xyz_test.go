// Copyright (c) 2026, The Qualmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"github.com/meshviz/qualmap/base/tolassert"
)

func TestXYZ(t *testing.T) {
	x, y, z := SRGBLinToXYZ(0.5, 0.6, 0.7)
	tolassert.Equal(t, 0.5470991, x)
	tolassert.Equal(t, 0.58596003, y)
	tolassert.Equal(t, 0.74640036, z)

	rl, gl, bl := XYZToSRGBLin(x, y, z)
	tolassert.Equal(t, 0.5, rl)
	tolassert.Equal(t, 0.6, gl)
	tolassert.Equal(t, 0.7, bl)
}

func TestXYZWhite(t *testing.T) {
	// linear white maps to the D65 reference white
	x, y, z := SRGBLinToXYZ(1, 1, 1)
	tolassert.EqualTol(t, WhiteX, x, 0.005)
	tolassert.Equal(t, WhiteY, y)
	tolassert.EqualTol(t, WhiteZ, z, 0.005)
}
