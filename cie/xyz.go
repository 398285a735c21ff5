// Copyright (c) 2026, The Qualmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// D65 standard illuminant reference white, in XYZ coordinates.
const (
	WhiteX float32 = 0.95047
	WhiteY float32 = 1.0
	WhiteZ float32 = 1.08883
)

// SRGBLinToXYZ converts linear 0-1 sRGB values to XYZ coordinates
// with Y in the 0-1 range.
func SRGBLinToXYZ(rl, gl, bl float32) (x, y, z float32) {
	x = 0.41233895*rl + 0.35762064*gl + 0.18051042*bl
	y = 0.2126*rl + 0.7152*gl + 0.0722*bl
	z = 0.01932141*rl + 0.11916382*gl + 0.95034478*bl
	return
}

// XYZToSRGBLin converts XYZ coordinates with Y in the 0-1 range
// to linear sRGB values. Out-of-gamut colors produce components
// outside the 0-1 range; the caller is responsible for clamping.
func XYZToSRGBLin(x, y, z float32) (rl, gl, bl float32) {
	rl = 3.2413774*x - 1.5376652*y - 0.49885365*z
	gl = -0.96914524*x + 1.8758853*y + 0.041565857*z
	bl = 0.055620935*x - 0.20395525*y + 1.0571799*z
	return
}

// SRGBToXYZ converts gamma-corrected 0-1 sRGB values to XYZ
// coordinates with Y in the 0-1 range.
func SRGBToXYZ(r, g, b float32) (x, y, z float32) {
	return SRGBLinToXYZ(SRGBToLinear(r, g, b))
}

// SRGBFromXYZ converts XYZ coordinates with Y in the 0-1 range to
// gamma-corrected 0-1 sRGB values, without clamping to gamut.
func SRGBFromXYZ(x, y, z float32) (r, g, b float32) {
	return SRGBFromLinear(XYZToSRGBLin(x, y, z))
}
