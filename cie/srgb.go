// Copyright (c) 2026, The Qualmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "github.com/chewxy/math32"

// SRGBToLinearComp converts a gamma-corrected sRGB component
// in the 0-1 range to its linear form.
func SRGBToLinearComp(srgb float32) float32 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math32.Pow((srgb+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear RGB component in the 0-1 range
// to its gamma-corrected sRGB form.
func SRGBFromLinearComp(lin float32) float32 {
	if lin <= 0.0031308 {
		return 12.92 * lin
	}
	return 1.055*math32.Pow(lin, 1.0/2.4) - 0.055
}

// SRGBToLinear converts gamma-corrected 0-1 sRGB values
// to linear 0-1 RGB.
func SRGBToLinear(r, g, b float32) (rl, gl, bl float32) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGB100ToLinear converts gamma-corrected 0-1 sRGB values
// to linear RGB in the 0-100 range used by XYZ.
func SRGB100ToLinear(r, g, b float32) (rl, gl, bl float32) {
	rl = 100 * SRGBToLinearComp(r)
	gl = 100 * SRGBToLinearComp(g)
	bl = 100 * SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts linear 0-1 RGB values
// to gamma-corrected 0-1 sRGB.
func SRGBFromLinear(rl, gl, bl float32) (r, g, b float32) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}

// SRGBFromLinear100 converts linear RGB values in the 0-100 range
// to gamma-corrected 0-1 sRGB.
func SRGBFromLinear100(rl, gl, bl float32) (r, g, b float32) {
	r = SRGBFromLinearComp(rl / 100)
	g = SRGBFromLinearComp(gl / 100)
	b = SRGBFromLinearComp(bl / 100)
	return
}
