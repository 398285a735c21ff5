// Copyright (c) 2026, The Qualmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "github.com/chewxy/math32"

// CIE L*a*b* constants: e is the cube of the linearity threshold,
// kappa the slope below it.
const (
	labE     float32 = 216.0 / 24389.0
	labKappa float32 = 24389.0 / 27.0
)

// LABCompress applies the L*a*b* cube-root compression function to a
// white-point normalized XYZ component.
func LABCompress(t float32) float32 {
	if t > labE {
		return math32.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// LABUncompress inverts [LABCompress].
func LABUncompress(ft float32) float32 {
	ft3 := ft * ft * ft
	if ft3 > labE {
		return ft3
	}
	return (116*ft - 16) / labKappa
}

// XYZToLAB converts XYZ coordinates with Y in the 0-1 range to
// L*a*b* under the D65 reference white. L* is in the 0-100 range.
func XYZToLAB(x, y, z float32) (l, a, b float32) {
	fx := LABCompress(x / WhiteX)
	fy := LABCompress(y / WhiteY)
	fz := LABCompress(z / WhiteZ)
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts L*a*b* values to XYZ coordinates with Y in the
// 0-1 range, under the D65 reference white.
func LABToXYZ(l, a, b float32) (x, y, z float32) {
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - b/200
	x = LABUncompress(fx) * WhiteX
	y = LABUncompress(fy) * WhiteY
	z = LABUncompress(fz) * WhiteZ
	return
}

// LToY converts an L* lightness value in the 0-100 range to an XYZ Y
// luminance in the 0-100 range.
func LToY(l float32) float32 {
	return 100 * LABUncompress((l+16)/116)
}

// YToL converts an XYZ Y luminance in the 0-100 range to an L*
// lightness value in the 0-100 range.
func YToL(y float32) float32 {
	return 116*LABCompress(y/100) - 16
}

// SRGBToLAB converts gamma-corrected 0-1 sRGB values directly
// to L*a*b*.
func SRGBToLAB(r, g, b float32) (l, a, bb float32) {
	return XYZToLAB(SRGBToXYZ(r, g, b))
}

// SRGBFromLAB converts L*a*b* values directly to gamma-corrected
// 0-1 sRGB, without clamping to gamut.
func SRGBFromLAB(l, a, b float32) (r, g, bb float32) {
	return SRGBFromXYZ(LABToXYZ(l, a, b))
}

// DeltaE returns the CIE76 perceptual color difference between two
// L*a*b* colors: the Euclidean distance in L*a*b* space.
func DeltaE(l1, a1, b1, l2, a2, b2 float32) float32 {
	dl := l1 - l2
	da := a1 - a2
	db := b1 - b2
	return math32.Sqrt(dl*dl + da*da + db*db)
}
