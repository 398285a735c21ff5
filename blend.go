// Copyright (c) 2026, The Qualmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qualmap

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/meshviz/qualmap/cie"
)

// BlendTypes are the different colorspaces in which [Blend]
// can interpolate between two colors.
type BlendTypes int32

const (
	// SRGB interpolates in gamma-corrected sRGB space directly.
	// It is cheap but not perceptually uniform.
	SRGB BlendTypes = iota

	// LAB interpolates in CIE L*a*b* space, in which equal steps
	// correspond approximately to equal perceived color differences.
	// This is the default for diverging quality tables.
	LAB

	// HCL interpolates in the hue-chroma-luminance form of CIE L*u*v*,
	// keeping hues spectrally pure along the ramp.
	HCL

	// LUV interpolates in CIE L*u*v* space.
	LUV
)

var blendTypeNames = map[BlendTypes]string{SRGB: "srgb", LAB: "lab", HCL: "hcl", LUV: "luv"}

func (bt BlendTypes) String() string {
	if nm, ok := blendTypeNames[bt]; ok {
		return nm
	}
	return "lab"
}

// BlendTypeFromString returns the [BlendTypes] value named by the
// given string (srgb, lab, hcl, luv; case insensitive).
func BlendTypeFromString(nm string) (BlendTypes, error) {
	lnm := strings.ToLower(nm)
	for bt, s := range blendTypeNames {
		if s == lnm {
			return bt, nil
		}
	}
	return LAB, fmt.Errorf("qualmap.BlendTypeFromString: %w: unknown blend type %q", ErrInvalidArgument, nm)
}

// Blend returns a color that is the given percent blend between the
// first and second color: 90 = 90% of the first and 10% of the second,
// etc. Blending is performed in the given colorspace on
// non-premultiplied component values.
func Blend(bt BlendTypes, pct float32, x, y color.Color) color.RGBA {
	switch bt {
	case SRGB:
		return BlendRGB(pct, x, y)
	case HCL, LUV:
		return blendColorful(bt, pct, x, y)
	default:
		return BlendLAB(pct, x, y)
	}
}

// BlendRGB blends directly on gamma-corrected sRGB components.
// See [Blend] for the percent convention.
func BlendRGB(pct float32, x, y color.Color) color.RGBA {
	cx := AsRGBA(x)
	cy := AsRGBA(y)
	px := clamp(pct, 0, 100) / 100
	py := 1 - px
	return color.RGBA{
		uint8(px*float32(cx.R) + py*float32(cy.R) + 0.5),
		uint8(px*float32(cx.G) + py*float32(cy.G) + 0.5),
		uint8(px*float32(cx.B) + py*float32(cy.B) + 0.5),
		uint8(px*float32(cx.A) + py*float32(cy.A) + 0.5),
	}
}

// BlendLAB blends in CIE L*a*b* space: both colors are converted from
// sRGB to L*a*b*, interpolated there, and converted back, clamping to
// the sRGB gamut. See [Blend] for the percent convention.
func BlendLAB(pct float32, x, y color.Color) color.RGBA {
	fx := FromColor(x)
	fy := FromColor(y)
	px := clamp(pct, 0, 100) / 100
	py := 1 - px

	lx, ax, bx := cie.SRGBToLAB(fx.R, fx.G, fx.B)
	ly, ay, by := cie.SRGBToLAB(fy.R, fy.G, fy.B)

	r, g, b := cie.SRGBFromLAB(px*lx+py*ly, px*ax+py*ay, px*bx+py*by)
	res := RGB{clamp(r, 0, 1), clamp(g, 0, 1), clamp(b, 0, 1)}.AsRGBA()
	res.A = uint8(px*float32(AsRGBA(x).A) + py*float32(AsRGBA(y).A) + 0.5)
	return res
}

// blendColorful delegates HCL and LUV blending to go-colorful,
// which operates on float64 sRGB components.
func blendColorful(bt BlendTypes, pct float32, x, y color.Color) color.RGBA {
	cx := asColorful(x)
	cy := asColorful(y)
	px := clamp(pct, 0, 100) / 100
	t := float64(1 - px) // colorful blends toward the second color

	var c colorful.Color
	switch bt {
	case HCL:
		c = cx.BlendHcl(cy, t).Clamped()
	default:
		c = cx.BlendLuv(cy, t).Clamped()
	}
	res := RGB{float32(c.R), float32(c.G), float32(c.B)}.AsRGBA()
	res.A = uint8(px*float32(AsRGBA(x).A) + (1-px)*float32(AsRGBA(y).A) + 0.5)
	return res
}

func asColorful(c color.Color) colorful.Color {
	r := AsRGBA(c)
	return colorful.Color{R: float64(r.R) / 255, G: float64(r.G) / 255, B: float64(r.B) / 255}
}
