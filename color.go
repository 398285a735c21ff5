// Copyright (c) 2026, The Qualmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qualmap

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// RGB is a color with float32 R, G, B components normalized to the
// 0-1 range, the form in which diverging scheme endpoints are
// specified. Alpha is always 1: quality coloring is fully opaque.
type RGB struct {
	R, G, B float32
}

// Standard endpoints of the cool-to-warm diverging scheme
// (Moreland's blue-red map, designed for monotonic perceptual
// change and red-green colorblind safety).
var (
	Cool = RGB{0.230, 0.299, 0.754}
	Warm = RGB{0.706, 0.016, 0.150}
)

// IsValid returns whether every component is within the 0-1 range.
func (c RGB) IsValid() bool {
	return c.R >= 0 && c.R <= 1 && c.G >= 0 && c.G <= 1 && c.B >= 0 && c.B <= 1
}

// RGBA implements the [color.Color] interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R*65535.0 + 0.5)
	g = uint32(c.G*65535.0 + 0.5)
	b = uint32(c.B*65535.0 + 0.5)
	a = 65535
	return
}

// AsRGBA returns a standard [color.RGBA] with full alpha.
func (c RGB) AsRGBA() color.RGBA {
	return color.RGBA{uint8(c.R*255.0 + 0.5), uint8(c.G*255.0 + 0.5), uint8(c.B*255.0 + 0.5), 255}
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c.R, c.G, c.B)
}

// FromColor returns the RGB form of the given color,
// discarding alpha.
func FromColor(c color.Color) RGB {
	r := AsRGBA(c)
	return RGB{float32(r.R) / 255, float32(r.G) / 255, float32(r.B) / 255}
}

// AsRGBA returns the given color as a [color.RGBA].
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsHex returns the color as a standard
// 2-hexadecimal-digits-per-component string, omitting
// the alpha component when fully opaque.
func AsHex(c color.Color) string {
	r := AsRGBA(c)
	if r.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
}

// clamp returns v constrained to the lo..hi range.
// A NaN v pins to lo.
func clamp(v, lo, hi float32) float32 {
	switch {
	case v > hi:
		return hi
	case v >= lo:
		return v
	default:
		return lo
	}
}

// FromHex parses the given hex color string in 3, 6, or 8 digit form,
// with or without a leading #, and returns the resulting color.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	switch len(hex) {
	case 3:
		fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, errors.New("qualmap.FromHex: could not process: " + hex)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}
