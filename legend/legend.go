// Copyright (c) 2026, The Qualmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package legend renders a color table as a legend bar image: the
// table's ramp drawn across its scalar range, with nice-number tick
// labels, as shown next to a quality-colored mesh.
package legend

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/meshviz/qualmap"
	"github.com/meshviz/qualmap/minmax"
)

// Options control legend rendering.
type Options struct {

	// Size is the total image size in pixels.
	// The zero value renders at 512 x 64 (or 64 x 512 vertical).
	Size image.Point

	// Vertical renders the bar bottom-to-top instead of left-to-right.
	Vertical bool

	// Ticks is the number of tick labels, spaced evenly along the bar
	// (in index space, so log-scale tables get log-spaced values).
	// The zero value renders 5 ticks; 1 disables labels.
	Ticks int
}

const textStrip = 16 // pixels reserved for tick labels

var (
	background = color.RGBA{255, 255, 255, 255}
	textColor  = color.RGBA{16, 16, 16, 255}
)

func (o *Options) defaults(vertical bool) {
	if o.Ticks == 0 {
		o.Ticks = 5
	}
	if o.Size == (image.Point{}) {
		if vertical {
			o.Size = image.Point{64, 512}
		} else {
			o.Size = image.Point{512, 64}
		}
	}
}

// Draw renders the given table across the given scalar range as a
// legend bar. A nil opts renders a horizontal 512 x 64 bar with
// 5 tick labels.
func Draw(t *qualmap.Table, rng minmax.F32, opts *Options) *image.RGBA {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	o.defaults(o.Vertical)

	img := image.NewRGBA(image.Rectangle{Max: o.Size})
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	if o.Size.X < 2 || o.Size.Y < 2 {
		return img
	}
	if o.Vertical {
		drawVertical(img, t, rng, &o)
	} else {
		drawHorizontal(img, t, rng, &o)
	}
	return img
}

func drawHorizontal(img *image.RGBA, t *qualmap.Table, rng minmax.F32, o *Options) {
	w := o.Size.X
	barH := o.Size.Y - textStrip
	if barH < 1 {
		barH = o.Size.Y
	}
	for x := 0; x < w; x++ {
		frac := float32(x) / float32(w-1)
		c := t.At(int(frac * float32(t.Len()-1)))
		for y := 0; y < barH; y++ {
			img.SetRGBA(x, y, c)
		}
	}
	if o.Ticks < 2 || barH == o.Size.Y {
		return
	}
	for k := 0; k < o.Ticks; k++ {
		frac := float32(k) / float32(o.Ticks-1)
		lbl := tickLabel(t, rng, frac)
		tw := len(lbl) * basicfont.Face7x13.Advance
		tx := int(frac*float32(w)) - tw/2
		if tx < 0 {
			tx = 0
		}
		if tx+tw > w {
			tx = w - tw
		}
		drawString(img, lbl, tx, barH+basicfont.Face7x13.Ascent)
	}
}

func drawVertical(img *image.RGBA, t *qualmap.Table, rng minmax.F32, o *Options) {
	h := o.Size.Y
	barW := o.Size.X / 3
	if barW < 1 {
		barW = o.Size.X
	}
	for y := 0; y < h; y++ {
		frac := float32(h-1-y) / float32(h-1) // bottom is the range minimum
		c := t.At(int(frac * float32(t.Len()-1)))
		for x := 0; x < barW; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	if o.Ticks < 2 || barW == o.Size.X {
		return
	}
	face := basicfont.Face7x13
	for k := 0; k < o.Ticks; k++ {
		frac := float32(k) / float32(o.Ticks-1)
		lbl := tickLabel(t, rng, frac)
		ty := h - 1 - int(frac*float32(h-1))
		if ty < face.Ascent {
			ty = face.Ascent
		}
		if ty > h-1 {
			ty = h - 1
		}
		drawString(img, lbl, barW+2, ty)
	}
}

// tickLabel returns the scalar value label at the given fraction along
// the bar; log-scale tables project log-spaced values.
func tickLabel(t *qualmap.Table, rng minmax.F32, frac float32) string {
	var val float32
	if t.LogScale {
		val = rng.LogProjValue(frac)
	} else {
		val = rng.ProjValue(frac)
	}
	return strconv.FormatFloat(float64(val), 'g', 4, 32)
}

func drawString(img *image.RGBA, s string, x, y int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
