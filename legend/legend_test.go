// Copyright (c) 2026, The Qualmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package legend

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meshviz/qualmap"
	"github.com/meshviz/qualmap/minmax"
)

func testRange(min, max float32) minmax.F32 {
	var rng minmax.F32
	rng.Set(min, max)
	return rng
}

func TestDrawHorizontal(t *testing.T) {
	tbl, err := qualmap.NewTable(256, qualmap.Cool, qualmap.Warm, false)
	assert.NoError(t, err)

	img := Draw(tbl, testRange(0, 100), nil)
	assert.Equal(t, image.Rect(0, 0, 512, 64), img.Bounds())

	// ramp endpoints at the bar corners
	assert.Equal(t, tbl.Colors[0], img.RGBAAt(0, 0))
	assert.Equal(t, tbl.Colors[255], img.RGBAAt(511, 0))

	// label strip is background, not ramp
	assert.Equal(t, background, img.RGBAAt(5, 63))
}

func TestDrawVertical(t *testing.T) {
	tbl, _ := qualmap.NewTable(256, qualmap.Cool, qualmap.Warm, false)

	img := Draw(tbl, testRange(0, 1), &Options{Vertical: true})
	assert.Equal(t, image.Rect(0, 0, 64, 512), img.Bounds())

	// minimum at the bottom, maximum at the top
	assert.Equal(t, tbl.Colors[0], img.RGBAAt(0, 511))
	assert.Equal(t, tbl.Colors[255], img.RGBAAt(0, 0))
}

func TestDrawCustomSize(t *testing.T) {
	tbl, _ := qualmap.NewTable(16, qualmap.Cool, qualmap.Warm, false)

	img := Draw(tbl, testRange(0, 1), &Options{Size: image.Pt(100, 30), Ticks: 3})
	assert.Equal(t, image.Rect(0, 0, 100, 30), img.Bounds())
}

func TestSavePNG(t *testing.T) {
	tbl, _ := qualmap.NewTable(64, qualmap.Cool, qualmap.Warm, false)
	img := Draw(tbl, testRange(0, 1), nil)

	path := filepath.Join(t.TempDir(), "legend.png")
	assert.NoError(t, SavePNG(path, img))

	back, err := OpenPNG(path)
	assert.NoError(t, err)
	assert.Equal(t, img.Bounds(), back.Bounds())
}
