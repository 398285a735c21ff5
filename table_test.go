// Copyright (c) 2026, The Qualmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qualmap

import (
	"image/color"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/meshviz/qualmap/cie"
)

// labOf returns the L*a*b* coordinates of an opaque RGBA color.
func labOf(c color.RGBA) (l, a, b float32) {
	return cie.SRGBToLAB(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255)
}

func deltaE(x, y color.RGBA) float32 {
	lx, ax, bx := labOf(x)
	ly, ay, by := labOf(y)
	return cie.DeltaE(lx, ax, bx, ly, ay, by)
}

func TestNewTableSizes(t *testing.T) {
	for _, n := range []int{2, 3, 16, 256, 1024} {
		tbl, err := NewTable(n, Cool, Warm, false)
		assert.NoError(t, err)
		assert.Equal(t, n, tbl.Len())
		for _, c := range tbl.Colors {
			assert.Equal(t, uint8(255), c.A)
		}
	}
}

func TestNewTableInvalid(t *testing.T) {
	_, err := NewTable(1, Cool, Warm, false)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewTable(0, Cool, Warm, false)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewTable(256, RGB{-0.1, 0.5, 0.5}, Warm, false)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewTable(256, Cool, RGB{0.5, 1.2, 0.5}, true)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTableEndpoints(t *testing.T) {
	tbl, err := NewTable(256, Cool, Warm, false)
	assert.NoError(t, err)

	lo, err := tbl.Lookup(0, 0, 100)
	assert.NoError(t, err)
	assert.Equal(t, tbl.Colors[0], lo)
	assert.Less(t, deltaE(lo, Cool.AsRGBA()), float32(1))

	hi, err := tbl.Lookup(100, 0, 100)
	assert.NoError(t, err)
	assert.Equal(t, tbl.Colors[255], hi)
	assert.Less(t, deltaE(hi, Warm.AsRGBA()), float32(1))
}

func TestTableClamping(t *testing.T) {
	tbl, _ := NewTable(256, Cool, Warm, false)
	for _, v := range []float32{-1e6, -3.5, -0.001} {
		c, err := tbl.Lookup(v, 0, 100)
		assert.NoError(t, err)
		assert.Equal(t, tbl.Colors[0], c)
	}
	for _, v := range []float32{100.001, 250, 1e6} {
		c, err := tbl.Lookup(v, 0, 100)
		assert.NoError(t, err)
		assert.Equal(t, tbl.Colors[255], c)
	}
}

func TestTableDegenerateRange(t *testing.T) {
	tbl, _ := NewTable(256, Cool, Warm, false)

	c, err := tbl.Lookup(3, 3, 3)
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Equal(t, tbl.Colors[0], c)

	c, err = tbl.Lookup(5, 10, 2)
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Equal(t, tbl.Colors[0], c)
}

// Degenerate cells can feed NaN qualities through; those must land on
// a table entry, not panic.
func TestTableNaNValue(t *testing.T) {
	nan := math32.NaN()

	tbl, _ := NewTable(256, Cool, Warm, false)
	n, err := tbl.Norm(nan, 0, 100)
	assert.NoError(t, err)
	assert.Equal(t, float32(0), n)
	c, err := tbl.Lookup(nan, 0, 100)
	assert.NoError(t, err)
	assert.Equal(t, tbl.Colors[0], c)

	lt, _ := NewTable(256, Cool, Warm, true)
	c, err = lt.Lookup(nan, 0.001, 100)
	assert.NoError(t, err)
	assert.Equal(t, lt.Colors[0], c)
}

func TestTableLogInvalidMin(t *testing.T) {
	tbl, _ := NewTable(256, Cool, Warm, true)
	for _, min := range []float32{0, -1} {
		c, err := tbl.Lookup(1, min, 100)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, tbl.Colors[0], c)
	}
}

// The table midpoint must be a genuine interpolation, perceptually
// between the endpoints rather than snapped to either.
func TestTableMidpoint(t *testing.T) {
	tbl, _ := NewTable(256, Cool, Warm, false)
	mid, err := tbl.Lookup(50, 0, 100)
	assert.NoError(t, err)

	dLo := deltaE(mid, tbl.Colors[0])
	dHi := deltaE(mid, tbl.Colors[255])
	total := deltaE(tbl.Colors[0], tbl.Colors[255])
	assert.Greater(t, dLo, total/4)
	assert.Greater(t, dHi, total/4)
}

// Consecutive entries must take bounded, roughly uniform perceptual
// steps: none visually identical, none dominating the total ramp.
func TestTableUniformSteps(t *testing.T) {
	tbl, _ := NewTable(64, Cool, Warm, false)
	var steps []float32
	var sum, max float32
	for i := 1; i < tbl.Len(); i++ {
		d := deltaE(tbl.Colors[i-1], tbl.Colors[i])
		steps = append(steps, d)
		sum += d
		max = math32.Max(max, d)
	}
	mean := sum / float32(len(steps))
	assert.Greater(t, mean, float32(0.5))
	assert.Less(t, max, 3*mean)

	coarse, _ := NewTable(32, Cool, Warm, false)
	for i := 1; i < coarse.Len(); i++ {
		assert.NotEqual(t, coarse.Colors[i-1], coarse.Colors[i], "adjacent entries %d and %d identical", i-1, i)
	}
}

// Log scaling must spread color resolution toward the low end of a
// right-skewed sample set: strictly more distinct indices than the
// linear mapping over the same samples.
func TestTableLogSkew(t *testing.T) {
	lin, _ := NewTable(256, Cool, Warm, false)
	lg, _ := NewTable(256, Cool, Warm, true)

	// samples clustered within [min, 100*min] of a [min, 1e5*min] range
	samples := []float32{0.001, 0.0013, 0.002, 0.003, 0.005, 0.008, 0.013, 0.02, 0.03, 0.05, 0.08, 0.1}
	const min, max = 0.001, 100.0

	distinct := func(tbl *Table) int {
		seen := map[int]bool{}
		for _, v := range samples {
			i, err := tbl.Index(v, min, max)
			assert.NoError(t, err)
			seen[i] = true
		}
		return len(seen)
	}
	nLin := distinct(lin)
	nLog := distinct(lg)
	assert.Greater(t, nLog, nLin)
}

func TestTableAt(t *testing.T) {
	tbl, _ := NewTable(16, Cool, Warm, false)
	assert.Equal(t, tbl.Colors[0], tbl.At(-3))
	assert.Equal(t, tbl.Colors[15], tbl.At(99))
	assert.Equal(t, tbl.Colors[7], tbl.At(7))
}

func TestNewTableMap(t *testing.T) {
	m, err := MapByName("CoolToWarmNeutral")
	assert.NoError(t, err)
	tbl, err := NewTableMap(m, 101, false)
	assert.NoError(t, err)

	// middle stop is the neutral color
	mid := tbl.Colors[50]
	assert.Less(t, deltaE(mid, RGB{0.865, 0.865, 0.865}.AsRGBA()), float32(1.5))

	_, err = NewTableMap(m, 1, false)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
