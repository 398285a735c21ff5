// Copyright (c) 2026, The Qualmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qualmap

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// DefaultTableSize is the standard number of discrete entries
// in a lookup table.
const DefaultTableSize = 256

// Table is a discrete color lookup table: an ordered, immutable
// sequence of fully opaque RGBA entries produced by interpolating a
// colormap in its blend colorspace. Entry i holds the color at
// normalized position i/(n-1), so the first and last entries are
// exactly the endpoint colors.
//
// A Table does not own a scalar range; the range is supplied per
// [Table.Lookup] call by the consumer. Tables are safe for concurrent
// reads once built.
type Table struct {

	// Colors are the table entries, in ramp order.
	Colors []color.RGBA

	// LogScale indicates that scalar values are mapped to entries
	// through their logarithm rather than linearly, spreading color
	// resolution toward the low end of a right-skewed distribution.
	// It requires a positive range minimum at lookup time.
	LogScale bool
}

// NewTable builds a diverging lookup table of n entries between the
// given endpoint colors, interpolated in CIE L*a*b* space. It returns
// [ErrInvalidArgument] if n < 2 or any color channel is outside the
// 0-1 range. See [Cool] and [Warm] for the standard endpoints.
func NewTable(n int, start, end RGB, logScale bool) (*Table, error) {
	if n < 2 {
		return nil, fmt.Errorf("qualmap.NewTable: %w: need at least 2 entries, got %d", ErrInvalidArgument, n)
	}
	m, err := NewDivergingMap("", start, end)
	if err != nil {
		return nil, err
	}
	return NewTableMap(m, n, logScale)
}

// NewTableMap builds a lookup table of n entries by discretizing the
// given colormap. It returns [ErrInvalidArgument] if n < 2.
func NewTableMap(m *Map, n int, logScale bool) (*Table, error) {
	if n < 2 {
		return nil, fmt.Errorf("qualmap.NewTableMap: %w: need at least 2 entries, got %d", ErrInvalidArgument, n)
	}
	t := &Table{Colors: make([]color.RGBA, n), LogScale: logScale}
	for i := 0; i < n; i++ {
		t.Colors[i] = m.At(float32(i) / float32(n-1))
	}
	return t, nil
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.Colors)
}

// At returns the entry at the given index, clamped to the valid range.
func (t *Table) At(i int) color.RGBA {
	if i < 0 {
		i = 0
	}
	if i >= len(t.Colors) {
		i = len(t.Colors) - 1
	}
	return t.Colors[i]
}

// Norm returns the normalized 0-1 position of value within the given
// scalar range, applying the table's linear or logarithmic mapping.
// Values outside the range are clamped, never rejected, and a NaN
// value maps to position 0. It returns
// [ErrInvalidRange] for a degenerate (min == max) or inverted
// (min > max) range and [ErrInvalidArgument] when min <= 0 under
// logarithmic scaling; in both cases the returned position is 0,
// the documented deterministic fallback.
func (t *Table) Norm(value, min, max float32) (float32, error) {
	if min >= max {
		return 0, fmt.Errorf("qualmap.Table.Norm: %w: min %g, max %g", ErrInvalidRange, min, max)
	}
	if t.LogScale {
		if min <= 0 {
			return 0, fmt.Errorf("qualmap.Table.Norm: %w: log scaling requires positive range minimum, got %g", ErrInvalidArgument, min)
		}
		value = clamp(value, min, max)
		return (math32.Log(value) - math32.Log(min)) / (math32.Log(max) - math32.Log(min)), nil
	}
	return clamp((value-min)/(max-min), 0, 1), nil
}

// Index returns the table index for the given value within the given
// scalar range, under the same error and fallback rules as [Table.Norm].
// The fallback index is 0.
func (t *Table) Index(value, min, max float32) (int, error) {
	norm, err := t.Norm(value, min, max)
	if err != nil {
		return 0, err
	}
	return int(norm * float32(len(t.Colors)-1)), nil
}

// Lookup returns the table color for the given value within the given
// scalar range. Out-of-range values clamp to the endpoint entries,
// and a NaN value yields the first entry.
// On a degenerate or inverted range it returns [ErrInvalidRange], and
// in logarithmic mode with min <= 0 it returns [ErrInvalidArgument];
// in both cases the first table entry is returned alongside the error
// as a deterministic fallback, so callers that ignore the error still
// render a stable color.
func (t *Table) Lookup(value, min, max float32) (color.RGBA, error) {
	i, err := t.Index(value, min, max)
	if err != nil {
		return t.Colors[0], err
	}
	return t.Colors[i], nil
}
