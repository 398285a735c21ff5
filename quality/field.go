// Copyright (c) 2026, The Qualmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quality

import (
	"fmt"
	"image/color"

	"github.com/meshviz/qualmap"
	"github.com/meshviz/qualmap/minmax"
)

// Field binds a quality [Grid] to a color [qualmap.Table] under an
// active scalar range, producing per-cell colors for rendering.
// The range belongs to the Field, not the table: the same table can
// color multiple fields with different ranges.
type Field struct {

	// Grid is the quality data source.
	Grid Grid

	// Table is the color lookup table.
	Table *qualmap.Table

	// Range is the active scalar-to-color range.
	Range minmax.F32
}

// NewField returns a Field over the given grid and table, with the
// range fit to the grid's quality range. A degenerate range (every
// cell with identical quality) is widened to a usable substitute:
// for a linear table by half a unit on each side, for a logarithmic
// table by a decade above the minimum. A logarithmic table over a
// grid with a non-positive minimum is rejected, as is a grid with
// no cells.
func NewField(g Grid, t *qualmap.Table) (*Field, error) {
	if g.NumCells() == 0 {
		return nil, fmt.Errorf("quality.NewField: %w: grid has no cells", qualmap.ErrInvalidArgument)
	}
	f := &Field{Grid: g, Table: t}
	min, max := g.QualityRange()
	if t.LogScale && min <= 0 {
		return nil, fmt.Errorf("quality.NewField: %w: quality minimum %g must be positive for a log-scale table", qualmap.ErrInvalidArgument, min)
	}
	if min == max {
		if t.LogScale {
			max = min * 10
		} else {
			min -= 0.5
			max += 0.5
		}
	}
	f.Range.Set(min, max)
	return f, nil
}

// Color returns the table color for the given cell's quality value.
func (f *Field) Color(cell int) color.RGBA {
	c, _ := f.Table.Lookup(f.Grid.CellQuality(cell), f.Range.Min, f.Range.Max)
	return c
}

// Colors returns the per-cell colors for the whole grid, in cell order.
func (f *Field) Colors() []color.RGBA {
	cs := make([]color.RGBA, f.Grid.NumCells())
	for i := range cs {
		cs[i] = f.Color(i)
	}
	return cs
}

// NiceRange returns the field's range widened outward to nice round
// numbers, suitable for legend endpoints.
func (f *Field) NiceRange() minmax.F32 {
	var nr minmax.F32
	nr.Set(minmax.NiceRoundNumber(f.Range.Min, true), minmax.NiceRoundNumber(f.Range.Max, false))
	return nr
}
