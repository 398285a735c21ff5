// Copyright (c) 2026, The Qualmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quality defines the contracts between a mesh-quality data
// source and the color tables that visualize it. Quality scalars are
// computed per cell by an external metrics engine and consumed here as
// opaque floats; this package never evaluates metric formulas itself.
package quality

import (
	"github.com/meshviz/qualmap/minmax"
)

// Measure is the name of a mesh-quality measure as defined by the
// external metrics suite. The names are opaque labels here.
type Measure string

// Standard tetrahedral quality measure names.
const (
	AspectRatio         Measure = "Aspect Ratio"
	AspectGamma         Measure = "Aspect Gamma"
	Condition           Measure = "Condition"
	EdgeRatio           Measure = "Edge Ratio"
	Jacobian            Measure = "Jacobian"
	MinDihedralAngle    Measure = "Minimum Dihedral Angle"
	RadiusRatio         Measure = "Radius Ratio"
	ScaledJacobian      Measure = "Scaled Jacobian"
	Shape               Measure = "Shape"
	RelativeSizeSquared Measure = "Relative Size Squared"
	Volume              Measure = "Volume"
)

// Grid is the contract for a mesh source that supplies precomputed
// per-cell quality scalars for a chosen measure, along with the
// overall range across all cells.
type Grid interface {

	// NumCells returns the number of cells in the grid.
	NumCells() int

	// CellQuality returns the quality scalar for the given cell.
	CellQuality(cell int) float32

	// QualityRange returns the (min, max) quality across all cells.
	QualityRange() (min, max float32)
}

// MemGrid is an in-memory [Grid] over a slice of per-cell quality
// values, as delivered by an external metrics engine.
type MemGrid struct {

	// Measure is the quality measure the values were computed for.
	Measure Measure

	// Values are the per-cell quality scalars, indexed by cell.
	Values []float32
}

// NewMemGrid returns a MemGrid for the given measure and values.
func NewMemGrid(ms Measure, vals []float32) *MemGrid {
	return &MemGrid{Measure: ms, Values: vals}
}

func (mg *MemGrid) NumCells() int {
	return len(mg.Values)
}

func (mg *MemGrid) CellQuality(cell int) float32 {
	return mg.Values[cell]
}

func (mg *MemGrid) QualityRange() (min, max float32) {
	var rng minmax.F32
	rng.SetInfinity()
	for _, v := range mg.Values {
		rng.FitValInRange(v)
	}
	return rng.Min, rng.Max
}
