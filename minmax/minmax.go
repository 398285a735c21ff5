// Copyright (c) 2026, The Qualmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values.
package minmax

import "github.com/chewxy/math32"

const (
	MaxFloat32 float32 = 3.402823466e+38
	MinFloat32 float32 = 1.175494351e-38
)

// F32 represents a min / max range for float32 values.
// Supports clipping, renormalizing, etc.
type F32 struct {
	Min float32
	Max float32
}

// Set sets the min and max values.
func (mr *F32) Set(mn, mx float32) {
	mr.Min = mn
	mr.Max = mx
}

// SetInfinity sets the Min to +MaxFloat, Max to -MaxFloat, suitable
// for iteratively calling FitValInRange.
func (mr *F32) SetInfinity() {
	mr.Min = MaxFloat32
	mr.Max = -MaxFloat32
}

// IsValid returns true if Min <= Max.
func (mr *F32) IsValid() bool {
	return mr.Min <= mr.Max
}

// InRange tests whether value is within the range (>= Min and <= Max).
func (mr *F32) InRange(val float32) bool {
	return ((val >= mr.Min) && (val <= mr.Max))
}

// Range returns Max - Min.
func (mr *F32) Range() float32 {
	return mr.Max - mr.Min
}

// Scale returns 1 / Range -- if Range = 0 then returns 0.
func (mr *F32) Scale() float32 {
	r := mr.Range()
	if r != 0 {
		return 1 / r
	}
	return 0
}

// Midpoint returns point halfway between Min and Max.
func (mr *F32) Midpoint() float32 {
	return 0.5 * (mr.Max + mr.Min)
}

// FitValInRange adjusts our Min, Max to fit given value within Min, Max
// range; returns true if we had to adjust to fit.
func (mr *F32) FitValInRange(val float32) bool {
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// NormValue normalizes value to 0-1 unit range relative to current
// Min / Max range. Clips the value within Min-Max range first.
func (mr *F32) NormValue(val float32) float32 {
	return (mr.ClipValue(val) - mr.Min) * mr.Scale()
}

// LogNormValue normalizes value to the 0-1 unit range using the
// logarithm of the value relative to the logarithms of Min and Max,
// clipping first. Requires Min > 0; returns 0 otherwise.
func (mr *F32) LogNormValue(val float32) float32 {
	if mr.Min <= 0 || mr.Max <= mr.Min {
		return 0
	}
	lr := math32.Log(mr.Max) - math32.Log(mr.Min)
	return (math32.Log(mr.ClipValue(val)) - math32.Log(mr.Min)) / lr
}

// ProjValue projects a 0-1 normalized unit value into current
// Min / Max range (inverse of NormValue).
func (mr *F32) ProjValue(val float32) float32 {
	return mr.Min + (val * mr.Range())
}

// LogProjValue projects a 0-1 normalized unit value into the current
// Min / Max range on a logarithmic scale (inverse of LogNormValue).
// Requires Min > 0; returns Min otherwise.
func (mr *F32) LogProjValue(val float32) float32 {
	if mr.Min <= 0 {
		return mr.Min
	}
	return mr.Min * math32.Pow(mr.Max/mr.Min, val)
}

// ClipValue clips given value within Min / Max range.
// Note: a NaN will remain as a NaN.
func (mr *F32) ClipValue(val float32) float32 {
	if val < mr.Min {
		return mr.Min
	}
	if val > mr.Max {
		return mr.Max
	}
	return val
}

// ClipNormValue clips then normalizes given value within 0-1.
// Note: a NaN will remain as a NaN.
func (mr *F32) ClipNormValue(val float32) float32 {
	if val < mr.Min {
		return 0
	}
	if val > mr.Max {
		return 1
	}
	return mr.NormValue(val)
}

// NiceRoundNumber returns the closest nice round number either below
// or above the given number, based on the observation that numbers
// 1, 2, 5 times powers of 10 look nice. Used for tick labels.
func NiceRoundNumber(x float32, below bool) float32 {
	if x == 0 {
		return 0
	}
	if x < 0 {
		return -NiceRoundNumber(-x, !below)
	}
	exp := math32.Floor(math32.Log10(x))
	order := math32.Pow(10, exp)
	f := x / order
	var nf float32
	if below {
		switch {
		case f >= 5:
			nf = 5
		case f >= 2:
			nf = 2
		default:
			nf = 1
		}
	} else {
		switch {
		case f <= 1:
			nf = 1
		case f <= 2:
			nf = 2
		case f <= 5:
			nf = 5
		default:
			nf = 10
		}
	}
	return nf * order
}
