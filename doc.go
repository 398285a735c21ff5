// Copyright (c) 2026, The Qualmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qualmap provides diverging color lookup tables for visualizing
// mesh-quality scalar fields.
//
// The central type is [Table], an immutable, discretized color ramp built
// by interpolating between two endpoint colors in a perceptually uniform
// colorspace (CIE L*a*b* by default). A Table maps a scalar value within
// a (min, max) range to one of its entries, either linearly or on a
// logarithmic scale for right-skewed quality distributions where most
// cells cluster near the minimum.
//
// [Map] is the continuous form: a named sequence of color stops blended
// in a configurable colorspace, with a registry of standard diverging
// schemes in [StandardMaps]. Tables are discretizations of maps.
//
// Per-cell quality scalars come from an external metrics engine; this
// package only colors them. See the quality subpackage for the consumer
// contracts and the legend subpackage for rendering a color bar.
package qualmap
