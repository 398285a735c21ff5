// Copyright (c) 2026, The Qualmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides conversions between the CIE standard
// colorspaces used for perceptually uniform color interpolation:
// gamma-corrected sRGB, linear RGB, XYZ, and L*a*b*, all in float32
// with a D65 reference white.
package cie
