// Copyright (c) 2026, The Qualmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qualmap

import "errors"

var (
	// ErrInvalidArgument indicates malformed construction parameters:
	// a table size below 2, a color channel outside [0, 1], or a
	// non-positive range minimum under logarithmic scaling.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidRange indicates a degenerate (min == max) or inverted
	// (min > max) scalar range at lookup time.
	ErrInvalidRange = errors.New("invalid range")
)
