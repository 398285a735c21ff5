// Copyright (c) 2026, The Qualmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of
// numbers with tolerance (in other words, it checks whether numbers
// are about equal).
package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Equal checks whether the two given numbers are about equal, within
// a tolerance of 0.001. It fails the test with a helpful message if
// they are not.
func Equal(t *testing.T, expected, actual float32) bool {
	t.Helper()
	return EqualTol(t, expected, actual, 0.001)
}

// EqualTol is like [Equal] except that it uses the given tolerance.
func EqualTol(t *testing.T, expected, actual, tol float32) bool {
	t.Helper()
	return assert.InDelta(t, expected, actual, float64(tol))
}
