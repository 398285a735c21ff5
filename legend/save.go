// Copyright (c) 2026, The Qualmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package legend

import (
	"bufio"
	"image"
	"image/png"
	"os"
)

// OpenPNG opens an image from the given PNG filename.
func OpenPNG(filename string) (image.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return png.Decode(bufio.NewReader(file))
}

// SavePNG saves the given image to the given PNG filename.
func SavePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	buf := bufio.NewWriter(file)
	if err := png.Encode(buf, img); err != nil {
		return err
	}
	return buf.Flush()
}
