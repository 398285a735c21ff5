// Copyright (c) 2026, The Qualmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qualmap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// mapSpec is the on-disk form of a [Map], with hex color strings.
type mapSpec struct {
	Name  string     `toml:"name" yaml:"name"`
	Blend string     `toml:"blend" yaml:"blend"`
	Stops []stopSpec `toml:"stops" yaml:"stops"`
}

type stopSpec struct {
	Color string  `toml:"color" yaml:"color"`
	Pos   float32 `toml:"pos" yaml:"pos"`
}

// OpenMap reads a colormap definition from the given TOML or YAML
// file, dispatching on the filename extension (.toml, .yaml, .yml).
// The result is validated like [NewMap] but is not registered;
// call [AddMap] to make it available by name.
func OpenMap(filename string) (*Map, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var ms mapSpec
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &ms)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &ms)
	default:
		return nil, fmt.Errorf("qualmap.OpenMap: %w: unsupported extension %q", ErrInvalidArgument, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("qualmap.OpenMap: %s: %w", filename, err)
	}
	return ms.asMap()
}

// SaveMap writes the given colormap to a TOML or YAML file,
// dispatching on the filename extension (.toml, .yaml, .yml).
func SaveMap(m *Map, filename string) error {
	ms := mapSpec{Name: m.Name, Blend: m.Blend.String()}
	for _, st := range m.Stops {
		ms.Stops = append(ms.Stops, stopSpec{Color: AsHex(st.Color), Pos: st.Pos})
	}
	var data []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		data, err = toml.Marshal(&ms)
	case ".yaml", ".yml":
		data, err = yaml.Marshal(&ms)
	default:
		return fmt.Errorf("qualmap.SaveMap: %w: unsupported extension %q", ErrInvalidArgument, ext)
	}
	if err != nil {
		return fmt.Errorf("qualmap.SaveMap: %s: %w", filename, err)
	}
	return os.WriteFile(filename, data, 0666)
}

func (ms *mapSpec) asMap() (*Map, error) {
	bt := LAB
	if ms.Blend != "" {
		var err error
		bt, err = BlendTypeFromString(ms.Blend)
		if err != nil {
			return nil, err
		}
	}
	stops := make([]Stop, len(ms.Stops))
	for i, ss := range ms.Stops {
		c, err := FromHex(ss.Color)
		if err != nil {
			return nil, err
		}
		stops[i] = Stop{c, ss.Pos}
	}
	return NewMap(ms.Name, bt, stops...)
}
