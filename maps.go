// Copyright (c) 2026, The Qualmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qualmap

import (
	"fmt"
	"image/color"
	"sort"
)

// Stop is a single color stop in a [Map]: a color at a normalized
// position along the ramp.
type Stop struct {

	// Color is the color of the stop, fully opaque.
	Color color.RGBA

	// Pos is the position of the stop between 0 and 1.
	Pos float32
}

// Map is a named continuous colormap: an ordered sequence of color
// stops blended in a given colorspace. Stop positions must be strictly
// increasing, starting at exactly 0 and ending at exactly 1.
// A Map is immutable after construction.
type Map struct {

	// Name is the name of the colormap, used for registry lookup.
	Name string

	// Stops are the color stops, in strictly increasing position order,
	// from position 0 to position 1.
	Stops []Stop

	// Blend is the colorspace used to interpolate between stops.
	Blend BlendTypes
}

// NewMap returns a new colormap with the given name, blend colorspace,
// and stops, validating the stop invariants: at least two stops,
// strictly increasing positions, first at 0 and last at 1.
func NewMap(name string, bt BlendTypes, stops ...Stop) (*Map, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("qualmap.NewMap: %w: need at least 2 stops, got %d", ErrInvalidArgument, len(stops))
	}
	if stops[0].Pos != 0 {
		return nil, fmt.Errorf("qualmap.NewMap: %w: first stop must be at position 0, got %g", ErrInvalidArgument, stops[0].Pos)
	}
	if stops[len(stops)-1].Pos != 1 {
		return nil, fmt.Errorf("qualmap.NewMap: %w: last stop must be at position 1, got %g", ErrInvalidArgument, stops[len(stops)-1].Pos)
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].Pos <= stops[i-1].Pos {
			return nil, fmt.Errorf("qualmap.NewMap: %w: stop positions must be strictly increasing, got %g after %g", ErrInvalidArgument, stops[i].Pos, stops[i-1].Pos)
		}
	}
	m := &Map{Name: name, Blend: bt, Stops: make([]Stop, len(stops))}
	copy(m.Stops, stops)
	return m, nil
}

// NewDivergingMap returns a two-stop diverging colormap between the
// given cool and warm endpoint colors, blended in CIE L*a*b* space.
func NewDivergingMap(name string, start, end RGB) (*Map, error) {
	if !start.IsValid() || !end.IsValid() {
		return nil, fmt.Errorf("qualmap.NewDivergingMap: %w: color channels must be in 0-1 range: start %v, end %v", ErrInvalidArgument, start, end)
	}
	return NewMap(name, LAB, Stop{start.AsRGBA(), 0}, Stop{end.AsRGBA(), 1})
}

// At returns the color at the given normalized position along the map.
// Positions outside the 0-1 range are clamped to the endpoint stops.
func (m *Map) At(pos float32) color.RGBA {
	n := len(m.Stops)
	if pos <= 0 {
		return m.Stops[0].Color
	}
	if pos >= 1 {
		return m.Stops[n-1].Color
	}
	place := 0
	for place != n && pos > m.Stops[place].Pos {
		place++
	}
	switch place {
	case 0:
		return m.Stops[0].Color
	case n:
		return m.Stops[n-1].Color
	}
	s1, s2 := m.Stops[place-1], m.Stops[place]
	tp := (pos - s1.Pos) / (s2.Pos - s1.Pos)
	switch tp {
	case 0:
		return s1.Color
	case 1:
		return s2.Color
	}
	return Blend(m.Blend, 100*(1-tp), s1.Color, s2.Color)
}

func (m *Map) String() string {
	return m.Name
}

// StandardMaps is the registry of named colormaps, seeded with the
// standard diverging schemes below. The consumer application may
// register more, including ones loaded via [OpenMap], before any
// concurrent use.
var StandardMaps = map[string]*Map{}

// AddMap adds the given map to [StandardMaps] under its name,
// replacing any existing entry.
func AddMap(m *Map) {
	StandardMaps[m.Name] = m
}

// MapByName returns the registered colormap with the given name.
func MapByName(name string) (*Map, error) {
	m, ok := StandardMaps[name]
	if !ok {
		return nil, fmt.Errorf("qualmap.MapByName: %w: no colormap named %q", ErrInvalidArgument, name)
	}
	return m, nil
}

// MapNames returns the sorted list of registered colormap names.
func MapNames() []string {
	nms := make([]string, 0, len(StandardMaps))
	for nm := range StandardMaps {
		nms = append(nms, nm)
	}
	sort.Strings(nms)
	return nms
}

func mustMap(m *Map, err error) *Map {
	if err != nil {
		panic(err)
	}
	return m
}

func init() {
	neutral := RGB{0.865, 0.865, 0.865}.AsRGBA()
	AddMap(mustMap(NewDivergingMap("CoolToWarm", Cool, Warm)))
	AddMap(mustMap(NewMap("CoolToWarmNeutral", LAB,
		Stop{Cool.AsRGBA(), 0}, Stop{neutral, 0.5}, Stop{Warm.AsRGBA(), 1})))
	AddMap(mustMap(NewMap("PurpleGreen", LAB,
		Stop{color.RGBA{118, 42, 131, 255}, 0}, Stop{neutral, 0.5}, Stop{color.RGBA{27, 120, 55, 255}, 1})))
	AddMap(mustMap(NewMap("BrownTeal", LAB,
		Stop{color.RGBA{140, 81, 10, 255}, 0}, Stop{neutral, 0.5}, Stop{color.RGBA{1, 102, 94, 255}, 1})))
	AddMap(mustMap(NewMap("Grey", SRGB,
		Stop{color.RGBA{20, 20, 20, 255}, 0}, Stop{color.RGBA{235, 235, 235, 255}, 1})))
}
