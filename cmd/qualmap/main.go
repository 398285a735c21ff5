// Copyright (c) 2026, The Qualmap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command qualmap builds diverging color lookup tables and renders
// them as legend images, terminal previews, or CSV dumps.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/meshviz/qualmap"
	"github.com/meshviz/qualmap/legend"
	"github.com/meshviz/qualmap/minmax"
)

var (
	mapName  string
	entries  int
	logScale bool
	rangeMin float64
	rangeMax float64
)

func main() {
	root := &cobra.Command{
		Use:   "qualmap",
		Short: "build and render diverging color lookup tables for mesh-quality scalars",
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&mapName, "map", "m", "CoolToWarm", "colormap name, or path to a .toml/.yaml colormap file")
	pf.IntVarP(&entries, "entries", "n", qualmap.DefaultTableSize, "number of discrete table entries")
	pf.BoolVar(&logScale, "log", false, "map scalar values to entries logarithmically (requires min > 0)")
	pf.Float64Var(&rangeMin, "min", 0, "scalar range minimum")
	pf.Float64Var(&rangeMax, "max", 1, "scalar range maximum")

	root.AddCommand(legendCmd(), previewCmd(), dumpCmd())

	if err := root.Execute(); err != nil {
		slog.Error("qualmap failed", "err", err)
		os.Exit(1)
	}
}

// buildTable resolves the --map flag to a registered name or a
// colormap file and discretizes it per the shared flags.
func buildTable() (*qualmap.Table, error) {
	var m *qualmap.Map
	var err error
	switch strings.ToLower(filepath.Ext(mapName)) {
	case ".toml", ".yaml", ".yml":
		m, err = qualmap.OpenMap(mapName)
	default:
		m, err = qualmap.MapByName(mapName)
	}
	if err != nil {
		return nil, err
	}
	return qualmap.NewTableMap(m, entries, logScale)
}

func scalarRange() minmax.F32 {
	var rng minmax.F32
	rng.Set(float32(rangeMin), float32(rangeMax))
	return rng
}

func legendCmd() *cobra.Command {
	var output string
	var width, height, ticks int
	var vertical bool
	cmd := &cobra.Command{
		Use:   "legend",
		Short: "write a legend bar PNG for the table across the scalar range",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := buildTable()
			if err != nil {
				return err
			}
			rng := scalarRange()
			if !rng.IsValid() || rng.Range() == 0 {
				return fmt.Errorf("legend: %w: min %g, max %g", qualmap.ErrInvalidRange, rng.Min, rng.Max)
			}
			opts := &legend.Options{Vertical: vertical, Ticks: ticks}
			if width > 0 && height > 0 {
				opts.Size.X, opts.Size.Y = width, height
			}
			img := legend.Draw(t, rng, opts)
			if err := legend.SavePNG(output, img); err != nil {
				return err
			}
			slog.Info("wrote legend", "file", output, "entries", t.Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "legend.png", "output PNG filename")
	cmd.Flags().IntVar(&width, "width", 0, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "image height in pixels")
	cmd.Flags().IntVar(&ticks, "ticks", 0, "number of tick labels")
	cmd.Flags().BoolVar(&vertical, "vertical", false, "render the bar bottom-to-top")
	return cmd
}

func previewCmd() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "print the table ramp as colored cells in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := buildTable()
			if err != nil {
				return err
			}
			if width < 2 {
				width = 2
			}
			out := termenv.NewOutput(os.Stdout)
			p := out.ColorProfile()
			var sb strings.Builder
			for x := 0; x < width; x++ {
				frac := float32(x) / float32(width-1)
				c := t.At(int(frac * float32(t.Len()-1)))
				sb.WriteString(out.String(" ").Background(p.Color(qualmap.AsHex(c))).String())
			}
			fmt.Fprintln(out, sb.String())
			fmt.Fprintf(out, "%-*g%g\n", width-1, rangeMin, rangeMax)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 64, "preview width in cells")
	return cmd
}

func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "print the table entries as CSV (index, r, g, b, a, value)",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := buildTable()
			if err != nil {
				return err
			}
			rng := scalarRange()
			fmt.Println("index,r,g,b,a,value")
			for i, c := range t.Colors {
				frac := float32(i) / float32(t.Len()-1)
				var val float32
				if t.LogScale {
					val = rng.LogProjValue(frac)
				} else {
					val = rng.ProjValue(frac)
				}
				fmt.Printf("%d,%d,%d,%d,%d,%g\n", i, c.R, c.G, c.B, c.A, val)
			}
			return nil
		},
	}
}
