// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws datasets as line charts.
package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/benchgraph/benchgraph/dataset"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// DisplayedSeries is the number of series drawn by default.
const DisplayedSeries = 5

const (
	defaultWidth  = 800
	defaultHeight = 500
	dpi           = 96
	pointRad      = 3
)

// Options configures Render.
type Options struct {
	// Format is "png" or "svg".
	Format string
	// MaxSeries limits the number of series drawn; see Select.
	// Zero means DisplayedSeries, negative means all.
	MaxSeries int
}

// pixels converts a screen size to a vg.Length at dpi.
func pixels(n float64) vg.Length {
	return vg.Length(n) * vg.Inch / dpi
}

// Render draws d as a line chart with one line per series, using the
// size, legend and axis ranges from d's settings.
func Render(d *dataset.Dataset, opts Options) ([]byte, error) {
	settings, err := d.Settings()
	if err != nil {
		return nil, err
	}
	width, height := settings.Width, settings.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	w, h := pixels(width), pixels(height)

	var can vg.CanvasWriterTo
	switch opts.Format {
	case "png":
		can = vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))}
	case "svg":
		can = vgsvg.New(w, h)
	default:
		return nil, fmt.Errorf("unsupported chart format %q", opts.Format)
	}

	max := opts.MaxSeries
	if max == 0 {
		max = DisplayedSeries
	}
	pl, err := newPlot(Select(d.GraphData, max), settings)
	if err != nil {
		return nil, err
	}
	pl.Draw(draw.New(can))

	var buf bytes.Buffer
	if _, err := can.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newPlot(series []dataset.Series, settings *dataset.Settings) (*plot.Plot, error) {
	pl := plot.New()
	pl.X.Label.Text = settings.Legend.X
	pl.Y.Label.Text = settings.Legend.Y
	pl.Legend.Top = true

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	pl.Add(grid)

	var xs, ys []float64
	for i, s := range series {
		pts := make(plotter.XYs, len(s.Values))
		for j, v := range s.Values {
			pts[j].X, pts[j].Y = v.X, v.Y
			xs = append(xs, v.X)
			ys = append(ys, v.Y)
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, fmt.Errorf("series %s: %v", s.Name, err)
		}
		clr := plotutil.Color(i)
		line.Color = clr
		line.Width = vg.Points(2)
		points.Color = clr
		points.Shape = draw.CircleGlyph{}
		points.Radius = vg.Points(pointRad)
		pl.Add(line, points)
		pl.Legend.Add(s.Name, line, points)
	}

	setRange(&pl.X, settings.XRange, xs)
	setRange(&pl.Y, settings.YRange, ys)
	return pl, nil
}

// setRange fixes the axis to r, or if r is nil, to the bounds of the
// data extended to include zero.
func setRange(axis *plot.Axis, r *dataset.Range, data []float64) {
	if r != nil && r.Stop > r.Start {
		axis.Min, axis.Max = r.Start, r.Stop
		return
	}
	if len(data) == 0 {
		return
	}
	lo, hi := stats.Bounds(data)
	axis.Min = math.Min(0, lo)
	axis.Max = hi
	if axis.Max <= axis.Min {
		axis.Max = axis.Min + 1
	}
}

// Select returns at most max series from series, picked at an even
// stride from the first. The last series is always included, so the
// result may hold max+1 series. A non-positive max selects everything.
func Select(series []dataset.Series, max int) []dataset.Series {
	n := len(series)
	if max <= 0 || n <= max {
		return series
	}
	stride := n/max + 1
	var out []dataset.Series
	for i := 0; i < n; i += stride {
		out = append(out, series[i])
	}
	if out[len(out)-1].Name != series[n-1].Name {
		out = append(out, series[n-1])
	}
	return out
}
