// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/avlbench/benchplot/benchunit"
)

// ChartOptions controls how series charts are rendered.
type ChartOptions struct {
	Dir  string             // output directory
	Unit benchunit.TimeUnit // unit of the sample times, for the axis label
	DPI  int

	// Width and Height are the canvas size.
	Width, Height vg.Length

	// PerElement plots the per-element time instead of the total
	// time, and writes to <File>_per_element.png.
	PerElement bool
}

// DefaultChartOptions returns the options used for the standard
// reports: a 10x6 inch PNG at 200 dpi.
func DefaultChartOptions(dir string, unit benchunit.TimeUnit) ChartOptions {
	return ChartOptions{
		Dir:    dir,
		Unit:   unit,
		DPI:    200,
		Width:  10 * vg.Inch,
		Height: 6 * vg.Inch,
	}
}

const pointRad = 3

// Chart draws the series of family f as one line per series on a
// shared chart and writes it as a PNG image to opts.Dir. It returns
// the path of the written file. Chart does nothing and returns "" if
// series is empty.
func Chart(f Family, series []*Series, opts ChartOptions) (string, error) {
	if len(series) == 0 {
		return "", nil
	}

	p := plot.New()
	p.X.Label.Text = "Number of elements"
	p.Title.Text = f.ChartTitle(opts.Unit)
	p.Y.Label.Text = fmt.Sprintf("Time (%s)", opts.Unit)
	if opts.PerElement {
		p.Title.Text = fmt.Sprintf("%s per element (%s)", f.Title, opts.Unit)
		p.Y.Label.Text = fmt.Sprintf("Time per element (%s)", opts.Unit)
	}

	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	grid.Vertical.Width = vg.Points(0.5)
	grid.Horizontal.Width = vg.Points(0.5)
	p.Add(grid)

	drawn := 0
	for i, s := range series {
		pts := points(s, opts.PerElement)
		if len(pts) == 0 {
			continue
		}
		l, sc, err := plotter.NewLinePoints(pts)
		if err != nil {
			return "", fmt.Errorf("%s/%s: %w", f.Name, s.Key, err)
		}
		clr := plotutil.Color(i)
		l.Color = clr
		l.Width = vg.Points(1.5)
		sc.Color = clr
		sc.Shape = draw.CircleGlyph{}
		sc.Radius = vg.Points(pointRad)

		p.Add(l, sc)
		p.Legend.Add(s.Key, l, sc)
		drawn++
	}
	if drawn == 0 {
		return "", nil
	}
	p.Legend.Top = true
	p.Legend.Left = true

	name := f.File
	if opts.PerElement {
		name += "_per_element"
	}
	file := filepath.Join(opts.Dir, name+".png")
	if err := savePNG(p, file, opts); err != nil {
		return "", err
	}
	return file, nil
}

// points returns the chart points of s. Undefined per-element values
// are left out.
func points(s *Series, perElement bool) plotter.XYs {
	pts := make(plotter.XYs, 0, len(s.Samples))
	for _, x := range s.Samples {
		y := x.Time
		if perElement {
			y = x.PerElement
		}
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(x.Size), Y: y})
	}
	return pts
}

func savePNG(p *plot.Plot, file string, opts ChartOptions) error {
	dpi := opts.DPI
	if dpi <= 0 {
		dpi = 200
	}
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = 10*vg.Inch, 6*vg.Inch
	}
	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h),
		vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))}
	p.Draw(draw.New(can))

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", file, err)
	}
	return f.Close()
}
