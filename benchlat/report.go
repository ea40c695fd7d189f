// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchlat

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

// DefaultReportFile is the conventional name of the distribution report.
const DefaultReportFile = "latency_distributions_report.pdf"

// Bins is the number of histogram bins on a distribution page.
const Bins = 200

var (
	histColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}  // steelblue
	boxColor  = color.RGBA{R: 240, G: 128, B: 128, A: 255} // lightcoral
	cutColor  = color.RGBA{R: 178, G: 34, B: 34, A: 255}
)

// A Report is a multi-page PDF document of latency distributions.
// Each added dataset contributes a histogram page followed by a
// boxplot page.
//
// Report is not safe for concurrent use.
type Report struct {
	c     *vgpdf.Canvas
	pages int
	sets  int
}

// NewReport returns an empty report with w x h pages.
// If w or h is not positive, pages are 10x6 inches.
func NewReport(w, h vg.Length) *Report {
	if w <= 0 || h <= 0 {
		w, h = 10*vg.Inch, 6*vg.Inch
	}
	return &Report{c: vgpdf.New(w, h)}
}

// Len returns the number of datasets added to r.
func (r *Report) Len() int { return r.sets }

// Pages returns the number of pages drawn so far.
func (r *Report) Pages() int { return r.pages }

// Add draws the histogram and boxplot pages of t.
func (r *Report) Add(t *Trimmed) error {
	if len(t.Values) == 0 {
		return fmt.Errorf("%s: %w", t.Path, ErrNoSamples)
	}
	title := t.Label.Title()
	hist, err := histogram(t, title)
	if err != nil {
		return fmt.Errorf("%s: %w", t.Path, err)
	}
	box, err := boxplot(t, title)
	if err != nil {
		return fmt.Errorf("%s: %w", t.Path, err)
	}
	r.draw(hist)
	r.draw(box)
	r.sets++
	return nil
}

func (r *Report) draw(p *plot.Plot) {
	// vgpdf.New starts on a blank first page.
	if r.pages > 0 {
		r.c.NextPage()
	}
	dc := draw.New(r.c)
	dc.SetColor(color.White)
	dc.Fill(dc.Rectangle.Path())
	p.Draw(dc)
	r.pages++
}

// WriteTo writes the PDF document to w.
// It is an error to write a report without pages.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	if r.pages == 0 {
		return 0, errors.New("empty latency report")
	}
	return r.c.WriteTo(w)
}

func newPlot(title string, unit fmt.Stringer) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = fmt.Sprintf("Latency (%s)", unit)

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.Gray{Y: 200}
	grid.Horizontal.Color = color.Gray{Y: 200}
	grid.Vertical.Width = vg.Points(0.5)
	grid.Horizontal.Width = vg.Points(0.5)
	p.Add(grid)
	return p
}

// histogram returns the probability-normalized histogram page of t,
// with a dashed marker at the cutoff.
func histogram(t *Trimmed, title string) (*plot.Plot, error) {
	p := newPlot(fmt.Sprintf("%s (dropped %.2f%% above p%g)", title, 100*t.DroppedFraction, t.Percentile), t.Unit)
	p.Y.Label.Text = "Probability"

	h, err := newHist(t.Values)
	if err != nil {
		return nil, err
	}
	h.FillColor = histColor
	h.LineStyle.Width = vg.Points(0.25)
	p.Add(h)

	top := 0.0
	for _, b := range h.Bins {
		top = max(top, b.Weight)
	}
	cut, err := plotter.NewLine(plotter.XYs{{X: t.Cutoff, Y: 0}, {X: t.Cutoff, Y: top}})
	if err != nil {
		return nil, err
	}
	cut.Color = cutColor
	cut.Width = vg.Points(1)
	cut.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(cut)
	p.Legend.Add(fmt.Sprintf("p%g = %.4g %s", t.Percentile, t.Cutoff, t.Unit), cut)
	p.Legend.Top = true
	return p, nil
}

// newHist bins xs into Bins bins whose weights are the fraction of
// xs falling in each bin, so they sum to 1.
func newHist(xs []float64) (*plotter.Histogram, error) {
	h, err := plotter.NewHist(plotter.Values(xs), Bins)
	if err != nil {
		return nil, err
	}
	// Normalize sets the area to its argument.
	h.Normalize(h.Width)
	return h, nil
}

// boxplot returns the boxplot page of t.
func boxplot(t *Trimmed, title string) (*plot.Plot, error) {
	p := newPlot("Boxplot: "+title, t.Unit)

	b, err := plotter.NewBoxPlot(vg.Points(60), 0, plotter.Values(t.Values))
	if err != nil {
		return nil, err
	}
	b.Horizontal = true
	b.FillColor = boxColor
	p.Add(b)
	p.HideY()
	return p, nil
}
