// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchlat

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aclements/go-moremath/stats"
)

// A Summary summarizes a set of latencies.
type Summary struct {
	N                    int
	Min, Max             float64
	Mean, Median, StdDev float64
}

// Summarize computes the summary of the ascending values xs.
func Summarize(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}
	s := stats.Sample{Xs: xs, Sorted: true}
	lo, hi := s.Bounds()
	sum := Summary{
		N:      len(xs),
		Min:    lo,
		Max:    hi,
		Mean:   s.Mean(),
		Median: s.Quantile(0.5),
	}
	if len(xs) > 1 {
		sum.StdDev = s.StdDev()
	}
	return sum
}

// FormatText writes a table summarizing each trimmed dataset to w.
func FormatText(w io.Writer, ts []*Trimmed) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "file\tunit\tn\tmin\tmedian\tmean\tstddev\tcutoff\tmax\tdropped\t\n")
	for _, t := range ts {
		s := t.Summary
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.3f\t%.3f\t%.3f\t%.3f\tp%g=%.3f\t%.3f\t%.2f%%\t\n",
			t.Label.Title(), t.Unit, s.N, s.Min, s.Median, s.Mean, s.StdDev,
			t.Percentile, t.Cutoff, s.Max, 100*t.DroppedFraction)
	}
	return tw.Flush()
}
