// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchlat

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/avlbench/benchplot/benchunit"
)

// Options configures Analyze.
type Options struct {
	// Unit is the reporting unit. Values are converted from
	// nanoseconds by its fixed factor.
	Unit benchunit.TimeUnit

	// Cap is the maximum number of samples analyzed. Larger
	// datasets are subsampled to exactly Cap values. Cap <= 0
	// disables subsampling.
	Cap int

	// Percentile is the tail cutoff, in (0, 100]. Values above
	// the Percentile'th percentile are dropped.
	Percentile float64

	// Seed seeds the subsampling random source.
	Seed int64
}

// DefaultOptions reports in microseconds, subsamples to 200000
// values with seed 42, and drops values above the 99th percentile.
var DefaultOptions = Options{
	Unit:       benchunit.Microsecond,
	Cap:        200000,
	Percentile: 99,
	Seed:       42,
}

// ErrNoSamples is returned by Analyze for a dataset without values.
var ErrNoSamples = errors.New("no latency samples")

// Trimmed is a Dataset after subsampling and tail trimming.
type Trimmed struct {
	*Dataset

	// Values are the kept values in the reporting unit, in
	// ascending order.
	Values []float64

	// Unit is the reporting unit of Values and Cutoff.
	Unit benchunit.TimeUnit

	// Total is the number of values before trimming, after any
	// subsampling.
	Total int

	// Subsampled is set if the dataset was larger than the cap.
	Subsampled bool

	// Percentile and Cutoff are the requested percentile and its
	// value. Values contains exactly the values <= Cutoff.
	Percentile float64
	Cutoff     float64

	// DroppedFraction is 1 - len(Values)/Total.
	DroppedFraction float64

	Summary Summary
}

// Analyze subsamples and trims ds according to opts.
func Analyze(ds *Dataset, opts Options) (*Trimmed, error) {
	if len(ds.Values) == 0 {
		return nil, ErrNoSamples
	}
	if !(opts.Percentile > 0 && opts.Percentile <= 100) {
		return nil, fmt.Errorf("percentile %v out of range (0, 100]", opts.Percentile)
	}
	unit := opts.Unit
	if unit == 0 {
		unit = DefaultOptions.Unit
	}

	vals := make([]float64, len(ds.Values))
	for i, v := range ds.Values {
		vals[i] = unit.FromNanos(v)
	}

	t := &Trimmed{Dataset: ds, Unit: unit, Percentile: opts.Percentile}
	if opts.Cap > 0 && len(vals) > opts.Cap {
		vals = Subsample(vals, opts.Cap, opts.Seed)
		t.Subsampled = true
	}
	t.Total = len(vals)

	sort.Float64s(vals)
	t.Cutoff = Percentile(vals, opts.Percentile)

	// vals is sorted, so the kept values are a prefix.
	kept := sort.Search(len(vals), func(i int) bool { return vals[i] > t.Cutoff })
	t.Values = vals[:kept:kept]
	t.DroppedFraction = 1 - float64(kept)/float64(t.Total)
	t.Summary = Summarize(t.Values)
	return t, nil
}

// Percentile returns the pct'th percentile (0 < pct <= 100) of the
// ascending values xs.
func Percentile(xs []float64, pct float64) float64 {
	return stats.Sample{Xs: xs, Sorted: true}.Quantile(pct / 100)
}

// Subsample returns n values drawn uniformly without replacement from
// xs, using a random source seeded with seed. The result keeps the
// relative order of xs. For the same xs, n and seed it always selects
// the same values. If len(xs) <= n, Subsample returns xs; if n <= 0,
// it returns nil.
func Subsample(xs []float64, n int, seed int64) []float64 {
	if len(xs) <= n {
		return xs
	} else if n <= 0 {
		return nil
	}
	idx := make([]int, n)
	sampleuv.WithoutReplacement(idx, len(xs), rand.NewSource(uint64(seed)))
	sort.Ints(idx)

	out := make([]float64, n)
	for i, j := range idx {
		out[i] = xs[j]
	}
	return out
}
