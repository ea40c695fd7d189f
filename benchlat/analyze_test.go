// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchlat

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/avlbench/benchplot/benchunit"
)

func seq(lo, hi int) []float64 {
	var xs []float64
	for i := lo; i <= hi; i++ {
		xs = append(xs, float64(i))
	}
	return xs
}

func nsOpts() Options {
	o := DefaultOptions
	o.Unit = benchunit.Nanosecond
	return o
}

func TestAnalyze(t *testing.T) {
	ds := &Dataset{Path: "find_latencies_100.csv", Values: seq(1, 100)}
	tr, err := Analyze(ds, nsOpts())
	if err != nil {
		t.Fatal(err)
	}
	if tr.Total != 100 || tr.Subsampled {
		t.Errorf("Total=%d Subsampled=%v, want 100 false", tr.Total, tr.Subsampled)
	}
	if len(tr.Values) != 99 {
		t.Errorf("kept %d values, want 99", len(tr.Values))
	}
	if math.Abs(tr.DroppedFraction-0.01) > 1e-9 {
		t.Errorf("DroppedFraction = %v, want 0.01", tr.DroppedFraction)
	}
	if !(tr.Cutoff >= 99 && tr.Cutoff < 100) {
		t.Errorf("Cutoff = %v, want in [99, 100)", tr.Cutoff)
	}
	for _, v := range tr.Values {
		if v > tr.Cutoff {
			t.Errorf("kept value %v above cutoff %v", v, tr.Cutoff)
		}
	}
	if !sort.Float64sAreSorted(tr.Values) {
		t.Errorf("kept values are not sorted")
	}
	if tr.Summary.N != 99 || tr.Summary.Min != 1 || tr.Summary.Max != 99 {
		t.Errorf("Summary = %+v", tr.Summary)
	}
	// The dataset itself is not modified.
	if ds.Values[0] != 1 || len(ds.Values) != 100 {
		t.Errorf("dataset modified")
	}
}

func TestAnalyzeUnit(t *testing.T) {
	ds := &Dataset{Values: []float64{3000, 1000, 2000}}
	opts := DefaultOptions
	opts.Percentile = 100
	tr, err := Analyze(ds, opts)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{1, 2, 3}, tr.Values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if tr.Unit != benchunit.Microsecond || tr.Cutoff != 3 || tr.DroppedFraction != 0 {
		t.Errorf("got Unit=%v Cutoff=%v DroppedFraction=%v", tr.Unit, tr.Cutoff, tr.DroppedFraction)
	}

	// The zero unit means the default.
	opts.Unit = 0
	tr, err = Analyze(ds, opts)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Unit != benchunit.Microsecond {
		t.Errorf("zero unit: got %v, want µs", tr.Unit)
	}
}

func TestAnalyzeCap(t *testing.T) {
	check := func(n, limit int, subsampled bool) {
		t.Helper()
		opts := nsOpts()
		opts.Cap = limit
		opts.Percentile = 100
		tr, err := Analyze(&Dataset{Values: seq(1, n)}, opts)
		if err != nil {
			t.Fatal(err)
		}
		want := n
		if subsampled {
			want = limit
		}
		if tr.Subsampled != subsampled || tr.Total != want || len(tr.Values) != want {
			t.Errorf("n=%d cap=%d: Subsampled=%v Total=%d kept=%d, want %v %d %d",
				n, limit, tr.Subsampled, tr.Total, len(tr.Values), subsampled, want, want)
		}
	}

	check(1000, 10, true)
	check(100, 100, false)
	check(99, 100, false)
	check(1000, 0, false)
	check(1000, -1, false)
}

func TestAnalyzeErrors(t *testing.T) {
	if _, err := Analyze(&Dataset{}, DefaultOptions); !errors.Is(err, ErrNoSamples) {
		t.Errorf("empty dataset: got %v, want ErrNoSamples", err)
	}
	for _, pct := range []float64{0, -1, 100.5, math.NaN()} {
		opts := DefaultOptions
		opts.Percentile = pct
		if _, err := Analyze(&Dataset{Values: seq(1, 10)}, opts); err == nil {
			t.Errorf("percentile %v: want error", pct)
		}
	}
}

func TestPercentile(t *testing.T) {
	xs := seq(1, 100)
	if got := Percentile(xs, 100); got != 100 {
		t.Errorf("p100 = %v, want 100", got)
	}
	if got := Percentile(xs, 50); math.Abs(got-50.5) > 1e-9 {
		t.Errorf("p50 = %v, want 50.5", got)
	}
	if got := Percentile([]float64{7}, 99); got != 7 {
		t.Errorf("p99 of one value = %v, want 7", got)
	}
}

func TestSubsample(t *testing.T) {
	xs := seq(0, 999)
	a := Subsample(xs, 10, 42)
	b := Subsample(xs, 10, 42)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed, different samples (-first +second):\n%s", diff)
	}
	if len(a) != 10 {
		t.Fatalf("got %d values, want 10", len(a))
	}
	// Input order is kept, and values are drawn without replacement.
	for i := 1; i < len(a); i++ {
		if a[i] <= a[i-1] {
			t.Errorf("values not strictly increasing: %v", a)
			break
		}
	}
	if c := Subsample(xs, 10, 43); cmp.Equal(a, c) {
		t.Errorf("different seeds drew the same values %v", a)
	}

	// Drawing all but one value takes the permutation path.
	most := Subsample(xs, 999, 7)
	seen := make(map[float64]bool)
	for _, v := range most {
		if seen[v] {
			t.Fatalf("value %v drawn twice", v)
		}
		seen[v] = true
	}
	if len(most) != 999 || !sort.Float64sAreSorted(most) {
		t.Errorf("Subsample(xs, 999) returned %d values, sorted=%v", len(most), sort.Float64sAreSorted(most))
	}

	if got := Subsample(xs, 0, 42); got != nil {
		t.Errorf("Subsample(xs, 0) = %v, want nil", got)
	}

	short := seq(1, 5)
	if got := Subsample(short, 5, 42); !cmp.Equal(got, short) {
		t.Errorf("Subsample of %d values with n=5 = %v, want input", len(short), got)
	}
}
