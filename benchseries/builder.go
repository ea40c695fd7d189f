// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"github.com/avlbench/benchplot/benchunit"
	"github.com/avlbench/benchplot/gbench"
)

// A Builder collects benchmark results into normalized samples.
type Builder struct {
	unit    benchunit.TimeUnit
	samples []Sample

	// Dropped counts results that could not be plotted.
	Dropped int

	warn func(err error)
}

// BuilderOptions configures a Builder.
type BuilderOptions struct {
	Unit benchunit.TimeUnit // reporting unit
	Warn func(err error)    // called for every dropped result; may be nil
}

// DefaultBuilderOptions reports in the scaled unit and ignores
// dropped results.
func DefaultBuilderOptions() *BuilderOptions {
	return &BuilderOptions{Unit: benchunit.Scaled}
}

// NewBuilder returns an empty Builder. A nil bo means
// DefaultBuilderOptions.
func NewBuilder(bo *BuilderOptions) *Builder {
	if bo == nil {
		bo = DefaultBuilderOptions()
	}
	warn := bo.Warn
	if warn == nil {
		warn = func(error) {}
	}
	unit := bo.Unit
	if unit == 0 {
		unit = benchunit.Scaled
	}
	return &Builder{unit: unit, warn: warn}
}

// Unit returns the reporting unit of b's samples.
func (b *Builder) Unit() benchunit.TimeUnit {
	return b.unit
}

// AddReader adds every result read by r. Malformed entries are
// reported to the Warn callback and skipped. It returns the error
// that stopped r, if any.
func (b *Builder) AddReader(r *gbench.Reader) error {
	for r.Scan() {
		rec := r.Result()
		if err, ok := rec.(*gbench.MalformedError); ok {
			// Non-fatal. Warn but keep going.
			b.Dropped++
			b.warn(err)
			continue
		}
		b.Add(rec.(*gbench.Result))
	}
	return r.Err()
}

// Add normalizes result and adds it to b. Results without a size or
// a time are dropped.
func (b *Builder) Add(result *gbench.Result) {
	s, err := Normalize(result, b.unit)
	if err != nil {
		b.Dropped++
		b.warn(err)
		return
	}
	b.samples = append(b.samples, s)
}

// Samples returns the samples collected so far, in input order.
func (b *Builder) Samples() []Sample {
	return b.samples
}

// Series groups b's samples into the series of family f.
func (b *Builder) Series(f Family) []*Series {
	return Group(b.samples, f)
}
