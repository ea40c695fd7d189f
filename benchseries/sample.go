// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchseries turns benchmark results into size-ordered
// series grouped by operation and scenario, and charts them.
package benchseries

import (
	"errors"
	"fmt"

	"github.com/avlbench/benchplot/benchname"
	"github.com/avlbench/benchplot/benchunit"
	"github.com/avlbench/benchplot/gbench"
)

// A Sample is one benchmark result normalized into the reporting
// unit.
type Sample struct {
	Operation   string
	Scenario    string
	HasScenario bool
	Size        int

	// Time is the benchmark time in the reporting unit.
	Time float64

	// PerElement is Time divided by Size, or NaN if Size is 0.
	PerElement float64
}

// Errors returned by Normalize for results that cannot be plotted.
var (
	ErrNoSize = errors.New("benchmark name has no size")
	ErrNoTime = errors.New("benchmark has no real_time or cpu_time")
)

// Normalize decodes res's name and converts its time into unit.
func Normalize(res *gbench.Result, unit benchunit.TimeUnit) (Sample, error) {
	id := benchname.Parse(res.Name)
	if !id.HasSize {
		return Sample{}, fmt.Errorf("%s: %w", res.Name, ErrNoSize)
	}
	raw, ok := res.Time()
	if !ok {
		return Sample{}, fmt.Errorf("%s: %w", res.Name, ErrNoTime)
	}
	ns, err := benchunit.Tidy(raw, res.TimeUnit)
	if err != nil {
		return Sample{}, fmt.Errorf("%s: %w", res.Name, err)
	}
	v := unit.FromNanos(ns)
	return Sample{
		Operation:   id.Operation,
		Scenario:    id.Scenario,
		HasScenario: id.HasScenario,
		Size:        id.Size,
		Time:        v,
		PerElement:  benchunit.PerElement(v, id.Size),
	}, nil
}
