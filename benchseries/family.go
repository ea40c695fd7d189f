// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"fmt"

	"github.com/avlbench/benchplot/benchname"
	"github.com/avlbench/benchplot/benchunit"
)

// A Family is a set of related benchmarks drawn on one chart.
type Family struct {
	// Name identifies the family, e.g. "insert".
	Name string

	// Operation selects the samples in this family.
	Operation string

	// ByScenario splits the family into one series per
	// scenario. Otherwise the family is a single series keyed by
	// Operation.
	ByScenario bool

	// File is the base name of the chart file, without
	// extension.
	File string

	// Title is the chart title, without the unit.
	Title string
}

// DefaultFamilies are the operation families of the map benchmarks.
var DefaultFamilies = []Family{
	{Name: "insert", Operation: "Insert", ByScenario: true, File: "insert_perf", Title: "Insert performance"},
	{Name: "find", Operation: "Find", File: "find_perf", Title: "Find performance"},
	{Name: "erase", Operation: "Erase", File: "erase_perf", Title: "Erase performance"},
	{Name: "insert-single", Operation: benchname.InsertSingle, File: "insert_single_perf", Title: "Single insert performance"},
}

// key returns the series key of s within f, and whether s belongs to
// f at all. Insert-style families only plot samples with a scenario.
func (f Family) key(s Sample) (string, bool) {
	if s.Operation != f.Operation {
		return "", false
	}
	if !f.ByScenario {
		return s.Operation, true
	}
	if !s.HasScenario {
		return "", false
	}
	return s.Scenario, true
}

// ChartTitle returns the chart title with the reporting unit.
func (f Family) ChartTitle(unit benchunit.TimeUnit) string {
	return fmt.Sprintf("%s (%s)", f.Title, unit)
}
