// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchname decodes Google Benchmark names into the
// operation, scenario and input size they describe.
//
// Benchmark names have the form
//
//	BM_<Operation>[_<Scenario>...][/<size>]
//
// for example "BM_Insert_Random/1024" or "BM_Find/8192". The grammar
// is deliberately fixed: which token becomes the operation and which
// the scenario decides how benchmarks are grouped into chart series.
package benchname

import (
	"fmt"
	"strconv"
	"strings"
)

// SingleInsertBase is the base name of the benchmark that inserts one
// element into an already populated map. It is reported as the
// InsertSingle operation rather than as a scenario-less Insert.
const SingleInsertBase = "BM_Insert"

// InsertSingle is the operation name assigned to SingleInsertBase.
const InsertSingle = "InsertSingle"

// An ID is a decoded benchmark name.
type ID struct {
	// Operation is the benchmarked operation, such as "Insert".
	Operation string

	// Scenario is the input scenario, such as "Random". It is
	// only meaningful if HasScenario is set.
	Scenario    string
	HasScenario bool

	// Size is the number of elements the benchmark ran over. It
	// is only meaningful if HasSize is set. A name without a
	// size cannot be plotted.
	Size    int
	HasSize bool
}

// Parse decodes a benchmark name. It never fails: parts of the name
// that are missing or malformed are reported as absent in the ID.
func Parse(name string) ID {
	var id ID

	base, rest, hasRest := strings.Cut(name, "/")
	if hasRest {
		// Only the second segment carries the size. Further
		// segments are ignored.
		sizeStr, _, _ := strings.Cut(rest, "/")
		if n, err := strconv.Atoi(sizeStr); err == nil {
			id.Size, id.HasSize = n, true
		}
	}

	if base == SingleInsertBase {
		id.Operation = InsertSingle
		return id
	}

	toks := strings.Split(base, "_")
	if len(toks) >= 2 {
		id.Operation = toks[1]
	} else {
		id.Operation = toks[0]
	}
	if len(toks) >= 3 {
		id.Scenario, id.HasScenario = toks[2], true
	}
	return id
}

// String returns the identifier in operation[/scenario][/size] form.
// It is meant for diagnostics and does not round-trip through Parse.
func (id ID) String() string {
	var b strings.Builder
	b.WriteString(id.Operation)
	if id.HasScenario {
		b.WriteByte('/')
		b.WriteString(id.Scenario)
	}
	if id.HasSize {
		fmt.Fprintf(&b, "/%d", id.Size)
	}
	return b.String()
}
