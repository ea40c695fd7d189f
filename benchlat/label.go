// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchlat analyzes per-operation latency samples: it loads
// latency files, subsamples and trims their tails at a percentile,
// summarizes the result and renders distribution pages.
package benchlat

import (
	"fmt"
	"path/filepath"
	"strings"
)

// A Label describes a latency file, decoded from its name.
//
// Latency files are named
//
//	<op>_latencies_<scenario>_<size>.csv  e.g. insert_latencies_random_4096.csv
//	<op>_latencies_<size>.csv             e.g. find_latencies_8192.csv
type Label struct {
	Operation   string
	Scenario    string
	HasScenario bool

	// Size is the element count as written in the file name.
	// It is only displayed, never interpreted. It is "?" if the
	// name has an unexpected shape.
	Size string
}

// ParseFileName decodes the label of the latency file at path.
func ParseFileName(path string) Label {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	parts := strings.Split(stem, "_")
	l := Label{Operation: parts[0], Size: "?"}
	switch len(parts) {
	case 4:
		l.Scenario, l.HasScenario = parts[2], true
		l.Size = parts[3]
	case 3:
		l.Size = parts[2]
	}
	return l
}

// Title returns the page title for l, e.g. "INSERT — random, N=4096".
func (l Label) Title() string {
	op := strings.ToUpper(l.Operation)
	if l.HasScenario && l.Scenario != "" {
		return fmt.Sprintf("%s — %s, N=%s", op, l.Scenario, l.Size)
	}
	return fmt.Sprintf("%s — N=%s", op, l.Size)
}
