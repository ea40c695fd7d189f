// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"sort"

	"github.com/aclements/go-gg/table"
)

// A Series is a sequence of samples of one family that share a key,
// in ascending order of size.
type Series struct {
	Family  string
	Key     string
	Samples []Sample
}

// Sizes returns the sizes of s's samples.
func (s *Series) Sizes() []int {
	out := make([]int, len(s.Samples))
	for i, x := range s.Samples {
		out[i] = x.Size
	}
	return out
}

// keyed is a Sample tagged with its series key, so the key becomes a
// table column.
type keyed struct {
	Key string
	Sample
}

// Group partitions the samples belonging to family f into series.
// Series are returned in ascending key order. Within a series,
// samples are sorted by size; samples of equal size keep their
// relative input order. Group returns nil if no sample belongs to f.
func Group(samples []Sample, f Family) []*Series {
	var rows []keyed
	for _, s := range samples {
		if k, ok := f.key(s); ok {
			rows = append(rows, keyed{k, s})
		}
	}
	if len(rows) == 0 {
		return nil
	}

	g := table.GroupBy(table.TableFromStructs(rows), "Key")
	g = table.SortBy(g, "Size")

	var out []*Series
	for _, gid := range g.Tables() {
		out = append(out, seriesOf(f, gid.Label().(string), g.Table(gid)))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}

func seriesOf(f Family, key string, t *table.Table) *Series {
	var (
		ops      = t.MustColumn("Operation").([]string)
		scens    = t.MustColumn("Scenario").([]string)
		hasScens = t.MustColumn("HasScenario").([]bool)
		sizes    = t.MustColumn("Size").([]int)
		times    = t.MustColumn("Time").([]float64)
		perElems = t.MustColumn("PerElement").([]float64)
	)
	s := &Series{Family: f.Name, Key: key, Samples: make([]Sample, t.Len())}
	for i := range s.Samples {
		s.Samples[i] = Sample{
			Operation:   ops[i],
			Scenario:    scens[i],
			HasScenario: hasScens[i],
			Size:        sizes[i],
			Time:        times[i],
			PerElement:  perElems[i],
		}
	}
	return s
}
