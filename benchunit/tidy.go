// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import "fmt"

// Tidy normalizes a time value in a (possibly pre-scaled) source unit
// into nanoseconds. Units are the Google Benchmark "time_unit" values
// "ns", "us", "ms" and "s"; an empty unit means nanoseconds.
func Tidy(value float64, unit string) (float64, error) {
	factor, err := tidyFactor(unit)
	if err != nil {
		return 0, err
	}
	return value * factor, nil
}

// tidyFactor returns the multiplicative factor converting a value in
// unit into nanoseconds.
func tidyFactor(unit string) (float64, error) {
	// Fast path for the harness default.
	switch unit {
	case "", "ns":
		return 1, nil
	}
	u, err := ParseTimeUnit(unit)
	if err != nil {
		return 0, fmt.Errorf("cannot tidy: %w", err)
	}
	return u.Factor(), nil
}
