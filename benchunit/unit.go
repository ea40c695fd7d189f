// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit converts benchmark timings between time units
// and derives per-element costs.
//
// Raw timings are first tidied into nanoseconds, the native unit of
// the benchmark harness, and then scaled by a fixed factor into the
// single reporting unit chosen for a report.
package benchunit

import (
	"fmt"
	"math"
	"strings"
)

// A TimeUnit is a unit in which times are reported. Its value is the
// number of nanoseconds in one unit.
type TimeUnit float64

const (
	// Nanosecond is the native unit of the benchmark harness.
	Nanosecond TimeUnit = 1
	// Microsecond is 1e3 nanoseconds.
	Microsecond TimeUnit = 1e3
	// Millisecond is 1e6 nanoseconds. This is the "scaled"
	// reporting unit.
	Millisecond TimeUnit = 1e6
	// Second is 1e9 nanoseconds.
	Second TimeUnit = 1e9
)

// Native and Scaled are the two reporting-unit variants: raw
// nanoseconds, and milliseconds.
const (
	Native = Nanosecond
	Scaled = Millisecond
)

var unitNames = map[string]TimeUnit{
	"ns":     Nanosecond,
	"native": Nanosecond,
	"us":     Microsecond,
	"µs":     Microsecond,
	"μs":     Microsecond,
	"ms":     Millisecond,
	"scaled": Millisecond,
	"s":      Second,
	"sec":    Second,
}

// ParseTimeUnit parses a unit name. It accepts "ns", "us" (or "µs"),
// "ms" and "s", as well as "native" for nanoseconds and "scaled" for
// milliseconds.
func ParseTimeUnit(s string) (TimeUnit, error) {
	if u, ok := unitNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return u, nil
	}
	return 0, fmt.Errorf("unknown time unit %q", s)
}

// Factor returns the number of nanoseconds in one u.
func (u TimeUnit) Factor() float64 {
	return float64(u)
}

// FromNanos converts ns nanoseconds into u.
func (u TimeUnit) FromNanos(ns float64) float64 {
	return ns / float64(u)
}

// String returns the unit's symbol, as used in axis labels.
func (u TimeUnit) String() string {
	switch u {
	case Nanosecond:
		return "ns"
	case Microsecond:
		return "µs"
	case Millisecond:
		return "ms"
	case Second:
		return "s"
	}
	return fmt.Sprintf("%gns", float64(u))
}

// Set implements pflag.Value, so a TimeUnit can be used
// directly as a command-line flag.
func (u *TimeUnit) Set(s string) error {
	v, err := ParseTimeUnit(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Type returns the flag type name shown in usage messages.
func (u *TimeUnit) Type() string { return "unit" }

// UnmarshalText accepts the same names as ParseTimeUnit.
func (u *TimeUnit) UnmarshalText(text []byte) error {
	return u.Set(string(text))
}

// MarshalText returns the unit's symbol.
func (u TimeUnit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// PerElement returns value divided by size. If size is not positive,
// the per-element value is undefined and PerElement returns NaN.
func PerElement(value float64, size int) float64 {
	if size <= 0 {
		return math.NaN()
	}
	return value / float64(size)
}
