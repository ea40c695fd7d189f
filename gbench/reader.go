// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gbench reads the JSON results document written by Google
// Benchmark's --benchmark_format=json (or --benchmark_out).
//
// A document looks like
//
//	{
//	  "context": {...},
//	  "benchmarks": [
//	    {"name": "BM_Insert_Random/1024", "run_type": "iteration",
//	     "real_time": 51234.5, "cpu_time": 51200.1, "time_unit": "ns", ...},
//	    ...
//	  ]
//	}
//
// The Reader API is modeled on bufio.Scanner, like the benchfmt
// reader for the Go benchmark format.
package gbench

import (
	"encoding/json"
	"fmt"
	"io"
)

// A Result is a single benchmark entry. Fields not listed here are
// ignored.
type Result struct {
	Name       string `json:"name"`
	RunName    string `json:"run_name,omitempty"`
	RunType    string `json:"run_type,omitempty"`
	Iterations int64  `json:"iterations,omitempty"`

	// RealTime and CPUTime are nil if the entry does not carry
	// the field.
	RealTime *float64 `json:"real_time,omitempty"`
	CPUTime  *float64 `json:"cpu_time,omitempty"`

	// TimeUnit is the unit of RealTime and CPUTime. Google
	// Benchmark omits it for nanoseconds in some versions.
	TimeUnit string `json:"time_unit,omitempty"`

	AggregateName string `json:"aggregate_name,omitempty"`

	ErrorOccurred bool   `json:"error_occurred,omitempty"`
	ErrorMessage  string `json:"error_message,omitempty"`

	// index is the position of this entry in the "benchmarks"
	// array.
	index int
}

// Time returns the entry's timing: real_time if present, otherwise
// cpu_time. ok is false if neither is present.
func (r *Result) Time() (t float64, ok bool) {
	if r.RealTime != nil {
		return *r.RealTime, true
	}
	if r.CPUTime != nil {
		return *r.CPUTime, true
	}
	return 0, false
}

// Index returns the position of r in the document's benchmark list.
func (r *Result) Index() int {
	return r.index
}

// A Record is a single record read from a results document. It is
// one of *Result or *MalformedError.
type Record interface {
	isRecord()
}

func (*Result) isRecord()         {}
func (*MalformedError) isRecord() {}

// A MalformedError reports a benchmark entry that cannot be used.
// It is not fatal; the Reader continues with the next entry.
type MalformedError struct {
	FileName string
	Index    int    // Index of the entry in the benchmark list
	Name     string // Benchmark name, if any
	Msg      string
}

func (e *MalformedError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: benchmark %d (%s): %s", e.FileName, e.Index, e.Name, e.Msg)
	}
	return fmt.Sprintf("%s: benchmark %d: %s", e.FileName, e.Index, e.Msg)
}

// A Reader reads benchmark entries from a results document.
//
// The whole document is decoded on the first call to Scan.
type Reader struct {
	r        io.Reader
	fileName string

	entries []json.RawMessage
	pos     int
	loaded  bool

	rec Record
	err error
}

// NewReader returns a Reader for the document in r. fileName is used
// in error messages only.
func NewReader(r io.Reader, fileName string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	return &Reader{r: r, fileName: fileName}
}

var noResult = &MalformedError{"", 0, "", "Reader.Scan has not been called"}

type document struct {
	Benchmarks []json.RawMessage `json:"benchmarks"`
}

func (r *Reader) load() {
	r.loaded = true
	var doc document
	if err := json.NewDecoder(r.r).Decode(&doc); err != nil {
		r.err = fmt.Errorf("%s: %w", r.fileName, err)
		return
	}
	r.entries = doc.Benchmarks
}

// Scan advances to the next record and reports whether one was read.
// The caller should use Result to get it. Aggregate entries (mean,
// median, stddev) are skipped. If Scan reaches the end of the
// document, or the document cannot be decoded, it returns false and
// Err reports the decoding error, if any.
func (r *Reader) Scan() bool {
	if !r.loaded {
		r.load()
	}
	if r.err != nil {
		return false
	}
	for r.pos < len(r.entries) {
		i := r.pos
		r.pos++

		res := &Result{index: i}
		if err := json.Unmarshal(r.entries[i], res); err != nil {
			r.rec = &MalformedError{r.fileName, i, "", err.Error()}
			return true
		}
		if res.RunType == "aggregate" {
			continue
		}
		switch {
		case res.ErrorOccurred:
			msg := "error occurred"
			if res.ErrorMessage != "" {
				msg += ": " + res.ErrorMessage
			}
			r.rec = &MalformedError{r.fileName, i, res.Name, msg}
		case res.Name == "":
			r.rec = &MalformedError{r.fileName, i, "", "missing name"}
		default:
			if _, ok := res.Time(); !ok {
				r.rec = &MalformedError{r.fileName, i, res.Name, "missing real_time and cpu_time"}
			} else {
				r.rec = res
			}
		}
		return true
	}
	r.rec = nil
	return false
}

// Result returns the record read by the last call to Scan.
func (r *Reader) Result() Record {
	if r.rec == nil {
		return noResult
	}
	return r.rec
}

// Err returns the error that stopped Scan, if any. It returns nil if
// Scan stopped at the end of the document.
func (r *Reader) Err() error {
	return r.err
}

// ReadAll reads every usable Result from r. Malformed entries are
// passed to skip, if non-nil, and otherwise dropped.
func ReadAll(r *Reader, skip func(*MalformedError)) ([]*Result, error) {
	var out []*Result
	for r.Scan() {
		switch rec := r.Result().(type) {
		case *Result:
			out = append(out, rec)
		case *MalformedError:
			if skip != nil {
				skip(rec)
			}
		}
	}
	return out, r.Err()
}
