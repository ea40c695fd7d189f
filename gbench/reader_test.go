// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gbench

import (
	"errors"
	"strings"
	"testing"
)

const testDoc = `{
  "context": {"date": "2025-10-01T12:00:00", "num_cpus": 8},
  "benchmarks": [
    {"name": "BM_Insert_Random/1024", "run_type": "iteration", "iterations": 100,
     "real_time": 51234.5, "cpu_time": 51200.0, "time_unit": "ns"},
    {"name": "BM_Find/1024", "run_type": "iteration", "cpu_time": 12.5, "time_unit": "us"},
    {"name": "BM_Erase/1024", "run_type": "iteration", "iterations": 10},
    {"name": "BM_Find/1024_mean", "run_type": "aggregate", "aggregate_name": "mean",
     "real_time": 12.0, "time_unit": "us"},
    {"name": "BM_Erase/2048", "run_type": "iteration", "error_occurred": true,
     "error_message": "boom"},
    {"name": "BM_Insert/1024", "real_time": null, "cpu_time": 7}
  ]
}`

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader(testDoc), "results.json")

	type want struct {
		name string
		time float64
		bad  string
	}
	wants := []want{
		{name: "BM_Insert_Random/1024", time: 51234.5},
		{name: "BM_Find/1024", time: 12.5},
		{name: "BM_Erase/1024", bad: "results.json: benchmark 2 (BM_Erase/1024): missing real_time and cpu_time"},
		// The aggregate entry is skipped.
		{name: "BM_Erase/2048", bad: "results.json: benchmark 4 (BM_Erase/2048): error occurred: boom"},
		{name: "BM_Insert/1024", time: 7},
	}

	i := 0
	for r.Scan() {
		if i >= len(wants) {
			t.Fatalf("unexpected extra record %+v", r.Result())
		}
		w := wants[i]
		i++
		switch rec := r.Result().(type) {
		case *Result:
			if w.bad != "" {
				t.Errorf("record %d: got result %s, want error %s", i, rec.Name, w.bad)
				continue
			}
			got, ok := rec.Time()
			if rec.Name != w.name || !ok || got != w.time {
				t.Errorf("record %d: got %s time %v (%v), want %s time %v", i, rec.Name, got, ok, w.name, w.time)
			}
		case *MalformedError:
			if rec.Error() != w.bad {
				t.Errorf("record %d: got error %q, want %q", i, rec.Error(), w.bad)
			}
		default:
			t.Fatalf("record %d: unexpected type %T", i, rec)
		}
	}
	if err := r.Err(); err != nil {
		t.Fatal(err)
	}
	if i != len(wants) {
		t.Errorf("got %d records, want %d", i, len(wants))
	}
}

func TestReaderTimeFallback(t *testing.T) {
	doc := `{"benchmarks": [
		{"name": "a/1", "real_time": 0, "cpu_time": 5},
		{"name": "b/1", "cpu_time": 5}
	]}`
	res, err := ReadAll(NewReader(strings.NewReader(doc), ""), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 {
		t.Fatalf("got %d results, want 2", len(res))
	}
	// real_time is present, even though it is zero, so it wins.
	if v, _ := res[0].Time(); v != 0 {
		t.Errorf("a/1: got time %v, want 0", v)
	}
	if v, _ := res[1].Time(); v != 5 {
		t.Errorf("b/1: got time %v, want 5", v)
	}
	if res[1].Index() != 1 {
		t.Errorf("b/1: got index %d, want 1", res[1].Index())
	}
}

func TestReadAllSkip(t *testing.T) {
	var skipped []*MalformedError
	res, err := ReadAll(NewReader(strings.NewReader(testDoc), "results.json"), func(e *MalformedError) {
		skipped = append(skipped, e)
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 3 {
		t.Errorf("got %d results, want 3", len(res))
	}
	if len(skipped) != 2 {
		t.Errorf("got %d skipped entries, want 2", len(skipped))
	}
}

func TestReaderBadDocument(t *testing.T) {
	r := NewReader(strings.NewReader(`{"benchmarks": [`), "bad.json")
	if r.Scan() {
		t.Fatalf("Scan succeeded on truncated document")
	}
	if r.Err() == nil {
		t.Fatalf("want error for truncated document")
	}
	if !strings.HasPrefix(r.Err().Error(), "bad.json: ") {
		t.Errorf("error %q does not name the file", r.Err())
	}

	// Entries of the wrong shape are malformed, not fatal.
	r = NewReader(strings.NewReader(`{"benchmarks": [42, {"name": "x/1", "real_time": 1}]}`), "odd.json")
	var n, bad int
	for r.Scan() {
		n++
		var me *MalformedError
		if e, ok := r.Result().(*MalformedError); ok && errors.As(error(e), &me) {
			bad++
		}
	}
	if r.Err() != nil || n != 2 || bad != 1 {
		t.Errorf("got %d records, %d malformed, err %v; want 2, 1, nil", n, bad, r.Err())
	}
}

func TestReaderEmpty(t *testing.T) {
	r := NewReader(strings.NewReader(`{"context": {}}`), "")
	if r.Scan() {
		t.Errorf("Scan succeeded on document without benchmarks")
	}
	if r.Err() != nil {
		t.Errorf("unexpected error %v", r.Err())
	}
	if _, ok := r.Result().(*MalformedError); !ok {
		t.Errorf("Result after exhausted Scan should be the no-result error")
	}
}
