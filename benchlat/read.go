// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchlat

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// DefaultColumn is the header of the latency column written by the
// benchmark harness. Values are in nanoseconds.
const DefaultColumn = "latency_ns"

// A Dataset is the raw content of one latency file.
type Dataset struct {
	Path  string
	Label Label

	// Values are the latencies in nanoseconds, in file order.
	Values []float64
}

// A FileError reports a latency file that could not be loaded.
type FileError struct {
	Path string
	Line int // 0 if the error is not tied to a line
	Err  error
}

func (e *FileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// ErrNoColumn is wrapped by the FileError for a file without the
// requested latency column.
var ErrNoColumn = errors.New("missing latency column")

// ReadFile loads the latency file at path. The file must be CSV with
// a header row; column names the latency column (DefaultColumn if
// empty). All errors are *FileError.
func ReadFile(path, column string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	defer f.Close()
	return Read(f, path, column)
}

// Read is like ReadFile, but reads the file content from r. path
// names the file for its label and for errors.
func Read(r io.Reader, path, column string) (*Dataset, error) {
	if column == "" {
		column = DefaultColumn
	}
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &FileError{Path: path, Err: fmt.Errorf("%w %q: empty file", ErrNoColumn, column)}
	} else if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	col := -1
	for i, h := range header {
		if strings.TrimSpace(h) == column {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, &FileError{Path: path, Line: 1, Err: fmt.Errorf("%w %q", ErrNoColumn, column)}
	}

	ds := &Dataset{Path: path, Label: ParseFileName(path)}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, &FileError{Path: path, Err: err}
		}
		line, _ := cr.FieldPos(0)
		if col >= len(rec) {
			return nil, &FileError{Path: path, Line: line, Err: fmt.Errorf("row has %d fields, want at least %d", len(rec), col+1)}
		}
		field := strings.TrimSpace(rec[col])
		if field == "" {
			// Missing value.
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, &FileError{Path: path, Line: line, Err: err}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &FileError{Path: path, Line: line, Err: fmt.Errorf("latency %q is not finite", field)}
		}
		ds.Values = append(ds.Values, v)
	}
	return ds, nil
}
