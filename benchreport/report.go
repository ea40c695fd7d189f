// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchreport assembles the benchmark reports: size-vs-time
// charts from a Google Benchmark results document and a distribution
// report from a directory of latency files.
package benchreport

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/avlbench/benchplot/benchlat"
	"github.com/avlbench/benchplot/benchseries"
	"github.com/avlbench/benchplot/benchunit"
	"github.com/avlbench/benchplot/gbench"
)

// ErrNoInputData is returned when a report has nothing to draw.
var ErrNoInputData = errors.New("no input data")

// Config configures the reports. The mapstructure tags are the
// command-line flag and configuration file keys.
type Config struct {
	// OutDir is the directory all artifacts are written to.
	OutDir string `mapstructure:"out"`

	// Series charts.
	Results    string             `mapstructure:"results"`
	Unit       benchunit.TimeUnit `mapstructure:"unit"`
	PerElement bool               `mapstructure:"per-element"`
	DPI        int                `mapstructure:"dpi"`

	// Distribution report.
	LatencyDir  string             `mapstructure:"latency-dir"`
	LatencyGlob string             `mapstructure:"glob"`
	Column      string             `mapstructure:"column"`
	LatencyUnit benchunit.TimeUnit `mapstructure:"latency-unit"`
	Cap         int                `mapstructure:"cap"`
	Percentile  float64            `mapstructure:"percentile"`
	Seed        int64              `mapstructure:"seed"`
	Report      string             `mapstructure:"report"`

	// Logger receives progress and per-file warnings.
	// If nil, nothing is logged.
	Logger *slog.Logger `mapstructure:"-"`
}

// DefaultConfig returns the configuration of the standard reports.
func DefaultConfig() Config {
	return Config{
		OutDir:      ".",
		Results:     "results.json",
		Unit:        benchunit.Scaled,
		DPI:         200,
		LatencyDir:  ".",
		LatencyGlob: "*.csv",
		Column:      benchlat.DefaultColumn,
		LatencyUnit: benchlat.DefaultOptions.Unit,
		Cap:         benchlat.DefaultOptions.Cap,
		Percentile:  benchlat.DefaultOptions.Percentile,
		Seed:        benchlat.DefaultOptions.Seed,
		Report:      benchlat.DefaultReportFile,
	}
}

func (c *Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Logger
}

// Series reads the benchmark results document cfg.Results and writes
// one PNG chart per operation family that has data, plus a
// per-element chart if cfg.PerElement is set. It returns the paths of
// the written charts. If no result can be plotted, it returns an
// error wrapping ErrNoInputData.
func Series(cfg Config) ([]string, error) {
	log := cfg.logger()

	f, err := os.Open(cfg.Results)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b := benchseries.NewBuilder(&benchseries.BuilderOptions{
		Unit: cfg.Unit,
		Warn: func(err error) {
			log.Debug("dropping benchmark", "err", err)
		},
	})
	if err := b.AddReader(gbench.NewReader(f, cfg.Results)); err != nil {
		return nil, err
	}
	if b.Dropped > 0 {
		log.Info("dropped benchmarks that cannot be plotted", "file", cfg.Results, "count", b.Dropped)
	}

	type chart struct {
		fam    benchseries.Family
		series []*benchseries.Series
	}
	var charts []chart
	for _, fam := range benchseries.DefaultFamilies {
		if s := b.Series(fam); len(s) > 0 {
			charts = append(charts, chart{fam, s})
		} else {
			log.Debug("no data for chart", "family", fam.Name)
		}
	}
	if len(charts) == 0 {
		return nil, fmt.Errorf("%s: %w", cfg.Results, ErrNoInputData)
	}

	if err := os.MkdirAll(cfg.OutDir, 0o777); err != nil {
		return nil, err
	}
	opts := benchseries.DefaultChartOptions(cfg.OutDir, b.Unit())
	if cfg.DPI > 0 {
		opts.DPI = cfg.DPI
	}
	perElem := opts
	perElem.PerElement = true

	var files []string
	add := func(fam benchseries.Family, series []*benchseries.Series, opts benchseries.ChartOptions) error {
		file, err := benchseries.Chart(fam, series, opts)
		if err != nil {
			return err
		}
		if file != "" {
			log.Info("wrote chart", "file", file, "series", len(series))
			files = append(files, file)
		}
		return nil
	}
	for _, c := range charts {
		if err := add(c.fam, c.series, opts); err != nil {
			return files, err
		}
		if cfg.PerElement {
			if err := add(c.fam, c.series, perElem); err != nil {
				return files, err
			}
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", cfg.Results, ErrNoInputData)
	}
	return files, nil
}

// Latency writes the distribution report of every file matching
// cfg.LatencyGlob in cfg.LatencyDir, in lexical order, to
// cfg.Report in cfg.OutDir. Files that cannot be loaded are logged
// and skipped. If summary is not nil, a summary table of the
// trimmed datasets is written to it.
//
// If no file matches, or every file is skipped, Latency returns an
// error wrapping ErrNoInputData. A report from an earlier run is only
// replaced once the new one is complete.
func Latency(cfg Config, summary io.Writer) ([]string, error) {
	log := cfg.logger()

	pattern := filepath.Join(cfg.LatencyDir, cfg.LatencyGlob)
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files match %s: %w", pattern, ErrNoInputData)
	}
	sort.Strings(paths)

	opts := benchlat.Options{
		Unit:       cfg.LatencyUnit,
		Cap:        cfg.Cap,
		Percentile: cfg.Percentile,
		Seed:       cfg.Seed,
	}
	rep := benchlat.NewReport(0, 0)
	var trimmed []*benchlat.Trimmed
	for _, path := range paths {
		log.Info("processing", "file", path)
		ds, err := benchlat.ReadFile(path, cfg.Column)
		if err != nil {
			log.Warn("skipping latency file", "file", path, "err", err)
			continue
		}
		t, err := benchlat.Analyze(ds, opts)
		if err == nil {
			err = rep.Add(t)
		}
		if err != nil {
			log.Warn("skipping latency file", "file", path, "err", err)
			continue
		}
		if t.Subsampled {
			log.Debug("subsampled", "file", path, "from", len(ds.Values), "to", t.Total)
		}
		trimmed = append(trimmed, t)
	}
	if rep.Len() == 0 {
		return nil, fmt.Errorf("all %d files in %s skipped: %w", len(paths), pattern, ErrNoInputData)
	}

	out := filepath.Join(cfg.OutDir, cfg.Report)
	if err := replaceFile(out, rep); err != nil {
		return nil, err
	}
	log.Info("wrote report", "file", out, "datasets", rep.Len())

	if summary != nil {
		if err := benchlat.FormatText(summary, trimmed); err != nil {
			return []string{out}, err
		}
	}
	return []string{out}, nil
}

// replaceFile atomically replaces file with the content of w. The
// previous content of file survives any error.
func replaceFile(file string, w io.WriterTo) error {
	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0o777); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(file)+".*")
	if err != nil {
		return err
	}
	if _, err := w.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", file, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	// CreateTemp makes the file private.
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), file); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// All produces both reports. It succeeds if at least one artifact
// was written; otherwise it returns the errors of both reports.
func All(cfg Config, summary io.Writer) ([]string, error) {
	charts, serr := Series(cfg)
	if serr != nil {
		cfg.logger().Warn("series charts failed", "err", serr)
	}
	docs, lerr := Latency(cfg, summary)
	if lerr != nil {
		cfg.logger().Warn("latency report failed", "err", lerr)
	}
	files := append(charts, docs...)
	if len(files) == 0 {
		return nil, errors.Join(serr, lerr)
	}
	return files, nil
}
