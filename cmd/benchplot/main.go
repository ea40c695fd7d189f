// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchplot draws benchmark reports.
//
// Usage:
//
//	benchplot series [flags] [results.json]
//	benchplot latency [flags] [dir]
//	benchplot all [flags]
//
// The series command reads a Google Benchmark JSON results document
// and writes one size-vs-time chart per operation family
// (insert_perf.png, find_perf.png, erase_perf.png and
// insert_single_perf.png) to the output directory.
//
// The latency command reads every latency file (*.csv with a
// latency_ns column) in dir, drops the values above the given
// percentile and writes a histogram and a boxplot page per file to
// latency_distributions_report.pdf. It prints a summary table of the
// trimmed datasets to standard output.
//
// The all command does both, and succeeds if either report is written.
//
// Every flag can also be set in a configuration file (--config) or in
// an environment variable named BENCHPLOT_<FLAG>, with dashes replaced
// by underscores, e.g. BENCHPLOT_LATENCY_DIR. Flags take precedence
// over the environment, which takes precedence over the file.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/avlbench/benchplot/benchreport"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "benchplot: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	v       *viper.Viper
	cfgFile string
	stdout  io.Writer
	stderr  io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "benchplot",
		Short:         "Draw benchmark charts and latency distribution reports",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	a.flags(root.PersistentFlags())

	root.AddCommand(&cobra.Command{
		Use:   "series [results.json]",
		Short: "Draw size-vs-time charts from a benchmark results document",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.run(func(cfg benchreport.Config, args []string) ([]string, error) {
			if len(args) > 0 {
				cfg.Results = args[0]
			}
			return benchreport.Series(cfg)
		}),
	})
	root.AddCommand(&cobra.Command{
		Use:   "latency [dir]",
		Short: "Write the latency distribution report of a directory of latency files",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.run(func(cfg benchreport.Config, args []string) ([]string, error) {
			if len(args) > 0 {
				cfg.LatencyDir = args[0]
			}
			return benchreport.Latency(cfg, a.stdout)
		}),
	})
	root.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Write both reports",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cfg benchreport.Config, args []string) ([]string, error) {
			return benchreport.All(cfg, a.stdout)
		}),
	})
	return root
}

func (a *app) flags(fs *pflag.FlagSet) {
	def := benchreport.DefaultConfig()
	unit, latencyUnit := def.Unit, def.LatencyUnit

	fs.StringVar(&a.cfgFile, "config", "", "read settings from `file` (YAML, TOML or JSON)")
	fs.String("out", def.OutDir, "write reports to `dir`")
	fs.String("results", def.Results, "benchmark results document")
	fs.Var(&unit, "unit", "time unit of the series charts: ns (native), us, ms (scaled) or s")
	fs.Bool("per-element", def.PerElement, "also draw per-element time charts")
	fs.Int("dpi", def.DPI, "resolution of the series charts")
	fs.String("latency-dir", def.LatencyDir, "directory of latency files")
	fs.String("glob", def.LatencyGlob, "latency file name `pattern`")
	fs.String("column", def.Column, "latency column name")
	fs.Var(&latencyUnit, "latency-unit", "time unit of the latency report")
	fs.Int("cap", def.Cap, "subsample latency files larger than `n` values (0 disables)")
	fs.Float64("percentile", def.Percentile, "drop latencies above this percentile")
	fs.Int64("seed", def.Seed, "subsampling random seed")
	fs.String("report", def.Report, "latency report file name")
	fs.BoolP("quiet", "q", false, "only log errors")
	fs.BoolP("verbose", "v", false, "log dropped benchmarks and other details")

	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name != "config" {
			a.v.BindPFlag(f.Name, f)
		}
	})
}

// config layers the configuration file, the environment and the
// command-line flags over the defaults.
func (a *app) config() (benchreport.Config, error) {
	v := a.v
	v.SetEnvPrefix("BENCHPLOT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg := benchreport.DefaultConfig()
	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	}
	// Units decode through TimeUnit.UnmarshalText.
	hook := viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc())
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}

	level := slog.LevelInfo
	switch {
	case v.GetBool("quiet"):
		level = slog.LevelError
	case v.GetBool("verbose"):
		level = slog.LevelDebug
	}
	cfg.Logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	return cfg, nil
}

func (a *app) run(report func(benchreport.Config, []string) ([]string, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := a.config()
		if err != nil {
			return err
		}
		files, err := report(cfg, args)
		for _, f := range files {
			cfg.Logger.Info("saved", "file", f)
		}
		return err
	}
}
