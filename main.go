// Copyright 2025 tsuru authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"
	"k8s.io/apimachinery/pkg/util/sets"
	ctrllog "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	"sigs.k8s.io/controller-runtime/pkg/manager/signals"

	"github.com/tsuru/sort-dispatch-bench/internal/bench"
	"github.com/tsuru/sort-dispatch-bench/internal/config"
	"github.com/tsuru/sort-dispatch-bench/internal/logger"
	"github.com/tsuru/sort-dispatch-bench/internal/numbers"
	"github.com/tsuru/sort-dispatch-bench/internal/phase"
	"github.com/tsuru/sort-dispatch-bench/internal/report"
	"github.com/tsuru/sort-dispatch-bench/internal/repository"
	"github.com/tsuru/sort-dispatch-bench/internal/sorting"
	"github.com/tsuru/sort-dispatch-bench/internal/trace"
	"github.com/tsuru/sort-dispatch-bench/server"
)

const benchmarkName = "SortAlgorithm"

var setupLog = ctrllog.Log.WithName("setup")

type configOpts struct {
	dataDir        string
	sizes          []int
	variants       []string
	repeat         int
	verify         bool
	reportFormat   string
	output         string
	topSlowest     int
	generate       bool
	seed           uint64
	jaegerEndpoint string
	serveAddress   string
	wsInterval     time.Duration
}

func (o *configOpts) bindFlags(fs *pflag.FlagSet) {
	spec := config.Spec
	fs.StringVar(&o.dataDir, "data-dir", spec.DataDir, "Directory holding the numbers_<size>.txt input files.")
	fs.IntSliceVar(&o.sizes, "sizes", spec.Sizes, "Input sizes to benchmark. Each size is read from numbers_<size>.txt.")
	fs.StringSliceVar(&o.variants, "variants", spec.Variants, "Sort variants to run, selected by name prefix (e.g. \"1\", \"5. GenericCallable\"). Empty runs all of them.")
	fs.IntVar(&o.repeat, "repeat", spec.Repeat, "Number of timed runs per variant and size.")
	fs.BoolVar(&o.verify, "verify", spec.Verify, "Check that every sorted output is ordered. Verification is not timed.")
	fs.StringVar(&o.reportFormat, "report-format", spec.ReportFormat, "Report format: text, json, msgpack or html.")
	fs.StringVarP(&o.output, "output", "o", "", "File to write the report to. Defaults to standard output.")
	fs.IntVar(&o.topSlowest, "top-slowest", spec.TopSlowest, "Number of slowest phases listed at the end of the report.")

	fs.BoolVar(&o.generate, "generate", false, "Write random input files for --sizes into --data-dir and exit.")
	fs.Uint64Var(&o.seed, "seed", spec.Seed, "Seed used by --generate. Zero picks a time based seed.")

	fs.StringVar(&o.jaegerEndpoint, "jaeger-endpoint", spec.JaegerEndpoint, "Jaeger collector endpoint receiving one span per phase. Empty disables tracing.")
	fs.StringVar(&o.serveAddress, "serve-address", spec.ServeAddress, "TCP address serving live results, metrics and the report. Empty disables the server.")
	fs.DurationVar(&o.wsInterval, "ws-interval", spec.WSInterval, "Delay between result snapshots pushed to websocket clients.")
}

func main() {
	var opts configOpts
	opts.bindFlags(pflag.CommandLine)

	zapOpts := zap.Options{}
	zapOpts.BindFlags(flag.CommandLine)
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()

	ctrllog.SetLogger(zap.New(zap.UseFlagOptions(&zapOpts)))

	if err := run(signals.SetupSignalHandler(), opts); err != nil {
		setupLog.Error(err, "benchmark failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, opts configOpts) error {
	sizes := sets.List(sets.New(opts.sizes...))

	if opts.generate {
		seed := opts.seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		if err := numbers.Generate(opts.dataDir, sizes, seed); err != nil {
			return fmt.Errorf("unable to generate input files: %w", err)
		}
		setupLog.Info("input files generated", "dir", opts.dataDir, "sizes", sizes, "seed", seed)
		return nil
	}

	format, err := report.ParseFormat(opts.reportFormat)
	if err != nil {
		return err
	}
	variants, err := sorting.Lookup(opts.variants...)
	if err != nil {
		return err
	}

	inputs := make([]bench.Input, 0, len(sizes))
	for _, size := range sizes {
		path := filepath.Join(opts.dataDir, numbers.FileName(size))
		inputs = append(inputs, bench.Input{Path: path, Numbers: numbers.LoadFile(path)})
	}
	logInputs(setupLog, inputs)

	if opts.jaegerEndpoint != "" {
		shutdown, err := trace.InitTrace(opts.jaegerEndpoint)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				setupLog.Error(err, "unable to flush traces")
			}
		}()
	}

	benchLogger := logger.NewLogger(map[string]string{"emitter": "sort-dispatch-bench"}, os.Stderr)

	var benchOpts []bench.Option
	var serverDone chan error
	var recordChan chan phase.Record
	if opts.serveAddress != "" {
		repo, ch := repository.NewResultRepository(os.Stderr)
		recordChan = ch
		benchOpts = append(benchOpts, bench.WithNotify(ch))

		app, err := server.NewApp(repo, server.Options{
			Benchmark:  benchmarkName,
			TopSlowest: opts.topSlowest,
			WSInterval: opts.wsInterval,
			Logger:     benchLogger,
		})
		if err != nil {
			return fmt.Errorf("unable to create server: %w", err)
		}
		listener, err := net.Listen("tcp", opts.serveAddress)
		if err != nil {
			return fmt.Errorf("unable to listen on %s: %w", opts.serveAddress, err)
		}
		serverDone = make(chan error, 1)
		go func() {
			serverDone <- server.Serve(ctx, app, listener)
		}()
		setupLog.Info("serving live results", "addr", listener.Addr().String())
	}

	benchmark := bench.New(benchmarkName, benchOpts...)
	driver := &bench.Driver{
		Benchmark:     benchmark,
		Variants:      variants,
		Logger:        benchLogger,
		Repeat:        opts.repeat,
		Verify:        opts.verify,
		WarnPhaseTime: config.Spec.WarnPhaseTime,
	}
	runErr := driver.Run(ctx, inputs)
	if recordChan != nil {
		close(recordChan)
	}

	if err := writeReport(opts.output, format, report.New(benchmarkName, benchmark.Stats(), opts.topSlowest)); err != nil {
		return err
	}

	if serverDone != nil {
		setupLog.Info("benchmark finished, serving results until interrupted")
		if err := <-serverDone; err != nil {
			setupLog.Error(err, "server stopped")
		}
	}
	return runErr
}

func logInputs(log logr.Logger, inputs []bench.Input) {
	for _, input := range inputs {
		if len(input.Numbers) == 0 {
			log.Info("input is missing or empty, its phases sort nothing", "path", input.Path)
			continue
		}
		log.V(1).Info("input loaded", "path", input.Path, "size", len(input.Numbers))
	}
}

func writeReport(output string, format report.Format, r report.Report) error {
	var w io.Writer = os.Stdout
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("unable to create report file: %w", err)
		}
		defer file.Close()
		w = file
	}
	if err := report.Write(w, format, r); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}
	return nil
}
