// Copyright 2025 tsuru authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

var (
	ruler     = strings.Repeat("=", 79)
	separator = strings.Repeat("-", 79)
)

func writeText(w io.Writer, r Report) error {
	out := bufio.NewWriter(w)
	env := r.Environment

	fmt.Fprintln(out, ruler)
	fmt.Fprintln(out, "Environment")
	fmt.Fprintln(out, separator)
	fmt.Fprintf(out, "Go version: %s\n", env.GoVersion)
	fmt.Fprintf(out, "OS/Arch: %s/%s\n", env.OS, env.Arch)
	if env.Hostname != "" {
		fmt.Fprintf(out, "Hostname: %s\n", env.Hostname)
	}
	fmt.Fprintf(out, "CPU cores: %d (GOMAXPROCS %d)\n", env.NumCPU, env.GOMAXPROCS)
	if len(env.CPUFeatures) > 0 {
		fmt.Fprintf(out, "CPU features: %s\n", strings.Join(env.CPUFeatures, " "))
	}
	fmt.Fprintln(out, ruler)
	fmt.Fprintf(out, "Benchmark: %s\n", r.Benchmark)

	for _, stats := range r.Phases {
		fmt.Fprintln(out, separator)
		fmt.Fprintf(out, "Phase: %s\n", stats.Name)
		fmt.Fprintf(out, "Average time: %s\n", formatDuration(stats.Mean))
		fmt.Fprintf(out, "Minimal time: %s\n", formatDuration(stats.Min))
		fmt.Fprintf(out, "Maximal time: %s\n", formatDuration(stats.Max))
		fmt.Fprintf(out, "Total time: %s\n", formatDuration(stats.Total))
		fmt.Fprintf(out, "Total operations: %d\n", stats.Count)
	}

	if len(r.Slowest) > 0 {
		fmt.Fprintln(out, ruler)
		fmt.Fprintln(out, "Slowest phases")
		fmt.Fprintln(out, separator)
		for i, stats := range r.Slowest {
			fmt.Fprintf(out, "%d. %s: %s\n", i+1, stats.Name, formatDuration(stats.Mean))
		}
	}
	fmt.Fprintln(out, ruler)
	return out.Flush()
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.3f s", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
	case d >= time.Microsecond:
		return fmt.Sprintf("%.3f mcs", float64(d)/float64(time.Microsecond))
	default:
		return fmt.Sprintf("%d ns", d.Nanoseconds())
	}
}
