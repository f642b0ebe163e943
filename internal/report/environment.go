// Copyright 2025 tsuru authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"os"
	"runtime"

	"golang.org/x/sys/cpu"
)

// Environment describes the machine a benchmark ran on. Timings are only
// comparable between reports with matching environments.
type Environment struct {
	GoVersion   string   `json:"goVersion" msgpack:"goVersion"`
	OS          string   `json:"os" msgpack:"os"`
	Arch        string   `json:"arch" msgpack:"arch"`
	Hostname    string   `json:"hostname" msgpack:"hostname"`
	NumCPU      int      `json:"numCPU" msgpack:"numCPU"`
	GOMAXPROCS  int      `json:"gomaxprocs" msgpack:"gomaxprocs"`
	CPUFeatures []string `json:"cpuFeatures" msgpack:"cpuFeatures"`
}

func CurrentEnvironment() Environment {
	hostname, _ := os.Hostname()
	return Environment{
		GoVersion:   runtime.Version(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		Hostname:    hostname,
		NumCPU:      runtime.NumCPU(),
		GOMAXPROCS:  runtime.GOMAXPROCS(0),
		CPUFeatures: cpuFeatures(),
	}
}

func cpuFeatures() []string {
	features := []string{}
	add := func(name string, present bool) {
		if present {
			features = append(features, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add("sse4.2", cpu.X86.HasSSE42)
		add("popcnt", cpu.X86.HasPOPCNT)
		add("avx", cpu.X86.HasAVX)
		add("avx2", cpu.X86.HasAVX2)
		add("bmi2", cpu.X86.HasBMI2)
		add("avx512f", cpu.X86.HasAVX512F)
	case "arm64":
		add("asimd", cpu.ARM64.HasASIMD)
		add("atomics", cpu.ARM64.HasATOMICS)
		add("sve", cpu.ARM64.HasSVE)
		add("sve2", cpu.ARM64.HasSVE2)
	}
	return features
}
