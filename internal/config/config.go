// Copyright 2025 tsuru authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Specification struct {
	DataDir        string        `default:"." envconfig:"data_dir"`
	Sizes          []int         `default:"1000,10000,100000" envconfig:"sizes"`
	Variants       []string      `envconfig:"variants"`
	Repeat         int           `default:"1" envconfig:"repeat"`
	Verify         bool          `default:"true" envconfig:"verify"`
	ReportFormat   string        `default:"text" envconfig:"report_format"`
	TopSlowest     int           `default:"3" envconfig:"top_slowest"`
	LogLevel       string        `default:"info" envconfig:"log_level"`
	WarnPhaseTime  time.Duration `default:"30s" envconfig:"warn_phase_time"`
	JaegerEndpoint string        `envconfig:"jaeger_endpoint"`
	ServeAddress   string        `envconfig:"serve_address"`
	WSInterval     time.Duration `default:"2s" envconfig:"ws_interval"`
	Seed           uint64        `envconfig:"seed"`
}

var Spec Specification

func Load() (Specification, error) {
	var spec Specification
	err := envconfig.Process("", &spec)
	return spec, err
}

func init() {
	spec, err := Load()
	if err != nil {
		log.Fatal(err.Error())
	}
	Spec = spec
}
