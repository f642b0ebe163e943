// Copyright 2025 tsuru authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/tsuru/sort-dispatch-bench/internal/aggregator"
	"github.com/tsuru/sort-dispatch-bench/internal/phase"
)

type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
	FormatHTML    Format = "html"
)

var formats = []Format{FormatText, FormatJSON, FormatMsgpack, FormatHTML}

func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown report format %q", s)
}

type Report struct {
	Benchmark   string        `json:"benchmark" msgpack:"benchmark"`
	Environment Environment   `json:"environment" msgpack:"environment"`
	Phases      []phase.Stats `json:"phases" msgpack:"phases"`
	Slowest     []phase.Stats `json:"slowest" msgpack:"slowest"`
	GeneratedAt time.Time     `json:"generatedAt" msgpack:"generatedAt"`
}

func New(benchmark string, stats []phase.Stats, topK int) Report {
	return Report{
		Benchmark:   benchmark,
		Environment: CurrentEnvironment(),
		Phases:      stats,
		Slowest:     aggregator.TopKSlowest(stats, topK),
		GeneratedAt: time.Now(),
	}
}

func Write(w io.Writer, format Format, r Report) error {
	switch format {
	case FormatText:
		return writeText(w, r)
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(r)
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(r)
	case FormatHTML:
		engine, err := NewViewEngine()
		if err != nil {
			return err
		}
		return engine.Render(w, "report", r)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}
