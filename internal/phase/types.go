// Copyright 2025 tsuru authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"fmt"
	"time"
)

// Key identifies a phase: one sorting variant over one input size.
type Key struct {
	Variant string
	Size    int
}

func (k Key) String() string {
	return fmt.Sprintf("%s. %d", k.Variant, k.Size)
}

type Record struct {
	Benchmark string        `json:"benchmark" msgpack:"benchmark"`
	Name      string        `json:"name" msgpack:"name"`
	Variant   string        `json:"variant" msgpack:"variant"`
	Size      int           `json:"size" msgpack:"size"`
	Start     time.Time     `json:"start" msgpack:"start"`
	Duration  time.Duration `json:"duration" msgpack:"duration"`
}

// Stats aggregates every record sharing a phase name.
type Stats struct {
	Name    string        `json:"name" msgpack:"name"`
	Variant string        `json:"variant" msgpack:"variant"`
	Size    int           `json:"size" msgpack:"size"`
	Count   int           `json:"count" msgpack:"count"`
	Total   time.Duration `json:"total" msgpack:"total"`
	Min     time.Duration `json:"min" msgpack:"min"`
	Max     time.Duration `json:"max" msgpack:"max"`
	Mean    time.Duration `json:"mean" msgpack:"mean"`
}
