// Copyright 2025 tsuru authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numbers

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

func FileName(size int) string {
	return fmt.Sprintf("numbers_%d.txt", size)
}

// Generate writes numbers_<size>.txt into dir for every size. Each file holds
// size random integers in [0, size] separated by single spaces.
func Generate(dir string, sizes []int, seed uint64) error {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	var errs []error
	for _, size := range sizes {
		if size < 0 {
			errs = append(errs, fmt.Errorf("invalid size %d", size))
			continue
		}
		values := make([]int, size)
		for i := range values {
			values[i] = rng.IntN(size + 1)
		}
		path := filepath.Join(dir, FileName(size))
		if err := WriteFile(path, values); err != nil {
			errs = append(errs, fmt.Errorf("error writing %s: %w", path, err))
		}
	}
	return utilerrors.NewAggregate(errs)
}

func WriteFile(path string, values []int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(file)
	buf := make([]byte, 0, 24)
	for i, value := range values {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, int64(value), 10)
		if _, err := w.Write(buf); err != nil {
			file.Close()
			return err
		}
		buf = buf[:0]
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
