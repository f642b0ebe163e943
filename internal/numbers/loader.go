// Copyright 2025 tsuru authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numbers

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Read parses whitespace separated decimal integers in input order. It stops
// at the first token that is not an integer and returns the values read so
// far along with the parse error. A token starting with an integer, such as
// "12abc", contributes that integer before reading stops.
func Read(r io.Reader) ([]int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)

	numbers := []int{}
	for scanner.Scan() {
		token := scanner.Text()
		prefix := integerPrefix(token)
		number, err := strconv.Atoi(prefix)
		if err != nil {
			return numbers, fmt.Errorf("invalid integer at position %d: %w", len(numbers), err)
		}
		numbers = append(numbers, number)
		if len(prefix) < len(token) {
			return numbers, fmt.Errorf("invalid integer at position %d: trailing %q", len(numbers)-1, token[len(prefix):])
		}
	}
	if err := scanner.Err(); err != nil {
		return numbers, err
	}
	return numbers, nil
}

// LoadFile returns the integers stored in path. A file that cannot be opened
// yields an empty sequence and a malformed token ends the sequence early;
// neither is reported.
func LoadFile(path string) []int {
	file, err := os.Open(path)
	if err != nil {
		return []int{}
	}
	defer file.Close()

	numbers, _ := Read(file)
	return numbers
}

// integerPrefix returns the leading optional sign and digits of token. When
// token does not start with a digit after the sign, token is returned whole
// so the parse error names it.
func integerPrefix(token string) string {
	i := 0
	if i < len(token) && (token[i] == '+' || token[i] == '-') {
		i++
	}
	start := i
	for i < len(token) && token[i] >= '0' && token[i] <= '9' {
		i++
	}
	if i == start {
		return token
	}
	return token[:i]
}
