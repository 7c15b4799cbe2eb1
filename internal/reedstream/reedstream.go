/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package reedstream turns a line-oriented stream of reed-switch events
// into decimal integers for the Game Loop to feed into the Board FSM.
package reedstream

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/frankkopp/boardctl/internal/blogging"
)

var log = blogging.Get("reedstream")

// Boundary is the ply-boundary sentinel, outside the 0..63 Square range.
// It flushes the Game Loop's event-draining loop without changing FSM state.
const Boundary = -1

// Scanner reads newline-delimited decimal integers off an io.Reader. Blank
// or whitespace-only lines are ignored; malformed lines are logged and
// skipped rather than treated as fatal, since a misread reed contact is a
// hardware fact of life, not a protocol violation.
type Scanner struct {
	in *bufio.Scanner
}

// New wraps r in a Scanner. The caller decides what r is: stdin, a file,
// or the read end of a serial device opened by cmd/boardctl.
func New(r io.Reader) *Scanner {
	return &Scanner{in: bufio.NewScanner(r)}
}

// Next blocks until the next event line is available and parses it. ok is
// false once the underlying reader is exhausted.
func (s *Scanner) Next() (event int, ok bool) {
	for s.in.Scan() {
		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			log.Warningf("ignoring malformed reed event %q: %v", line, err)
			continue
		}
		return n, true
	}
	return 0, false
}

// Err returns the first non-EOF error encountered by the underlying reader.
func (s *Scanner) Err() error {
	return s.in.Err()
}
