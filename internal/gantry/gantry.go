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

// Package gantry encodes planned motion steps onto a line-oriented output
// stream for the CoreXY motor driver.
package gantry

import (
	"bufio"
	"fmt"
	"io"

	"github.com/frankkopp/boardctl/internal/pathplan"
)

// Sink writes pathplan.Step values as "x y magnet" records, one per line.
type Sink struct {
	out *bufio.Writer
}

// New wraps w in a Sink. The caller decides what w is: stdout, a file, or
// the write end of a serial device opened by cmd/boardctl.
func New(w io.Writer) *Sink {
	return &Sink{out: bufio.NewWriter(w)}
}

// Emit writes steps in order and flushes once after the whole list, so a
// partial plan is never observable on the wire.
func (s *Sink) Emit(steps []pathplan.Step) error {
	for _, step := range steps {
		magnet := 0
		if step.Magnet {
			magnet = 1
		}
		if _, err := fmt.Fprintf(s.out, "%g %g %d\n", step.X, step.Y, magnet); err != nil {
			return err
		}
	}
	return s.out.Flush()
}
