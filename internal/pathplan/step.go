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

// Package pathplan translates a committed chess move into the ordered
// sequence of gantry motion steps that physically carries it out. Planning
// is pure - it has no notion of the gantry's actual position, only the
// move, the side that played it and how many pieces of each color have
// already been captured this game.
package pathplan

import "fmt"

// Step is one instruction to the CoreXY gantry: move to (X, Y) in
// half-square units with the electromagnet in the given state.
type Step struct {
	X      float64
	Y      float64
	Magnet bool
}

func (s Step) String() string {
	state := "off"
	if s.Magnet {
		state = "on"
	}
	return fmt.Sprintf("(%.1f, %.1f, %s)", s.X, s.Y, state)
}

// CaptureCounters tracks how many pieces of each color have been removed
// from play so far this game. It is owned exclusively by the caller
// (the game loop) - the planner only reads it to compute graveyard rows.
type CaptureCounters struct {
	CapturedWhites int
	CapturedBlacks int
}
