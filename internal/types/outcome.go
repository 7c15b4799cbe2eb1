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

package types

// Outcome reports whether and why a game has ended.
type Outcome uint8

// Outcome constants
const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
	DrawInsufficientMaterial
	DrawFiftyMove
)

// IsGameOver reports whether the outcome ends the game.
func (o Outcome) IsGameOver() bool {
	return o != Ongoing
}

var outcomeToString = [...]string{"Ongoing", "Checkmate", "Stalemate", "DrawInsufficientMaterial", "DrawFiftyMove"}

// String returns a human readable label for the outcome.
func (o Outcome) String() string {
	if int(o) >= len(outcomeToString) {
		return "Unknown"
	}
	return outcomeToString[o]
}
