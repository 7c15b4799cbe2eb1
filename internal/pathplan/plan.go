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

package pathplan

import (
	. "github.com/frankkopp/boardctl/internal/types"
)

// squareCoords converts a Square to its (x, y) board-centre coordinates:
// file A..H -> 1..8, rank 1..8 -> 1..8.
func squareCoords(sq Square) (float64, float64) {
	return float64(sq.FileOf()) + 1, float64(sq.RankOf()) + 1
}

// Plan translates m, played by sideToMove against counters already reflecting
// every capture before m, into the ordered gantry steps that carry it out. It
// does not update counters - the caller increments them after committing m.
func Plan(m Move, sideToMove Color, counters CaptureCounters) []Step {
	if m.Kind == Castling {
		return castleSteps(m, sideToMove)
	}

	fromX, fromY := squareCoords(m.From)
	toX, toY := squareCoords(m.To)

	var steps []Step

	if m.IsCapture() {
		victimX, victimY := toX, toY
		if m.Kind == EnPassant {
			offset := -1.0
			if sideToMove == Black {
				offset = 1.0
			}
			victimY = toY + offset
		}
		steps = append(steps, capturePieceSteps(victimX, victimY, sideToMove, counters)...)
	}

	if m.Role == Knight {
		steps = append(steps, knightSteps(fromX, fromY, toX, toY)...)
	} else {
		steps = append(steps,
			Step{X: fromX, Y: fromY, Magnet: false},
			Step{X: toX, Y: toY, Magnet: true},
		)
	}

	return steps
}

// capturePieceSteps routes the victim standing at (victimX, victimY) to its
// color's graveyard. Black victims are parked on the right edge (lane 8.5,
// storage column 9.0); white victims on the left (lane 0.5, storage column
// 0.0). The detour at victimY±0.5 heads toward whichever board edge the
// parked row sits closer to, so the piece never has to cross rows already
// occupied by earlier captures of the same color.
func capturePieceSteps(victimX float64, victimY float64, sideToMove Color, counters CaptureCounters) []Step {
	victimColor := sideToMove.Flip()

	// threshold drives only the detour-direction tie-break; it is not always
	// the same value as parkedY (the black branch's storage row carries a
	// +0.5 lane offset parkedY needs but the tie-break does not).
	var laneX, storageX, parkedY, threshold float64
	if victimColor == Black {
		laneX, storageX = 8.5, 9.0
		parkedY = 0.5 + float64(counters.CapturedBlacks)/2
		threshold = float64(counters.CapturedBlacks) / 2
	} else {
		laneX, storageX = 0.5, 0.0
		parkedY = 8.5 - float64(counters.CapturedWhites)/2
		threshold = parkedY
	}

	dir := 1.0
	if threshold < victimY {
		dir = -1.0
	}
	detourY := victimY + dir*0.5

	return []Step{
		{X: victimX, Y: victimY, Magnet: false},
		{X: victimX, Y: detourY, Magnet: true},
		{X: laneX, Y: detourY, Magnet: true},
		{X: laneX, Y: parkedY, Magnet: true},
		{X: storageX, Y: parkedY, Magnet: true},
	}
}

// knightSteps routes a knight's L-shaped move along grid lines at a
// half-file corridor, since its path cannot cut diagonally between pieces.
func knightSteps(fromX float64, fromY float64, toX float64, toY float64) []Step {
	corridorX := (fromX + toX) / 2
	return []Step{
		{X: fromX, Y: fromY, Magnet: false},
		{X: corridorX, Y: fromY, Magnet: true},
		{X: corridorX, Y: toY, Magnet: true},
		{X: toX, Y: toY, Magnet: true},
	}
}

// castleSteps produces the fixed six-step sequence that relocates both king
// and rook for a castle. The king's home square is read from m.KingSquare
// and the rook's home square from m.RookSquare; m.From and m.To are not
// used for a castle.
func castleSteps(m Move, sideToMove Color) []Step {
	fromX, fromY := squareCoords(m.KingSquare)
	toX, toY := squareCoords(m.RookSquare)

	kingside := m.RookSquare.FileOf() == FileH
	offset, queensideKing := -1.0, 0.0
	if !kingside {
		offset, queensideKing = 1.0, 1.0
	}

	direction := -0.5
	if sideToMove == Black {
		direction = 0.5
	}

	return []Step{
		{X: fromX, Y: fromY, Magnet: false},
		{X: toX + offset + queensideKing, Y: toY, Magnet: true},
		{X: toX, Y: toY, Magnet: false},
		{X: toX, Y: toY + direction, Magnet: true},
		{X: fromX - offset, Y: toY + direction, Magnet: true},
		{X: fromX - offset, Y: fromY, Magnet: true},
	}
}
