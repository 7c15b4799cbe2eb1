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
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/boardctl/internal/types"
)

func TestPlanQuietPawnMove(t *testing.T) {
	m := NormalMove(Pawn, SqE2, SqE4, PtNone)
	steps := Plan(m, White, CaptureCounters{})
	assert.Equal(t, []Step{
		{X: 5, Y: 2, Magnet: false},
		{X: 5, Y: 4, Magnet: true},
	}, steps)
}

func TestPlanKnightUsesHalfFileCorridor(t *testing.T) {
	m := NormalMove(Knight, SqG1, SqF3, PtNone)
	steps := Plan(m, White, CaptureCounters{})
	assert.Len(t, steps, 4)
	assert.Equal(t, steps[1].X, steps[2].X)
	assert.Equal(t, (7.0+6.0)/2, steps[1].X)
	assert.Equal(t, steps[3], Step{X: 6, Y: 3, Magnet: true})
}

func TestPlanLastStepIsDestinationForNonCastle(t *testing.T) {
	m := NormalMove(Bishop, SqC4, SqF7, Knight)
	steps := Plan(m, White, CaptureCounters{})
	last := steps[len(steps)-1]
	assert.Equal(t, Step{X: 6, Y: 7, Magnet: true}, last)
}

func TestPlanCaptureRoutesVictimToBlackGraveyardFirst(t *testing.T) {
	m := NormalMove(Bishop, SqC4, SqF7, Knight)
	steps := Plan(m, White, CaptureCounters{CapturedBlacks: 2})
	assert.Equal(t, Step{X: 6, Y: 7, Magnet: false}, steps[0])
	assert.Equal(t, Step{X: 9, Y: 1.5, Magnet: true}, steps[4])
	assert.Equal(t, Step{X: 6, Y: 7, Magnet: true}, steps[len(steps)-1])
}

func TestPlanCaptureRoutesVictimToWhiteGraveyard(t *testing.T) {
	m := NormalMove(Bishop, SqF7, SqC4, Bishop)
	steps := Plan(m, Black, CaptureCounters{CapturedWhites: 4})
	assert.Equal(t, Step{X: 0, Y: 6.5, Magnet: true}, steps[4])
}

func TestPlanEnPassant(t *testing.T) {
	m := EnPassantMove(SqE5, SqD6)
	steps := Plan(m, White, CaptureCounters{})
	// victim parked first, at D5 (x=4, y=5)
	assert.Equal(t, Step{X: 4, Y: 5, Magnet: false}, steps[0])
	last := steps[len(steps)-1]
	assert.Equal(t, Step{X: 4, Y: 6, Magnet: true}, last)
}

func TestPlanCastleHasExactlySixSteps(t *testing.T) {
	m := CastleMove(SqE1, SqH1)
	steps := Plan(m, White, CaptureCounters{})
	assert.Len(t, steps, 6)
	assert.Equal(t, Step{X: 5, Y: 1, Magnet: false}, steps[0])
}

func TestPlanCastleQueensideBlack(t *testing.T) {
	m := CastleMove(SqE8, SqA8)
	steps := Plan(m, Black, CaptureCounters{})
	assert.Len(t, steps, 6)
}
