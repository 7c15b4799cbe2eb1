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

package ledproj

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/boardctl/internal/boardfsm"
	"github.com/frankkopp/boardctl/internal/rules"
	. "github.com/frankkopp/boardctl/internal/types"
)

func TestProjectIdleIsDark(t *testing.T) {
	p := rules.StartPosition()
	rgb := Project(p, boardfsm.IdleState())
	assert.Equal(t, RGB{}, rgb)
}

func TestProjectFriendlyPUNonPawnShowsMovesAndCaptures(t *testing.T) {
	p := rules.StartPosition()
	rgb := Project(p, boardfsm.FriendlyPUState(SqG1))
	var wantMove Bitboard
	wantMove.PushSquare(SqF3)
	wantMove.PushSquare(SqH3)
	assert.Equal(t, Bitboard(0), rgb.R)
	assert.Equal(t, wantMove, rgb.G)
}

func TestProjectFriendlyPUPawnOnPromotionSourceRankLightsRedAndBlue(t *testing.T) {
	p, err := rules.NewPosition("k7/3P4/8/8/8/8/8/7K w - - 0 1")
	assert.NoError(t, err)
	rgb := Project(p, boardfsm.FriendlyPUState(SqD7))
	var wantPush Bitboard
	wantPush.PushSquare(SqD8)
	assert.Equal(t, wantPush, rgb.R)
	assert.Equal(t, Bitboard(0), rgb.G)
	assert.Equal(t, wantPush, rgb.B)
}

func TestProjectFriendlyPUPawnDoublePush(t *testing.T) {
	p := rules.StartPosition()
	rgb := Project(p, boardfsm.FriendlyPUState(SqE2))
	var wantMove Bitboard
	wantMove.PushSquare(SqE3)
	wantMove.PushSquare(SqE4)
	assert.Equal(t, wantMove, rgb.G)
}

func TestProjectEnemyPUShowsAttackers(t *testing.T) {
	p, err := rules.NewPosition("4k3/5n2/8/8/2B5/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	rgb := Project(p, boardfsm.EnemyPUState(SqF7))
	var want Bitboard
	want.PushSquare(SqC4)
	assert.Equal(t, want, rgb.G)
	assert.Equal(t, Bitboard(0), rgb.R)
}

func TestProjectFriendlyAndEnemyPUShowsEnemySquare(t *testing.T) {
	p, err := rules.NewPosition("4k3/5n2/8/8/2B5/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	rgb := Project(p, boardfsm.FriendlyAndEnemyPUState(SqC4, SqF7))
	var want Bitboard
	want.PushSquare(SqF7)
	assert.Equal(t, want, rgb.G)
}

func TestProjectCastlingShowsKingLandingSquare(t *testing.T) {
	p := rules.StartPosition()
	rgb := Project(p, boardfsm.CastlingState(SqE1, SqH1))
	var want Bitboard
	want.PushSquare(SqG1)
	assert.Equal(t, want, rgb.R)
	assert.Equal(t, want, rgb.B)
}

func TestProjectCastlingQueensideLandingSquareIsC(t *testing.T) {
	p, err := rules.NewPosition("r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")
	assert.NoError(t, err)
	rgb := Project(p, boardfsm.CastlingState(SqE8, SqA8))
	var want Bitboard
	want.PushSquare(SqC8)
	assert.Equal(t, want, rgb.R)
}

func TestProjectCastlingPutRookDownShowsRookTarget(t *testing.T) {
	p := rules.StartPosition()
	rgb := Project(p, boardfsm.CastlingPutRookDownState(SqE1, SqH1, SqF1))
	var want Bitboard
	want.PushSquare(SqF1)
	assert.Equal(t, want, rgb.R)
	assert.Equal(t, want, rgb.B)
}

func TestProjectInvalidPiecePUShowsOffendingSquareRed(t *testing.T) {
	p := rules.StartPosition()
	rgb := Project(p, boardfsm.InvalidPiecePUState(false, SqA1, SqD5))
	var want Bitboard
	want.PushSquare(SqD5)
	assert.Equal(t, want, rgb.R)
	assert.Equal(t, Bitboard(0), rgb.G)
}

func TestProjectErrorFloodsAllSquaresRed(t *testing.T) {
	p := rules.StartPosition()
	rgb := Project(p, boardfsm.ErrorState())
	assert.Equal(t, BbAll, rgb.R)
}
