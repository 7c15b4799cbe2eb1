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

package boardfsm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/boardctl/internal/rules"
	. "github.com/frankkopp/boardctl/internal/types"
)

// Scenario A/B (quiet pawn and knight moves) are exercised end to end in
// internal/gameloop; here we focus on the state transitions themselves.

func TestFriendlyPUPutBackReturnsIdle(t *testing.T) {
	p := rules.StartPosition()
	st, m := Step(p, FriendlyPUState(SqE2), SqE2)
	assert.Equal(t, Idle, st.Kind)
	assert.Nil(t, m)
}

func TestFriendlyPUQuietMoveCommits(t *testing.T) {
	p := rules.StartPosition()
	st, m := Step(p, FriendlyPUState(SqE2), SqE4)
	assert.Equal(t, Idle, st.Kind)
	assert.NotNil(t, m)
	assert.Equal(t, NormalMove(Pawn, SqE2, SqE4, PtNone), *m)
}

func TestFriendlyPUIllegalDestinationGoesToInvalidMove(t *testing.T) {
	p := rules.StartPosition()
	st, m := Step(p, FriendlyPUState(SqE2), SqE5)
	assert.Nil(t, m)
	assert.Equal(t, InvalidMove, st.Kind)
	assert.Equal(t, SqE2, st.Square1)
	assert.Equal(t, SqE5, st.Square2)
}

// Scenario C: capture via EnemyPU -> FriendlyAndEnemyPU -> commit.
func TestScenarioC_Capture(t *testing.T) {
	p, err := rules.NewPosition("4k3/5n2/8/8/2B5/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	st, m := Step(p, IdleState(), SqF7)
	assert.Nil(t, m)
	assert.Equal(t, EnemyPU, st.Kind)
	assert.Equal(t, SqF7, st.Square1)

	st, m = Step(p, st, SqC4)
	assert.Nil(t, m)
	assert.Equal(t, FriendlyAndEnemyPU, st.Kind)
	assert.Equal(t, SqC4, st.Square1)
	assert.Equal(t, SqF7, st.Square2)

	st, m = Step(p, st, SqF7)
	assert.NotNil(t, m)
	assert.Equal(t, Idle, st.Kind)
	assert.Equal(t, NormalMove(Bishop, SqC4, SqF7, Knight), *m)
}

// Scenario D: kingside castle as White.
func TestScenarioD_KingsideCastle(t *testing.T) {
	p, err := rules.NewPosition("r1bqk2r/pppp1ppp/2n2n2/2b1p3/2B1P3/2N2N2/PPPP1PPP/R1BQK2R w KQkq - 6 5")
	assert.NoError(t, err)

	st, m := Step(p, IdleState(), SqE1)
	assert.Nil(t, m)
	assert.Equal(t, FriendlyPU, st.Kind)

	st, m = Step(p, st, SqH1)
	assert.Nil(t, m)
	assert.Equal(t, Castling, st.Kind)
	assert.Equal(t, SqE1, st.KingSquare)
	assert.Equal(t, SqH1, st.RookSquare)

	st, m = Step(p, st, SqG1)
	assert.Nil(t, m)
	assert.Equal(t, CastlingPutRookDown, st.Kind)
	assert.Equal(t, SqF1, st.RookTarget)

	st, m = Step(p, st, SqF1)
	assert.NotNil(t, m)
	assert.Equal(t, Idle, st.Kind)
	assert.Equal(t, CastleMove(SqE1, SqH1), *m)
}

// Scenario E: invalid pickup on an empty square is unrecoverable (Error);
// an unattacked enemy piece pickup recovers once set back down.
func TestScenarioE_InvalidPickupRecovery(t *testing.T) {
	p := rules.StartPosition()

	st, m := Step(p, IdleState(), SqD5) // D5 is empty in the start position
	assert.Nil(t, m)
	assert.Equal(t, Error, st.Kind)

	p2, err := rules.NewPosition("4k3/8/8/4p3/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	st, m = Step(p2, IdleState(), SqE5) // black pawn, unattacked
	assert.Nil(t, m)
	assert.Equal(t, InvalidPiecePU, st.Kind)
	assert.False(t, st.HasPrev)

	st, m = Step(p2, st, SqE5)
	assert.Nil(t, m)
	assert.Equal(t, Idle, st.Kind)
}

// Scenario F: en passant.
func TestScenarioF_EnPassant(t *testing.T) {
	p, err := rules.NewPosition("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)

	st, m := Step(p, IdleState(), SqE5)
	assert.Nil(t, m)
	assert.Equal(t, FriendlyPU, st.Kind)

	st, m = Step(p, st, SqD5)
	assert.Nil(t, m)
	assert.Equal(t, FriendlyAndEnemyPU, st.Kind)

	st, m = Step(p, st, SqD6)
	assert.NotNil(t, m)
	assert.Equal(t, Idle, st.Kind)
	assert.Equal(t, EnPassantMove(SqE5, SqD6), *m)
}

// Property 1/2: totality and purity - Step always returns and never mutates
// position (Position is a value type, so this amounts to checking the FEN
// is unchanged after a call).
func TestStepIsTotalAndPure(t *testing.T) {
	p := rules.StartPosition()
	fenBefore := p.Fen()
	for sq := SqA1; sq <= SqH8; sq++ {
		_, _ = Step(p, IdleState(), sq)
	}
	assert.Equal(t, fenBefore, p.Fen())
}

// Property 3: every committed move is legal.
func TestCommittedMovesAreAlwaysLegal(t *testing.T) {
	p := rules.StartPosition()
	_, m := Step(p, FriendlyPUState(SqG1), SqF3)
	assert.NotNil(t, m)
	assert.True(t, rules.IsMoveLegal(p, *m))
}

// Property 4: put-back symmetry for FriendlyPU.
func TestPutBackSymmetryFriendlyPU(t *testing.T) {
	p := rules.StartPosition()
	st, m := Step(p, FriendlyPUState(SqG1), SqG1)
	assert.Nil(t, m)
	assert.Equal(t, Idle, st.Kind)
}

// Property 5: InvalidMove recovery restores FriendlyPU(from).
func TestInvalidMoveRecovery(t *testing.T) {
	p := rules.StartPosition()
	st := InvalidMoveState(SqE2, SqE5)
	st, m := Step(p, st, SqE5)
	assert.Nil(t, m)
	assert.Equal(t, FriendlyPU, st.Kind)
	assert.Equal(t, SqE2, st.Square1)
}

func TestErrorStateIsSticky(t *testing.T) {
	p := rules.StartPosition()
	st, m := Step(p, ErrorState(), SqA1)
	assert.Nil(t, m)
	assert.Equal(t, Error, st.Kind)
}

// King-role guard on EnemyPU: capturing with the king onto a square still
// raked by a rook behind the victim is rejected here, not just at commit.
func TestEnemyPUKingSuicideGuardRejectsCapture(t *testing.T) {
	p, err := rules.NewPosition("3r4/8/8/3n4/3K4/8/8/k7 w - - 0 1")
	assert.NoError(t, err)

	st, m := Step(p, EnemyPUState(SqD5), SqD4)
	assert.Nil(t, m)
	assert.Equal(t, InvalidPiecePU, st.Kind)
	assert.Equal(t, SqD4, st.Square1)
	assert.True(t, st.HasPrev)
	assert.Equal(t, SqD5, st.Prev)
}
