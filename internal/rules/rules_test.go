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

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/boardctl/internal/types"
)

func TestStartPositionFen(t *testing.T) {
	p := StartPosition()
	assert.Equal(t, StartFen, p.Fen())
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, 20, len(LegalMoves(p)))
}

func TestNewPositionInvalidFen(t *testing.T) {
	_, err := NewPosition("not a fen")
	assert.Error(t, err)
}

func TestPlayMoveDoesNotMutateReceiver(t *testing.T) {
	p := StartPosition()
	m := NormalMove(Pawn, SqE2, SqE4, PtNone)
	next := p.PlayMove(m)

	assert.Equal(t, StartFen, p.Fen())
	assert.Equal(t, White, p.PieceAt(SqE2).ColorOf())
	assert.Equal(t, Black, next.SideToMove())
	assert.True(t, next.IsEmpty(SqE2))
	assert.Equal(t, MakePiece(White, Pawn), next.PieceAt(SqE4))
	assert.Equal(t, SqE3, next.EnPassantSquare())
}

func TestEnPassantCapture(t *testing.T) {
	p, err := NewPosition("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)

	m := EnPassantMove(SqE5, SqD6)
	assert.True(t, IsMoveLegal(p, m))

	next := p.PlayMove(m)
	assert.Equal(t, MakePiece(White, Pawn), next.PieceAt(SqD6))
	assert.True(t, next.IsEmpty(SqD5))
	assert.True(t, next.IsEmpty(SqE5))
}

func TestCastlingKingSide(t *testing.T) {
	p, err := NewPosition("rnbqk2r/pppp1ppp/5n2/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4")
	assert.NoError(t, err)

	m := CastleMove(SqE1, SqH1)
	assert.True(t, IsMoveLegal(p, m))

	next := p.PlayMove(m)
	assert.Equal(t, MakePiece(White, King), next.PieceAt(SqG1))
	assert.Equal(t, MakePiece(White, Rook), next.PieceAt(SqF1))
	assert.True(t, next.IsEmpty(SqE1))
	assert.True(t, next.IsEmpty(SqH1))
	assert.False(t, next.CastlingRights().Has(CastlingWhiteOO))
}

func TestCastlingThroughAttackedSquareIsIllegal(t *testing.T) {
	// black bishop on c4 rakes the c4-f1 diagonal, so f1 is attacked and the
	// white king may not pass through it on the way to g1.
	p, err := NewPosition("r1bqk2r/pppp1ppp/2n2n2/4p3/2b1P3/2N2N2/PPPP1PPP/R1BQK2R w KQkq - 6 5")
	assert.NoError(t, err)
	m := CastleMove(SqE1, SqH1)
	assert.False(t, IsMoveLegal(p, m))
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	p := StartPosition()
	for _, san := range []string{"f3", "e5", "g4", "Qh4"} {
		var m Move
		var err error
		m, err = SANToMove(p, san)
		assert.NoError(t, err, "san %s", san)
		p = p.PlayMove(m)
	}
	assert.True(t, p.InCheck(White))
	assert.Equal(t, Checkmate, GameOutcome(p))
	assert.Equal(t, 0, len(LegalMoves(p)))
}

func TestStalemate(t *testing.T) {
	p, err := NewPosition("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)
	assert.False(t, p.InCheck(Black))
	assert.Equal(t, Stalemate, GameOutcome(p))
}

func TestInsufficientMaterialKingsOnly(t *testing.T) {
	p, err := NewPosition("8/8/4k3/8/8/4K3/8/8 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, DrawInsufficientMaterial, GameOutcome(p))
}

func TestFiftyMoveRule(t *testing.T) {
	p, err := NewPosition("4k3/8/4K3/8/8/8/8/4R3 w - - 100 60")
	assert.NoError(t, err)
	assert.Equal(t, DrawFiftyMove, GameOutcome(p))
}

func TestSANToMoveDisambiguation(t *testing.T) {
	p, err := NewPosition("4k3/8/8/R6R/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	m, err := SANToMove(p, "Rad5")
	assert.NoError(t, err)
	assert.Equal(t, SqA5, m.From)
	assert.Equal(t, SqD5, m.To)

	_, err = SANToMove(p, "Rd5")
	assert.Error(t, err)
}

func TestMoveToSANRoundTrip(t *testing.T) {
	p := StartPosition()
	m := NormalMove(Knight, SqG1, SqF3, PtNone)
	assert.Equal(t, "Nf3", MoveToSAN(p, m))

	back, err := SANToMove(p, "Nf3")
	assert.NoError(t, err)
	assert.Equal(t, m, back)
}

func TestApplySANUnknownMove(t *testing.T) {
	p := StartPosition()
	_, _, err := ApplySAN(p, "Qh5")
	assert.Error(t, err)
}
