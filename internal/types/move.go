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

import (
	"strings"
)

// Move describes a single chess move as a tagged union over MoveType.
// Unlike a search engine generating and discarding millions of moves per
// second, a physical board commits only a handful of moves per game, so a
// plain struct with named fields - not a bit-packed integer - is the right
// shape here: it reads directly off reed-switch events without an encode step.
//
// Only the fields relevant to Kind are meaningful:
//  Normal, Promotion, EnPassant: From, To, Role, Capture (Promotion also uses Promotion)
//  Castling: KingSquare, RookSquare (the king and rook's starting squares)
type Move struct {
	Kind       MoveType
	From       Square
	To         Square
	Role       PieceType
	Capture    PieceType
	Promotion  PieceType
	KingSquare Square
	RookSquare Square
}

// NormalMove creates a non-capturing or capturing move that is neither a
// promotion, en passant capture nor castle.
func NormalMove(role PieceType, from Square, to Square, capture PieceType) Move {
	return Move{Kind: Normal, From: from, To: to, Role: role, Capture: capture}
}

// PromotionMove creates a pawn move onto the back rank, promoting to promType.
func PromotionMove(from Square, to Square, capture PieceType, promType PieceType) Move {
	return Move{Kind: Promotion, From: from, To: to, Role: Pawn, Capture: capture, Promotion: promType}
}

// EnPassantMove creates an en passant pawn capture.
func EnPassantMove(from Square, to Square) Move {
	return Move{Kind: EnPassant, From: from, To: to, Role: Pawn, Capture: Pawn}
}

// CastleMove creates a castling move from the king's and rook's starting squares.
func CastleMove(kingSquare Square, rookSquare Square) Move {
	return Move{Kind: Castling, Role: King, KingSquare: kingSquare, RookSquare: rookSquare}
}

// IsCapture reports whether the move removes an opposing piece from the board.
func (m Move) IsCapture() bool {
	return m.Capture != PtNone
}

// KingDestination returns the square the king lands on for a castling move:
// two files toward the rook from its starting square.
func (m Move) KingDestination() Square {
	if m.RookSquare.FileOf() > m.KingSquare.FileOf() {
		return SquareOf(FileG, m.KingSquare.RankOf())
	}
	return SquareOf(FileC, m.KingSquare.RankOf())
}

// RookDestination returns the square the rook lands on for a castling move:
// the square the king passes through on its way to KingDestination.
func (m Move) RookDestination() Square {
	if m.RookSquare.FileOf() > m.KingSquare.FileOf() {
		return SquareOf(FileF, m.KingSquare.RankOf())
	}
	return SquareOf(FileD, m.KingSquare.RankOf())
}

// String returns a UCI-compatible representation of the move
// (e.g. "e2e4", "e7e8q", "e1g1" for a king side castle).
func (m Move) String() string {
	var os strings.Builder
	switch m.Kind {
	case Castling:
		os.WriteString(m.KingSquare.String())
		os.WriteString(m.KingDestination().String())
	default:
		os.WriteString(m.From.String())
		os.WriteString(m.To.String())
		if m.Kind == Promotion {
			os.WriteString(strings.ToLower(m.Promotion.Char()))
		}
	}
	return os.String()
}
