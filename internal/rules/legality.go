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
	. "github.com/frankkopp/boardctl/internal/types"
)

// PseudoLegalMoves generates every move for the side to move that obeys
// piece-movement rules but may still leave its own king in check.
func PseudoLegalMoves(p Position) []Move {
	var moves []Move
	us := p.SideToMove()
	them := us.Flip()
	occupied := p.Occupied()
	own := p.PiecesOf(us)
	enemy := p.PiecesOf(them)

	moves = append(moves, pawnMoves(p, us)...)

	for _, pt := range []PieceType{Knight, Bishop, Rook, Queen, King} {
		pieces := p.Pieces(us, pt)
		for pieces != BbZero {
			from := pieces.PopLsb()
			targets := GetAttacksBb(pt, from, occupied) &^ own
			for targets != BbZero {
				to := targets.PopLsb()
				capture := PtNone
				if enemy.Has(to) {
					capture = p.PieceAt(to).TypeOf()
				}
				moves = append(moves, NormalMove(pt, from, to, capture))
			}
		}
	}

	moves = append(moves, castlingCandidates(p, us)...)

	return moves
}

func pawnMoves(p Position, us Color) []Move {
	var moves []Move
	them := us.Flip()
	occupied := p.Occupied()
	promRank := us.PromotionRankBb()
	pawns := p.Pieces(us, Pawn)

	for pawns != BbZero {
		from := pawns.PopLsb()
		push1 := from.To(us.MoveDirection())
		if push1.IsValid() && !occupied.Has(push1) {
			addPawnMove(&moves, from, push1, PtNone, promRank)
			if from.RankOf() == us.PawnDoubleStartRank() {
				push2 := push1.To(us.MoveDirection())
				if push2.IsValid() && !occupied.Has(push2) {
					moves = append(moves, NormalMove(Pawn, from, push2, PtNone))
				}
			}
		}

		captures := GetPawnAttacks(us, from)
		enemyPieces := p.PiecesOf(them)
		for c := captures & enemyPieces; c != BbZero; {
			to := c.PopLsb()
			addPawnMove(&moves, from, to, p.PieceAt(to).TypeOf(), promRank)
		}
		if p.EnPassantSquare() != SqNone && captures.Has(p.EnPassantSquare()) {
			moves = append(moves, EnPassantMove(from, p.EnPassantSquare()))
		}
	}
	return moves
}

func addPawnMove(moves *[]Move, from Square, to Square, capture PieceType, promRank Bitboard) {
	if promRank.Has(to) {
		for _, pt := range []PieceType{Queen, Rook, Bishop, Knight} {
			*moves = append(*moves, PromotionMove(from, to, capture, pt))
		}
		return
	}
	*moves = append(*moves, NormalMove(Pawn, from, to, capture))
}

// castlingCandidates proposes a castle for each side still holding the right,
// gated only on the squares between king and rook being empty via
// Intermediate. Whether the king starts, passes through or lands on an
// attacked square is checked later by IsLegal.
func castlingCandidates(p Position, us Color) []Move {
	var moves []Move
	kingSq := p.KingSquare(us)
	occupied := p.Occupied()
	rights := p.CastlingRights()

	kingRook, queenRook := SqH1, SqA1
	oo, ooo := CastlingWhiteOO, CastlingWhiteOOO
	if us == Black {
		kingRook, queenRook = SqH8, SqA8
		oo, ooo = CastlingBlackOO, CastlingBlackOOO
	}

	if rights.Has(oo) && occupied&Intermediate(kingSq, kingRook) == BbZero {
		moves = append(moves, CastleMove(kingSq, kingRook))
	}
	if rights.Has(ooo) && occupied&Intermediate(kingSq, queenRook) == BbZero {
		moves = append(moves, CastleMove(kingSq, queenRook))
	}
	return moves
}

// IsLegal reports whether m can actually be played: it must not leave the
// mover's own king in check, and a castle must additionally not start, pass
// through or land on an attacked square.
func IsLegal(p Position, m Move) bool {
	us := p.SideToMove()
	them := us.Flip()

	if m.Kind == Castling {
		if p.InCheck(us) {
			return false
		}
		dest := m.KingDestination()
		path := Intermediate(m.KingSquare, dest)
		path.PushSquare(dest)
		for path != BbZero {
			sq := path.PopLsb()
			if p.IsAttacked(sq, them) {
				return false
			}
		}
	}

	next := p.PlayMove(m)
	return !next.InCheck(us)
}

// LegalMoves returns every legal move available to the side to move.
func LegalMoves(p Position) []Move {
	pseudo := PseudoLegalMoves(p)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if IsLegal(p, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// GameOutcome reports whether the game has ended for the side to move, and why.
func GameOutcome(p Position) Outcome {
	if len(LegalMoves(p)) == 0 {
		if p.InCheck(p.SideToMove()) {
			return Checkmate
		}
		return Stalemate
	}
	if p.HalfmoveClock() >= 100 {
		return DrawFiftyMove
	}
	if hasInsufficientMaterial(p) {
		return DrawInsufficientMaterial
	}
	return Ongoing
}

// hasInsufficientMaterial covers the common king-only and lone-minor-piece
// draws. Rarer theoretical insufficient-material positions (e.g. opposite
// colored bishops with blocked pawn chains) are intentionally not detected -
// they are adjudicated by agreement in over-the-board play anyway.
func hasInsufficientMaterial(p Position) bool {
	for _, c := range [2]Color{White, Black} {
		if p.Pieces(c, Pawn) != BbZero || p.Pieces(c, Rook) != BbZero || p.Pieces(c, Queen) != BbZero {
			return false
		}
	}
	whiteMinors := p.Pieces(White, Bishop).PopCount() + p.Pieces(White, Knight).PopCount()
	blackMinors := p.Pieces(Black, Bishop).PopCount() + p.Pieces(Black, Knight).PopCount()
	return whiteMinors <= 1 && blackMinors <= 1 && whiteMinors+blackMinors <= 1
}
