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

// AttackersTo returns a bitboard of every square holding a piece of color by
// that attacks sq, given the occupancy occupied (passed separately so callers
// can probe a hypothetical occupancy, e.g. with the moving piece removed).
func AttackersTo(p Position, sq Square, occupied Bitboard, by Color) Bitboard {
	var attackers Bitboard

	attackers |= GetAttacksBb(Knight, sq, occupied) & p.Pieces(by, Knight)
	attackers |= GetAttacksBb(King, sq, occupied) & p.Pieces(by, King)
	attackers |= GetAttacksBb(Bishop, sq, occupied) & (p.Pieces(by, Bishop) | p.Pieces(by, Queen))
	attackers |= GetAttacksBb(Rook, sq, occupied) & (p.Pieces(by, Rook) | p.Pieces(by, Queen))
	// pawn attacks are not symmetric: the attacker's own color determines
	// which diagonal it captures along, so probe with the opposite color's
	// attack pattern from sq to find attacking pawns of color "by"
	attackers |= GetPawnAttacks(by.Flip(), sq) & p.Pieces(by, Pawn)

	return attackers
}

// AttacksFrom returns a bitboard of every square the piece standing on sq
// attacks, regardless of whether that square is occupied by a friend, a foe,
// or is empty. For a pawn this is its diagonal capture squares only, never
// its push square.
func AttacksFrom(p Position, sq Square) Bitboard {
	pc := p.PieceAt(sq)
	if pc == PieceNone {
		return BbZero
	}
	if pc.TypeOf() == Pawn {
		return GetPawnAttacks(pc.ColorOf(), sq)
	}
	return GetAttacksBb(pc.TypeOf(), sq, p.Occupied())
}

// IsAttacked reports whether sq is attacked by any piece of color by.
func (p Position) IsAttacked(sq Square, by Color) bool {
	return AttackersTo(p, sq, p.Occupied(), by) != BbZero
}

// InCheck reports whether color c's king currently stands on an attacked square.
func (p Position) InCheck(c Color) bool {
	return p.IsAttacked(p.KingSquare(c), c.Flip())
}
