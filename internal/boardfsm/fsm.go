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
	"github.com/frankkopp/boardctl/internal/rules"
	. "github.com/frankkopp/boardctl/internal/types"
)

// Step advances the interaction state machine by one reed-switch event. It
// is pure and total: every (position, state, event) triple returns some
// (state', move). move is nil unless a legal move was just committed, in
// which case the caller must apply it to position and reset state to Idle
// before processing the next event.
//
// Step never mutates position, and it never calls the rules oracle with
// side effects - every query is read-only.
func Step(p rules.Position, st State, event Square) (State, *Move) {
	switch st.Kind {
	case Idle:
		return stepIdle(p, event)
	case FriendlyPU:
		return stepFriendlyPU(p, st, event)
	case EnemyPU:
		return stepEnemyPU(p, st, event)
	case FriendlyAndEnemyPU:
		return stepFriendlyAndEnemyPU(p, st, event)
	case Castling:
		return stepCastling(p, st, event)
	case CastlingPutRookDown:
		return stepCastlingPutRookDown(st, event)
	case InvalidPiecePU:
		return stepInvalidPiecePU(p, st, event)
	case InvalidMove:
		return stepInvalidMove(st, event)
	default: // Error is sticky and absorbs every event
		return ErrorState(), nil
	}
}

func isFriendly(p rules.Position, sq Square) bool {
	_, color, occupied := rules.RoleAt(p, sq)
	return occupied && color == p.SideToMove()
}

func isEnemy(p rules.Position, sq Square) bool {
	_, color, occupied := rules.RoleAt(p, sq)
	return occupied && color == p.SideToMove().Flip()
}

// isEnPassantVictim reports whether sq holds the pawn that an en passant
// capture on p.EnPassantSquare() would remove. The victim sits one rank
// behind the target square from the side-to-move's perspective, so it is
// never among the target square's own attackers.
func isEnPassantVictim(p rules.Position, sq Square) bool {
	target := p.EnPassantSquare()
	if !target.IsValid() {
		return false
	}
	victim := target.To(-p.SideToMove().MoveDirection())
	return victim.IsValid() && victim == sq
}

func stepIdle(p rules.Position, event Square) (State, *Move) {
	switch {
	case isFriendly(p, event):
		return FriendlyPUState(event), nil
	case isEnemy(p, event):
		us := p.SideToMove()
		attacked := rules.AttackersTo(p, event, p.Occupied(), us) != BbZero
		if attacked || isEnPassantVictim(p, event) {
			return EnemyPUState(event), nil
		}
		return InvalidPiecePUState(false, SqNone, event), nil
	default: // empty square lifted is physically impossible
		return ErrorState(), nil
	}
}

func stepFriendlyPU(p rules.Position, st State, event Square) (State, *Move) {
	prev := st.Square1
	us := p.SideToMove()

	if event == prev {
		return IdleState(), nil
	}

	lifted, _, _ := rules.RoleAt(p, prev)
	if castle, ok := tryCastlePickup(p, prev, lifted, event); ok {
		return castle, nil
	}

	if isFriendly(p, event) {
		return InvalidPiecePUState(true, prev, event), nil
	}

	if isEnemy(p, event) {
		targetable := rules.AttacksFrom(p, prev).Has(event)
		if targetable || (lifted == Pawn && isEnPassantVictim(p, event)) {
			return FriendlyAndEnemyPUState(prev, event), nil
		}
		return InvalidPiecePUState(true, prev, event), nil
	}

	// event square is empty
	if lifted == Pawn && prev.RankOf() == us.PromotionSourceRank() {
		m := PromotionMove(prev, event, PtNone, Queen)
		if rules.IsMoveLegal(p, m) {
			return IdleState(), &m
		}
	}

	m := NormalMove(lifted, prev, event, PtNone)
	if rules.IsMoveLegal(p, m) {
		return IdleState(), &m
	}
	return InvalidMoveState(prev, event), nil
}

// tryCastlePickup checks whether lifting a rook onto the home king square
// (or the king onto a home rook square) starts a legal castle.
func tryCastlePickup(p rules.Position, prev Square, lifted PieceType, event Square) (State, bool) {
	pt, color, occupied := rules.RoleAt(p, event)

	var kingSq, rookSq Square
	switch {
	case lifted == Rook && occupied && pt == King && color == p.SideToMove():
		kingSq, rookSq = event, prev
	case lifted == King && occupied && pt == Rook && color == p.SideToMove():
		kingSq, rookSq = prev, event
	default:
		return State{}, false
	}
	if rules.IsMoveLegal(p, CastleMove(kingSq, rookSq)) {
		return CastlingState(kingSq, rookSq), true
	}
	return State{}, false
}

func stepEnemyPU(p rules.Position, st State, event Square) (State, *Move) {
	prev := st.Square1

	if event == prev {
		return IdleState(), nil
	}

	us := p.SideToMove()
	if isFriendly(p, event) {
		pt, _, _ := rules.RoleAt(p, event)
		attacker := rules.AttackersTo(p, prev, p.Occupied(), us).Has(event)
		enPassant := pt == Pawn && isEnPassantVictim(p, prev)
		// redundant with commit-time legality (IsMoveLegal rejects this
		// capture anyway): our king may not capture onto a square an enemy
		// piece still attacks once the king has left its own square.
		kingSuicide := pt == King &&
			rules.AttackersTo(p, prev, p.Occupied()&^event.Bb(), us.Flip()) != BbZero
		if (attacker || enPassant) && !kingSuicide {
			return FriendlyAndEnemyPUState(event, prev), nil
		}
	}

	return InvalidPiecePUState(true, prev, event), nil
}

func stepFriendlyAndEnemyPU(p rules.Position, st State, event Square) (State, *Move) {
	friendly, enemy := st.Square1, st.Square2
	role, _, _ := rules.RoleAt(p, friendly)

	if event == friendly {
		return EnemyPUState(enemy), nil
	}

	// en passant lands the capturing pawn on the target square, not on the
	// victim's own square, since the victim never stood there.
	if role == Pawn && isEnPassantVictim(p, enemy) {
		target := p.EnPassantSquare()
		if event != target {
			return ErrorState(), nil
		}
		m := EnPassantMove(friendly, target)
		if rules.IsMoveLegal(p, m) {
			return IdleState(), &m
		}
		return ErrorState(), nil
	}

	if event == enemy {
		capture, _, _ := rules.RoleAt(p, enemy)
		us := p.SideToMove()

		var m Move
		if role == Pawn && us.PromotionRankBb().Has(enemy) {
			m = PromotionMove(friendly, enemy, capture, Queen)
		} else {
			m = NormalMove(role, friendly, enemy, capture)
		}

		if rules.IsMoveLegal(p, m) {
			return IdleState(), &m
		}
		return ErrorState(), nil
	}

	return ErrorState(), nil
}

func stepCastling(p rules.Position, st State, event Square) (State, *Move) {
	us := p.SideToMove()
	kingside := st.RookSquare.FileOf() == FileH

	var landing, rookLanding Square
	switch {
	case kingside && us == White:
		landing, rookLanding = SqG1, SqF1
	case kingside && us == Black:
		landing, rookLanding = SqG8, SqF8
	case !kingside && us == White:
		landing, rookLanding = SqC1, SqD1
	default:
		landing, rookLanding = SqC8, SqD8
	}

	if event == landing {
		return CastlingPutRookDownState(st.KingSquare, st.RookSquare, rookLanding), nil
	}
	return ErrorState(), nil
}

func stepCastlingPutRookDown(st State, event Square) (State, *Move) {
	if event == st.RookTarget {
		m := CastleMove(st.KingSquare, st.RookSquare)
		return IdleState(), &m
	}
	return ErrorState(), nil
}

// stepInvalidPiecePU recovers from an illegal pickup once the offending
// piece is set back down on its own square. If there was an earlier state,
// it is restored based on whether that earlier square still holds (per the
// untouched Position) a friendly or an enemy piece.
func stepInvalidPiecePU(p rules.Position, st State, event Square) (State, *Move) {
	if event != st.Square1 {
		return ErrorState(), nil
	}
	if !st.HasPrev {
		return IdleState(), nil
	}
	if isFriendly(p, st.Prev) {
		return FriendlyPUState(st.Prev), nil
	}
	return EnemyPUState(st.Prev), nil
}

func stepInvalidMove(st State, event Square) (State, *Move) {
	if event == st.Square2 {
		return FriendlyPUState(st.Square1), nil
	}
	return ErrorState(), nil
}
