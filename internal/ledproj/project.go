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

// Package ledproj derives the per-square RGB hint bitboards the physical LED
// matrix renders from the current position and interaction state. project is
// pure; detecting which squares changed between frames is the LED driver's
// job, not this package's.
package ledproj

import (
	"github.com/frankkopp/boardctl/internal/boardfsm"
	"github.com/frankkopp/boardctl/internal/rules"
	. "github.com/frankkopp/boardctl/internal/types"
)

// RGB is three independent channel bitboards; the LED driver lights each
// channel on a square however it sees fit (the channels are not meant to be
// read as actual red/green/blue mixing).
type RGB struct {
	R Bitboard
	G Bitboard
	B Bitboard
}

// Project derives the RGB hint from position and the board FSM's current
// interaction state.
func Project(p rules.Position, st boardfsm.State) RGB {
	switch st.Kind {
	case boardfsm.Idle:
		return RGB{}

	case boardfsm.FriendlyPU:
		return projectFriendlyPU(p, st.Square1)

	case boardfsm.EnemyPU:
		us := p.SideToMove()
		return RGB{G: rules.AttackersTo(p, st.Square1, p.Occupied(), us)}

	case boardfsm.FriendlyAndEnemyPU:
		var bb Bitboard
		bb.PushSquare(st.Square2)
		return RGB{G: bb}

	case boardfsm.Castling:
		landing := kingLanding(p.SideToMove(), st.RookSquare)
		var bb Bitboard
		bb.PushSquare(landing)
		return RGB{R: bb, B: bb}

	case boardfsm.CastlingPutRookDown:
		var bb Bitboard
		bb.PushSquare(st.RookTarget)
		return RGB{R: bb, B: bb}

	case boardfsm.InvalidPiecePU, boardfsm.InvalidMove:
		var bb Bitboard
		bb.PushSquare(st.Square1)
		return RGB{R: bb}

	default: // Error
		return RGB{R: BbAll}
	}
}

func kingLanding(us Color, rookSq Square) Square {
	kingside := rookSq.FileOf() == FileH
	switch {
	case kingside && us == White:
		return SqG1
	case kingside && us == Black:
		return SqG8
	case !kingside && us == White:
		return SqC1
	default:
		return SqC8
	}
}

func projectFriendlyPU(p rules.Position, sq Square) RGB {
	pc := p.PieceAt(sq)
	us := pc.ColorOf()
	them := us.Flip()
	occupied := p.Occupied()
	enemies := p.PiecesOf(them)

	if pc.TypeOf() != Pawn {
		canMoveTo := rules.AttacksFrom(p, sq) &^ occupied
		canCapture := rules.AttacksFrom(p, sq) & enemies
		return RGB{R: canCapture, G: canMoveTo | canCapture}
	}

	canCapture := rules.AttacksFrom(p, sq) & enemies

	var canMoveTo Bitboard
	push1 := sq.To(us.MoveDirection())
	if push1.IsValid() && !occupied.Has(push1) {
		canMoveTo.PushSquare(push1)
		if sq.RankOf() == us.PawnDoubleStartRank() {
			push2 := push1.To(us.MoveDirection())
			if push2.IsValid() && !occupied.Has(push2) {
				canMoveTo.PushSquare(push2)
			}
		}
	}

	// natural reading of the promotion trigger: the lifted pawn already
	// stands on the rank one step from promoting (7th for white, 2nd for
	// black), not the destination rank.
	if sq.RankOf() == us.PromotionSourceRank() {
		return RGB{R: canMoveTo | canCapture, G: canCapture, B: canMoveTo}
	}
	return RGB{R: canCapture, G: canMoveTo | canCapture}
}
