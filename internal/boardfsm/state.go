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

// Package boardfsm interprets a stream of reed-switch square-toggle events
// into committed chess moves. The state machine is a pure function of
// (position, previous state, event) - it holds no memory beyond the State
// value it returns, and never mutates the Position it is handed.
package boardfsm

import (
	. "github.com/frankkopp/boardctl/internal/types"
)

// Kind distinguishes the nine cases of the interaction state machine.
type Kind uint8

// Kind constants, one per InteractionState case.
const (
	Idle Kind = iota
	FriendlyPU
	EnemyPU
	FriendlyAndEnemyPU
	Castling
	CastlingPutRookDown
	InvalidPiecePU
	InvalidMove
	Error
)

var kindToString = [...]string{
	"Idle", "FriendlyPU", "EnemyPU", "FriendlyAndEnemyPU",
	"Castling", "CastlingPutRookDown", "InvalidPiecePU", "InvalidMove", "Error",
}

func (k Kind) String() string {
	if int(k) >= len(kindToString) {
		return "Unknown"
	}
	return kindToString[k]
}

// State is the FSM's entire memory between events - a tagged union over
// Kind. Only the fields relevant to Kind are meaningful:
//
//	FriendlyPU:           Square1 (the lifted friendly square)
//	EnemyPU:               Square1 (the lifted enemy square)
//	FriendlyAndEnemyPU:    Square1 (friendly), Square2 (enemy)
//	Castling:              KingSquare, RookSquare
//	CastlingPutRookDown:   KingSquare, RookSquare, RookTarget
//	InvalidPiecePU:        Square1 (offender), Prev, HasPrev
//	InvalidMove:           Square1 (from), Square2 (to)
type State struct {
	Kind       Kind
	Square1    Square
	Square2    Square
	KingSquare Square
	RookSquare Square
	RookTarget Square
	Prev       Square
	HasPrev    bool
}

// IdleState is the FSM's resting state: no piece in hand.
func IdleState() State {
	return State{Kind: Idle}
}

// FriendlyPUState records that a side-to-move piece was lifted from sq.
func FriendlyPUState(sq Square) State {
	return State{Kind: FriendlyPU, Square1: sq}
}

// EnemyPUState records that an attacked opposing piece was lifted from sq.
func EnemyPUState(sq Square) State {
	return State{Kind: EnemyPU, Square1: sq}
}

// FriendlyAndEnemyPUState records that both the capturer and its target are
// off the board, awaiting the capturer's landing.
func FriendlyAndEnemyPUState(friendly Square, enemy Square) State {
	return State{Kind: FriendlyAndEnemyPU, Square1: friendly, Square2: enemy}
}

// CastlingState records that both king and rook are off the board and the
// castle is legal; awaiting the king's landing square.
func CastlingState(kingSq Square, rookSq Square) State {
	return State{Kind: Castling, KingSquare: kingSq, RookSquare: rookSq}
}

// CastlingPutRookDownState records that the king has landed; awaiting the
// rook on its target square.
func CastlingPutRookDownState(kingSq Square, rookSq Square, rookTarget Square) State {
	return State{Kind: CastlingPutRookDown, KingSquare: kingSq, RookSquare: rookSq, RookTarget: rookTarget}
}

// InvalidPiecePUState records an illegal pickup of offender. prevValid
// indicates whether there was an earlier state to restore to once offender
// is set back down; prev holds that earlier square when prevValid is true.
func InvalidPiecePUState(prevValid bool, prev Square, offender Square) State {
	return State{Kind: InvalidPiecePU, Square1: offender, Prev: prev, HasPrev: prevValid}
}

// InvalidMoveState records that a friendly piece from was placed on the
// illegal destination to; recovery requires setting it back down on to.
func InvalidMoveState(from Square, to Square) State {
	return State{Kind: InvalidMove, Square1: from, Square2: to}
}

// ErrorState is the sticky, unrecoverable state. Only an external reset
// (out of scope for this package) leaves it.
func ErrorState() State {
	return State{Kind: Error}
}
