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

// Package gameloop orchestrates the Board FSM, Rules Oracle and Path
// Planner against the physical board, the opponent driver process and the
// gantry, one ply at a time. It does not call the LED Projector.
package gameloop

import (
	"context"
	"fmt"
	"io"

	"github.com/frankkopp/boardctl/internal/blogging"
	"github.com/frankkopp/boardctl/internal/boardfsm"
	"github.com/frankkopp/boardctl/internal/pathplan"
	"github.com/frankkopp/boardctl/internal/reedstream"
	"github.com/frankkopp/boardctl/internal/rules"
	. "github.com/frankkopp/boardctl/internal/types"
)

var log = blogging.Get("gameloop")

// EventSource yields raw reed-switch events, including the reedstream.Boundary
// sentinel. Satisfied by *reedstream.Scanner; a fake in tests.
type EventSource interface {
	Next() (event int, ok bool)
}

// OpponentDriver is the subset of *opponent.Driver the loop depends on.
type OpponentDriver interface {
	SendMove(san string) error
	ReadMove(ctx context.Context) (string, error)
}

// StepSink is the subset of *gantry.Sink the loop depends on.
type StepSink interface {
	Emit(steps []pathplan.Step) error
}

// Loop holds the Game Loop's entire mutable state: the Position, the board
// FSM's current State and the capture counters. Everything else it calls
// (FSM, Planner) is pure.
type Loop struct {
	Position rules.Position
	State    boardfsm.State
	Human    Color
	Counters pathplan.CaptureCounters

	Events   EventSource
	Opponent OpponentDriver
	Gantry   StepSink
}

// New creates a Loop starting from pos, with humanColor playing the
// reed-switch side of the board and the opponent driver playing the other.
func New(pos rules.Position, humanColor Color, events EventSource, opp OpponentDriver, gantrySink StepSink) *Loop {
	return &Loop{
		Position: pos,
		State:    boardfsm.IdleState(),
		Human:    humanColor,
		Events:   events,
		Opponent: opp,
		Gantry:   gantrySink,
	}
}

// Run drives the loop to completion, returning the final Outcome on a clean
// game-over or a non-nil error wrapping one of this package's sentinels on
// any fatal condition.
func (l *Loop) Run(ctx context.Context) (Outcome, error) {
	for {
		outcome := rules.GameOutcome(l.Position)
		if outcome.IsGameOver() {
			log.Infof("game over: %s", outcome)
			return outcome, nil
		}

		if l.State.Kind == boardfsm.Error {
			return Ongoing, fmt.Errorf("%w", ErrPhysicalDesync)
		}

		if l.Position.SideToMove() == l.Human {
			if err := l.humanPly(); err != nil {
				if err == io.EOF {
					log.Info("reed-switch stream closed at rest, shutting down cleanly")
					return Ongoing, nil
				}
				return Ongoing, err
			}
		} else {
			if err := l.opponentPly(ctx); err != nil {
				return Ongoing, err
			}
		}
	}
}

// humanPly drains reed-switch events through the Board FSM until a Move
// commits or EOF/Error occurs. The stream boundary sentinel is consumed
// without touching the FSM state, and draining goes on with the next event.
func (l *Loop) humanPly() error {
	for {
		raw, ok := l.Events.Next()
		if !ok {
			if l.State.Kind == boardfsm.Idle {
				return io.EOF
			}
			return fmt.Errorf("%w: reed-switch stream closed mid-move", ErrOpponentIO)
		}

		if raw == reedstream.Boundary {
			log.Debug("ply boundary sentinel received")
			continue
		}

		event := Square(raw)
		prePosition := l.Position
		nextState, move := boardfsm.Step(l.Position, l.State, event)
		log.Debugf("fsm %s + event %s -> %s", l.State.Kind, event, nextState.Kind)
		l.State = nextState

		if nextState.Kind == boardfsm.Error {
			return fmt.Errorf("%w", ErrPhysicalDesync)
		}
		if move == nil {
			continue
		}

		san := rules.MoveToSAN(prePosition, *move)
		mover := prePosition.SideToMove()
		l.Position = prePosition.PlayMove(*move)
		l.State = boardfsm.IdleState()
		if move.IsCapture() {
			l.addCapture(mover.Flip())
		}
		log.Infof("committed human move %s (san %s)", move, san)

		if err := l.Opponent.SendMove(san); err != nil {
			return fmt.Errorf("%w: %v", ErrOpponentIO, err)
		}
		return nil
	}
}

// opponentPly reads one SAN reply from the opponent driver, commits it, and
// drives the gantry to carry it out physically.
func (l *Loop) opponentPly(ctx context.Context) error {
	san, err := l.Opponent.ReadMove(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpponentIO, err)
	}

	mover := l.Position.SideToMove()
	counters := l.Counters
	newPosition, move, err := rules.ApplySAN(l.Position, san)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrProtocolViolation, san, err)
	}
	l.Position = newPosition
	log.Infof("committed opponent move %s (san %s)", move, san)

	if move.IsCapture() {
		l.addCapture(mover.Flip())
	}

	steps := pathplan.Plan(move, mover, counters)
	if err := l.Gantry.Emit(steps); err != nil {
		return fmt.Errorf("%w: %v", ErrOpponentIO, err)
	}
	return nil
}

func (l *Loop) addCapture(capturedColor Color) {
	if capturedColor == White {
		l.Counters.CapturedWhites++
	} else {
		l.Counters.CapturedBlacks++
	}
}
