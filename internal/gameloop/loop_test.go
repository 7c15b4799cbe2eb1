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

package gameloop

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/boardctl/internal/boardfsm"
	"github.com/frankkopp/boardctl/internal/pathplan"
	"github.com/frankkopp/boardctl/internal/reedstream"
	"github.com/frankkopp/boardctl/internal/rules"
	. "github.com/frankkopp/boardctl/internal/types"
)

type fakeEvents struct {
	events []int
	i      int
}

func (f *fakeEvents) Next() (int, bool) {
	if f.i >= len(f.events) {
		return 0, false
	}
	e := f.events[f.i]
	f.i++
	return e, true
}

type fakeOpponent struct {
	sent    []string
	replies []string
	i       int
	readErr error
}

func (f *fakeOpponent) SendMove(san string) error {
	f.sent = append(f.sent, san)
	return nil
}

func (f *fakeOpponent) ReadMove(ctx context.Context) (string, error) {
	if f.readErr != nil {
		return "", f.readErr
	}
	if f.i >= len(f.replies) {
		return "", errors.New("no more replies queued")
	}
	r := f.replies[f.i]
	f.i++
	return r, nil
}

type fakeGantry struct {
	emitted [][]pathplan.Step
}

func (f *fakeGantry) Emit(steps []pathplan.Step) error {
	f.emitted = append(f.emitted, steps)
	return nil
}

// Scenario A: quiet pawn move 1.e4, human as White.
func TestScenarioA_QuietPawnMoveCommitsAndSendsSAN(t *testing.T) {
	events := &fakeEvents{events: []int{12, 28}}
	opp := &fakeOpponent{replies: []string{"e5"}}
	gantrySink := &fakeGantry{}
	l := New(rules.StartPosition(), White, events, opp, gantrySink)

	err := l.humanPly()
	require.NoError(t, err)

	assert.Equal(t, []string{"e4"}, opp.sent)
	assert.Equal(t, boardfsm.Idle, l.State.Kind)
	assert.Equal(t, Pawn, l.Position.PieceAt(SqE4).TypeOf())
	assert.Equal(t, Black, l.Position.SideToMove())
}

// Scenario B: knight move 1.Nf3.
func TestScenarioB_KnightMoveSendsSAN(t *testing.T) {
	events := &fakeEvents{events: []int{6, 21}}
	opp := &fakeOpponent{replies: []string{"Nf6"}}
	l := New(rules.StartPosition(), White, events, opp, &fakeGantry{})

	require.NoError(t, l.humanPly())
	assert.Equal(t, []string{"Nf3"}, opp.sent)
}

// Scenario C: a human capture increments the captured-color counter.
func TestScenarioC_CaptureIncrementsCounters(t *testing.T) {
	p, err := rules.NewPosition("4k3/5n2/8/8/2B5/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	events := &fakeEvents{events: []int{int(SqF7), int(SqC4), int(SqF7)}}
	opp := &fakeOpponent{replies: []string{"Kd8"}}
	l := New(p, White, events, opp, &fakeGantry{})

	require.NoError(t, l.humanPly())
	assert.Equal(t, 0, l.Counters.CapturedWhites)
	assert.Equal(t, 1, l.Counters.CapturedBlacks)
	// Bxf7 also checks the black king on e8, adjacent to f7 on the diagonal.
	assert.Equal(t, []string{"Bxf7+"}, opp.sent)
}

// Scenario: an opponent move is committed, planned and emitted to the gantry.
func TestOpponentMoveCommitsAndEmitsSteps(t *testing.T) {
	opp := &fakeOpponent{replies: []string{"e4"}}
	gantrySink := &fakeGantry{}
	l := New(rules.StartPosition(), Black, &fakeEvents{}, opp, gantrySink)

	err := l.opponentPly(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Pawn, l.Position.PieceAt(SqE4).TypeOf())
	require.Len(t, gantrySink.emitted, 1)
	assert.NotEmpty(t, gantrySink.emitted[0])
}

// Scenario F: a human en passant commits, is sent as "exd6" and counts as a
// captured black piece.
func TestScenarioF_EnPassantCommitsAndIncrementsCapture(t *testing.T) {
	p, err := rules.NewPosition("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)

	events := &fakeEvents{events: []int{int(SqE5), int(SqD5), int(SqD6)}}
	opp := &fakeOpponent{replies: []string{"Nc6"}}
	l := New(p, White, events, opp, &fakeGantry{})

	require.NoError(t, l.humanPly())
	assert.Equal(t, 1, l.Counters.CapturedBlacks)
	assert.Equal(t, []string{"exd6"}, opp.sent)
}

// A physically impossible pickup (empty square) drives the FSM into Error
// and Run surfaces ErrPhysicalDesync.
func TestRunSurfacesPhysicalDesyncOnFSMError(t *testing.T) {
	events := &fakeEvents{events: []int{int(SqA3)}}
	l := New(rules.StartPosition(), White, events, &fakeOpponent{}, &fakeGantry{})

	_, err := l.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPhysicalDesync))
}

// A clean EOF on the reed-switch stream while Idle ends the loop with no error.
func TestRunCleanShutdownOnEventStreamEOFWhileIdle(t *testing.T) {
	events := &fakeEvents{}
	l := New(rules.StartPosition(), White, events, &fakeOpponent{}, &fakeGantry{})

	outcome, err := l.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Ongoing, outcome)
}

// An unparsable opponent reply is a protocol violation.
func TestOpponentPlyProtocolViolationOnBadSAN(t *testing.T) {
	opp := &fakeOpponent{replies: []string{"not-a-move"}}
	l := New(rules.StartPosition(), Black, &fakeEvents{}, opp, &fakeGantry{})

	err := l.opponentPly(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProtocolViolation))
}

// The ply-boundary sentinel is consumed without altering FSM state.
func TestBoundarySentinelFlushesWithoutStateChange(t *testing.T) {
	events := &fakeEvents{events: []int{reedstream.Boundary, 12, 28}}
	opp := &fakeOpponent{replies: []string{"e5"}}
	l := New(rules.StartPosition(), White, events, opp, &fakeGantry{})

	require.NoError(t, l.humanPly())
	assert.Equal(t, []string{"e4"}, opp.sent)
}
