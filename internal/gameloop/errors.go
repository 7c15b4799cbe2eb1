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

import "errors"

// Sentinel errors returned by Loop.Run, checked with errors.Is at the
// composition root to pick a process exit code.
var (
	// ErrProtocolViolation means the opponent driver sent SAN that does not
	// parse or is not legal in the current position.
	ErrProtocolViolation = errors.New("gameloop: opponent sent unparsable or illegal SAN")

	// ErrPhysicalDesync means the Board FSM entered its unrecoverable Error
	// state: the physical board and the FSM's model of it have diverged.
	ErrPhysicalDesync = errors.New("gameloop: board FSM entered unrecoverable error state")

	// ErrOpponentIO means a blocking read or write on an external stream
	// failed: the opponent driver (including EOF while a reply was
	// expected) or the reed-switch stream closing mid-move. EOF on the
	// reed-switch stream while Idle is not an error - see Loop.Run.
	ErrOpponentIO = errors.New("gameloop: external stream I/O failure")
)
