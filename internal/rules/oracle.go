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

// ApplySAN resolves san against the legal moves available on p and, if it
// names exactly one of them, returns the resulting position together with
// the move that was played. p itself is left untouched.
func ApplySAN(p Position, san string) (Position, Move, error) {
	m, err := SANToMove(p, san)
	if err != nil {
		return p, Move{}, err
	}
	return p.PlayMove(m), m, nil
}

// RoleAt reports the piece type and color occupying sq, and whether sq is
// occupied at all.
func RoleAt(p Position, sq Square) (PieceType, Color, bool) {
	pc := p.PieceAt(sq)
	if pc == PieceNone {
		return PtNone, White, false
	}
	return pc.TypeOf(), pc.ColorOf(), true
}

// IsMoveLegal reports whether m can legally be played from p.
func IsMoveLegal(p Position, m Move) bool {
	for _, legal := range LegalMoves(p) {
		if legal == m {
			return true
		}
	}
	return false
}
