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

// Package rules is the rules oracle: it holds the chess position as an
// immutable value type and answers every legality, attack and SAN question
// the board FSM needs. Nothing in this package mutates a Position in place -
// every operation that advances the game returns a new value, leaving the
// caller's copy untouched.
package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/frankkopp/boardctl/internal/assert"
	. "github.com/frankkopp/boardctl/internal/types"
)

// StartFen is the standard chess starting position in Forsyth-Edwards Notation.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is a complete, immutable snapshot of a chess game at one point in
// time. Copying a Position (plain assignment, passing by value) produces an
// independent snapshot - there is no shared mutable state to alias.
type Position struct {
	board      [SqLength]Piece
	occupied   Bitboard
	byColor    [2]Bitboard
	byType     [PtLength]Bitboard
	sideToMove Color
	castling   CastlingRights
	epSquare   Square
	halfmove   int
	fullmove   int
}

// NewPosition parses a FEN string into a Position.
func NewPosition(fen string) (Position, error) {
	var p Position
	p.epSquare = SqNone

	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Position{}, fmt.Errorf("invalid fen %q: need at least 4 fields", fen)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Position{}, fmt.Errorf("invalid fen %q: need 8 ranks", fen)
	}
	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		f := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				f += File(c - '0')
				continue
			}
			pc := PieceFromChar(string(c))
			if pc == PieceNone {
				return Position{}, fmt.Errorf("invalid fen %q: bad piece char %q", fen, c)
			}
			if !f.IsValid() {
				return Position{}, fmt.Errorf("invalid fen %q: rank overflow", fen)
			}
			p.put(SquareOf(f, r), pc)
			f++
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return Position{}, fmt.Errorf("invalid fen %q: bad side to move %q", fen, fields[1])
	}

	p.castling = CastlingNone
	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castling.Add(CastlingWhiteOO)
			case 'Q':
				p.castling.Add(CastlingWhiteOOO)
			case 'k':
				p.castling.Add(CastlingBlackOO)
			case 'q':
				p.castling.Add(CastlingBlackOOO)
			default:
				return Position{}, fmt.Errorf("invalid fen %q: bad castling char %q", fen, c)
			}
		}
	}

	if fields[3] == "-" {
		p.epSquare = SqNone
	} else {
		p.epSquare = MakeSquare(fields[3])
		if p.epSquare == SqNone {
			return Position{}, fmt.Errorf("invalid fen %q: bad en passant square %q", fen, fields[3])
		}
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return Position{}, fmt.Errorf("invalid fen %q: bad halfmove clock: %w", fen, err)
		}
		p.halfmove = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return Position{}, fmt.Errorf("invalid fen %q: bad fullmove number: %w", fen, err)
		}
		p.fullmove = n
	} else {
		p.fullmove = 1
	}

	return p, nil
}

// StartPosition returns the standard chess starting position.
func StartPosition() Position {
	p, err := NewPosition(StartFen)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in start fen: %v", err))
	}
	return p
}

// put places a piece on a square of an as-yet-unpublished Position during FEN
// parsing. Not exported: callers never mutate a Position after construction.
func (p *Position) put(sq Square, pc Piece) {
	p.board[sq] = pc
	var bb Bitboard
	bb.PushSquare(sq)
	p.occupied |= bb
	p.byColor[pc.ColorOf()] |= bb
	p.byType[pc.TypeOf()] |= bb
}

// remove clears a square during an in-place mutation of a private copy.
func (p *Position) remove(sq Square) {
	pc := p.board[sq]
	if pc == PieceNone {
		return
	}
	p.board[sq] = PieceNone
	var bb Bitboard
	bb.PushSquare(sq)
	p.occupied &^= bb
	p.byColor[pc.ColorOf()] &^= bb
	p.byType[pc.TypeOf()] &^= bb
}

// PieceAt returns the piece occupying sq, or PieceNone if it is empty.
func (p Position) PieceAt(sq Square) Piece {
	if assert.DEBUG {
		assert.Assert(sq.IsValid(), "invalid square: %d", sq)
	}
	return p.board[sq]
}

// IsEmpty reports whether sq holds no piece.
func (p Position) IsEmpty(sq Square) bool {
	return p.board[sq] == PieceNone
}

// SideToMove returns the color to move.
func (p Position) SideToMove() Color {
	return p.sideToMove
}

// CastlingRights returns the castling rights still available.
func (p Position) CastlingRights() CastlingRights {
	return p.castling
}

// EnPassantSquare returns the en passant target square, or SqNone if none.
func (p Position) EnPassantSquare() Square {
	return p.epSquare
}

// HalfmoveClock returns the number of halfmoves since the last capture or pawn move.
func (p Position) HalfmoveClock() int {
	return p.halfmove
}

// Occupied returns a bitboard of every occupied square.
func (p Position) Occupied() Bitboard {
	return p.occupied
}

// Pieces returns a bitboard of every square occupied by a piece of color c and type pt.
func (p Position) Pieces(c Color, pt PieceType) Bitboard {
	return p.byColor[c] & p.byType[pt]
}

// PiecesOf returns a bitboard of every square occupied by color c.
func (p Position) PiecesOf(c Color) Bitboard {
	return p.byColor[c]
}

// KingSquare returns the square color c's king sits on.
func (p Position) KingSquare(c Color) Square {
	return p.Pieces(c, King).Lsb()
}

// PlayMove returns a new Position with m applied. The receiver is left
// untouched - PlayMove never mutates shared state. The caller is responsible
// for only calling this with a legal move; PlayMove itself does not re-check
// legality.
func (p Position) PlayMove(m Move) Position {
	next := p // value copy

	mover := p.sideToMove
	next.epSquare = SqNone
	next.halfmove++
	if mover == Black {
		next.fullmove++
	}

	switch m.Kind {
	case Castling:
		next.remove(m.KingSquare)
		next.remove(m.RookSquare)
		next.put(m.KingDestination(), MakePiece(mover, King))
		next.put(m.RookDestination(), MakePiece(mover, Rook))
		next.halfmove = p.halfmove + 1

	case EnPassant:
		victim := SquareOf(m.To.FileOf(), m.From.RankOf())
		next.remove(m.From)
		next.remove(victim)
		next.put(m.To, MakePiece(mover, Pawn))
		next.halfmove = 0

	case Promotion:
		next.remove(m.From)
		if m.IsCapture() {
			next.remove(m.To)
		}
		next.put(m.To, MakePiece(mover, m.Promotion))
		next.halfmove = 0

	default: // Normal
		next.remove(m.From)
		if m.IsCapture() {
			next.remove(m.To)
		}
		next.put(m.To, MakePiece(mover, m.Role))
		if m.Role == Pawn || m.IsCapture() {
			next.halfmove = 0
		}
		if m.Role == Pawn && SquareDistance(m.From, m.To) == 2 {
			next.epSquare = SquareOf(m.From.FileOf(), (m.From.RankOf()+m.To.RankOf())/2)
		}
	}

	// castling rights are lost once a king or rook leaves - or a rook is
	// captured on - its home square
	if m.Kind == Castling {
		next.castling.Remove(GetCastlingRights(m.KingSquare))
		next.castling.Remove(GetCastlingRights(m.RookSquare))
	} else {
		next.castling.Remove(GetCastlingRights(m.From))
		next.castling.Remove(GetCastlingRights(m.To))
	}

	next.sideToMove = mover.Flip()
	return next
}

// Fen renders the position as a FEN string.
func (p Position) Fen() string {
	var os strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				os.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			os.WriteString(pc.String())
		}
		if empty > 0 {
			os.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		os.WriteString("/")
	}
	os.WriteString(" ")
	os.WriteString(p.sideToMove.String())
	os.WriteString(" ")
	os.WriteString(p.castling.String())
	os.WriteString(" ")
	os.WriteString(p.epSquare.String())
	os.WriteString(" ")
	os.WriteString(strconv.Itoa(p.halfmove))
	os.WriteString(" ")
	os.WriteString(strconv.Itoa(p.fullmove))
	return os.String()
}
