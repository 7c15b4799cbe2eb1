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
	"regexp"
	"strings"

	. "github.com/frankkopp/boardctl/internal/types"
)

var regexSanMove = regexp.MustCompile(`([NBRQK])?([a-h])?([1-8])?x?([a-h][1-8]|O-O-O|O-O)(=?([NBRQ]))?([!?+#]*)?`)

// SANToMove matches a SAN string (e.g. "Nf3", "exd5", "O-O", "e8=Q") against
// the legal moves available on p. It returns the matching move, or an error
// if the SAN is malformed, ambiguous or names no legal move.
func SANToMove(p Position, san string) (Move, error) {
	matches := regexSanMove.FindStringSubmatch(san)
	if matches == nil {
		return Move{}, &SANError{SAN: san, Reason: "malformed SAN"}
	}

	pieceType := matches[1]
	disambFile := matches[2]
	disambRank := matches[3]
	toSquare := matches[4]
	promotion := matches[6]

	var found []Move
	for _, m := range LegalMoves(p) {
		if m.Kind == Castling {
			dest := m.KingDestination()
			var castlingString string
			switch dest {
			case SqG1, SqG8:
				castlingString = "O-O"
			case SqC1, SqC8:
				castlingString = "O-O-O"
			}
			if castlingString == toSquare {
				found = append(found, m)
			}
			continue
		}

		if m.To.String() != toSquare {
			continue
		}

		role := p.PieceAt(m.From).TypeOf()
		if len(pieceType) != 0 {
			if role.Char() != pieceType {
				continue
			}
		} else if role != Pawn {
			continue
		}

		if len(disambFile) != 0 && m.From.FileOf().String() != disambFile {
			continue
		}
		if len(disambRank) != 0 && m.From.RankOf().String() != disambRank {
			continue
		}

		if len(promotion) != 0 {
			if m.Kind != Promotion || m.Promotion.Char() != promotion {
				continue
			}
		} else if m.Kind == Promotion {
			continue
		}

		found = append(found, m)
	}

	switch len(found) {
	case 0:
		return Move{}, &SANError{SAN: san, Reason: "no legal move matches"}
	case 1:
		return found[0], nil
	default:
		return Move{}, &SANError{SAN: san, Reason: "ambiguous SAN"}
	}
}

// MoveToSAN renders m as played from p into Standard Algebraic Notation,
// including the check ("+") and checkmate ("#") suffix the resulting
// position calls for.
func MoveToSAN(p Position, m Move) string {
	var os strings.Builder

	switch m.Kind {
	case Castling:
		if m.KingDestination().FileOf() == FileG {
			os.WriteString("O-O")
		} else {
			os.WriteString("O-O-O")
		}

	default:
		role := p.PieceAt(m.From).TypeOf()
		if role != Pawn {
			os.WriteString(role.Char())
			os.WriteString(disambiguation(p, m, role))
		} else if m.IsCapture() {
			os.WriteString(m.From.FileOf().String())
		}
		if m.IsCapture() {
			os.WriteString("x")
		}
		os.WriteString(m.To.String())
		if m.Kind == Promotion {
			os.WriteString("=")
			os.WriteString(m.Promotion.Char())
		}
	}

	next := p.PlayMove(m)
	if next.InCheck(next.SideToMove()) {
		if len(LegalMoves(next)) == 0 {
			os.WriteString("#")
		} else {
			os.WriteString("+")
		}
	}

	return os.String()
}

// disambiguation returns the minimal file/rank/square prefix needed to tell
// m apart from other legal moves of the same role landing on the same square.
func disambiguation(p Position, m Move, role PieceType) string {
	sameFile, sameRank := false, false
	ambiguous := false

	for _, other := range LegalMoves(p) {
		if other.From == m.From || other.To != m.To || other.Kind == Castling {
			continue
		}
		if p.PieceAt(other.From).TypeOf() != role {
			continue
		}
		ambiguous = true
		if other.From.FileOf() == m.From.FileOf() {
			sameFile = true
		}
		if other.From.RankOf() == m.From.RankOf() {
			sameRank = true
		}
	}

	if !ambiguous {
		return ""
	}
	switch {
	case !sameFile:
		return m.From.FileOf().String()
	case !sameRank:
		return m.From.RankOf().String()
	default:
		return m.From.String()
	}
}

// SANError reports why a SAN string could not be resolved to a legal move.
type SANError struct {
	SAN    string
	Reason string
}

func (e *SANError) Error() string {
	return "san " + e.SAN + ": " + e.Reason
}
