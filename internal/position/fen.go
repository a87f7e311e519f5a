//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package position

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	. "github.com/Mario-O123/chessgo/internal/types"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FenErrorKind discriminates why a FEN string was rejected.
type FenErrorKind int

const (
	BadFormat FenErrorKind = iota
	BadField
	MissingKing
	IllegalCastlingFlag
	OutOfRangeNumeric
)

// FenError is the typed input error returned by ParseFEN for any
// malformed foreign input; the core never panics on foreign data.
type FenError struct {
	Kind FenErrorKind
	Msg  string
}

func (e *FenError) Error() string {
	return fmt.Sprintf("fen: %s", e.Msg)
}

var (
	regexFields        = regexp.MustCompile(`^\S+ \S+ \S+ \S+ \S+ \S+$`)
	regexPiecePlacement = regexp.MustCompile(`^([pnbrqkPNBRQK1-8]+/){7}[pnbrqkPNBRQK1-8]+$`)
	regexSideToMove     = regexp.MustCompile(`^[wb]$`)
	regexCastling       = regexp.MustCompile(`^(-|K?Q?k?q?)$`)
	regexEpTarget       = regexp.MustCompile(`^(-|[a-h][36])$`)
	regexNumeric        = regexp.MustCompile(`^[0-9]+$`)
)

// ParseFEN decodes a FEN string into a new Position. Every field is
// validated by a dedicated regular expression before any state is
// built, mirroring the field-by-field regex validation style used
// throughout this package's ancestor; on any failure a typed FenError is
// returned and no partially built Position escapes.
func ParseFEN(fen string) (*Position, error) {
	fen = strings.TrimSpace(fen)
	if !regexFields.MatchString(fen) {
		return nil, &FenError{BadFormat, fmt.Sprintf("expected 6 space-separated fields, got %q", fen)}
	}
	fields := strings.Fields(fen)

	placement, stm, castling, ep, halfMove, fullMove := fields[0], fields[1], fields[2], fields[3], fields[4], fields[5]

	if !regexPiecePlacement.MatchString(placement) {
		return nil, &FenError{BadField, fmt.Sprintf("invalid piece placement field %q", placement)}
	}
	if !regexSideToMove.MatchString(stm) {
		return nil, &FenError{BadField, fmt.Sprintf("invalid side-to-move field %q", stm)}
	}
	if !regexCastling.MatchString(castling) {
		return nil, &FenError{IllegalCastlingFlag, fmt.Sprintf("invalid castling field %q", castling)}
	}
	if !regexEpTarget.MatchString(ep) {
		return nil, &FenError{BadField, fmt.Sprintf("invalid en-passant field %q", ep)}
	}
	if !regexNumeric.MatchString(halfMove) {
		return nil, &FenError{OutOfRangeNumeric, fmt.Sprintf("invalid halfmove clock %q", halfMove)}
	}
	if !regexNumeric.MatchString(fullMove) {
		return nil, &FenError{OutOfRangeNumeric, fmt.Sprintf("invalid fullmove number %q", fullMove)}
	}

	p := Empty()

	rank := 7
	file := 0
	for _, ch := range placement {
		switch {
		case ch == '/':
			if file != 8 {
				return nil, &FenError{BadField, fmt.Sprintf("rank %d does not sum to 8 files", rank+1)}
			}
			rank--
			file = 0
		case ch >= '1' && ch <= '8':
			file += int(ch - '0')
		default:
			if file >= 8 {
				return nil, &FenError{BadField, "too many squares in a rank"}
			}
			pc := PieceFromChar(byte(ch))
			if pc == PieceNone {
				return nil, &FenError{BadField, fmt.Sprintf("unrecognized piece character %q", string(ch))}
			}
			sq := MakeSquare(file, rank)
			p.board[sq] = pc
			file++
		}
	}
	if file != 8 || rank != 0 {
		return nil, &FenError{BadField, "piece placement did not fill exactly 8 ranks"}
	}

	if stm == "w" {
		p.sideToMove = White
	} else {
		p.sideToMove = Black
	}

	p.castlingRights = CastlingNone
	if strings.Contains(castling, "K") {
		p.castlingRights.Add(CastlingWhiteOO)
	}
	if strings.Contains(castling, "Q") {
		p.castlingRights.Add(CastlingWhiteOOO)
	}
	if strings.Contains(castling, "k") {
		p.castlingRights.Add(CastlingBlackOO)
	}
	if strings.Contains(castling, "q") {
		p.castlingRights.Add(CastlingBlackOOO)
	}

	if ep == "-" {
		p.epTarget = SqInvalid
	} else {
		p.epTarget = SquareFromString(ep)
	}

	halfMoveClock, _ := strconv.Atoi(halfMove)
	fullMoveNumber, _ := strconv.Atoi(fullMove)
	p.halfMoveClock = halfMoveClock
	p.fullMoveNumber = fullMoveNumber
	if p.fullMoveNumber < 1 {
		p.fullMoveNumber = 1
	}

	p.ComputeKingSq()
	p.ComputePieceCounter()
	p.ComputeZobrist()

	if p.kingSq[White] == SqInvalid || p.kingSq[Black] == SqInvalid {
		return nil, &FenError{MissingKing, "position is missing a king for one or both sides"}
	}

	return p, nil
}

// FEN renders the position back into the six-field FEN string.
func (p *Position) FEN() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := MakeSquare(file, rank)
			pc := p.board[sq]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.Char())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteString("/")
		}
	}
	b.WriteString(" ")
	b.WriteString(p.sideToMove.Char())
	b.WriteString(" ")
	b.WriteString(p.castlingRights.String())
	b.WriteString(" ")
	if IsOnBoard(p.epTarget) {
		b.WriteString(p.epTarget.String())
	} else {
		b.WriteString("-")
	}
	b.WriteString(fmt.Sprintf(" %d %d", p.halfMoveClock, p.fullMoveNumber))
	return b.String()
}

// String renders an ASCII board diagram followed by the FEN string, in
// the style of this package's ancestor's debug-printing helpers.
func (p *Position) String() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		b.WriteString(fmt.Sprintf("%d  ", rank+1))
		for file := 0; file < 8; file++ {
			pc := p.board[MakeSquare(file, rank)]
			if pc == PieceNone {
				b.WriteString(". ")
			} else {
				b.WriteString(pc.Char() + " ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("   a b c d e f g h\n")
	b.WriteString(p.FEN())
	return b.String()
}
