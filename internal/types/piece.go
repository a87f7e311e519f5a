//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package types

// Piece packs a Color and a PieceType into a single small value:
// the color occupies bit 3, the piece type the low 3 bits.
type Piece int8

const PieceNone Piece = 0

const pieceLength = 16

// MakePiece combines a color and piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(c)<<3 | Piece(pt)
}

// Named pieces, computed from MakePiece so the bit layout stays the
// single source of truth.
var (
	WhiteKing   = MakePiece(White, King)
	WhitePawn   = MakePiece(White, Pawn)
	WhiteKnight = MakePiece(White, Knight)
	WhiteBishop = MakePiece(White, Bishop)
	WhiteRook   = MakePiece(White, Rook)
	WhiteQueen  = MakePiece(White, Queen)
	BlackKing   = MakePiece(Black, King)
	BlackPawn   = MakePiece(Black, Pawn)
	BlackKnight = MakePiece(Black, Knight)
	BlackBishop = MakePiece(Black, Bishop)
	BlackRook   = MakePiece(Black, Rook)
	BlackQueen  = MakePiece(Black, Queen)
)

// TypeOf returns the PieceType component of p.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 0b0111)
}

// ColorOf returns the Color component of p. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// IsValid returns true if p denotes an actual piece (not PieceNone).
func (p Piece) IsValid() bool {
	return p != PieceNone && p.TypeOf().IsValid()
}

// ValueOf returns the material value of the piece in centipawns.
func (p Piece) ValueOf() int {
	return p.TypeOf().ValueOf()
}

var pieceToChar = [pieceLength]string{}

func init() {
	pieceToChar[MakePiece(White, King)] = "K"
	pieceToChar[MakePiece(White, Pawn)] = "P"
	pieceToChar[MakePiece(White, Knight)] = "N"
	pieceToChar[MakePiece(White, Bishop)] = "B"
	pieceToChar[MakePiece(White, Rook)] = "R"
	pieceToChar[MakePiece(White, Queen)] = "Q"
	pieceToChar[MakePiece(Black, King)] = "k"
	pieceToChar[MakePiece(Black, Pawn)] = "p"
	pieceToChar[MakePiece(Black, Knight)] = "n"
	pieceToChar[MakePiece(Black, Bishop)] = "b"
	pieceToChar[MakePiece(Black, Rook)] = "r"
	pieceToChar[MakePiece(Black, Queen)] = "q"
}

// Char returns the FEN character for the piece: uppercase for White,
// lowercase for Black, "" for PieceNone.
func (p Piece) Char() string {
	if p == PieceNone {
		return ""
	}
	return pieceToChar[p]
}

// String returns "<Color> <PieceType>", e.g. "White Knight".
func (p Piece) String() string {
	if p == PieceNone {
		return "NoPiece"
	}
	return p.ColorOf().String() + " " + p.TypeOf().String()
}

// PieceFromChar returns the Piece for a FEN piece letter, or PieceNone
// if the letter is not a recognized piece character.
func PieceFromChar(c byte) Piece {
	var color Color
	if c >= 'a' && c <= 'z' {
		color = Black
	} else {
		color = White
	}
	upper := c
	if c >= 'a' && c <= 'z' {
		upper = c - ('a' - 'A')
	}
	pt := PieceTypeFromChar(upper)
	if pt == PtNone {
		return PieceNone
	}
	return MakePiece(color, pt)
}
