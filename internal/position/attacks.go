//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package position

import (
	. "github.com/Mario-O123/chessgo/internal/types"
)

// pawnAttackDirs returns the two diagonal offsets a pawn of color c
// attacks along (equivalently, stepping from a square along them finds
// the pawns of the other color that attack that square).
func pawnAttackDirs(c Color) [2]int {
	if c == White {
		return [2]int{NorthEast, NorthWest}
	}
	return [2]int{SouthEast, SouthWest}
}

// IsSquareAttacked reports whether sq is attacked by any piece of byColor.
func (p *Position) IsSquareAttacked(sq Square, byColor Color) bool {
	// pawns: look at the two squares a byColor pawn would attack from
	// to land on sq, i.e. step from sq in the *opposite* direction of
	// byColor's own forward pawn attacks.
	pawnDirs := pawnAttackDirs(byColor.Flip())
	for _, d := range pawnDirs {
		from := sq.To(d)
		if IsOnBoard(from) && p.board[from] == MakePiece(byColor, Pawn) {
			return true
		}
	}

	for _, d := range KnightDirections {
		from := sq.To(d)
		if IsOnBoard(from) && p.board[from] == MakePiece(byColor, Knight) {
			return true
		}
	}

	for _, d := range KingDirections {
		from := sq.To(d)
		if IsOnBoard(from) && p.board[from] == MakePiece(byColor, King) {
			return true
		}
	}

	for _, d := range RookDirections {
		if p.slidingAttackAlong(sq, d, byColor, Rook, Queen) {
			return true
		}
	}
	for _, d := range BishopDirections {
		if p.slidingAttackAlong(sq, d, byColor, Bishop, Queen) {
			return true
		}
	}

	return false
}

// slidingAttackAlong walks from sq in direction d until it hits a piece
// or leaves the board; returns true if the first piece found belongs to
// byColor and is one of the two attacking kinds (e.g. Rook/Queen on a
// rook ray, Bishop/Queen on a bishop ray).
func (p *Position) slidingAttackAlong(sq Square, d int, byColor Color, kind1, kind2 PieceType) bool {
	cur := sq.To(d)
	for IsOnBoard(cur) {
		pc := p.board[cur]
		if pc != PieceNone {
			if pc.ColorOf() == byColor && (pc.TypeOf() == kind1 || pc.TypeOf() == kind2) {
				return true
			}
			return false
		}
		cur = cur.To(d)
	}
	return false
}

// IsInCheck reports whether color's king is currently attacked.
func (p *Position) IsInCheck(color Color) bool {
	return p.IsSquareAttacked(p.kingSq[color], color.Flip())
}

// GivesCheck reports whether mv, if played, would leave the opponent's
// king in check. It makes the move, tests, and unmakes it.
func (p *Position) GivesCheck(mv Move) bool {
	p.MakeMove(mv)
	check := p.IsInCheck(p.sideToMove)
	p.UnmakeMove()
	return check
}

// IsCapturingMove reports whether mv captures a piece (including en
// passant) as encoded, without needing to make the move.
func (p *Position) IsCapturingMove(mv Move) bool {
	if mv.MoveType() == EnPassant {
		return true
	}
	return p.board[mv.To()] != PieceNone
}
