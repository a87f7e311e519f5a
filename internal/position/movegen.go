//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package position

import (
	"strings"

	. "github.com/Mario-O123/chessgo/internal/types"
)

// promotionPieces are the four kinds a pawn reaching the last rank may
// promote to, in the order the generator expands them.
var promotionPieces = [4]PieceType{Knight, Bishop, Rook, Queen}

// GeneratePseudoLegal appends every pseudo-legal move for the side to
// move to dst and returns the extended slice. Pseudo-legal means
// geometrically and rules-correct but may leave the mover's own king in
// check; callers needing only legal moves should use GenerateLegal, or
// filter inline with the make/check/unmake pattern the search itself
// uses. The generator never allocates on its own: dst is caller-owned
// and only appended to.
func (p *Position) GeneratePseudoLegal(dst []Move) []Move {
	us := p.sideToMove
	for sq := Square(0); int(sq) < BoardSize; sq++ {
		if !IsOnBoard(sq) {
			continue
		}
		pc := p.board[sq]
		if pc == PieceNone || pc.ColorOf() != us {
			continue
		}
		switch pc.TypeOf() {
		case Pawn:
			dst = p.genPawnMoves(sq, us, dst)
		case Knight:
			dst = p.genJumpMoves(sq, us, KnightDirections[:], dst)
		case King:
			dst = p.genJumpMoves(sq, us, KingDirections[:], dst)
		case Bishop:
			dst = p.genSlideMoves(sq, us, BishopDirections[:], dst)
		case Rook:
			dst = p.genSlideMoves(sq, us, RookDirections[:], dst)
		case Queen:
			dst = p.genSlideMoves(sq, us, QueenDirections[:], dst)
		}
	}
	dst = p.genCastlingMoves(us, dst)
	return dst
}

func (p *Position) genJumpMoves(from Square, us Color, dirs []int, dst []Move) []Move {
	for _, d := range dirs {
		to := from.To(d)
		if !IsOnBoard(to) {
			continue
		}
		target := p.board[to]
		if target != PieceNone && target.ColorOf() == us {
			continue
		}
		dst = append(dst, CreateMove(from, to, Normal, PtNone))
	}
	return dst
}

func (p *Position) genSlideMoves(from Square, us Color, dirs []int, dst []Move) []Move {
	for _, d := range dirs {
		to := from.To(d)
		for IsOnBoard(to) {
			target := p.board[to]
			if target == PieceNone {
				dst = append(dst, CreateMove(from, to, Normal, PtNone))
				to = to.To(d)
				continue
			}
			if target.ColorOf() != us {
				dst = append(dst, CreateMove(from, to, Normal, PtNone))
			}
			break
		}
	}
	return dst
}

func (p *Position) genPawnMoves(from Square, us Color, dst []Move) []Move {
	forward := North
	startRank, lastRank := 1, 7
	if us == Black {
		forward = South
		startRank, lastRank = 6, 0
	}

	appendPawnDst := func(to Square, mt MoveType) []Move {
		if to.Rank() == lastRank {
			for _, pt := range promotionPieces {
				dst = append(dst, CreateMove(from, to, Promotion, pt))
			}
			return dst
		}
		return append(dst, CreateMove(from, to, mt, PtNone))
	}

	one := from.To(forward)
	if IsOnBoard(one) && p.board[one] == PieceNone {
		dst = appendPawnDst(one, Normal)
		if from.Rank() == startRank {
			two := one.To(forward)
			if IsOnBoard(two) && p.board[two] == PieceNone {
				dst = append(dst, CreateMove(from, two, DoublePawnPush, PtNone))
			}
		}
	}

	captureDirs := [2]int{forward + East, forward + West}
	for _, d := range captureDirs {
		to := from.To(d)
		if !IsOnBoard(to) {
			continue
		}
		target := p.board[to]
		if target != PieceNone && target.ColorOf() != us {
			dst = appendPawnDst(to, Normal)
			continue
		}
		if target == PieceNone && to == p.epTarget {
			dst = append(dst, CreateMove(from, to, EnPassant, PtNone))
		}
	}

	return dst
}

func (p *Position) genCastlingMoves(us Color, dst []Move) []Move {
	if p.IsInCheck(us) {
		return dst
	}
	rank := 0
	oo, ooo := CastlingWhiteOO, CastlingWhiteOOO
	if us == Black {
		rank = 7
		oo, ooo = CastlingBlackOO, CastlingBlackOOO
	}
	kingSq := MakeSquare(4, rank)
	if p.board[kingSq] != MakePiece(us, King) {
		return dst
	}
	enemy := us.Flip()

	if p.castlingRights.Has(oo) {
		fSq, gSq, hSq := MakeSquare(5, rank), MakeSquare(6, rank), MakeSquare(7, rank)
		if p.board[hSq] == MakePiece(us, Rook) &&
			p.board[fSq] == PieceNone && p.board[gSq] == PieceNone &&
			!p.IsSquareAttacked(fSq, enemy) && !p.IsSquareAttacked(gSq, enemy) {
			dst = append(dst, CreateMove(kingSq, gSq, Castling, PtNone))
		}
	}
	if p.castlingRights.Has(ooo) {
		dSq, cSq, bSq, aSq := MakeSquare(3, rank), MakeSquare(2, rank), MakeSquare(1, rank), MakeSquare(0, rank)
		if p.board[aSq] == MakePiece(us, Rook) &&
			p.board[dSq] == PieceNone && p.board[cSq] == PieceNone && p.board[bSq] == PieceNone &&
			!p.IsSquareAttacked(dSq, enemy) && !p.IsSquareAttacked(cSq, enemy) {
			dst = append(dst, CreateMove(kingSq, cSq, Castling, PtNone))
		}
	}
	return dst
}

// GenerateCaptures appends only captures, en-passant captures and
// promotions to dst — the restricted move set quiescence search
// explores. Not allocation-free in the same way as GeneratePseudoLegal
// because it filters the full pseudo-legal set; callers on a hot path
// should prefer a scratch buffer reused across calls.
func (p *Position) GenerateCaptures(dst []Move) []Move {
	var buf [256]Move
	all := p.GeneratePseudoLegal(buf[:0])
	for _, mv := range all {
		if mv.MoveType() == Promotion || mv.MoveType() == EnPassant || p.IsCapturingMove(mv) {
			dst = append(dst, mv)
		}
	}
	return dst
}

// IsLegalMove reports whether mv (assumed pseudo-legal) does not leave
// the mover's own king in check. It makes the move, tests, and unmakes.
func (p *Position) IsLegalMove(mv Move) bool {
	mover := p.sideToMove
	p.MakeMove(mv)
	legal := !p.IsInCheck(mover)
	p.UnmakeMove()
	return legal
}

// GenerateLegal appends every legal move for the side to move to dst:
// every pseudo-legal move that survives the make/check/unmake filter.
func (p *Position) GenerateLegal(dst []Move) []Move {
	var buf [256]Move
	pseudo := p.GeneratePseudoLegal(buf[:0])
	for _, mv := range pseudo {
		if p.IsLegalMove(mv) {
			dst = append(dst, mv)
		}
	}
	return dst
}

// MoveFromUci resolves a long-algebraic move string ("e2e4", "e7e8q")
// against the position's own legal-move list, so callers (the UCI and
// terminal adapters) never have to encode castling/en-passant/promotion
// rules themselves: whatever Position considers legal is the only
// acceptable match. Returns MoveNone, false on any malformed or illegal
// input.
func (p *Position) MoveFromUci(s string) (Move, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 4 && len(s) != 5 {
		return MoveNone, false
	}
	from := SquareFromString(s[0:2])
	to := SquareFromString(s[2:4])
	if from == SqInvalid || to == SqInvalid {
		return MoveNone, false
	}
	promo := PtNone
	if len(s) == 5 {
		promo = PieceTypeFromChar(strings.ToUpper(s[4:5])[0])
		if promo == PtNone {
			return MoveNone, false
		}
	}

	var buf [256]Move
	for _, mv := range p.GenerateLegal(buf[:0]) {
		if mv.From() != from || mv.To() != to {
			continue
		}
		if mv.MoveType() == Promotion && mv.PromotionType() != promo {
			continue
		}
		if mv.MoveType() != Promotion && promo != PtNone {
			continue
		}
		return mv, true
	}
	return MoveNone, false
}

// HasInsufficientMaterial reports whether the current material is
// insufficient to deliver checkmate under any sequence of legal moves:
// KvK, K+minor vK, K vK+minor, KNNvK (either color), or KB vKB with both
// bishops on the same square color.
func (p *Position) HasInsufficientMaterial() bool {
	total := func(c Color) (knights, bishops, rooks, queens, pawns int) {
		return p.pieceCounter[c][Knight], p.pieceCounter[c][Bishop], p.pieceCounter[c][Rook],
			p.pieceCounter[c][Queen], p.pieceCounter[c][Pawn]
	}
	wn, wb, wr, wq, wp := total(White)
	bn, bb, br, bq, bp := total(Black)
	if wr+wq+wp+br+bq+bp != 0 {
		return false
	}
	whiteMinor := wn + wb
	blackMinor := bn + bb
	if whiteMinor == 0 && blackMinor == 0 {
		return true // KvK
	}
	if whiteMinor == 1 && blackMinor == 0 && wb <= 1 {
		return true // K+N or K+B vK
	}
	if blackMinor == 1 && whiteMinor == 0 && bb <= 1 {
		return true // KvK+N or K+B
	}
	if wn == 2 && wb == 0 && blackMinor == 0 {
		return true // KNNvK
	}
	if bn == 2 && bb == 0 && whiteMinor == 0 {
		return true // KvKNN
	}
	if wb == 1 && wn == 0 && bb == 1 && bn == 0 {
		wsq, wok := p.FindSinglePiece(White, Bishop)
		bsq, bok := p.FindSinglePiece(Black, Bishop)
		if wok && bok {
			return squareColor(wsq) == squareColor(bsq)
		}
	}
	return false
}

// squareColor returns 0 for a dark square and 1 for a light square,
// computed from file+rank parity of the square's compact 64-index.
func squareColor(sq Square) int {
	return (sq.File() + sq.Rank()) % 2
}
