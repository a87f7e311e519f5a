//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package position

import (
	"github.com/Mario-O123/chessgo/internal/assert"
	. "github.com/Mario-O123/chessgo/internal/types"
	"github.com/Mario-O123/chessgo/internal/zobrist"
)

// MakeMove applies mv to the position, pushing an undo record onto the
// internal history stack. The matching UnmakeMove call restores the
// position exactly. MakeMove never checks legality (own-king-in-check)
// — that is the caller's contract, enforced by the movegen/legality
// package and by the search's inline make-check-unmake pattern.
func (p *Position) MakeMove(mv Move) {
	assert.Assert(p.historyCounter < maxHistory, "history stack exhausted")

	from, to := mv.From(), mv.To()
	moved := p.board[from]
	assert.Assert(moved != PieceNone, "MakeMove: no piece on from-square %s", from)
	assert.Assert(moved.ColorOf() == p.sideToMove, "MakeMove: moved piece color does not match side to move")

	h := &p.history[p.historyCounter]
	p.historyCounter++
	h.move = mv
	h.movedPiece = moved
	h.capturedPiece = PieceNone
	h.capturedSquare = SqInvalid
	h.rookFrom = SqInvalid
	h.rookTo = SqInvalid
	h.prevSideToMove = p.sideToMove
	h.prevEpTarget = p.epTarget
	h.prevCastlingRights = p.castlingRights
	h.prevZobrist = p.zobristKey
	h.prevHalfMoveClock = p.halfMoveClock
	h.prevFullMoveNumber = p.fullMoveNumber
	h.prevKingSq = p.kingSq
	h.prevPieceCounter = p.pieceCounter

	p.clearEpZobrist()
	p.epTarget = SqInvalid

	isPawnMove := moved.TypeOf() == Pawn
	isCapture := false

	switch mv.MoveType() {
	case EnPassant:
		mover := p.sideToMove
		dir := North
		if mover == White {
			dir = South
		}
		capSq := to.To(dir)
		h.capturedSquare = capSq
		h.capturedPiece = p.removePiece(capSq)
		p.movePiece(from, to)
		isCapture = true

	case Castling:
		p.movePiece(from, to)
		var rookFrom, rookTo Square
		if to.File() == 6 { // kingside: king lands on g-file
			rookFrom = MakeSquare(7, from.Rank())
			rookTo = MakeSquare(5, from.Rank())
		} else { // queenside: king lands on c-file
			rookFrom = MakeSquare(0, from.Rank())
			rookTo = MakeSquare(3, from.Rank())
		}
		h.rookFrom, h.rookTo = rookFrom, rookTo
		p.movePiece(rookFrom, rookTo)

	case Promotion:
		h.capturedSquare = to
		if p.board[to] != PieceNone {
			h.capturedPiece = p.removePiece(to)
			isCapture = true
		}
		p.removePiece(from)
		p.putPiece(to, MakePiece(moved.ColorOf(), mv.PromotionType()))

	default: // Normal, DoublePawnPush
		h.capturedSquare = to
		if p.board[to] != PieceNone {
			h.capturedPiece = p.removePiece(to)
			isCapture = true
		}
		p.movePiece(from, to)
		if mv.MoveType() == DoublePawnPush {
			behind := North
			if moved.ColorOf() == White {
				behind = South
			}
			p.epTarget = to.To(behind)
		}
	}

	// castling-rights updates: king move revokes both of its own side's
	// rights; a rook leaving or being captured on its home square revokes
	// that single right (checked by square identity, see
	// revokeCastlingIfHomeSquare).
	if moved.TypeOf() == King {
		if moved.ColorOf() == White {
			if p.castlingRights.Has(CastlingWhiteOO) {
				p.zobristKey ^= zobrist.CastlingKey(CastlingWhiteOO)
				p.castlingRights.Remove(CastlingWhiteOO)
			}
			if p.castlingRights.Has(CastlingWhiteOOO) {
				p.zobristKey ^= zobrist.CastlingKey(CastlingWhiteOOO)
				p.castlingRights.Remove(CastlingWhiteOOO)
			}
		} else {
			if p.castlingRights.Has(CastlingBlackOO) {
				p.zobristKey ^= zobrist.CastlingKey(CastlingBlackOO)
				p.castlingRights.Remove(CastlingBlackOO)
			}
			if p.castlingRights.Has(CastlingBlackOOO) {
				p.zobristKey ^= zobrist.CastlingKey(CastlingBlackOOO)
				p.castlingRights.Remove(CastlingBlackOOO)
			}
		}
	}
	p.revokeCastlingIfHomeSquare(from)
	if h.capturedSquare != SqInvalid {
		p.revokeCastlingIfHomeSquare(h.capturedSquare)
	}

	if isPawnMove || isCapture {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}
	if p.sideToMove == Black {
		p.fullMoveNumber++
	}

	p.sideToMove = p.sideToMove.Flip()
	p.zobristKey ^= zobrist.SideToMove
	if IsOnBoard(p.epTarget) {
		p.zobristKey ^= zobrist.EnPassantFile[p.epTarget.File()]
	}

	p.assertInvariants()
}

// UnmakeMove reverses the most recent MakeMove call, restoring the
// position to bit-identical state. Panics (in debug builds) if called
// with no matching MakeMove on the stack.
func (p *Position) UnmakeMove() {
	assert.Assert(p.historyCounter > 0, "UnmakeMove: history stack empty")
	p.historyCounter--
	h := &p.history[p.historyCounter]

	mv := h.move
	from, to := mv.From(), mv.To()

	switch mv.MoveType() {
	case EnPassant:
		p.removePiece(to)
		p.putPiece(from, h.movedPiece)
		p.putPiece(h.capturedSquare, h.capturedPiece)

	case Castling:
		p.removePiece(to)
		p.putPiece(from, h.movedPiece)
		p.removePiece(h.rookTo)
		p.putPiece(h.rookFrom, MakePiece(h.movedPiece.ColorOf(), Rook))

	case Promotion:
		p.removePiece(to)
		p.putPiece(from, h.movedPiece)
		if h.capturedPiece != PieceNone {
			p.putPiece(to, h.capturedPiece)
		}

	default: // Normal, DoublePawnPush
		p.removePiece(to)
		p.putPiece(from, h.movedPiece)
		if h.capturedPiece != PieceNone {
			p.putPiece(to, h.capturedPiece)
		}
	}

	p.sideToMove = h.prevSideToMove
	p.epTarget = h.prevEpTarget
	p.castlingRights = h.prevCastlingRights
	p.zobristKey = h.prevZobrist
	p.halfMoveClock = h.prevHalfMoveClock
	p.fullMoveNumber = h.prevFullMoveNumber
	p.kingSq = h.prevKingSq
	p.pieceCounter = h.prevPieceCounter
}
