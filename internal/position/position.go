//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package position implements the mutable chess game state: piece
// placement on a 120-slot sentinel-bordered mailbox, side to move,
// castling rights, en-passant target, move clocks, cached king squares
// and piece inventory, and an incrementally maintained Zobrist hash. It
// also implements attack detection, pseudo-legal and legal move
// generation, and perft.
package position

import (
	"fmt"

	"github.com/Mario-O123/chessgo/internal/assert"
	. "github.com/Mario-O123/chessgo/internal/types"
	"github.com/Mario-O123/chessgo/internal/zobrist"
)

// maxHistory bounds the make/unmake stack: enough for a very long game
// plus the deepest quiescence extension the search can reach.
const maxHistory = 1024

// historyState is the undo record captured by MakeMove: everything
// needed to reverse a move without recomputing derived data.
type historyState struct {
	move           Move
	movedPiece     Piece
	capturedPiece  Piece
	capturedSquare Square // distinct from move.To() only for en passant
	rookFrom       Square // castling only
	rookTo         Square // castling only

	prevSideToMove     Color
	prevEpTarget       Square
	prevCastlingRights CastlingRights
	prevZobrist        zobrist.Key
	prevHalfMoveClock  int
	prevFullMoveNumber int
	prevKingSq         [ColorLength]Square
	prevPieceCounter   [ColorLength][PtLength]int
}

// Position is the full mutable game state.
type Position struct {
	board          [BoardSize]Piece
	sideToMove     Color
	castlingRights CastlingRights
	epTarget       Square
	halfMoveClock  int
	fullMoveNumber int
	kingSq         [ColorLength]Square
	pieceCounter   [ColorLength][PtLength]int
	zobristKey     zobrist.Key

	historyCounter int
	history        [maxHistory]historyState
}

// Empty returns a Position with sentinel borders and every playable
// square cleared; castling/ep/clocks are zeroed.
func Empty() *Position {
	p := &Position{}
	for i := range p.board {
		if IsOnBoard(Square(i)) {
			p.board[i] = PieceNone
		} else {
			p.board[i] = PieceNone // board cells carry no dedicated OffBoard tag; IsOnBoard(i) is authoritative
		}
	}
	p.sideToMove = White
	p.epTarget = SqInvalid
	p.kingSq[White] = SqInvalid
	p.kingSq[Black] = SqInvalid
	return p
}

// StartingPosition returns a Position set up for a new standard game.
func StartingPosition() *Position {
	p, err := ParseFEN(StartFEN)
	if err != nil {
		panic(fmt.Sprintf("built-in starting FEN failed to parse: %v", err))
	}
	return p
}

// PieceAt returns the piece on sq, or PieceNone if empty or off-board.
func (p *Position) PieceAt(sq Square) Piece {
	if !IsOnBoard(sq) {
		return PieceNone
	}
	return p.board[sq]
}

// SideToMove returns whose turn it is.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// CastlingRights returns the current castling-availability mask.
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// EpTarget returns the current en-passant target square, or SqInvalid.
func (p *Position) EpTarget() Square {
	return p.epTarget
}

// HalfMoveClock returns the number of plies since the last pawn move or
// capture.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// FullMoveNumber returns the current full-move counter.
func (p *Position) FullMoveNumber() int {
	return p.fullMoveNumber
}

// KingSquare returns the cached king square for c.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSq[c]
}

// ZobristKey returns the incrementally maintained hash.
func (p *Position) ZobristKey() zobrist.Key {
	return p.zobristKey
}

// Clone returns an independent copy of p. Every field is a fixed-size
// array or scalar, so a value copy is a full deep copy; used by adapter
// code that needs to read a position concurrently with a goroutine that
// may still be making and unmaking moves on the original.
func (p *Position) Clone() *Position {
	cp := *p
	return &cp
}

// PieceCount returns how many pieces of (c, pt) remain on the board.
func (p *Position) PieceCount(c Color, pt PieceType) int {
	return p.pieceCounter[c][pt]
}

// FindSinglePiece returns the square of the first (c, pt) piece found by
// a board scan, and false if none exists. Intended for pieces that are
// unique by the rules (kings, or material-draw detection of a lone
// bishop); callers needing all instances should use FindPieces.
func (p *Position) FindSinglePiece(c Color, pt PieceType) (Square, bool) {
	want := MakePiece(c, pt)
	for i := Square(0); int(i) < BoardSize; i++ {
		if IsOnBoard(i) && p.board[i] == want {
			return i, true
		}
	}
	return SqInvalid, false
}

// FindPieces appends every square holding a (c, pt) piece to dst and
// returns the extended slice.
func (p *Position) FindPieces(c Color, pt PieceType, dst []Square) []Square {
	want := MakePiece(c, pt)
	for i := Square(0); int(i) < BoardSize; i++ {
		if IsOnBoard(i) && p.board[i] == want {
			dst = append(dst, i)
		}
	}
	return dst
}

// ComputeKingSq rescans the board and rebuilds the king-square cache.
// Used after foreign construction (FEN import) and as a debug witness.
func (p *Position) ComputeKingSq() {
	p.kingSq[White] = SqInvalid
	p.kingSq[Black] = SqInvalid
	for i := Square(0); int(i) < BoardSize; i++ {
		if !IsOnBoard(i) {
			continue
		}
		pc := p.board[i]
		if pc == PieceNone {
			continue
		}
		if pc.TypeOf() == King {
			p.kingSq[pc.ColorOf()] = i
		}
	}
}

// ComputePieceCounter rescans the board and rebuilds the per-color,
// per-type piece inventory.
func (p *Position) ComputePieceCounter() {
	p.pieceCounter = [ColorLength][PtLength]int{}
	for i := Square(0); int(i) < BoardSize; i++ {
		if !IsOnBoard(i) {
			continue
		}
		pc := p.board[i]
		if pc == PieceNone {
			continue
		}
		p.pieceCounter[pc.ColorOf()][pc.TypeOf()]++
	}
}

// ComputeZobrist recomputes the Zobrist key from scratch: piece
// placement, side to move, castling rights and en-passant target. Used
// after foreign construction and as a debug-assertion witness for the
// incremental update path.
func (p *Position) ComputeZobrist() {
	var key zobrist.Key
	for i := Square(0); int(i) < BoardSize; i++ {
		if !IsOnBoard(i) {
			continue
		}
		pc := p.board[i]
		if pc == PieceNone {
			continue
		}
		key ^= zobrist.PieceKey(pc.ColorOf(), pc.TypeOf(), i.Idx64())
	}
	if p.sideToMove == Black {
		key ^= zobrist.SideToMove
	}
	if p.castlingRights.Has(CastlingWhiteOO) {
		key ^= zobrist.CastlingKey(CastlingWhiteOO)
	}
	if p.castlingRights.Has(CastlingWhiteOOO) {
		key ^= zobrist.CastlingKey(CastlingWhiteOOO)
	}
	if p.castlingRights.Has(CastlingBlackOO) {
		key ^= zobrist.CastlingKey(CastlingBlackOO)
	}
	if p.castlingRights.Has(CastlingBlackOOO) {
		key ^= zobrist.CastlingKey(CastlingBlackOOO)
	}
	if IsOnBoard(p.epTarget) {
		key ^= zobrist.EnPassantFile[p.epTarget.File()]
	}
	p.zobristKey = key
}

// assertInvariants is the debug-build witness from SPEC_FULL.md 4.3 step 9:
// the incrementally maintained zobrist/king-cache/piece-counter must equal
// their from-scratch recomputation after every make and unmake.
func (p *Position) assertInvariants() {
	if !assert.DEBUG {
		return
	}
	savedKey := p.zobristKey
	savedKingSq := p.kingSq
	savedCounter := p.pieceCounter
	p.ComputeZobrist()
	p.ComputeKingSq()
	p.ComputePieceCounter()
	assert.Assert(p.zobristKey == savedKey, "zobrist mismatch: incremental=%d recomputed=%d", savedKey, p.zobristKey)
	assert.Assert(p.kingSq == savedKingSq, "king cache mismatch: cached=%v recomputed=%v", savedKingSq, p.kingSq)
	assert.Assert(p.pieceCounter == savedCounter, "piece counter mismatch: cached=%v recomputed=%v", savedCounter, p.pieceCounter)
	p.zobristKey = savedKey
	p.kingSq = savedKingSq
	p.pieceCounter = savedCounter
}

func (p *Position) putPiece(sq Square, pc Piece) {
	p.board[sq] = pc
	p.pieceCounter[pc.ColorOf()][pc.TypeOf()]++
	p.zobristKey ^= zobrist.PieceKey(pc.ColorOf(), pc.TypeOf(), sq.Idx64())
	if pc.TypeOf() == King {
		p.kingSq[pc.ColorOf()] = sq
	}
}

func (p *Position) removePiece(sq Square) Piece {
	pc := p.board[sq]
	if pc == PieceNone {
		return PieceNone
	}
	p.board[sq] = PieceNone
	p.pieceCounter[pc.ColorOf()][pc.TypeOf()]--
	p.zobristKey ^= zobrist.PieceKey(pc.ColorOf(), pc.TypeOf(), sq.Idx64())
	return pc
}

func (p *Position) movePiece(from, to Square) Piece {
	pc := p.removePiece(from)
	p.putPiece(to, pc)
	return pc
}

func (p *Position) clearEpZobrist() {
	if IsOnBoard(p.epTarget) {
		p.zobristKey ^= zobrist.EnPassantFile[p.epTarget.File()]
	}
}

// homeRookSquare returns the square a castling right's rook starts on.
func homeRookSquare(right CastlingRights) Square {
	switch right {
	case CastlingWhiteOO:
		return SqH1
	case CastlingWhiteOOO:
		return SqA1
	case CastlingBlackOO:
		return SqH8
	case CastlingBlackOOO:
		return SqA8
	default:
		return SqInvalid
	}
}

// revokeCastlingIfHomeSquare clears the castling right whose rook home
// square is sq, whatever piece is there now. This resolves the "captured
// rook that had already moved" ambiguity by square-identity: the right
// is revoked the instant the home square stops holding that side's
// original rook (see SPEC_FULL.md Open Question resolutions).
func (p *Position) revokeCastlingIfHomeSquare(sq Square) {
	for _, right := range [4]CastlingRights{CastlingWhiteOO, CastlingWhiteOOO, CastlingBlackOO, CastlingBlackOOO} {
		if homeRookSquare(right) == sq && p.castlingRights.Has(right) {
			p.zobristKey ^= zobrist.CastlingKey(right)
			p.castlingRights.Remove(right)
		}
	}
}
