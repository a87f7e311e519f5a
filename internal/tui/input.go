//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package tui

import (
	"github.com/Mario-O123/chessgo/internal/position"
	. "github.com/Mario-O123/chessgo/internal/types"
)

// parseLongAlgebraic reads a UCI-style move string ("e2e4", "e7e8q")
// typed or clicked by the human and resolves it against pos's own
// legal-move list via Position.MoveFromUci, so the adapter never has to
// know anything about castling flags, en-passant, or promotion encoding
// itself.
func parseLongAlgebraic(pos *position.Position, s string) (Move, bool) {
	return pos.MoveFromUci(s)
}

// Board rendering constants for mouse coordinate mapping, matching the
// two-row header (status line + blank line) Model.View prints before
// the board.
const (
	boardStartRow = 2
	boardStartCol = 2 // "8 " rank label
	squareWidth   = 2
)

// squareFromMouse converts a terminal cell (x, y) into the Square drawn
// there, or SqInvalid if the click landed outside the board.
func squareFromMouse(x, y int) Square {
	if x < boardStartCol || y < boardStartRow {
		return SqInvalid
	}
	file := (x - boardStartCol) / squareWidth
	rank := 7 - (y - boardStartRow)
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SqInvalid
	}
	return MakeSquare(file, rank)
}

// legalDestinations returns every square mv.To() can reach from from in
// pos, used to highlight a selected piece's targets.
func legalDestinations(pos *position.Position, from Square) []Square {
	var buf [256]Move
	var dst []Square
	for _, mv := range pos.GenerateLegal(buf[:0]) {
		if mv.From() == from {
			dst = append(dst, mv.To())
		}
	}
	return dst
}
