//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package transpositiontable

import (
	. "github.com/Mario-O123/chessgo/internal/types"
	"github.com/Mario-O123/chessgo/internal/zobrist"
)

// TtEntrySize is the size in bytes of each TtEntry.
const TtEntrySize = 32

// TtEntry is one slot in the transposition table: a record of the
// position's best move, search value, static evaluation, depth and
// bound type. Mate-score normalization happens at the search layer
// (ToTT/FromTT), not here; this struct stores whatever value it is given.
type TtEntry struct {
	Key       zobrist.Key
	Move      Move
	Value     Value
	Eval      Value
	Depth     int8
	ValueType ValueType
}

// IsEmpty reports whether this slot has never been written.
func (e *TtEntry) IsEmpty() bool {
	return e.Key == 0
}
