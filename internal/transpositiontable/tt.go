//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package transpositiontable implements a fixed power-of-two-sized
// transposition table for a chess engine search. TtTable is not thread
// safe; Resize and Clear must not be called concurrently with a search.
package transpositiontable

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/Mario-O123/chessgo/internal/logging"
	. "github.com/Mario-O123/chessgo/internal/types"
	"github.com/Mario-O123/chessgo/internal/zobrist"
)

var out = message.NewPrinter(language.German)

const (
	// MaxSizeInMB is the maximum configurable TT size.
	MaxSizeInMB = 65_536

	mb = 1024 * 1024
)

// TtTable is the transposition table itself.
type TtTable struct {
	log                *logging.Logger
	data               []TtEntry
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	Stats              TtStats
}

// TtStats holds statistics on table usage, used for reporting.
type TtStats struct {
	NumberOfPuts       uint64
	numberOfCollisions uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a TtTable sized to the largest power of two number
// of entries that fits in sizeInMByte megabytes.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{log: myLogging.GetLog("tt")}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize rebuilds the table for a new size, clearing all entries.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Warning(out.Sprintf("Requested TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	tt.sizeInByte = uint64(sizeInMByte) * mb
	if tt.sizeInByte < TtEntrySize {
		tt.maxNumberOfEntries = 0
	} else {
		tt.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/TtEntrySize))))
	}
	tt.hashKeyMask = tt.maxNumberOfEntries - 1
	tt.sizeInByte = tt.maxNumberOfEntries * TtEntrySize

	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}

	tt.log.Info(out.Sprintf("TT size %d MByte, capacity %d entries (%d Bytes each)",
		tt.sizeInByte/mb, tt.maxNumberOfEntries, unsafe.Sizeof(TtEntry{})))
}

// GetEntry returns a pointer to the slot for key if it currently holds
// that exact key, or nil on a miss or an empty slot. Does not touch
// statistics.
func (tt *TtTable) GetEntry(key zobrist.Key) *TtEntry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	e := &tt.data[tt.hash(key)]
	if e.Key == key {
		return e
	}
	return nil
}

// Probe is GetEntry plus hit/miss statistics tracking.
func (tt *TtTable) Probe(key zobrist.Key) *TtEntry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	tt.Stats.numberOfProbes++
	e := &tt.data[tt.hash(key)]
	if e.Key == key {
		tt.Stats.numberOfHits++
		return e
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Store writes an entry into the table, always replacing whatever
// occupied the slot regardless of its depth or age: the resolved policy
// for this table (see the Open Question resolutions), favoring
// simplicity and freshness over a depth-preferred scheme.
func (tt *TtTable) Store(key zobrist.Key, move Move, depth int8, value Value, valueType ValueType, eval Value) {
	if tt.maxNumberOfEntries == 0 {
		return
	}
	tt.Stats.NumberOfPuts++
	slot := &tt.data[tt.hash(key)]
	if !slot.IsEmpty() && slot.Key != key {
		tt.Stats.numberOfCollisions++
	}
	if slot.IsEmpty() {
		tt.numberOfEntries++
	}
	slot.Key = key
	slot.Move = move
	slot.Value = value
	slot.Eval = eval
	slot.Depth = depth
	slot.ValueType = valueType
}

// Clear empties every slot and resets statistics.
func (tt *TtTable) Clear() {
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// Hashfull returns how full the table is, in permille, as UCI expects.
func (tt *TtTable) Hashfull() int {
	if tt.maxNumberOfEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / tt.maxNumberOfEntries)
}

// Len returns the number of occupied slots.
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

func (tt *TtTable) hash(key zobrist.Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}

// ToTT normalizes a mate score for storage: a mate found ply moves from
// the root is stored as a mate found from the *current node*, so the
// same entry is valid regardless of which depth reaches it.
func ToTT(v Value, ply int) Value {
	if !v.IsMate() {
		return v
	}
	if v > 0 {
		return v + Value(ply)
	}
	return v - Value(ply)
}

// FromTT reverses ToTT when an entry is loaded back at ply.
func FromTT(v Value, ply int) Value {
	if !v.IsMate() {
		return v
	}
	if v > 0 {
		return v - Value(ply)
	}
	return v + Value(ply)
}
