//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/Mario-O123/chessgo/internal/types"
	"github.com/Mario-O123/chessgo/internal/zobrist"
)

func TestResizeIsPowerOfTwoCapacity(t *testing.T) {
	tt := NewTtTable(1)
	assert.Equal(t, tt.maxNumberOfEntries&(tt.maxNumberOfEntries-1), uint64(0))
	assert.Greater(t, tt.maxNumberOfEntries, uint64(0))
}

func TestStoreAndProbeRoundTrip(t *testing.T) {
	tt := NewTtTable(1)
	key := zobrist.Key(12345)
	mv := CreateMove(SquareFromString("e2"), SquareFromString("e4"), DoublePawnPush, PtNone)
	tt.Store(key, mv, 4, Value(50), Exact, Value(55))

	e := tt.Probe(key)
	assert.NotNil(t, e)
	assert.Equal(t, mv, e.Move)
	assert.Equal(t, Value(50), e.Value)
	assert.Equal(t, int8(4), e.Depth)
	assert.Equal(t, Exact, e.ValueType)
}

func TestProbeMissReturnsNil(t *testing.T) {
	tt := NewTtTable(1)
	assert.Nil(t, tt.Probe(zobrist.Key(999)))
}

func TestAlwaysReplacePolicy(t *testing.T) {
	tt := NewTtTable(1)
	mask := tt.hashKeyMask
	key1 := zobrist.Key(1)
	key2 := zobrist.Key(mask + 2) // collides with key1's slot
	tt.Store(key1, MoveNone, 10, Value(1), Exact, Value(1))
	tt.Store(key2, MoveNone, 1, Value(2), Exact, Value(2))

	e := tt.GetEntry(key2)
	assert.NotNil(t, e, "a shallower store must still overwrite the slot")
	assert.Equal(t, Value(2), e.Value)
}

func TestMateScoreNormalizationRoundTrips(t *testing.T) {
	mateIn3 := ValueMate - 3
	stored := ToTT(mateIn3, 5)
	assert.Equal(t, mateIn3+5, stored)
	loaded := FromTT(stored, 5)
	assert.Equal(t, mateIn3, loaded)

	mateInMinus3 := -ValueMate + 3
	stored = ToTT(mateInMinus3, 5)
	assert.Equal(t, mateInMinus3-5, stored)
	loaded = FromTT(stored, 5)
	assert.Equal(t, mateInMinus3, loaded)
}

func TestNonMateScoreIsUnchangedByNormalization(t *testing.T) {
	v := Value(123)
	assert.Equal(t, v, ToTT(v, 7))
	assert.Equal(t, v, FromTT(v, 7))
}
