//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/Mario-O123/chessgo/internal/types"
	"github.com/Mario-O123/chessgo/internal/zobrist"
)

func TestOpenCreatesAnEnabledCache(t *testing.T) {
	c := Open(t.TempDir())
	defer c.Close()
	assert.True(t, c.Enabled())
}

func TestOpenDegradesToDisabledOnUnusableDir(t *testing.T) {
	c := Open("/dev/null/not-a-real-directory")
	defer c.Close()
	assert.False(t, c.Enabled())

	_, ok := c.Get(zobrist.Key(1))
	assert.False(t, ok)
	c.Put(zobrist.Key(1), PositionRecord{}) // must not panic
}

func TestPutThenGetRoundTrips(t *testing.T) {
	c := Open(t.TempDir())
	defer c.Close()

	key := zobrist.Key(123456789)
	mv := CreateMove(SquareFromString("e2"), SquareFromString("e4"), DoublePawnPush, PtNone)
	rec := PositionRecord{BestMove: mv, Score: Value(37), Depth: 6, ValueType: Exact}

	c.Put(key, rec)
	got, ok := c.Get(key)
	assert.True(t, ok)
	assert.Equal(t, mv.MoveOf(), got.BestMove.MoveOf())
	assert.Equal(t, rec.Score, got.Score)
	assert.Equal(t, rec.Depth, got.Depth)
	assert.Equal(t, rec.ValueType, got.ValueType)
}

func TestGetMissReturnsFalse(t *testing.T) {
	c := Open(t.TempDir())
	defer c.Close()

	_, ok := c.Get(zobrist.Key(999))
	assert.False(t, ok)
}

func TestDisabledCacheIsAlwaysANoOp(t *testing.T) {
	c := Disabled()
	defer c.Close()
	assert.False(t, c.Enabled())

	_, ok := c.Get(zobrist.Key(1))
	assert.False(t, ok)
	c.Put(zobrist.Key(1), PositionRecord{}) // must not panic
}
