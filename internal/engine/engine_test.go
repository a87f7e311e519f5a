//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Mario-O123/chessgo/internal/cache"
	"github.com/Mario-O123/chessgo/internal/search"
	. "github.com/Mario-O123/chessgo/internal/types"
)

func TestNewEngineStartsAtStartingPosition(t *testing.T) {
	e := New(1)
	defer e.Close()

	status, err := e.Status()
	assert.NoError(t, err)
	assert.Equal(t, 0, int(status.Result)) // Ongoing
}

func TestSetPositionRejectsBadFEN(t *testing.T) {
	e := New(1)
	defer e.Close()

	err := e.SetPosition("not a fen", nil)
	assert.Error(t, err)
}

func TestGoReturnsAResultOnTheChannel(t *testing.T) {
	e := New(1)
	defer e.Close()

	resultCh := e.Go(search.Limits{MaxDepth: 2, MaxTime: 500 * time.Millisecond})
	select {
	case res := <-resultCh:
		assert.NotEqual(t, uint64(0), res.Nodes+1) // sanity: channel delivered a Result
	case <-time.After(2 * time.Second):
		t.Fatal("Go did not deliver a result in time")
	}
}

func TestStopAbortsAnInFlightSearchPromptly(t *testing.T) {
	e := New(1)
	defer e.Close()

	resultCh := e.Go(search.Limits{MaxDepth: 64})
	e.Stop()
	select {
	case <-resultCh:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not abort the search in time")
	}
}

func TestNewGameAfterASearchResetsToAnOngoingGame(t *testing.T) {
	e := New(1)
	defer e.Close()

	<-e.Go(search.Limits{MaxDepth: 3})
	assert.NoError(t, e.NewGame())
	status, err := e.Status()
	assert.NoError(t, err)
	assert.Equal(t, 0, int(status.Result))
}

func TestSnapshotReturnsAnIndependentPosition(t *testing.T) {
	e := New(1)
	defer e.Close()

	pos, status, err := e.Snapshot()
	assert.NoError(t, err)
	assert.Equal(t, 0, int(status.Result))
	assert.NotSame(t, e.g.Position(), pos)
}

func TestGoShortCircuitsOnDeepEnoughCacheHit(t *testing.T) {
	e := New(1)
	defer e.Close()
	e.posCache.Close()
	e.posCache = cache.Open(t.TempDir())

	pos := e.g.Position()
	mv := CreateMove(SquareFromString("e2"), SquareFromString("e4"), DoublePawnPush, PtNone)
	e.posCache.Put(pos.ZobristKey(), cache.PositionRecord{BestMove: mv, Score: Value(123), Depth: 10, ValueType: Exact})

	res := <-e.Go(search.Limits{MaxDepth: 4})
	assert.Equal(t, mv.MoveOf(), res.BestMove.MoveOf())
	assert.Equal(t, Value(123), res.Score)
}

func TestCommandsAfterCloseReturnErrEngineClosed(t *testing.T) {
	e := New(1)
	e.Close()

	err := e.NewGame()
	assert.ErrorIs(t, err, ErrEngineClosed)
}
