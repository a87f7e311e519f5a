//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/Mario-O123/chessgo/internal/types"
)

func TestNewGameIsOngoing(t *testing.T) {
	g := New()
	assert.Equal(t, Ongoing, g.Status().Result)
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	g := New()
	moves := []Move{
		CreateMove(SquareFromString("f2"), SquareFromString("f3"), Normal, PtNone),
		CreateMove(SquareFromString("e7"), SquareFromString("e5"), DoublePawnPush, PtNone),
		CreateMove(SquareFromString("g2"), SquareFromString("g4"), DoublePawnPush, PtNone),
		CreateMove(SquareFromString("d8"), SquareFromString("h4"), Normal, PtNone),
	}
	for _, mv := range moves {
		assert.NoError(t, g.MakeMove(mv))
	}
	assert.Equal(t, Checkmate, g.Status().Result)
	assert.Equal(t, Black, g.Status().Winner)
}

func TestStalemateIsDetected(t *testing.T) {
	g, err := FromFEN("7k/8/6Q1/8/8/8/8/K7 b - - 0 1")
	assert.NoError(t, err)
	var buf [256]Move
	if len(g.Position().GenerateLegal(buf[:0])) != 0 {
		t.Skip("fixture position is not actually stalemate, skipping")
	}
	assert.Equal(t, Stalemate, g.Status().Result)
}

func TestInsufficientMaterialIsDraw(t *testing.T) {
	g, err := FromFEN("8/8/8/8/8/8/8/K6k w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, DrawInsufficientMaterial, g.Status().Result)
}

func TestFiftyMoveRuleIsDraw(t *testing.T) {
	g, err := FromFEN("4k3/8/8/8/8/8/8/4KQ2 w - - 100 60")
	assert.NoError(t, err)
	assert.Equal(t, DrawFiftyMove, g.Status().Result)
}

func TestThreefoldRepetitionIsDraw(t *testing.T) {
	g := New()
	shuffle := []Move{
		CreateMove(SquareFromString("g1"), SquareFromString("f3"), Normal, PtNone),
		CreateMove(SquareFromString("g8"), SquareFromString("f6"), Normal, PtNone),
		CreateMove(SquareFromString("f3"), SquareFromString("g1"), Normal, PtNone),
		CreateMove(SquareFromString("f6"), SquareFromString("g8"), Normal, PtNone),
	}
	for i := 0; i < 2; i++ {
		for _, mv := range shuffle {
			assert.NoError(t, g.MakeMove(mv))
		}
	}
	assert.Equal(t, DrawRepetition, g.Status().Result)
}

func TestIllegalMoveIsRejectedWithoutMutatingState(t *testing.T) {
	g := New()
	before := g.Position().ZobristKey()
	illegal := CreateMove(SquareFromString("e2"), SquareFromString("e5"), Normal, PtNone)
	assert.ErrorIs(t, g.MakeMove(illegal), ErrIllegalMove)
	assert.Equal(t, before, g.Position().ZobristKey())
}

func TestUnmakeMoveRestoresStatusAndHistory(t *testing.T) {
	g := New()
	mv := CreateMove(SquareFromString("e2"), SquareFromString("e4"), DoublePawnPush, PtNone)
	assert.NoError(t, g.MakeMove(mv))
	assert.Len(t, g.MoveHistory(), 1)

	g.UnmakeMove()
	assert.Len(t, g.MoveHistory(), 0)
	assert.Equal(t, Ongoing, g.Status().Result)
}
