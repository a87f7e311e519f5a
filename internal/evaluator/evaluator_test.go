//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mario-O123/chessgo/internal/position"
)

func TestStartingPositionIsRoughlyBalanced(t *testing.T) {
	e := NewClassicalEvaluator()
	p := position.StartingPosition()
	score := e.Evaluate(p)
	assert.InDelta(t, 0, score, 30, "starting position should be close to even aside from tempo")
}

func TestMaterialAdvantageIsReflected(t *testing.T) {
	e := NewClassicalEvaluator()
	p, err := position.ParseFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	assert.NoError(t, err)
	score := e.Evaluate(p)
	assert.Greater(t, score, 400)
}

func TestBlackMaterialAdvantageIsNegative(t *testing.T) {
	e := NewClassicalEvaluator()
	p, err := position.ParseFEN("4k2r/8/8/8/8/8/8/4K3 w k - 0 1")
	assert.NoError(t, err)
	score := e.Evaluate(p)
	assert.Less(t, score, -400)
}

func TestInsufficientMaterialIsDraw(t *testing.T) {
	e := NewClassicalEvaluator()
	p, err := position.ParseFEN("8/8/8/8/8/8/8/K6k w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, 0, e.Evaluate(p))
}

func TestBishopPairBonus(t *testing.T) {
	e := NewClassicalEvaluator()
	withPair, err := position.ParseFEN("4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1")
	assert.NoError(t, err)
	withOne, err := position.ParseFEN("4k3/8/8/8/8/8/8/3BK3 w - - 0 1")
	assert.NoError(t, err)
	assert.Greater(t, e.Evaluate(withPair), e.Evaluate(withOne)+330)
}
