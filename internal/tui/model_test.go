//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/Mario-O123/chessgo/internal/engine"
	"github.com/Mario-O123/chessgo/internal/search"
	. "github.com/Mario-O123/chessgo/internal/types"
)

func TestNewModelStartsAtTheStartingPosition(t *testing.T) {
	e := engine.New(1)
	defer e.Close()

	m := NewModel(e, White, search.Limits{MaxDepth: 2})
	assert.False(t, m.done)
	assert.Equal(t, White, m.toMove)
	assert.Equal(t, SqInvalid, m.selected)
}

func TestInitTriggersAnEngineMoveWhenComputerIsToMoveFirst(t *testing.T) {
	e := engine.New(1)
	defer e.Close()

	m := NewModel(e, Black, search.Limits{MaxDepth: 2, MaxTime: 500 * time.Millisecond})
	cmd := m.Init()
	assert.NotNil(t, cmd)

	msg := cmd()
	result, ok := msg.(engineMoveMsg)
	assert.True(t, ok)
	assert.True(t, result.result.BestMove.IsValid())
}

func TestHandleKeyQReturnsQuitCommand(t *testing.T) {
	e := engine.New(1)
	defer e.Close()

	m := NewModel(e, White, search.Limits{MaxDepth: 2})
	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.NotNil(t, cmd)
}

func TestTryHumanMovePlaysALegalMoveAndQueuesTheEngineReply(t *testing.T) {
	e := engine.New(1)
	defer e.Close()

	m := NewModel(e, White, search.Limits{MaxDepth: 2, MaxTime: 500 * time.Millisecond})
	next, cmd := m.tryHumanMove("e2e4")
	nm := next.(Model)
	assert.Empty(t, nm.errorMsg)
	assert.Equal(t, Black, nm.toMove)
	assert.NotNil(t, cmd)
}

func TestTryHumanMoveRejectsAnIllegalMoveWithoutTouchingTheEngine(t *testing.T) {
	e := engine.New(1)
	defer e.Close()

	m := NewModel(e, White, search.Limits{MaxDepth: 2})
	next, cmd := m.tryHumanMove("e2e5")
	nm := next.(Model)
	assert.NotEmpty(t, nm.errorMsg)
	assert.Nil(t, cmd)
	assert.Equal(t, White, nm.toMove)
}
