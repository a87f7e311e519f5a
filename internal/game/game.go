//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package game wraps a Position with draw/mate adjudication (§4.10): it
// tracks the Zobrist key of every position reached so far, reassessing
// Status after every make and unmake.
package game

import (
	"errors"

	"github.com/Mario-O123/chessgo/internal/position"
	. "github.com/Mario-O123/chessgo/internal/types"
	"github.com/Mario-O123/chessgo/internal/zobrist"
)

// ErrIllegalMove is returned by MakeMove when the given move is not
// legal in the current position; the game state is left unchanged.
var ErrIllegalMove = errors.New("game: illegal move")

// snapshot is the undo unit Game keeps alongside Position's own
// make/unmake stack: just enough to pop the Zobrist history in lockstep
// with Position.UnmakeMove and reassess status.
type snapshot struct {
	zobrist zobrist.Key
}

// Game couples a Position with the history needed to adjudicate
// checkmate/stalemate, insufficient material, threefold repetition, and
// the fifty-move rule after every move.
type Game struct {
	pos      *position.Position
	history  []snapshot
	status   Status
	moveList []Move
}

// New starts a Game from the standard opening position.
func New() *Game {
	p := position.StartingPosition()
	g := &Game{pos: p, history: []snapshot{{zobrist: p.ZobristKey()}}}
	g.refreshStatus()
	return g
}

// FromFEN starts a Game from an arbitrary FEN. The given position counts
// as the first entry in the repetition history, since nothing earlier is
// known.
func FromFEN(fen string) (*Game, error) {
	p, err := position.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	g := &Game{pos: p, history: []snapshot{{zobrist: p.ZobristKey()}}}
	g.refreshStatus()
	return g, nil
}

// Position returns the underlying board state.
func (g *Game) Position() *position.Position {
	return g.pos
}

// Status returns the most recently computed adjudication.
func (g *Game) Status() Status {
	return g.status
}

// MoveHistory returns every move played so far, oldest first.
func (g *Game) MoveHistory() []Move {
	return g.moveList
}

// ZobristHistory returns the Zobrist key of every position reached so
// far, including the starting one, oldest first. Used to seed a
// searcher's in-search repetition detection with moves already played.
func (g *Game) ZobristHistory() []zobrist.Key {
	keys := make([]zobrist.Key, len(g.history))
	for i, snap := range g.history {
		keys[i] = snap.zobrist
	}
	return keys
}

// MakeMove plays mv if legal, updates the repetition history, and
// reassesses Status. Returns ErrIllegalMove without mutating state
// otherwise.
func (g *Game) MakeMove(mv Move) error {
	if legal, ok := g.pos.MoveFromUci(mv.StringUci()); !ok || legal.MoveOf() != mv.MoveOf() {
		return ErrIllegalMove
	}
	g.pos.MakeMove(mv)
	g.history = append(g.history, snapshot{zobrist: g.pos.ZobristKey()})
	g.moveList = append(g.moveList, mv)
	g.refreshStatus()
	return nil
}

// UnmakeMove reverses the most recent MakeMove, popping both the
// Position's own undo record and Game's matching snapshot, then
// reassesses Status.
func (g *Game) UnmakeMove() {
	if len(g.moveList) == 0 {
		return
	}
	g.pos.UnmakeMove()
	g.history = g.history[:len(g.history)-1]
	g.moveList = g.moveList[:len(g.moveList)-1]
	g.refreshStatus()
}

// refreshStatus runs the §4.10 adjudication order: mate/stalemate,
// insufficient material, threefold repetition, fifty-move rule.
func (g *Game) refreshStatus() {
	if result, winner := g.checkMateOrStalemate(); result != Ongoing {
		g.status = Status{Result: result, Winner: winner}
		return
	}
	if g.pos.HasInsufficientMaterial() {
		g.status = Status{Result: DrawInsufficientMaterial}
		return
	}
	if g.checkRepetition() {
		g.status = Status{Result: DrawRepetition}
		return
	}
	if g.pos.HalfMoveClock() >= 100 {
		g.status = Status{Result: DrawFiftyMove}
		return
	}
	g.status = Status{Result: Ongoing}
}

func (g *Game) checkMateOrStalemate() (Result, Color) {
	var buf [256]Move
	legal := g.pos.GenerateLegal(buf[:0])
	if len(legal) > 0 {
		return Ongoing, ColorNone
	}
	side := g.pos.SideToMove()
	if g.pos.IsInCheck(side) {
		return Checkmate, side.Flip()
	}
	return Stalemate, ColorNone
}

// checkRepetition reports whether the current Zobrist key has occurred
// three or more times across the recorded snapshot history.
func (g *Game) checkRepetition() bool {
	current := g.pos.ZobristKey()
	count := 0
	for _, snap := range g.history {
		if snap.zobrist == current {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}
