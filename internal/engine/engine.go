//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package engine provides the UCI-shaped core entrypoint (§4.12): a
// single command-loop goroutine owns one *game.Game and one
// *search.Searcher, serializing NewGame/SetPosition/Go through a
// channel, while Stop sets an atomic flag the in-flight search polls
// directly, so it works even while Go is running on the loop goroutine.
package engine

import (
	"errors"

	"github.com/op/go-logging"

	"github.com/Mario-O123/chessgo/internal/cache"
	"github.com/Mario-O123/chessgo/internal/config"
	"github.com/Mario-O123/chessgo/internal/evaluator"
	"github.com/Mario-O123/chessgo/internal/game"
	myLogging "github.com/Mario-O123/chessgo/internal/logging"
	"github.com/Mario-O123/chessgo/internal/position"
	"github.com/Mario-O123/chessgo/internal/search"
	. "github.com/Mario-O123/chessgo/internal/types"
	"github.com/Mario-O123/chessgo/internal/util"
)

// ErrEngineClosed is returned by any call made after Close.
var ErrEngineClosed = errors.New("engine: closed")

// Engine is the facade the UCI adapter (cmd/chessgo's uci subcommand)
// and the interactive terminal adapter both drive.
type Engine struct {
	log  *logging.Logger
	cmds chan func()
	done chan struct{}

	g        *game.Game
	searcher *search.Searcher
	stop     *util.Bool
	posCache *cache.Cache
}

// New creates an Engine with a transposition table of ttSizeMB megabytes
// and starts its command-loop goroutine. The persistent position cache
// (§4.13) is opened according to config.Settings.Cache; when disabled
// there it degrades to a permanent no-op, same as a failed Open.
func New(ttSizeMB int) *Engine {
	var posCache *cache.Cache
	if config.Settings.Cache.Enabled {
		posCache = cache.Open(config.Settings.Cache.DataDir)
	} else {
		posCache = cache.Disabled()
	}

	e := &Engine{
		log:      myLogging.GetLog("engine"),
		cmds:     make(chan func(), 16),
		done:     make(chan struct{}),
		g:        game.New(),
		searcher: search.NewSearcher(ttSizeMB, evaluator.NewClassicalEvaluator()),
		stop:     util.NewBool(false),
		posCache: posCache,
	}
	go e.loop()
	return e
}

// Close stops the command-loop goroutine and the position cache. The
// Engine must not be used afterwards.
func (e *Engine) Close() {
	close(e.done)
	e.posCache.Close()
}

func (e *Engine) loop() {
	for {
		select {
		case fn := <-e.cmds:
			fn()
		case <-e.done:
			return
		}
	}
}

// submit runs fn on the command-loop goroutine and blocks until it has
// run, returning ErrEngineClosed if the loop has already exited.
func (e *Engine) submit(fn func()) error {
	done := make(chan struct{})
	wrapped := func() {
		fn()
		close(done)
	}
	select {
	case e.cmds <- wrapped:
	case <-e.done:
		return ErrEngineClosed
	}
	select {
	case <-done:
		return nil
	case <-e.done:
		return ErrEngineClosed
	}
}

// NewGame resets to a fresh game and clears the transposition table.
func (e *Engine) NewGame() error {
	return e.submit(func() {
		e.g = game.New()
		e.searcher.ClearTT()
	})
}

// ResizeTT reallocates the search transposition table to sizeInMB
// megabytes, discarding its current contents. Driven by the UCI "Hash"
// option.
func (e *Engine) ResizeTT(sizeInMB int) error {
	return e.submit(func() {
		e.searcher.ResizeTT(sizeInMB)
	})
}

// SetPosition replaces the current game with one parsed from fen, then
// replays moves (long-algebraic UCI strings, e.g. "e2e4", "e7e8q") in
// order, resolving each against the position reached so far. On any
// error (bad FEN or a move that doesn't resolve against its position)
// the engine's position is left unchanged.
func (e *Engine) SetPosition(fen string, moves []string) error {
	var outerErr error
	err := e.submit(func() {
		g, ferr := game.FromFEN(fen)
		if ferr != nil {
			outerErr = ferr
			return
		}
		for _, token := range moves {
			mv, ok := g.Position().MoveFromUci(token)
			if !ok {
				outerErr = game.ErrIllegalMove
				return
			}
			if merr := g.MakeMove(mv); merr != nil {
				outerErr = merr
				return
			}
		}
		e.g = g
	})
	if err != nil {
		return err
	}
	return outerErr
}

// Status returns the current game's adjudicated status.
func (e *Engine) Status() (game.Status, error) {
	var status game.Status
	err := e.submit(func() {
		status = e.g.Status()
	})
	return status, err
}

// Snapshot returns an independent copy of the current position and its
// status, safe to read from any goroutine even while a Go search is
// in flight on the command loop (which make/unmakes on its own copy).
func (e *Engine) Snapshot() (*position.Position, game.Status, error) {
	var pos *position.Position
	var status game.Status
	err := e.submit(func() {
		pos = e.g.Position().Clone()
		status = e.g.Status()
	})
	return pos, status, err
}

// Go runs iterative-deepening search on the command-loop goroutine and
// returns a channel that receives exactly one Result once the search
// completes or is stopped. Stop may be called concurrently.
//
// Before searching it consults the persistent position cache: a hit at
// least as deep as limits.MaxDepth short-circuits iterative deepening,
// provided the cached move still re-probes as legal in the current
// position (the cache is an optimization, never a correctness
// dependency). Every search, including one ended early by Stop or a
// limit, writes its root result back to the cache with the depth it
// reached.
func (e *Engine) Go(limits search.Limits) <-chan search.Result {
	result := make(chan search.Result, 1)
	e.stop.Store(false)

	fn := func() {
		pos := e.g.Position()

		if rec, ok := e.posCache.Get(pos.ZobristKey()); ok &&
			limits.MaxDepth > 0 && int(rec.Depth) >= limits.MaxDepth {
			if legal, found := pos.MoveFromUci(rec.BestMove.StringUci()); found && legal.MoveOf() == rec.BestMove.MoveOf() {
				result <- search.Result{BestMove: rec.BestMove, Score: rec.Score, Depth: int(rec.Depth)}
				close(result)
				return
			}
		}

		e.searcher.SetHistory(e.g.ZobristHistory())
		res := e.searcher.Search(pos, limits, e.stop)
		e.posCache.Put(pos.ZobristKey(), cache.PositionRecord{
			BestMove:  res.BestMove,
			Score:     res.Score,
			Depth:     int8(res.Depth),
			ValueType: Exact,
		})
		result <- res
		close(result)
	}
	select {
	case e.cmds <- fn:
	case <-e.done:
		close(result)
	}
	return result
}

// Stop requests that an in-flight Go() abort at its next cheap stop
// check. Safe to call concurrently with Go.
func (e *Engine) Stop() {
	e.stop.Store(true)
}

// MakeMove plays mv on the current game via the command loop.
func (e *Engine) MakeMove(mv Move) error {
	var moveErr error
	err := e.submit(func() {
		moveErr = e.g.MakeMove(mv)
	})
	if err != nil {
		return err
	}
	return moveErr
}
