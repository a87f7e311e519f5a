//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package search implements iterative-deepening negamax with alpha-beta
// pruning, a quiescence extension, transposition-table-assisted move
// ordering and cutoffs, and killer-move / history-heuristic tie-breaking.
package search

import (
	"time"

	"github.com/op/go-logging"

	"github.com/Mario-O123/chessgo/internal/evaluator"
	myLogging "github.com/Mario-O123/chessgo/internal/logging"
	"github.com/Mario-O123/chessgo/internal/position"
	"github.com/Mario-O123/chessgo/internal/transpositiontable"
	. "github.com/Mario-O123/chessgo/internal/types"
	"github.com/Mario-O123/chessgo/internal/util"
	"github.com/Mario-O123/chessgo/internal/zobrist"
)

// maxPly bounds the search tree's recursion depth: deep enough for any
// reasonable iterative-deepening ceiling plus quiescence extension.
const maxPly = 128

// maxMovesPerPosition bounds the reusable move buffer passed to the
// generator; no legal chess position has anywhere near this many moves.
const maxMovesPerPosition = 256

// Searcher owns one transposition table and the mutable move-ordering
// state (killers, history) for a sequence of searches against the same
// engine instance. It is not safe for concurrent use by two goroutines
// at once; the engine facade (§4.12) serializes access.
type Searcher struct {
	log  *logging.Logger
	tt   *transpositiontable.TtTable
	eval evaluator.Evaluator

	killers [maxPly][2]Move
	history [BoardSize][BoardSize]int32

	// path holds the Zobrist key of every position visited so far along
	// the current search line, used to detect in-search repetitions.
	// Seeded from the game's real move history via SetHistory before a
	// Search call so a repetition against moves already played is also
	// caught.
	path []zobrist.Key

	nodes    uint64
	stop     *util.Bool
	aborted  bool
	deadline time.Time
	maxNodes uint64
}

// NewSearcher creates a Searcher with a transposition table of the given
// size and the supplied evaluator.
func NewSearcher(ttSizeMB int, eval evaluator.Evaluator) *Searcher {
	return &Searcher{
		log:  myLogging.GetLog("search"),
		tt:   transpositiontable.NewTtTable(ttSizeMB),
		eval: eval,
		path: make([]zobrist.Key, 0, maxPly+16),
	}
}

// SetHistory seeds the in-search repetition path with the Zobrist keys
// of positions already reached earlier in the game, oldest first.
func (s *Searcher) SetHistory(keys []zobrist.Key) {
	s.path = s.path[:0]
	s.path = append(s.path, keys...)
}

// ResizeTT rebuilds the transposition table to a new size.
func (s *Searcher) ResizeTT(sizeInMB int) {
	s.tt.Resize(sizeInMB)
}

// ClearTT empties the transposition table, e.g. between unrelated games.
func (s *Searcher) ClearTT() {
	s.tt.Clear()
}

// NodesVisited returns the node count of the most recent Search call.
func (s *Searcher) NodesVisited() uint64 {
	return s.nodes
}

// Search runs iterative deepening from depth 1 up to limits.MaxDepth (or
// maxPly-1 if unset), returning the result of the deepest iteration that
// completed without an abort; if depth 1 itself is aborted, its partial
// result (the best root move found so far) is returned. stop is polled at the cadence §4.8
// specifies; it may be set concurrently by another goroutine (e.g. the
// engine facade's Stop()).
func (s *Searcher) Search(pos *position.Position, limits Limits, stop *util.Bool) Result {
	s.stop = stop
	s.nodes = 0
	s.aborted = false
	s.maxNodes = limits.MaxNodes
	s.killers = [maxPly][2]Move{}
	s.history = [BoardSize][BoardSize]int32{}

	start := time.Now()
	if limits.MaxTime > 0 {
		s.deadline = start.Add(limits.MaxTime)
	} else {
		s.deadline = time.Time{}
	}

	maxDepth := limits.MaxDepth
	if maxDepth <= 0 || maxDepth >= maxPly {
		maxDepth = maxPly - 1
	}

	var best Result
	for depth := 1; depth <= maxDepth; depth++ {
		move, score, aborted := s.rootSearch(pos, depth)
		if aborted && depth > 1 {
			s.log.Debugf("search: depth %d aborted, keeping depth %d result", depth, best.Depth)
			break
		}
		if aborted && score == -ValueInf {
			score = s.evaluateStm(pos)
		}
		best = Result{
			BestMove: move,
			Score:    score,
			Depth:    depth,
			Nodes:    s.nodes,
			Elapsed:  time.Since(start),
		}
		if aborted || s.checkStop() {
			break
		}
	}
	return best
}

// checkStop is the single cheap cadence point every recursion entry
// consults: a monotonic clock read plus two integer comparisons, no
// syscalls beyond what time.Now() already does.
func (s *Searcher) checkStop() bool {
	if s.aborted {
		return true
	}
	if s.stop != nil && s.stop.Load() {
		s.aborted = true
		return true
	}
	if s.maxNodes > 0 && s.nodes >= s.maxNodes {
		s.aborted = true
		return true
	}
	if !s.deadline.IsZero() && time.Now().After(s.deadline) {
		s.aborted = true
		return true
	}
	return false
}

// evaluateStm returns the classical evaluation from the side-to-move's
// perspective, the sign negamax needs.
func (s *Searcher) evaluateStm(pos *position.Position) Value {
	v := Value(s.eval.Evaluate(pos))
	if pos.SideToMove() == Black {
		v = -v
	}
	return v
}

func (s *Searcher) recordKiller(ply int, mv Move) {
	if ply >= maxPly {
		return
	}
	mv = mv.MoveOf()
	if s.killers[ply][0] == mv {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = mv
}

// isRepetition reports whether key already occurred earlier on the
// current search path (the in-search history plus any seeded game
// history).
func (s *Searcher) isRepetition(key zobrist.Key) bool {
	for _, k := range s.path {
		if k == key {
			return true
		}
	}
	return false
}
