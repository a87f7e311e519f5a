//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package search

import (
	"github.com/Mario-O123/chessgo/internal/position"
	"github.com/Mario-O123/chessgo/internal/transpositiontable"
	. "github.com/Mario-O123/chessgo/internal/types"
)

// rootSearch has the same contract as negamax but additionally tracks
// and returns the best move, and always stores an Exact TT entry on
// completion (§4.8 "Root search").
func (s *Searcher) rootSearch(pos *position.Position, depth int) (Move, Value, bool) {
	key := pos.ZobristKey()
	ttMove := MoveNone
	if e := s.tt.Probe(key); e != nil {
		ttMove = e.Move
	}

	var buf [maxMovesPerPosition]Move
	moves := pos.GenerateLegal(buf[:0])
	if len(moves) == 0 {
		return MoveNone, ValueZero, false
	}
	s.orderMoves(pos, moves, 0, ttMove)

	alpha, beta := -ValueInf, ValueInf
	best := moves[0]
	bestScore := Value(-ValueInf)

	for _, mv := range moves {
		if s.checkStop() {
			return best, bestScore, true
		}

		s.path = append(s.path, key)
		pos.MakeMove(mv)
		score := -s.negamax(pos, depth-1, 1, -beta, -alpha)
		pos.UnmakeMove()
		s.path = s.path[:len(s.path)-1]

		if s.aborted {
			return best, bestScore, true
		}
		if score > bestScore {
			bestScore = score
			best = mv
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	s.tt.Store(key, best.MoveOf(), int8(depth), transpositiontable.ToTT(bestScore, 0), Exact, bestScore)
	return best, bestScore, false
}

// negamax implements the nine-step contract of §4.8: node accounting,
// draw short-circuits, the quiescence handoff at the horizon, TT probe
// and cutoff, move generation/ordering/legality filtering, and a final
// TT store classified by bound type.
func (s *Searcher) negamax(pos *position.Position, depth, ply int, alpha, beta Value) Value {
	s.nodes++
	if s.checkStop() {
		return s.evaluateStm(pos)
	}

	key := pos.ZobristKey()
	if pos.HalfMoveClock() >= 100 || s.isRepetition(key) {
		return ValueZero
	}

	if depth <= 0 {
		return s.quiescence(pos, ply, alpha, beta)
	}

	originalAlpha := alpha
	ttMove := MoveNone
	if entry := s.tt.Probe(key); entry != nil {
		ttMove = entry.Move
		if int(entry.Depth) >= depth {
			v := transpositiontable.FromTT(entry.Value, ply)
			switch entry.ValueType {
			case Exact:
				return v
			case LowerBound:
				if v > alpha {
					alpha = v
				}
			case UpperBound:
				if v < beta {
					beta = v
				}
			}
			if alpha >= beta {
				return v
			}
		}
	}

	var buf [maxMovesPerPosition]Move
	pseudo := pos.GeneratePseudoLegal(buf[:0])
	s.orderMoves(pos, pseudo, ply, ttMove)

	best := MoveNone
	bestScore := Value(-ValueInf)
	legalMoves := 0

	for _, mv := range pseudo {
		mover := pos.SideToMove()
		pos.MakeMove(mv)
		if pos.IsInCheck(mover) {
			pos.UnmakeMove()
			continue
		}
		legalMoves++

		s.path = append(s.path, key)
		score := -s.negamax(pos, depth-1, ply+1, -beta, -alpha)
		s.path = s.path[:len(s.path)-1]
		pos.UnmakeMove()

		if s.aborted {
			return bestScore
		}

		if score > bestScore {
			bestScore = score
			best = mv
		}
		quiet := !pos.IsCapturingMove(mv) && mv.MoveType() != Promotion
		if score > alpha {
			alpha = score
			if quiet {
				s.history[mv.From()][mv.To()] += int32(depth * depth)
			}
		}
		if alpha >= beta {
			if quiet {
				s.recordKiller(ply, mv)
			}
			s.tt.Store(key, best.MoveOf(), int8(depth), transpositiontable.ToTT(beta, ply), LowerBound, bestScore)
			return beta
		}
	}

	if legalMoves == 0 {
		var terminal Value
		if pos.IsInCheck(pos.SideToMove()) {
			terminal = -ValueMate + Value(ply)
		} else {
			terminal = ValueZero
		}
		s.tt.Store(key, MoveNone, int8(depth), transpositiontable.ToTT(terminal, ply), Exact, terminal)
		return terminal
	}

	bound := Exact
	if alpha <= originalAlpha {
		bound = UpperBound
	}
	s.tt.Store(key, best.MoveOf(), int8(depth), transpositiontable.ToTT(bestScore, ply), bound, bestScore)
	return bestScore
}
