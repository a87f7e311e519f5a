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
	. "github.com/Mario-O123/chessgo/internal/types"
)

// quiescence resolves captures/promotions/en-passant past the horizon to
// avoid the alpha-beta search misjudging a tactically unstable position
// as quiet (§4.8 "Quiescence").
func (s *Searcher) quiescence(pos *position.Position, ply int, alpha, beta Value) Value {
	s.nodes++
	if s.checkStop() {
		return s.evaluateStm(pos)
	}

	if pos.IsInCheck(pos.SideToMove()) {
		return s.quiescenceEvasions(pos, ply, alpha, beta)
	}

	standPat := s.evaluateStm(pos)
	if standPat >= beta {
		return beta
	}
	if alpha < standPat {
		alpha = standPat
	}

	var buf [maxMovesPerPosition]Move
	captures := pos.GenerateCaptures(buf[:0])
	s.orderMoves(pos, captures, ply, MoveNone)

	for _, mv := range captures {
		mover := pos.SideToMove()
		pos.MakeMove(mv)
		if pos.IsInCheck(mover) {
			pos.UnmakeMove()
			continue
		}
		score := -s.quiescence(pos, ply+1, -beta, -alpha)
		pos.UnmakeMove()

		if s.aborted {
			return alpha
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// quiescenceEvasions handles the in-check branch: every pseudo-legal
// move is a candidate evasion, filtered legal inline, exactly like a
// reduced negamax with no stand-pat.
func (s *Searcher) quiescenceEvasions(pos *position.Position, ply int, alpha, beta Value) Value {
	var buf [maxMovesPerPosition]Move
	pseudo := pos.GeneratePseudoLegal(buf[:0])
	s.orderMoves(pos, pseudo, ply, MoveNone)

	legalMoves := 0
	for _, mv := range pseudo {
		mover := pos.SideToMove()
		pos.MakeMove(mv)
		if pos.IsInCheck(mover) {
			pos.UnmakeMove()
			continue
		}
		legalMoves++

		score := -s.quiescence(pos, ply+1, -beta, -alpha)
		pos.UnmakeMove()

		if s.aborted {
			return alpha
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	if legalMoves == 0 {
		return -ValueMate + Value(ply)
	}
	return alpha
}
