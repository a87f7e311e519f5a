//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package search

import (
	"sort"

	"github.com/Mario-O123/chessgo/internal/position"
	. "github.com/Mario-O123/chessgo/internal/types"
)

// Move-ordering bonuses (§4.9). scoreMove gives each move the bonus of the
// first category it matches, in the order TT move, promotion, en passant,
// capture, double push, killer, development, history; bonuses of
// different categories are not added together.
const (
	ttMoveBonus        = 1_000_000
	promotionBonus     = 90_000
	enPassantBonus     = 10_000
	captureBonus       = 10_000
	centralPushBonus   = 40
	rookFilePushPenalty = -20
	minorDevelopBonus  = 30
	earlyRookPenalty   = -30
	firstKillerBonus   = 120
	secondKillerBonus  = 110
)

// orderMoves scores every move in place (via Move's embedded sort
// value) and sorts moves descending by that score. Ordering is
// advisory: every call site still searches the full move set.
func (s *Searcher) orderMoves(pos *position.Position, moves []Move, ply int, ttMove Move) {
	ttMove = ttMove.MoveOf()
	for i, mv := range moves {
		moves[i] = mv.SetValue(s.scoreMove(pos, mv, ply, ttMove))
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Value() > moves[j].Value()
	})
}

func (s *Searcher) scoreMove(pos *position.Position, mv Move, ply int, ttMove Move) int32 {
	if mv.MoveOf() == ttMove && ttMove != MoveNone {
		return ttMoveBonus
	}

	if mv.MoveType() == Promotion {
		score := int32(promotionBonus) + int32(mv.PromotionType().ValueOf())
		if victim := pos.PieceAt(mv.To()); victim != PieceNone {
			score += int32(victim.ValueOf())
		}
		return score
	}

	if mv.MoveType() == EnPassant {
		attacker := pos.PieceAt(mv.From())
		return int32(enPassantBonus) + 100 - int32(attacker.ValueOf())
	}

	if victim := pos.PieceAt(mv.To()); victim != PieceNone {
		attacker := pos.PieceAt(mv.From())
		return int32(captureBonus) + int32(victim.ValueOf()) - int32(attacker.ValueOf())
	}

	if mv.MoveType() == DoublePawnPush {
		file := mv.From().File()
		if file == 3 || file == 4 {
			return centralPushBonus
		}
		if file == 0 || file == 7 {
			return rookFilePushPenalty
		}
	}

	if ply < maxPly {
		if s.killers[ply][0] == mv.MoveOf() {
			return firstKillerBonus
		}
		if s.killers[ply][1] == mv.MoveOf() {
			return secondKillerBonus
		}
	}

	if score := developmentScore(pos, mv); score != 0 {
		return score
	}

	return s.history[mv.From()][mv.To()]
}

// developmentScore rewards moving a still-undeveloped minor piece off
// its starting square and penalizes an early rook move, both as quiet
// tie-breakers among otherwise unscored moves.
func developmentScore(pos *position.Position, mv Move) int32 {
	piece := pos.PieceAt(mv.From())
	if piece == PieceNone {
		return 0
	}
	c := piece.ColorOf()
	backRank := 0
	if c == Black {
		backRank = 7
	}
	if mv.From().Rank() != backRank {
		return 0
	}

	switch piece.TypeOf() {
	case Knight, Bishop:
		return minorDevelopBonus
	case Rook:
		return earlyRookPenalty
	default:
		return 0
	}
}
