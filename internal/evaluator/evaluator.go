//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package evaluator contains structures and functions to calculate the
// value of a chess position to be used in a chess engine search.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/Mario-O123/chessgo/internal/config"
	myLogging "github.com/Mario-O123/chessgo/internal/logging"
	"github.com/Mario-O123/chessgo/internal/position"
	. "github.com/Mario-O123/chessgo/internal/types"
)

// Evaluator is the seam for a future pluggable (e.g. neural) evaluator;
// the classical evaluator below is the only implementation shipped.
type Evaluator interface {
	Evaluate(pos *position.Position) int
}

// maxPhase is the clamp ceiling for the game-phase scalar (§4.7):
// Knight:1 Bishop:1 Rook:2 Queen:4 summed over both colors.
const maxPhase = 24

var phaseValue = [PtLength]int{PtNone: 0, King: 0, Pawn: 0, Knight: 1, Bishop: 1, Rook: 2, Queen: 4}

// ClassicalEvaluator implements Evaluator with material, piece-square
// tables blended by game phase, a bishop-pair bonus, a castled-king
// bonus, an undeveloped-minor-piece penalty and a side-to-move tempo
// bonus. Stateless aside from a logger; safe for concurrent use.
type ClassicalEvaluator struct {
	log *logging.Logger
}

// NewClassicalEvaluator creates a ready-to-use ClassicalEvaluator.
func NewClassicalEvaluator() *ClassicalEvaluator {
	return &ClassicalEvaluator{log: myLogging.GetLog("evaluator")}
}

// Evaluate returns a centipawn score from White's perspective. Callers
// negate for the side to move when needed (e.g. in negamax).
func (e *ClassicalEvaluator) Evaluate(pos *position.Position) int {
	if pos.HasInsufficientMaterial() {
		return 0
	}

	phase := gamePhase(pos)
	mgWeight := phase
	egWeight := maxPhase - phase

	mg, eg := 0, 0

	for c := White; c <= Black; c++ {
		sign := 1
		if c == Black {
			sign = -1
		}
		for pt := Pawn; pt <= Queen; pt++ {
			mgVal, egVal := materialAndPsqValue(pos, c, pt)
			mg += sign * mgVal
			eg += sign * egVal
		}
		mgKing, egKing := kingPsqValue(pos, c)
		mg += sign * mgKing
		eg += sign * egKing

		if pos.PieceCount(c, Bishop) >= 2 {
			mg += sign * int(config.Settings.Eval.BishopPairBonus)
			eg += sign * int(config.Settings.Eval.BishopPairBonus)
		}

		if isCastled(pos, c) {
			bonus := int(config.Settings.Eval.CastledKingBonus) * phase / maxPhase
			mg += sign * bonus
		}

		penalty := undevelopedMinorPenalty(pos, c) * phase / maxPhase
		mg -= sign * penalty
	}

	score := (mg*mgWeight + eg*egWeight) / maxPhase

	if pos.SideToMove() == White {
		score += int(config.Settings.Eval.Tempo)
	} else {
		score -= int(config.Settings.Eval.Tempo)
	}

	return score
}

// gamePhase sums the phase weight of every remaining piece (both
// colors) and clamps the result to [0, maxPhase].
func gamePhase(pos *position.Position) int {
	phase := 0
	for c := White; c <= Black; c++ {
		for pt := Knight; pt <= Queen; pt++ {
			phase += phaseValue[pt] * pos.PieceCount(c, pt)
		}
	}
	if phase > maxPhase {
		phase = maxPhase
	}
	return phase
}

// materialAndPsqValue sums material plus piece-square value for every
// piece of (c, pt), in c's own frame of reference (mirrored for Black).
func materialAndPsqValue(pos *position.Position, c Color, pt PieceType) (mg, eg int) {
	var buf [16]Square
	squares := pos.FindPieces(c, pt, buf[:0])
	material := pt.ValueOf()
	table := pieceSquareTables[pt]
	for _, sq := range squares {
		mg += material
		eg += material
		idx := ownFrameIndex(sq, c)
		mg += table[idx]
		eg += table[idx]
	}
	return mg, eg
}

// kingPsqValue returns c's king's midgame and endgame piece-square
// values; Evaluate blends them by the phase weight.
func kingPsqValue(pos *position.Position, c Color) (mg, eg int) {
	sq := pos.KingSquare(c)
	if sq == SqInvalid {
		return 0, 0
	}
	idx := ownFrameIndex(sq, c)
	return kingMidgameTable[idx], kingEndgameTable[idx]
}

// ownFrameIndex returns sq's 0..63 index in c's own frame of reference:
// White reads the table top-to-bottom as stored, Black reads it
// vertically mirrored (rank 0 <-> rank 7).
func ownFrameIndex(sq Square, c Color) int {
	file, rank := sq.File(), sq.Rank()
	if c == Black {
		rank = 7 - rank
	}
	return rank*8 + file
}

// isCastled reports whether c's king sits on its castled square and the
// matching castling rights have been given up, the proxy §4.7 specifies
// for "has castled" without tracking move history.
func isCastled(pos *position.Position, c Color) bool {
	kingsideSq, queensideSq := SqG1, SqC1
	oo, ooo := CastlingWhiteOO, CastlingWhiteOOO
	if c == Black {
		kingsideSq, queensideSq = SqG8, SqC8
		oo, ooo = CastlingBlackOO, CastlingBlackOOO
	}
	kingSq := pos.KingSquare(c)
	rights := pos.CastlingRights()
	if (kingSq == kingsideSq || kingSq == queensideSq) && !rights.Has(oo) && !rights.Has(ooo) {
		return true
	}
	return false
}

// undevelopedMinorPenalty returns one penalty unit per knight/bishop of
// color c still sitting on its starting square.
func undevelopedMinorPenalty(pos *position.Position, c Color) int {
	rank := 0
	if c == Black {
		rank = 7
	}
	startSquares := []Square{
		MakeSquare(1, rank), MakeSquare(6, rank), // knights
		MakeSquare(2, rank), MakeSquare(5, rank), // bishops
	}
	count := 0
	for _, sq := range startSquares {
		pc := pos.PieceAt(sq)
		if pc.ColorOf() == c && (pc.TypeOf() == Knight || pc.TypeOf() == Bishop) {
			count++
		}
	}
	return count * int(config.Settings.Eval.UndevelopedMinorPenalty)
}
