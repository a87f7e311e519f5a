//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package game

import (
	. "github.com/Mario-O123/chessgo/internal/types"
)

// Result discriminates how (or whether) a game has concluded (§4.10).
type Result int

const (
	Ongoing Result = iota
	Checkmate
	Stalemate
	DrawRepetition
	DrawInsufficientMaterial
	DrawFiftyMove
)

var resultToString = [...]string{
	Ongoing:                  "Ongoing",
	Checkmate:                "Checkmate",
	Stalemate:                "Stalemate",
	DrawRepetition:           "DrawRepetition",
	DrawInsufficientMaterial: "DrawInsufficientMaterial",
	DrawFiftyMove:            "DrawFiftyMove",
}

func (r Result) String() string {
	if int(r) < 0 || int(r) >= len(resultToString) {
		return "Unknown"
	}
	return resultToString[r]
}

// IsOver reports whether r is any concluding result.
func (r Result) IsOver() bool {
	return r != Ongoing
}

// IsDraw reports whether r is one of the four drawn results (stalemate,
// repetition, insufficient material, fifty-move rule).
func (r Result) IsDraw() bool {
	return r == Stalemate || r == DrawRepetition || r == DrawInsufficientMaterial || r == DrawFiftyMove
}

// Status is the full adjudication of a position: the result, and the
// winner when the result is Checkmate.
type Status struct {
	Result Result
	Winner Color
}

func (s Status) String() string {
	if s.Result == Checkmate {
		return "Checkmate, " + s.Winner.String() + " wins"
	}
	return s.Result.String()
}
