//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package search

import (
	"time"

	. "github.com/Mario-O123/chessgo/internal/types"
)

// Limits bounds a single Search call. A zero value means "unbounded" for
// MaxNodes and MaxTime; MaxDepth of zero or below is clamped to maxPly-1.
type Limits struct {
	MaxDepth int
	MaxNodes uint64
	MaxTime  time.Duration
}

// Result is what a completed (or safely aborted) iterative-deepening
// search reports back to its caller.
type Result struct {
	BestMove Move
	Score    Value
	Depth    int
	Nodes    uint64
	Elapsed  time.Duration
}
