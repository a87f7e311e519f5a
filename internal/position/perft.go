//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package position

import "github.com/Mario-O123/chessgo/internal/types"

// Perft counts the number of leaf positions reachable in exactly depth
// plies of fully legal play from p's current position. It is the
// reference correctness check for move generation and make/unmake: a
// mismatch against a known-good count pinpoints a generator bug.
func (p *Position) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var buf [256]types.Move
	moves := p.GenerateLegal(buf[:0])
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, mv := range moves {
		p.MakeMove(mv)
		nodes += p.Perft(depth - 1)
		p.UnmakeMove()
	}
	return nodes
}

// DivideResult is one root move's contribution to a divide-perft count.
type DivideResult struct {
	Move  types.Move
	Nodes uint64
}

// Divide runs perft one ply at a time under each legal root move,
// returning the per-move breakdown used to localize a perft mismatch
// against a known-good reference.
func (p *Position) Divide(depth int) []DivideResult {
	var buf [256]types.Move
	moves := p.GenerateLegal(buf[:0])
	results := make([]DivideResult, 0, len(moves))
	for _, mv := range moves {
		p.MakeMove(mv)
		var nodes uint64
		if depth > 1 {
			nodes = p.Perft(depth - 1)
		} else {
			nodes = 1
		}
		p.UnmakeMove()
		results = append(results, DivideResult{Move: mv, Nodes: nodes})
	}
	return results
}
