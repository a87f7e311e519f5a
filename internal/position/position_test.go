//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/Mario-O123/chessgo/internal/types"
)

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func TestStartingPositionFEN(t *testing.T) {
	p := StartingPosition()
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", p.FEN())
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingAny, p.CastlingRights())
	assert.Equal(t, SqInvalid, p.EpTarget())
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		kiwipeteFEN,
		"8/8/8/8/8/8/8/K6k w - - 0 1",
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	}
	for _, fen := range fens {
		p, err := ParseFEN(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.FEN())
	}
}

func TestParseFenRejectsMissingKing(t *testing.T) {
	_, err := ParseFEN("8/8/8/8/8/8/8/8 w - - 0 1")
	assert.Error(t, err)
	var fenErr *FenError
	assert.ErrorAs(t, err, &fenErr)
	assert.Equal(t, MissingKing, fenErr.Kind)
}

func TestParseFenRejectsMalformedField(t *testing.T) {
	_, err := ParseFEN("not-a-fen w - - 0 1")
	assert.Error(t, err)
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	p := StartingPosition()
	before := *p

	e2 := SquareFromString("e2")
	e4 := SquareFromString("e4")
	move := CreateMove(e2, e4, DoublePawnPush, PtNone)

	p.MakeMove(move)
	assert.NotEqual(t, before.FEN(), p.FEN())
	p.UnmakeMove()

	assert.Equal(t, before.board, p.board)
	assert.Equal(t, before.sideToMove, p.sideToMove)
	assert.Equal(t, before.castlingRights, p.castlingRights)
	assert.Equal(t, before.epTarget, p.epTarget)
	assert.Equal(t, before.zobristKey, p.zobristKey)
	assert.Equal(t, before.kingSq, p.kingSq)
	assert.Equal(t, before.pieceCounter, p.pieceCounter)
}

func TestMakeUnmakeCastling(t *testing.T) {
	p, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	before := *p

	kingside := CreateMove(SqE1, SqG1, Castling, PtNone)
	p.MakeMove(kingside)
	assert.Equal(t, MakePiece(White, King), p.PieceAt(SqG1))
	assert.Equal(t, MakePiece(White, Rook), p.PieceAt(SqF1))
	assert.Equal(t, PieceNone, p.PieceAt(SqE1))
	assert.Equal(t, PieceNone, p.PieceAt(SqH1))
	assert.False(t, p.castlingRights.Has(CastlingWhiteOO))
	assert.False(t, p.castlingRights.Has(CastlingWhiteOOO))
	p.UnmakeMove()

	assert.Equal(t, before.board, p.board)
	assert.Equal(t, before.castlingRights, p.castlingRights)
	assert.Equal(t, before.zobristKey, p.zobristKey)
}

func TestMakeUnmakeEnPassant(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	assert.NoError(t, err)
	before := *p

	e5, d6 := SquareFromString("e5"), SquareFromString("d6")
	mv := CreateMove(e5, d6, EnPassant, PtNone)
	p.MakeMove(mv)
	assert.Equal(t, PieceNone, p.PieceAt(SquareFromString("d5")))
	assert.Equal(t, MakePiece(White, Pawn), p.PieceAt(d6))
	p.UnmakeMove()

	assert.Equal(t, before.board, p.board)
	assert.Equal(t, before.zobristKey, p.zobristKey)
}

func TestMakeUnmakePromotion(t *testing.T) {
	p, err := ParseFEN("3n4/4P3/8/8/8/8/8/4K2k w - - 0 1")
	assert.NoError(t, err)
	before := *p

	e7, d8 := SquareFromString("e7"), SquareFromString("d8")
	mv := CreateMove(e7, d8, Promotion, Queen)
	p.MakeMove(mv)
	assert.Equal(t, MakePiece(White, Queen), p.PieceAt(d8))
	p.UnmakeMove()

	assert.Equal(t, before.board, p.board)
	assert.Equal(t, before.pieceCounter, p.pieceCounter)
	assert.Equal(t, before.zobristKey, p.zobristKey)
}

func TestZobristIncrementalMatchesRecomputed(t *testing.T) {
	p := StartingPosition()
	var buf [256]Move
	moves := p.GenerateLegal(buf[:0])
	for i, mv := range moves {
		if i > 5 {
			break
		}
		p.MakeMove(mv)
		incremental := p.ZobristKey()
		p.ComputeZobrist()
		assert.Equal(t, incremental, p.ZobristKey())
		p.UnmakeMove()
	}
}

func TestIsSquareAttacked(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/8/4r3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, p.IsSquareAttacked(SqE1, Black))
	assert.True(t, p.IsInCheck(White))
	assert.False(t, p.IsInCheck(Black))
}

func TestLegalMovesExcludeSelfCheck(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/8/4r3/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	var buf [256]Move
	legal := p.GenerateLegal(buf[:0])
	for _, mv := range legal {
		assert.NotEqual(t, SquareFromString("e2"), mv.To(), "king must not move along the attacked e-file")
	}
}

func TestCheckmateHasNoLegalMoves(t *testing.T) {
	// Fool's mate final position, black to move... use a clean back-rank mate instead.
	p, err := ParseFEN("R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	assert.NoError(t, err)
	assert.True(t, p.IsInCheck(Black))
	var buf [256]Move
	legal := p.GenerateLegal(buf[:0])
	assert.Empty(t, legal)
}

func TestStalemateHasNoLegalMovesButNotInCheck(t *testing.T) {
	p, err := ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)
	assert.False(t, p.IsInCheck(Black))
	var buf [256]Move
	legal := p.GenerateLegal(buf[:0])
	assert.Empty(t, legal)
}

func TestHasInsufficientMaterial(t *testing.T) {
	cases := map[string]bool{
		"8/8/8/8/8/8/8/K6k w - - 0 1":        true,  // KvK
		"8/8/8/8/8/8/8/KN5k w - - 0 1":       true,  // K+N vK
		"8/8/8/8/8/8/8/KNN4k w - - 0 1":      true,  // KNNvK
		"8/8/8/8/8/8/8/KQ5k w - - 0 1":       false, // queen present
		"8/8/8/8/8/8/P7/K6k w - - 0 1":       false, // pawn present
	}
	for fen, want := range cases {
		p, err := ParseFEN(fen)
		assert.NoError(t, err)
		assert.Equal(t, want, p.HasInsufficientMaterial(), fen)
	}
}

func TestPerftStartingPosition(t *testing.T) {
	p := StartingPosition()
	assert.Equal(t, uint64(20), p.Perft(1))
	assert.Equal(t, uint64(400), p.Perft(2))
	assert.Equal(t, uint64(8902), p.Perft(3))
	assert.Equal(t, uint64(197281), p.Perft(4))
}

func TestPerftKiwipete(t *testing.T) {
	p, err := ParseFEN(kiwipeteFEN)
	assert.NoError(t, err)
	assert.Equal(t, uint64(48), p.Perft(1))
	assert.Equal(t, uint64(2039), p.Perft(2))
}

func TestDivideSumsToPerft(t *testing.T) {
	p := StartingPosition()
	results := p.Divide(3)
	var sum uint64
	for _, r := range results {
		sum += r.Nodes
	}
	assert.Equal(t, p.Perft(3), sum)
}
