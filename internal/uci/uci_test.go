//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package uci

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mario-O123/chessgo/internal/position"
)

func TestUciCommandAdvertisesIdAndHashOption(t *testing.T) {
	h := NewHandler(16)
	defer h.eng.Close()

	result := h.Command("uci")
	assert.Contains(t, result, "id name chessgo")
	assert.Contains(t, result, "id author")
	assert.Contains(t, result, "option name Hash type spin")
	assert.Contains(t, result, "uciok")
}

func TestIsreadyRespondsReadyok(t *testing.T) {
	h := NewHandler(16)
	defer h.eng.Close()

	assert.Contains(t, h.Command("isready"), "readyok")
}

func TestQuitStopsTheLoop(t *testing.T) {
	h := NewHandler(16)
	defer h.eng.Close()

	assert.True(t, h.handle("quit"))
	assert.False(t, h.handle("isready"))
}

func TestPositionStartposSetsTheStartingPosition(t *testing.T) {
	h := NewHandler(16)
	defer h.eng.Close()

	h.Command("position startpos")
	pos, _, err := h.eng.Snapshot()
	assert.NoError(t, err)
	assert.Equal(t, position.StartFEN, pos.FEN())
}

func TestPositionFenSetsAnExplicitPosition(t *testing.T) {
	h := NewHandler(16)
	defer h.eng.Close()

	fen := "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"
	h.Command("position fen " + fen)
	pos, _, err := h.eng.Snapshot()
	assert.NoError(t, err)
	assert.Equal(t, fen, pos.FEN())
}

func TestPositionMalformedIsReportedAndLeavesPositionUnchanged(t *testing.T) {
	h := NewHandler(16)
	defer h.eng.Close()

	h.Command("position startpos moves e2e4")
	before, _, _ := h.eng.Snapshot()

	result := h.Command("position fen")
	assert.Contains(t, result, "malformed")

	after, _, err := h.eng.Snapshot()
	assert.NoError(t, err)
	assert.Equal(t, before.FEN(), after.FEN())
}

func TestPositionStartposWithMovesReplaysEachMove(t *testing.T) {
	h := NewHandler(16)
	defer h.eng.Close()

	h.Command("position startpos moves e2e4 e7e5 g1f3 b8c6")
	pos, _, err := h.eng.Snapshot()
	assert.NoError(t, err)
	assert.Equal(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3", pos.FEN())
}

func TestPositionWithAnIllegalMoveIsRejectedAndLeavesPositionUnchanged(t *testing.T) {
	h := NewHandler(16)
	defer h.eng.Close()

	h.Command("position startpos moves e2e4")
	before, _, _ := h.eng.Snapshot()

	result := h.Command("position startpos moves e2e5")
	assert.Contains(t, result, "rejected")

	after, _, err := h.eng.Snapshot()
	assert.NoError(t, err)
	assert.Equal(t, before.FEN(), after.FEN())
}

func TestSetOptionHashResizesWithoutError(t *testing.T) {
	h := NewHandler(16)
	defer h.eng.Close()

	h.Command("setoption name Hash value 32")
	assert.Contains(t, h.Command("isready"), "readyok")
}

func TestSetOptionUnknownNameIsIgnored(t *testing.T) {
	h := NewHandler(16)
	defer h.eng.Close()

	h.Command("setoption name OwnBook value false")
	assert.Contains(t, h.Command("isready"), "readyok")
}

func TestGoDepthReturnsABestmove(t *testing.T) {
	h := NewHandler(16)
	defer h.eng.Close()

	h.Command("position startpos")
	result := h.Command("go depth 2")
	assert.Contains(t, result, "bestmove")
}

func TestParseGoLimitsReadsDepth(t *testing.T) {
	tokens := strings.Fields("go depth 6")
	limits, ok := parseGoLimits(tokens)
	assert.True(t, ok)
	assert.Equal(t, 6, limits.MaxDepth)
}

func TestParseGoLimitsReadsInfiniteAndRejectsMalformedDepth(t *testing.T) {
	tokens := strings.Fields("go infinite")
	limits, ok := parseGoLimits(tokens)
	assert.True(t, ok)
	assert.Equal(t, 64, limits.MaxDepth)

	_, ok = parseGoLimits(strings.Fields("go depth notanumber"))
	assert.False(t, ok)
}

func TestParseGoLimitsIgnoresTimeControlParameters(t *testing.T) {
	tokens := strings.Fields("go wtime 60000 btime 60000 winc 2000 binc 2000 depth 6 nodes 1000000 movestogo 20")
	limits, ok := parseGoLimits(tokens)
	assert.True(t, ok)
	assert.Equal(t, 6, limits.MaxDepth)
	assert.EqualValues(t, 1_000_000, limits.MaxNodes)
}

func TestParseGoLimitsDefaultsWhenNothingSpecified(t *testing.T) {
	limits, ok := parseGoLimits(strings.Fields("go"))
	assert.True(t, ok)
	assert.Equal(t, 6, limits.MaxDepth)
}

func TestParseSetOptionSplitsNameAndValue(t *testing.T) {
	name, value := parseSetOption(strings.Fields("setoption name Hash value 64"))
	assert.Equal(t, "Hash", name)
	assert.Equal(t, "64", value)
}

func TestParseSetOptionHandlesMultiWordNames(t *testing.T) {
	name, value := parseSetOption(strings.Fields("setoption name Clear Hash"))
	assert.Equal(t, "Clear Hash", name)
	assert.Equal(t, "", value)
}
