//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package tui implements the interactive terminal adapter (§4.14): a
// bubbletea front end that renders the board, accepts mouse clicks or
// long-algebraic text moves from the human side, and drives the engine
// facade for the computer side. It holds no rule knowledge of its own;
// every legality and adjudication decision is delegated to game.Game.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mario-O123/chessgo/internal/position"
	. "github.com/Mario-O123/chessgo/internal/types"
)

var (
	lightSquare = lipgloss.NewStyle().Background(lipgloss.Color("230")).Foreground(lipgloss.Color("0"))
	darkSquare  = lipgloss.NewStyle().Background(lipgloss.Color("94")).Foreground(lipgloss.Color("0"))
	selectedBg  = lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("0"))
	targetBg    = lipgloss.NewStyle().Background(lipgloss.Color("114")).Foreground(lipgloss.Color("0"))
)

var pieceGlyph = map[PieceType]string{
	Pawn: "P", Knight: "N", Bishop: "B", Rook: "R", Queen: "Q", King: "K",
}

// renderBoard draws pos from White's perspective, rank 8 at the top,
// highlighting selected and shown as a plain ASCII-with-color grid, two
// characters per square so file coordinates line up underneath.
func renderBoard(pos *position.Position, selected Square, targets []Square) string {
	var b strings.Builder

	isTarget := func(sq Square) bool {
		for _, t := range targets {
			if t == sq {
				return true
			}
		}
		return false
	}

	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&b, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			sq := MakeSquare(file, rank)
			style := lightSquare
			if (file+rank)%2 == 1 {
				style = darkSquare
			}
			if selected.IsValid() && sq == selected {
				style = selectedBg
			} else if isTarget(sq) {
				style = targetBg
			}
			b.WriteString(style.Render(" " + squareGlyph(pos, sq)))
		}
		b.WriteString("\n")
	}
	b.WriteString("   a b c d e f g h")
	return b.String()
}

func squareGlyph(pos *position.Position, sq Square) string {
	pc := pos.PieceAt(sq)
	if pc == PieceNone {
		return "."
	}
	glyph := pieceGlyph[pc.TypeOf()]
	if pc.ColorOf() == Black {
		return strings.ToLower(glyph)
	}
	return glyph
}
