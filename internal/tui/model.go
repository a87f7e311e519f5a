//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.design/x/clipboard"

	"github.com/Mario-O123/chessgo/internal/engine"
	myLogging "github.com/Mario-O123/chessgo/internal/logging"
	"github.com/Mario-O123/chessgo/internal/position"
	"github.com/Mario-O123/chessgo/internal/search"
	. "github.com/Mario-O123/chessgo/internal/types"
)

var log = myLogging.GetLog("tui")

// engineMoveMsg carries a completed search.Result back into Update.
type engineMoveMsg struct {
	result search.Result
}

// Model is the bubbletea application model for interactive play. It
// holds no rule knowledge: every legality and status decision comes
// from a Snapshot of the underlying engine.Engine.
type Model struct {
	eng *engine.Engine

	human   Color
	limits  search.Limits
	pos     *position.Position
	done    bool
	toMove  Color
	outcome string

	selected Square
	targets  []Square

	textMode bool
	input    textinput.Model

	statusMsg string
	errorMsg  string
}

// NewModel starts an interactive game against eng with the human playing
// humanColor, the computer searching under limits.
func NewModel(eng *engine.Engine, humanColor Color, limits search.Limits) Model {
	ti := textinput.New()
	ti.Placeholder = "e2e4, e7e8q, or 'fen' to copy the position"
	ti.CharLimit = 16
	ti.Width = 40

	pos, status, _ := eng.Snapshot()
	return Model{
		eng:      eng,
		human:    humanColor,
		limits:   limits,
		pos:      pos,
		toMove:   pos.SideToMove(),
		done:     status.Result.IsOver(),
		outcome:  status.String(),
		selected: SqInvalid,
		input:    ti,
	}
}

// Init kicks off a computer move immediately if the computer moves first.
func (m Model) Init() tea.Cmd {
	if !m.done && m.toMove != m.human {
		return m.runEngineMove()
	}
	return nil
}

// runEngineMove starts a search on the command loop and waits for its
// result on a background goroutine, wrapping it in an engineMoveMsg.
func (m Model) runEngineMove() tea.Cmd {
	resultCh := m.eng.Go(m.limits)
	return func() tea.Msg {
		return engineMoveMsg{result: <-resultCh}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case engineMoveMsg:
		return m.handleEngineMove(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.textMode {
		switch msg.Type {
		case tea.KeyEsc:
			m.textMode = false
			m.input.SetValue("")
			return m, nil
		case tea.KeyEnter:
			text := m.input.Value()
			m.textMode = false
			m.input.SetValue("")
			return m.submitText(text)
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case ":":
		m.textMode = true
		m.input.Focus()
		m.errorMsg = ""
		return m, textinput.Blink
	case "c":
		return m.copyFEN()
	case "esc":
		m.selected = SqInvalid
		m.targets = nil
		return m, nil
	}
	return m, nil
}

// submitText interprets text entered in text-input mode: either the
// literal "fen" command or a long-algebraic move.
func (m Model) submitText(text string) (tea.Model, tea.Cmd) {
	if text == "fen" {
		return m.copyFEN()
	}
	return m.tryHumanMove(text)
}

func (m Model) copyFEN() (tea.Model, tea.Cmd) {
	fen := m.pos.FEN()
	if err := clipboard.Init(); err != nil {
		m.errorMsg = fmt.Sprintf("clipboard unavailable: %v", err)
		return m, nil
	}
	clipboard.Write(clipboard.FmtText, []byte(fen))
	m.statusMsg = "copied FEN to clipboard: " + fen
	m.errorMsg = ""
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.done || m.toMove != m.human {
		return m, nil
	}
	if msg.Type != tea.MouseLeft {
		return m, nil
	}
	sq := squareFromMouse(msg.X, msg.Y)
	if sq == SqInvalid {
		return m, nil
	}

	if m.selected == SqInvalid {
		if pc := m.pos.PieceAt(sq); pc != PieceNone && pc.ColorOf() == m.human {
			m.selected = sq
			m.targets = legalDestinations(m.pos, sq)
		}
		return m, nil
	}

	from := m.selected
	m.selected = SqInvalid
	m.targets = nil
	return m.tryHumanMove(from.String() + sq.String())
}

// tryHumanMove resolves text against the live position's legal-move
// list and, if legal, plays it and kicks off the computer's reply.
func (m Model) tryHumanMove(text string) (tea.Model, tea.Cmd) {
	mv, ok := parseLongAlgebraic(m.pos, text)
	if !ok {
		m.errorMsg = fmt.Sprintf("not a legal move: %q", text)
		return m, nil
	}
	if err := m.eng.MakeMove(mv); err != nil {
		m.errorMsg = err.Error()
		return m, nil
	}
	m.errorMsg = ""
	m.refresh()
	if m.done {
		return m, nil
	}
	return m, m.runEngineMove()
}

func (m Model) handleEngineMove(msg engineMoveMsg) (tea.Model, tea.Cmd) {
	res := msg.result
	if res.BestMove == MoveNone {
		m.refresh()
		return m, nil
	}
	if err := m.eng.MakeMove(res.BestMove); err != nil {
		log.Errorf("engine produced an illegal move %s: %v", res.BestMove.StringUci(), err)
	}
	m.statusMsg = fmt.Sprintf("computer played %s (depth %d, %d nodes, %s)",
		res.BestMove.StringUci(), res.Depth, res.Nodes, res.Elapsed.Round(time.Millisecond))
	m.refresh()
	return m, nil
}

// refresh re-reads the authoritative position and status from the
// engine after any move, human or computer.
func (m *Model) refresh() {
	pos, status, err := m.eng.Snapshot()
	if err != nil {
		m.errorMsg = err.Error()
		return
	}
	m.pos = pos
	m.toMove = pos.SideToMove()
	m.done = status.Result.IsOver()
	m.outcome = status.String()
}

func (m Model) View() string {
	header := "chessgo — you are " + m.human.String()
	if m.done {
		header += " — " + m.outcome
	}

	body := header + "\n\n" + renderBoard(m.pos, m.selected, m.targets) + "\n\n"
	if m.textMode {
		body += m.input.View() + "\n"
	} else {
		body += "click a piece to move, ':' to type a move or 'fen', 'c' copies FEN, 'q' quits\n"
	}
	if m.statusMsg != "" {
		body += m.statusMsg + "\n"
	}
	if m.errorMsg != "" {
		body += "error: " + m.errorMsg + "\n"
	}
	return body
}
