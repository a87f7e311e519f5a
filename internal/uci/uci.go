//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package uci implements the stdin/stdout UCI protocol loop (§4.12,
// §6): a thin line-at-a-time command dispatcher sitting on top of
// engine.Engine. It holds no search or position state of its own.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	"github.com/Mario-O123/chessgo/internal/engine"
	myLogging "github.com/Mario-O123/chessgo/internal/logging"
	"github.com/Mario-O123/chessgo/internal/position"
	"github.com/Mario-O123/chessgo/internal/search"
)

const engineName = "chessgo"
const engineAuthor = "the chessgo contributors"

var log *logging.Logger

// Handler reads UCI commands from InIo and writes UCI responses to
// OutIo, driving a single engine.Engine instance.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	eng *engine.Engine
}

// NewHandler creates a Handler with a fresh Engine of ttSizeMB
// megabytes, reading from stdin and writing to stdout.
func NewHandler(ttSizeMB int) *Handler {
	if log == nil {
		log = myLogging.GetLog("uci")
	}
	return &Handler{
		InIo:  bufio.NewScanner(os.Stdin),
		OutIo: bufio.NewWriter(os.Stdout),
		eng:   engine.New(ttSizeMB),
	}
}

// Loop reads commands until "quit" or end of input, closing the engine
// on exit.
func (h *Handler) Loop() {
	defer h.eng.Close()
	for h.InIo.Scan() {
		if h.handle(h.InIo.Text()) {
			return
		}
	}
}

// Command runs a single line of UCI protocol against h and returns
// everything it wrote, for debugging and tests.
func (h *Handler) Command(cmd string) string {
	saved := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handle(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = saved
	return buf.String()
}

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// handle dispatches a single command line, returning true when "quit"
// was received and the loop should stop.
func (h *Handler) handle(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return false
	}
	tokens := regexWhiteSpace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		h.uciCommand()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		_ = h.eng.NewGame()
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		h.eng.Stop()
	case "setoption":
		h.setOptionCommand(tokens)
	case "debug", "register", "ponderhit":
		// acknowledged, no effect: this engine has no pondering or registration.
	default:
		log.Warningf("unknown command: %s", cmd)
	}
	return false
}

func (h *Handler) uciCommand() {
	h.send(fmt.Sprintf("id name %s", engineName))
	h.send(fmt.Sprintf("id author %s", engineAuthor))
	h.send("option name Hash type spin default 64 min 1 max 4096")
	h.send("uciok")
}

// setOptionCommand only implements "Hash", resizing the transposition
// table; every other option name is acknowledged and ignored.
func (h *Handler) setOptionCommand(tokens []string) {
	name, value := parseSetOption(tokens)
	if name == "Hash" {
		if mb, err := strconv.Atoi(value); err == nil && mb > 0 {
			h.eng.ResizeTT(mb)
		}
	}
}

func parseSetOption(tokens []string) (name, value string) {
	i := 1
	if i >= len(tokens) || tokens[i] != "name" {
		return "", ""
	}
	i++
	var nameParts []string
	for i < len(tokens) && tokens[i] != "value" {
		nameParts = append(nameParts, tokens[i])
		i++
	}
	name = strings.Join(nameParts, " ")
	if i < len(tokens)-1 && tokens[i] == "value" {
		value = tokens[i+1]
	}
	return name, value
}

// positionCommand sets the base FEN (startpos or an explicit "fen ...")
// then replays any trailing "moves ..." long-algebraic list.
func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.sendInfo("position command malformed: %v", tokens)
		return
	}

	fen := position.StartFEN
	i := 1
	switch tokens[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var b strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			b.WriteString(tokens[i])
			b.WriteString(" ")
			i++
		}
		fen = strings.TrimSpace(b.String())
		if fen == "" {
			h.sendInfo("position command malformed: %v", tokens)
			return
		}
	default:
		h.sendInfo("position command malformed: %v", tokens)
		return
	}

	var moves []string
	if i < len(tokens) && tokens[i] == "moves" {
		moves = tokens[i+1:]
	}

	if err := h.eng.SetPosition(fen, moves); err != nil {
		h.sendInfo("position command rejected: %v", err)
	}
}

func (h *Handler) goCommand(tokens []string) {
	limits, ok := parseGoLimits(tokens)
	if !ok {
		h.sendInfo("go command malformed: %v", tokens)
		return
	}
	resultCh := h.eng.Go(limits)
	go func() {
		res := <-resultCh
		h.send(fmt.Sprintf("info depth %d score cp %d nodes %d time %d",
			res.Depth, int(res.Score), res.Nodes, res.Elapsed.Milliseconds()))
		h.send("bestmove " + res.BestMove.StringUci())
	}()
}

// parseGoLimits reads the subset of UCI "go" parameters this engine
// honors: depth, nodes, movetime, and infinite. Time-control parameters
// (wtime/btime/winc/binc/movestogo) are accepted and ignored, since this
// engine has no clock-management layer of its own.
func parseGoLimits(tokens []string) (search.Limits, bool) {
	var limits search.Limits
	i := 1
	for i < len(tokens) {
		switch tokens[i] {
		case "infinite":
			limits.MaxDepth = 64
			i++
		case "depth":
			i++
			if i >= len(tokens) {
				return limits, false
			}
			d, err := strconv.Atoi(tokens[i])
			if err != nil {
				return limits, false
			}
			limits.MaxDepth = d
			i++
		case "nodes":
			i++
			if i >= len(tokens) {
				return limits, false
			}
			n, err := strconv.ParseUint(tokens[i], 10, 64)
			if err != nil {
				return limits, false
			}
			limits.MaxNodes = n
			i++
		case "movetime":
			i++
			if i >= len(tokens) {
				return limits, false
			}
			ms, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				return limits, false
			}
			limits.MaxTime = time.Duration(ms) * time.Millisecond
			i++
		case "wtime", "btime", "winc", "binc", "movestogo", "mate":
			i += 2
		case "ponder":
			i++
		default:
			i++
		}
	}
	if limits.MaxDepth == 0 && limits.MaxNodes == 0 && limits.MaxTime == 0 {
		limits.MaxDepth = 6
	}
	return limits, true
}

func (h *Handler) sendInfo(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.Warning(msg)
	h.send("info string " + msg)
}

func (h *Handler) send(s string) {
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}
