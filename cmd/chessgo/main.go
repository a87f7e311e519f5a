//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Mario-O123/chessgo/internal/config"
	"github.com/Mario-O123/chessgo/internal/engine"
	"github.com/Mario-O123/chessgo/internal/logging"
	"github.com/Mario-O123/chessgo/internal/position"
	"github.com/Mario-O123/chessgo/internal/search"
	"github.com/Mario-O123/chessgo/internal/tui"
	"github.com/Mario-O123/chessgo/internal/uci"
	. "github.com/Mario-O123/chessgo/internal/types"
)

const version = "0.1.0"

var out = message.NewPrinter(language.German)

func main() {
	if len(os.Args) < 2 {
		runUci()
		return
	}

	switch os.Args[1] {
	case "version":
		printVersionInfo()
	case "uci":
		runUci()
	case "play":
		runPlay(os.Args[2:])
	case "perft":
		runPerft(os.Args[2:])
	default:
		runUci()
	}
}

func printVersionInfo() {
	out.Printf("chessgo %s\n", version)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}

// runUci starts the stdin/stdout UCI protocol loop (§4.12/§6), the
// default mode when no subcommand is given so the binary drops straight
// into a chess GUI's expected invocation.
func runUci() {
	config.ConfFile = "./config.toml"
	config.Setup()
	logging.GetLog("main")

	h := uci.NewHandler(config.Settings.Search.TTSizeMb)
	h.Loop()
}

// runPlay starts the interactive terminal adapter (§4.14).
func runPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	fen := fs.String("fen", position.StartFEN, "starting position")
	color := fs.String("color", "white", "human side to move (white|black)")
	depth := fs.Int("depth", 6, "computer search depth")
	ttSize := fs.Int("hash", 64, "transposition table size in MB")
	_ = fs.Parse(args)

	config.ConfFile = "./config.toml"
	config.Setup()
	logging.GetLog("main")

	human := White
	if *color == "black" {
		human = Black
	}

	eng := engine.New(*ttSize)
	defer eng.Close()
	if err := eng.SetPosition(*fen, nil); err != nil {
		fmt.Fprintf(os.Stderr, "invalid starting position: %v\n", err)
		os.Exit(1)
	}

	limits := search.Limits{MaxDepth: *depth}
	model := tui.NewModel(eng, human, limits)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// runPerft runs a divide-perft at the requested depth: one legal root
// move per goroutine, each against its own position copy, fanned out
// with errgroup, which waits for every branch before the per-move counts
// and the total are printed (§5's ambient-concurrency note: the search itself stays
// single-threaded, but perft's independent subtrees are a natural fit
// for a bounded worker fan-out).
func runPerft(args []string) {
	fs := flag.NewFlagSet("perft", flag.ExitOnError)
	fen := fs.String("fen", position.StartFEN, "position to run perft from")
	depth := fs.Int("depth", 5, "perft depth")
	cpuProfile := fs.Bool("profile", false, "write a CPU profile of this run to ./cpu.pprof")
	_ = fs.Parse(args)

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	pos, err := position.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid fen: %v\n", err)
		os.Exit(1)
	}

	if *depth <= 0 {
		out.Println("perft: depth must be >= 1")
		return
	}

	var buf [256]Move
	roots := pos.GenerateLegal(buf[:0])

	type divideResult struct {
		mv    Move
		nodes uint64
	}
	results := make([]divideResult, len(roots))

	g, _ := errgroup.WithContext(context.Background())
	for i, mv := range roots {
		i, mv := i, mv
		g.Go(func() error {
			branch := pos.Clone()
			branch.MakeMove(mv)
			results[i] = divideResult{mv: mv, nodes: branch.Perft(*depth - 1)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "perft: %v\n", err)
		os.Exit(1)
	}

	var total uint64
	for _, r := range results {
		out.Printf("%s: %d\n", r.mv.StringUci(), r.nodes)
		total += r.nodes
	}
	out.Printf("\nNodes searched: %d\n", total)
}
