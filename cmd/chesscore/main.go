/*
 * chesscore - a reversible, board-agnostic chess rules and search engine
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Command chesscore is an illustrative driver for the search engine: it
// plays a fixed number of plies against itself from the standard starting
// position and prints the chosen move and search stats at each step. It is
// not a controller; there is no interactive input or renderer here.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chesscore/internal/config"
	"github.com/frankkopp/chesscore/internal/evaluator"
	"github.com/frankkopp/chesscore/internal/game"
	"github.com/frankkopp/chesscore/internal/search"
	"github.com/frankkopp/chesscore/internal/transpositiontable"
)

var out = message.NewPrinter(language.English)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	strategy := flag.String("strategy", "", "search strategy: minimax|alphabeta|mtdf (default from config)")
	depth := flag.Int("depth", 0, "search depth in plies (default from config)")
	plies := flag.Int("plies", 10, "number of plies to self-play before stopping")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of the self-play run to ./")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	strat := search.Strategy(config.Settings.Search.DefaultStrategy)
	if *strategy != "" {
		strat = search.Strategy(*strategy)
	}
	searchDepth := config.Settings.Search.DefaultDepth
	if *depth > 0 {
		searchDepth = *depth
	}

	g := game.New()
	tt := transpositiontable.New(config.Settings.Search.TTSizeEntries)
	engine := search.NewEngine(tt, evaluator.Default)

	for i := 0; i < *plies; i++ {
		if g.IsGameOver() {
			fmt.Printf("game over, %s to move has no legal moves\n", g.CurrentPlayer())
			break
		}

		ctx, cancel := context.Background(), context.CancelFunc(func() {})
		if ms := config.Settings.Search.TimeLimitMillis; ms > 0 {
			ctx, cancel = context.WithTimeout(context.Background(), time.Duration(ms)*time.Millisecond)
		}
		res, err := engine.BestMove(ctx, g, strat, searchDepth, g.CurrentPlayer())
		cancel()
		if err != nil {
			fmt.Fprintf(os.Stderr, "search failed: %v\n", err)
			os.Exit(1)
		}
		if !res.HasMove {
			fmt.Println("search found no move at a non-terminal position, aborting")
			break
		}

		if err := g.MakeMove(res.Move.Src.Row, res.Move.Src.Col, res.Move.Dst.Row, res.Move.Dst.Col); err != nil {
			fmt.Fprintf(os.Stderr, "applying searched move failed: %v\n", err)
			os.Exit(1)
		}

		out.Printf("ply %d: played %s (score %d, nodes %d, %s)\n",
			i+1, res.Move, res.Score, res.Nodes, res.Duration)
	}

	stats := tt.Stats()
	out.Printf("transposition table: %d entries, %d puts, %d gets, %d hits\n",
		stats.Entries, stats.Puts, stats.Gets, stats.Hits)
}
