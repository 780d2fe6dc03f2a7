/*
 * chesscore - a reversible, board-agnostic chess rules and search engine
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package search implements the three adversarial searchers over a Board:
// naive minimax, fail-soft alpha-beta with a transposition table, and an
// iterative MTD-f driver over alpha-beta. All three share the bestMove(game)
// -> Move contract; cancellation is cooperative via context.Context and an
// explicit Stop().
package search

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chesscore/internal/assert"
	"github.com/frankkopp/chesscore/internal/board"
	"github.com/frankkopp/chesscore/internal/clog"
	"github.com/frankkopp/chesscore/internal/evaluator"
	"github.com/frankkopp/chesscore/internal/game"
	"github.com/frankkopp/chesscore/internal/transpositiontable"
	"github.com/frankkopp/chesscore/internal/types"
	"github.com/frankkopp/chesscore/internal/util"
)

var log = clog.GetSearchLog()

// Strategy selects which of the three searchers Engine.BestMove runs.
type Strategy string

const (
	Minimax   Strategy = "minimax"
	AlphaBeta Strategy = "alphabeta"
	MTDF      Strategy = "mtdf"
)

// Result is what a completed (or cancelled) search reports at the root.
type Result struct {
	Move     board.Move
	HasMove  bool
	Score    int
	Depth    int
	Nodes    uint64
	Duration time.Duration
	Aborted  bool
}

// Engine runs a search over a borrowed board, threading a single scratch
// board through apply/undo so the move stack observed is exactly the undo
// stack applied. It is not safe to share an
// Engine across concurrent BestMove calls; the internal semaphore enforces
// that by blocking a second caller until the first completes.
type Engine struct {
	tt      *transpositiontable.Table
	eval    evaluator.Func
	sem     *semaphore.Weighted
	cancel  *util.Bool
	nodes   uint64
	printer *message.Printer
}

// NewEngine builds an Engine over the given transposition table and
// evaluator. A nil table disables caching for every strategy. With a table,
// Minimax only stores into it and never reads from it.
func NewEngine(tt *transpositiontable.Table, eval evaluator.Func) *Engine {
	if eval == nil {
		eval = evaluator.Default
	}
	return &Engine{
		tt:      tt,
		eval:    eval,
		sem:     semaphore.NewWeighted(1),
		cancel:  util.NewBool(false),
		printer: message.NewPrinter(language.English),
	}
}

// Stop requests cooperative cancellation of any in-flight BestMove call.
func (e *Engine) Stop() {
	e.cancel.Store(true)
}

// BestMove runs the selected strategy to maxDepth for rootSide on a copy of
// g's board and returns the chosen move. Cancellation is cooperative: ctx's
// deadline and a prior Stop() are both polled at every node; a cancelled
// search returns the best move found so far at the root (Result.Aborted =
// true), or HasMove = false if none completed yet.
func (e *Engine) BestMove(ctx context.Context, g *game.Game, strategy Strategy, maxDepth int, rootSide types.Color) (Result, error) {
	if err := e.sem.Acquire(ctx, 1); err != nil {
		return Result{}, err
	}
	defer e.sem.Release(1)

	e.cancel.Store(false)
	e.nodes = 0
	b := g.BoardCopy()

	legalRoot := game.LegalMoves(b, rootSide)
	assert.Assert(len(legalRoot) > 0, "BestMove invoked on a terminal position")

	start := time.Now()
	var res Result
	switch strategy {
	case Minimax:
		res = e.runMinimax(ctx, b, rootSide, maxDepth, legalRoot)
	case AlphaBeta:
		res = e.runAlphaBeta(ctx, b, rootSide, maxDepth, legalRoot)
	case MTDF:
		res = e.runMTDF(ctx, b, rootSide, maxDepth, legalRoot)
	default:
		return Result{}, fmt.Errorf("search: unknown strategy %q", strategy)
	}
	res.Duration = time.Since(start)
	res.Nodes = e.nodes

	log.Debugf("%s depth=%d nodes=%s duration=%s nps=%s",
		strategy, res.Depth, e.printer.Sprintf("%d", res.Nodes), res.Duration,
		e.printer.Sprintf("%d", util.Nps(res.Nodes, res.Duration)))

	return res, nil
}

func (e *Engine) cancelled(ctx context.Context) bool {
	if e.cancel.Load() {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
