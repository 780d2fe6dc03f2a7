/*
 * chesscore - a reversible, board-agnostic chess rules and search engine
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package search

import (
	"context"

	"github.com/frankkopp/chesscore/internal/board"
	"github.com/frankkopp/chesscore/internal/evaluator"
	"github.com/frankkopp/chesscore/internal/game"
	"github.com/frankkopp/chesscore/internal/transpositiontable"
	"github.com/frankkopp/chesscore/internal/types"
)

// runMinimax expands every root move to maxDepth-1 and keeps the one with
// the highest score for rootSide, breaking ties in favor of the first move
// found.
func (e *Engine) runMinimax(ctx context.Context, b *board.Board, rootSide types.Color, maxDepth int, rootMoves []board.Move) Result {
	best := Result{Score: evaluator.Terminal(rootSide, rootSide.Opponent())}
	for _, m := range rootMoves {
		if e.cancelled(ctx) {
			best.Aborted = true
			return best
		}
		mv := m
		mv.Apply(b)
		score := e.minimax(ctx, b, rootSide, rootSide.Opponent(), maxDepth-1)
		mv.Undo(b)

		if !best.HasMove || score > best.Score {
			best = Result{Move: mv, HasMove: true, Score: score, Depth: maxDepth}
		}
	}
	return best
}

// minimax evaluates the node at (b, side) to move, remainingDepth plies from
// here, from rootSide's perspective (higher is better for rootSide).
func (e *Engine) minimax(ctx context.Context, b *board.Board, rootSide, side types.Color, remainingDepth int) int {
	e.nodes++

	moves := game.LegalMoves(b, side)
	if len(moves) == 0 {
		score := evaluator.Terminal(rootSide, side)
		if e.tt != nil {
			e.tt.Put(b, side, score, remainingDepth, transpositiontable.Exact)
		}
		return score
	}

	if remainingDepth == 0 || e.cancelled(ctx) {
		score := e.eval(b, rootSide, game.CombinedLegalMoves(b, rootSide))
		if e.tt != nil {
			e.tt.Put(b, side, score, 0, transpositiontable.Exact)
		}
		return score
	}

	maximizing := side == rootSide
	var best int
	first := true
	for _, m := range moves {
		mv := m
		mv.Apply(b)
		score := e.minimax(ctx, b, rootSide, side.Opponent(), remainingDepth-1)
		mv.Undo(b)

		if first {
			best = score
			first = false
			continue
		}
		if maximizing && score > best {
			best = score
		} else if !maximizing && score < best {
			best = score
		}
	}

	if e.tt != nil {
		e.tt.Put(b, side, best, remainingDepth, transpositiontable.Exact)
	}
	return best
}
