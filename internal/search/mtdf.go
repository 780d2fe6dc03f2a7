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
	"github.com/frankkopp/chesscore/internal/config"
	"github.com/frankkopp/chesscore/internal/types"
)

// runMTDF drives alpha-beta with a sequence of null-window searches that
// binary-search the exact minimax value for each root move, then keeps the
// root move whose null-window search converged to the highest score.
func (e *Engine) runMTDF(ctx context.Context, b *board.Board, rootSide types.Color, maxDepth int, rootMoves []board.Move) Result {
	best := Result{}
	for _, m := range rootMoves {
		if e.cancelled(ctx) {
			best.Aborted = true
			return best
		}
		mv := m
		mv.Apply(b)
		score := e.mtdf(ctx, b, rootSide, rootSide.Opponent(), maxDepth-1)
		mv.Undo(b)

		if !best.HasMove || score > best.Score {
			best = Result{Move: mv, HasMove: true, Score: score, Depth: maxDepth}
		}
	}
	return best
}

// mtdf repeatedly narrows (scoreLower, scoreUpper) with zero-width
// alpha-beta probes until they meet, returning the last probe's score.
func (e *Engine) mtdf(ctx context.Context, b *board.Board, rootSide, side types.Color, depth int) int {
	scoreLower := config.Settings.Eval.MinScore
	scoreUpper := config.Settings.Eval.MaxScore

	score := scoreLower
	for scoreLower < scoreUpper {
		if e.cancelled(ctx) {
			break
		}
		// floor of the midpoint; Go's / truncates toward zero for negatives
		sum := scoreLower + scoreUpper
		mid := sum / 2
		if sum < 0 && sum%2 != 0 {
			mid--
		}
		windowUpper := mid + 1
		score = e.alphabeta(ctx, b, rootSide, side, depth, windowUpper-1, windowUpper)
		if score < windowUpper {
			scoreUpper = score
		} else {
			scoreLower = score
		}
	}
	return score
}
