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
	"github.com/frankkopp/chesscore/internal/evaluator"
	"github.com/frankkopp/chesscore/internal/game"
	"github.com/frankkopp/chesscore/internal/transpositiontable"
	"github.com/frankkopp/chesscore/internal/types"
)

// runAlphaBeta drives a single fail-soft alpha-beta search at maxDepth,
// picking the root move with the highest score; a strictly higher score
// replaces the incumbent, so ties keep the first move found.
func (e *Engine) runAlphaBeta(ctx context.Context, b *board.Board, rootSide types.Color, maxDepth int, rootMoves []board.Move) Result {
	lower := config.Settings.Eval.MinScore
	upper := config.Settings.Eval.MaxScore

	best := Result{}
	for _, m := range rootMoves {
		if e.cancelled(ctx) {
			best.Aborted = true
			return best
		}
		mv := m
		mv.Apply(b)
		score := e.alphabeta(ctx, b, rootSide, rootSide.Opponent(), maxDepth-1, lower, upper)
		mv.Undo(b)

		if !best.HasMove || score > best.Score {
			best = Result{Move: mv, HasMove: true, Score: score, Depth: maxDepth}
			if score > lower {
				lower = score
			}
		}
	}
	return best
}

// alphabeta is fail-soft: its return value may fall outside (lower, upper),
// in which case it encodes a bound rather than an exact score, classified
// and cached as such.
func (e *Engine) alphabeta(ctx context.Context, b *board.Board, rootSide, side types.Color, remainingDepth, lower, upper int) int {
	e.nodes++
	origLower, origUpper := lower, upper

	if e.tt != nil {
		if entry, ok := e.tt.Get(b, side); ok && entry.Depth >= remainingDepth {
			switch entry.Bound {
			case transpositiontable.Exact:
				return entry.Score
			case transpositiontable.Lower:
				if entry.Score > lower {
					lower = entry.Score
				}
			case transpositiontable.Upper:
				if entry.Score < upper {
					upper = entry.Score
				}
			}
			if lower >= upper {
				return entry.Score
			}
		}
	}

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
		score := e.alphabeta(ctx, b, rootSide, side.Opponent(), remainingDepth-1, lower, upper)
		mv.Undo(b)

		if first {
			best = score
			first = false
		}
		if maximizing {
			if score > best {
				best = score
			}
			if best > lower {
				lower = best
			}
		} else {
			if score < best {
				best = score
			}
			if best < upper {
				upper = best
			}
		}
		if lower >= upper {
			break
		}
		if e.cancelled(ctx) {
			break
		}
	}

	bound := transpositiontable.Exact
	switch {
	case best >= origUpper:
		bound = transpositiontable.Lower
	case best <= origLower:
		bound = transpositiontable.Upper
	}
	if e.tt != nil {
		e.tt.Put(b, side, best, remainingDepth, bound)
	}
	return best
}
