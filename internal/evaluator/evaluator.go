/*
 * chesscore - a reversible, board-agnostic chess rules and search engine
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package evaluator scores a leaf position for the search engine: material,
// pawn structure, and mobility, combined into a single integer from
// rootSide's perspective.
package evaluator

import (
	"github.com/frankkopp/chesscore/internal/board"
	"github.com/frankkopp/chesscore/internal/config"
	"github.com/frankkopp/chesscore/internal/types"
)

// Func scores a leaf position: b is the board, rootSide is the side the
// score is relative to (positive favors rootSide), and moves is the
// combined legal-move list of both sides at this node (used for the
// mobility term: +bonus per rootSide move, -bonus per opponent move).
type Func func(b *board.Board, rootSide types.Color, moves []board.Move) int

// Material returns the per-kind point value configured for evaluation.
func Material(kind types.PieceKind) int {
	switch kind {
	case types.Pawn:
		return config.Settings.Eval.PawnValue
	case types.Knight:
		return config.Settings.Eval.KnightValue
	case types.Bishop:
		return config.Settings.Eval.BishopValue
	case types.Castle:
		return config.Settings.Eval.CastleValue
	case types.Queen:
		return config.Settings.Eval.QueenValue
	case types.King:
		return config.Settings.Eval.KingValue
	default:
		return 0
	}
}

// Default is the standard evaluator: material, pawn structure bonuses, and
// mobility, per the configured weights in config.Settings.Eval.
func Default(b *board.Board, rootSide types.Color, moves []board.Move) int {
	score := 0
	height, width := b.Dimensions()
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			p := b.Get(r, c)
			if p == nil {
				continue
			}
			value := Material(p.Kind)
			if p.Owner == rootSide {
				score += value
			} else {
				score -= value
			}
			if p.Kind == types.Pawn && p.Owner == rootSide {
				score += pawnStructureBonus(b, r, c, p)
			}
		}
	}

	for _, m := range moves {
		mover := b.Get(m.Src.Row, m.Src.Col)
		if mover == nil {
			continue
		}
		if mover.Owner == rootSide {
			score += config.Settings.Eval.MobilityBonus
		} else {
			score -= config.Settings.Eval.MobilityBonus
		}
	}

	return score
}

// pawnStructureBonus rewards a rootSide pawn for its advancement toward
// promotion, and for being blocked (doubly so if by a friendly pawn).
func pawnStructureBonus(b *board.Board, r, c int, p *types.Piece) int {
	height, _ := b.Dimensions()
	var advancement int
	if p.Owner == types.Top {
		advancement = (height - 1) - r
	} else {
		advancement = r
	}
	bonus := advancement

	ahead := r + p.Owner.Forward()
	if ahead < 0 || ahead >= height {
		return bonus
	}
	blocker := b.Get(ahead, c)
	if blocker != nil {
		bonus += config.Settings.Eval.BlockedPawnBonus
		if blocker.Owner == p.Owner && blocker.Kind == types.Pawn {
			bonus += config.Settings.Eval.DoubledPawnBonus
		}
	}
	return bonus
}

// Terminal returns the losing score for side at a node with no legal moves,
// seen from rootSide's perspective: MinScore if side == rootSide (side to
// move has been mated or stalemated), MaxScore otherwise.
func Terminal(rootSide, side types.Color) int {
	if side == rootSide {
		return config.Settings.Eval.MinScore
	}
	return config.Settings.Eval.MaxScore
}
