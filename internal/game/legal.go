/*
 * chesscore - a reversible, board-agnostic chess rules and search engine
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package game owns the legality filter and the Game model: the board plus
// side-to-move plus move history, with make/undo/query operations.
package game

import (
	"github.com/frankkopp/chesscore/internal/board"
	"github.com/frankkopp/chesscore/internal/movegen"
	"github.com/frankkopp/chesscore/internal/types"
)

// LegalMoves returns every legal move of side on b: pseudo-legal moves that
// either capture the opponent's king outright, or that leave the mover's
// king un-attacked after being applied and undone. If side has no king on
// the board it has already lost, and the empty slice is returned.
func LegalMoves(b *board.Board, side types.Color) []board.Move {
	kingPos, hasKing := b.FindKing(side)
	if !hasKing {
		return nil
	}

	pseudo := movegen.AllPseudoLegal(b, side)
	var legal []board.Move
	for i := range pseudo {
		m := pseudo[i]

		if target := b.Get(m.Dst.Row, m.Dst.Col); target != nil && target.Owner != side && target.Kind == types.King {
			legal = append(legal, m)
			continue
		}

		m.Apply(b)
		safe := !movegen.IsAttacked(b, kingPosAfter(b, side, kingPos, m), side)
		m.Undo(b)
		if safe {
			legal = append(legal, m)
		}
	}
	return legal
}

// kingPosAfter returns where side's king sits on b immediately after m has
// been applied: m.Dst if the king itself just moved (regular or castling),
// otherwise the king's unchanged position.
func kingPosAfter(b *board.Board, side types.Color, before types.Position, m board.Move) types.Position {
	if m.Src == before {
		return m.Dst
	}
	return before
}

// CombinedLegalMoves returns the concatenation of both sides' legal moves,
// the combined legal-move list handed to the leaf evaluator and to the
// mobility term specifically.
func CombinedLegalMoves(b *board.Board, side types.Color) []board.Move {
	combined := LegalMoves(b, side)
	combined = append(combined, LegalMoves(b, side.Opponent())...)
	return combined
}

// LegalMovesFrom filters LegalMoves to those whose source is pos.
func LegalMovesFrom(b *board.Board, side types.Color, pos types.Position) []board.Move {
	var out []board.Move
	for _, m := range LegalMoves(b, side) {
		if m.Src == pos {
			out = append(out, m)
		}
	}
	return out
}
