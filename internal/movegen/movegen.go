/*
 * chesscore - a reversible, board-agnostic chess rules and search engine
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package movegen generates pseudo-legal moves: geometry and blocking only,
// with no notion of king safety. Legality filtering lives one layer up, in
// package game.
package movegen

import (
	"github.com/frankkopp/chesscore/internal/board"
	"github.com/frankkopp/chesscore/internal/types"
)

var crossDirs = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var diagDirs = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var queenDirs = append(append([][2]int{}, crossDirs...), diagDirs...)
var kingDeltas = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var knightDeltas = [][2]int{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {2, 1}, {2, -1}, {-2, 1}, {-2, -1}}

// PseudoLegalFrom generates every pseudo-legal move for the piece at pos,
// including castling candidates if it is a king. Panics if pos is empty.
func PseudoLegalFrom(b *board.Board, pos types.Position) []board.Move {
	p := b.Get(pos.Row, pos.Col)
	if p == nil {
		panic("movegen: PseudoLegalFrom called on empty square")
	}
	return genFrom(b, pos, p, true)
}

// AllPseudoLegal generates every pseudo-legal move for every piece owned by
// side, including castling candidates.
func AllPseudoLegal(b *board.Board, side types.Color) []board.Move {
	return allFrom(b, side, true)
}

// allFrom generates every pseudo-legal move for side's pieces; includeCastling
// controls whether king moves also emit castling candidates. With
// includeCastling false this is a non-recursive opponent attack set: it
// never depends on the opponent's own castling rights.
func allFrom(b *board.Board, side types.Color, includeCastling bool) []board.Move {
	height, width := b.Dimensions()
	var moves []board.Move
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			p := b.Get(r, c)
			if p == nil || p.Owner != side {
				continue
			}
			moves = append(moves, genFrom(b, types.NewPosition(r, c), p, includeCastling)...)
		}
	}
	return moves
}

func genFrom(b *board.Board, pos types.Position, p *types.Piece, includeCastling bool) []board.Move {
	switch p.Kind {
	case types.King:
		return genKing(b, pos, p, includeCastling)
	case types.Queen:
		return genSlides(b, pos, p, queenDirs)
	case types.Castle:
		return genSlides(b, pos, p, crossDirs)
	case types.Bishop:
		return genSlides(b, pos, p, diagDirs)
	case types.Knight:
		return genLeaps(b, pos, p, knightDeltas)
	case types.Pawn:
		return genPawn(b, pos, p)
	default:
		return nil
	}
}

func genSlides(b *board.Board, pos types.Position, p *types.Piece, dirs [][2]int) []board.Move {
	var moves []board.Move
	height, width := b.Dimensions()
	for _, d := range dirs {
		cur := pos
		for {
			cur = cur.Add(d[0], d[1])
			if !cur.InBounds(height, width) {
				break
			}
			target := b.Get(cur.Row, cur.Col)
			if target == nil {
				moves = append(moves, board.NewRegular(pos, cur))
				continue
			}
			if target.Owner != p.Owner {
				moves = append(moves, board.NewRegular(pos, cur))
			}
			break
		}
	}
	return moves
}

func genLeaps(b *board.Board, pos types.Position, p *types.Piece, deltas [][2]int) []board.Move {
	var moves []board.Move
	height, width := b.Dimensions()
	for _, d := range deltas {
		cur := pos.Add(d[0], d[1])
		if !cur.InBounds(height, width) {
			continue
		}
		target := b.Get(cur.Row, cur.Col)
		if target != nil && target.Owner == p.Owner {
			continue
		}
		moves = append(moves, board.NewRegular(pos, cur))
	}
	return moves
}

func genKing(b *board.Board, pos types.Position, p *types.Piece, includeCastling bool) []board.Move {
	moves := genLeaps(b, pos, p, kingDeltas)
	if includeCastling {
		moves = append(moves, genCastlingCandidates(b, pos, p)...)
	}
	return moves
}

func promotionRow(b *board.Board, side types.Color) int {
	height, _ := b.Dimensions()
	if side == types.Top {
		return 0
	}
	return height - 1
}

func genPawn(b *board.Board, pos types.Position, p *types.Piece) []board.Move {
	var moves []board.Move
	height, width := b.Dimensions()
	fwd := p.Owner.Forward()
	promoRow := promotionRow(b, p.Owner)

	emit := func(dst types.Position) {
		if dst.Row == promoRow {
			moves = append(moves, board.NewPromotion(pos, dst))
		} else {
			moves = append(moves, board.NewRegular(pos, dst))
		}
	}

	one := pos.Add(fwd, 0)
	if one.InBounds(height, width) && b.Get(one.Row, one.Col) == nil {
		emit(one)
		if !p.HasMoved {
			two := pos.Add(2*fwd, 0)
			if two.InBounds(height, width) && b.Get(two.Row, two.Col) == nil {
				emit(two)
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		diag := pos.Add(fwd, dc)
		if !diag.InBounds(height, width) {
			continue
		}
		target := b.Get(diag.Row, diag.Col)
		if target != nil && target.Owner != p.Owner {
			emit(diag)
		}
	}

	return moves
}

// genCastlingCandidates emits pseudo-legal castling moves for the king at
// pos. It walks along the king's row in both directions looking for an
// unmoved same-owner rook with an unbroken, non-empty gap of empty squares
// between it and the king, then checks that the king's current square,
// every square it traverses, and its destination are not attacked by any
// non-castling pseudo-legal opponent move.
func genCastlingCandidates(b *board.Board, pos types.Position, king *types.Piece) []board.Move {
	if king.HasMoved {
		return nil
	}
	_, width := b.Dimensions()
	var moves []board.Move

	for _, dir := range [2]int{1, -1} {
		rookCol := pos.Col + dir
		gap := 0
		for rookCol >= 0 && rookCol < width && b.Get(pos.Row, rookCol) == nil {
			rookCol += dir
			gap++
		}
		if rookCol < 0 || rookCol >= width {
			continue
		}
		rook := b.Get(pos.Row, rookCol)
		if rook == nil || rook.Owner != king.Owner || rook.Kind != types.Castle || rook.HasMoved || gap < 1 {
			continue
		}

		kingDst := pos.Col + dir
		if gap >= 2 {
			kingDst = pos.Col + 2*dir
		}

		if attackedAlongPath(b, pos.Row, pos.Col, kingDst, dir, king.Owner) {
			continue
		}
		moves = append(moves, board.NewCastling(pos, types.NewPosition(pos.Row, kingDst)))
	}
	return moves
}

// attackedAlongPath reports whether any square from fromCol to toCol
// (inclusive, stepping by dir) on row r is attacked by the opponent of
// side, using only non-castling pseudo-legal opponent moves.
func attackedAlongPath(b *board.Board, r, fromCol, toCol, dir int, side types.Color) bool {
	opponent := side.Opponent()
	opponentMoves := allFrom(b, opponent, false)
	for col := fromCol; ; col += dir {
		for _, m := range opponentMoves {
			if m.Dst.Row == r && m.Dst.Col == col {
				return true
			}
		}
		if col == toCol {
			break
		}
	}
	return false
}

// IsAttacked reports whether pos is reachable by any non-castling
// pseudo-legal move of the opponent of side.
func IsAttacked(b *board.Board, pos types.Position, side types.Color) bool {
	for _, m := range allFrom(b, side.Opponent(), false) {
		if m.Dst == pos {
			return true
		}
	}
	return false
}
