/*
 * chesscore - a reversible, board-agnostic chess rules and search engine
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package game

import (
	"fmt"

	"github.com/frankkopp/chesscore/internal/board"
	"github.com/frankkopp/chesscore/internal/chesserr"
	"github.com/frankkopp/chesscore/internal/clog"
	"github.com/frankkopp/chesscore/internal/config"
	"github.com/frankkopp/chesscore/internal/types"
)

var log = clog.GetLog()

// Game is a board plus side-to-move plus move history. It is the unit of
// play the external controller and the search engine both operate on.
type Game struct {
	b       *board.Board
	side    types.Color
	history []board.Move
}

// New constructs a game on a board of config.Settings.Board dimensions
// (8x8 by default), Bottom to move. On an 8-wide board it places the
// standard setup: back ranks in Castle, Knight, Bishop, Queen, King, Bishop,
// Knight, Castle order, pawns on the adjacent rows; any other width leaves
// the board empty.
func New() *Game {
	height := config.Settings.Board.Height
	width := config.Settings.Board.Width
	g := &Game{b: board.New(height, width), side: types.Bottom}
	g.setupStandard()
	return g
}

// backRank is the standard piece order for an 8-wide board.
var backRank = []types.PieceKind{
	types.Castle, types.Knight, types.Bishop, types.Queen,
	types.King, types.Bishop, types.Knight, types.Castle,
}

func (g *Game) setupStandard() {
	height, width := g.b.Dimensions()
	if width != len(backRank) {
		log.Warningf("board width %d does not match standard back rank length %d; skipping setup", width, len(backRank))
		return
	}
	for c, kind := range backRank {
		top := types.NewPiece(types.Top, kind)
		bottom := types.NewPiece(types.Bottom, kind)
		g.b.Set(height-1, c, &top)
		g.b.Set(0, c, &bottom)

		topPawn := types.NewPiece(types.Top, types.Pawn)
		bottomPawn := types.NewPiece(types.Bottom, types.Pawn)
		g.b.Set(height-2, c, &topPawn)
		g.b.Set(1, c, &bottomPawn)
	}
}

// CurrentPlayer returns the side to move.
func (g *Game) CurrentPlayer() types.Color {
	return g.side
}

// Dimensions returns the board's (height, width).
func (g *Game) Dimensions() (int, int) {
	return g.b.Dimensions()
}

// PieceAt returns the piece at (r, c), or nil if empty.
func (g *Game) PieceAt(r, c int) (*types.Piece, error) {
	if !g.b.InBounds(r, c) {
		return nil, fmt.Errorf("%w: (%d,%d)", chesserr.ErrOutOfBounds, r, c)
	}
	return g.b.Get(r, c), nil
}

// LegalTargetsFrom returns every destination position reachable by a legal
// move of the side to move whose source is (r, c). Returns an error only
// for an out-of-bounds index; an empty, non-empty-owner, or dead-end square
// simply yields an empty slice.
func (g *Game) LegalTargetsFrom(r, c int) ([]types.Position, error) {
	if !g.b.InBounds(r, c) {
		return nil, fmt.Errorf("%w: (%d,%d)", chesserr.ErrOutOfBounds, r, c)
	}
	pos := types.NewPosition(r, c)
	moves := LegalMovesFrom(g.b, g.side, pos)
	seen := make(map[types.Position]bool, len(moves))
	var out []types.Position
	for _, m := range moves {
		if !seen[m.Dst] {
			seen[m.Dst] = true
			out = append(out, m.Dst)
		}
	}
	return out, nil
}

// IsGameOver reports whether the side to move has no legal moves.
func (g *Game) IsGameOver() bool {
	return len(LegalMoves(g.b, g.side)) == 0
}

// MakeMove applies the legal move of the side to move from (sr, sc) to
// (dr, dc), pushes it onto the history, and flips the side to move. Where
// two legal moves share that pair (a one-step king move and a castling move
// onto the same square), the first in generation order, the one-step king
// move, is applied.
func (g *Game) MakeMove(sr, sc, dr, dc int) error {
	if !g.b.InBounds(sr, sc) {
		return fmt.Errorf("%w: source (%d,%d) is out of bounds", chesserr.ErrInvalidMove, sr, sc)
	}
	src := g.b.Get(sr, sc)
	if src == nil {
		return fmt.Errorf("%w: source (%d,%d) is empty", chesserr.ErrInvalidMove, sr, sc)
	}
	if src.Owner != g.side {
		return fmt.Errorf("%w: source (%d,%d) is owned by the opponent", chesserr.ErrInvalidMove, sr, sc)
	}

	srcPos := types.NewPosition(sr, sc)
	dstPos := types.NewPosition(dr, dc)
	var chosen *board.Move
	for _, m := range LegalMovesFrom(g.b, g.side, srcPos) {
		if m.Dst == dstPos {
			mc := m
			chosen = &mc
			break
		}
	}
	if chosen == nil {
		return fmt.Errorf("%w: no legal move %s -> %s", chesserr.ErrInvalidMove, srcPos, dstPos)
	}

	chosen.Apply(g.b)
	g.history = append(g.history, *chosen)
	g.side = g.side.Opponent()
	log.Debugf("applied %s, side to move is now %s", chosen, g.side)
	return nil
}

// UndoLastMove pops and reverses the most recent move, flipping the side to
// move back. Returns chesserr.ErrInvalidUndo if history is empty.
func (g *Game) UndoLastMove() error {
	if len(g.history) == 0 {
		return chesserr.ErrInvalidUndo
	}
	last := g.history[len(g.history)-1]
	last.Undo(g.b)
	g.history = g.history[:len(g.history)-1]
	g.side = g.side.Opponent()
	return nil
}

// Restart resets the game to its initial state.
func (g *Game) Restart() {
	height, width := g.b.Dimensions()
	g.b = board.New(height, width)
	g.side = types.Bottom
	g.history = nil
	g.setupStandard()
}

// BoardCopy returns an independent snapshot of the current board, suitable
// for handing to the search engine.
func (g *Game) BoardCopy() *board.Board {
	return g.b.Copy()
}

// History returns the moves applied so far, earliest first. The returned
// slice is owned by the caller.
func (g *Game) History() []board.Move {
	out := make([]board.Move, len(g.history))
	copy(out, g.history)
	return out
}
