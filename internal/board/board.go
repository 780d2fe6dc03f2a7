/*
 * chesscore - a reversible, board-agnostic chess rules and search engine
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package board holds the grid representation and the reversible Move
// primitive. It knows nothing about legality or search; it only knows how
// to store pieces, copy itself, and apply/undo moves exactly.
package board

import (
	"fmt"
	"strings"

	"github.com/frankkopp/chesscore/internal/chesserr"
	"github.com/frankkopp/chesscore/internal/types"
)

// Board is a height x width grid of optional pieces. The zero value is not
// usable; construct with New.
type Board struct {
	height int
	width  int
	cells  [][]*types.Piece
}

// New creates an empty board of the given dimensions.
func New(height, width int) *Board {
	cells := make([][]*types.Piece, height)
	for r := range cells {
		cells[r] = make([]*types.Piece, width)
	}
	return &Board{height: height, width: width, cells: cells}
}

// Dimensions returns the board's (height, width).
func (b *Board) Dimensions() (int, int) {
	return b.height, b.width
}

// InBounds reports whether (r, c) is a valid index into the board.
func (b *Board) InBounds(r, c int) bool {
	return r >= 0 && r < b.height && c >= 0 && c < b.width
}

// Get returns the piece at (r, c), or nil if the square is empty.
// Panics with chesserr.ErrOutOfBounds on an invalid index.
func (b *Board) Get(r, c int) *types.Piece {
	if !b.InBounds(r, c) {
		panic(fmt.Errorf("%w: (%d,%d) on %dx%d board", chesserr.ErrOutOfBounds, r, c, b.height, b.width))
	}
	return b.cells[r][c]
}

// Set places p at (r, c), or clears the square if p is nil.
// Panics with chesserr.ErrOutOfBounds on an invalid index.
func (b *Board) Set(r, c int, p *types.Piece) {
	if !b.InBounds(r, c) {
		panic(fmt.Errorf("%w: (%d,%d) on %dx%d board", chesserr.ErrOutOfBounds, r, c, b.height, b.width))
	}
	b.cells[r][c] = p
}

// Copy returns an independent deep copy of b.
func (b *Board) Copy() *Board {
	out := New(b.height, b.width)
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			if p := b.cells[r][c]; p != nil {
				cp := *p
				out.cells[r][c] = &cp
			}
		}
	}
	return out
}

// Equals reports whether b and o have identical dimensions and, cell by
// cell, identical (nil-ness or value) pieces.
func (b *Board) Equals(o *Board) bool {
	if o == nil || b.height != o.height || b.width != o.width {
		return false
	}
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			bp, op := b.cells[r][c], o.cells[r][c]
			if (bp == nil) != (op == nil) {
				return false
			}
			if bp != nil && *bp != *op {
				return false
			}
		}
	}
	return true
}

// Key returns a canonical, collision-free string encoding of the board's
// full content (dimensions plus every cell). It is suitable as a map key
// for anything that requires true structural equality rather than a
// hash-probe, such as the transposition table.
func (b *Board) Key() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dx%d:", b.height, b.width)
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			p := b.cells[r][c]
			if p == nil {
				sb.WriteByte('.')
				continue
			}
			if p.Owner == types.Top {
				sb.WriteByte('t')
			} else {
				sb.WriteByte('b')
			}
			sb.WriteByte(p.Kind.Char())
			if p.HasMoved {
				sb.WriteByte('+')
			} else {
				sb.WriteByte('-')
			}
		}
	}
	return sb.String()
}

// FindKing returns the position of side's king, and false if it has none.
func (b *Board) FindKing(side types.Color) (types.Position, bool) {
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			p := b.cells[r][c]
			if p != nil && p.Owner == side && p.Kind == types.King {
				return types.NewPosition(r, c), true
			}
		}
	}
	return types.Position{}, false
}

// String renders a compact grid, rank 0 at the bottom, for debug output.
func (b *Board) String() string {
	var sb strings.Builder
	for r := b.height - 1; r >= 0; r-- {
		for c := 0; c < b.width; c++ {
			p := b.cells[r][c]
			if p == nil {
				sb.WriteByte('.')
				continue
			}
			ch := p.Kind.Char()
			if p.Owner == types.Bottom {
				ch = ch | 0x20 // lower-case for Bottom
			}
			sb.WriteByte(ch)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
