/*
 * chesscore - a reversible, board-agnostic chess rules and search engine
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package board

import (
	"fmt"

	"github.com/frankkopp/chesscore/internal/assert"
	"github.com/frankkopp/chesscore/internal/types"
)

// Tag identifies which of the three move shapes a Move is.
type Tag uint8

const (
	Regular Tag = iota
	Castling
	Promotion
)

func (t Tag) String() string {
	switch t {
	case Regular:
		return "Regular"
	case Castling:
		return "Castling"
	case Promotion:
		return "Promotion"
	default:
		return "Unknown"
	}
}

// Move is a tagged variant over Regular, Castling and Promotion moves. Src
// and Dst give the move's identity: two moves with the same Tag, Src and
// Dst compare equal regardless of whether either has been applied. The
// remaining fields are undo state, populated by Apply and consumed by Undo;
// they play no part in equality.
type Move struct {
	Tag Tag
	Src types.Position
	Dst types.Position

	// undo state, valid only after Apply and before Undo.
	applied       bool
	capturedAtDst *types.Piece // Regular, Promotion: whatever Dst held before Apply
	movedPiece    *types.Piece // the piece that was on Src before Apply (pre-move state)
	rookSrc       types.Position
	rookDst       types.Position
	rookPiece     *types.Piece // Castling: the rook that was on rookSrc before Apply
}

// Equal compares two moves by identity only (Tag, Src, Dst), ignoring any
// undo state either carries.
func (m Move) Equal(o Move) bool {
	return m.Tag == o.Tag && m.Src == o.Src && m.Dst == o.Dst
}

func (m Move) String() string {
	switch m.Tag {
	case Castling:
		return fmt.Sprintf("O-O(%s->%s)", m.Src, m.Dst)
	case Promotion:
		return fmt.Sprintf("%s->%s=Q", m.Src, m.Dst)
	default:
		return fmt.Sprintf("%s->%s", m.Src, m.Dst)
	}
}

// NewRegular builds a Regular move template (not yet applied).
func NewRegular(src, dst types.Position) Move {
	return Move{Tag: Regular, Src: src, Dst: dst}
}

// NewPromotion builds a Promotion move template (not yet applied).
func NewPromotion(src, dst types.Position) Move {
	return Move{Tag: Promotion, Src: src, Dst: dst}
}

// NewCastling builds a Castling move template identified by the king's
// source and destination squares. rookSrc/rookDst are resolved at Apply
// time from the board, relative to the king's travel direction, rather than
// stored up front.
func NewCastling(kingSrc, kingDst types.Position) Move {
	return Move{Tag: Castling, Src: kingSrc, Dst: kingDst}
}

// Apply performs the move on b, recording whatever state is needed for an
// exact Undo. Applying an already-applied move is undefined behavior.
func (m *Move) Apply(b *Board) {
	assert.Assert(!m.applied, "move already applied: %s", m)
	switch m.Tag {
	case Regular:
		m.applyRegular(b)
	case Castling:
		m.applyCastling(b)
	case Promotion:
		m.applyPromotion(b)
	default:
		panic(fmt.Sprintf("unknown move tag %d", m.Tag))
	}
	m.applied = true
}

// Undo reverses an Apply, restoring b to its exact pre-Apply state. Undo is
// only valid against the board state produced by the matching Apply.
func (m *Move) Undo(b *Board) {
	assert.Assert(m.applied, "undo of move never applied: %s", m)
	switch m.Tag {
	case Regular:
		m.undoRegular(b)
	case Castling:
		m.undoCastling(b)
	case Promotion:
		m.undoPromotion(b)
	default:
		panic(fmt.Sprintf("unknown move tag %d", m.Tag))
	}
	m.applied = false
}

func (m *Move) applyRegular(b *Board) {
	moving := b.Get(m.Src.Row, m.Src.Col)
	assert.Assert(moving != nil, "regular move from empty square %s", m.Src)
	m.movedPiece = moving
	m.capturedAtDst = b.Get(m.Dst.Row, m.Dst.Col)
	moved := moving.WithMoved(true)
	b.Set(m.Dst.Row, m.Dst.Col, &moved)
	b.Set(m.Src.Row, m.Src.Col, nil)
}

func (m *Move) undoRegular(b *Board) {
	b.Set(m.Src.Row, m.Src.Col, m.movedPiece)
	b.Set(m.Dst.Row, m.Dst.Col, m.capturedAtDst)
}

func (m *Move) applyPromotion(b *Board) {
	pawn := b.Get(m.Src.Row, m.Src.Col)
	assert.Assert(pawn != nil && pawn.Kind == types.Pawn, "promotion move from non-pawn square %s", m.Src)
	m.movedPiece = pawn
	m.capturedAtDst = b.Get(m.Dst.Row, m.Dst.Col)
	queen := types.NewPiece(pawn.Owner, types.Queen).WithMoved(true)
	b.Set(m.Dst.Row, m.Dst.Col, &queen)
	b.Set(m.Src.Row, m.Src.Col, nil)
}

func (m *Move) undoPromotion(b *Board) {
	b.Set(m.Src.Row, m.Src.Col, m.movedPiece)
	b.Set(m.Dst.Row, m.Dst.Col, m.capturedAtDst)
}

// applyCastling resolves the rook involved as the first non-empty square on
// the king's same row, found by walking from Dst further in the king's
// direction of travel.
func (m *Move) applyCastling(b *Board) {
	king := b.Get(m.Src.Row, m.Src.Col)
	assert.Assert(king != nil && king.Kind == types.King, "castling move from non-king square %s", m.Src)

	dir := sign(m.Dst.Col - m.Src.Col)
	_, width := b.Dimensions()
	rookCol := m.Dst.Col
	for {
		rookCol += dir
		if rookCol < 0 || rookCol >= width {
			panic(fmt.Sprintf("castling move %s has no rook beyond destination", m))
		}
		if b.Get(m.Src.Row, rookCol) != nil {
			break
		}
	}
	rookSrc := types.NewPosition(m.Src.Row, rookCol)
	rook := b.Get(rookSrc.Row, rookSrc.Col)
	assert.Assert(rook != nil && rook.Kind == types.Castle, "castling move %s found non-rook at %s", m, rookSrc)

	rookDst := types.NewPosition(m.Src.Row, m.Dst.Col-dir)

	m.movedPiece = king
	m.rookPiece = rook
	m.rookSrc = rookSrc
	m.rookDst = rookDst

	movedKing := king.WithMoved(true)
	movedRook := rook.WithMoved(true)
	b.Set(m.Src.Row, m.Src.Col, nil)
	b.Set(rookSrc.Row, rookSrc.Col, nil)
	b.Set(m.Dst.Row, m.Dst.Col, &movedKing)
	b.Set(rookDst.Row, rookDst.Col, &movedRook)
}

func (m *Move) undoCastling(b *Board) {
	b.Set(m.Dst.Row, m.Dst.Col, nil)
	b.Set(m.rookDst.Row, m.rookDst.Col, nil)
	b.Set(m.Src.Row, m.Src.Col, m.movedPiece)
	b.Set(m.rookSrc.Row, m.rookSrc.Col, m.rookPiece)
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
