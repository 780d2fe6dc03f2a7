package movegen

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/internal/board"
	"github.com/frankkopp/chesscore/internal/types"
)

func dests(moves []board.Move) []types.Position {
	out := make([]types.Position, len(moves))
	for i, m := range moves {
		out[i] = m.Dst
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

func castlingOnly(moves []board.Move) []board.Move {
	var out []board.Move
	for _, m := range moves {
		if m.Tag == board.Castling {
			out = append(out, m)
		}
	}
	return out
}

func TestKnight_Leaps_SkipOffBoard(t *testing.T) {
	b := board.New(8, 8)
	n := types.NewPiece(types.Bottom, types.Knight)
	b.Set(0, 0, &n)
	moves := PseudoLegalFrom(b, types.NewPosition(0, 0))
	assert.ElementsMatch(t, []types.Position{{Row: 1, Col: 2}, {Row: 2, Col: 1}}, dests(moves))
}

func TestRook_Slides_StopsAtBlocker(t *testing.T) {
	b := board.New(8, 8)
	r := types.NewPiece(types.Bottom, types.Castle)
	friend := types.NewPiece(types.Bottom, types.Pawn)
	enemy := types.NewPiece(types.Top, types.Pawn)
	b.Set(3, 3, &r)
	b.Set(3, 6, &friend)
	b.Set(6, 3, &enemy)
	moves := PseudoLegalFrom(b, types.NewPosition(3, 3))
	got := dests(moves)
	assert.Contains(t, got, types.NewPosition(3, 5))
	assert.NotContains(t, got, types.NewPosition(3, 6))
	assert.Contains(t, got, types.NewPosition(6, 3))
	assert.NotContains(t, got, types.NewPosition(7, 3))
}

func TestPawn_ForwardTwo_OnlyWhenUnmoved(t *testing.T) {
	b := board.New(8, 8)
	p := types.NewPiece(types.Bottom, types.Pawn)
	b.Set(1, 3, &p)
	got := dests(PseudoLegalFrom(b, types.NewPosition(1, 3)))
	assert.ElementsMatch(t, []types.Position{{Row: 2, Col: 3}, {Row: 3, Col: 3}}, got)

	moved := p.WithMoved(true)
	b.Set(1, 3, &moved)
	got = dests(PseudoLegalFrom(b, types.NewPosition(1, 3)))
	assert.ElementsMatch(t, []types.Position{{Row: 2, Col: 3}}, got)
}

func TestPawn_DiagonalOnlyOnCapture(t *testing.T) {
	b := board.New(8, 8)
	p := types.NewPiece(types.Bottom, types.Pawn)
	enemy := types.NewPiece(types.Top, types.Knight)
	b.Set(4, 4, &p)
	b.Set(5, 5, &enemy)
	got := dests(PseudoLegalFrom(b, types.NewPosition(4, 4)))
	assert.Contains(t, got, types.NewPosition(5, 5))
	assert.NotContains(t, got, types.NewPosition(5, 3))
}

func TestPawn_PromotionOnFarRow(t *testing.T) {
	b := board.New(8, 8)
	p := types.NewPiece(types.Bottom, types.Pawn).WithMoved(true)
	b.Set(6, 2, &p)
	moves := PseudoLegalFrom(b, types.NewPosition(6, 2))
	for _, m := range moves {
		if m.Dst.Row == 7 {
			assert.Equal(t, board.Promotion, m.Tag)
		}
	}
}

func TestCastling_Gating_Example(t *testing.T) {
	// 7x6 board exercising the castling-gating worked example.
	b := board.New(7, 6)
	topKing := types.NewPiece(types.Top, types.King)
	topRook1 := types.NewPiece(types.Top, types.Castle)
	topRook2 := types.NewPiece(types.Top, types.Castle)
	bottomKing := types.NewPiece(types.Bottom, types.King)
	bottomRook1 := types.NewPiece(types.Bottom, types.Castle)
	bottomRook2 := types.NewPiece(types.Bottom, types.Castle)
	bottomQueen := types.NewPiece(types.Bottom, types.Queen)
	bottomKnight := types.NewPiece(types.Bottom, types.Knight)

	b.Set(5, 2, &topKing)
	b.Set(5, 0, &topRook1)
	b.Set(5, 5, &topRook2)
	b.Set(0, 2, &bottomKing)
	b.Set(0, 0, &bottomRook1)
	b.Set(0, 5, &bottomRook2)
	b.Set(1, 1, &bottomQueen)
	b.Set(0, 4, &bottomKnight)

	// only castling moves are compared: a regular one-step king move to
	// (5,1) is emitted as well and is not what this example gates.
	topMoves := dests(castlingOnly(PseudoLegalFrom(b, types.NewPosition(5, 2))))
	assert.Contains(t, topMoves, types.NewPosition(5, 4))
	assert.NotContains(t, topMoves, types.NewPosition(5, 1))

	bottomMoves := dests(castlingOnly(PseudoLegalFrom(b, types.NewPosition(0, 2))))
	assert.Contains(t, bottomMoves, types.NewPosition(0, 1))
	assert.NotContains(t, bottomMoves, types.NewPosition(0, 4))
}

func TestIsAttacked(t *testing.T) {
	b := board.New(8, 8)
	rook := types.NewPiece(types.Top, types.Castle)
	b.Set(4, 4, &rook)
	assert.True(t, IsAttacked(b, types.NewPosition(4, 0), types.Bottom))
	assert.False(t, IsAttacked(b, types.NewPosition(3, 3), types.Bottom))
}
