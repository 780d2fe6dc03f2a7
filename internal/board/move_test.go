package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chesscore/internal/types"
)

func TestMove_Equal_IgnoresUndoState(t *testing.T) {
	m1 := NewRegular(types.NewPosition(1, 1), types.NewPosition(2, 1))
	m2 := NewRegular(types.NewPosition(1, 1), types.NewPosition(2, 1))
	assert.True(t, m1.Equal(m2))

	b := New(8, 8)
	p := types.NewPiece(types.Bottom, types.Pawn)
	b.Set(1, 1, &p)
	m1.Apply(b)
	assert.True(t, m1.Equal(m2), "applying m1 must not change its identity")
}

func TestMove_Regular_Reversible(t *testing.T) {
	b := New(8, 8)
	p := types.NewPiece(types.Bottom, types.Pawn)
	b.Set(1, 1, &p)
	before := b.Copy()

	m := NewRegular(types.NewPosition(1, 1), types.NewPosition(2, 1))
	m.Apply(b)
	assert.Nil(t, b.Get(1, 1))
	require.NotNil(t, b.Get(2, 1))
	assert.True(t, b.Get(2, 1).HasMoved)

	m.Undo(b)
	assert.True(t, before.Equals(b))
	assert.False(t, b.Get(1, 1).HasMoved)
}

func TestMove_Regular_Capture_Reversible(t *testing.T) {
	b := New(8, 8)
	attacker := types.NewPiece(types.Bottom, types.Castle)
	victim := types.NewPiece(types.Top, types.Knight)
	b.Set(0, 0, &attacker)
	b.Set(0, 5, &victim)
	before := b.Copy()

	m := NewRegular(types.NewPosition(0, 0), types.NewPosition(0, 5))
	m.Apply(b)
	require.NotNil(t, b.Get(0, 5))
	assert.Equal(t, types.Castle, b.Get(0, 5).Kind)

	m.Undo(b)
	assert.True(t, before.Equals(b))
}

func TestMove_Promotion_Reversible(t *testing.T) {
	b := New(8, 8)
	pawn := types.NewPiece(types.Bottom, types.Pawn).WithMoved(true)
	b.Set(6, 3, &pawn)
	before := b.Copy()

	m := NewPromotion(types.NewPosition(6, 3), types.NewPosition(7, 3))
	m.Apply(b)
	require.NotNil(t, b.Get(7, 3))
	assert.Equal(t, types.Queen, b.Get(7, 3).Kind)
	assert.Nil(t, b.Get(6, 3))

	m.Undo(b)
	assert.True(t, before.Equals(b))
}

func TestMove_Promotion_Capture_Reversible(t *testing.T) {
	b := New(8, 8)
	pawn := types.NewPiece(types.Bottom, types.Pawn).WithMoved(true)
	enemyRook := types.NewPiece(types.Top, types.Castle)
	b.Set(6, 3, &pawn)
	b.Set(7, 4, &enemyRook)
	before := b.Copy()

	m := NewPromotion(types.NewPosition(6, 3), types.NewPosition(7, 4))
	m.Apply(b)
	assert.Equal(t, types.Queen, b.Get(7, 4).Kind)
	assert.Equal(t, types.Bottom, b.Get(7, 4).Owner)

	m.Undo(b)
	assert.True(t, before.Equals(b))
}

func TestMove_Castling_Reversible(t *testing.T) {
	b := New(8, 8)
	king := types.NewPiece(types.Bottom, types.King)
	rook := types.NewPiece(types.Bottom, types.Castle)
	b.Set(0, 4, &king)
	b.Set(0, 7, &rook)
	before := b.Copy()

	m := NewCastling(types.NewPosition(0, 4), types.NewPosition(0, 6))
	m.Apply(b)

	require.NotNil(t, b.Get(0, 6))
	assert.Equal(t, types.King, b.Get(0, 6).Kind)
	assert.True(t, b.Get(0, 6).HasMoved)
	require.NotNil(t, b.Get(0, 5))
	assert.Equal(t, types.Castle, b.Get(0, 5).Kind)
	assert.True(t, b.Get(0, 5).HasMoved)
	assert.Nil(t, b.Get(0, 4))
	assert.Nil(t, b.Get(0, 7))

	m.Undo(b)
	assert.True(t, before.Equals(b))
	assert.False(t, b.Get(0, 4).HasMoved)
	assert.False(t, b.Get(0, 7).HasMoved)
}

func TestMove_Castling_QueenSide_Reversible(t *testing.T) {
	b := New(8, 8)
	king := types.NewPiece(types.Top, types.King)
	rook := types.NewPiece(types.Top, types.Castle)
	b.Set(7, 4, &king)
	b.Set(7, 0, &rook)
	before := b.Copy()

	m := NewCastling(types.NewPosition(7, 4), types.NewPosition(7, 2))
	m.Apply(b)

	require.NotNil(t, b.Get(7, 2))
	assert.Equal(t, types.King, b.Get(7, 2).Kind)
	require.NotNil(t, b.Get(7, 3))
	assert.Equal(t, types.Castle, b.Get(7, 3).Kind)

	m.Undo(b)
	assert.True(t, before.Equals(b))
}

func TestMove_SequenceReversibility(t *testing.T) {
	b := New(8, 8)
	wp := types.NewPiece(types.Bottom, types.Pawn)
	bp := types.NewPiece(types.Top, types.Pawn)
	b.Set(1, 0, &wp)
	b.Set(6, 1, &bp)
	before := b.Copy()

	m1 := NewRegular(types.NewPosition(1, 0), types.NewPosition(3, 0))
	m2 := NewRegular(types.NewPosition(6, 1), types.NewPosition(4, 1))

	m1.Apply(b)
	m2.Apply(b)
	m2.Undo(b)
	m1.Undo(b)

	assert.True(t, before.Equals(b))
}
