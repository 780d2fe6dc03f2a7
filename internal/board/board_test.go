package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chesscore/internal/chesserr"
	"github.com/frankkopp/chesscore/internal/types"
)

func TestBoard_GetSetEmpty(t *testing.T) {
	b := New(8, 8)
	assert.Nil(t, b.Get(3, 3))
	p := types.NewPiece(types.Bottom, types.Pawn)
	b.Set(3, 3, &p)
	assert.Equal(t, p, *b.Get(3, 3))
}

func TestBoard_OutOfBounds(t *testing.T) {
	b := New(8, 8)
	assert.Panics(t, func() { b.Get(8, 0) })
	assert.Panics(t, func() { b.Get(0, -1) })
	assert.Panics(t, func() { b.Set(-1, 0, nil) })

	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			err, ok := r.(error)
			require.True(t, ok)
			assert.ErrorIs(t, err, chesserr.ErrOutOfBounds)
		}()
		b.Get(100, 100)
	}()
}

func TestBoard_Copy_Independent(t *testing.T) {
	b := New(8, 8)
	p := types.NewPiece(types.Top, types.Queen)
	b.Set(4, 4, &p)

	cp := b.Copy()
	assert.True(t, b.Equals(cp))

	moved := p.WithMoved(true)
	cp.Set(4, 4, &moved)
	assert.False(t, b.Equals(cp))
	assert.False(t, b.Get(4, 4).HasMoved)
}

func TestBoard_Equals(t *testing.T) {
	a := New(6, 6)
	b := New(6, 6)
	assert.True(t, a.Equals(b))

	p := types.NewPiece(types.Bottom, types.Knight)
	a.Set(2, 2, &p)
	assert.False(t, a.Equals(b))

	b.Set(2, 2, &p)
	assert.True(t, a.Equals(b))

	other := New(7, 6)
	assert.False(t, a.Equals(other))
}

func TestBoard_Key_ReflectsContent(t *testing.T) {
	a := New(8, 8)
	b := New(8, 8)
	assert.Equal(t, a.Key(), b.Key())

	p := types.NewPiece(types.Top, types.King)
	a.Set(0, 0, &p)
	assert.NotEqual(t, a.Key(), b.Key())

	b.Set(0, 0, &p)
	assert.Equal(t, a.Key(), b.Key())
}

func TestBoard_FindKing(t *testing.T) {
	b := New(8, 8)
	_, found := b.FindKing(types.Top)
	assert.False(t, found)

	k := types.NewPiece(types.Top, types.King)
	b.Set(7, 4, &k)
	pos, found := b.FindKing(types.Top)
	require.True(t, found)
	assert.Equal(t, types.NewPosition(7, 4), pos)
}
