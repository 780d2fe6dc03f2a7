package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_Opponent(t *testing.T) {
	assert.Equal(t, Bottom, Top.Opponent())
	assert.Equal(t, Top, Bottom.Opponent())
}

func TestColor_IsValid(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want bool
	}{
		{"Top", Top, true},
		{"Bottom", Bottom, true},
		{"invalid", Color(2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.IsValid())
		})
	}
}

func TestColor_Forward(t *testing.T) {
	assert.Equal(t, -1, Top.Forward())
	assert.Equal(t, 1, Bottom.Forward())
}

func TestPieceKind_IsSlider(t *testing.T) {
	assert.True(t, Queen.IsSlider())
	assert.True(t, Castle.IsSlider())
	assert.True(t, Bishop.IsSlider())
	assert.False(t, Knight.IsSlider())
	assert.False(t, King.IsSlider())
	assert.False(t, Pawn.IsSlider())
}

func TestPiece_WithMoved(t *testing.T) {
	p := NewPiece(Bottom, Pawn)
	assert.False(t, p.HasMoved)

	moved := p.WithMoved(true)
	assert.True(t, moved.HasMoved)
	assert.Equal(t, Bottom, moved.Owner)
	assert.Equal(t, Pawn, moved.Kind)

	// original is untouched (value semantics)
	assert.False(t, p.HasMoved)

	assert.Equal(t, p, moved.WithMoved(false))
}

func TestPiece_ValueEquality(t *testing.T) {
	a := NewPiece(Top, Knight)
	b := NewPiece(Top, Knight)
	c := NewPiece(Top, Knight).WithMoved(true)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestPosition_InBounds(t *testing.T) {
	assert.True(t, NewPosition(0, 0).InBounds(8, 8))
	assert.True(t, NewPosition(7, 7).InBounds(8, 8))
	assert.False(t, NewPosition(8, 0).InBounds(8, 8))
	assert.False(t, NewPosition(0, -1).InBounds(8, 8))
}

func TestPosition_ValueEquality(t *testing.T) {
	assert.Equal(t, NewPosition(2, 3), NewPosition(2, 3))
	assert.NotEqual(t, NewPosition(2, 3), NewPosition(3, 2))
}
