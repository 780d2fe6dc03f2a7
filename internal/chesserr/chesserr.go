// Package chesserr defines the sentinel errors surfaced across the chesscore
// public API. The core never recovers from them internally; a caller is
// expected to check with errors.Is.
package chesserr

import "errors"

var (
	// ErrOutOfBounds reports an index query outside the board dimensions
	// (height x width, (0,0) is bottom-left). Game queries return it
	// wrapped; Board.Get and Board.Set panic with it wrapped.
	ErrOutOfBounds = errors.New("chesscore: position out of bounds")

	// ErrInvalidMove is returned by Game.MakeMove when the source square is
	// out of bounds, empty, owned by the opponent, or no legal move of the
	// side to move matches the requested (src, dst) pair.
	ErrInvalidMove = errors.New("chesscore: invalid move")

	// ErrInvalidUndo is returned by Game.UndoLastMove when the move history
	// is empty.
	ErrInvalidUndo = errors.New("chesscore: no move to undo")
)
