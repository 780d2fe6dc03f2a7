package config

// boardConfiguration holds the dimensions of the board a Game is created
// with. Hardwiring 8x8 would be simplest, but this engine keeps it a runtime
// knob since the rules core is dimension agnostic and must support legal
// castling/promotion/checkmate detection on non-8x8 boards as well.
type boardConfiguration struct {
	Height int
	Width  int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Board.Height = 8
	Settings.Board.Width = 8
}

// set defaults for configuration not available from the config file
func setupBoard() {
	if Settings.Board.Height <= 0 {
		Settings.Board.Height = 8
	}
	if Settings.Board.Width <= 0 {
		Settings.Board.Width = 8
	}
}
