/*
 * chesscore - a reversible, board-agnostic chess rules and search engine
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package config

// searchConfiguration is a data structure to hold the configuration of an
// instance of a search.
type searchConfiguration struct {
	// DefaultStrategy is the search.Strategy cmd/chesscore runs when no
	// -strategy flag is given: "minimax"|"alphabeta"|"mtdf".
	DefaultStrategy string
	DefaultDepth    int

	// Transposition Table
	UseTT         bool
	TTSizeEntries int

	// TimeLimitMillis bounds a search additionally to depth; 0 means
	// depth is the only limit.
	TimeLimitMillis int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.DefaultStrategy = "alphabeta"
	Settings.Search.DefaultDepth = 4

	Settings.Search.UseTT = true
	Settings.Search.TTSizeEntries = 1 << 16

	Settings.Search.TimeLimitMillis = 0
}

// set defaults for configurations not available from the config file
func setupSearch() {
	if Settings.Search.DefaultStrategy == "" {
		Settings.Search.DefaultStrategy = "alphabeta"
	}
	if Settings.Search.DefaultDepth <= 0 {
		Settings.Search.DefaultDepth = 4
	}
	if Settings.Search.TTSizeEntries <= 0 {
		Settings.Search.TTSizeEntries = 1 << 16
	}
}
