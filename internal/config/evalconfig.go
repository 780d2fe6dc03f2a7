//
// chesscore - a reversible, board-agnostic chess rules and search engine
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

// evalConfiguration holds the material weights and positional bonuses used
// by internal/evaluator, set as defaults here so they can be overridden
// from a config file without touching code.
type evalConfiguration struct {
	PawnValue   int
	KnightValue int
	BishopValue int
	CastleValue int
	QueenValue  int
	KingValue   int

	// MaxScore/MinScore must strictly exceed any heuristic evaluation so
	// checkmate terminals always dominate material/positional scores.
	MaxScore int
	MinScore int

	MobilityBonus int

	BlockedPawnBonus  int
	DoubledPawnBonus  int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Eval.PawnValue = 10
	Settings.Eval.KnightValue = 30
	Settings.Eval.BishopValue = 30
	Settings.Eval.CastleValue = 50
	Settings.Eval.QueenValue = 90
	Settings.Eval.KingValue = 900

	Settings.Eval.MaxScore = 1_000_000
	Settings.Eval.MinScore = -1_000_000

	Settings.Eval.MobilityBonus = 1

	Settings.Eval.BlockedPawnBonus = 5
	Settings.Eval.DoubledPawnBonus = 5
}

// set defaults for configurations not available from the config file
func setupEval() {
	if Settings.Eval.MaxScore <= 0 {
		Settings.Eval.MaxScore = 1_000_000
	}
	if Settings.Eval.MinScore >= 0 {
		Settings.Eval.MinScore = -1_000_000
	}
}
