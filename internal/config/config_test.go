//
// chesscore - a reversible, board-agnostic chess rules and search engine
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package config

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

// make tests run in the project's root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestSetupDefaults(t *testing.T) {
	Setup()
	assert.Equal(t, 8, Settings.Board.Height)
	assert.Equal(t, 8, Settings.Board.Width)
	assert.True(t, Settings.Search.UseTT)
	assert.Equal(t, "alphabeta", Settings.Search.DefaultStrategy)
	assert.True(t, Settings.Eval.MaxScore > Settings.Eval.KingValue)
	assert.True(t, Settings.Eval.MinScore < -Settings.Eval.KingValue)
}

func TestString(t *testing.T) {
	Setup()
	fmt.Println(Settings.String())
}
