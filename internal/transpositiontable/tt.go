/*
 * chesscore - a reversible, board-agnostic chess rules and search engine
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package transpositiontable caches search results keyed by (board, side to
// move). Unlike a zobrist-indexed probe array, the key here is
// a canonical board.Board.Key() string rather than a hash alone: true
// structural equality is required at the key, not a hash-collision
// tolerant probe, so a Go map keyed on the full content string is used
// instead of a fixed-size replace-by-hash table.
package transpositiontable

import (
	"github.com/frankkopp/chesscore/internal/board"
	"github.com/frankkopp/chesscore/internal/types"
)

// Bound classifies how an Entry's Score relates to the search window that
// produced it.
type Bound uint8

const (
	Exact Bound = iota
	Lower
	Upper
)

func (bnd Bound) String() string {
	switch bnd {
	case Exact:
		return "EXACT"
	case Lower:
		return "LOWER"
	case Upper:
		return "UPPER"
	default:
		return "UNKNOWN"
	}
}

// Entry is a cached search result for one (board, side) key.
type Entry struct {
	Score int
	Depth int
	Bound Bound
}

// Table is a transposition table. It is not safe for concurrent use; a
// caller running multiple searchers concurrently must give each its own
// Table or its own board, per the single-threaded-core contract.
type Table struct {
	entries map[string]Entry
	puts    uint64
	hits    uint64
	gets    uint64
}

// New creates an empty table. sizeHint is a hint for the initial map
// capacity (e.g. config.Settings.Search.TTSizeEntries); it bounds nothing,
// since entries are never evicted on a fixed schedule.
func New(sizeHint int) *Table {
	return &Table{entries: make(map[string]Entry, sizeHint)}
}

func key(b *board.Board, side types.Color) string {
	if side == types.Top {
		return "T" + b.Key()
	}
	return "B" + b.Key()
}

// Put inserts or replaces the entry at (board, side) iff depth is greater
// than or equal to any existing entry's depth at the same key. The board is
// never retained by reference beyond computing its key, so the caller's
// board may keep mutating after Put returns.
func (t *Table) Put(b *board.Board, side types.Color, score, depth int, bound Bound) {
	k := key(b, side)
	if existing, ok := t.entries[k]; ok && existing.Depth > depth {
		return
	}
	t.entries[k] = Entry{Score: score, Depth: depth, Bound: bound}
	t.puts++
}

// Get returns the entry stored for (board, side), if any.
func (t *Table) Get(b *board.Board, side types.Color) (Entry, bool) {
	t.gets++
	e, ok := t.entries[key(b, side)]
	if ok {
		t.hits++
	}
	return e, ok
}

// Clear removes every entry.
func (t *Table) Clear() {
	t.entries = make(map[string]Entry, len(t.entries))
	t.puts, t.gets, t.hits = 0, 0, 0
}

// Size returns the number of entries currently stored.
func (t *Table) Size() int {
	return len(t.entries)
}

// Stats summarizes table usage since creation or the last Clear.
type Stats struct {
	Entries int
	Puts    uint64
	Gets    uint64
	Hits    uint64
}

// Stats returns a snapshot of usage counters.
func (t *Table) Stats() Stats {
	return Stats{Entries: len(t.entries), Puts: t.puts, Gets: t.gets, Hits: t.hits}
}
