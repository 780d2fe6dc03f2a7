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

// Package util provides some small generic helpers shared across packages,
// not available in the standard library in this exact shape.
package util

import (
	"sync/atomic"
	"time"
)

// Abs is a non-branching Abs function for determining the absolute value of an int.
func Abs(n int) int {
	y := n >> 63
	return (n ^ y) - y
}

// Min returns the smaller of the given integers.
func Min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger of the given integers.
func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// Nps calculates nodes per second from a node count and a duration.
// Allows zero duration by adding one nanosecond.
func Nps(nodes uint64, duration time.Duration) uint64 {
	return uint64(int64(nodes) * time.Second.Nanoseconds() / (duration.Nanoseconds() + 1))
}

// Bool is a wrapper for atomic operations on a boolean, used by the search
// engine's cooperative cancellation flag (internal/search.Engine.cancel),
// where a plain bool read/written across goroutines would race.
type Bool struct{ v uint32 }

// NewBool creates a Bool initialized to the given value.
func NewBool(initial bool) *Bool {
	return &Bool{boolToUint32(initial)}
}

// Load atomically reads the value.
func (b *Bool) Load() bool {
	return atomic.LoadUint32(&b.v) == 1
}

// CAS is an atomic compare-and-swap.
func (b *Bool) CAS(old, new bool) bool {
	return atomic.CompareAndSwapUint32(&b.v, boolToUint32(old), boolToUint32(new))
}

// Store atomically sets the value.
func (b *Bool) Store(new bool) {
	atomic.StoreUint32(&b.v, boolToUint32(new))
}

// Swap atomically sets the value and returns the previous one.
func (b *Bool) Swap(new bool) bool {
	return atomic.SwapUint32(&b.v, boolToUint32(new)) == 1
}

// Toggle atomically negates the value and returns the previous one.
func (b *Bool) Toggle() bool {
	for {
		old := b.Load()
		if b.CAS(old, !old) {
			return old
		}
	}
}

func boolToUint32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
