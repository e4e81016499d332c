// SPDX-License-Identifier: MIT

package hqueue

import (
	"errors"
	"fmt"
)

// Sentinel errors for queue operations.
var (
	// ErrEmptyQueue is returned by Pop when no item is pending.
	ErrEmptyQueue = errors.New("hqueue: pop from empty queue")
	// ErrNegativeLevel is returned by Push for a level < 0.
	ErrNegativeLevel = errors.New("hqueue: level must be non-negative")
)

// bucket is a FIFO of items at one level. head indexes the next item to serve.
type bucket[T any] struct {
	items []T
	head  int
}

func (b *bucket[T]) empty() bool { return b.head == len(b.items) }

// Queue is a min-priority queue over integer levels with FIFO ties.
// The zero value is an empty queue ready to use.
//
// Buckets form a ring indexed by level modulo its length. Pending levels
// always lie in [cur, cur+len(buckets)), so storage is bounded by the spread
// of pending levels, not by the largest level ever pushed.
type Queue[T any] struct {
	buckets []bucket[T]
	cur     int // scan pointer: lowest level that may hold items
	last    int // level of the most recent Pop
	size    int
}

// New returns an empty queue whose ring holds levels buckets, enough for
// pending levels spread over [cur, cur+levels) without growing
// (e.g. 256 for 8-bit or 65536 for 16-bit step costs).
func New[T any](levels int) *Queue[T] {
	if levels < 0 {
		levels = 0
	}
	return &Queue[T]{buckets: make([]bucket[T], levels)}
}

// Len returns the number of pending items.
func (q *Queue[T]) Len() int { return q.size }

// Empty reports whether no item is pending.
func (q *Queue[T]) Empty() bool { return q.size == 0 }

// Level returns the level of the item most recently returned by Pop,
// or 0 before the first Pop.
func (q *Queue[T]) Level() int { return q.last }

// Cap returns the number of buckets in the ring.
func (q *Queue[T]) Cap() int { return len(q.buckets) }

// Push enqueues item at level. A level below the scan pointer (the level of
// the last Pop) is served at the pointer.
// Returns ErrNegativeLevel if level < 0.
func (q *Queue[T]) Push(item T, level int) error {
	if level < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeLevel, level)
	}
	if level < q.cur {
		level = q.cur
	}
	if span := level - q.cur + 1; span > len(q.buckets) {
		q.grow(span)
	}
	b := &q.buckets[level%len(q.buckets)]
	b.items = append(b.items, item)
	q.size++
	return nil
}

// Pop removes and returns the oldest item of the lowest non-empty level,
// together with that level. Returns ErrEmptyQueue if nothing is pending.
func (q *Queue[T]) Pop() (T, int, error) {
	var zero T
	if q.size == 0 {
		return zero, 0, ErrEmptyQueue
	}
	n := len(q.buckets)
	for q.buckets[q.cur%n].empty() {
		q.cur++
	}
	b := &q.buckets[q.cur%n]
	item := b.items[b.head]
	b.items[b.head] = zero
	b.head++
	if b.empty() {
		// drained: keep the backing array for later pushes into this slot
		b.items = b.items[:0]
		b.head = 0
	}
	q.size--
	q.last = q.cur
	return item, q.cur, nil
}

// grow resizes the ring to at least n buckets, moving every slot of the
// current window [cur, cur+len) to its new position.
func (q *Queue[T]) grow(n int) {
	old := len(q.buckets)
	c := 2 * old
	if c < n {
		c = n
	}
	nb := make([]bucket[T], c)
	for l := q.cur; l < q.cur+old; l++ {
		nb[l%c] = q.buckets[l%old]
	}
	q.buckets = nb
}
