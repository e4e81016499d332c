// SPDX-License-Identifier: MIT

// Package hqueue provides a hierarchical (bucket) priority queue for small,
// non-negative integer priorities, as used by watershed and tree-of-shapes
// style propagations.
//
// Overview:
//
//   - One FIFO bucket per pending integer level, kept in a ring indexed by
//     level modulo the ring length; Push appends to the level's bucket.
//   - Pop serves the lowest non-empty bucket at or after a scan pointer and
//     moves the pointer forward to it. The pointer never moves backward.
//   - A Push below the pointer lands in the current bucket, so extraction
//     order is always non-decreasing in level.
//   - Ties are served first-in, first-out.
//
// Complexity:
//
//   - Push: O(1) amortised (the ring grows on demand to cover the spread
//     between the scan pointer and the highest pending level).
//   - Pop:  O(1) amortised; over a full run the pointer scans at most
//     MaxLevel+1 buckets in total.
//   - Space: O(spread + items), where spread is the largest distance between
//     the scan pointer and a pending level. Levels themselves are unbounded,
//     so a cumulative distance can be used as the key.
//
// Errors:
//
//   - ErrNegativeLevel: Push with a level < 0.
//   - ErrEmptyQueue:    Pop on an empty queue.
//
// A Queue is not safe for concurrent use; each propagation owns its own.
package hqueue
