// Copyright 2023 The orthtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package orthtree

import (
	"iter"

	"github.com/gogama/orthtree/geom"
)

// QueryIntersecting returns a sequence of the items whose positions
// lie inside r. The tree is traversed lazily as the sequence is
// consumed, depth first and in ascending child index order, skipping
// every subtree whose region does not intersect r. Ranging over the
// sequence again repeats the traversal.
//
// The tree must not be modified while the sequence is being consumed.
func (t *Tree[T]) QueryIntersecting(r geom.Rectangle) iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.IsEmpty() {
			return
		}
		t.root.query(t.Bounds(), r, yield)
	}
}

// Search returns the items whose positions lie inside r, in the same
// order as QueryIntersecting.
func (t *Tree[T]) Search(r geom.Rectangle) []T {
	items := make([]T, 0)
	for item := range t.QueryIntersecting(r) {
		items = append(items, item)
	}
	return items
}

// query yields the items of the subtree rooted at n, which covers the
// region bounds, whose positions lie inside r. It returns false if
// yield asked to stop.
func (n *node[T]) query(bounds, r geom.Rectangle, yield func(T) bool) bool {
	switch n.kind {
	case leafNode:
		if r.Contains(n.item.Position()) {
			return yield(n.item)
		}
	case internalNode:
		for i := range n.children {
			child := childRegion(bounds, i)
			if !r.Intersects(child) {
				continue
			}
			if !n.children[i].query(child, r, yield) {
				return false
			}
		}
	}
	return true
}
