// Copyright 2023 The orthtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package orthtree

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// A Path locates a node by listing the child index taken at each level
// below the root. The root's Path is empty.
type Path []int

// String returns the dotted binary form of the path, in which every
// child index is written in base 2 after a dot, for example ".11.0".
// The root's Path is the empty string.
func (p Path) String() string {
	var b strings.Builder
	for _, i := range p {
		b.WriteByte('.')
		b.WriteString(strconv.FormatInt(int64(i), 2))
	}
	return b.String()
}

// Walk returns a sequence of every item in the tree paired with the
// Path of its leaf, depth first and in ascending child index order.
// Each yielded Path is a fresh slice the caller may keep.
//
// The tree must not be modified while the sequence is being consumed.
func (t *Tree[T]) Walk() iter.Seq2[Path, T] {
	return func(yield func(Path, T) bool) {
		t.root.walk(make(Path, 0, 16), yield)
	}
}

// Depth returns the depth of the deepest leaf, where the root is at
// depth 0, or -1 if the tree is empty.
func (t *Tree[T]) Depth() int {
	depth := -1
	for path := range t.Walk() {
		depth = max(depth, len(path))
	}
	return depth
}

func (n *node[T]) walk(path Path, yield func(Path, T) bool) bool {
	switch n.kind {
	case leafNode:
		return yield(slices.Clone(path), n.item)
	case internalNode:
		for i := range n.children {
			if !n.children[i].walk(append(path, i), yield) {
				return false
			}
		}
	}
	return true
}
