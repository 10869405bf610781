// Copyright 2023 The orthtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package orthtree

import "github.com/gogama/orthtree/geom"

// N is the number of children of every internal node, one per orthant.
const N = 1 << geom.D

// A Locatable is an item that can be stored in a Tree.
type Locatable interface {
	// Position returns the item's location. It must return the same
	// value for as long as the item is in a Tree.
	Position() geom.Position
}

type nodeKind uint8

const (
	emptyNode nodeKind = iota
	leafNode
	internalNode
)

// A node is one slot of the tree. The zero value is an empty node.
// A leaf node holds exactly one item. An internal node exclusively
// owns its N children, where child i covers the orthant whose upper
// halves are the dimensions whose bits are set in i.
type node[T Locatable] struct {
	kind     nodeKind
	item     T
	children *[N]node[T]
}

func leaf[T Locatable](item T) node[T] {
	return node[T]{kind: leafNode, item: item}
}

// internal returns an internal node whose children are all empty.
func internal[T Locatable]() node[T] {
	return node[T]{kind: internalNode, children: new([N]node[T])}
}
