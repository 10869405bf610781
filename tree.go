// Copyright 2023 The orthtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package orthtree

import (
	"math"

	"github.com/gogama/orthtree/geom"
)

// A Tree indexes items by position within the domain [0, size).
//
// The zero value is not usable. Create a Tree with New or
// NewWithConfig.
type Tree[T Locatable] struct {
	// size is the extent of the domain, which starts at the origin.
	size geom.Position
	// root is the node covering the whole domain.
	root node[T]
	// len is the number of items stored.
	len int
	cfg Config
	obs Observer
}

// New creates an empty Tree over the domain [0, size) using the
// default configuration. Panics if any coordinate of size is negative,
// NaN or infinite.
//
// A zero coordinate is allowed, but makes the domain empty: every
// Insert then fails with ErrOutOfDomain.
func New[T Locatable](size geom.Position) *Tree[T] {
	return NewWithConfig[T](size, nil)
}

// NewWithConfig creates an empty Tree over the domain [0, size). A nil
// cfg means DefaultConfig. Panics under the same conditions as New.
func NewWithConfig[T Locatable](size geom.Position, cfg *Config) *Tree[T] {
	for i := range size {
		if !(size[i] >= 0) || math.IsInf(size[i], 1) {
			fmtPanic("invalid domain size %s", size)
		}
	}
	cfg = cfg.OrDefault()
	var obs Observer = nopObserver{}
	if cfg.Observer != nil {
		obs = cfg.Observer
	}
	return &Tree[T]{size: size, cfg: *cfg, obs: obs}
}

// Size returns the extent of the tree's domain.
func (t *Tree[T]) Size() geom.Position {
	return t.size
}

// Bounds returns the tree's domain as a Rectangle.
func (t *Tree[T]) Bounds() geom.Rectangle {
	return geom.RectangleOf(geom.Zero(), t.size)
}

// Len returns the number of items in the tree.
func (t *Tree[T]) Len() int {
	return t.len
}

// Insert adds item to the tree.
//
// Insert fails with ErrDuplicatePosition if an item with exactly the
// same position is already present, with ErrNotFinite or
// ErrOutOfDomain if the item's position is unusable, and with
// ErrMaxDepth if the item is too close to an existing item to separate
// them within the configured maximum depth. The returned error wraps
// one of these and names the item's position. When Insert fails, the
// tree is unchanged.
func (t *Tree[T]) Insert(item T) error {
	p := item.Position()
	route, err := t.route(p)
	if err == nil {
		var depth int
		depth, err = t.insert(&t.root, t.Bounds(), 0, item, route)
		if err == nil {
			t.len++
			t.obs.Inserted(p, depth)
			return nil
		}
	}
	t.obs.Rejected(p, err)
	return posErr(err, p)
}

// route returns the position used to place p in the tree.
func (t *Tree[T]) route(p geom.Position) (geom.Position, error) {
	if !p.IsFinite() {
		return p, ErrNotFinite
	} else if t.Bounds().Contains(p) {
		return p, nil
	} else if t.cfg.OutOfDomain != Clamp {
		return p, ErrOutOfDomain
	}
	for i := range p {
		if t.size[i] == 0 {
			return p, ErrOutOfDomain
		} else if p[i] < 0 {
			p[i] = 0
		} else if p[i] >= t.size[i] {
			p[i] = math.Nextafter(t.size[i], 0)
		}
	}
	return p, nil
}

// insert places item, whose routing position is route, into the
// subtree rooted at n, which covers the region bounds at the given
// depth. It returns the depth of the item's new leaf.
func (t *Tree[T]) insert(n *node[T], bounds geom.Rectangle, depth int, item T, route geom.Position) (int, error) {
	for {
		switch n.kind {
		case emptyNode:
			*n = leaf(item)
			return depth, nil
		case internalNode:
			var i int
			i, bounds = childIndex(bounds, route)
			n = &n.children[i]
			depth++
		case leafNode:
			return t.subdivide(n, bounds, depth, item, route)
		default:
			fmtPanic("logic error: invalid node kind %d", n.kind)
		}
	}
}

// subdivide replaces the leaf n with an internal node and re-inserts
// the leaf's item followed by item. Nothing changes if the two items
// cannot be separated.
func (t *Tree[T]) subdivide(n *node[T], bounds geom.Rectangle, depth int, item T, route geom.Position) (int, error) {
	existing := n.item
	existingRoute, _ := t.route(existing.Position())
	if existingRoute == route {
		if existing.Position() == item.Position() {
			return 0, ErrDuplicatePosition
		}
		// Both items were clamped onto the same point.
		return 0, ErrOutOfDomain
	}
	if !separates(bounds, depth, t.cfg.MaxDepth, existingRoute, route) {
		return 0, ErrMaxDepth
	}

	*n = internal[T]()
	t.obs.Subdivided(depth)
	if _, err := t.insert(n, bounds, depth, existing, existingRoute); err != nil {
		fmtPanic("logic error: failed to re-insert item: %v", err)
	}
	return t.insert(n, bounds, depth, item, route)
}

// Contains reports whether some item in the tree is located exactly at
// p. It is always false for positions outside the domain.
func (t *Tree[T]) Contains(p geom.Position) bool {
	bounds := t.Bounds()
	if !bounds.Contains(p) {
		return false
	}
	n := &t.root
	for {
		switch n.kind {
		case leafNode:
			return n.item.Position() == p
		case internalNode:
			var i int
			i, bounds = childIndex(bounds, p)
			n = &n.children[i]
		default:
			return false
		}
	}
}
