// Copyright 2023 The orthtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package orthtree provides a point index over a bounded region of
// D-dimensional space: a quadtree when D is 2, an octree when D is 3,
// and in general a tree whose internal nodes each have N = 2^D
// children, one per orthant of the parent's region.
//
// The indexed region, or domain, is the half-open box [0, size) given
// to New. Each node of the tree is empty, holds exactly one item, or
// is split into N children. Inserting an item into an occupied slot
// splits that slot as many times as needed to separate the two items.
//
// A Tree is not safe for concurrent use. Callers who need concurrent
// readers should guard it with a sync.RWMutex, taking the write lock
// around Insert and the read lock around Contains, Search and while
// ranging over QueryIntersecting or Walk.
package orthtree
