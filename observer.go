// Copyright 2023 The orthtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package orthtree

import "github.com/gogama/orthtree/geom"

// An Observer is notified as a Tree changes. Its methods are called
// synchronously from Insert, so they should be quick. Queries are never
// observed.
//
// Package instrument provides Observers that record metrics and logs.
type Observer interface {
	// Inserted is called once for each successful Insert with the
	// inserted item's position and the depth of its new leaf.
	Inserted(p geom.Position, depth int)
	// Subdivided is called each time a leaf at the given depth is
	// split into N children.
	Subdivided(depth int)
	// Rejected is called when Insert fails.
	Rejected(p geom.Position, err error)
}

type nopObserver struct{}

func (nopObserver) Inserted(geom.Position, int)   {}
func (nopObserver) Subdivided(int)                {}
func (nopObserver) Rejected(geom.Position, error) {}
