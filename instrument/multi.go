// Copyright 2023 The orthtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package instrument

import (
	"github.com/gogama/orthtree"
	"github.com/gogama/orthtree/geom"
)

// Multi is an orthtree.Observer which forwards every call to each of
// its elements in order.
type Multi []orthtree.Observer

// Inserted implements orthtree.Observer.
func (m Multi) Inserted(p geom.Position, depth int) {
	for _, o := range m {
		o.Inserted(p, depth)
	}
}

// Subdivided implements orthtree.Observer.
func (m Multi) Subdivided(depth int) {
	for _, o := range m {
		o.Subdivided(depth)
	}
}

// Rejected implements orthtree.Observer.
func (m Multi) Rejected(p geom.Position, err error) {
	for _, o := range m {
		o.Rejected(p, err)
	}
}
