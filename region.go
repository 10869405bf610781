// Copyright 2023 The orthtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package orthtree

import "github.com/gogama/orthtree/geom"

// midpoint returns the split coordinate of the interval [lo, hi).
func midpoint(lo, hi float64) float64 {
	return lo + (hi-lo)/2
}

// childIndex selects the child of the region bounds containing p,
// returning the child's index and region. Each dimension is split at
// its midpoint into [Min, mid) and [mid, Max), so a coordinate on the
// midpoint goes to the upper half and the upper child keeps the
// parent's exact upper bound.
func childIndex(bounds geom.Rectangle, p geom.Position) (int, geom.Rectangle) {
	var index int
	for i := 0; i < geom.D; i++ {
		if mid := midpoint(bounds.Min[i], bounds.Max[i]); p[i] >= mid {
			index |= 1 << i
			bounds.Min[i] = mid
		} else {
			bounds.Max[i] = mid
		}
	}
	return index, bounds
}

// childRegion returns the region of child index of the region bounds.
// It splits exactly as childIndex does.
func childRegion(bounds geom.Rectangle, index int) geom.Rectangle {
	for i := 0; i < geom.D; i++ {
		mid := midpoint(bounds.Min[i], bounds.Max[i])
		if index&(1<<i) != 0 {
			bounds.Min[i] = mid
		} else {
			bounds.Max[i] = mid
		}
	}
	return bounds
}

// separates reports whether the distinct routing positions a and b
// fall into different children somewhere between the region bounds at
// depth and maxDepth.
func separates(bounds geom.Rectangle, depth, maxDepth int, a, b geom.Position) bool {
	for ; depth < maxDepth; depth++ {
		i, child := childIndex(bounds, a)
		if j, _ := childIndex(bounds, b); i != j {
			return true
		}
		bounds = child
	}
	return false
}
