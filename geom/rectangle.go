// Copyright 2023 The orthtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geom

// A Rectangle is an axis-aligned box. It contains the points in the
// half-open interval [Min[i], Max[i]) along every dimension i, so the
// lower bound is inclusive and the upper bound is exclusive.
type Rectangle struct {
	Min Position
	Max Position
}

// RectangleOf returns the Rectangle spanning size from offset.
func RectangleOf(offset, size Position) Rectangle {
	return Rectangle{Min: offset, Max: offset.Add(size)}
}

// IsEmpty reports whether r contains no point at all, which is the
// case when Max does not exceed Min along some dimension.
func (r Rectangle) IsEmpty() bool {
	for i := range r.Min {
		if !(r.Min[i] < r.Max[i]) {
			return true
		}
	}
	return false
}

// Contains reports whether p lies inside r.
func (r Rectangle) Contains(p Position) bool {
	for i := range p {
		if !(r.Min[i] <= p[i] && p[i] < r.Max[i]) {
			return false
		}
	}
	return true
}

// Intersects reports whether r and o share at least one point. An
// empty Rectangle intersects nothing.
func (r Rectangle) Intersects(o Rectangle) bool {
	for i := range r.Min {
		if !(r.Min[i] < o.Max[i] && o.Min[i] < r.Max[i]) {
			return false
		}
	}
	return !r.IsEmpty() && !o.IsEmpty()
}

// String returns a compact representation of r, for example
// "[[0,0],[50,50])".
func (r Rectangle) String() string {
	b := make([]byte, 0, 16*D+4)
	b = append(b, '[')
	b = r.Min.appendTo(b)
	b = append(b, ',')
	b = r.Max.appendTo(b)
	return string(append(b, ')'))
}
