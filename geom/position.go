// Copyright 2023 The orthtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"strconv"
)

// A Position is a point in D-dimensional space. It is used both as
// the location of an indexed item and as the offset or size of a
// region.
//
// Positions are compared elementwise. No ordering between dimensions
// is implied, and two Positions are equal (==) only if every
// coordinate is exactly equal.
type Position [D]float64

// New returns the Position with the given coordinates. Panics unless
// exactly D coordinates are given.
func New(coords ...float64) Position {
	if len(coords) != D {
		fmtPanic("need %d coordinates, got %d", D, len(coords))
	}
	var p Position
	copy(p[:], coords)
	return p
}

// Zero returns the origin.
func Zero() Position {
	return Position{}
}

// From returns the Position whose every coordinate equals v.
func From(v float64) Position {
	var p Position
	for i := range p {
		p[i] = v
	}
	return p
}

// Add returns the elementwise sum p + q.
func (p Position) Add(q Position) Position {
	for i := range p {
		p[i] += q[i]
	}
	return p
}

// Div returns the elementwise quotient p / q. Panics if any
// coordinate of q is zero or NaN.
func (p Position) Div(q Position) Position {
	for i := range p {
		checkDivisor(q[i])
		p[i] /= q[i]
	}
	return p
}

// DivScalar divides every coordinate of p by v. Panics if v is zero or
// NaN.
func (p Position) DivScalar(v float64) Position {
	checkDivisor(v)
	for i := range p {
		p[i] /= v
	}
	return p
}

// Scale multiplies every coordinate of p by v.
func (p Position) Scale(v float64) Position {
	for i := range p {
		p[i] *= v
	}
	return p
}

// IsFinite reports whether no coordinate of p is NaN or infinite.
func (p Position) IsFinite() bool {
	for i := range p {
		if math.IsNaN(p[i]) || math.IsInf(p[i], 0) {
			return false
		}
	}
	return true
}

// String returns a compact representation of p, for example "[30,70]".
func (p Position) String() string {
	return string(p.appendTo(make([]byte, 0, 8*D)))
}

func (p Position) appendTo(b []byte) []byte {
	b = append(b, '[')
	for i := range p {
		if i > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendFloat(b, p[i], 'g', 8, 64)
	}
	return append(b, ']')
}

func checkDivisor(v float64) {
	if v == 0 || math.IsNaN(v) {
		fmtPanic("invalid divisor %v", v)
	}
}

// Position returns p itself, which lets a bare Position be stored
// wherever a located item is expected.
func (p Position) Position() Position {
	return p
}
