// Copyright 2023 The orthtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package orthtree

import (
	"errors"
	"fmt"

	"github.com/gogama/orthtree/geom"
)

var (
	// ErrDuplicatePosition is returned when inserting an item at the
	// exact position of an item already in the tree.
	ErrDuplicatePosition = textErr("duplicate position")
	// ErrOutOfDomain is returned when inserting an item whose position
	// lies outside the tree's domain and cannot be clamped into it.
	ErrOutOfDomain = textErr("position out of domain")
	// ErrNotFinite is returned when inserting an item whose position
	// has a NaN or infinite coordinate.
	ErrNotFinite = textErr("position not finite")
	// ErrMaxDepth is returned when two items are so close together
	// that separating them would make the tree deeper than its
	// configured maximum depth.
	ErrMaxDepth = textErr("max depth exceeded")
)

const packageName = "orthtree: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func posErr(err error, p geom.Position) error {
	return fmt.Errorf("%w: %s", err, p)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
