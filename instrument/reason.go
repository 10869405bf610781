// Copyright 2023 The orthtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package instrument

import (
	"errors"

	"github.com/gogama/orthtree"
)

// Reason returns a short label naming why an insert failed, suitable
// for use as a metric label or log tag.
func Reason(err error) string {
	switch {
	case errors.Is(err, orthtree.ErrDuplicatePosition):
		return "duplicate_position"
	case errors.Is(err, orthtree.ErrOutOfDomain):
		return "out_of_domain"
	case errors.Is(err, orthtree.ErrNotFinite):
		return "not_finite"
	case errors.Is(err, orthtree.ErrMaxDepth):
		return "max_depth"
	default:
		return "other"
	}
}
