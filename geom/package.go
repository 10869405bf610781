// Copyright 2023 The orthtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package geom provides the fixed-dimension coordinate vector and the
// half-open axis-aligned rectangle used by package orthtree.
//
// The dimension count D is fixed at build time. The default build is
// two-dimensional; building with the orthtree3 tag makes every
// Position three-dimensional.
package geom
