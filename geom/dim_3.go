// Copyright 2023 The orthtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

//go:build orthtree3

package geom

// D is the number of dimensions of every Position.
const D = 3
