// Copyright 2023 The orthtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package instrument provides orthtree.Observer implementations which
// report tree activity as Prometheus metrics and as structured logs.
//
// Attach one to a tree through orthtree.Config:
//
//	m := instrument.NewMetrics(prometheus.DefaultRegisterer)
//	tree := orthtree.NewWithConfig[Item](size, &orthtree.Config{
//		Observer: instrument.Multi{m, instrument.Logger{}},
//	})
package instrument
