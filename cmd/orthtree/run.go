// Copyright 2023 The orthtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"
	"time"

	"github.com/gogama/orthtree"
	"github.com/gogama/orthtree/geom"
	"github.com/gogama/orthtree/instrument"
	"github.com/google/uuid"
)

// An item is a randomly placed demo record.
type item struct {
	ID uuid.UUID
	At geom.Position
}

func (i item) Position() geom.Position {
	return i.At
}

func (i item) String() string {
	return i.ID.String() + "@" + i.At.String()
}

type stats struct {
	Inserted       int
	Rejected       map[string]int
	InsertDuration time.Duration
	Found          int
	QueryDuration  time.Duration
}

// run inserts conf.Items random items into tree, then runs conf.Queries
// random rectangle queries against it.
func run(tree *orthtree.Tree[item], rng *rand.Rand, conf config) stats {
	s := stats{Rejected: make(map[string]int)}

	start := time.Now()
	for i := 0; i < conf.Items; i++ {
		it := item{
			ID: uuid.New(),
			At: randomPosition(rng, conf.Domain*conf.Spread),
		}
		if err := tree.Insert(it); err != nil {
			s.Rejected[instrument.Reason(err)]++
			continue
		}
		s.Inserted++
	}
	s.InsertDuration = time.Since(start)

	start = time.Now()
	for i := 0; i < conf.Queries; i++ {
		corner := randomPosition(rng, conf.Domain)
		r := geom.RectangleOf(corner, geom.From(conf.QueryExtent))
		for range tree.QueryIntersecting(r) {
			s.Found++
		}
	}
	s.QueryDuration = time.Since(start)

	return s
}

func randomPosition(rng *rand.Rand, extent float64) geom.Position {
	var p geom.Position
	for i := range p {
		p[i] = rng.Float64() * extent
	}
	return p
}
