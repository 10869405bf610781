// Copyright 2023 The orthtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package instrument

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/gogama/orthtree"
	"github.com/gogama/orthtree/geom"
)

const (
	positionTag = "position"
	depthTag    = "depth"
	reasonTag   = "reason"
)

var _ orthtree.Observer = Logger{}

// Logger is an orthtree.Observer which writes insertions,
// subdivisions and rejected insertions as debug log entries.
type Logger struct{}

// Inserted implements orthtree.Observer.
func (Logger) Inserted(p geom.Position, depth int) {
	logs.WithTag(positionTag, p.String()).
		WithTag(depthTag, depth).
		Debug("item inserted")
}

// Subdivided implements orthtree.Observer.
func (Logger) Subdivided(depth int) {
	logs.WithTag(depthTag, depth).
		Debug("leaf subdivided")
}

// Rejected implements orthtree.Observer.
func (Logger) Rejected(p geom.Position, err error) {
	logs.WithTag(positionTag, p.String()).
		WithTag(reasonTag, Reason(err)).
		Debug(errors.New("insert rejected").Wrap(err))
}
