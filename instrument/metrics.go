// Copyright 2023 The orthtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package instrument

import (
	"github.com/gogama/orthtree"
	"github.com/gogama/orthtree/geom"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const reasonLabel = "reason"

var _ orthtree.Observer = (*Metrics)(nil)

// Metrics is an orthtree.Observer which counts insertions,
// subdivisions and rejected insertions, and records the depth of each
// new leaf.
type Metrics struct {
	inserts      prometheus.Counter
	subdivisions prometheus.Counter
	rejections   *prometheus.CounterVec
	leafDepth    prometheus.Histogram
}

// NewMetrics creates the tree metrics and registers them with reg. A
// nil reg leaves them unregistered. Panics if the metrics are already
// registered with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		inserts: factory.NewCounter(prometheus.CounterOpts{
			Name: "orthtree_inserts_total",
			Help: "The number of items inserted.",
		}),
		subdivisions: factory.NewCounter(prometheus.CounterOpts{
			Name: "orthtree_subdivisions_total",
			Help: "The number of leaves split into children.",
		}),
		rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "orthtree_insert_rejections_total",
			Help: "The number of failed inserts.",
		}, []string{
			reasonLabel,
		}),
		leafDepth: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "orthtree_leaf_depth",
			Help:    "The depth of the leaf holding each inserted item.",
			Buckets: prometheus.LinearBuckets(0, 4, 16),
		}),
	}
}

// Inserted implements orthtree.Observer.
func (m *Metrics) Inserted(_ geom.Position, depth int) {
	m.inserts.Inc()
	m.leafDepth.Observe(float64(depth))
}

// Subdivided implements orthtree.Observer.
func (m *Metrics) Subdivided(int) {
	m.subdivisions.Inc()
}

// Rejected implements orthtree.Observer.
func (m *Metrics) Rejected(_ geom.Position, err error) {
	m.rejections.
		With(prometheus.Labels{reasonLabel: Reason(err)}).
		Inc()
}
