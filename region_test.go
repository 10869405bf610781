// Copyright 2023 The orthtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

//go:build !orthtree3

package orthtree

import (
	"math"
	"testing"

	"github.com/gogama/orthtree/geom"
	"github.com/stretchr/testify/assert"
)

func box(x0, y0, x1, y1 float64) geom.Rectangle {
	return geom.Rectangle{Min: geom.Position{x0, y0}, Max: geom.Position{x1, y1}}
}

func TestChildIndex(t *testing.T) {
	testCases := []struct {
		name           string
		bounds         geom.Rectangle
		p              geom.Position
		expectedIndex  int
		expectedBounds geom.Rectangle
	}{
		{"LowerLeft", box(0, 0, 100, 100), geom.Position{30, 30}, 0, box(0, 0, 50, 50)},
		{"LowerRight", box(0, 0, 100, 100), geom.Position{70, 30}, 1, box(50, 0, 100, 50)},
		{"UpperLeft", box(0, 0, 100, 100), geom.Position{30, 70}, 2, box(0, 50, 50, 100)},
		{"UpperRight", box(0, 0, 100, 100), geom.Position{70, 70}, 3, box(50, 50, 100, 100)},
		{"Origin", box(0, 0, 100, 100), geom.Position{0, 0}, 0, box(0, 0, 50, 50)},
		{"Midpoint", box(0, 0, 100, 100), geom.Position{50, 50}, 3, box(50, 50, 100, 100)},
		{"JustBelowMidpoint", box(0, 0, 100, 100), geom.Position{49.999, 50}, 2, box(0, 50, 50, 100)},
		{"Offset", box(50, 0, 100, 50), geom.Position{80, 10}, 1, box(75, 0, 100, 25)},
		{"Uneven", box(0, 0, 100, 10), geom.Position{40, 6}, 2, box(0, 5, 50, 10)},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			index, bounds := childIndex(testCase.bounds, testCase.p)

			assert.Equal(t, testCase.expectedIndex, index)
			assert.Equal(t, testCase.expectedBounds, bounds)
			assert.True(t, bounds.Contains(testCase.p), "Child region must contain the routed position.")
		})
	}

	t.Run("UpperEdgeKept", func(t *testing.T) {
		for _, size := range []float64{0.3, 0.7, 3.6075875, 9.1677435, 2.6180572} {
			bounds := geom.RectangleOf(geom.Zero(), geom.From(size))
			top := geom.From(math.Nextafter(size, 0))

			for depth := 0; depth < 40; depth++ {
				index, child := childIndex(bounds, top)

				assert.Equal(t, N-1, index)
				assert.Equal(t, bounds.Max, child.Max, "Upper child must keep the parent's upper edge.")
				assert.True(t, child.Contains(top))
				bounds = child
			}
		}
	})
}

func TestChildRegion(t *testing.T) {
	bounds := box(0, 0, 100, 60)
	expected := []geom.Rectangle{
		box(0, 0, 50, 30),
		box(50, 0, 100, 30),
		box(0, 30, 50, 60),
		box(50, 30, 100, 60),
	}

	for i := 0; i < N; i++ {
		child := childRegion(bounds, i)

		assert.Equal(t, expected[i], child)

		index, indexBounds := childIndex(bounds, child.Min)
		assert.Equal(t, i, index, "Child region must map back to its own index.")
		assert.Equal(t, child, indexBounds)
	}
}

func TestSeparates(t *testing.T) {
	bounds := geom.RectangleOf(geom.Zero(), geom.From(128))

	testCases := []struct {
		name     string
		a, b     geom.Position
		depth    int
		maxDepth int
		expected bool
	}{
		{"FirstLevel", geom.Position{10, 10}, geom.Position{100, 100}, 0, 1, true},
		{"NoRoom", geom.Position{10, 10}, geom.Position{100, 100}, 0, 0, false},
		{"ThirdLevel", geom.Position{10, 10}, geom.Position{20, 20}, 0, 3, true},
		{"ThirdLevelTooDeep", geom.Position{10, 10}, geom.Position{20, 20}, 0, 2, false},
		{"DepthCounts", geom.Position{10, 10}, geom.Position{20, 20}, 1, 3, false},
		{"SameRoute", geom.Position{10, 10}, geom.Position{10, 10}, 0, 128, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := separates(bounds, testCase.depth, testCase.maxDepth, testCase.a, testCase.b)

			assert.Equal(t, testCase.expected, actual)
		})
	}
}
