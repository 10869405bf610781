// Copyright 2023 The orthtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

//go:build !orthtree3

package orthtree_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/gogama/orthtree"
	"github.com/gogama/orthtree/geom"
)

// A city is a Locatable item for example purposes.
type city struct {
	name string
	at   geom.Position
}

func (c city) Position() geom.Position { return c.at }

func (c city) String() string { return c.name }

func ExampleNew() {
	tree := orthtree.New[city](geom.Position{100, 100})
	_ = tree.Insert(city{"Northeast", geom.Position{70, 70}})
	_ = tree.Insert(city{"Southwest", geom.Position{30, 30}})

	fmt.Println(tree)
	// Output: Tree{Bounds:[[0,0],[100,100]),Len:2,Depth:1}
}

func ExampleTree_Insert() {
	tree := orthtree.New[geom.Position](geom.From(100))

	fmt.Println(tree.Insert(geom.Position{30, 30}))
	err := tree.Insert(geom.Position{30, 30})
	fmt.Println(err, errors.Is(err, orthtree.ErrDuplicatePosition))
	fmt.Println(tree.Insert(geom.Position{100, 30}))
	// Output: <nil>
	// orthtree: duplicate position: [30,30] true
	// orthtree: position out of domain: [100,30]
}

func ExampleTree_Contains() {
	tree := orthtree.New[geom.Position](geom.From(100))
	_ = tree.Insert(geom.Position{30, 30})

	fmt.Println(tree.Contains(geom.Position{30, 30}), tree.Contains(geom.Position{30, 31}))
	// Output: true false
}

func ExampleTree_QueryIntersecting() {
	tree := orthtree.New[city](geom.From(100))
	_ = tree.Insert(city{"A", geom.Position{70, 70}})
	_ = tree.Insert(city{"B", geom.Position{30, 30}})
	_ = tree.Insert(city{"C", geom.Position{70, 30}})
	_ = tree.Insert(city{"D", geom.Position{30, 70}})

	for c := range tree.QueryIntersecting(geom.Rectangle{Max: geom.Position{50, 50}}) {
		fmt.Println(c, c.at)
	}
	fmt.Println(tree.Search(geom.Rectangle{Max: geom.Position{100, 50}}))
	// Output: B [30,30]
	// [B C]
}

func ExampleTree_Format() {
	tree := orthtree.New[geom.Position](geom.From(100))
	for _, p := range []geom.Position{{70, 70}, {30, 30}, {70, 30}, {30, 70}, {10, 10}} {
		_ = tree.Insert(p)
	}

	_ = tree.Format(os.Stdout)
	// Output:
	//         .0.0: [10,10]
	//         .0.11: [30,30]
	//     .1: [70,30]
	//     .10: [30,70]
	//     .11: [70,70]
}

func ExampleTree_Walk() {
	tree := orthtree.New[geom.Position](geom.From(100))
	_ = tree.Insert(geom.Position{10, 10})
	_ = tree.Insert(geom.Position{20, 20})

	for path, p := range tree.Walk() {
		fmt.Println([]int(path), p)
	}
	// Output: [0 0 0] [10,10]
	// [0 0 3] [20,20]
}
