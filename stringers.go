// Copyright 2023 The orthtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package orthtree

import (
	"fmt"
	"io"
	"strings"
)

// Format writes a listing of the tree to w, one line per item. Each
// line is indented four spaces per level of depth and reads
// "<path>: <item>", where path is the dotted binary Path of the item's
// leaf. The listing is meant for people and its layout may change.
func (t *Tree[T]) Format(w io.Writer) error {
	for path, item := range t.Walk() {
		if _, err := fmt.Fprintf(w, "%s%s: %v\n", strings.Repeat(" ", 4*len(path)), path, item); err != nil {
			return err
		}
	}
	return nil
}

// String returns a summary description of the tree.
func (t *Tree[T]) String() string {
	return fmt.Sprintf("Tree{Bounds:%s,Len:%d,Depth:%d}", t.Bounds(), t.len, t.Depth())
}
