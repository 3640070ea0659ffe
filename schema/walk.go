// Copyright (c) 2026, Pagecraft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

const (
	// Continue can be returned from walk functions to keep
	// processing down the tree, as compared to [Break].
	Continue = true

	// Break can be returned from walk functions to stop
	// processing the current branch of the tree.
	Break = false
)

// Walk calls the given function on the node and all of its descendants in
// depth-first order, passing each node together with its parent (nil for
// the root). Returning [Break] stops descent into that node's children;
// returning [Continue] keeps walking.
func Walk(root *Node, fun func(n, parent *Node) bool) {
	walk(root, nil, fun)
}

func walk(n, parent *Node, fun func(n, parent *Node) bool) {
	if n == nil {
		return
	}
	if !fun(n, parent) {
		return
	}
	for _, c := range n.Children {
		walk(c, n, fun)
	}
}

// Count returns the total number of nodes in the tree, root included.
func Count(root *Node) int {
	num := 0
	Walk(root, func(n, parent *Node) bool {
		num++
		return Continue
	})
	return num
}
