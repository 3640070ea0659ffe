// Copyright (c) 2026, Pagecraft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

// Find returns the node with the given ID in the tree rooted at root,
// searching depth-first, children in order. It returns nil if no such
// node exists; a stale ID (after an undo, for example) is an expected
// condition that callers must degrade from gracefully.
func Find(root *Node, id string) *Node {
	if root == nil || id == "" {
		return nil
	}
	if root.ID == id {
		return root
	}
	for _, c := range root.Children {
		if n := Find(c, id); n != nil {
			return n
		}
	}
	return nil
}

// FindParent returns the parent of the node with the given ID, or nil if
// the ID is absent or belongs to the root.
func FindParent(root *Node, id string) *Node {
	if root == nil || id == "" {
		return nil
	}
	for _, c := range root.Children {
		if c.ID == id {
			return root
		}
		if p := FindParent(c, id); p != nil {
			return p
		}
	}
	return nil
}

// IndexOf returns the index of the child with the given ID in the parent's
// children, or -1 if it is not a direct child.
func IndexOf(parent *Node, id string) int {
	if parent == nil {
		return -1
	}
	for i, c := range parent.Children {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether the tree rooted at root contains the given ID.
func Contains(root *Node, id string) bool {
	return Find(root, id) != nil
}
