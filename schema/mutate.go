// Copyright (c) 2026, Pagecraft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"maps"
	"slices"
)

// The mutators below are pure: they never modify the input tree, and they
// rebuild only the path from the root to the changed node, sharing every
// untouched subtree with the input. When an operation does not apply
// (target ID absent, boundary move), the input tree is returned as is, so
// callers can detect a no-op by pointer comparison.

// Update merges the given properties into the node with the given ID
// (a shallow merge: top-level keys overwrite, identity and children are
// untouched) and returns the new tree. It returns the input tree
// unchanged if the ID is not found.
func Update(root *Node, id string, props map[string]any) *Node {
	nn, _ := update(root, id, props)
	return nn
}

func update(n *Node, id string, props map[string]any) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	if n.ID == id {
		nc := n.shallowClone()
		if nc.Properties == nil {
			nc.Properties = make(map[string]any, len(props))
		}
		maps.Copy(nc.Properties, props)
		return nc, true
	}
	for i, c := range n.Children {
		if cc, ok := update(c, id, props); ok {
			nc := n.shallowClone()
			nc.Children[i] = cc
			return nc, true
		}
	}
	return n, false
}

// Insert splices the given node into the children of the parent with the
// given ID at the given index and returns the new tree. The index is
// clamped to [0, len(children)]; passing a negative index appends. An
// empty parentID replaces the whole tree: the inserted node becomes the
// new root. The inserted subtree is passed through [AssignIDs] first, so
// dropped or pasted nodes can never collide with existing IDs that they
// do not already carry. If the parent ID is not found, the input tree is
// returned unchanged.
//
// Ownership of n transfers to the tree; callers must not retain or reuse it.
func Insert(root *Node, parentID string, n *Node, at int) *Node {
	if n == nil {
		return root
	}
	AssignIDs(n)
	if parentID == "" {
		return n
	}
	nn, ok := insert(root, parentID, n, at)
	if !ok {
		return root
	}
	return nn
}

func insert(p *Node, parentID string, n *Node, at int) (*Node, bool) {
	if p == nil {
		return nil, false
	}
	if p.ID == parentID {
		nc := p.shallowClone()
		at = clampIndex(at, len(nc.Children))
		nc.Children = slices.Insert(nc.Children, at, n)
		return nc, true
	}
	for i, c := range p.Children {
		if cc, ok := insert(c, parentID, n, at); ok {
			nc := p.shallowClone()
			nc.Children[i] = cc
			return nc, true
		}
	}
	return p, false
}

func clampIndex(at, length int) int {
	if at < 0 || at > length {
		return length
	}
	return at
}

// Remove drops the node with the given ID, and its entire subtree, and
// returns the new tree. Removing the root returns nil; the designer
// facade turns that into a placeholder root, since downstream consumers
// assume a tree always has one. If the ID is not found, the input tree
// is returned unchanged.
func Remove(root *Node, id string) *Node {
	if root == nil {
		return nil
	}
	if root.ID == id {
		return nil
	}
	nn, _ := remove(root, id)
	return nn
}

func remove(n *Node, id string) (*Node, bool) {
	for i, c := range n.Children {
		if c.ID == id {
			nc := n.shallowClone()
			nc.Children = slices.Delete(nc.Children, i, i+1)
			return nc, true
		}
		if cc, ok := remove(c, id); ok {
			nc := n.shallowClone()
			nc.Children[i] = cc
			return nc, true
		}
	}
	return n, false
}

// Move relocates the node with the given ID, preserving its identity and
// subtree, under the new parent at the given index (same clamping as
// [Insert]). It is composed as remove-then-insert of the same node value.
// The input tree is returned unchanged when the ID is absent, the node is
// the root, or the new parent lies inside the moved subtree; without the
// ancestor check the remove step would delete the insertion target along
// with the subtree and the node would be lost.
func Move(root *Node, id, newParentID string, at int) *Node {
	if root == nil || id == "" || id == newParentID {
		return root
	}
	node := Find(root, id)
	if node == nil || root.ID == id {
		return root
	}
	if newParentID != "" && Contains(node, newParentID) {
		return root
	}
	removed := Remove(root, id)
	if newParentID == "" {
		// the moved node becomes the whole tree
		return node
	}
	nn := Insert(removed, newParentID, node, at)
	if nn == removed { // new parent not found anywhere
		return root
	}
	return nn
}

// MoveUp swaps the node with the given ID with its previous sibling.
// The first child stays put: the index clamps rather than wrapping.
func MoveUp(root *Node, id string) *Node {
	return shift(root, id, -1)
}

// MoveDown swaps the node with the given ID with its next sibling.
// The last child stays put: the index clamps rather than wrapping.
func MoveDown(root *Node, id string) *Node {
	return shift(root, id, +1)
}

func shift(root *Node, id string, delta int) *Node {
	parent := FindParent(root, id)
	if parent == nil {
		return root
	}
	i := IndexOf(parent, id)
	j := i + delta
	if j < 0 || j >= len(parent.Children) {
		return root
	}
	nn, _ := swap(root, parent.ID, i, j)
	return nn
}

func swap(n *Node, parentID string, i, j int) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	if n.ID == parentID {
		nc := n.shallowClone()
		nc.Children[i], nc.Children[j] = nc.Children[j], nc.Children[i]
		return nc, true
	}
	for ci, c := range n.Children {
		if cc, ok := swap(c, parentID, i, j); ok {
			nc := n.shallowClone()
			nc.Children[ci] = cc
			return nc, true
		}
	}
	return n, false
}
