// Copyright (c) 2026, Pagecraft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package undo provides the undo / redo history for schema tree editing,
// as bounded stacks of whole-tree snapshots. Because every mutation in
// [github.com/pagecraft/pagecraft/schema] produces a new tree sharing all
// unchanged subtrees with the old one, snapshots are just pointers and a
// deep history stays cheap.
package undo

import "github.com/pagecraft/pagecraft/schema"

// DefaultDepth is the default maximum number of undo snapshots retained.
// Once the bound is exceeded, the oldest snapshots drop off silently.
const DefaultDepth = 100

// Stack is the undo manager for one editing session. It holds the current
// tree between the past and future snapshot stacks. The zero value is not
// usable; call [NewStack]. Stack does no locking of its own: it is owned
// and serialized by a single designer session.
type Stack struct {

	// past holds prior trees, oldest first. The last entry is what
	// [Stack.Undo] restores.
	past []*schema.Node

	// current is the live tree.
	current *schema.Node

	// future holds trees undone from, nearest first. The first entry is
	// what [Stack.Redo] restores. Any new [Stack.Record] clears it.
	future []*schema.Node

	// depth is the maximum size of past.
	depth int
}

// NewStack returns a new [Stack] with the given initial tree and maximum
// history depth. A depth of 0 or less uses [DefaultDepth].
func NewStack(initial *schema.Node, depth int) *Stack {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Stack{current: initial, depth: depth}
}

// Current returns the live tree.
func (us *Stack) Current() *schema.Node {
	return us.current
}

// Record commits a new tree as the result of a mutation: the previous
// current tree is pushed onto the past stack (dropping the oldest entry
// once the depth bound is exceeded), the future stack is cleared since a
// new edit invalidates any redo history, and the new tree becomes current.
func (us *Stack) Record(newTree *schema.Node) {
	us.past = append(us.past, us.current)
	if len(us.past) > us.depth {
		us.past = us.past[1:]
	}
	us.future = nil
	us.current = newTree
}

// Undo restores the most recent past snapshot, pushing the current tree
// onto the future stack. It reports whether anything changed; with no
// history it is a no-op returning the current tree.
func (us *Stack) Undo() (*schema.Node, bool) {
	if len(us.past) == 0 {
		return us.current, false
	}
	prev := us.past[len(us.past)-1]
	us.past = us.past[:len(us.past)-1]
	us.future = append([]*schema.Node{us.current}, us.future...)
	us.current = prev
	return prev, true
}

// Redo restores the nearest future snapshot, pushing the current tree
// onto the past stack. It reports whether anything changed; with no
// redo history it is a no-op returning the current tree.
func (us *Stack) Redo() (*schema.Node, bool) {
	if len(us.future) == 0 {
		return us.current, false
	}
	next := us.future[0]
	us.future = us.future[1:]
	us.past = append(us.past, us.current)
	us.current = next
	return next, true
}

// CanUndo reports whether there is at least one snapshot to undo to.
func (us *Stack) CanUndo() bool {
	return len(us.past) > 0
}

// CanRedo reports whether there is at least one snapshot to redo to.
func (us *Stack) CanRedo() bool {
	return len(us.future) > 0
}
