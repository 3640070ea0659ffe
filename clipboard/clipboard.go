// Copyright (c) 2026, Pagecraft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clipboard holds a detached copy of a schema subtree between a
// copy or cut and any number of pastes. The stored entry keeps the source
// IDs; materializing a paste re-identifies the whole subtree so a paste
// can never collide with IDs live in the tree, notably after a copy where
// the original still is.
package clipboard

import "github.com/pagecraft/pagecraft/schema"

// Mode says how the clipboard entry was produced.
type Mode int32

const (
	// ModeCopy means the source node was left in place.
	ModeCopy Mode = iota

	// ModeCut means the source node was removed from the tree when the
	// entry was stored. A cut entry still pastes repeatedly: cut behaves
	// as copy-then-delete, not as a single-use move.
	ModeCut
)

// Clipboard stores at most one copied or cut subtree. The zero value is
// an empty, ready-to-use clipboard.
type Clipboard struct {
	node *schema.Node
	mode Mode
}

// Copy stores a deep value copy of the given subtree with [ModeCopy].
// It never modifies any tree.
func (cb *Clipboard) Copy(n *schema.Node) {
	if n == nil {
		return
	}
	cb.node = n.Clone()
	cb.mode = ModeCopy
}

// Cut stores a deep value copy of the given subtree with [ModeCut].
// The removal of the source node from the tree is the caller's step,
// so that cut lands in history as a single recorded action.
func (cb *Clipboard) Cut(n *schema.Node) {
	if n == nil {
		return
	}
	cb.node = n.Clone()
	cb.mode = ModeCut
}

// Take materializes the stored subtree for pasting: a fresh deep copy
// with every ID regenerated. The clipboard stays populated, so repeated
// pastes yield repeated, independently identified subtrees. It returns
// nil when the clipboard is empty.
func (cb *Clipboard) Take() *schema.Node {
	if cb.node == nil {
		return nil
	}
	return schema.AssignIDs(schema.StripIDs(cb.node.Clone()))
}

// CanPaste reports whether the clipboard holds an entry.
func (cb *Clipboard) CanPaste() bool {
	return cb.node != nil
}

// Mode returns how the current entry was produced. Only meaningful
// when [Clipboard.CanPaste] is true.
func (cb *Clipboard) Mode() Mode {
	return cb.mode
}

// Clear empties the clipboard.
func (cb *Clipboard) Clear() {
	cb.node = nil
	cb.mode = ModeCopy
}
