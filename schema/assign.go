// Copyright (c) 2026, Pagecraft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a fresh node ID for the given type tag, formed from the
// tag plus a random suffix. IDs generated this way do not collide in
// practice, even across repeated calls and process restarts.
func NewID(typ string) string {
	if typ == "" {
		typ = "node"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return typ + "-" + suffix
}

// AssignIDs fills in an ID for the given node and every descendant that is
// missing one. Nodes that already carry an ID keep it unchanged, so calling
// AssignIDs on a fully identified tree is the identity. It returns the node
// for chaining. This runs when a schema is first loaded and whenever a node
// enters the tree from outside (palette drop, paste); a plain property
// update never re-identifies anything.
func AssignIDs(n *Node) *Node {
	if n == nil {
		return nil
	}
	if n.ID == "" {
		n.ID = NewID(n.Type)
	}
	for _, c := range n.Children {
		AssignIDs(c)
	}
	return n
}

// StripIDs clears the ID of the given node and all of its descendants,
// so that a following [AssignIDs] re-identifies the whole subtree.
// The clipboard uses this to materialize pastes that can never collide
// with the live tree.
func StripIDs(n *Node) *Node {
	if n == nil {
		return nil
	}
	n.ID = ""
	for _, c := range n.Children {
		StripIDs(c)
	}
	return n
}

// DuplicateIDs returns the IDs that occur more than once in the tree,
// in first-seen order. A healthy tree returns nil.
func DuplicateIDs(root *Node) []string {
	seen := map[string]int{}
	var dups []string
	Walk(root, func(n, parent *Node) bool {
		seen[n.ID]++
		if seen[n.ID] == 2 {
			dups = append(dups, n.ID)
		}
		return Continue
	})
	return dups
}
