// Copyright (c) 2026, Pagecraft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schema provides the page schema tree at the heart of pagecraft:
// a JSON-serializable tree of typed [Node]s, with unique identity assignment,
// depth-first lookup, and pure structural mutation operations that return a
// new tree on every change, leaving the input tree untouched.
package schema

import (
	"encoding/json"
	"log/slog"
	"maps"

	"github.com/jinzhu/copier"
)

// Node is one element of a page schema tree. A node carries a unique ID,
// a type tag that selects the component rendering it, an open property bag
// that the tree engine never interprets, and an ordered list of children.
// A node has exactly one owning parent; the engine never aliases a node
// into two tree positions.
type Node struct {

	// ID uniquely identifies this node within its tree. It is assigned once,
	// by [AssignIDs], and never changes for the lifetime of the node.
	ID string `json:"id,omitempty"`

	// Type is the component type tag, such as "button" or "row". It drives
	// property schema lookup in the component registry; the tree engine
	// itself only ever inspects ID and Children.
	Type string `json:"type"`

	// Properties is an open map of component configuration values. It is
	// opaque to the tree engine; the registry and property panel own its
	// per-type meaning.
	Properties map[string]any `json:"properties,omitempty"`

	// Children is the ordered list of child nodes. A nil and an empty slice
	// are equivalent; legacy schemas may also encode a single child as a
	// bare object, which is normalized to a one-element list on ingestion.
	Children []*Node `json:"children,omitempty"`
}

// Clone returns a deep value copy of the tree from this node down,
// IDs included. Callers that need fresh identity must pass the clone
// through [StripIDs] and [AssignIDs], as the clipboard does on paste.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	nc := &Node{}
	err := copier.CopyWithOption(nc, n, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("schema.Node.Clone", "err", err)
	}
	return nc
}

// shallowClone copies the node itself: a fresh struct, a fresh Properties
// map, and a fresh Children slice header sharing the existing child nodes.
// This is the unit step of the copy-on-write mutators.
func (n *Node) shallowClone() *Node {
	nc := &Node{ID: n.ID, Type: n.Type}
	if n.Properties != nil {
		nc.Properties = maps.Clone(n.Properties)
	}
	if len(n.Children) > 0 {
		nc.Children = make([]*Node, len(n.Children))
		copy(nc.Children, n.Children)
	}
	return nc
}

// nodeAlias prevents [Node.UnmarshalJSON] from recursing into itself.
type nodeAlias struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Properties map[string]any  `json:"properties"`
	Children   json.RawMessage `json:"children"`
}

// UnmarshalJSON decodes a node, accepting the legacy child encodings:
// children may be absent, null, an array, or a bare single object.
// All of them normalize to the canonical ordered []*Node form.
func (n *Node) UnmarshalJSON(b []byte) error {
	a := nodeAlias{}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	n.ID = a.ID
	n.Type = a.Type
	n.Properties = a.Properties
	n.Children = nil
	if len(a.Children) == 0 {
		return nil
	}
	switch a.Children[0] {
	case 'n': // null
		return nil
	case '{': // legacy single-child object
		child := &Node{}
		if err := json.Unmarshal(a.Children, child); err != nil {
			return err
		}
		n.Children = []*Node{child}
		return nil
	default:
		return json.Unmarshal(a.Children, &n.Children)
	}
}
