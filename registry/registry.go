// Copyright (c) 2026, Pagecraft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package registry maps schema node type tags to component descriptors:
// palette metadata, default properties, and the property descriptors the
// configuration panel renders. The registry is a collaborator of the tree
// engine, not part of it; the engine never looks a type up here.
package registry

import (
	"fmt"
	"maps"

	"github.com/pagecraft/pagecraft/schema"
)

// Property describes one editable property of a component, for the
// configuration panel.
type Property struct {

	// Name is the key in the node's property bag.
	Name string

	// Label is the human-readable form shown in the panel.
	Label string

	// Kind selects the editor widget: "text", "number", "bool",
	// "select", or "binding".
	Kind string

	// Options are the choices for Kind "select".
	Options []string
}

// Component describes one node type available in the palette.
type Component struct {

	// Type is the node type tag this component renders.
	Type string

	// Label is the palette display name.
	Label string

	// Container reports whether nodes of this type accept children.
	Container bool

	// Defaults are the initial properties of a freshly dropped node.
	Defaults map[string]any

	// Properties are the editable property descriptors, in panel order.
	Properties []Property
}

// Registry is a set of components keyed by type tag, in registration order.
type Registry struct {
	byType map[string]*Component
	order  []string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{byType: map[string]*Component{}}
}

// Register adds the given component, erroring on a duplicate type tag.
func (r *Registry) Register(c *Component) error {
	if _, ok := r.byType[c.Type]; ok {
		return fmt.Errorf("registry: type %q already registered", c.Type)
	}
	r.byType[c.Type] = c
	r.order = append(r.order, c.Type)
	return nil
}

// Lookup returns the component for the given type tag, nil if unknown.
func (r *Registry) Lookup(typ string) *Component {
	return r.byType[typ]
}

// Components returns all components in registration order, which is the
// palette order.
func (r *Registry) Components() []*Component {
	cs := make([]*Component, len(r.order))
	for i, typ := range r.order {
		cs[i] = r.byType[typ]
	}
	return cs
}

// NewNode returns a freshly identified node of the given type with the
// component's default properties, ready to insert into a tree. It
// returns nil for an unknown type.
func (r *Registry) NewNode(typ string) *schema.Node {
	c := r.byType[typ]
	if c == nil {
		return nil
	}
	n := &schema.Node{Type: typ}
	if len(c.Defaults) > 0 {
		n.Properties = maps.Clone(c.Defaults)
	}
	return schema.AssignIDs(n)
}
