// Copyright (c) 2026, Pagecraft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

// Builtins returns a registry populated with the standard component set.
// A duplicate type tag in the builtin table is a programming error and
// panics.
func Builtins() *Registry {
	r := New()
	for _, c := range builtins {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
	return r
}

var builtins = []*Component{
	{
		Type:      "page",
		Label:     "Page",
		Container: true,
		Defaults:  map[string]any{"title": "Untitled page"},
		Properties: []Property{
			{Name: "title", Label: "Title", Kind: "text"},
		},
	},
	{
		Type:      "row",
		Label:     "Row",
		Container: true,
		Defaults:  map[string]any{"gap": 8},
		Properties: []Property{
			{Name: "gap", Label: "Gap", Kind: "number"},
			{Name: "align", Label: "Align", Kind: "select", Options: []string{"start", "center", "end", "stretch"}},
		},
	},
	{
		Type:      "column",
		Label:     "Column",
		Container: true,
		Defaults:  map[string]any{"span": 12},
		Properties: []Property{
			{Name: "span", Label: "Span", Kind: "number"},
		},
	},
	{
		Type:     "text",
		Label:    "Text",
		Defaults: map[string]any{"content": "Text"},
		Properties: []Property{
			{Name: "content", Label: "Content", Kind: "text"},
			{Name: "variant", Label: "Variant", Kind: "select", Options: []string{"body", "heading", "caption"}},
		},
	},
	{
		Type:     "button",
		Label:    "Button",
		Defaults: map[string]any{"label": "Button", "variant": "filled"},
		Properties: []Property{
			{Name: "label", Label: "Label", Kind: "text"},
			{Name: "variant", Label: "Variant", Kind: "select", Options: []string{"filled", "outlined", "text"}},
			{Name: "action", Label: "Action", Kind: "binding"},
		},
	},
	{
		Type:     "image",
		Label:    "Image",
		Defaults: map[string]any{"fit": "cover"},
		Properties: []Property{
			{Name: "src", Label: "Source", Kind: "text"},
			{Name: "alt", Label: "Alt text", Kind: "text"},
			{Name: "fit", Label: "Fit", Kind: "select", Options: []string{"cover", "contain", "fill"}},
		},
	},
	{
		Type:      "form",
		Label:     "Form",
		Container: true,
		Properties: []Property{
			{Name: "submit", Label: "On submit", Kind: "binding"},
		},
	},
	{
		Type:     "input",
		Label:    "Input",
		Defaults: map[string]any{"placeholder": ""},
		Properties: []Property{
			{Name: "field", Label: "Field", Kind: "binding"},
			{Name: "placeholder", Label: "Placeholder", Kind: "text"},
			{Name: "required", Label: "Required", Kind: "bool"},
		},
	},
	{
		Type:     "table",
		Label:    "Table",
		Defaults: map[string]any{"pageSize": 20},
		Properties: []Property{
			{Name: "source", Label: "Data source", Kind: "binding"},
			{Name: "pageSize", Label: "Page size", Kind: "number"},
		},
	},
}
