// Copyright (c) 2026, Pagecraft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagecraft/pagecraft/schema"
)

func TestFind(t *testing.T) {
	root := testTree()
	assert.Same(t, root, schema.Find(root, "root"))
	assert.Same(t, root.Children[0].Children[0], schema.Find(root, "grand-1"))
	assert.Same(t, root.Children[2], schema.Find(root, "child-3"))
	assert.Nil(t, schema.Find(root, "nope"))
	assert.Nil(t, schema.Find(root, ""))
	assert.Nil(t, schema.Find(nil, "root"))
}

func TestFindParent(t *testing.T) {
	root := testTree()
	assert.Same(t, root, schema.FindParent(root, "child-2"))
	assert.Same(t, root.Children[0], schema.FindParent(root, "grand-1"))
	assert.Nil(t, schema.FindParent(root, "root"), "root has no parent")
	assert.Nil(t, schema.FindParent(root, "nope"))
}

func TestIndexOf(t *testing.T) {
	root := testTree()
	assert.Equal(t, 0, schema.IndexOf(root, "child-1"))
	assert.Equal(t, 2, schema.IndexOf(root, "child-3"))
	assert.Equal(t, -1, schema.IndexOf(root, "grand-1"), "not a direct child")
	assert.Equal(t, -1, schema.IndexOf(nil, "child-1"))
}

func TestWalkOrder(t *testing.T) {
	root := testTree()
	var ids []string
	schema.Walk(root, func(n, parent *schema.Node) bool {
		ids = append(ids, n.ID)
		return schema.Continue
	})
	assert.Equal(t, []string{"root", "child-1", "grand-1", "child-2", "child-3"}, ids)
}

func TestWalkBreak(t *testing.T) {
	root := testTree()
	var ids []string
	schema.Walk(root, func(n, parent *schema.Node) bool {
		ids = append(ids, n.ID)
		return n.ID != "child-1" // skip child-1's subtree
	})
	assert.Equal(t, []string{"root", "child-1", "child-2", "child-3"}, ids)
}

func TestWalkParents(t *testing.T) {
	root := testTree()
	parents := map[string]string{}
	schema.Walk(root, func(n, parent *schema.Node) bool {
		if parent != nil {
			parents[n.ID] = parent.ID
		}
		return schema.Continue
	})
	require.Equal(t, map[string]string{
		"child-1": "root",
		"child-2": "root",
		"child-3": "root",
		"grand-1": "child-1",
	}, parents)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 5, schema.Count(testTree()))
	assert.Equal(t, 0, schema.Count(nil))
	assert.Equal(t, 1, schema.Count(&schema.Node{Type: "page"}))
}
