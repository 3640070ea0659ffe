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

func TestUpdateMergesProperties(t *testing.T) {
	root := testTree()
	saved := root.Clone()

	nn := schema.Update(root, "grand-1", map[string]any{"content": "bye", "size": 3})
	require.NotSame(t, root, nn)

	got := schema.Find(nn, "grand-1")
	assert.Equal(t, map[string]any{"content": "bye", "size": 3}, got.Properties)
	assert.Equal(t, "grand-1", got.ID, "identity untouched")

	// input tree untouched
	assert.Equal(t, saved, root)
	// untouched siblings are shared, not copied
	assert.Same(t, root.Children[1], nn.Children[1])
	assert.Same(t, root.Children[2], nn.Children[2])
}

func TestUpdateNoProperties(t *testing.T) {
	root := testTree()
	nn := schema.Update(root, "child-2", map[string]any{"gap": 4})
	assert.Equal(t, map[string]any{"gap": 4}, schema.Find(nn, "child-2").Properties)
	assert.Nil(t, root.Children[1].Properties)
}

func TestUpdateMissingIDIsNoop(t *testing.T) {
	root := testTree()
	assert.Same(t, root, schema.Update(root, "nope", map[string]any{"x": 1}))
}

func TestInsertAppendsByDefault(t *testing.T) {
	root := testTree()
	nn := schema.Insert(root, "root", &schema.Node{Type: "button"}, -1)
	require.Len(t, nn.Children, 4)
	added := nn.Children[3]
	assert.Equal(t, "button", added.Type)
	assert.NotEmpty(t, added.ID, "inserted node gets an id")
	assert.Len(t, root.Children, 3, "input tree untouched")
}

func TestInsertAtIndex(t *testing.T) {
	root := testTree()
	nn := schema.Insert(root, "root", &schema.Node{ID: "new", Type: "row"}, 1)
	assert.Equal(t, []string{"child-1", "new", "child-2", "child-3"}, childIDs(nn))
}

func TestInsertClampsIndex(t *testing.T) {
	root := testTree()
	nn := schema.Insert(root, "root", &schema.Node{ID: "new", Type: "row"}, 99)
	assert.Equal(t, []string{"child-1", "child-2", "child-3", "new"}, childIDs(nn))
}

func TestInsertIntoLeaf(t *testing.T) {
	root := testTree()
	nn := schema.Insert(root, "child-2", &schema.Node{ID: "new", Type: "text"}, 0)
	assert.Equal(t, []string{"new"}, childIDs(schema.Find(nn, "child-2")))
}

func TestInsertEmptyParentReplacesRoot(t *testing.T) {
	root := testTree()
	nn := schema.Insert(root, "", &schema.Node{Type: "page"}, 0)
	assert.NotSame(t, root, nn)
	assert.Empty(t, nn.Children)
	assert.NotEmpty(t, nn.ID)
}

func TestInsertMissingParentIsNoop(t *testing.T) {
	root := testTree()
	assert.Same(t, root, schema.Insert(root, "nope", &schema.Node{Type: "row"}, 0))
}

func TestInsertAssignsIDsThroughout(t *testing.T) {
	root := testTree()
	sub := &schema.Node{Type: "form", Children: []*schema.Node{{Type: "input"}, {Type: "button"}}}
	nn := schema.Insert(root, "child-3", sub, -1)
	schema.Walk(nn, func(n, parent *schema.Node) bool {
		assert.NotEmpty(t, n.ID)
		return schema.Continue
	})
	assert.Empty(t, schema.DuplicateIDs(nn))
}

func TestRemoveDropsSubtree(t *testing.T) {
	root := testTree()
	saved := root.Clone()

	nn := schema.Remove(root, "child-1")
	assert.Equal(t, []string{"child-2", "child-3"}, childIDs(nn))
	assert.Nil(t, schema.Find(nn, "grand-1"), "subtree goes with the node")
	assert.Equal(t, saved, root)
}

func TestRemoveRootReturnsNil(t *testing.T) {
	root := testTree()
	assert.Nil(t, schema.Remove(root, "root"))
}

func TestRemoveMissingIDIsNoop(t *testing.T) {
	root := testTree()
	assert.Same(t, root, schema.Remove(root, "nope"))
}

func TestMovePreservesIdentityAndSubtree(t *testing.T) {
	root := testTree()
	nn := schema.Move(root, "child-1", "child-3", 0)

	assert.Equal(t, []string{"child-2", "child-3"}, childIDs(nn))
	moved := schema.Find(nn, "child-1")
	require.NotNil(t, moved)
	assert.Same(t, schema.Find(nn, "child-3"), schema.FindParent(nn, "child-1"))
	assert.Equal(t, "grand-1", moved.Children[0].ID, "subtree moves along")
	assert.Empty(t, schema.DuplicateIDs(nn))
}

func TestMoveWithinParentReorders(t *testing.T) {
	root := testTree()
	nn := schema.Move(root, "child-3", "root", 0)
	assert.Equal(t, []string{"child-3", "child-1", "child-2"}, childIDs(nn))
}

func TestMoveIntoOwnSubtreeIsNoop(t *testing.T) {
	root := testTree()
	// grand-1 is inside child-1: the remove step would delete the target,
	// so the whole operation must leave the tree untouched.
	assert.Same(t, root, schema.Move(root, "child-1", "grand-1", 0))
	assert.Same(t, root, schema.Move(root, "child-1", "child-1", 0))
}

func TestMoveRootIsNoop(t *testing.T) {
	root := testTree()
	assert.Same(t, root, schema.Move(root, "root", "child-1", 0))
}

func TestMoveMissingIDIsNoop(t *testing.T) {
	root := testTree()
	assert.Same(t, root, schema.Move(root, "nope", "root", 0))
	assert.Same(t, root, schema.Move(root, "child-1", "nope", 0))
}

func TestMoveUpSwapsAdjacent(t *testing.T) {
	root := testTree()
	nn := schema.MoveUp(root, "child-2")
	assert.Equal(t, []string{"child-2", "child-1", "child-3"}, childIDs(nn))
	assert.Equal(t, []string{"child-1", "child-2", "child-3"}, childIDs(root))
}

func TestMoveDownSwapsAdjacent(t *testing.T) {
	root := testTree()
	nn := schema.MoveDown(root, "child-2")
	assert.Equal(t, []string{"child-1", "child-3", "child-2"}, childIDs(nn))
}

func TestMoveBoundaryClamps(t *testing.T) {
	root := testTree()
	assert.Same(t, root, schema.MoveUp(root, "child-1"), "first child cannot move up")
	assert.Same(t, root, schema.MoveDown(root, "child-3"), "last child cannot move down")
	assert.Same(t, root, schema.MoveUp(root, "root"), "root has no siblings")
	assert.Same(t, root, schema.MoveUp(root, "nope"))
}

func TestMoveUpThenDownRestores(t *testing.T) {
	root := testTree()
	nn := schema.MoveDown(schema.MoveUp(root, "child-2"), "child-2")
	assert.Equal(t, childIDs(root), childIDs(nn))
}

// TestUniquenessUnderOperationSequence drives a mixed sequence of mutations
// and checks the pairwise-distinct-IDs invariant after every step.
func TestUniquenessUnderOperationSequence(t *testing.T) {
	root := testTree()
	step := func(nn *schema.Node) *schema.Node {
		require.Empty(t, schema.DuplicateIDs(nn))
		return nn
	}
	root = step(schema.Insert(root, "child-2", &schema.Node{Type: "text"}, -1))
	root = step(schema.Insert(root, "root", &schema.Node{Type: "row"}, 0))
	root = step(schema.Move(root, "child-1", "child-3", -1))
	root = step(schema.Update(root, "grand-1", map[string]any{"content": "x"}))
	root = step(schema.Remove(root, "child-2"))
	root = step(schema.MoveUp(root, "child-3"))
	root = step(schema.MoveDown(root, "child-3"))
}
