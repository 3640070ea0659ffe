// Copyright (c) 2026, Pagecraft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package undo_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagecraft/pagecraft/schema"
	"github.com/pagecraft/pagecraft/undo"
)

func tree(id string) *schema.Node {
	return &schema.Node{ID: id, Type: "page"}
}

func TestRecordUndoRedo(t *testing.T) {
	t0, t1, t2 := tree("t0"), tree("t1"), tree("t2")
	us := undo.NewStack(t0, 0)
	assert.Same(t, t0, us.Current())
	assert.False(t, us.CanUndo())
	assert.False(t, us.CanRedo())

	us.Record(t1)
	us.Record(t2)
	assert.Same(t, t2, us.Current())
	assert.True(t, us.CanUndo())
	assert.False(t, us.CanRedo())

	nn, ok := us.Undo()
	assert.True(t, ok)
	assert.Same(t, t1, nn)
	assert.True(t, us.CanRedo())

	nn, ok = us.Undo()
	assert.True(t, ok)
	assert.Same(t, t0, nn)
	assert.False(t, us.CanUndo())

	nn, ok = us.Redo()
	assert.True(t, ok)
	assert.Same(t, t1, nn)
	nn, ok = us.Redo()
	assert.True(t, ok)
	assert.Same(t, t2, nn)
	assert.False(t, us.CanRedo())
	assert.True(t, us.CanUndo())
}

func TestUndoRedoInverse(t *testing.T) {
	t0, t1 := tree("t0"), tree("t1")
	us := undo.NewStack(t0, 0)
	us.Record(t1)

	// undo(); redo() restores the post-mutation tree exactly
	us.Undo()
	nn, ok := us.Redo()
	assert.True(t, ok)
	assert.Same(t, t1, nn)

	// mutate(); undo() restores the pre-mutation tree exactly
	nn, ok = us.Undo()
	assert.True(t, ok)
	assert.Same(t, t0, nn)
}

func TestEmptyUndoRedoAreNoops(t *testing.T) {
	t0 := tree("t0")
	us := undo.NewStack(t0, 0)

	nn, ok := us.Undo()
	assert.False(t, ok)
	assert.Same(t, t0, nn)

	nn, ok = us.Redo()
	assert.False(t, ok)
	assert.Same(t, t0, nn)
}

func TestRecordClearsRedoHistory(t *testing.T) {
	us := undo.NewStack(tree("t0"), 0)
	us.Record(tree("t1"))
	us.Undo()
	require.True(t, us.CanRedo())

	us.Record(tree("t2"))
	assert.False(t, us.CanRedo(), "a new edit invalidates redo history")
	assert.Equal(t, "t2", us.Current().ID)
}

func TestDepthBoundDropsOldest(t *testing.T) {
	us := undo.NewStack(tree("t0"), 3)
	for i := 1; i <= 10; i++ {
		us.Record(tree(fmt.Sprintf("t%d", i)))
	}
	// only the 3 most recent snapshots are retained
	ids := []string{}
	for {
		nn, ok := us.Undo()
		if !ok {
			break
		}
		ids = append(ids, nn.ID)
	}
	assert.Equal(t, []string{"t9", "t8", "t7"}, ids)
}
