// Copyright (c) 2026, Pagecraft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clipboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagecraft/pagecraft/clipboard"
	"github.com/pagecraft/pagecraft/schema"
)

func sample() *schema.Node {
	return &schema.Node{
		ID:   "row-1",
		Type: "row",
		Children: []*schema.Node{
			{ID: "text-1", Type: "text", Properties: map[string]any{"content": "hi"}},
		},
	}
}

func TestCopyStoresDetachedCopy(t *testing.T) {
	cb := &clipboard.Clipboard{}
	src := sample()
	cb.Copy(src)
	require.True(t, cb.CanPaste())
	assert.Equal(t, clipboard.ModeCopy, cb.Mode())

	// mutating the source after copy must not affect the stored entry
	src.Children[0].Properties["content"] = "changed"
	got := cb.Take()
	assert.Equal(t, "hi", got.Children[0].Properties["content"])
}

func TestCutMode(t *testing.T) {
	cb := &clipboard.Clipboard{}
	cb.Cut(sample())
	assert.True(t, cb.CanPaste())
	assert.Equal(t, clipboard.ModeCut, cb.Mode())
}

func TestTakeReidentifies(t *testing.T) {
	cb := &clipboard.Clipboard{}
	cb.Copy(sample())
	got := cb.Take()
	require.NotNil(t, got)
	assert.NotEqual(t, "row-1", got.ID)
	assert.NotEqual(t, "text-1", got.Children[0].ID)
	assert.Equal(t, "row", got.Type)
	assert.Equal(t, "hi", got.Children[0].Properties["content"])
}

func TestRepeatedTakeYieldsDistinctIDs(t *testing.T) {
	cb := &clipboard.Clipboard{}
	cb.Cut(sample())

	first := cb.Take()
	second := cb.Take()
	require.NotNil(t, second, "cut entries paste repeatedly")
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.Children[0].ID, second.Children[0].ID)
	assert.True(t, cb.CanPaste())
}

func TestEmptyClipboard(t *testing.T) {
	cb := &clipboard.Clipboard{}
	assert.False(t, cb.CanPaste())
	assert.Nil(t, cb.Take())

	cb.Copy(nil)
	assert.False(t, cb.CanPaste(), "copying a missing node stores nothing")
}

func TestClear(t *testing.T) {
	cb := &clipboard.Clipboard{}
	cb.Copy(sample())
	cb.Clear()
	assert.False(t, cb.CanPaste())
	assert.Nil(t, cb.Take())
}
