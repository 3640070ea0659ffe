// Copyright (c) 2026, Pagecraft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package designer provides the stateful editing session behind the visual
// page designer. A [Designer] owns one schema tree plus its undo history,
// clipboard, and selection state, and exposes the command surface that the
// canvas, palette, property panel, and keyboard shortcuts call into.
// Nothing outside the Designer mutates the tree: every write funnels
// through a command, executes synchronously to completion, and commits a
// new immutable tree that readers can hold without ever observing a
// half-applied mutation.
package designer

import (
	"sync"

	"github.com/pagecraft/pagecraft/clipboard"
	"github.com/pagecraft/pagecraft/schema"
	"github.com/pagecraft/pagecraft/undo"
)

// PlaceholderType is the type tag of the empty root that replaces a
// deleted root node. The tree always has some root; it is never nil.
const PlaceholderType = "page"

// Device is the viewport preview mode, UI-only state that participates
// in no tree invariants.
type Device int32

const (
	Desktop Device = iota
	Tablet
	Phone
)

// ResizeGesture describes an in-progress canvas resize drag. It is
// UI-only state: the engine stores and returns it, nothing more.
type ResizeGesture struct {
	NodeID string
	Axis   string // "x", "y", or "both"
	Width  int
	Height int
}

// Designer is one page editing session. Construct it with [New] and pass
// it to whatever UI scope needs it; there is no ambient shared instance.
// Commands are safe for concurrent use, but execute strictly one at a
// time in call order.
type Designer struct {
	mu      sync.Mutex
	history *undo.Stack
	clip    clipboard.Clipboard

	selectedID string
	hoveredID  string

	device Device
	resize *ResizeGesture

	// onChange receives the new tree after every structural change.
	// Selection and hover changes do not fire it.
	onChange func(root *schema.Node)
}

type options struct {
	historyDepth int
	onChange     func(root *schema.Node)
}

// Option configures [New].
type Option func(*options)

// WithHistoryDepth bounds the undo history to the given number of
// snapshots; the default is [undo.DefaultDepth].
func WithHistoryDepth(depth int) Option {
	return func(o *options) { o.historyDepth = depth }
}

// WithOnChange sets a callback invoked with the new tree after every
// structural change, so a host application can persist or mirror the
// schema. It is called synchronously, outside the designer lock, and
// must not issue designer commands of its own.
func WithOnChange(f func(root *schema.Node)) Option {
	return func(o *options) { o.onChange = f }
}

// New returns a new editing session for the given initial tree, which may
// be missing IDs (they are assigned on load) and may be nil (a placeholder
// root is created).
func New(initial *schema.Node, opts ...Option) *Designer {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if initial == nil {
		initial = placeholderRoot()
	}
	schema.AssignIDs(initial)
	return &Designer{
		history:  undo.NewStack(initial, o.historyDepth),
		onChange: o.onChange,
	}
}

func placeholderRoot() *schema.Node {
	return schema.AssignIDs(&schema.Node{Type: PlaceholderType})
}

// commit records nn as the new current tree if it differs from cur, and
// reports whether it did. Mutators return the input tree unchanged on
// no-ops, so pointer equality is the no-op test.
func (d *Designer) commit(cur, nn *schema.Node) bool {
	if nn == nil || nn == cur {
		return false
	}
	d.history.Record(nn)
	return true
}

// notify fires the change callback; call it after releasing the lock.
func (d *Designer) notify(root *schema.Node, changed bool) {
	if changed && d.onChange != nil {
		d.onChange(root)
	}
}

// Schema returns the current tree. The returned tree is immutable by
// convention: commands replace it rather than modifying it.
func (d *Designer) Schema() *schema.Node {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.history.Current()
}

// Select sets the selected node ID. Selecting an ID not present in the
// tree is allowed; readers resolve selection through [Designer.SelectedNode]
// and treat a miss as nothing selected. Not recorded in history.
func (d *Designer) Select(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selectedID = id
}

// Hover sets the hovered node ID, with the same staleness rules as
// [Designer.Select]. Not recorded in history.
func (d *Designer) Hover(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hoveredID = id
}

// SelectedNodeID returns the raw selected ID, which may be stale.
func (d *Designer) SelectedNodeID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selectedID
}

// HoveredNodeID returns the raw hovered ID, which may be stale.
func (d *Designer) HoveredNodeID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hoveredID
}

// SelectedNode resolves the selection against the current tree. It
// returns nil when nothing is selected or the selected node no longer
// exists, such as after an undo or a delete; the designer never clears
// selection proactively.
func (d *Designer) SelectedNode() *schema.Node {
	d.mu.Lock()
	defer d.mu.Unlock()
	return schema.Find(d.history.Current(), d.selectedID)
}

// HoveredNode resolves the hover against the current tree, nil on a miss.
func (d *Designer) HoveredNode() *schema.Node {
	d.mu.Lock()
	defer d.mu.Unlock()
	return schema.Find(d.history.Current(), d.hoveredID)
}

// UpdateNode shallow-merges the given properties into the node with the
// given ID. A stale ID is a no-op.
func (d *Designer) UpdateNode(id string, props map[string]any) {
	d.mu.Lock()
	cur := d.history.Current()
	nn := schema.Update(cur, id, props)
	changed := d.commit(cur, nn)
	d.mu.Unlock()
	d.notify(nn, changed)
}

// AddNode appends the given node to the children of the parent with the
// given ID, assigning IDs to any nodes missing them. An empty parentID
// replaces the whole tree, which is how a new schema is loaded into a
// session. Ownership of n transfers to the designer.
func (d *Designer) AddNode(parentID string, n *schema.Node) {
	d.InsertNodeAt(parentID, n, -1)
}

// InsertNodeAt is [Designer.AddNode] at an explicit index, clamped to
// the valid range.
func (d *Designer) InsertNodeAt(parentID string, n *schema.Node, at int) {
	d.mu.Lock()
	cur := d.history.Current()
	nn := schema.Insert(cur, parentID, n, at)
	changed := d.commit(cur, nn)
	d.mu.Unlock()
	d.notify(nn, changed)
}

// DeleteNode removes the node with the given ID and its entire subtree.
// Deleting the root replaces it with an empty placeholder root rather
// than leaving the session without a tree. Selection is left as is;
// a now-stale selection resolves to nil on the read side.
func (d *Designer) DeleteNode(id string) {
	d.mu.Lock()
	cur := d.history.Current()
	var nn *schema.Node
	if cur.ID == id {
		nn = placeholderRoot()
	} else {
		nn = schema.Remove(cur, id)
	}
	changed := d.commit(cur, nn)
	d.mu.Unlock()
	d.notify(nn, changed)
}

// MoveNode relocates the node with the given ID, identity and subtree
// intact, under the new parent at the given index. Moving a node into
// its own subtree is a no-op; see [schema.Move].
func (d *Designer) MoveNode(id, newParentID string, at int) {
	d.mu.Lock()
	cur := d.history.Current()
	nn := schema.Move(cur, id, newParentID, at)
	changed := d.commit(cur, nn)
	d.mu.Unlock()
	d.notify(nn, changed)
}

// MoveNodeUp swaps the node with its previous sibling; the first child
// stays put.
func (d *Designer) MoveNodeUp(id string) {
	d.mu.Lock()
	cur := d.history.Current()
	nn := schema.MoveUp(cur, id)
	changed := d.commit(cur, nn)
	d.mu.Unlock()
	d.notify(nn, changed)
}

// MoveNodeDown swaps the node with its next sibling; the last child
// stays put.
func (d *Designer) MoveNodeDown(id string) {
	d.mu.Lock()
	cur := d.history.Current()
	nn := schema.MoveDown(cur, id)
	changed := d.commit(cur, nn)
	d.mu.Unlock()
	d.notify(nn, changed)
}

// CopyNode stores a deep copy of the node with the given ID on the
// clipboard. The tree is untouched and nothing is recorded.
func (d *Designer) CopyNode(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clip.Copy(schema.Find(d.history.Current(), id))
}

// CutNode stores a deep copy of the node on the clipboard and removes it
// from the tree, as a single recorded step. Cutting the root behaves
// like deleting it: the copy is stored and a placeholder root replaces
// the tree.
func (d *Designer) CutNode(id string) {
	d.mu.Lock()
	cur := d.history.Current()
	node := schema.Find(cur, id)
	if node == nil {
		d.mu.Unlock()
		return
	}
	d.clip.Cut(node)
	var nn *schema.Node
	if cur.ID == id {
		nn = placeholderRoot()
	} else {
		nn = schema.Remove(cur, id)
	}
	changed := d.commit(cur, nn)
	d.mu.Unlock()
	d.notify(nn, changed)
}

// PasteNode inserts a freshly re-identified copy of the clipboard entry
// at the end of the children of the given parent. With an empty
// clipboard it is a no-op; gray the affordance with [Designer.CanPaste]
// rather than expecting an error. The clipboard stays populated after a
// paste, for both copied and cut entries, so pasting twice yields two
// siblings with distinct IDs.
func (d *Designer) PasteNode(targetParentID string) {
	d.mu.Lock()
	n := d.clip.Take()
	if n == nil {
		d.mu.Unlock()
		return
	}
	cur := d.history.Current()
	nn := schema.Insert(cur, targetParentID, n, -1)
	changed := d.commit(cur, nn)
	d.mu.Unlock()
	d.notify(nn, changed)
}

// DuplicateNode inserts a re-identified clone of the node with the given
// ID as its immediate next sibling, so the visual order matches what the
// user expects. The clipboard is not disturbed. Duplicating the root or
// a stale ID is a no-op.
func (d *Designer) DuplicateNode(id string) {
	d.mu.Lock()
	cur := d.history.Current()
	parent := schema.FindParent(cur, id)
	if parent == nil {
		d.mu.Unlock()
		return
	}
	at := schema.IndexOf(parent, id)
	clone := schema.StripIDs(schema.Find(cur, id).Clone())
	nn := schema.Insert(cur, parent.ID, clone, at+1)
	changed := d.commit(cur, nn)
	d.mu.Unlock()
	d.notify(nn, changed)
}

// Undo restores the previous tree snapshot; a no-op with no history.
func (d *Designer) Undo() {
	d.mu.Lock()
	nn, changed := d.history.Undo()
	d.mu.Unlock()
	d.notify(nn, changed)
}

// Redo restores the next tree snapshot; a no-op with no redo history.
func (d *Designer) Redo() {
	d.mu.Lock()
	nn, changed := d.history.Redo()
	d.mu.Unlock()
	d.notify(nn, changed)
}

// CanUndo reports whether undo would change anything; drives the
// enabled state of the undo affordance.
func (d *Designer) CanUndo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.history.CanUndo()
}

// CanRedo reports whether redo would change anything.
func (d *Designer) CanRedo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.history.CanRedo()
}

// CanPaste reports whether the clipboard holds an entry.
func (d *Designer) CanPaste() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.clip.CanPaste()
}

// SetDevice sets the viewport preview mode.
func (d *Designer) SetDevice(dev Device) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.device = dev
}

// Device returns the viewport preview mode.
func (d *Designer) Device() Device {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.device
}

// SetResizing stores the in-progress resize gesture; nil ends it.
func (d *Designer) SetResizing(g *ResizeGesture) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resize = g
}

// Resizing returns the in-progress resize gesture, or nil.
func (d *Designer) Resizing() *ResizeGesture {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.resize
}
