// Copyright (c) 2026, Pagecraft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package designer

import (
	"strings"

	"github.com/pagecraft/pagecraft/schema"
)

// HandleKey dispatches a keyboard chord to the matching designer command
// and reports whether it was handled. Chords are strings such as
// "Ctrl+Z", "Meta+Shift+Z", or "Backspace": modifier names joined to a
// key with "+", case-insensitive, with Cmd accepted for Meta and Control
// for Ctrl. Ctrl and Meta are interchangeable command modifiers, so one
// table serves both platforms.
//
// editingText must be true while focus is inside a text-editing control;
// every chord is then ignored so normal text editing is not hijacked.
//
// The bindings: command+Z undo, command+Shift+Z or command+Y redo,
// command+C copy, command+X cut, command+V paste (to the selection, or
// the root when nothing is selected), command+D duplicate, and plain
// Delete or Backspace delete. Copy, cut, duplicate, and delete need a
// selection; without one they are unhandled.
func (d *Designer) HandleKey(chord string, editingText bool) bool {
	if editingText {
		return false
	}
	key, command, shift := parseChord(chord)

	if !command {
		if key == "delete" || key == "backspace" {
			sel := d.SelectedNodeID()
			if sel == "" {
				return false
			}
			d.DeleteNode(sel)
			return true
		}
		return false
	}

	switch key {
	case "z":
		if shift {
			d.Redo()
		} else {
			d.Undo()
		}
		return true
	case "y":
		d.Redo()
		return true
	case "c":
		sel := d.SelectedNodeID()
		if sel == "" {
			return false
		}
		d.CopyNode(sel)
		return true
	case "x":
		sel := d.SelectedNodeID()
		if sel == "" {
			return false
		}
		d.CutNode(sel)
		return true
	case "v":
		target := d.SelectedNodeID()
		if target == "" || !schema.Contains(d.Schema(), target) {
			target = d.Schema().ID
		}
		d.PasteNode(target)
		return true
	case "d":
		sel := d.SelectedNodeID()
		if sel == "" {
			return false
		}
		d.DuplicateNode(sel)
		return true
	}
	return false
}

// parseChord splits a chord into its final key, whether a command
// modifier (Ctrl or Meta) is held, and whether Shift is held.
func parseChord(chord string) (key string, command, shift bool) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(chord)), "+")
	key = parts[len(parts)-1]
	for _, p := range parts[:len(parts)-1] {
		switch p {
		case "ctrl", "control", "meta", "cmd", "command":
			command = true
		case "shift":
			shift = true
		}
	}
	return key, command, shift
}
