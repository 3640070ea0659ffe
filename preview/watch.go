// Copyright (c) 2026, Pagecraft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preview

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"

	"github.com/pagecraft/pagecraft/designer"
	"github.com/pagecraft/pagecraft/schema"
)

// Watch reloads the schema into the designer session whenever the file at
// the given path is written, until the context is canceled. External
// edits land as a whole-tree replacement, so they are undoable like any
// other command. A file that fails to parse is logged and skipped; the
// session keeps its current tree.
func Watch(ctx context.Context, path string, d *designer.Designer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return err
	}
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				root, err := schema.Open(path)
				if err != nil {
					slog.Error("preview: reloading schema", "path", path, "err", err)
					continue
				}
				slog.Info("preview: schema reloaded", "path", path)
				d.AddNode("", root)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("preview: watching schema", "path", path, "err", err)
			}
		}
	}()
	return nil
}
