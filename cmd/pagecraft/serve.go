// Copyright (c) 2026, Pagecraft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pagecraft/pagecraft/designer"
	"github.com/pagecraft/pagecraft/preview"
	"github.com/pagecraft/pagecraft/schema"
)

var serveCmd = &cobra.Command{
	Use:   "serve <schema file>",
	Short: "Serve a live preview of a schema",
	Long: `Serve loads a schema file into a designer session and serves it:
GET /schema returns the current tree as JSON, and /ws is a websocket
that receives the tree on connect and after every change. With watch
enabled (the default), edits to the file on disk reload the session.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		root, err := schema.Open(args[0])
		if err != nil {
			return err
		}
		var srv *preview.Server
		des := designer.New(root,
			designer.WithHistoryDepth(cfg.HistoryDepth),
			designer.WithOnChange(func(n *schema.Node) { srv.Broadcast(n) }),
		)
		srv = preview.NewServer(des)
		if cfg.Watch {
			if err := preview.Watch(cmd.Context(), args[0], des); err != nil {
				return err
			}
		}
		return srv.ListenAndServe(cfg.Addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
