// Copyright (c) 2026, Pagecraft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Pagecraft is the command line tool for working with pagecraft page
// schemas: normalizing and identifying schema files, validating them
// against the component registry, and serving a live preview session.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "pagecraft",
	Short: "Work with pagecraft page schemas",
	Long: `pagecraft is a tool for working with page schema files: JSON or YAML
trees of typed nodes that the visual designer edits and renders.

It can normalize a schema (canonical child lists, every node identified),
validate it against the component registry, and serve a live preview
session over websockets.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to pagecraft.toml")
}
