// Copyright (c) 2026, Pagecraft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pagecraft/pagecraft/schema"
)

var fmtOutput string

var fmtCmd = &cobra.Command{
	Use:   "fmt <schema file>",
	Short: "Normalize a schema file",
	Long: `Fmt reads a schema file (JSON or YAML), normalizes legacy child
encodings, assigns IDs to any nodes missing them, and writes it back as
canonical indented JSON. A schema that is already fully identified
round-trips unchanged: existing IDs are never regenerated.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := schema.Open(args[0])
		if err != nil {
			return err
		}
		out := fmtOutput
		if out == "" {
			out = args[0]
		}
		return schema.SaveJSON(root, out)
	},
}

func init() {
	fmtCmd.Flags().StringVarP(&fmtOutput, "output", "o", "", "write to this file instead of rewriting in place")
	rootCmd.AddCommand(fmtCmd)
}
