// Copyright (c) 2026, Pagecraft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pagecraft/pagecraft/registry"
	"github.com/pagecraft/pagecraft/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate <schema file>",
	Short: "Check a schema file for problems",
	Long: `Validate loads a schema file (JSON or YAML) and reports duplicate
node IDs and node types unknown to the component registry. The exit
status is nonzero when any problem is found.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := schema.Open(args[0])
		if err != nil {
			return err
		}
		problems := 0
		for _, id := range schema.DuplicateIDs(root) {
			fmt.Printf("%s: duplicate id %q\n", args[0], id)
			problems++
		}
		reg := registry.Builtins()
		schema.Walk(root, func(n, parent *schema.Node) bool {
			if reg.Lookup(n.Type) == nil {
				fmt.Printf("%s: node %q has unknown type %q\n", args[0], n.ID, n.Type)
				problems++
			}
			return schema.Continue
		})
		if problems > 0 {
			return fmt.Errorf("%d problem(s) found", problems)
		}
		fmt.Printf("%s: ok (%d nodes)\n", args[0], schema.Count(root))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
