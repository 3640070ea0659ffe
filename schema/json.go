// Copyright (c) 2026, Pagecraft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadJSON reads a schema tree from JSON-encoded bytes, normalizing legacy
// child encodings and assigning IDs to any nodes that are missing them.
// A tree that is already fully identified round-trips byte for byte:
// existing IDs are preserved, never regenerated.
func ReadJSON(reader io.Reader) (*Node, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("schema: reading JSON: %w", err)
	}
	root := &Node{}
	if err := json.Unmarshal(b, root); err != nil {
		return nil, fmt.Errorf("schema: decoding JSON: %w", err)
	}
	return AssignIDs(root), nil
}

// OpenJSON reads a schema tree from the JSON file at the given path.
func OpenJSON(filename string) (*Node, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadJSON(bufio.NewReader(fp))
}

// WriteJSON writes the tree as indented JSON to the given writer.
func WriteJSON(root *Node, writer io.Writer) error {
	b, err := json.MarshalIndent(root, "", "\t")
	if err != nil {
		return fmt.Errorf("schema: encoding JSON: %w", err)
	}
	b = append(b, '\n')
	_, err = writer.Write(b)
	return err
}

// SaveJSON writes the tree as indented JSON to the file at the given path.
func SaveJSON(root *Node, filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := WriteJSON(root, bw); err != nil {
		return err
	}
	return bw.Flush()
}
