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
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ReadYAML reads a schema tree from YAML-encoded bytes. YAML is the
// hand-authoring format; it is decoded to the generic form and routed
// through the same normalization and ID assignment as JSON, so the two
// formats accept the same child encodings.
func ReadYAML(reader io.Reader) (*Node, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("schema: reading YAML: %w", err)
	}
	var doc any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("schema: decoding YAML: %w", err)
	}
	jb, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("schema: converting YAML: %w", err)
	}
	root := &Node{}
	if err := json.Unmarshal(jb, root); err != nil {
		return nil, fmt.Errorf("schema: decoding YAML: %w", err)
	}
	return AssignIDs(root), nil
}

// OpenYAML reads a schema tree from the YAML file at the given path.
func OpenYAML(filename string) (*Node, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadYAML(bufio.NewReader(fp))
}

// Open reads a schema tree from the given path, selecting the format
// from the file extension: .yaml and .yml are YAML, everything else JSON.
func Open(filename string) (*Node, error) {
	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		return OpenYAML(filename)
	default:
		return OpenJSON(filename)
	}
}
