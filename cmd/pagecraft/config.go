// Copyright (c) 2026, Pagecraft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// config is the pagecraft.toml settings file for the serve command.
type config struct {

	// Addr is the listen address of the preview server.
	Addr string `toml:"addr"`

	// HistoryDepth bounds the undo history of the served session.
	HistoryDepth int `toml:"history-depth"`

	// Watch reloads the schema when the file changes on disk.
	Watch bool `toml:"watch"`
}

func defaultConfig() config {
	return config{
		Addr:  "localhost:8765",
		Watch: true,
	}
}

// loadConfig reads the TOML config at the given path, falling back to
// pagecraft.toml in the working directory, falling back to defaults when
// no file exists. A missing explicit path is an error; a missing implicit
// one is not.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if path == "" {
		path = "pagecraft.toml"
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
