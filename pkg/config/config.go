// Steamline
// Copyright (c) 2026 The Steamline Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Steamline.
//
// Steamline is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Steamline is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Steamline.  If not, see <http://www.gnu.org/licenses/>.

// Package config holds the optional host-application configuration for
// Steamline. Libraries embedding steamline do not need it; the demo and
// headless hosts use it to pin the app id and locate the native library
// without recompiling.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	// CfgEnv overrides the config file path.
	CfgEnv  = "STEAMLINE_CFG"
	CfgFile = "steamline.toml"
	LogFile = "steamline.log"
)

// Values is the on-disk configuration. Fields not present in the file keep
// their defaults.
type Values struct {
	// NativeLibrary is an explicit path to the steam_api redistributable.
	// Empty means search next to the executable.
	NativeLibrary string `toml:"native_library,omitempty"`
	// AppID pins the application id. 0 lets the native SDK discover it
	// from steam_appid.txt.
	AppID        uint32 `toml:"app_id"`
	ConfigSchema int    `toml:"config_schema"`
	DebugLogging bool   `toml:"debug_logging"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
}

// DefaultDir returns the per-user config directory.
func DefaultDir() string {
	return filepath.Join(xdg.ConfigHome, "steamline")
}

// Path resolves the config file location, honoring CfgEnv.
func Path(configDir string) string {
	if env := os.Getenv(CfgEnv); env != "" {
		return env
	}
	return filepath.Join(configDir, CfgFile)
}

// Load reads the config at path, layering file values over defaults. A
// missing file yields the defaults unchanged.
func Load(path string, defaults Values) (Values, error) {
	vals := defaults
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the host
	if errors.Is(err, os.ErrNotExist) {
		return vals, nil
	}
	if err != nil {
		return vals, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &vals); err != nil {
		return defaults, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if vals.ConfigSchema != SchemaVersion {
		return defaults, fmt.Errorf("config: schema version mismatch: got %d, expecting %d",
			vals.ConfigSchema, SchemaVersion)
	}
	log.Debug().Str("path", path).Msg("config loaded")
	return vals, nil
}

// Save writes vals to path, creating the directory as needed.
func Save(path string, vals Values) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("config: creating config directory: %w", err)
	}
	data, err := toml.Marshal(vals)
	if err != nil {
		return fmt.Errorf("config: marshaling: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}
