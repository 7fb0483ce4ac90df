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

package ffi

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog/log"
)

// ErrLibraryNotFound is returned by Open when no Steamworks redistributable
// could be located.
var ErrLibraryNotFound = errors.New("ffi: steam_api library not found")

// LibraryName returns the Steamworks redistributable filename for goos.
func LibraryName(goos string) string {
	switch goos {
	case "windows":
		return "steam_api64.dll"
	case "darwin":
		return "libsteam_api.dylib"
	default:
		return "libsteam_api.so"
	}
}

// locate resolves the library path. An explicit path wins; otherwise the
// directory of the running executable is searched, then the working
// directory, which is where the Steamworks redistributable conventionally
// lives for a shipped game.
func locate(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("%w: %s", ErrLibraryNotFound, explicit)
		}
		return explicit, nil
	}

	name := LibraryName(runtime.GOOS)
	var candidates []string
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), name))
	}
	candidates = append(candidates, name)

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: tried %v", ErrLibraryNotFound, candidates)
}

// Open loads the Steamworks library and registers its flat exports. Pass an
// empty path to search next to the executable. Open does not talk to the
// Steam client yet; that happens in Init.
func Open(path string) (*Binding, error) {
	resolved, err := locate(path)
	if err != nil {
		return nil, err
	}
	lib, err := openLibrary(resolved)
	if err != nil {
		return nil, fmt.Errorf("ffi: loading %s: %w", resolved, err)
	}
	log.Debug().Str("path", resolved).Msg("steam_api library loaded")

	b := &Binding{lib: lib}
	b.register()
	return b, nil
}
