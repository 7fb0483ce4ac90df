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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "steam_api64.dll", LibraryName("windows"))
	assert.Equal(t, "libsteam_api.dylib", LibraryName("darwin"))
	assert.Equal(t, "libsteam_api.so", LibraryName("linux"))
	assert.Equal(t, "libsteam_api.so", LibraryName("freebsd"))
}

func TestLocateExplicitMissing(t *testing.T) {
	t.Parallel()

	_, err := locate("/nonexistent/steam_api64.dll")
	require.ErrorIs(t, err, ErrLibraryNotFound)
}

func TestOpenMissingLibrary(t *testing.T) {
	t.Parallel()

	binding, err := Open("/nonexistent/libsteam_api.so")
	require.ErrorIs(t, err, ErrLibraryNotFound)
	assert.Nil(t, binding)
}

func TestTrimNUL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte("abc"), trimNUL([]byte{'a', 'b', 'c', 0, 'x'}))
	assert.Equal(t, []byte("abc"), trimNUL([]byte("abc")))
	assert.Empty(t, trimNUL([]byte{0}))
}
