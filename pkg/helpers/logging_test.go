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

package helpers

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/SteamlineProject/steamline/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Note: no t.Parallel(); InitLogging mutates the global logger.
func TestInitLogging(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	var buf bytes.Buffer

	require.NoError(t, InitLogging(logDir, &buf))

	log.Info().Msg("hello from test")

	info, err := os.Stat(logDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Contains(t, buf.String(), "hello from test")
}

func TestInitLoggingCreatesLogFileOnWrite(t *testing.T) {
	logDir := t.TempDir()

	require.NoError(t, InitLogging(logDir))
	log.Info().Msg("rotate me")

	_, err := os.Stat(filepath.Join(logDir, config.LogFile))
	assert.NoError(t, err)
}
