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

// Package helpers carries the ambient plumbing hosts share: logging setup
// and a pump loop for applications without a render loop of their own.
package helpers

import (
	"io"
	"os"
	"path/filepath"

	"github.com/SteamlineProject/steamline/pkg/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// InitLogging points the global zerolog logger at a rotated file in logDir,
// plus any extra writers (e.g. a console writer for interactive use).
func InitLogging(logDir string, writers ...io.Writer) error {
	if err := os.MkdirAll(logDir, 0o750); err != nil {
		return err
	}

	logWriters := []io.Writer{&lumberjack.Logger{
		Filename:   filepath.Join(logDir, config.LogFile),
		MaxSize:    1,
		MaxBackups: 2,
	}}
	logWriters = append(logWriters, writers...)

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	log.Logger = log.Output(io.MultiWriter(logWriters...)).
		With().Timestamp().Caller().Logger()

	return nil
}
