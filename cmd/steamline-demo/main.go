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

// steamline-demo exercises each capability group of the library once
// against a running Steam client. It is a manual verification tool, not
// part of the library's contract.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/SteamlineProject/steamline/pkg/config"
	"github.com/SteamlineProject/steamline/pkg/helpers"
	"github.com/SteamlineProject/steamline/pkg/native/ffi"
	"github.com/SteamlineProject/steamline/pkg/steam"
	"github.com/SteamlineProject/steamline/pkg/steamdir"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	appID := flag.Uint("app", 0, "application id (0: read steam_appid.txt)")
	libPath := flag.String("lib", "", "path to the steam_api library")
	board := flag.String("board", "", "leaderboard to look up")
	flag.Parse()

	cfgPath := config.Path(config.DefaultDir())
	cfg, err := config.Load(cfgPath, config.BaseDefaults)
	if err != nil {
		return err
	}
	if *appID == 0 {
		*appID = uint(cfg.AppID)
	}
	if *libPath == "" {
		*libPath = cfg.NativeLibrary
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	if err := helpers.InitLogging(config.DefaultDir(), console); err != nil {
		return err
	}
	if !cfg.DebugLogging {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	binding, err := ffi.Open(*libPath)
	if err != nil {
		return err
	}

	var opts []steam.Option
	if *appID != 0 {
		opts = append(opts, steam.WithAppID(uint32(*appID)))
	}
	client, err := steam.Init(binding, opts...)
	if err != nil {
		return err
	}
	if !client.IsSteamRunning() {
		log.Warn().Msg("steam client not running, trying on-disk discovery only")
		return showLocalInstall(uint32(*appID))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	go helpers.PumpLoop(ctx, client, clockwork.NewRealClock(), helpers.DefaultPumpInterval)

	status := client.Status()
	log.Info().
		Stringer("steam_id", status.SteamID).
		Uint32("app_id", status.AppID).
		Msg("session")

	if name, ok := client.PersonaName(); ok {
		log.Info().Str("persona", name).Msg("local user")
	}
	if n, ok := client.FriendCount(); ok {
		log.Info().Int("friends", n).Msg("social graph")
	}
	for _, f := range client.Friends() {
		log.Info().
			Stringer("id", f.ID).
			Str("name", f.Name).
			Stringer("state", f.State).
			Msg("friend")
	}

	for _, file := range client.ListFiles() {
		log.Info().Str("name", file.Name).Int64("bytes", file.Bytes).Msg("cloud file")
	}

	if received, err := client.RequestCurrentStats().Await(ctx); err == nil && received {
		for _, name := range client.AchievementNames() {
			unlocked, ok := client.IsAchievementUnlocked(name)
			log.Info().Str("achievement", name).
				Bool("unlocked", unlocked && ok).
				Msg("achievement state")
		}
	}

	if *board != "" {
		if err := showLeaderboard(ctx, client, *board); err != nil {
			return err
		}
	}

	client.SetRichPresence("status", "Running steamline-demo")
	defer client.ClearRichPresence()

	if ts, ok := client.ServerRealTime(); ok {
		log.Info().Time("server_time", ts).Msg("utils")
	}
	return nil
}

func showLeaderboard(ctx context.Context, client *steam.Client, name string) error {
	board, err := client.FindLeaderboard(name).Await(ctx)
	if err != nil {
		return err
	}
	if board == nil {
		log.Warn().Str("board", name).Msg("leaderboard not found")
		return nil
	}
	log.Info().
		Str("board", board.Name()).
		Stringer("sort", board.SortMethod()).
		Stringer("display", board.DisplayType()).
		Int("entries", board.EntryCount()).
		Msg("leaderboard")

	entries, err := board.DownloadEntries(steam.DataRequestGlobal, 1, 10).Await(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		log.Info().Stringer("user", e.User).Int("rank", e.Rank).
			Int32("score", e.Score).Msg("entry")
	}
	return nil
}

func showLocalInstall(appID uint32) error {
	fs := afero.NewOsFs()
	root, err := steamdir.Root(fs, os.Getenv)
	if err != nil {
		return err
	}
	log.Info().Str("root", root).Msg("steam install")

	if acct, err := steamdir.MostRecentAccount(fs, root); err == nil {
		log.Info().Str("account", acct.AccountName).
			Str("persona", acct.PersonaName).Msg("most recent login")
	}
	if appID != 0 {
		if dir, err := steamdir.AppInstallDir(fs, root, appID); err == nil {
			log.Info().Uint32("app_id", appID).Str("dir", dir).Msg("installed")
		} else {
			log.Info().Uint32("app_id", appID).Msg("not installed")
		}
	}
	return nil
}
