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

// Package steamdir discovers the local Steam client installation by reading
// the text VDF files Steam maintains on disk. It needs no running Steam
// client, which makes it the fallback for install queries when the native
// SDK is unavailable. All functions take an afero.Fs so tests run against a
// memory filesystem.
package steamdir

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/andygrunwald/vdf"
	"github.com/spf13/afero"
)

// RootEnv overrides root discovery when set.
const RootEnv = "STEAMLINE_STEAM_ROOT"

var (
	// ErrRootNotFound means no Steam installation could be located.
	ErrRootNotFound = errors.New("steamdir: steam root not found")
	// ErrAppNotInstalled means no library folder carries a manifest for
	// the requested app.
	ErrAppNotInstalled = errors.New("steamdir: app not installed")
	// ErrNoAccounts means loginusers.vdf lists no accounts.
	ErrNoAccounts = errors.New("steamdir: no logged-in accounts")
)

// Account is one entry from Steam's loginusers.vdf.
type Account struct {
	AccountName string
	PersonaName string
	SteamID     uint64
	MostRecent  bool
}

func rootCandidates(goos string) []string {
	switch goos {
	case "windows":
		return []string{`C:\Program Files (x86)\Steam`, `C:\Program Files\Steam`}
	case "darwin":
		return []string{filepath.Join(xdg.DataHome, "Steam")}
	default:
		return []string{
			filepath.Join(xdg.DataHome, "Steam"),
			filepath.Join(xdg.Home, ".steam", "steam"),
		}
	}
}

// Root returns the Steam install root, honoring RootEnv. A candidate counts
// when its steamapps directory exists.
func Root(fs afero.Fs, getenv func(string) string) (string, error) {
	if override := getenv(RootEnv); override != "" {
		if ok, _ := afero.DirExists(fs, override); ok {
			return override, nil
		}
		return "", fmt.Errorf("%w: %s", ErrRootNotFound, override)
	}
	for _, c := range rootCandidates(runtime.GOOS) {
		if ok, _ := afero.DirExists(fs, filepath.Join(c, "steamapps")); ok {
			return c, nil
		}
	}
	return "", ErrRootNotFound
}

func parseVDF(fs afero.Fs, path string) (map[string]any, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("steamdir: opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	parsed, err := vdf.NewParser(f).Parse()
	if err != nil {
		return nil, fmt.Errorf("steamdir: parsing %s: %w", path, err)
	}
	return parsed, nil
}

// Libraries returns all Steam library folder paths, starting with the ones
// listed in libraryfolders.vdf. The root itself is always a library.
func Libraries(fs afero.Fs, root string) ([]string, error) {
	libs := []string{root}

	parsed, err := parseVDF(fs, filepath.Join(root, "steamapps", "libraryfolders.vdf"))
	if err != nil {
		// Older installs have no libraryfolders.vdf at all.
		return libs, nil //nolint:nilerr
	}
	folders, ok := parsed["libraryfolders"].(map[string]any)
	if !ok {
		return libs, nil
	}

	// Folder keys are stringified indices; keep Steam's order.
	keys := make([]string, 0, len(folders))
	for k := range folders {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		folder, ok := folders[k].(map[string]any)
		if !ok {
			continue
		}
		path, ok := folder["path"].(string)
		if !ok || path == "" || path == root {
			continue
		}
		libs = append(libs, path)
	}
	return libs, nil
}

// AppInstallDir returns the absolute install directory for appID, searching
// every library folder for its manifest.
func AppInstallDir(fs afero.Fs, root string, appID uint32) (string, error) {
	libs, err := Libraries(fs, root)
	if err != nil {
		return "", err
	}
	manifest := fmt.Sprintf("appmanifest_%d.acf", appID)

	for _, lib := range libs {
		path := filepath.Join(lib, "steamapps", manifest)
		if ok, _ := afero.Exists(fs, path); !ok {
			continue
		}
		parsed, err := parseVDF(fs, path)
		if err != nil {
			return "", err
		}
		state, ok := parsed["AppState"].(map[string]any)
		if !ok {
			continue
		}
		installdir, ok := state["installdir"].(string)
		if !ok || installdir == "" {
			continue
		}
		return filepath.Join(lib, "steamapps", "common", installdir), nil
	}
	return "", fmt.Errorf("%w: %d", ErrAppNotInstalled, appID)
}

// IsAppInstalled reports whether any library folder carries a manifest for
// appID.
func IsAppInstalled(fs afero.Fs, root string, appID uint32) bool {
	_, err := AppInstallDir(fs, root, appID)
	return err == nil
}

// Accounts lists the accounts from loginusers.vdf, most recent first.
func Accounts(fs afero.Fs, root string) ([]Account, error) {
	parsed, err := parseVDF(fs, filepath.Join(root, "config", "loginusers.vdf"))
	if err != nil {
		return nil, err
	}
	users, ok := parsed["users"].(map[string]any)
	if !ok || len(users) == 0 {
		return nil, ErrNoAccounts
	}

	accounts := make([]Account, 0, len(users))
	for id, raw := range users {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		steamID, err := strconv.ParseUint(id, 10, 64)
		if err != nil {
			continue
		}
		acct := Account{SteamID: steamID}
		if v, ok := entry["AccountName"].(string); ok {
			acct.AccountName = v
		}
		if v, ok := entry["PersonaName"].(string); ok {
			acct.PersonaName = v
		}
		if v, ok := entry["MostRecent"].(string); ok {
			acct.MostRecent = v == "1"
		}
		accounts = append(accounts, acct)
	}
	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}
	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].MostRecent && !accounts[j].MostRecent
	})
	return accounts, nil
}

// MostRecentAccount returns the account Steam last logged in with.
func MostRecentAccount(fs afero.Fs, root string) (Account, error) {
	accounts, err := Accounts(fs, root)
	if err != nil {
		return Account{}, err
	}
	return accounts[0], nil
}
