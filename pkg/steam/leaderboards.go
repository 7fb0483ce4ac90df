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

package steam

import "github.com/SteamlineProject/steamline/pkg/native"

// Leaderboard is the opaque handle returned by FindLeaderboard and
// FindOrCreateLeaderboard. Name, sort method and display type are captured
// once at lookup time; the entry count is deliberately NOT captured,
// because it can change while the handle is held. EntryCount is a live
// query against the native SDK.
type Leaderboard struct {
	api     native.UserStats
	name    string
	handle  uint64
	sort    SortMethod
	display DisplayType
}

// Entry is one downloaded leaderboard row.
type Entry struct {
	User  SteamID
	Rank  int
	Score int32
}

func newLeaderboard(api native.UserStats, handle uint64) *Leaderboard {
	return &Leaderboard{
		api:     api,
		handle:  handle,
		name:    api.LeaderboardName(handle),
		sort:    SortMethodFromCode(api.LeaderboardSortMethod(handle)),
		display: DisplayTypeFromCode(api.LeaderboardDisplayType(handle)),
	}
}

// FindLeaderboard resolves the named leaderboard, or nil when no
// leaderboard with that name exists (native sentinel: zero handle).
func (c *Client) FindLeaderboard(name string) *Call[*Leaderboard] {
	call := newCall[*Leaderboard]()
	c.api.FindLeaderboard(name, func(handle uint64) {
		if handle == 0 {
			call.resolve(nil)
			return
		}
		call.resolve(newLeaderboard(c.api, handle))
	})
	return call
}

// FindOrCreateLeaderboard resolves the named leaderboard, creating it with
// the given sort and display configuration when it does not exist yet. A
// nil resolution means creation failed natively.
func (c *Client) FindOrCreateLeaderboard(name string, sort SortMethod, display DisplayType) *Call[*Leaderboard] {
	call := newCall[*Leaderboard]()
	c.api.FindOrCreateLeaderboard(name, sort.code(), display.code(), func(handle uint64) {
		if handle == 0 {
			call.resolve(nil)
			return
		}
		call.resolve(newLeaderboard(c.api, handle))
	})
	return call
}

// Name returns the leaderboard's name as captured at lookup.
func (l *Leaderboard) Name() string { return l.name }

// SortMethod returns the sort order as captured at lookup.
func (l *Leaderboard) SortMethod() SortMethod { return l.sort }

// DisplayType returns the display configuration as captured at lookup.
func (l *Leaderboard) DisplayType() DisplayType { return l.display }

// EntryCount queries the current number of entries. Live, not a lookup-time
// snapshot: two calls can return different values if other users post
// scores in between.
func (l *Leaderboard) EntryCount() int {
	return int(l.api.LeaderboardEntryCount(l.handle))
}

// UploadScore posts score under the given method and resolves to whether
// the backend accepted it. Concurrent uploads to the same leaderboard are
// not coordinated; the native queue's order wins.
func (l *Leaderboard) UploadScore(method UploadMethod, score int32) *Call[bool] {
	call := newCall[bool]()
	l.api.UploadScore(l.handle, method.code(), score, call.resolve)
	return call
}

// DownloadEntries fetches rows start..end inclusive under the given request
// scope. Rank bounds are 1-based for DataRequestGlobal and relative to the
// local user for DataRequestGlobalAroundUser. Resolves to an empty slice
// when the range holds no rows.
func (l *Leaderboard) DownloadEntries(request DataRequest, start, end int) *Call[[]Entry] {
	call := newCall[[]Entry]()
	l.api.DownloadEntries(l.handle, request.code(), int32(start), int32(end), func(raw []native.LeaderboardEntry) {
		entries := make([]Entry, len(raw))
		for i, e := range raw {
			entries[i] = Entry{
				User:  SteamID(e.SteamID),
				Rank:  int(e.Rank),
				Score: e.Score,
			}
		}
		call.resolve(entries)
	})
	return call
}
