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

// Package native declares the flat surface of the Steamworks native library
// as consumed by the typed layer in pkg/steam.
//
// Every method is a direct projection of one native export. Sentinel
// conventions are documented per method because the native SDK has no
// first-class absent-value type: different calls signal failure with an
// empty string, a zero handle, a nil slice or an ok flag, and the meaning
// is per-call, never global.
//
// Implementations must never invoke a completion callback inline from the
// issuing method. Callbacks are delivered only from within RunCallbacks,
// matching the native SDK's dispatch model. The purego-backed implementation
// lives in pkg/native/ffi; test stand-ins live in pkg/testing/mocks.
package native

// Core covers process-level lifecycle: initialization and the callback pump.
type Core interface {
	// Init connects to the running Steam client. An appID of 0 means the
	// native SDK discovers the app ID itself from steam_appid.txt next to
	// the executable. The native success boolean is not surfaced here;
	// callers check IsSteamRunning afterwards.
	Init(appID uint32) error
	// RunCallbacks drains the native callback queue. Pending asynchronous
	// calls only ever complete during this call.
	RunCallbacks()
	// IsSteamRunning reports whether a Steam client is reachable.
	IsSteamRunning() bool
	// SteamID returns the local user's id, or 0 before a successful Init.
	SteamID() uint64
	// AppID returns the running app id, or 0 before Init.
	AppID() uint32
}

// Friends projects ISteamFriends.
type Friends interface {
	// PersonaName returns the local user's display name. Sentinel: "".
	PersonaName() string
	// FriendCount returns the number of friends matching flags, or -1 when
	// the local user is not logged in.
	FriendCount(flags int32) int32
	// FriendByIndex returns the friend id at index. Sentinel: 0 for an
	// out-of-range index.
	FriendByIndex(index, flags int32) uint64
	// FriendPersonaName returns the display name for id. Sentinel: "" when
	// the user is unknown to the local client.
	FriendPersonaName(id uint64) string
	// FriendPersonaState returns the raw persona state code for id.
	FriendPersonaState(id uint64) int32
	// FriendRelationship returns the raw relationship code between the
	// local user and id.
	FriendRelationship(id uint64) int32
}

// Cloud projects ISteamRemoteStorage.
type Cloud interface {
	IsCloudEnabledForAccount() bool
	IsCloudEnabledForApp() bool
	// FileCount returns the number of files in the cloud quota.
	FileCount() int32
	// FileNameAndSize returns the entry at index. Sentinel: name "" for an
	// out-of-range index.
	FileNameAndSize(index int32) (name string, size int32)
	FileExists(name string) bool
	// FileRead returns the file contents. Sentinel: nil when the file is
	// missing or the read failed. A present zero-length file returns an
	// empty non-nil slice.
	FileRead(name string) []byte
	FileWrite(name string, data []byte) bool
	FileDelete(name string) bool
}

// LeaderboardEntry is one downloaded row, exactly as the native SDK
// reports it.
type LeaderboardEntry struct {
	SteamID uint64
	Rank    int32
	Score   int32
}

// UserStats projects ISteamUserStats: stats, achievements and leaderboards.
// Async methods issue exactly one native request each; done fires once,
// during a later RunCallbacks.
type UserStats interface {
	// StatInt returns a stat value. The ok flag is false when the stat is
	// unknown or current stats have not been requested yet.
	StatInt(name string) (value int32, ok bool)
	StatFloat(name string) (value float32, ok bool)
	SetStatInt(name string, value int32) bool
	SetStatFloat(name string, value float32) bool
	ResetAllStats(achievementsToo bool) bool
	// GlobalStatInt returns an aggregated stat. ok is false until a
	// RequestGlobalStats call has completed.
	GlobalStatInt(name string) (value int64, ok bool)

	RequestCurrentStats(done func(ok bool))
	StoreStats(done func(ok bool))
	RequestGlobalStats(historyDays int32, done func(ok bool))

	AchievementCount() int32
	// AchievementName returns the API name at index. Sentinel: "" for an
	// out-of-range index.
	AchievementName(index int32) string
	// IsAchievementUnlocked reports unlock state. ok is false when the
	// achievement name is unknown.
	IsAchievementUnlocked(name string) (unlocked, ok bool)
	SetAchievement(name string, done func(ok bool))
	ClearAchievement(name string) bool

	// FindLeaderboard resolves the named leaderboard. Sentinel: handle 0
	// when no such leaderboard exists.
	FindLeaderboard(name string, done func(handle uint64))
	FindOrCreateLeaderboard(name string, sortMethod, displayType int32, done func(handle uint64))
	// LeaderboardName returns "" for an invalid handle.
	LeaderboardName(handle uint64) string
	LeaderboardEntryCount(handle uint64) int32
	LeaderboardSortMethod(handle uint64) int32
	LeaderboardDisplayType(handle uint64) int32
	UploadScore(handle uint64, method, score int32, done func(ok bool))
	// DownloadEntries fetches rows [start, end] under the given request
	// scope. done receives an empty slice when the range is empty or the
	// handle is invalid.
	DownloadEntries(handle uint64, request, start, end int32, done func(entries []LeaderboardEntry))
}

// Overlay projects the overlay activation calls on ISteamFriends plus the
// overlay state query on ISteamUtils.
type Overlay interface {
	// ActivateOverlay opens the overlay on the named dialog. Unknown dialog
	// strings are ignored by the native SDK.
	ActivateOverlay(dialog string)
	ActivateOverlayToWebPage(url string)
	ActivateInviteDialog(lobbyID uint64)
	IsOverlayEnabled() bool
}

// Presence projects the rich presence calls on ISteamFriends.
type Presence interface {
	// SetRichPresence returns false when the key or value exceeds the
	// native length limits or too many keys are set.
	SetRichPresence(key, value string) bool
	ClearRichPresence()
}

// Apps projects ISteamApps.
type Apps interface {
	IsSubscribedApp(appID uint32) bool
	IsAppInstalled(appID uint32) bool
	IsDLCInstalled(appID uint32) bool
	// CurrentGameLanguage returns the API language code, e.g. "english".
	CurrentGameLanguage() string
	// AppInstallDir returns the absolute install path. Sentinel: "" when
	// the app is not installed.
	AppInstallDir(appID uint32) string
	// AppOwner returns the true owner of the running app, which differs
	// from the local user when the app is borrowed via family sharing.
	AppOwner() uint64
	// CurrentBetaName returns the opted-in beta branch. Sentinel: "" on the
	// default branch.
	CurrentBetaName() string
}

// Utils projects ISteamUtils.
type Utils interface {
	// ServerRealTime returns the Steam server's unix time.
	ServerRealTime() uint32
	// IPCountry returns the two letter ISO 3166-1 country code for the
	// user's IP, "" when unknown.
	IPCountry() string
	IsRunningOnSteamDeck() bool
}

// API is the full native surface required by pkg/steam. The capability
// grouping mirrors the sub-object layout of the native SDK.
type API interface {
	Core
	Friends
	Cloud
	UserStats
	Overlay
	Presence
	Apps
	Utils
}
