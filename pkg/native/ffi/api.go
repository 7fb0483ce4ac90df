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
	"os"
	"strconv"
	"unsafe"

	"github.com/SteamlineProject/steamline/pkg/native"
	"github.com/ebitengine/purego"
)

// Binding adapts the flat Steamworks C exports to native.API. Construct it
// with Open; the zero value is unusable.
type Binding struct {
	lib uintptr

	// Interface self pointers, fetched once during Init via the versioned
	// accessor exports.
	user    uintptr
	friends uintptr
	utils   uintptr
	remote  uintptr
	stats   uintptr
	apps    uintptr

	pending []pendingCall

	// Global exports.
	steamInit          func() bool
	steamRunCallbacks  func()
	steamIsRunning     func() bool
	accessUser         func() uintptr
	accessFriends      func() uintptr
	accessUtils        func() uintptr
	accessRemote       func() uintptr
	accessStats        func() uintptr
	accessApps         func() uintptr

	// ISteamUser.
	getSteamID func(self uintptr) uint64

	// ISteamFriends.
	getPersonaName          func(self uintptr) string
	getFriendCount          func(self uintptr, flags int32) int32
	getFriendByIndex        func(self uintptr, index, flags int32) uint64
	getFriendPersonaName    func(self uintptr, id uint64) string
	getFriendPersonaState   func(self uintptr, id uint64) int32
	getFriendRelationship   func(self uintptr, id uint64) int32
	activateOverlay         func(self uintptr, dialog string)
	activateOverlayWebPage  func(self uintptr, url string, mode int32)
	activateInviteDialog    func(self uintptr, lobby uint64)
	setRichPresence         func(self uintptr, key, value string) bool
	clearRichPresence       func(self uintptr)

	// ISteamUtils.
	getAppID             func(self uintptr) uint32
	getServerRealTime    func(self uintptr) uint32
	getIPCountry         func(self uintptr) string
	isOverlayEnabled     func(self uintptr) bool
	isOnSteamDeck        func(self uintptr) bool
	isAPICallCompleted   func(self uintptr, call uint64, failed *bool) bool
	getAPICallResult     func(self uintptr, call uint64, result unsafe.Pointer, size, expectedID int32, failed *bool) bool

	// ISteamRemoteStorage.
	getFileCount             func(self uintptr) int32
	getFileNameAndSize       func(self uintptr, index int32, size *int32) string
	fileExists               func(self uintptr, name string) bool
	getFileSize              func(self uintptr, name string) int32
	fileRead                 func(self uintptr, name string, buf unsafe.Pointer, n int32) int32
	fileWrite                func(self uintptr, name string, buf unsafe.Pointer, n int32) bool
	fileDelete               func(self uintptr, name string) bool
	cloudEnabledForAccount   func(self uintptr) bool
	cloudEnabledForApp       func(self uintptr) bool

	// ISteamUserStats.
	getStatInt32            func(self uintptr, name string, out *int32) bool
	getStatFloat            func(self uintptr, name string, out *float32) bool
	setStatInt32            func(self uintptr, name string, value int32) bool
	setStatFloat            func(self uintptr, name string, value float32) bool
	resetAllStats           func(self uintptr, achievementsToo bool) bool
	getGlobalStatInt64      func(self uintptr, name string, out *int64) bool
	requestUserStats        func(self uintptr, user uint64) uint64
	storeStats              func(self uintptr) bool
	requestGlobalStats      func(self uintptr, historyDays int32) uint64
	getNumAchievements      func(self uintptr) uint32
	getAchievementName      func(self uintptr, index uint32) string
	getAchievement          func(self uintptr, name string, achieved *bool) bool
	setAchievement          func(self uintptr, name string) bool
	clearAchievement        func(self uintptr, name string) bool
	findLeaderboard         func(self uintptr, name string) uint64
	findOrCreateLeaderboard func(self uintptr, name string, sort, display int32) uint64
	leaderboardName         func(self uintptr, handle uint64) string
	leaderboardEntryCount   func(self uintptr, handle uint64) int32
	leaderboardSortMethod   func(self uintptr, handle uint64) int32
	leaderboardDisplayType  func(self uintptr, handle uint64) int32
	uploadScore             func(self uintptr, handle uint64, method, score int32, details *int32, detailCount int32) uint64
	downloadEntries         func(self uintptr, handle uint64, request, start, end int32) uint64
	getDownloadedEntry      func(self uintptr, entries uint64, index int32, out unsafe.Pointer, details *int32, detailsMax int32) bool

	// ISteamApps.
	isSubscribedApp     func(self uintptr, appID uint32) bool
	isAppInstalled      func(self uintptr, appID uint32) bool
	isDLCInstalled      func(self uintptr, appID uint32) bool
	currentGameLanguage func(self uintptr) string
	appInstallDir       func(self uintptr, appID uint32, buf unsafe.Pointer, n uint32) uint32
	appOwner            func(self uintptr) uint64
	currentBetaName     func(self uintptr, buf unsafe.Pointer, n int32) bool
}

var _ native.API = (*Binding)(nil)

func (b *Binding) register() {
	reg := func(fptr any, name string) {
		purego.RegisterLibFunc(fptr, b.lib, name)
	}

	reg(&b.steamInit, "SteamAPI_Init")
	reg(&b.steamRunCallbacks, "SteamAPI_RunCallbacks")
	reg(&b.steamIsRunning, "SteamAPI_IsSteamRunning")
	reg(&b.accessUser, "SteamAPI_SteamUser_v023")
	reg(&b.accessFriends, "SteamAPI_SteamFriends_v017")
	reg(&b.accessUtils, "SteamAPI_SteamUtils_v010")
	reg(&b.accessRemote, "SteamAPI_SteamRemoteStorage_v016")
	reg(&b.accessStats, "SteamAPI_SteamUserStats_v012")
	reg(&b.accessApps, "SteamAPI_SteamApps_v008")

	reg(&b.getSteamID, "SteamAPI_ISteamUser_GetSteamID")

	reg(&b.getPersonaName, "SteamAPI_ISteamFriends_GetPersonaName")
	reg(&b.getFriendCount, "SteamAPI_ISteamFriends_GetFriendCount")
	reg(&b.getFriendByIndex, "SteamAPI_ISteamFriends_GetFriendByIndex")
	reg(&b.getFriendPersonaName, "SteamAPI_ISteamFriends_GetFriendPersonaName")
	reg(&b.getFriendPersonaState, "SteamAPI_ISteamFriends_GetFriendPersonaState")
	reg(&b.getFriendRelationship, "SteamAPI_ISteamFriends_GetFriendRelationship")
	reg(&b.activateOverlay, "SteamAPI_ISteamFriends_ActivateGameOverlay")
	reg(&b.activateOverlayWebPage, "SteamAPI_ISteamFriends_ActivateGameOverlayToWebPage")
	reg(&b.activateInviteDialog, "SteamAPI_ISteamFriends_ActivateGameOverlayInviteDialog")
	reg(&b.setRichPresence, "SteamAPI_ISteamFriends_SetRichPresence")
	reg(&b.clearRichPresence, "SteamAPI_ISteamFriends_ClearRichPresence")

	reg(&b.getAppID, "SteamAPI_ISteamUtils_GetAppID")
	reg(&b.getServerRealTime, "SteamAPI_ISteamUtils_GetServerRealTime")
	reg(&b.getIPCountry, "SteamAPI_ISteamUtils_GetIPCountry")
	reg(&b.isOverlayEnabled, "SteamAPI_ISteamUtils_IsOverlayEnabled")
	reg(&b.isOnSteamDeck, "SteamAPI_ISteamUtils_IsSteamRunningOnSteamDeck")
	reg(&b.isAPICallCompleted, "SteamAPI_ISteamUtils_IsAPICallCompleted")
	reg(&b.getAPICallResult, "SteamAPI_ISteamUtils_GetAPICallResult")

	reg(&b.getFileCount, "SteamAPI_ISteamRemoteStorage_GetFileCount")
	reg(&b.getFileNameAndSize, "SteamAPI_ISteamRemoteStorage_GetFileNameAndSize")
	reg(&b.fileExists, "SteamAPI_ISteamRemoteStorage_FileExists")
	reg(&b.getFileSize, "SteamAPI_ISteamRemoteStorage_GetFileSize")
	reg(&b.fileRead, "SteamAPI_ISteamRemoteStorage_FileRead")
	reg(&b.fileWrite, "SteamAPI_ISteamRemoteStorage_FileWrite")
	reg(&b.fileDelete, "SteamAPI_ISteamRemoteStorage_FileDelete")
	reg(&b.cloudEnabledForAccount, "SteamAPI_ISteamRemoteStorage_IsCloudEnabledForAccount")
	reg(&b.cloudEnabledForApp, "SteamAPI_ISteamRemoteStorage_IsCloudEnabledForApp")

	reg(&b.getStatInt32, "SteamAPI_ISteamUserStats_GetStatInt32")
	reg(&b.getStatFloat, "SteamAPI_ISteamUserStats_GetStatFloat")
	reg(&b.setStatInt32, "SteamAPI_ISteamUserStats_SetStatInt32")
	reg(&b.setStatFloat, "SteamAPI_ISteamUserStats_SetStatFloat")
	reg(&b.resetAllStats, "SteamAPI_ISteamUserStats_ResetAllStats")
	reg(&b.getGlobalStatInt64, "SteamAPI_ISteamUserStats_GetGlobalStatInt64")
	reg(&b.requestUserStats, "SteamAPI_ISteamUserStats_RequestUserStats")
	reg(&b.storeStats, "SteamAPI_ISteamUserStats_StoreStats")
	reg(&b.requestGlobalStats, "SteamAPI_ISteamUserStats_RequestGlobalStats")
	reg(&b.getNumAchievements, "SteamAPI_ISteamUserStats_GetNumAchievements")
	reg(&b.getAchievementName, "SteamAPI_ISteamUserStats_GetAchievementName")
	reg(&b.getAchievement, "SteamAPI_ISteamUserStats_GetAchievement")
	reg(&b.setAchievement, "SteamAPI_ISteamUserStats_SetAchievement")
	reg(&b.clearAchievement, "SteamAPI_ISteamUserStats_ClearAchievement")
	reg(&b.findLeaderboard, "SteamAPI_ISteamUserStats_FindLeaderboard")
	reg(&b.findOrCreateLeaderboard, "SteamAPI_ISteamUserStats_FindOrCreateLeaderboard")
	reg(&b.leaderboardName, "SteamAPI_ISteamUserStats_GetLeaderboardName")
	reg(&b.leaderboardEntryCount, "SteamAPI_ISteamUserStats_GetLeaderboardEntryCount")
	reg(&b.leaderboardSortMethod, "SteamAPI_ISteamUserStats_GetLeaderboardSortMethod")
	reg(&b.leaderboardDisplayType, "SteamAPI_ISteamUserStats_GetLeaderboardDisplayType")
	reg(&b.uploadScore, "SteamAPI_ISteamUserStats_UploadLeaderboardScore")
	reg(&b.downloadEntries, "SteamAPI_ISteamUserStats_DownloadLeaderboardEntries")
	reg(&b.getDownloadedEntry, "SteamAPI_ISteamUserStats_GetDownloadedLeaderboardEntry")

	reg(&b.isSubscribedApp, "SteamAPI_ISteamApps_BIsSubscribedApp")
	reg(&b.isAppInstalled, "SteamAPI_ISteamApps_BIsAppInstalled")
	reg(&b.isDLCInstalled, "SteamAPI_ISteamApps_BIsDlcInstalled")
	reg(&b.currentGameLanguage, "SteamAPI_ISteamApps_GetCurrentGameLanguage")
	reg(&b.appInstallDir, "SteamAPI_ISteamApps_GetAppInstallDir")
	reg(&b.appOwner, "SteamAPI_ISteamApps_GetAppOwner")
	reg(&b.currentBetaName, "SteamAPI_ISteamApps_GetCurrentBetaName")
}

// Init connects to the Steam client. An appID of 0 leaves discovery to the
// native SDK (steam_appid.txt); otherwise the id is exported through the
// environment the same way the official headers do it. The native init
// boolean is deliberately not surfaced; use IsSteamRunning afterwards.
func (b *Binding) Init(appID uint32) error {
	if appID != 0 {
		id := strconv.FormatUint(uint64(appID), 10)
		if err := os.Setenv("SteamAppId", id); err != nil {
			return err
		}
		if err := os.Setenv("SteamGameId", id); err != nil {
			return err
		}
	}

	b.steamInit()

	b.user = b.accessUser()
	b.friends = b.accessFriends()
	b.utils = b.accessUtils()
	b.remote = b.accessRemote()
	b.stats = b.accessStats()
	b.apps = b.accessApps()
	return nil
}

func (b *Binding) IsSteamRunning() bool {
	return b.steamIsRunning()
}

func (b *Binding) SteamID() uint64 {
	if b.user == 0 {
		return 0
	}
	return b.getSteamID(b.user)
}

func (b *Binding) AppID() uint32 {
	if b.utils == 0 {
		return 0
	}
	return b.getAppID(b.utils)
}

func (b *Binding) PersonaName() string {
	return b.getPersonaName(b.friends)
}

func (b *Binding) FriendCount(flags int32) int32 {
	return b.getFriendCount(b.friends, flags)
}

func (b *Binding) FriendByIndex(index, flags int32) uint64 {
	return b.getFriendByIndex(b.friends, index, flags)
}

func (b *Binding) FriendPersonaName(id uint64) string {
	return b.getFriendPersonaName(b.friends, id)
}

func (b *Binding) FriendPersonaState(id uint64) int32 {
	return b.getFriendPersonaState(b.friends, id)
}

func (b *Binding) FriendRelationship(id uint64) int32 {
	return b.getFriendRelationship(b.friends, id)
}

func (b *Binding) ActivateOverlay(dialog string) {
	b.activateOverlay(b.friends, dialog)
}

func (b *Binding) ActivateOverlayToWebPage(url string) {
	// Mode 0 is the default full-screen overlay browser.
	b.activateOverlayWebPage(b.friends, url, 0)
}

func (b *Binding) ActivateInviteDialog(lobbyID uint64) {
	b.activateInviteDialog(b.friends, lobbyID)
}

func (b *Binding) IsOverlayEnabled() bool {
	return b.isOverlayEnabled(b.utils)
}

func (b *Binding) SetRichPresence(key, value string) bool {
	return b.setRichPresence(b.friends, key, value)
}

func (b *Binding) ClearRichPresence() {
	b.clearRichPresence(b.friends)
}

func (b *Binding) IsCloudEnabledForAccount() bool {
	return b.cloudEnabledForAccount(b.remote)
}

func (b *Binding) IsCloudEnabledForApp() bool {
	return b.cloudEnabledForApp(b.remote)
}

func (b *Binding) FileCount() int32 {
	return b.getFileCount(b.remote)
}

func (b *Binding) FileNameAndSize(index int32) (string, int32) {
	var size int32
	name := b.getFileNameAndSize(b.remote, index, &size)
	return name, size
}

func (b *Binding) FileExists(name string) bool {
	return b.fileExists(b.remote, name)
}

func (b *Binding) FileRead(name string) []byte {
	size := b.getFileSize(b.remote, name)
	if size < 0 || !b.fileExists(b.remote, name) {
		return nil
	}
	if size == 0 {
		return []byte{}
	}
	buf := make([]byte, size)
	read := b.fileRead(b.remote, name, unsafe.Pointer(&buf[0]), size)
	if read <= 0 {
		return nil
	}
	return buf[:read]
}

func (b *Binding) FileWrite(name string, data []byte) bool {
	if len(data) == 0 {
		// The native call rejects a null buffer; write a single padding
		// byte count of zero via a dummy pointer.
		var dummy byte
		return b.fileWrite(b.remote, name, unsafe.Pointer(&dummy), 0)
	}
	return b.fileWrite(b.remote, name, unsafe.Pointer(&data[0]), int32(len(data)))
}

func (b *Binding) FileDelete(name string) bool {
	return b.fileDelete(b.remote, name)
}

func (b *Binding) StatInt(name string) (int32, bool) {
	var v int32
	ok := b.getStatInt32(b.stats, name, &v)
	return v, ok
}

func (b *Binding) StatFloat(name string) (float32, bool) {
	var v float32
	ok := b.getStatFloat(b.stats, name, &v)
	return v, ok
}

func (b *Binding) SetStatInt(name string, value int32) bool {
	return b.setStatInt32(b.stats, name, value)
}

func (b *Binding) SetStatFloat(name string, value float32) bool {
	return b.setStatFloat(b.stats, name, value)
}

func (b *Binding) ResetAllStats(achievementsToo bool) bool {
	return b.resetAllStats(b.stats, achievementsToo)
}

func (b *Binding) GlobalStatInt(name string) (int64, bool) {
	var v int64
	ok := b.getGlobalStatInt64(b.stats, name, &v)
	return v, ok
}

func (b *Binding) AchievementCount() int32 {
	return int32(b.getNumAchievements(b.stats))
}

func (b *Binding) AchievementName(index int32) string {
	if index < 0 {
		return ""
	}
	return b.getAchievementName(b.stats, uint32(index))
}

func (b *Binding) IsAchievementUnlocked(name string) (bool, bool) {
	var achieved bool
	ok := b.getAchievement(b.stats, name, &achieved)
	return achieved, ok
}

func (b *Binding) ClearAchievement(name string) bool {
	return b.clearAchievement(b.stats, name)
}

func (b *Binding) LeaderboardName(handle uint64) string {
	return b.leaderboardName(b.stats, handle)
}

func (b *Binding) LeaderboardEntryCount(handle uint64) int32 {
	return b.leaderboardEntryCount(b.stats, handle)
}

func (b *Binding) LeaderboardSortMethod(handle uint64) int32 {
	return b.leaderboardSortMethod(b.stats, handle)
}

func (b *Binding) LeaderboardDisplayType(handle uint64) int32 {
	return b.leaderboardDisplayType(b.stats, handle)
}

func (b *Binding) IsSubscribedApp(appID uint32) bool {
	return b.isSubscribedApp(b.apps, appID)
}

func (b *Binding) IsAppInstalled(appID uint32) bool {
	return b.isAppInstalled(b.apps, appID)
}

func (b *Binding) IsDLCInstalled(appID uint32) bool {
	return b.isDLCInstalled(b.apps, appID)
}

func (b *Binding) CurrentGameLanguage() string {
	return b.currentGameLanguage(b.apps)
}

const installDirMax = 1024

func (b *Binding) AppInstallDir(appID uint32) string {
	buf := make([]byte, installDirMax)
	n := b.appInstallDir(b.apps, appID, unsafe.Pointer(&buf[0]), installDirMax)
	if n == 0 {
		return ""
	}
	// n includes the trailing NUL.
	if n > installDirMax {
		n = installDirMax
	}
	return string(trimNUL(buf[:n]))
}

func (b *Binding) AppOwner() uint64 {
	return b.appOwner(b.apps)
}

const betaNameMax = 256

func (b *Binding) CurrentBetaName() string {
	buf := make([]byte, betaNameMax)
	if !b.currentBetaName(b.apps, unsafe.Pointer(&buf[0]), betaNameMax) {
		return ""
	}
	return string(trimNUL(buf))
}

func (b *Binding) ServerRealTime() uint32 {
	return b.getServerRealTime(b.utils)
}

func (b *Binding) IPCountry() string {
	return b.getIPCountry(b.utils)
}

func (b *Binding) IsRunningOnSteamDeck() bool {
	return b.isOnSteamDeck(b.utils)
}

func trimNUL(buf []byte) []byte {
	for i, c := range buf {
		if c == 0 {
			return buf[:i]
		}
	}
	return buf
}
