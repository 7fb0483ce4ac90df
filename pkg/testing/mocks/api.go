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

// Package mocks provides testify-based stand-ins for the native Steamworks
// surface, for use by this repo's tests and by downstream hosts.
package mocks

import (
	"github.com/SteamlineProject/steamline/pkg/native"
	"github.com/stretchr/testify/mock"
)

// MockAPI is a mock implementation of native.API using testify/mock.
//
// Asynchronous methods honor the pump contract: the completion callback is
// queued and fires during the next RunCallbacks call, never inline. The
// resolution value is taken from the expectation's Return values, e.g.:
//
//	api.On("SetAchievement", "ACH_WIN").Return(true)
//	api.On("RunCallbacks").Return()
//
// resolves the unlock with true on the next RunCallbacks.
type MockAPI struct {
	mock.Mock
	pending []func()
}

var _ native.API = (*MockAPI)(nil)

func (m *MockAPI) queue(fn func()) {
	m.pending = append(m.pending, fn)
}

// RunCallbacks records the call and fires all callbacks queued so far.
// Callbacks queued while draining (by code running inside a callback) wait
// for the next pump, matching the native dispatch model.
func (m *MockAPI) RunCallbacks() {
	m.Called()
	drained := m.pending
	m.pending = nil
	for _, fn := range drained {
		fn()
	}
}

func (m *MockAPI) Init(appID uint32) error {
	args := m.Called(appID)
	return args.Error(0)
}

func (m *MockAPI) IsSteamRunning() bool {
	return m.Called().Bool(0)
}

func (m *MockAPI) SteamID() uint64 {
	return m.Called().Get(0).(uint64)
}

func (m *MockAPI) AppID() uint32 {
	return m.Called().Get(0).(uint32)
}

func (m *MockAPI) PersonaName() string {
	return m.Called().String(0)
}

func (m *MockAPI) FriendCount(flags int32) int32 {
	return m.Called(flags).Get(0).(int32)
}

func (m *MockAPI) FriendByIndex(index, flags int32) uint64 {
	return m.Called(index, flags).Get(0).(uint64)
}

func (m *MockAPI) FriendPersonaName(id uint64) string {
	return m.Called(id).String(0)
}

func (m *MockAPI) FriendPersonaState(id uint64) int32 {
	return m.Called(id).Get(0).(int32)
}

func (m *MockAPI) FriendRelationship(id uint64) int32 {
	return m.Called(id).Get(0).(int32)
}

func (m *MockAPI) IsCloudEnabledForAccount() bool {
	return m.Called().Bool(0)
}

func (m *MockAPI) IsCloudEnabledForApp() bool {
	return m.Called().Bool(0)
}

func (m *MockAPI) FileCount() int32 {
	return m.Called().Get(0).(int32)
}

func (m *MockAPI) FileNameAndSize(index int32) (string, int32) {
	args := m.Called(index)
	return args.String(0), args.Get(1).(int32)
}

func (m *MockAPI) FileExists(name string) bool {
	return m.Called(name).Bool(0)
}

func (m *MockAPI) FileRead(name string) []byte {
	args := m.Called(name)
	if data, ok := args.Get(0).([]byte); ok {
		return data
	}
	return nil
}

func (m *MockAPI) FileWrite(name string, data []byte) bool {
	return m.Called(name, data).Bool(0)
}

func (m *MockAPI) FileDelete(name string) bool {
	return m.Called(name).Bool(0)
}

func (m *MockAPI) StatInt(name string) (int32, bool) {
	args := m.Called(name)
	return args.Get(0).(int32), args.Bool(1)
}

func (m *MockAPI) StatFloat(name string) (float32, bool) {
	args := m.Called(name)
	return args.Get(0).(float32), args.Bool(1)
}

func (m *MockAPI) SetStatInt(name string, value int32) bool {
	return m.Called(name, value).Bool(0)
}

func (m *MockAPI) SetStatFloat(name string, value float32) bool {
	return m.Called(name, value).Bool(0)
}

func (m *MockAPI) ResetAllStats(achievementsToo bool) bool {
	return m.Called(achievementsToo).Bool(0)
}

func (m *MockAPI) GlobalStatInt(name string) (int64, bool) {
	args := m.Called(name)
	return args.Get(0).(int64), args.Bool(1)
}

func (m *MockAPI) RequestCurrentStats(done func(ok bool)) {
	args := m.Called()
	m.queue(func() { done(args.Bool(0)) })
}

func (m *MockAPI) StoreStats(done func(ok bool)) {
	args := m.Called()
	m.queue(func() { done(args.Bool(0)) })
}

func (m *MockAPI) RequestGlobalStats(historyDays int32, done func(ok bool)) {
	args := m.Called(historyDays)
	m.queue(func() { done(args.Bool(0)) })
}

func (m *MockAPI) AchievementCount() int32 {
	return m.Called().Get(0).(int32)
}

func (m *MockAPI) AchievementName(index int32) string {
	return m.Called(index).String(0)
}

func (m *MockAPI) IsAchievementUnlocked(name string) (bool, bool) {
	args := m.Called(name)
	return args.Bool(0), args.Bool(1)
}

func (m *MockAPI) SetAchievement(name string, done func(ok bool)) {
	args := m.Called(name)
	m.queue(func() { done(args.Bool(0)) })
}

func (m *MockAPI) ClearAchievement(name string) bool {
	return m.Called(name).Bool(0)
}

func (m *MockAPI) FindLeaderboard(name string, done func(handle uint64)) {
	args := m.Called(name)
	m.queue(func() { done(args.Get(0).(uint64)) })
}

func (m *MockAPI) FindOrCreateLeaderboard(name string, sortMethod, displayType int32, done func(handle uint64)) {
	args := m.Called(name, sortMethod, displayType)
	m.queue(func() { done(args.Get(0).(uint64)) })
}

func (m *MockAPI) LeaderboardName(handle uint64) string {
	return m.Called(handle).String(0)
}

func (m *MockAPI) LeaderboardEntryCount(handle uint64) int32 {
	return m.Called(handle).Get(0).(int32)
}

func (m *MockAPI) LeaderboardSortMethod(handle uint64) int32 {
	return m.Called(handle).Get(0).(int32)
}

func (m *MockAPI) LeaderboardDisplayType(handle uint64) int32 {
	return m.Called(handle).Get(0).(int32)
}

func (m *MockAPI) UploadScore(handle uint64, method, score int32, done func(ok bool)) {
	args := m.Called(handle, method, score)
	m.queue(func() { done(args.Bool(0)) })
}

func (m *MockAPI) DownloadEntries(handle uint64, request, start, end int32, done func(entries []native.LeaderboardEntry)) {
	args := m.Called(handle, request, start, end)
	m.queue(func() {
		if entries, ok := args.Get(0).([]native.LeaderboardEntry); ok {
			done(entries)
			return
		}
		done(nil)
	})
}

func (m *MockAPI) ActivateOverlay(dialog string) {
	m.Called(dialog)
}

func (m *MockAPI) ActivateOverlayToWebPage(url string) {
	m.Called(url)
}

func (m *MockAPI) ActivateInviteDialog(lobbyID uint64) {
	m.Called(lobbyID)
}

func (m *MockAPI) IsOverlayEnabled() bool {
	return m.Called().Bool(0)
}

func (m *MockAPI) SetRichPresence(key, value string) bool {
	return m.Called(key, value).Bool(0)
}

func (m *MockAPI) ClearRichPresence() {
	m.Called()
}

func (m *MockAPI) IsSubscribedApp(appID uint32) bool {
	return m.Called(appID).Bool(0)
}

func (m *MockAPI) IsAppInstalled(appID uint32) bool {
	return m.Called(appID).Bool(0)
}

func (m *MockAPI) IsDLCInstalled(appID uint32) bool {
	return m.Called(appID).Bool(0)
}

func (m *MockAPI) CurrentGameLanguage() string {
	return m.Called().String(0)
}

func (m *MockAPI) AppInstallDir(appID uint32) string {
	return m.Called(appID).String(0)
}

func (m *MockAPI) AppOwner() uint64 {
	return m.Called().Get(0).(uint64)
}

func (m *MockAPI) CurrentBetaName() string {
	return m.Called().String(0)
}

func (m *MockAPI) ServerRealTime() uint32 {
	return m.Called().Get(0).(uint32)
}

func (m *MockAPI) IPCountry() string {
	return m.Called().String(0)
}

func (m *MockAPI) IsRunningOnSteamDeck() bool {
	return m.Called().Bool(0)
}
