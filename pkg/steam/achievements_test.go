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

import (
	"testing"

	"github.com/SteamlineProject/steamline/pkg/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlockAchievementResolvesOnPump(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("SetAchievement", "ACH_WIN_ONE_GAME").Return(true)
	api.On("RunCallbacks").Return()
	client := testClient(api)

	call := client.UnlockAchievement("ACH_WIN_ONE_GAME")

	// Pending until the pump runs.
	_, ok := call.Result()
	assert.False(t, ok)

	client.Pump()

	unlocked, ok := call.Result()
	require.True(t, ok)
	assert.True(t, unlocked)
}

func TestUnlockAchievementNativeFailure(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("SetAchievement", "ACH_BOGUS").Return(false)
	api.On("RunCallbacks").Return()
	client := testClient(api)

	call := client.UnlockAchievement("ACH_BOGUS")
	client.Pump()

	unlocked, ok := call.Result()
	require.True(t, ok)
	assert.False(t, unlocked)
}

func TestAchievementNames(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("AchievementCount").Return(int32(2))
	api.On("AchievementName", int32(0)).Return("ACH_WIN_ONE_GAME")
	api.On("AchievementName", int32(1)).Return("ACH_WIN_100_GAMES")
	client := testClient(api)

	assert.Equal(t,
		[]string{"ACH_WIN_ONE_GAME", "ACH_WIN_100_GAMES"},
		client.AchievementNames())
}

func TestIsAchievementUnlockedAbsentForUnknownName(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("IsAchievementUnlocked", "ACH_NOPE").Return(false, false)
	client := testClient(api)

	_, ok := client.IsAchievementUnlocked("ACH_NOPE")
	assert.False(t, ok)
}

func TestClearAchievement(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("ClearAchievement", "ACH_WIN_ONE_GAME").Return(true)
	client := testClient(api)

	assert.True(t, client.ClearAchievement("ACH_WIN_ONE_GAME"))
}
