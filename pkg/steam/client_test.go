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
	"errors"
	"testing"

	"github.com/SteamlineProject/steamline/pkg/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitNilAPI(t *testing.T) {
	t.Parallel()

	client, err := Init(nil)
	require.ErrorIs(t, err, ErrNilAPI)
	assert.Nil(t, client)
}

func TestInitDefaultAppID(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	// No app id option: the native SDK discovers it from steam_appid.txt.
	api.On("Init", uint32(0)).Return(nil)

	client, err := Init(api)
	require.NoError(t, err)
	require.NotNil(t, client)
	api.AssertExpectations(t)
}

func TestInitWithAppID(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("Init", uint32(480)).Return(nil)

	_, err := Init(api, WithAppID(480))
	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestInitLoadError(t *testing.T) {
	t.Parallel()

	loadErr := errors.New("library not found")
	api := &mocks.MockAPI{}
	api.On("Init", uint32(0)).Return(loadErr)

	client, err := Init(api)
	require.ErrorIs(t, err, loadErr)
	assert.Nil(t, client)
}

func TestStatusRecomputedPerCall(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("Init", uint32(480)).Return(nil)
	api.On("SteamID").Return(uint64(76561197960287930)).Once()
	api.On("AppID").Return(uint32(480)).Once()
	// The native client logs in between the two snapshots.
	api.On("SteamID").Return(uint64(76561197960287931)).Once()
	api.On("AppID").Return(uint32(480)).Once()

	client, err := Init(api, WithAppID(480))
	require.NoError(t, err)

	first := client.Status()
	assert.True(t, first.Initialized)
	assert.Equal(t, SteamID(76561197960287930), first.SteamID)
	assert.Equal(t, uint32(480), first.AppID)

	second := client.Status()
	assert.Equal(t, SteamID(76561197960287931), second.SteamID)
	api.AssertExpectations(t)
}

func TestIsSteamRunningPassThrough(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("Init", uint32(0)).Return(nil)
	api.On("IsSteamRunning").Return(false).Once()
	api.On("IsSteamRunning").Return(true).Once()

	client, err := Init(api)
	require.NoError(t, err)

	assert.False(t, client.IsSteamRunning())
	assert.True(t, client.IsSteamRunning())
}

func TestPumpDrivesNativeCallbacks(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("Init", uint32(0)).Return(nil)
	api.On("RunCallbacks").Return().Twice()

	client, err := Init(api)
	require.NoError(t, err)

	client.Pump()
	client.Pump()
	api.AssertExpectations(t)
}

func TestSteamIDString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "76561197960287930", SteamID(76561197960287930).String())
	assert.False(t, SteamID(0).Valid())
	assert.True(t, SteamID(1).Valid())
}
