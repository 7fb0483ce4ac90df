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

func TestStatIntPresentAndAbsent(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("StatInt", "games_won").Return(int32(12), true)
	api.On("StatInt", "no_such_stat").Return(int32(0), false)
	client := testClient(api)

	v, ok := client.StatInt("games_won")
	require.True(t, ok)
	assert.Equal(t, int32(12), v)

	_, ok = client.StatInt("no_such_stat")
	assert.False(t, ok)
}

func TestStatZeroIsPresent(t *testing.T) {
	t.Parallel()

	// A legitimately zero stat is present; absence is carried by the ok
	// flag, never inferred from the value.
	api := &mocks.MockAPI{}
	api.On("StatInt", "deaths").Return(int32(0), true)
	client := testClient(api)

	v, ok := client.StatInt("deaths")
	assert.True(t, ok)
	assert.Equal(t, int32(0), v)
}

func TestSetStatPassThrough(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("SetStatInt", "games_won", int32(13)).Return(true)
	api.On("SetStatFloat", "accuracy", float32(0.5)).Return(true)
	client := testClient(api)

	assert.True(t, client.SetStatInt("games_won", 13))
	assert.True(t, client.SetStatFloat("accuracy", 0.5))
	api.AssertExpectations(t)
}

func TestStoreStatsResolvesOnPump(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("StoreStats").Return(true)
	api.On("RunCallbacks").Return()
	client := testClient(api)

	call := client.StoreStats()
	_, ok := call.Result()
	assert.False(t, ok)

	client.Pump()

	stored, ok := call.Result()
	require.True(t, ok)
	assert.True(t, stored)
}

func TestGlobalStatAbsentBeforeRequestCompletes(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("GlobalStatInt", "global_wins").Return(int64(0), false).Once()
	api.On("RequestGlobalStats", int32(7)).Return(true)
	api.On("RunCallbacks").Return()
	api.On("GlobalStatInt", "global_wins").Return(int64(123456), true).Once()
	client := testClient(api)

	// Queried too early: absent, not an error. The library enforces no
	// ordering between the request and the read.
	_, ok := client.GlobalStatInt("global_wins")
	assert.False(t, ok)

	call := client.RequestGlobalStats(7)
	client.Pump()
	received, ok := call.Result()
	require.True(t, ok)
	assert.True(t, received)

	v, ok := client.GlobalStatInt("global_wins")
	require.True(t, ok)
	assert.Equal(t, int64(123456), v)
}

func TestResetAllStats(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("ResetAllStats", true).Return(true)
	client := testClient(api)

	assert.True(t, client.ResetAllStats(true))
}
