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
	"time"

	"github.com/SteamlineProject/steamline/pkg/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerRealTime(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("ServerRealTime").Return(uint32(1756000000))
	client := testClient(api)

	ts, ok := client.ServerRealTime()
	require.True(t, ok)
	assert.Equal(t, time.Unix(1756000000, 0), ts)
}

func TestServerRealTimeAbsentBeforeSync(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("ServerRealTime").Return(uint32(0))
	client := testClient(api)

	_, ok := client.ServerRealTime()
	assert.False(t, ok)
}

func TestIPCountry(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("IPCountry").Return("DE").Once()
	api.On("IPCountry").Return("").Once()
	client := testClient(api)

	cc, ok := client.IPCountry()
	assert.True(t, ok)
	assert.Equal(t, "DE", cc)

	_, ok = client.IPCountry()
	assert.False(t, ok)
}

func TestIsRunningOnSteamDeck(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("IsRunningOnSteamDeck").Return(true)
	client := testClient(api)

	assert.True(t, client.IsRunningOnSteamDeck())
}
