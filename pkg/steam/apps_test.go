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
)

func TestAppsPassThrough(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("IsSubscribedApp", uint32(480)).Return(true)
	api.On("IsAppInstalled", uint32(480)).Return(true)
	api.On("IsDLCInstalled", uint32(481)).Return(false)
	api.On("CurrentGameLanguage").Return("english")
	api.On("AppOwner").Return(uint64(76561197960287930))
	client := testClient(api)

	assert.True(t, client.IsSubscribedApp(480))
	assert.True(t, client.IsAppInstalled(480))
	assert.False(t, client.IsDLCInstalled(481))
	assert.Equal(t, "english", client.CurrentGameLanguage())
	assert.Equal(t, SteamID(76561197960287930), client.AppOwner())
}

func TestAppInstallDir(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("AppInstallDir", uint32(480)).Return("/home/user/.local/share/Steam/steamapps/common/Spacewar")
	api.On("AppInstallDir", uint32(999)).Return("")
	client := testClient(api)

	dir, ok := client.AppInstallDir(480)
	assert.True(t, ok)
	assert.NotEmpty(t, dir)

	_, ok = client.AppInstallDir(999)
	assert.False(t, ok)
}

func TestCurrentBetaName(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("CurrentBetaName").Return("").Once()
	api.On("CurrentBetaName").Return("beta").Once()
	client := testClient(api)

	// Default branch: absent, not an empty branch name.
	_, ok := client.CurrentBetaName()
	assert.False(t, ok)

	name, ok := client.CurrentBetaName()
	assert.True(t, ok)
	assert.Equal(t, "beta", name)
}
