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

func TestActivateOverlayDialogCodes(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("ActivateOverlay", "achievements").Return()
	api.On("ActivateOverlay", "officialgamegroup").Return()
	client := testClient(api)

	client.ActivateOverlay(OverlayDialogAchievements)
	client.ActivateOverlay(OverlayDialogOfficialGameGroup)
	api.AssertExpectations(t)
}

func TestActivateOverlayToWebPage(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("ActivateOverlayToWebPage", "https://example.com/manual").Return()
	client := testClient(api)

	client.ActivateOverlayToWebPage("https://example.com/manual")
	api.AssertExpectations(t)
}

func TestActivateInviteDialog(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("ActivateInviteDialog", uint64(109775240975)).Return()
	client := testClient(api)

	client.ActivateInviteDialog(SteamID(109775240975))
	api.AssertExpectations(t)
}

func TestIsOverlayEnabled(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("IsOverlayEnabled").Return(true)
	client := testClient(api)

	assert.True(t, client.IsOverlayEnabled())
}

func TestRichPresence(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("SetRichPresence", "status", "In the menu").Return(true)
	api.On("SetRichPresence", "connect", string(make([]byte, 300))).Return(false)
	api.On("ClearRichPresence").Return()
	client := testClient(api)

	assert.True(t, client.SetRichPresence("status", "In the menu"))
	// Overlong values are rejected natively; pass the false through.
	assert.False(t, client.SetRichPresence("connect", string(make([]byte, 300))))
	client.ClearRichPresence()
	api.AssertExpectations(t)
}
