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

func testClient(api *mocks.MockAPI) *Client {
	return &Client{api: api, initialized: true}
}

func TestPersonaName(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("PersonaName").Return("gordon")
	client := testClient(api)

	name, ok := client.PersonaName()
	assert.True(t, ok)
	assert.Equal(t, "gordon", name)
}

func TestPersonaNameAbsent(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("PersonaName").Return("")
	client := testClient(api)

	_, ok := client.PersonaName()
	assert.False(t, ok)
}

func TestFriendCountZeroIsPresent(t *testing.T) {
	t.Parallel()

	// A player with no friends is a valid 0, distinct from the -1
	// not-logged-in sentinel.
	api := &mocks.MockAPI{}
	api.On("FriendCount", flagImmediate).Return(int32(0))
	client := testClient(api)

	n, ok := client.FriendCount()
	assert.True(t, ok)
	assert.Equal(t, 0, n)
}

func TestFriendCountAbsentWhenLoggedOut(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("FriendCount", flagImmediate).Return(int32(-1))
	client := testClient(api)

	_, ok := client.FriendCount()
	assert.False(t, ok)
}

func TestFriendCountIdempotent(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("FriendCount", flagImmediate).Return(int32(3))
	client := testClient(api)

	first, _ := client.FriendCount()
	second, _ := client.FriendCount()
	assert.Equal(t, first, second)
}

func TestFriendsList(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("FriendCount", flagImmediate).Return(int32(2))
	api.On("FriendByIndex", int32(0), flagImmediate).Return(uint64(101))
	api.On("FriendByIndex", int32(1), flagImmediate).Return(uint64(102))
	api.On("FriendPersonaName", uint64(101)).Return("alyx")
	api.On("FriendPersonaName", uint64(102)).Return("barney")
	api.On("FriendPersonaState", uint64(101)).Return(int32(1))
	// An overflow code the closed enum does not know yet.
	api.On("FriendPersonaState", uint64(102)).Return(int32(42))
	client := testClient(api)

	friends := client.Friends()
	assert.Equal(t, []Friend{
		{ID: 101, Name: "alyx", State: PersonaStateOnline},
		{ID: 102, Name: "barney", State: PersonaStateUnknown},
	}, friends)
}

func TestFriendsListShrinksMidIteration(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("FriendCount", flagImmediate).Return(int32(2))
	api.On("FriendByIndex", int32(0), flagImmediate).Return(uint64(101))
	api.On("FriendByIndex", int32(1), flagImmediate).Return(uint64(0))
	api.On("FriendPersonaName", uint64(101)).Return("alyx")
	api.On("FriendPersonaState", uint64(101)).Return(int32(0))
	client := testClient(api)

	friends := client.Friends()
	assert.Len(t, friends, 1)
}

func TestRelationship(t *testing.T) {
	t.Parallel()

	api := &mocks.MockAPI{}
	api.On("FriendRelationship", uint64(101)).Return(int32(3))
	api.On("FriendRelationship", uint64(999)).Return(int32(77))
	client := testClient(api)

	assert.Equal(t, RelationshipFriend, client.Relationship(101))
	assert.Equal(t, RelationshipUnknown, client.Relationship(999))
}
