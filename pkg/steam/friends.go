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

// flagImmediate is the native friend flag for the regular friends list.
const flagImmediate int32 = 0x04

// Friend is one row of the local user's social graph.
type Friend struct {
	Name  string
	ID    SteamID
	State PersonaState
}

// PersonaName returns the local user's display name, or absent before the
// Steam client has delivered it (native sentinel: empty string).
func (c *Client) PersonaName() (string, bool) {
	name := c.api.PersonaName()
	return name, name != ""
}

// FriendCount returns the size of the regular friends list. A count of 0 is
// a valid result; absent (native sentinel: -1) means the local user is not
// logged in.
func (c *Client) FriendCount() (int, bool) {
	n := c.api.FriendCount(flagImmediate)
	if n < 0 {
		return 0, false
	}
	return int(n), true
}

// Friends lists the regular friends list as a point-in-time snapshot.
// Friends whose display name has not been delivered yet appear with an
// empty Name.
func (c *Client) Friends() []Friend {
	n := c.api.FriendCount(flagImmediate)
	if n <= 0 {
		return nil
	}
	out := make([]Friend, 0, n)
	for i := int32(0); i < n; i++ {
		id := c.api.FriendByIndex(i, flagImmediate)
		if id == 0 {
			// List shrank between the count and this read.
			break
		}
		out = append(out, Friend{
			ID:    SteamID(id),
			Name:  c.api.FriendPersonaName(id),
			State: PersonaStateFromCode(c.api.FriendPersonaState(id)),
		})
	}
	return out
}

// PersonaState returns the online status of the given user, as far as the
// local client knows it. Users outside the social graph report offline.
func (c *Client) PersonaState(id SteamID) PersonaState {
	return PersonaStateFromCode(c.api.FriendPersonaState(uint64(id)))
}

// Relationship classifies the link between the local user and id.
func (c *Client) Relationship(id SteamID) Relationship {
	return RelationshipFromCode(c.api.FriendRelationship(uint64(id)))
}
