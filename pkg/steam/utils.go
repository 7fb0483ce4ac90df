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

import "time"

// ServerRealTime returns the Steam server's clock. Absent before the
// client has synced (native sentinel: 0).
func (c *Client) ServerRealTime() (time.Time, bool) {
	t := c.api.ServerRealTime()
	if t == 0 {
		return time.Time{}, false
	}
	return time.Unix(int64(t), 0), true
}

// IPCountry returns the two letter country code Steam resolved for the
// user's IP, or absent when unknown (native sentinel: empty string).
func (c *Client) IPCountry() (string, bool) {
	cc := c.api.IPCountry()
	return cc, cc != ""
}

// IsRunningOnSteamDeck reports whether the process runs on a Steam Deck.
func (c *Client) IsRunningOnSteamDeck() bool {
	return c.api.IsRunningOnSteamDeck()
}
