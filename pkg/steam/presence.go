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

// Rich presence is free-form key/value status data attached to the session
// and visible to friends. The native SDK caps key and value length and the
// number of keys; exceeding a cap makes SetRichPresence return false.

// SetRichPresence sets one key. Setting a key to "" removes it.
func (c *Client) SetRichPresence(key, value string) bool {
	return c.api.SetRichPresence(key, value)
}

// ClearRichPresence removes all rich presence keys for the session.
func (c *Client) ClearRichPresence() {
	c.api.ClearRichPresence()
}
