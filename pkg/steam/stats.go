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

// Stats are keyed by the API names configured on the Steamworks partner
// site. Reads are absent until RequestCurrentStats has completed; the
// library does not enforce that ordering, it only reflects it.

// StatInt returns a per-user integer stat.
func (c *Client) StatInt(name string) (int32, bool) {
	return c.api.StatInt(name)
}

// StatFloat returns a per-user float stat.
func (c *Client) StatFloat(name string) (float32, bool) {
	return c.api.StatFloat(name)
}

// SetStatInt stages a new value locally. It is not persisted until
// StoreStats resolves.
func (c *Client) SetStatInt(name string, value int32) bool {
	return c.api.SetStatInt(name, value)
}

// SetStatFloat stages a new value locally.
func (c *Client) SetStatFloat(name string, value float32) bool {
	return c.api.SetStatFloat(name, value)
}

// RequestCurrentStats asks the backend for the local user's stats and
// achievements. Most reads return absent until this resolves true.
func (c *Client) RequestCurrentStats() *Call[bool] {
	call := newCall[bool]()
	c.api.RequestCurrentStats(call.resolve)
	return call
}

// StoreStats persists all staged stat and achievement changes to the
// backend. Rate limited natively; a false resolution means nothing was
// written and the staged values remain pending.
func (c *Client) StoreStats() *Call[bool] {
	call := newCall[bool]()
	c.api.StoreStats(call.resolve)
	return call
}

// RequestGlobalStats fetches aggregated stats for up to historyDays days of
// per-day history (native maximum 60). GlobalStatInt is absent until this
// resolves.
func (c *Client) RequestGlobalStats(historyDays int) *Call[bool] {
	call := newCall[bool]()
	c.api.RequestGlobalStats(int32(historyDays), call.resolve)
	return call
}

// GlobalStatInt returns an aggregated stat total. Absent until a
// RequestGlobalStats call has completed in this session.
func (c *Client) GlobalStatInt(name string) (int64, bool) {
	return c.api.GlobalStatInt(name)
}

// ResetAllStats clears all per-user stats, and achievements too when
// achievementsToo is set. Development aid; takes effect on the next
// StoreStats.
func (c *Client) ResetAllStats(achievementsToo bool) bool {
	return c.api.ResetAllStats(achievementsToo)
}
