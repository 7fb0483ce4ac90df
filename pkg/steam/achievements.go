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

// AchievementNames returns the API names of all achievements defined for
// the app, in native index order.
func (c *Client) AchievementNames() []string {
	n := c.api.AchievementCount()
	if n <= 0 {
		return nil
	}
	out := make([]string, 0, n)
	for i := int32(0); i < n; i++ {
		name := c.api.AchievementName(i)
		if name == "" {
			break
		}
		out = append(out, name)
	}
	return out
}

// IsAchievementUnlocked reports the local unlock state. Absent when name is
// not a defined achievement or current stats have not been received yet.
func (c *Client) IsAchievementUnlocked(name string) (unlocked, ok bool) {
	return c.api.IsAchievementUnlocked(name)
}

// UnlockAchievement marks the achievement unlocked and resolves to the
// native store result once the Steam backend has acknowledged it. The
// overlay notification is triggered by the native SDK, not by this call.
func (c *Client) UnlockAchievement(name string) *Call[bool] {
	call := newCall[bool]()
	c.api.SetAchievement(name, call.resolve)
	return call
}

// ClearAchievement relocks the achievement. Intended for development;
// returns false when name is unknown.
func (c *Client) ClearAchievement(name string) bool {
	return c.api.ClearAchievement(name)
}
