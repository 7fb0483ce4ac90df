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

// AppID identifies a Steam application.
type AppID uint32

// IsSubscribedApp reports whether the active account owns appID.
func (c *Client) IsSubscribedApp(appID AppID) bool {
	return c.api.IsSubscribedApp(uint32(appID))
}

// IsAppInstalled reports whether appID is installed locally. For offline
// checks without a running Steam client, see pkg/steamdir.
func (c *Client) IsAppInstalled(appID AppID) bool {
	return c.api.IsAppInstalled(uint32(appID))
}

// IsDLCInstalled reports whether the given DLC is owned and installed.
func (c *Client) IsDLCInstalled(appID AppID) bool {
	return c.api.IsDLCInstalled(uint32(appID))
}

// CurrentGameLanguage returns the language the user selected for this app,
// as an API language code such as "english".
func (c *Client) CurrentGameLanguage() string {
	return c.api.CurrentGameLanguage()
}

// AppInstallDir returns the absolute install path of appID, or absent when
// it is not installed (native sentinel: empty string).
func (c *Client) AppInstallDir(appID AppID) (string, bool) {
	dir := c.api.AppInstallDir(uint32(appID))
	return dir, dir != ""
}

// AppOwner returns the account that actually owns the running app. Differs
// from Status().SteamID when the app is borrowed through family sharing.
func (c *Client) AppOwner() SteamID {
	return SteamID(c.api.AppOwner())
}

// CurrentBetaName returns the opted-in beta branch, or absent on the
// default branch (native sentinel: empty string).
func (c *Client) CurrentBetaName() (string, bool) {
	name := c.api.CurrentBetaName()
	return name, name != ""
}
