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

// Overlay activation is fire-and-forget: the native SDK renders the overlay
// itself and reports nothing back. When the overlay is disabled (launch
// option, or unsupported platform) these calls are silently ignored
// natively; IsOverlayEnabled is the only signal.

// ActivateOverlay opens the overlay on the given dialog.
func (c *Client) ActivateOverlay(dialog OverlayDialog) {
	c.api.ActivateOverlay(string(dialog))
}

// ActivateOverlayToWebPage opens the overlay web browser at url.
func (c *Client) ActivateOverlayToWebPage(url string) {
	c.api.ActivateOverlayToWebPage(url)
}

// ActivateInviteDialog opens the overlay invite dialog for the given lobby.
func (c *Client) ActivateInviteDialog(lobby SteamID) {
	c.api.ActivateInviteDialog(uint64(lobby))
}

// IsOverlayEnabled reports whether the overlay has hooked into the process.
// False for a short window after Init even when the overlay works.
func (c *Client) IsOverlayEnabled() bool {
	return c.api.IsOverlayEnabled()
}
