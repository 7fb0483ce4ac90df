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

// Package ffi is the purego-backed implementation of native.API.
//
// It loads the Steamworks redistributable shipped next to the game binary
// (steam_api64.dll, libsteam_api.so or libsteam_api.dylib), registers the
// flat C exports, and adapts them to the native.API surface. Asynchronous
// requests are tracked by their SteamAPICall_t handle and polled for
// completion during RunCallbacks via ISteamUtils; completion callbacks
// therefore fire only while the host pumps, matching the SDK's dispatch
// model.
//
// Everything here is single-threaded by contract: one Binding, driven from
// the host's main loop.
package ffi
