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

// Package steam is the typed client surface over the native Steamworks SDK.
//
// A Client is created once per process with Init and passed a native.API,
// normally the purego binding from pkg/native/ffi. Every method is a direct
// pass-through to one native call: no caching, no retries, no ordering
// beyond what the native SDK provides.
//
// The pump contract: asynchronous operations (achievements, stats,
// leaderboards) return a *Call future that resolves only while Pump is
// running. Hosts must call Pump on a steady cadence, once per rendered
// frame or roughly every 100ms. If the pump stops, outstanding futures
// never resolve. helpers.PumpLoop covers headless hosts.
//
// Sequencing is the caller's job. Querying a stat before the matching
// request call has completed yields an absent result, not an error.
package steam
