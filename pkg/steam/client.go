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
	"errors"
	"strconv"

	"github.com/SteamlineProject/steamline/pkg/native"
	"github.com/rs/zerolog/log"
)

// ErrNilAPI is returned by Init when no native binding was supplied.
var ErrNilAPI = errors.New("steam: nil native API")

// SteamID identifies one Steam account. The zero value is never a valid
// account.
type SteamID uint64

// String renders the id in the decimal form used across Steam's own
// tooling and URLs.
func (id SteamID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Valid reports whether the id refers to an account at all.
func (id SteamID) Valid() bool {
	return id != 0
}

// Status is a point-in-time snapshot of the session. It is recomputed on
// every call to Client.Status, never cached.
type Status struct {
	SteamID     SteamID
	AppID       uint32
	Initialized bool
}

// Client is the opaque session handle for one initialized connection to the
// native SDK. It is constructed only by Init and must not be copied. All
// methods assume single-threaded use from the host's main loop; the library
// performs no locking of its own.
type Client struct {
	api         native.API
	initialized bool
}

// Option configures Init.
type Option func(*initOptions)

type initOptions struct {
	appID uint32
}

// WithAppID pins the application id instead of letting the native SDK read
// it from steam_appid.txt.
func WithAppID(appID uint32) Option {
	return func(o *initOptions) { o.appID = appID }
}

// Init establishes the process-wide connection to the local Steam client.
// It must be called exactly once, before any other operation.
//
// A native-side failure (Steam client not running) is not detected here;
// per the SDK's model it is only observable afterwards through
// IsSteamRunning. The returned error covers this layer only, e.g. the
// native library failing to load.
func Init(api native.API, opts ...Option) (*Client, error) {
	if api == nil {
		return nil, ErrNilAPI
	}
	var o initOptions
	for _, opt := range opts {
		opt(&o)
	}
	if err := api.Init(o.appID); err != nil {
		return nil, err
	}
	log.Debug().Uint32("app_id", o.appID).Msg("steam client initialized")
	return &Client{api: api, initialized: true}, nil
}

// Pump drains the native SDK's callback queue. Hosts must call it on a
// steady cadence (once per frame, or every ~100ms); outstanding futures
// resolve only during this call, and skipping it silently stalls every
// asynchronous operation.
func (c *Client) Pump() {
	c.api.RunCallbacks()
}

// IsSteamRunning reports whether a Steam client is reachable. This is the
// check hosts use after Init to detect the "Steam not running" case.
func (c *Client) IsSteamRunning() bool {
	return c.api.IsSteamRunning()
}

// Status returns a fresh session snapshot.
func (c *Client) Status() Status {
	return Status{
		SteamID:     SteamID(c.api.SteamID()),
		AppID:       c.api.AppID(),
		Initialized: c.initialized,
	}
}
