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

package helpers

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultPumpInterval matches the ~100ms cadence the native SDK expects
// from hosts without a per-frame loop.
const DefaultPumpInterval = 100 * time.Millisecond

// Pumper is satisfied by steam.Client.
type Pumper interface {
	Pump()
}

// PumpLoop drives p.Pump on a steady cadence until ctx ends. Headless
// hosts run it on a dedicated goroutine; game hosts with a render loop
// should call Pump per frame instead and skip this.
func PumpLoop(ctx context.Context, p Pumper, clock clockwork.Clock, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPumpInterval
	}
	ticker := clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			p.Pump()
		}
	}
}
