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

import "context"

// Call is the future returned by asynchronous operations. It resolves
// exactly once, and only while Client.Pump is running; there is no timeout
// and no way to cancel the underlying native request. A Call whose pump
// stops being driven stays pending forever.
type Call[T any] struct {
	done  chan struct{}
	value T
}

func newCall[T any]() *Call[T] {
	return &Call[T]{done: make(chan struct{})}
}

// resolve is invoked from the native completion callback, i.e. from inside
// a Pump call. Resolving twice is a native-layer bug; the second close
// would panic, which is preferable to silently dropping a result.
func (c *Call[T]) resolve(v T) {
	c.value = v
	close(c.done)
}

// Done is closed once the call has resolved.
func (c *Call[T]) Done() <-chan struct{} {
	return c.done
}

// Result returns the resolved value. ok is false while the call is still
// pending, in which case the value is the zero value.
func (c *Call[T]) Result() (value T, ok bool) {
	select {
	case <-c.done:
		return c.value, true
	default:
		var zero T
		return zero, false
	}
}

// Await blocks until the call resolves or ctx ends. The pump must be driven
// from elsewhere (another goroutine, or helpers.PumpLoop) or Await never
// returns. A ctx error abandons the wait only; the native request itself is
// not cancelled and the Call may still resolve later.
func (c *Call[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-c.done:
		return c.value, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
