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

// File describes one entry in the app's cloud storage quota, as listed at
// call time. Listings are snapshots, not live views.
type File struct {
	Name  string
	Bytes int64
}

// IsCloudEnabledForAccount reports the account-wide cloud toggle.
func (c *Client) IsCloudEnabledForAccount() bool {
	return c.api.IsCloudEnabledForAccount()
}

// IsCloudEnabledForApp reports the per-app cloud toggle.
func (c *Client) IsCloudEnabledForApp() bool {
	return c.api.IsCloudEnabledForApp()
}

// ListFiles returns a snapshot of all files in the app's cloud quota.
func (c *Client) ListFiles() []File {
	n := c.api.FileCount()
	if n <= 0 {
		return nil
	}
	out := make([]File, 0, n)
	for i := int32(0); i < n; i++ {
		name, size := c.api.FileNameAndSize(i)
		if name == "" {
			// Listing shrank between the count and this read.
			break
		}
		out = append(out, File{Name: name, Bytes: int64(size)})
	}
	return out
}

// FileExists reports whether name is present in cloud storage.
func (c *Client) FileExists(name string) bool {
	return c.api.FileExists(name)
}

// ReadFile returns the file's contents, or absent when the file is missing
// or the read failed (native sentinel: nil buffer). A present empty file
// yields an empty slice and ok true.
func (c *Client) ReadFile(name string) ([]byte, bool) {
	data := c.api.FileRead(name)
	if data == nil {
		return nil, false
	}
	return data, true
}

// WriteFile stores data under name, replacing any previous contents. The
// native SDK syncs it to the backend on its own schedule.
func (c *Client) WriteFile(name string, data []byte) bool {
	return c.api.FileWrite(name, data)
}

// DeleteFile removes name from cloud storage. Deleting a missing file
// returns false.
func (c *Client) DeleteFile(name string) bool {
	return c.api.FileDelete(name)
}
