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

package ffi

import (
	"encoding/binary"
	"unsafe"

	"github.com/SteamlineProject/steamline/pkg/native"
	"github.com/rs/zerolog/log"
)

// Callback ids from the native headers (k_iSteamUserStatsCallbacks = 1100).
const (
	cbUserStatsReceived           = 1101
	cbLeaderboardFindResult       = 1104
	cbLeaderboardScoresDownloaded = 1105
	cbLeaderboardScoreUploaded    = 1106
	cbGlobalStatsReceived         = 1112
)

// Result buffer sizes, padded past the largest packing the SDK uses on any
// platform. Only fields at packing-independent offsets are decoded.
const (
	sizeUserStatsReceived     = 32
	sizeFindResult            = 16
	sizeScoresDownloaded      = 24
	sizeScoreUploaded         = 32
	sizeGlobalStatsReceived   = 16
	sizeDownloadedEntryStruct = 32
)

const resultOK = 1 // k_EResultOK

type pendingCall struct {
	handler    func(buf []byte, failed bool)
	call       uint64
	expectedID int32
	size       int32
}

// track registers a SteamAPICall_t for completion polling. A zero call
// handle means the native side rejected the request outright; the handler
// runs on the next pump with failed set, so the caller's future still
// resolves through the pump like every other call.
func (b *Binding) track(call uint64, expectedID, size int32, handler func(buf []byte, failed bool)) {
	b.pending = append(b.pending, pendingCall{
		call:       call,
		expectedID: expectedID,
		size:       size,
		handler:    handler,
	})
}

// RunCallbacks pumps the native callback queue, then polls every tracked
// call for completion and routes finished results. Completion handlers run
// here and nowhere else.
func (b *Binding) RunCallbacks() {
	b.steamRunCallbacks()

	if len(b.pending) == 0 {
		return
	}
	// Snapshot first: handlers may queue new pending calls, which must wait
	// for the next pump rather than alias the slice being drained.
	snapshot := b.pending
	b.pending = nil
	for _, p := range snapshot {
		if p.call == 0 {
			p.handler(nil, true)
			continue
		}
		var failed bool
		if !b.isAPICallCompleted(b.utils, p.call, &failed) {
			b.pending = append(b.pending, p)
			continue
		}
		buf := make([]byte, p.size)
		ok := b.getAPICallResult(b.utils, p.call, unsafe.Pointer(&buf[0]), p.size, p.expectedID, &failed)
		if !ok || failed {
			log.Debug().Uint64("call", p.call).Int32("callback", p.expectedID).
				Msg("api call failed")
			p.handler(nil, true)
			continue
		}
		p.handler(buf, false)
	}
}

func (b *Binding) RequestCurrentStats(done func(ok bool)) {
	call := b.requestUserStats(b.stats, b.getSteamID(b.user))
	b.track(call, cbUserStatsReceived, sizeUserStatsReceived, func(buf []byte, failed bool) {
		// UserStatsReceived_t: m_nGameID at 0, m_eResult at 8.
		done(!failed && binary.LittleEndian.Uint32(buf[8:]) == resultOK)
	})
}

// StoreStats persists staged values. The native call reports acceptance
// synchronously and confirms via UserStatsStored_t; the confirmation is
// folded into the pump so completion always arrives there.
func (b *Binding) StoreStats(done func(ok bool)) {
	accepted := b.storeStats(b.stats)
	b.pending = append(b.pending, pendingCall{
		handler: func(_ []byte, _ bool) { done(accepted) },
	})
}

func (b *Binding) RequestGlobalStats(historyDays int32, done func(ok bool)) {
	call := b.requestGlobalStats(b.stats, historyDays)
	b.track(call, cbGlobalStatsReceived, sizeGlobalStatsReceived, func(buf []byte, failed bool) {
		// GlobalStatsReceived_t: m_nGameID at 0, m_eResult at 8.
		done(!failed && binary.LittleEndian.Uint32(buf[8:]) == resultOK)
	})
}

// SetAchievement stages the unlock and stores it in one step, resolving to
// whether both native calls were accepted.
func (b *Binding) SetAchievement(name string, done func(ok bool)) {
	set := b.setAchievement(b.stats, name)
	stored := set && b.storeStats(b.stats)
	b.pending = append(b.pending, pendingCall{
		handler: func(_ []byte, _ bool) { done(set && stored) },
	})
}

func (b *Binding) FindLeaderboard(name string, done func(handle uint64)) {
	call := b.findLeaderboard(b.stats, name)
	b.track(call, cbLeaderboardFindResult, sizeFindResult, b.decodeFindResult(done))
}

func (b *Binding) FindOrCreateLeaderboard(name string, sortMethod, displayType int32, done func(handle uint64)) {
	call := b.findOrCreateLeaderboard(b.stats, name, sortMethod, displayType)
	b.track(call, cbLeaderboardFindResult, sizeFindResult, b.decodeFindResult(done))
}

func (b *Binding) decodeFindResult(done func(handle uint64)) func(buf []byte, failed bool) {
	return func(buf []byte, failed bool) {
		if failed {
			done(0)
			return
		}
		// LeaderboardFindResult_t: m_hSteamLeaderboard at 0,
		// m_bLeaderboardFound at 8.
		if buf[8] == 0 {
			done(0)
			return
		}
		done(binary.LittleEndian.Uint64(buf))
	}
}

func (b *Binding) UploadScore(handle uint64, method, score int32, done func(ok bool)) {
	call := b.uploadScore(b.stats, handle, method, score, nil, 0)
	b.track(call, cbLeaderboardScoreUploaded, sizeScoreUploaded, func(buf []byte, failed bool) {
		// LeaderboardScoreUploaded_t: m_bSuccess at 0.
		done(!failed && buf[0] != 0)
	})
}

func (b *Binding) DownloadEntries(handle uint64, request, start, end int32, done func(entries []native.LeaderboardEntry)) {
	call := b.downloadEntries(b.stats, handle, request, start, end)
	b.track(call, cbLeaderboardScoresDownloaded, sizeScoresDownloaded, func(buf []byte, failed bool) {
		if failed {
			done(nil)
			return
		}
		// LeaderboardScoresDownloaded_t: m_hSteamLeaderboard at 0,
		// m_hSteamLeaderboardEntries at 8, m_cEntryCount at 16.
		entriesHandle := binary.LittleEndian.Uint64(buf[8:])
		count := int32(binary.LittleEndian.Uint32(buf[16:]))
		entries := make([]native.LeaderboardEntry, 0, count)
		for i := int32(0); i < count; i++ {
			raw := make([]byte, sizeDownloadedEntryStruct)
			if !b.getDownloadedEntry(b.stats, entriesHandle, i, unsafe.Pointer(&raw[0]), nil, 0) {
				break
			}
			// LeaderboardEntry_t: m_steamIDUser at 0, m_nGlobalRank at 8,
			// m_nScore at 12.
			entries = append(entries, native.LeaderboardEntry{
				SteamID: binary.LittleEndian.Uint64(raw),
				Rank:    int32(binary.LittleEndian.Uint32(raw[8:])),
				Score:   int32(binary.LittleEndian.Uint32(raw[12:])),
			})
		}
		done(entries)
	})
}
