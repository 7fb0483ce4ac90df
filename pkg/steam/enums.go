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

// Closed enumerations over the native SDK's integer and string codes.
//
// Every FromCode mapping is total: codes the native SDK may add in future
// releases map to the terminal Unknown variant instead of failing. The
// reverse (code) direction is only defined for enums the host sends to the
// native SDK, and never emits Unknown.

// PersonaState is a user's online status.
type PersonaState int32

const (
	PersonaStateOffline PersonaState = iota
	PersonaStateOnline
	PersonaStateBusy
	PersonaStateAway
	PersonaStateSnooze
	PersonaStateLookingToTrade
	PersonaStateLookingToPlay
	PersonaStateInvisible
	// PersonaStateUnknown is the terminal variant for codes outside the
	// documented 0..7 range.
	PersonaStateUnknown
)

// PersonaStateFromCode maps a native persona state code. Total; codes
// outside 0..7 yield PersonaStateUnknown.
func PersonaStateFromCode(code int32) PersonaState {
	if code < 0 || code > int32(PersonaStateInvisible) {
		return PersonaStateUnknown
	}
	return PersonaState(code)
}

func (s PersonaState) String() string {
	switch s {
	case PersonaStateOffline:
		return "offline"
	case PersonaStateOnline:
		return "online"
	case PersonaStateBusy:
		return "busy"
	case PersonaStateAway:
		return "away"
	case PersonaStateSnooze:
		return "snooze"
	case PersonaStateLookingToTrade:
		return "looking-to-trade"
	case PersonaStateLookingToPlay:
		return "looking-to-play"
	case PersonaStateInvisible:
		return "invisible"
	default:
		return "unknown"
	}
}

// Relationship classifies the link between the local user and another
// account.
type Relationship int32

const (
	RelationshipNone Relationship = iota
	RelationshipBlocked
	RelationshipRequestRecipient
	RelationshipFriend
	RelationshipRequestInitiator
	RelationshipIgnored
	RelationshipIgnoredFriend
	RelationshipSuggested
	// RelationshipUnknown is the terminal variant for codes outside the
	// documented 0..7 range.
	RelationshipUnknown
)

// RelationshipFromCode maps a native relationship code. Total; codes
// outside 0..7 yield RelationshipUnknown.
func RelationshipFromCode(code int32) Relationship {
	if code < 0 || code > int32(RelationshipSuggested) {
		return RelationshipUnknown
	}
	return Relationship(code)
}

func (r Relationship) String() string {
	switch r {
	case RelationshipNone:
		return "none"
	case RelationshipBlocked:
		return "blocked"
	case RelationshipRequestRecipient:
		return "request-recipient"
	case RelationshipFriend:
		return "friend"
	case RelationshipRequestInitiator:
		return "request-initiator"
	case RelationshipIgnored:
		return "ignored"
	case RelationshipIgnoredFriend:
		return "ignored-friend"
	case RelationshipSuggested:
		return "suggested"
	default:
		return "unknown"
	}
}

// SortMethod is a leaderboard's sort order. Native codes start at 1; 0 is
// the SDK's "none" for an invalid handle.
type SortMethod int32

const (
	SortMethodUnknown SortMethod = iota
	SortMethodAscending
	SortMethodDescending
)

// SortMethodFromCode maps a native sort method code. Total; 0 and anything
// outside 1..2 yield SortMethodUnknown.
func SortMethodFromCode(code int32) SortMethod {
	switch code {
	case 1:
		return SortMethodAscending
	case 2:
		return SortMethodDescending
	default:
		return SortMethodUnknown
	}
}

// code returns the native wire value. Unknown falls back to ascending,
// the SDK's documented default for creation.
func (m SortMethod) code() int32 {
	if m == SortMethodDescending {
		return 2
	}
	return 1
}

func (m SortMethod) String() string {
	switch m {
	case SortMethodAscending:
		return "ascending"
	case SortMethodDescending:
		return "descending"
	default:
		return "unknown"
	}
}

// DisplayType is how a leaderboard score is rendered on the Steam
// community site.
type DisplayType int32

const (
	DisplayTypeUnknown DisplayType = iota
	DisplayTypeNumeric
	DisplayTypeTimeSeconds
	DisplayTypeTimeMilliseconds
)

// DisplayTypeFromCode maps a native display type code. Total; anything
// outside 1..3 yields DisplayTypeUnknown.
func DisplayTypeFromCode(code int32) DisplayType {
	if code < 1 || code > 3 {
		return DisplayTypeUnknown
	}
	return DisplayType(code)
}

func (d DisplayType) code() int32 {
	if d < DisplayTypeNumeric || d > DisplayTypeTimeMilliseconds {
		return int32(DisplayTypeNumeric)
	}
	return int32(d)
}

func (d DisplayType) String() string {
	switch d {
	case DisplayTypeNumeric:
		return "numeric"
	case DisplayTypeTimeSeconds:
		return "time-seconds"
	case DisplayTypeTimeMilliseconds:
		return "time-milliseconds"
	default:
		return "unknown"
	}
}

// UploadMethod controls whether an uploaded score replaces the stored one.
type UploadMethod int32

const (
	// UploadMethodKeepBest keeps the stored score when it beats the upload.
	UploadMethodKeepBest UploadMethod = iota + 1
	// UploadMethodForceUpdate always replaces the stored score.
	UploadMethodForceUpdate
)

func (m UploadMethod) code() int32 {
	if m == UploadMethodForceUpdate {
		return 2
	}
	return 1
}

func (m UploadMethod) String() string {
	if m == UploadMethodForceUpdate {
		return "force-update"
	}
	return "keep-best"
}

// DataRequest scopes a leaderboard download.
type DataRequest int32

const (
	// DataRequestGlobal downloads rows by absolute rank.
	DataRequestGlobal DataRequest = iota
	// DataRequestGlobalAroundUser downloads rows relative to the local
	// user's own rank.
	DataRequestGlobalAroundUser
	// DataRequestFriends downloads rows for the local user's friends only.
	DataRequestFriends
)

func (r DataRequest) code() int32 {
	if r < DataRequestGlobal || r > DataRequestFriends {
		return int32(DataRequestGlobal)
	}
	return int32(r)
}

func (r DataRequest) String() string {
	switch r {
	case DataRequestGlobalAroundUser:
		return "global-around-user"
	case DataRequestFriends:
		return "friends"
	default:
		return "global"
	}
}

// OverlayDialog names an overlay page. These are string codes on the wire.
type OverlayDialog string

const (
	OverlayDialogFriends           OverlayDialog = "friends"
	OverlayDialogCommunity         OverlayDialog = "community"
	OverlayDialogPlayers           OverlayDialog = "players"
	OverlayDialogSettings          OverlayDialog = "settings"
	OverlayDialogOfficialGameGroup OverlayDialog = "officialgamegroup"
	OverlayDialogStats             OverlayDialog = "stats"
	OverlayDialogAchievements      OverlayDialog = "achievements"
)
