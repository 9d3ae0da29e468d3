// go-kodi
// Copyright (c) 2026 The go-kodi Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of go-kodi.
//
// go-kodi is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-kodi is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-kodi.  If not, see <http://www.gnu.org/licenses/>.

package kodi

import (
	"context"
	"encoding/json"
)

// KodiClient defines the interface for Kodi API operations.
// This interface enables proper mocking of the client in tests.
type KodiClient interface {
	// Ping checks the Kodi endpoint is reachable and speaking JSON-RPC
	Ping(ctx context.Context) error

	// GetActivePlayers retrieves all active players in Kodi
	GetActivePlayers(ctx context.Context) ([]Player, error)

	// ActiveAudioPlayer returns the active audio player.
	// Returns ErrNoActivePlayer when no audio player is active.
	ActiveAudioPlayer(ctx context.Context) (*Player, error)

	// GetPlayerProperties retrieves the requested properties of the
	// active audio player. A nil or empty properties list requests all
	// known player properties.
	GetPlayerProperties(ctx context.Context, properties []string) (*PlayerProperties, error)

	// GetPlayingItem retrieves the item loaded in the active audio player
	GetPlayingItem(ctx context.Context) (*PlayingItem, error)

	// IsPlaying reports whether the active audio player has nonzero speed
	IsPlaying(ctx context.Context) (bool, error)

	// PlayPause toggles the play/pause state of the active audio player
	PlayPause(ctx context.Context) error

	// Pause pauses playback only if audio is currently playing
	Pause(ctx context.Context) error

	// Resume resumes playback only if audio is currently paused
	Resume(ctx context.Context) error

	// Stop stops all active players in Kodi
	Stop(ctx context.Context) error

	// Seek seeks the active audio player to a percentage position
	Seek(ctx context.Context, percentage float64) error

	// GetApplicationProperties retrieves application volume and mute state
	GetApplicationProperties(ctx context.Context) (*ApplicationProperties, error)

	// SetVolume sets the application volume, between MinVolume and MaxVolume
	SetVolume(ctx context.Context, volume int) error

	// RaiseVolume raises the volume by the configured step, clamped to MaxVolume
	RaiseVolume(ctx context.Context) error

	// LowerVolume lowers the volume by the configured step, clamped to MinVolume
	LowerVolume(ctx context.Context) error

	// SetMute sets the application mute state
	SetMute(ctx context.Context, mute bool) error

	// GetMovies retrieves all movies from Kodi's library
	GetMovies(ctx context.Context) ([]Movie, error)

	// GetTVShows retrieves all TV shows from Kodi's library
	GetTVShows(ctx context.Context) ([]TVShow, error)

	// GetEpisodes retrieves all episodes for a specific TV show from Kodi's library
	GetEpisodes(ctx context.Context, tvShowID int) ([]Episode, error)

	// GetArtists retrieves all artists from Kodi's audio library
	GetArtists(ctx context.Context) ([]Artist, error)

	// GetAlbums retrieves all albums from Kodi's audio library
	GetAlbums(ctx context.Context) ([]Album, error)

	// GetSongs retrieves songs from Kodi's audio library, optionally
	// restricted by a library ID filter
	GetSongs(ctx context.Context, filter *SongFilter) ([]Song, error)

	// ClearPlaylist clears a Kodi playlist
	ClearPlaylist(ctx context.Context, playlistID int) error

	// AddSongsToPlaylist appends songs to a Kodi playlist by ID
	AddSongsToPlaylist(ctx context.Context, playlistID int, songIDs []int) error

	// AddEpisodesToPlaylist appends TV episodes to a Kodi playlist by ID
	AddEpisodesToPlaylist(ctx context.Context, playlistID int, episodeIDs []int) error

	// OpenPlaylist starts playback of a Kodi playlist from the beginning
	OpenPlaylist(ctx context.Context, playlistID int) error

	// LaunchFile launches a local file or URL in Kodi
	LaunchFile(ctx context.Context, path string) error

	// LaunchMovie launches a movie by ID from Kodi's library
	// Path format: "kodi-movie://[id]/[name]"
	LaunchMovie(ctx context.Context, path string) error

	// LaunchTVEpisode launches a TV episode by ID from Kodi's library
	// Path format: "kodi-episode://[id]/[name]"
	LaunchTVEpisode(ctx context.Context, path string) error

	// LaunchSong launches a song by ID from Kodi's library
	// Path format: "kodi-song://[id]/[name]"
	LaunchSong(ctx context.Context, path string) error

	// LaunchAlbum launches an album by ID via the audio playlist
	// Path format: "kodi-album://[id]/[name]"
	LaunchAlbum(ctx context.Context, path string) error

	// LaunchArtist queues all songs by an artist and starts playback
	// Path format: "kodi-artist://[id]/[name]"
	LaunchArtist(ctx context.Context, path string) error

	// GetURL returns the current Kodi API URL
	GetURL() string

	// SetURL sets the Kodi API URL
	SetURL(url string)

	// APIRequest makes a raw JSON-RPC request to Kodi API
	APIRequest(ctx context.Context, method APIMethod, params any) (json.RawMessage, error)
}
