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
	"encoding/json"
	"fmt"
)

// URL scheme constants for Kodi library media
const (
	SchemeKodiMovie   = "kodi-movie"
	SchemeKodiEpisode = "kodi-episode"
	SchemeKodiSong    = "kodi-song"
	SchemeKodiAlbum   = "kodi-album"
	SchemeKodiArtist  = "kodi-artist"
	SchemeKodiShow    = "kodi-show"
)

// Volume bounds and the default step used by RaiseVolume/LowerVolume.
const (
	MinVolume         = 0
	MaxVolume         = 100
	DefaultVolumeStep = 10
)

// Player types reported by Player.GetActivePlayers.
const (
	PlayerTypeAudio   = "audio"
	PlayerTypeVideo   = "video"
	PlayerTypePicture = "picture"
)

// Playlist IDs fixed by Kodi.
const (
	PlaylistAudio   = 0
	PlaylistVideo   = 1
	PlaylistPicture = 2
)

// AllPlayerProperties is the full set of properties Player.GetProperties
// accepts, used as the default when the caller requests none.
var AllPlayerProperties = []string{
	"canrotate", "canrepeat", "speed", "canshuffle", "shuffled", "canmove",
	"subtitleenabled", "percentage", "type", "repeat", "canseek",
	"currentsubtitle", "subtitles", "totaltime", "canzoom",
	"currentaudiostream", "playlistid", "audiostreams", "partymode",
	"time", "position", "canchangespeed",
}

// Player represents an active Kodi player
type Player struct {
	Type string `json:"type"`
	ID   int    `json:"playerid"`
}

// Duration represents a Kodi time value (Global.Time)
type Duration struct {
	Hours        int `json:"hours"`
	Minutes      int `json:"minutes"`
	Seconds      int `json:"seconds"`
	Milliseconds int `json:"milliseconds"`
}

// PlayerProperties represents the result of Player.GetProperties. Only
// requested properties are populated.
type PlayerProperties struct {
	Type            string   `json:"type,omitempty"`
	Repeat          string   `json:"repeat,omitempty"`
	Time            Duration `json:"time,omitempty"`
	TotalTime       Duration `json:"totaltime,omitempty"`
	Speed           int      `json:"speed"`
	Percentage      float64  `json:"percentage,omitempty"`
	Position        int      `json:"position,omitempty"`
	PlaylistID      int      `json:"playlistid,omitempty"`
	Shuffled        bool     `json:"shuffled,omitempty"`
	PartyMode       bool     `json:"partymode,omitempty"`
	CanSeek         bool     `json:"canseek,omitempty"`
	CanChangeSpeed  bool     `json:"canchangespeed,omitempty"`
	SubtitleEnabled bool     `json:"subtitleenabled,omitempty"`
}

// ApplicationProperties represents the result of Application.GetProperties
type ApplicationProperties struct {
	Name    string `json:"name,omitempty"`
	Version any    `json:"version,omitempty"`
	Volume  int    `json:"volume"`
	Muted   bool   `json:"muted"`
}

// PlayingItem represents the item returned by Player.GetItem
type PlayingItem struct {
	Label  string   `json:"label"`
	Type   string   `json:"type"`
	File   string   `json:"file,omitempty"`
	Title  string   `json:"title,omitempty"`
	Artist []string `json:"artist,omitempty"`
	Album  string   `json:"album,omitempty"`
	ID     int      `json:"id,omitempty"`
}

// Movie represents a movie in Kodi's library
type Movie struct {
	Label string `json:"label"`
	File  string `json:"file,omitempty"`
	ID    int    `json:"movieid"`
}

// TVShow represents a TV show in Kodi's library
type TVShow struct {
	Label string `json:"label"`
	ID    int    `json:"tvshowid"`
}

// Episode represents a TV episode in Kodi's library
type Episode struct {
	Label    string `json:"label"`
	File     string `json:"file,omitempty"`
	ID       int    `json:"episodeid"`
	TVShowID int    `json:"tvshowid"`
	Season   int    `json:"season"`
	Episode  int    `json:"episode"`
}

// Song represents a song in Kodi's library
type Song struct {
	Label    string   `json:"label"`
	File     string   `json:"file,omitempty"`
	Artist   []string `json:"artist,omitempty"`
	ID       int      `json:"songid"`
	AlbumID  int      `json:"albumid,omitempty"`
	Duration int      `json:"duration,omitempty"`
}

// DisplayArtist returns the song's first artist, or an empty string for
// songs with no artist tag.
func (s Song) DisplayArtist() string {
	if len(s.Artist) == 0 {
		return ""
	}
	return s.Artist[0]
}

// Album represents an album in Kodi's library. Artist and Genre are
// slices because Kodi reports multi-artist and multi-genre albums.
type Album struct {
	Label     string   `json:"label"`
	Artist    []string `json:"artist,omitempty"`
	Genre     []string `json:"genre,omitempty"`
	ID        int      `json:"albumid"`
	Year      int      `json:"year,omitempty"`
	PlayCount int      `json:"playcount,omitempty"`
}

// DisplayArtist returns the album's first artist, or an empty string for
// multi-artist collections with no primary artist.
func (a Album) DisplayArtist() string {
	if len(a.Artist) == 0 {
		return ""
	}
	return a.Artist[0]
}

// Artist represents an artist in Kodi's library
type Artist struct {
	Label  string `json:"label"`
	Artist string `json:"artist"`
	ID     int    `json:"artistid"`
}

// APIMethod represents Kodi JSON-RPC API methods
type APIMethod string

// Kodi API methods
const (
	APIMethodJSONRPCPing APIMethod = "JSONRPC.Ping"

	APIMethodPlayerOpen             APIMethod = "Player.Open"
	APIMethodPlayerGetActivePlayers APIMethod = "Player.GetActivePlayers"
	APIMethodPlayerGetProperties    APIMethod = "Player.GetProperties"
	APIMethodPlayerGetItem          APIMethod = "Player.GetItem"
	APIMethodPlayerPlayPause        APIMethod = "Player.PlayPause"
	APIMethodPlayerStop             APIMethod = "Player.Stop"
	APIMethodPlayerSeek             APIMethod = "Player.Seek"

	APIMethodApplicationGetProperties APIMethod = "Application.GetProperties"
	APIMethodApplicationSetVolume     APIMethod = "Application.SetVolume"
	APIMethodApplicationSetMute       APIMethod = "Application.SetMute"

	APIMethodVideoLibraryGetMovies   APIMethod = "VideoLibrary.GetMovies"
	APIMethodVideoLibraryGetTVShows  APIMethod = "VideoLibrary.GetTVShows"
	APIMethodVideoLibraryGetEpisodes APIMethod = "VideoLibrary.GetEpisodes"

	APIMethodAudioLibraryGetSongs   APIMethod = "AudioLibrary.GetSongs"
	APIMethodAudioLibraryGetAlbums  APIMethod = "AudioLibrary.GetAlbums"
	APIMethodAudioLibraryGetArtists APIMethod = "AudioLibrary.GetArtists"

	APIMethodPlaylistClear APIMethod = "Playlist.Clear"
	APIMethodPlaylistAdd   APIMethod = "Playlist.Add"
)

// APIPayload represents a Kodi JSON-RPC request
type APIPayload struct {
	Params  any       `json:"params,omitempty"`
	JSONRPC string    `json:"jsonrpc"`
	ID      string    `json:"id"`
	Method  APIMethod `json:"method"`
}

// APIError represents a Kodi JSON-RPC error
type APIError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Error implements the error interface so API errors can be wrapped and
// inspected with errors.As.
func (e *APIError) Error() string {
	return fmt.Sprintf("kodi api error %d: %s", e.Code, e.Message)
}

// APIResponse represents a Kodi JSON-RPC response
type APIResponse struct {
	Error   *APIError       `json:"error,omitempty"`
	ID      string          `json:"id"`
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
}

// Notification represents a server-pushed Kodi JSON-RPC notification,
// received over the WebSocket transport. Notifications carry no ID.
type Notification struct {
	Method APIMethod       `json:"method"`
	Params json.RawMessage `json:"params"`
}

// NotificationParams is the common shape of notification params: a sender
// name plus method-specific data.
type NotificationParams struct {
	Sender string          `json:"sender"`
	Data   json.RawMessage `json:"data"`
}

// Notification methods Kodi pushes to connected WebSocket clients.
const (
	NotificationPlayerOnPlay    APIMethod = "Player.OnPlay"
	NotificationPlayerOnPause   APIMethod = "Player.OnPause"
	NotificationPlayerOnResume  APIMethod = "Player.OnResume"
	NotificationPlayerOnStop    APIMethod = "Player.OnStop"
	NotificationPlayerOnSeek    APIMethod = "Player.OnSeek"
	NotificationOnVolumeChanged APIMethod = "Application.OnVolumeChanged"
	NotificationOnScanFinished  APIMethod = "AudioLibrary.OnScanFinished"
	NotificationOnQuit          APIMethod = "System.OnQuit"
	NotificationPlaylistOnAdd   APIMethod = "Playlist.OnAdd"
	NotificationPlaylistOnClear APIMethod = "Playlist.OnClear"
)

// Item represents a media item reference passed to Player.Open
type Item struct {
	Label      string `json:"label,omitempty"`
	File       string `json:"file,omitempty"`
	MovieID    int    `json:"movieid,omitempty"`
	TVShowID   int    `json:"tvshowid,omitempty"`
	EpisodeID  int    `json:"episodeid,omitempty"`
	SongID     int    `json:"songid,omitempty"`
	AlbumID    int    `json:"albumid,omitempty"`
	PlaylistID *int   `json:"playlistid,omitempty"`
	Position   int    `json:"position,omitempty"`
}

// ItemOptions represents options for playing a media item
type ItemOptions struct {
	Resume bool `json:"resume"`
}

// PlayerOpenParams represents parameters for Player.Open API method
type PlayerOpenParams struct {
	Item    Item        `json:"item"`
	Options ItemOptions `json:"options,omitempty"`
}

// PlayerIDParams is the common single-player parameter shape shared by
// Player.Stop, Player.PlayPause and Player.GetItem.
type PlayerIDParams struct {
	PlayerID int `json:"playerid"`
}

// PlayerGetPropertiesParams represents parameters for Player.GetProperties
type PlayerGetPropertiesParams struct {
	Properties []string `json:"properties"`
	PlayerID   int      `json:"playerid"`
}

// PlayerSeekParams represents parameters for Player.Seek. Value is a
// percentage position within the playing item.
type PlayerSeekParams struct {
	Value    SeekValue `json:"value"`
	PlayerID int       `json:"playerid"`
}

// SeekValue wraps the percentage form of Player.Seek's value argument.
type SeekValue struct {
	Percentage float64 `json:"percentage"`
}

// ApplicationSetVolumeParams represents parameters for Application.SetVolume
type ApplicationSetVolumeParams struct {
	Volume int `json:"volume"`
}

// ApplicationSetMuteParams represents parameters for Application.SetMute
type ApplicationSetMuteParams struct {
	Mute bool `json:"mute"`
}

// ApplicationGetPropertiesParams represents parameters for
// Application.GetProperties
type ApplicationGetPropertiesParams struct {
	Properties []string `json:"properties"`
}

// PlayerGetItemResponse represents the response from Player.GetItem
type PlayerGetItemResponse struct {
	Item PlayingItem `json:"item"`
}

// VideoLibraryGetMoviesResponse represents the response from VideoLibrary.GetMovies
type VideoLibraryGetMoviesResponse struct {
	Movies []Movie `json:"movies"`
}

// VideoLibraryGetTVShowsResponse represents the response from VideoLibrary.GetTVShows
type VideoLibraryGetTVShowsResponse struct {
	TVShows []TVShow `json:"tvshows"`
}

// VideoLibraryGetEpisodesParams represents parameters for VideoLibrary.GetEpisodes API method
type VideoLibraryGetEpisodesParams struct {
	TVShowID int `json:"tvshowid"`
}

// VideoLibraryGetEpisodesResponse represents the response from VideoLibrary.GetEpisodes
type VideoLibraryGetEpisodesResponse struct {
	Episodes []Episode `json:"episodes"`
}

// AudioLibraryGetSongsResponse represents the response from AudioLibrary.GetSongs
type AudioLibraryGetSongsResponse struct {
	Songs []Song `json:"songs"`
}

// AudioLibraryGetAlbumsParams represents parameters for AudioLibrary.GetAlbums
type AudioLibraryGetAlbumsParams struct {
	Properties []string `json:"properties,omitempty"`
}

// AudioLibraryGetAlbumsResponse represents the response from AudioLibrary.GetAlbums
type AudioLibraryGetAlbumsResponse struct {
	Albums []Album `json:"albums"`
}

// AudioLibraryGetArtistsResponse represents the response from AudioLibrary.GetArtists
type AudioLibraryGetArtistsResponse struct {
	Artists []Artist `json:"artists"`
}

// PlaylistClearParams represents parameters for Playlist.Clear API method
type PlaylistClearParams struct {
	PlaylistID int `json:"playlistid"`
}

// PlaylistAddParams represents parameters for Playlist.Add API method
type PlaylistAddParams struct {
	Item       []PlaylistItemSongID `json:"item"`
	PlaylistID int                  `json:"playlistid"`
}

// PlaylistAddEpisodesParams represents parameters for Playlist.Add API method with episodes
type PlaylistAddEpisodesParams struct {
	Item       []PlaylistItemEpisodeID `json:"item"`
	PlaylistID int                     `json:"playlistid"`
}

// PlaylistItemSongID represents a song item for playlist operations
type PlaylistItemSongID struct {
	SongID int `json:"songid"`
}

// PlaylistItemEpisodeID represents an episode item for playlist operations
type PlaylistItemEpisodeID struct {
	EpisodeID int `json:"episodeid"`
}

// SongFilter restricts AudioLibrary.GetSongs results by library ID.
// Kodi's schema only accepts ID filters in the simple object form
// ({"albumid": N}), not as field/operator/value rules.
type SongFilter struct {
	AlbumID  int `json:"albumid,omitempty"`
	ArtistID int `json:"artistid,omitempty"`
	GenreID  int `json:"genreid,omitempty"`
}

// AudioLibraryGetSongsParams represents parameters for AudioLibrary.GetSongs API method
type AudioLibraryGetSongsParams struct {
	Filter     *SongFilter `json:"filter,omitempty"`
	Properties []string    `json:"properties,omitempty"`
}
