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

import "context"

// ClearPlaylist clears a Kodi playlist
func (c *Client) ClearPlaylist(ctx context.Context, playlistID int) error {
	_, err := c.APIRequest(ctx, APIMethodPlaylistClear, PlaylistClearParams{
		PlaylistID: playlistID,
	})
	return err
}

// AddSongsToPlaylist appends songs to a Kodi playlist by ID
func (c *Client) AddSongsToPlaylist(ctx context.Context, playlistID int, songIDs []int) error {
	items := make([]PlaylistItemSongID, 0, len(songIDs))
	for _, id := range songIDs {
		items = append(items, PlaylistItemSongID{SongID: id})
	}

	_, err := c.APIRequest(ctx, APIMethodPlaylistAdd, PlaylistAddParams{
		PlaylistID: playlistID,
		Item:       items,
	})
	return err
}

// AddEpisodesToPlaylist appends TV episodes to a Kodi playlist by ID
func (c *Client) AddEpisodesToPlaylist(ctx context.Context, playlistID int, episodeIDs []int) error {
	items := make([]PlaylistItemEpisodeID, 0, len(episodeIDs))
	for _, id := range episodeIDs {
		items = append(items, PlaylistItemEpisodeID{EpisodeID: id})
	}

	_, err := c.APIRequest(ctx, APIMethodPlaylistAdd, PlaylistAddEpisodesParams{
		PlaylistID: playlistID,
		Item:       items,
	})
	return err
}

// OpenPlaylist starts playback of a Kodi playlist from the beginning
func (c *Client) OpenPlaylist(ctx context.Context, playlistID int) error {
	id := playlistID
	_, err := c.APIRequest(ctx, APIMethodPlayerOpen, PlayerOpenParams{
		Item: Item{
			PlaylistID: &id,
		},
	})
	return err
}
