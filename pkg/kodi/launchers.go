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
	"fmt"
	"strconv"
	"strings"
)

// VirtualPath builds a "scheme://id/name" reference to a library item.
func VirtualPath(scheme string, id int, name string) string {
	return fmt.Sprintf("%s://%d/%s", scheme, id, name)
}

// parseVirtualID extracts the numeric ID from a "scheme://id/name" path.
func parseVirtualID(path, scheme string) (int, error) {
	if !strings.HasPrefix(path, scheme+"://") {
		return 0, fmt.Errorf("invalid path: %s", path)
	}

	id := strings.TrimPrefix(path, scheme+"://")
	id = strings.SplitN(id, "/", 2)[0]

	intID, err := strconv.Atoi(id)
	if err != nil {
		return 0, fmt.Errorf("failed to parse ID %q: %w", id, err)
	}

	return intID, nil
}

// LaunchFile launches a local file or URL in Kodi
func (c *Client) LaunchFile(ctx context.Context, path string) error {
	_, err := c.APIRequest(ctx, APIMethodPlayerOpen, PlayerOpenParams{
		Item: Item{
			File: path,
		},
		Options: ItemOptions{
			Resume: true,
		},
	})
	return err
}

// LaunchMovie launches a movie by ID from Kodi's library
func (c *Client) LaunchMovie(ctx context.Context, path string) error {
	movieID, err := parseVirtualID(path, SchemeKodiMovie)
	if err != nil {
		return err
	}

	_, err = c.APIRequest(ctx, APIMethodPlayerOpen, PlayerOpenParams{
		Item: Item{
			MovieID: movieID,
		},
		Options: ItemOptions{
			Resume: true,
		},
	})
	return err
}

// LaunchTVEpisode launches a TV episode by ID from Kodi's library
func (c *Client) LaunchTVEpisode(ctx context.Context, path string) error {
	episodeID, err := parseVirtualID(path, SchemeKodiEpisode)
	if err != nil {
		return err
	}

	_, err = c.APIRequest(ctx, APIMethodPlayerOpen, PlayerOpenParams{
		Item: Item{
			EpisodeID: episodeID,
		},
		Options: ItemOptions{
			Resume: true,
		},
	})
	return err
}

// LaunchSong launches a song by ID from Kodi's library
func (c *Client) LaunchSong(ctx context.Context, path string) error {
	songID, err := parseVirtualID(path, SchemeKodiSong)
	if err != nil {
		return err
	}

	_, err = c.APIRequest(ctx, APIMethodPlayerOpen, PlayerOpenParams{
		Item: Item{
			SongID: songID,
		},
	})
	return err
}

// LaunchAlbum launches an album by ID via the audio playlist
func (c *Client) LaunchAlbum(ctx context.Context, path string) error {
	albumID, err := parseVirtualID(path, SchemeKodiAlbum)
	if err != nil {
		return err
	}

	songs, err := c.GetSongs(ctx, &SongFilter{AlbumID: albumID})
	if err != nil {
		return err
	}
	if len(songs) == 0 {
		return fmt.Errorf("no songs found for album %d", albumID)
	}

	songIDs := make([]int, 0, len(songs))
	for _, song := range songs {
		songIDs = append(songIDs, song.ID)
	}

	return c.queueAndPlay(ctx, songIDs)
}

// LaunchArtist queues all songs by an artist and starts playback
func (c *Client) LaunchArtist(ctx context.Context, path string) error {
	artistID, err := parseVirtualID(path, SchemeKodiArtist)
	if err != nil {
		return err
	}

	songs, err := c.GetSongs(ctx, &SongFilter{ArtistID: artistID})
	if err != nil {
		return err
	}
	if len(songs) == 0 {
		return fmt.Errorf("no songs found for artist %d", artistID)
	}

	songIDs := make([]int, 0, len(songs))
	for _, song := range songs {
		songIDs = append(songIDs, song.ID)
	}

	return c.queueAndPlay(ctx, songIDs)
}

// queueAndPlay replaces the audio playlist with the given songs and
// starts playback from the first entry.
func (c *Client) queueAndPlay(ctx context.Context, songIDs []int) error {
	if err := c.ClearPlaylist(ctx, PlaylistAudio); err != nil {
		return err
	}
	if err := c.AddSongsToPlaylist(ctx, PlaylistAudio, songIDs); err != nil {
		return err
	}
	return c.OpenPlaylist(ctx, PlaylistAudio)
}
