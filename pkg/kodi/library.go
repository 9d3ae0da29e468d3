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
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Album properties requested from AudioLibrary.GetAlbums.
var albumProperties = []string{"playcount", "artist", "genre", "year"}

// Song properties requested from AudioLibrary.GetSongs.
var songProperties = []string{"artist", "albumid", "duration", "file"}

// GetMovies retrieves all movies from Kodi's library
func (c *Client) GetMovies(ctx context.Context) ([]Movie, error) {
	result, err := c.APIRequest(ctx, APIMethodVideoLibraryGetMovies, nil)
	if err != nil {
		return nil, err
	}

	var response VideoLibraryGetMoviesResponse
	err = json.Unmarshal(result, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal GetMovies response: %w", err)
	}

	return response.Movies, nil
}

// GetTVShows retrieves all TV shows from Kodi's library
func (c *Client) GetTVShows(ctx context.Context) ([]TVShow, error) {
	result, err := c.APIRequest(ctx, APIMethodVideoLibraryGetTVShows, nil)
	if err != nil {
		return nil, err
	}

	var response VideoLibraryGetTVShowsResponse
	err = json.Unmarshal(result, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal GetTVShows response: %w", err)
	}

	return response.TVShows, nil
}

// GetEpisodes retrieves all episodes for a specific TV show from Kodi's library
func (c *Client) GetEpisodes(ctx context.Context, tvShowID int) ([]Episode, error) {
	params := VideoLibraryGetEpisodesParams{
		TVShowID: tvShowID,
	}

	result, err := c.APIRequest(ctx, APIMethodVideoLibraryGetEpisodes, params)
	if err != nil {
		return nil, err
	}

	var response VideoLibraryGetEpisodesResponse
	err = json.Unmarshal(result, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal GetEpisodes response: %w", err)
	}

	return response.Episodes, nil
}

// GetArtists retrieves all artists from Kodi's audio library
func (c *Client) GetArtists(ctx context.Context) ([]Artist, error) {
	result, err := c.APIRequest(ctx, APIMethodAudioLibraryGetArtists, nil)
	if err != nil {
		return nil, err
	}

	var response AudioLibraryGetArtistsResponse
	err = json.Unmarshal(result, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal GetArtists response: %w", err)
	}

	return response.Artists, nil
}

// GetAlbums retrieves all albums from Kodi's audio library
func (c *Client) GetAlbums(ctx context.Context) ([]Album, error) {
	result, err := c.APIRequest(ctx, APIMethodAudioLibraryGetAlbums, AudioLibraryGetAlbumsParams{
		Properties: albumProperties,
	})
	if err != nil {
		return nil, err
	}

	var response AudioLibraryGetAlbumsResponse
	err = json.Unmarshal(result, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal GetAlbums response: %w", err)
	}

	return response.Albums, nil
}

// GetSongs retrieves songs from Kodi's audio library, optionally
// restricted by a library ID filter
func (c *Client) GetSongs(ctx context.Context, filter *SongFilter) ([]Song, error) {
	result, err := c.APIRequest(ctx, APIMethodAudioLibraryGetSongs, AudioLibraryGetSongsParams{
		Filter:     filter,
		Properties: songProperties,
	})
	if err != nil {
		return nil, err
	}

	var response AudioLibraryGetSongsResponse
	err = json.Unmarshal(result, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal GetSongs response: %w", err)
	}

	return response.Songs, nil
}

// LibraryIndex is a point-in-time snapshot of the audio library with
// albums indexed by artist and genre.
type LibraryIndex struct {
	artistToAlbums map[string][]Album
	genreToAlbums  map[string][]Album
	Artists        []Artist
	Albums         []Album
}

// BuildLibraryIndex fetches artists and albums and indexes albums by
// artist and genre. The two fetches run concurrently.
func BuildLibraryIndex(ctx context.Context, client KodiClient) (*LibraryIndex, error) {
	idx := &LibraryIndex{
		artistToAlbums: make(map[string][]Album),
		genreToAlbums:  make(map[string][]Album),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		artists, err := client.GetArtists(gctx)
		if err != nil {
			return fmt.Errorf("failed to get artists: %w", err)
		}
		idx.Artists = artists
		return nil
	})
	g.Go(func() error {
		albums, err := client.GetAlbums(gctx)
		if err != nil {
			return fmt.Errorf("failed to get albums: %w", err)
		}
		idx.Albums = albums
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, artist := range idx.Artists {
		var albums []Album
		for _, album := range idx.Albums {
			if album.DisplayArtist() == artist.Artist {
				albums = append(albums, album)
			}
		}
		// there may not be any, e.g. for multi-artist collections
		if len(albums) > 0 {
			idx.artistToAlbums[artist.Artist] = albums
		}
	}

	for _, album := range idx.Albums {
		for _, genre := range album.Genre {
			idx.genreToAlbums[genre] = append(idx.genreToAlbums[genre], album)
		}
	}

	log.Debug().Msgf("indexed %d albums by %d artists in %d genres",
		len(idx.Albums), len(idx.artistToAlbums), len(idx.genreToAlbums))

	return idx, nil
}

// AlbumsByArtist returns the albums credited to an artist, or nil when
// the artist has none.
func (idx *LibraryIndex) AlbumsByArtist(artist string) []Album {
	return idx.artistToAlbums[artist]
}

// AlbumsByGenre returns the albums tagged with a genre, or nil when the
// genre is unknown.
func (idx *LibraryIndex) AlbumsByGenre(genre string) []Album {
	return idx.genreToAlbums[genre]
}

// Genres returns all genres present in the library, sorted.
func (idx *LibraryIndex) Genres() []string {
	genres := make([]string, 0, len(idx.genreToAlbums))
	for genre := range idx.genreToAlbums {
		genres = append(genres, genre)
	}
	sort.Strings(genres)
	return genres
}
