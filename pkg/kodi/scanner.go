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
)

// ScanResult is a library item flattened to a display name and a
// launchable virtual path.
type ScanResult struct {
	Name string
	Path string
}

// ScanMovies scans movies from Kodi library using the provided client
func ScanMovies(ctx context.Context, client KodiClient, results []ScanResult) ([]ScanResult, error) {
	movies, err := client.GetMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get movies: %w", err)
	}

	for _, movie := range movies {
		results = append(results, ScanResult{
			Name: movie.Label,
			Path: VirtualPath(SchemeKodiMovie, movie.ID, movie.Label),
		})
	}

	return results, nil
}

// ScanTV scans TV shows and episodes from Kodi library using the provided client
func ScanTV(ctx context.Context, client KodiClient, results []ScanResult) ([]ScanResult, error) {
	tvShows, err := client.GetTVShows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get TV shows: %w", err)
	}

	for _, show := range tvShows {
		episodes, err := client.GetEpisodes(ctx, show.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get episodes for show %d: %w", show.ID, err)
		}

		for _, ep := range episodes {
			label := show.Label + " - " + ep.Label
			results = append(results, ScanResult{
				Name: label,
				Path: VirtualPath(SchemeKodiEpisode, ep.ID, label),
			})
		}
	}

	return results, nil
}

// ScanSongs scans songs from Kodi library using the provided client
func ScanSongs(ctx context.Context, client KodiClient, results []ScanResult) ([]ScanResult, error) {
	songs, err := client.GetSongs(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get songs: %w", err)
	}

	for _, song := range songs {
		name := song.Label
		if artist := song.DisplayArtist(); artist != "" {
			name = artist + " - " + song.Label
		}
		results = append(results, ScanResult{
			Name: name,
			Path: VirtualPath(SchemeKodiSong, song.ID, name),
		})
	}

	return results, nil
}

// ScanAlbums scans albums from Kodi library using the provided client
func ScanAlbums(ctx context.Context, client KodiClient, results []ScanResult) ([]ScanResult, error) {
	albums, err := client.GetAlbums(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get albums: %w", err)
	}

	for _, album := range albums {
		name := album.Label
		if artist := album.DisplayArtist(); artist != "" {
			name = artist + " - " + album.Label
		}
		results = append(results, ScanResult{
			Name: name,
			Path: VirtualPath(SchemeKodiAlbum, album.ID, name),
		})
	}

	return results, nil
}
