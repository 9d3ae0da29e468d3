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

package fixtures

import "github.com/davisjam/go-kodi/pkg/kodi"

// TestMovies provides sample movie data for Kodi testing
var TestMovies = []kodi.Movie{
	{ID: 1, Label: "The Matrix"},
	{ID: 2, Label: "Inception"},
	{ID: 3, Label: "The Dark Knight"},
}

// TestTVShows provides sample TV show data for Kodi testing
var TestTVShows = []kodi.TVShow{
	{ID: 1, Label: "Breaking Bad"},
	{ID: 2, Label: "The Office"},
}

// TestEpisodes provides sample episode data for Kodi testing, keyed by TV show ID
var TestEpisodes = map[int][]kodi.Episode{
	1: {
		{ID: 101, Label: "S01E01 - Pilot", Season: 1, Episode: 1, TVShowID: 1},
		{ID: 102, Label: "S01E02 - Cat's in the Bag", Season: 1, Episode: 2, TVShowID: 1},
	},
	2: {
		{ID: 201, Label: "S01E01 - Pilot", Season: 1, Episode: 1, TVShowID: 2},
		{ID: 202, Label: "S01E02 - Diversity Day", Season: 1, Episode: 2, TVShowID: 2},
	},
}

// TestArtists provides sample artist data for Kodi testing
var TestArtists = []kodi.Artist{
	{ID: 1, Artist: "Miles Davis", Label: "Miles Davis"},
	{ID: 2, Artist: "Radiohead", Label: "Radiohead"},
	{ID: 3, Artist: "Various Artists", Label: "Various Artists"},
}

// TestAlbums provides sample album data for Kodi testing
var TestAlbums = []kodi.Album{
	{ID: 1, Label: "Kind of Blue", Artist: []string{"Miles Davis"}, Genre: []string{"Jazz"}, Year: 1959},
	{ID: 2, Label: "In a Silent Way", Artist: []string{"Miles Davis"}, Genre: []string{"Jazz", "Fusion"}, Year: 1969},
	{ID: 3, Label: "OK Computer", Artist: []string{"Radiohead"}, Genre: []string{"Rock"}, Year: 1997},
}

// TestSongs provides sample song data for Kodi testing
var TestSongs = []kodi.Song{
	{ID: 1, Label: "So What", Artist: []string{"Miles Davis"}, AlbumID: 1, Duration: 562},
	{ID: 2, Label: "Freddie Freeloader", Artist: []string{"Miles Davis"}, AlbumID: 1, Duration: 586},
	{ID: 3, Label: "Paranoid Android", Artist: []string{"Radiohead"}, AlbumID: 3, Duration: 387},
}

// TestActivePlayers provides sample active player data for Kodi testing
var TestActivePlayers = []kodi.Player{
	{Type: "audio", ID: 0},
}

// TestActiveVideoPlayers provides video-only player data for Kodi testing
var TestActiveVideoPlayers = []kodi.Player{
	{Type: "video", ID: 1},
}

// TestNoActivePlayers provides empty player data for Kodi testing
var TestNoActivePlayers = []kodi.Player{}
