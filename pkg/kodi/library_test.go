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

package kodi_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/davisjam/go-kodi/pkg/kodi"
	"github.com/davisjam/go-kodi/pkg/testing/fixtures"
	"github.com/davisjam/go-kodi/pkg/testing/helpers"
	"github.com/davisjam/go-kodi/pkg/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClient_GetAlbums_RequestsAlbumProperties(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t).WithLibrary()
	client := newTestClient(t, server)

	albums, err := client.GetAlbums(context.Background())
	require.NoError(t, err)
	require.Len(t, albums, 3)
	assert.Equal(t, "Kind of Blue", albums[0].Label)
	assert.Equal(t, "Miles Davis", albums[0].DisplayArtist())

	reqs := server.RequestsFor(kodi.APIMethodAudioLibraryGetAlbums)
	require.Len(t, reqs, 1)

	var params kodi.AudioLibraryGetAlbumsParams
	require.NoError(t, json.Unmarshal(reqs[0].Params, &params))
	assert.Contains(t, params.Properties, "artist")
	assert.Contains(t, params.Properties, "genre")
	assert.Contains(t, params.Properties, "playcount")
}

func TestClient_GetSongs_AppliesFilter(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t).WithLibrary()
	client := newTestClient(t, server)

	_, err := client.GetSongs(context.Background(), &kodi.SongFilter{AlbumID: 1})
	require.NoError(t, err)

	reqs := server.RequestsFor(kodi.APIMethodAudioLibraryGetSongs)
	require.Len(t, reqs, 1)

	// Kodi only accepts ID filters in the simple object form, so the
	// wire shape must be {"filter":{"albumid":1}} with no rule keys.
	var params struct {
		Filter map[string]json.RawMessage `json:"filter"`
	}
	require.NoError(t, json.Unmarshal(reqs[0].Params, &params))
	require.NotNil(t, params.Filter)
	assert.JSONEq(t, "1", string(params.Filter["albumid"]))
	assert.NotContains(t, params.Filter, "field")
	assert.NotContains(t, params.Filter, "operator")
	assert.NotContains(t, params.Filter, "value")
}

func TestClient_GetEpisodes_ScopedToShow(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t).WithLibrary()
	client := newTestClient(t, server)

	episodes, err := client.GetEpisodes(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, episodes, 2)
	assert.Equal(t, 201, episodes[0].ID)
}

func TestBuildLibraryIndex(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t).WithLibrary()
	client := newTestClient(t, server)

	idx, err := kodi.BuildLibraryIndex(context.Background(), client)
	require.NoError(t, err)

	assert.Len(t, idx.Artists, 3)
	assert.Len(t, idx.Albums, 3)

	miles := idx.AlbumsByArtist("Miles Davis")
	require.Len(t, miles, 2)
	assert.Equal(t, "Kind of Blue", miles[0].Label)

	// Artists with no albums of their own are not indexed
	assert.Nil(t, idx.AlbumsByArtist("Various Artists"))
	assert.Nil(t, idx.AlbumsByArtist("Unknown"))

	jazz := idx.AlbumsByGenre("Jazz")
	assert.Len(t, jazz, 2)
	fusion := idx.AlbumsByGenre("Fusion")
	assert.Len(t, fusion, 1)

	assert.Equal(t, []string{"Fusion", "Jazz", "Rock"}, idx.Genres())
}

func TestBuildLibraryIndex_PropagatesErrors(t *testing.T) {
	t.Parallel()

	client := &mocks.MockKodiClient{}
	client.On("GetArtists", mock.Anything).Return([]kodi.Artist{}, errors.New("boom"))
	client.On("GetAlbums", mock.Anything).Return(fixtures.TestAlbums, nil).Maybe()

	_, err := kodi.BuildLibraryIndex(context.Background(), client)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get artists")
}
