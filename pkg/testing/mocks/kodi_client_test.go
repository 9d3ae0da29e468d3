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

package mocks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/davisjam/go-kodi/pkg/kodi"
	"github.com/davisjam/go-kodi/pkg/testing/fixtures"
	"github.com/davisjam/go-kodi/pkg/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewMockKodiClient_BasicSetup(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockKodiClient()
	ctx := context.Background()

	require.NoError(t, client.Ping(ctx))
	require.NoError(t, client.LaunchFile(ctx, "/storage/videos/test.mp4"))
	require.NoError(t, client.Stop(ctx))

	movies, err := client.GetMovies(ctx)
	require.NoError(t, err)
	assert.Empty(t, movies)

	assert.Equal(t, "http://localhost:8080/jsonrpc", client.GetURL())
}

func TestMockKodiClient_CustomExpectations(t *testing.T) {
	t.Parallel()

	client := &mocks.MockKodiClient{}
	client.On("GetArtists", mock.Anything).Return(fixtures.TestArtists, nil).Once()
	client.On("LaunchMovie", mock.Anything, "kodi-movie://1/The Matrix").
		Return(errors.New("kodi offline")).Once()

	artists, err := client.GetArtists(context.Background())
	require.NoError(t, err)
	assert.Len(t, artists, 3)

	err = client.LaunchMovie(context.Background(), "kodi-movie://1/The Matrix")
	require.Error(t, err)

	client.AssertExpectations(t)
}

func TestMockKodiClient_SatisfiesInterface(t *testing.T) {
	t.Parallel()

	var client kodi.KodiClient = mocks.NewMockKodiClient()
	assert.NotNil(t, client)
}
