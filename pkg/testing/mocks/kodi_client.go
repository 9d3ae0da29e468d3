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

package mocks

import (
	"context"
	"encoding/json"

	"github.com/davisjam/go-kodi/pkg/kodi"
	"github.com/stretchr/testify/mock"
)

// MockKodiClient is a mock implementation of the KodiClient interface
// for use in tests. It provides all the standard testify/mock functionality.
type MockKodiClient struct {
	mock.Mock
}

// Ensure MockKodiClient implements KodiClient at compile time
var _ kodi.KodiClient = (*MockKodiClient)(nil)

func (m *MockKodiClient) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockKodiClient) GetActivePlayers(ctx context.Context) ([]kodi.Player, error) {
	args := m.Called(ctx)
	return args.Get(0).([]kodi.Player), args.Error(1)
}

func (m *MockKodiClient) ActiveAudioPlayer(ctx context.Context) (*kodi.Player, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kodi.Player), args.Error(1)
}

func (m *MockKodiClient) GetPlayerProperties(
	ctx context.Context, properties []string,
) (*kodi.PlayerProperties, error) {
	args := m.Called(ctx, properties)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kodi.PlayerProperties), args.Error(1)
}

func (m *MockKodiClient) GetPlayingItem(ctx context.Context) (*kodi.PlayingItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kodi.PlayingItem), args.Error(1)
}

func (m *MockKodiClient) IsPlaying(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockKodiClient) PlayPause(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockKodiClient) Pause(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockKodiClient) Resume(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockKodiClient) Stop(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockKodiClient) Seek(ctx context.Context, percentage float64) error {
	args := m.Called(ctx, percentage)
	return args.Error(0)
}

func (m *MockKodiClient) GetApplicationProperties(
	ctx context.Context,
) (*kodi.ApplicationProperties, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kodi.ApplicationProperties), args.Error(1)
}

func (m *MockKodiClient) SetVolume(ctx context.Context, volume int) error {
	args := m.Called(ctx, volume)
	return args.Error(0)
}

func (m *MockKodiClient) RaiseVolume(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockKodiClient) LowerVolume(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockKodiClient) SetMute(ctx context.Context, mute bool) error {
	args := m.Called(ctx, mute)
	return args.Error(0)
}

func (m *MockKodiClient) GetMovies(ctx context.Context) ([]kodi.Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]kodi.Movie), args.Error(1)
}

func (m *MockKodiClient) GetTVShows(ctx context.Context) ([]kodi.TVShow, error) {
	args := m.Called(ctx)
	return args.Get(0).([]kodi.TVShow), args.Error(1)
}

func (m *MockKodiClient) GetEpisodes(ctx context.Context, tvShowID int) ([]kodi.Episode, error) {
	args := m.Called(ctx, tvShowID)
	return args.Get(0).([]kodi.Episode), args.Error(1)
}

func (m *MockKodiClient) GetArtists(ctx context.Context) ([]kodi.Artist, error) {
	args := m.Called(ctx)
	return args.Get(0).([]kodi.Artist), args.Error(1)
}

func (m *MockKodiClient) GetAlbums(ctx context.Context) ([]kodi.Album, error) {
	args := m.Called(ctx)
	return args.Get(0).([]kodi.Album), args.Error(1)
}

func (m *MockKodiClient) GetSongs(ctx context.Context, filter *kodi.SongFilter) ([]kodi.Song, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]kodi.Song), args.Error(1)
}

func (m *MockKodiClient) ClearPlaylist(ctx context.Context, playlistID int) error {
	args := m.Called(ctx, playlistID)
	return args.Error(0)
}

func (m *MockKodiClient) AddSongsToPlaylist(ctx context.Context, playlistID int, songIDs []int) error {
	args := m.Called(ctx, playlistID, songIDs)
	return args.Error(0)
}

func (m *MockKodiClient) AddEpisodesToPlaylist(ctx context.Context, playlistID int, episodeIDs []int) error {
	args := m.Called(ctx, playlistID, episodeIDs)
	return args.Error(0)
}

func (m *MockKodiClient) OpenPlaylist(ctx context.Context, playlistID int) error {
	args := m.Called(ctx, playlistID)
	return args.Error(0)
}

func (m *MockKodiClient) LaunchFile(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockKodiClient) LaunchMovie(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockKodiClient) LaunchTVEpisode(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockKodiClient) LaunchSong(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockKodiClient) LaunchAlbum(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockKodiClient) LaunchArtist(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockKodiClient) GetURL() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockKodiClient) SetURL(url string) {
	m.Called(url)
}

func (m *MockKodiClient) APIRequest(
	ctx context.Context, method kodi.APIMethod, params any,
) (json.RawMessage, error) {
	args := m.Called(ctx, method, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// SetupBasicMock configures the mock with common expectations
// for standard test scenarios
func (m *MockKodiClient) SetupBasicMock() {
	m.On("Ping", mock.Anything).Return(nil).Maybe()
	m.On("LaunchFile", mock.Anything, mock.AnythingOfType("string")).Return(nil).Maybe()
	m.On("LaunchMovie", mock.Anything, mock.AnythingOfType("string")).Return(nil).Maybe()
	m.On("LaunchTVEpisode", mock.Anything, mock.AnythingOfType("string")).Return(nil).Maybe()
	m.On("Stop", mock.Anything).Return(nil).Maybe()
	m.On("GetActivePlayers", mock.Anything).Return([]kodi.Player{}, nil).Maybe()
	m.On("GetMovies", mock.Anything).Return([]kodi.Movie{}, nil).Maybe()
	m.On("GetTVShows", mock.Anything).Return([]kodi.TVShow{}, nil).Maybe()
	m.On("GetEpisodes", mock.Anything, mock.AnythingOfType("int")).Return([]kodi.Episode{}, nil).Maybe()
	m.On("GetArtists", mock.Anything).Return([]kodi.Artist{}, nil).Maybe()
	m.On("GetAlbums", mock.Anything).Return([]kodi.Album{}, nil).Maybe()
	m.On("GetSongs", mock.Anything, mock.Anything).Return([]kodi.Song{}, nil).Maybe()
	m.On("GetURL").Return("http://localhost:8080/jsonrpc").Maybe()
	m.On("SetURL", mock.AnythingOfType("string")).Return().Maybe()
}

// NewMockKodiClient creates a new mock Kodi client with basic setup
func NewMockKodiClient() *MockKodiClient {
	mock := &MockKodiClient{}
	mock.SetupBasicMock()
	return mock
}
