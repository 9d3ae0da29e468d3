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
	"testing"

	"github.com/davisjam/go-kodi/pkg/kodi"
	"github.com/davisjam/go-kodi/pkg/testing/fixtures"
	"github.com/davisjam/go-kodi/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, server *helpers.MockKodiServer) kodi.KodiClient {
	t.Helper()
	client := kodi.NewClient(nil)
	client.SetURL(server.GetURLForConfig())
	return client
}

func TestClient_GetActivePlayers(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t).WithActivePlayers()
	client := newTestClient(t, server)

	players, err := client.GetActivePlayers(context.Background())
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "audio", players[0].Type)
}

func TestClient_ActiveAudioPlayer_PicksAudioPlayer(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t)
	server.HandleResult(kodi.APIMethodPlayerGetActivePlayers, []kodi.Player{
		{Type: "video", ID: 1},
		{Type: "audio", ID: 0},
	})
	client := newTestClient(t, server)

	player, err := client.ActiveAudioPlayer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, player.ID)
	assert.Equal(t, "audio", player.Type)
}

func TestClient_ActiveAudioPlayer_NoneActive(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t).WithNoActivePlayers()
	client := newTestClient(t, server)

	_, err := client.ActiveAudioPlayer(context.Background())
	require.ErrorIs(t, err, kodi.ErrNoActivePlayer)
}

func TestClient_ActiveAudioPlayer_VideoOnly(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t)
	server.HandleResult(kodi.APIMethodPlayerGetActivePlayers, fixtures.TestActiveVideoPlayers)
	client := newTestClient(t, server)

	_, err := client.ActiveAudioPlayer(context.Background())
	require.ErrorIs(t, err, kodi.ErrNoActivePlayer)
}

func withPlayerSpeed(server *helpers.MockKodiServer, speed int) {
	server.WithActivePlayers()
	server.HandleResult(kodi.APIMethodPlayerGetProperties, kodi.PlayerProperties{Speed: speed})
}

func TestClient_IsPlaying(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t)
	withPlayerSpeed(server, 1)
	client := newTestClient(t, server)

	playing, err := client.IsPlaying(context.Background())
	require.NoError(t, err)
	assert.True(t, playing)

	// The speed query should be scoped to the active audio player
	reqs := server.RequestsFor(kodi.APIMethodPlayerGetProperties)
	require.Len(t, reqs, 1)

	var params kodi.PlayerGetPropertiesParams
	require.NoError(t, json.Unmarshal(reqs[0].Params, &params))
	assert.Equal(t, 0, params.PlayerID)
	assert.Equal(t, []string{"speed"}, params.Properties)
}

func TestClient_IsPlaying_NoActivePlayer(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t).WithNoActivePlayers()
	client := newTestClient(t, server)

	playing, err := client.IsPlaying(context.Background())
	require.NoError(t, err)
	assert.False(t, playing)
}

func TestClient_Pause_OnlyWhenPlaying(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t)
	withPlayerSpeed(server, 1)
	client := newTestClient(t, server)

	require.NoError(t, client.Pause(context.Background()))
	assert.Len(t, server.RequestsFor(kodi.APIMethodPlayerPlayPause), 1)
}

func TestClient_Pause_NoopWhenPaused(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t)
	withPlayerSpeed(server, 0)
	client := newTestClient(t, server)

	require.NoError(t, client.Pause(context.Background()))
	assert.Empty(t, server.RequestsFor(kodi.APIMethodPlayerPlayPause))
}

func TestClient_Resume_OnlyWhenPaused(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t)
	withPlayerSpeed(server, 0)
	client := newTestClient(t, server)

	require.NoError(t, client.Resume(context.Background()))
	assert.Len(t, server.RequestsFor(kodi.APIMethodPlayerPlayPause), 1)
}

func TestClient_Resume_NoopWhenPlaying(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t)
	withPlayerSpeed(server, 1)
	client := newTestClient(t, server)

	require.NoError(t, client.Resume(context.Background()))
	assert.Empty(t, server.RequestsFor(kodi.APIMethodPlayerPlayPause))
}

func TestClient_Stop_StopsAllActivePlayers(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t)
	server.HandleResult(kodi.APIMethodPlayerGetActivePlayers, []kodi.Player{
		{Type: "audio", ID: 0},
		{Type: "video", ID: 1},
	})
	client := newTestClient(t, server)

	require.NoError(t, client.Stop(context.Background()))

	reqs := server.RequestsFor(kodi.APIMethodPlayerStop)
	require.Len(t, reqs, 2)

	var stopped []int
	for _, req := range reqs {
		var params kodi.PlayerIDParams
		require.NoError(t, json.Unmarshal(req.Params, &params))
		stopped = append(stopped, params.PlayerID)
	}
	assert.ElementsMatch(t, []int{0, 1}, stopped)
}

func TestClient_GetPlayingItem(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t).WithActivePlayers()
	server.HandleResult(kodi.APIMethodPlayerGetItem, kodi.PlayerGetItemResponse{
		Item: kodi.PlayingItem{
			Label:  "So What",
			Type:   "song",
			Artist: []string{"Miles Davis"},
			Album:  "Kind of Blue",
		},
	})
	client := newTestClient(t, server)

	item, err := client.GetPlayingItem(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "So What", item.Label)
	assert.Equal(t, []string{"Miles Davis"}, item.Artist)
}

func TestClient_Seek_RejectsOutOfRange(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t).WithActivePlayers()
	client := newTestClient(t, server)

	require.Error(t, client.Seek(context.Background(), -1))
	require.Error(t, client.Seek(context.Background(), 101))
	assert.Empty(t, server.RequestsFor(kodi.APIMethodPlayerSeek))

	require.NoError(t, client.Seek(context.Background(), 50))
	assert.Len(t, server.RequestsFor(kodi.APIMethodPlayerSeek), 1)
}
