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
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// GetActivePlayers retrieves all active players in Kodi
func (c *Client) GetActivePlayers(ctx context.Context) ([]Player, error) {
	result, err := c.APIRequest(ctx, APIMethodPlayerGetActivePlayers, nil)
	if err != nil {
		return nil, err
	}

	var players []Player
	err = json.Unmarshal(result, &players)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal GetActivePlayers response: %w", err)
	}

	return players, nil
}

// ActiveAudioPlayer returns the active audio player. Kodi runs at most
// one audio player at a time; ErrNoActivePlayer is returned when none is
// active.
func (c *Client) ActiveAudioPlayer(ctx context.Context) (*Player, error) {
	players, err := c.GetActivePlayers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range players {
		if players[i].Type == PlayerTypeAudio {
			return &players[i], nil
		}
	}

	return nil, ErrNoActivePlayer
}

// GetPlayerProperties retrieves the requested properties of the active
// audio player. A nil or empty properties list requests all known player
// properties.
func (c *Client) GetPlayerProperties(ctx context.Context, properties []string) (*PlayerProperties, error) {
	player, err := c.ActiveAudioPlayer(ctx)
	if err != nil {
		return nil, err
	}

	if len(properties) == 0 {
		properties = AllPlayerProperties
	}

	result, err := c.APIRequest(ctx, APIMethodPlayerGetProperties, PlayerGetPropertiesParams{
		PlayerID:   player.ID,
		Properties: properties,
	})
	if err != nil {
		return nil, err
	}

	var props PlayerProperties
	err = json.Unmarshal(result, &props)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal GetProperties response: %w", err)
	}

	return &props, nil
}

// GetPlayingItem retrieves the item loaded in the active audio player
func (c *Client) GetPlayingItem(ctx context.Context) (*PlayingItem, error) {
	player, err := c.ActiveAudioPlayer(ctx)
	if err != nil {
		return nil, err
	}

	result, err := c.APIRequest(ctx, APIMethodPlayerGetItem, PlayerIDParams{
		PlayerID: player.ID,
	})
	if err != nil {
		return nil, err
	}

	var response PlayerGetItemResponse
	err = json.Unmarshal(result, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal GetItem response: %w", err)
	}

	return &response.Item, nil
}

// IsPlaying reports whether the active audio player has nonzero speed.
// Returns false without error when no audio player is active.
func (c *Client) IsPlaying(ctx context.Context) (bool, error) {
	props, err := c.GetPlayerProperties(ctx, []string{"speed"})
	if errors.Is(err, ErrNoActivePlayer) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return props.Speed != 0, nil
}

// PlayPause toggles the play/pause state of the active audio player
func (c *Client) PlayPause(ctx context.Context) error {
	player, err := c.ActiveAudioPlayer(ctx)
	if err != nil {
		return err
	}

	_, err = c.APIRequest(ctx, APIMethodPlayerPlayPause, PlayerIDParams{
		PlayerID: player.ID,
	})
	return err
}

// Pause pauses playback only if audio is currently playing
func (c *Client) Pause(ctx context.Context) error {
	playing, err := c.IsPlaying(ctx)
	if err != nil {
		return err
	}

	if !playing {
		log.Debug().Msg("audio is not playing, nothing to pause")
		return nil
	}

	return c.PlayPause(ctx)
}

// Resume resumes playback only if audio is currently paused
func (c *Client) Resume(ctx context.Context) error {
	playing, err := c.IsPlaying(ctx)
	if err != nil {
		return err
	}

	if playing {
		log.Debug().Msg("audio is already playing, nothing to resume")
		return nil
	}

	return c.PlayPause(ctx)
}

// Stop stops all active players in Kodi
func (c *Client) Stop(ctx context.Context) error {
	players, err := c.GetActivePlayers(ctx)
	if err != nil {
		return err
	}

	for _, player := range players {
		_, err := c.APIRequest(ctx, APIMethodPlayerStop, PlayerIDParams{
			PlayerID: player.ID,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// Seek seeks the active audio player to a percentage position
func (c *Client) Seek(ctx context.Context, percentage float64) error {
	if percentage < 0 || percentage > 100 {
		return fmt.Errorf("seek percentage out of range: %f", percentage)
	}

	player, err := c.ActiveAudioPlayer(ctx)
	if err != nil {
		return err
	}

	_, err = c.APIRequest(ctx, APIMethodPlayerSeek, PlayerSeekParams{
		PlayerID: player.ID,
		Value:    SeekValue{Percentage: percentage},
	})
	return err
}
