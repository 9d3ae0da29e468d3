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

	"github.com/rs/zerolog/log"
)

// GetApplicationProperties retrieves application volume and mute state
func (c *Client) GetApplicationProperties(ctx context.Context) (*ApplicationProperties, error) {
	result, err := c.APIRequest(ctx, APIMethodApplicationGetProperties, ApplicationGetPropertiesParams{
		Properties: []string{"volume", "muted"},
	})
	if err != nil {
		return nil, err
	}

	var props ApplicationProperties
	err = json.Unmarshal(result, &props)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal GetProperties response: %w", err)
	}

	if props.Volume < MinVolume || props.Volume > MaxVolume {
		return nil, fmt.Errorf("volume out of range: %d", props.Volume)
	}

	return &props, nil
}

// SetVolume sets the application volume, between MinVolume and MaxVolume
func (c *Client) SetVolume(ctx context.Context, volume int) error {
	if volume < MinVolume || volume > MaxVolume {
		return fmt.Errorf("volume out of range: %d", volume)
	}

	_, err := c.APIRequest(ctx, APIMethodApplicationSetVolume, ApplicationSetVolumeParams{
		Volume: volume,
	})
	return err
}

// RaiseVolume raises the volume by the configured step, clamped to
// MaxVolume. Does nothing when volume is already at maximum.
func (c *Client) RaiseVolume(ctx context.Context) error {
	props, err := c.GetApplicationProperties(ctx)
	if err != nil {
		return err
	}

	if props.Volume >= MaxVolume {
		log.Debug().Msg("volume is already max, nothing to do")
		return nil
	}

	newVolume := min(props.Volume+c.volumeStep, MaxVolume)
	if err := c.SetVolume(ctx, newVolume); err != nil {
		return err
	}

	log.Debug().Msgf("raised volume from %d to %d", props.Volume, newVolume)
	return nil
}

// LowerVolume lowers the volume by the configured step, clamped to
// MinVolume. Does nothing when volume is already at minimum.
func (c *Client) LowerVolume(ctx context.Context) error {
	props, err := c.GetApplicationProperties(ctx)
	if err != nil {
		return err
	}

	if props.Volume <= MinVolume {
		log.Debug().Msg("volume is already min, nothing to do")
		return nil
	}

	newVolume := max(props.Volume-c.volumeStep, MinVolume)
	if err := c.SetVolume(ctx, newVolume); err != nil {
		return err
	}

	log.Debug().Msgf("lowered volume from %d to %d", props.Volume, newVolume)
	return nil
}

// SetMute sets the application mute state
func (c *Client) SetMute(ctx context.Context, mute bool) error {
	_, err := c.APIRequest(ctx, APIMethodApplicationSetMute, ApplicationSetMuteParams{
		Mute: mute,
	})
	return err
}
