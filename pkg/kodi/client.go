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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/davisjam/go-kodi/pkg/config"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Sentinel errors callers can branch on.
var (
	ErrNoActivePlayer = errors.New("no active audio player")
	ErrRequestTimeout = errors.New("kodi api request timed out")
)

// DefaultRequestTimeout bounds a single JSON-RPC round trip when the
// caller's context carries no deadline.
const DefaultRequestTimeout = 10 * time.Second

// Client implements the KodiClient interface over Kodi's HTTP JSON-RPC
// transport. It is safe for concurrent use; SetURL may be called while
// requests are in flight.
type Client struct {
	httpClient *http.Client
	creds      *config.CredentialEntry
	url        string
	volumeStep int
	mu         sync.RWMutex
}

// Ensure Client implements KodiClient at compile time
var _ KodiClient = (*Client)(nil)

// NewClient creates a new Kodi client with configuration-based URL and
// credentials. A nil config falls back to the default local endpoint.
func NewClient(cfg *config.Instance) KodiClient {
	url := config.DefaultKodiURL
	step := DefaultVolumeStep
	if cfg != nil {
		url = cfg.KodiURL()
		step = cfg.VolumeStep()
	}
	return &Client{
		url:        url,
		volumeStep: step,
		creds:      config.LookupAuth(url),
		httpClient: &http.Client{Timeout: DefaultRequestTimeout},
	}
}

// GetURL returns the current Kodi API URL
func (c *Client) GetURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.url
}

// SetURL sets the Kodi API URL and re-resolves credentials for it
func (c *Client) SetURL(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.url = url
	c.creds = config.LookupAuth(url)
}

// Ping checks the Kodi endpoint is reachable and speaking JSON-RPC
func (c *Client) Ping(ctx context.Context) error {
	result, err := c.APIRequest(ctx, APIMethodJSONRPCPing, nil)
	if err != nil {
		return err
	}

	var pong string
	if err := json.Unmarshal(result, &pong); err != nil {
		return fmt.Errorf("failed to unmarshal ping response: %w", err)
	}
	if pong != "pong" {
		return fmt.Errorf("unexpected ping response: %q", pong)
	}

	return nil
}

// APIRequest makes a raw JSON-RPC request to Kodi API
func (c *Client) APIRequest(ctx context.Context, method APIMethod, params any) (json.RawMessage, error) {
	req := APIPayload{
		JSONRPC: "2.0",
		ID:      uuid.New().String(),
		Method:  method,
		Params:  params,
	}

	reqJSON, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	log.Debug().Msgf("kodi request: %s", string(reqJSON))

	c.mu.RLock()
	url, creds := c.url, c.creds
	c.mu.RUnlock()

	kodiReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(reqJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	kodiReq.Header.Set("Content-Type", "application/json")
	kodiReq.Header.Set("Accept", "application/json")
	if creds != nil {
		kodiReq.SetBasicAuth(creds.Username, creds.Password)
	}

	resp, err := c.httpClient.Do(kodiReq)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return nil, fmt.Errorf("%w: %w", ErrRequestTimeout, err)
		}
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore close error in defer
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status from kodi api: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var apiResp APIResponse
	err = json.Unmarshal(body, &apiResp)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if apiResp.Error != nil {
		return nil, fmt.Errorf("error from kodi api: %w", apiResp.Error)
	}

	return apiResp.Result, nil
}
