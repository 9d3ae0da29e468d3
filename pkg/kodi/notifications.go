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
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// notificationBuffer bounds undelivered notifications before the reader
// goroutine blocks.
const notificationBuffer = 16

// NotificationListener receives server-pushed JSON-RPC notifications
// from Kodi's WebSocket transport.
type NotificationListener struct {
	wsURL string
}

// NewNotificationListener creates a listener for the given WebSocket
// endpoint, e.g. "ws://localhost:9090/jsonrpc".
func NewNotificationListener(wsURL string) *NotificationListener {
	return &NotificationListener{wsURL: wsURL}
}

// Listen dials the WebSocket endpoint and delivers notifications on the
// returned channel until ctx is canceled or the connection drops. The
// channel is closed when the listener stops. The initial dial retries
// with exponential backoff so a listener can be started before Kodi is
// up.
func (l *NotificationListener) Listen(ctx context.Context) (<-chan Notification, error) {
	conn, err := backoff.Retry(ctx, func() (*websocket.Conn, error) {
		//nolint:bodyclose // resp body is managed by the websocket package
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, l.wsURL, nil)
		if err != nil {
			log.Debug().Err(err).Msgf("failed to dial %s, retrying", l.wsURL)
			return nil, fmt.Errorf("failed to dial %s: %w", l.wsURL, err)
		}
		return conn, nil
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(30*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to kodi websocket: %w", err)
	}

	notifications := make(chan Notification, notificationBuffer)
	readerDone := make(chan struct{})

	go func() {
		select {
		case <-ctx.Done():
			if err := conn.Close(); err != nil {
				log.Warn().Err(err).Msg("error closing websocket")
			}
		case <-readerDone:
			// Connection already dropped; just release it.
			_ = conn.Close()
		}
	}()

	go func() {
		defer close(notifications)
		defer close(readerDone)
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				if ctx.Err() == nil {
					log.Error().Err(err).Msg("error reading from kodi websocket")
				}
				return
			}

			notification, ok := decodeNotification(message)
			if !ok {
				continue
			}

			select {
			case notifications <- notification:
			case <-ctx.Done():
				return
			}
		}
	}()

	return notifications, nil
}

// decodeNotification parses a raw WebSocket message, reporting false for
// anything that is not a JSON-RPC notification. Responses to requests
// carry an id and are not notifications.
func decodeNotification(message []byte) (Notification, bool) {
	var envelope struct {
		ID      json.RawMessage `json:"id"`
		JSONRPC string          `json:"jsonrpc"`
		Method  APIMethod       `json:"method"`
		Params  json.RawMessage `json:"params"`
	}
	if err := json.Unmarshal(message, &envelope); err != nil {
		log.Debug().Err(err).Msg("skipping unparseable websocket message")
		return Notification{}, false
	}

	if envelope.JSONRPC != "2.0" || envelope.Method == "" || envelope.ID != nil {
		return Notification{}, false
	}

	return Notification{
		Method: envelope.Method,
		Params: envelope.Params,
	}, true
}

// DecodeParams unmarshals the notification's sender/data wrapper.
func (n Notification) DecodeParams() (*NotificationParams, error) {
	var params NotificationParams
	if err := json.Unmarshal(n.Params, &params); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notification params: %w", err)
	}
	return &params, nil
}
