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
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/davisjam/go-kodi/pkg/config"
	"github.com/davisjam/go-kodi/pkg/kodi"
	"github.com/davisjam/go-kodi/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_LaunchFile_MakesCorrectAPICall(t *testing.T) {
	t.Parallel()

	var receivedPayload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request format
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		err := json.NewDecoder(r.Body).Decode(&receivedPayload)
		if err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		response := map[string]any{
			"jsonrpc": "2.0",
			"id":      receivedPayload["id"],
			"result":  "OK",
		}
		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(response)
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
	}))
	defer server.Close()

	client := kodi.NewClient(nil)
	client.SetURL(server.URL)

	testPath := "/storage/videos/test.mp4"
	err := client.LaunchFile(context.Background(), testPath)
	require.NoError(t, err)

	// Verify the API call details
	assert.Equal(t, "2.0", receivedPayload["jsonrpc"])
	assert.Equal(t, "Player.Open", receivedPayload["method"])
	assert.NotNil(t, receivedPayload["id"])

	params, ok := receivedPayload["params"].(map[string]any)
	require.True(t, ok, "params should be an object")

	item, ok := params["item"].(map[string]any)
	require.True(t, ok, "params.item should be an object")
	assert.Equal(t, testPath, item["file"])

	options, ok := params["options"].(map[string]any)
	require.True(t, ok, "params.options should be an object")
	assert.Equal(t, true, options["resume"])
}

func TestClient_Ping_AcceptsPong(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t)

	client := kodi.NewClient(nil)
	client.SetURL(server.GetURLForConfig())

	err := client.Ping(context.Background())
	require.NoError(t, err)

	reqs := server.RequestsFor(kodi.APIMethodJSONRPCPing)
	assert.Len(t, reqs, 1)
}

func TestClient_Ping_RejectsUnexpectedResult(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t)
	server.HandleResult(kodi.APIMethodJSONRPCPing, "hello")

	client := kodi.NewClient(nil)
	client.SetURL(server.GetURLForConfig())

	err := client.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected ping response")
}

func TestClient_APIRequest_MapsAPIErrors(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t)
	server.HandleError(kodi.APIMethodPlayerGetActivePlayers, -32601, "Method not found")

	client := kodi.NewClient(nil)
	client.SetURL(server.GetURLForConfig())

	_, err := client.GetActivePlayers(context.Background())
	require.Error(t, err)

	var apiErr *kodi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, -32601, apiErr.Code)
	assert.Equal(t, "Method not found", apiErr.Message)
}

func TestClient_APIRequest_SurfacesTransportErrors(t *testing.T) {
	t.Parallel()

	client := kodi.NewClient(nil)
	// No server listening here
	client.SetURL("http://127.0.0.1:1/jsonrpc")

	err := client.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send request")
}

func TestClient_APIRequest_RejectsNonOKStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := kodi.NewClient(nil)
	client.SetURL(server.URL)

	err := client.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestClient_APIRequest_SendsBasicAuth(t *testing.T) {
	// Not parallel: mutates the global auth config.
	var authHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":"pong"}`))
	}))
	defer server.Close()

	config.SetAuthCfg(config.Auth{Creds: map[string]config.CredentialEntry{
		server.URL: {Username: "kodi", Password: "secret"},
	}})
	defer config.SetAuthCfg(config.Auth{})

	client := kodi.NewClient(nil)
	client.SetURL(server.URL)

	err := client.Ping(context.Background())
	require.NoError(t, err)

	user, pass, ok := parseBasicAuth(t, authHeader)
	require.True(t, ok, "expected basic auth header, got %q", authHeader)
	assert.Equal(t, "kodi", user)
	assert.Equal(t, "secret", pass)
}

func parseBasicAuth(t *testing.T, header string) (user, pass string, ok bool) {
	t.Helper()
	req := &http.Request{Header: http.Header{"Authorization": []string{header}}}
	return req.BasicAuth()
}

func TestClient_APIRequest_MapsTimeoutToSentinel(t *testing.T) {
	t.Parallel()

	// Hold the request open until the client gives up. The body must be
	// drained first: the server only detects the client disconnect (and
	// cancels r.Context()) once the request body has been consumed, and
	// server.Close() would otherwise deadlock waiting on this handler.
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer server.Close()

	client := kodi.NewClient(nil)
	client.SetURL(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := client.Ping(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, kodi.ErrRequestTimeout),
		"timed-out request should map to ErrRequestTimeout, got: %v", err)
}

func TestClient_SetURL_SafeDuringRequests(t *testing.T) {
	t.Parallel()

	first := helpers.NewMockKodiServer(t)
	second := helpers.NewMockKodiServer(t)

	client := kodi.NewClient(nil)
	client.SetURL(first.GetURLForConfig())

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 25 {
				_ = client.Ping(context.Background())
			}
		}()
		go func() {
			defer wg.Done()
			for range 25 {
				client.SetURL(second.GetURLForConfig())
				_ = client.GetURL()
				client.SetURL(first.GetURLForConfig())
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, first.GetURLForConfig(), client.GetURL())
}

func TestClient_APIRequest_HonorsContextCancellation(t *testing.T) {
	t.Parallel()

	server := helpers.NewMockKodiServer(t)

	client := kodi.NewClient(nil)
	client.SetURL(server.GetURLForConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Ping(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
