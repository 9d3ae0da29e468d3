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

package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/davisjam/go-kodi/pkg/kodi"
	"github.com/davisjam/go-kodi/pkg/testing/fixtures"
)

// RecordedRequest is a JSON-RPC request captured by the mock server.
type RecordedRequest struct {
	Params json.RawMessage
	ID     string
	Method kodi.APIMethod
}

// MockKodiServer provides a mock Kodi JSON-RPC server for integration
// testing. Responses are dispatched per method from configured fixture
// data; unconfigured methods answer with an "OK" result, matching Kodi's
// behavior for action methods.
type MockKodiServer struct {
	*httptest.Server
	handlers map[kodi.APIMethod]func(params json.RawMessage) (any, *kodi.APIError)
	requests []RecordedRequest
	mu       sync.Mutex
}

// NewMockKodiServer creates a new mock Kodi server for testing
func NewMockKodiServer(t *testing.T) *MockKodiServer {
	t.Helper()

	mock := &MockKodiServer{
		handlers: make(map[kodi.APIMethod]func(params json.RawMessage) (any, *kodi.APIError)),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/jsonrpc", mock.handleJSONRPC)
	mock.Server = httptest.NewServer(mux)
	t.Cleanup(mock.Server.Close)

	return mock
}

// GetURLForConfig returns the mock server's URL formatted for Kodi
// client configuration
func (m *MockKodiServer) GetURLForConfig() string {
	return m.Server.URL + "/jsonrpc"
}

// Handle registers a response handler for a method.
func (m *MockKodiServer) Handle(
	method kodi.APIMethod,
	handler func(params json.RawMessage) (any, *kodi.APIError),
) *MockKodiServer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[method] = handler
	return m
}

// HandleResult registers a fixed result for a method.
func (m *MockKodiServer) HandleResult(method kodi.APIMethod, result any) *MockKodiServer {
	return m.Handle(method, func(json.RawMessage) (any, *kodi.APIError) {
		return result, nil
	})
}

// HandleError registers a JSON-RPC error response for a method.
func (m *MockKodiServer) HandleError(method kodi.APIMethod, code int, message string) *MockKodiServer {
	return m.Handle(method, func(json.RawMessage) (any, *kodi.APIError) {
		return nil, &kodi.APIError{Code: code, Message: message}
	})
}

// WithActivePlayers configures the mock server with an active audio player
func (m *MockKodiServer) WithActivePlayers() *MockKodiServer {
	return m.HandleResult(kodi.APIMethodPlayerGetActivePlayers, fixtures.TestActivePlayers)
}

// WithNoActivePlayers configures the mock server with no active players
func (m *MockKodiServer) WithNoActivePlayers() *MockKodiServer {
	return m.HandleResult(kodi.APIMethodPlayerGetActivePlayers, fixtures.TestNoActivePlayers)
}

// WithLibrary configures the mock server with the standard library fixtures
func (m *MockKodiServer) WithLibrary() *MockKodiServer {
	m.HandleResult(kodi.APIMethodAudioLibraryGetArtists,
		kodi.AudioLibraryGetArtistsResponse{Artists: fixtures.TestArtists})
	m.HandleResult(kodi.APIMethodAudioLibraryGetAlbums,
		kodi.AudioLibraryGetAlbumsResponse{Albums: fixtures.TestAlbums})
	m.HandleResult(kodi.APIMethodAudioLibraryGetSongs,
		kodi.AudioLibraryGetSongsResponse{Songs: fixtures.TestSongs})
	m.HandleResult(kodi.APIMethodVideoLibraryGetMovies,
		kodi.VideoLibraryGetMoviesResponse{Movies: fixtures.TestMovies})
	m.HandleResult(kodi.APIMethodVideoLibraryGetTVShows,
		kodi.VideoLibraryGetTVShowsResponse{TVShows: fixtures.TestTVShows})
	m.Handle(kodi.APIMethodVideoLibraryGetEpisodes,
		func(params json.RawMessage) (any, *kodi.APIError) {
			var p kodi.VideoLibraryGetEpisodesParams
			_ = json.Unmarshal(params, &p)
			return kodi.VideoLibraryGetEpisodesResponse{
				Episodes: fixtures.TestEpisodes[p.TVShowID],
			}, nil
		})
	return m
}

// Requests returns a copy of all JSON-RPC requests received so far.
func (m *MockKodiServer) Requests() []RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	reqs := make([]RecordedRequest, len(m.requests))
	copy(reqs, m.requests)
	return reqs
}

// RequestsFor returns received requests matching a method.
func (m *MockKodiServer) RequestsFor(method kodi.APIMethod) []RecordedRequest {
	var matched []RecordedRequest
	for _, req := range m.Requests() {
		if req.Method == method {
			matched = append(matched, req)
		}
	}
	return matched
}

func (m *MockKodiServer) handleJSONRPC(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var payload struct {
		Params  json.RawMessage `json:"params"`
		JSONRPC string          `json:"jsonrpc"`
		ID      string          `json:"id"`
		Method  kodi.APIMethod  `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	m.mu.Lock()
	m.requests = append(m.requests, RecordedRequest{
		Method: payload.Method,
		ID:     payload.ID,
		Params: payload.Params,
	})
	handler := m.handlers[payload.Method]
	m.mu.Unlock()

	response := kodi.APIResponse{
		ID:      payload.ID,
		JSONRPC: "2.0",
	}

	switch {
	case handler != nil:
		result, apiErr := handler(payload.Params)
		if apiErr != nil {
			response.Error = apiErr
		} else {
			raw, _ := json.Marshal(result)
			response.Result = raw
		}
	case payload.Method == kodi.APIMethodJSONRPCPing:
		response.Result = json.RawMessage(`"pong"`)
	default:
		response.Result = json.RawMessage(`"OK"`)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}
