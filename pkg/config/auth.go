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

package config

import (
	"maps"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

// CredentialEntry holds authentication credentials for a URL.
type CredentialEntry struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// Auth holds all configured credentials, keyed by endpoint URL.
type Auth struct {
	Creds map[string]CredentialEntry `toml:"creds,omitempty"`
}

var authCfg atomic.Value

// GetAuthCfg returns the loaded auth credentials, or an empty Auth when
// no auth file has been loaded.
func GetAuthCfg() Auth {
	val := authCfg.Load()
	if val == nil {
		return Auth{}
	}
	auth, ok := val.(Auth)
	if !ok {
		return Auth{}
	}
	return auth
}

// SetAuthCfg replaces the loaded auth credentials. Used by tests and the
// config loader.
func SetAuthCfg(auth Auth) {
	authCfg.Store(auth)
}

// schemeAliases maps protocol variants to their canonical form.
// This allows credentials configured for one scheme to match equivalent
// schemes, so Kodi's WebSocket port shares the HTTP credentials.
var schemeAliases = map[string]string{
	"ws":  "http",
	"wss": "https",
}

// authRootFormat represents the clean format: ["url"] at root level
type authRootFormat map[string]CredentialEntry

// authCredsFormat represents the wrapped format: [creds."url"]
type authCredsFormat struct {
	Creds map[string]CredentialEntry `toml:"creds"`
}

// isValidAuthKey filters out TOML structural keys that get captured when
// parsing the root format in mixed-format files.
func isValidAuthKey(key string) bool {
	return key != "creds"
}

// LoadAuthFromData parses auth.toml data supporting both formats.
// Formats are merged, allowing users to mix formats in the same file.
//
// Supported formats:
//   - Root level: ["http://kodi.local:8080"]
//   - Creds wrapper: [creds."http://kodi.local:8080"]
func LoadAuthFromData(data []byte) map[string]CredentialEntry {
	result := make(map[string]CredentialEntry)

	var root authRootFormat
	if err := toml.Unmarshal(data, &root); err == nil {
		for k, v := range root {
			if isValidAuthKey(k) {
				result[k] = v
			}
		}
	}

	var creds authCredsFormat
	if err := toml.Unmarshal(data, &creds); err == nil {
		maps.Copy(result, creds.Creds)
	}

	return result
}

// normalizeScheme converts scheme aliases to their canonical form.
func normalizeScheme(scheme string) string {
	lower := strings.ToLower(scheme)
	if canonical, ok := schemeAliases[lower]; ok {
		return canonical
	}
	return lower
}

// normalizeKey reduces a credential key or endpoint URL to a comparable
// scheme://host[:port] form, dropping any path.
func normalizeKey(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return strings.TrimSuffix(strings.ToLower(raw), "/")
	}
	return normalizeScheme(u.Scheme) + "://" + strings.ToLower(u.Host)
}

// LookupAuth returns the credentials configured for an endpoint URL, or
// nil when none match. Keys match on scheme and host, ignoring the path,
// with ws/wss treated as http/https.
func LookupAuth(endpoint string) *CredentialEntry {
	auth := GetAuthCfg()
	if len(auth.Creds) == 0 {
		return nil
	}

	want := normalizeKey(endpoint)
	for key, entry := range auth.Creds {
		if normalizeKey(key) == want {
			cred := entry
			return &cred
		}
	}

	log.Debug().Msgf("no credentials found for %s", endpoint)
	return nil
}
